package model

// RequestStatus is the lifecycle state of a withdraw or bridge request.
// Statuses only ever advance; there is no cancellation.
type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "pending"
	RequestStatusApproved  RequestStatus = "approved"
	RequestStatusSent      RequestStatus = "sent"
	RequestStatusCompleted RequestStatus = "completed"
)

// BridgeDirection distinguishes the two legs of the bridge. The lock leg
// debits the wallet at creation; the unlock leg credits it at completion.
type BridgeDirection string

const (
	BridgeDirectionDrxToThr BridgeDirection = "drx-to-thr"
	BridgeDirectionThrToDrx BridgeDirection = "thr-to-drx"
)

func (d BridgeDirection) Valid() bool {
	return d == BridgeDirectionDrxToThr || d == BridgeDirectionThrToDrx
}
