package requestledger

import (
	"github.com/shopspring/decimal"

	"github.com/drxlabs/drx-backend/internal/model"
)

// Filter narrows list results. Zero values match everything.
type Filter struct {
	Status model.RequestStatus
	Wallet string
}

// IStore is the append-only audit trail of withdraw and bridge requests.
// Records are never deleted; a status transition is the only mutation, and
// it is guarded so it can only happen from the expected current status.
type IStore interface {
	CreateWithdraw(wallet string, amount decimal.Decimal) *model.WithdrawRequest
	CreateBridge(wallet, thrAddress string, amount decimal.Decimal, direction model.BridgeDirection) *model.BridgeRequest

	GetWithdraw(id string) (*model.WithdrawRequest, error)
	GetBridge(id string) (*model.BridgeRequest, error)

	// TransitionWithdraw advances a withdraw request from exactly `from`
	// to `to`, stamping the timestamp for the entered status. Fails with
	// model.ErrNotFound or model.ErrInvalidTransition; the record is
	// unchanged on failure.
	TransitionWithdraw(id string, from, to model.RequestStatus) (*model.WithdrawRequest, error)
	TransitionBridge(id string, from, to model.RequestStatus) (*model.BridgeRequest, error)

	ListWithdraws(filter Filter) []model.WithdrawRequest
	ListBridges(filter Filter) []model.BridgeRequest

	// DrainTerminal returns archive rows for records that reached their
	// terminal status and have not been acknowledged via MarkArchived.
	// The same record keeps being returned until it is acknowledged, so
	// a failed archive flush is retried on the next drain. The in-memory
	// trail keeps the record either way.
	DrainTerminal() []model.ArchivedRequest

	// MarkArchived acknowledges rows whose archive insert committed;
	// later drains skip them.
	MarkArchived(requestIDs []string)
}
