package controller

import (
	"github.com/shopspring/decimal"

	"github.com/drxlabs/drx-backend/internal/model"
	"github.com/drxlabs/drx-backend/internal/store/requestledger"
)

// IController is the ledger core: every balance mutation and every request
// lifecycle transition goes through here.
type IController interface {
	// wallet operations
	Balance(wallet string) decimal.Decimal
	Inventory(wallet string) []string
	Credit(wallet string, amount decimal.Decimal) (decimal.Decimal, error)
	Debit(wallet string, amount decimal.Decimal) (decimal.Decimal, error)
	Purchase(wallet, itemID string) (decimal.Decimal, []string, error)
	CompleteMission(wallet, missionID string) (decimal.Decimal, error)

	// withdraw state machine: pending -> approved -> sent
	CreateWithdraw(wallet string) (*model.WithdrawRequest, error)
	ApproveWithdraw(id string) (*model.WithdrawRequest, error)
	MarkWithdrawSent(id string) (*model.WithdrawRequest, error)
	ListWithdraws(filter requestledger.Filter) []model.WithdrawRequest

	// bridge state machine: pending -> approved -> completed
	CreateBridge(wallet, thrAddress string, amount decimal.Decimal, direction model.BridgeDirection) (*model.BridgeRequest, error)
	ApproveBridge(id string) (*model.BridgeRequest, error)
	CompleteBridge(id string) (*model.BridgeRequest, error)
	ListBridges(filter requestledger.Filter) []model.BridgeRequest

	// ArchiveSettled flushes newly terminal requests to the archive
	// database and reports how many rows were written.
	ArchiveSettled() (int, error)
}
