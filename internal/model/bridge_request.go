package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// BridgeRequest records a transfer between the off-chain DRX ledger and the
// THR counter-chain. The accounting effect depends on Direction:
// drx-to-thr debits the wallet at creation, thr-to-drx credits it at
// completion. ThrAddress is opaque at this layer.
type BridgeRequest struct {
	ID          string          `json:"id"`
	Wallet      string          `json:"wallet"`
	Amount      decimal.Decimal `json:"amount"`
	ThrAddress  string          `json:"thr_address"`
	Direction   BridgeDirection `json:"direction"`
	Status      RequestStatus   `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	ApprovedAt  *time.Time      `json:"approved_at,omitempty"`
	CompletedAt *time.Time      `json:"completed_at,omitempty"`
}
