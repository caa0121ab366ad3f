package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// WithdrawRequest records a player's request to pay their entire off-chain
// DRX balance out on-chain. The balance is zeroed when the request is
// created; approve and sent only advance the status.
type WithdrawRequest struct {
	ID         string          `json:"id"`
	Wallet     string          `json:"wallet"`
	Amount     decimal.Decimal `json:"amount"`
	Status     RequestStatus   `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
	ApprovedAt *time.Time      `json:"approved_at,omitempty"`
	SentAt     *time.Time      `json:"sent_at,omitempty"`
}
