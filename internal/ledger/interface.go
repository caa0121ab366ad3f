package ledger

import "github.com/shopspring/decimal"

// ILedger owns every off-chain DRX balance and item inventory. All
// mutations are serialized inside the store so a sufficiency check and the
// mutation it guards always happen in one critical section.
type ILedger interface {
	// Balance returns the current balance; unknown wallets read as zero.
	Balance(wallet string) decimal.Decimal
	// Inventory returns a copy of the wallet's owned item ids, in
	// purchase order. Unknown wallets read as empty.
	Inventory(wallet string) []string

	// Credit adds amount to the wallet and returns the new balance.
	Credit(wallet string, amount decimal.Decimal) (decimal.Decimal, error)
	// Debit subtracts amount, failing with model.ErrInsufficientBalance
	// when the wallet does not hold enough.
	Debit(wallet string, amount decimal.Decimal) (decimal.Decimal, error)
	// Purchase debits price and appends itemID to the inventory as one
	// indivisible step; on failure neither changes.
	Purchase(wallet, itemID string, price decimal.Decimal) (decimal.Decimal, []string, error)
	// WithdrawAll zeroes the wallet and returns the balance it held,
	// failing with model.ErrNoBalance when there was nothing to take.
	WithdrawAll(wallet string) (decimal.Decimal, error)
}
