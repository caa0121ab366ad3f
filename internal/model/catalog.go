package model

import "github.com/shopspring/decimal"

// Item is a purchasable catalog entry. The catalog itself is static data
// owned outside this core; only the id and price matter here.
type Item struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// Mission is a completable task paying out a fixed DRX reward.
type Mission struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Reward decimal.Decimal `json:"reward"`
}
