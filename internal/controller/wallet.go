package controller

import (
	"github.com/shopspring/decimal"
)

func (c *Controller) Balance(wallet string) decimal.Decimal {
	return c.ledger.Balance(wallet)
}

func (c *Controller) Inventory(wallet string) []string {
	return c.ledger.Inventory(wallet)
}

func (c *Controller) Credit(wallet string, amount decimal.Decimal) (decimal.Decimal, error) {
	return c.ledger.Credit(wallet, amount)
}

func (c *Controller) Debit(wallet string, amount decimal.Decimal) (decimal.Decimal, error) {
	return c.ledger.Debit(wallet, amount)
}

func (c *Controller) Purchase(wallet, itemID string) (decimal.Decimal, []string, error) {
	item, err := c.catalog.Item(itemID)
	if err != nil {
		return decimal.Zero, nil, err
	}

	balance, inventory, err := c.ledger.Purchase(wallet, item.ID, item.Price)
	if err != nil {
		return decimal.Zero, nil, err
	}

	c.logger.Info("item purchased", map[string]string{
		"wallet": wallet,
		"item":   item.ID,
		"price":  item.Price.String(),
	})
	return balance, inventory, nil
}

func (c *Controller) CompleteMission(wallet, missionID string) (decimal.Decimal, error) {
	mission, err := c.catalog.Mission(missionID)
	if err != nil {
		return decimal.Zero, err
	}

	balance, err := c.ledger.Credit(wallet, mission.Reward)
	if err != nil {
		return decimal.Zero, err
	}

	c.logger.Info("mission completed", map[string]string{
		"wallet":  wallet,
		"mission": mission.ID,
		"reward":  mission.Reward.String(),
	})
	return balance, nil
}
