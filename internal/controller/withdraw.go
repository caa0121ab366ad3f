package controller

import (
	"context"

	"github.com/drxlabs/drx-backend/internal/model"
	"github.com/drxlabs/drx-backend/internal/store/requestledger"
)

// CreateWithdraw zeroes the wallet and queues its entire balance for
// on-chain payout. Zeroing up front means a second concurrent call cannot
// queue the same funds twice; the withdraw record carries the amount that
// was actually taken.
func (c *Controller) CreateWithdraw(wallet string) (*model.WithdrawRequest, error) {
	if wallet == "" {
		return nil, model.ErrMissingFields
	}

	amount, err := c.ledger.WithdrawAll(wallet)
	if err != nil {
		return nil, err
	}

	req := c.store.RequestLedger.CreateWithdraw(wallet, amount)

	c.logger.Info("withdraw request created", map[string]string{
		"request_id": req.ID,
		"wallet":     wallet,
		"amount":     amount.String(),
	})
	return req, nil
}

func (c *Controller) ApproveWithdraw(id string) (*model.WithdrawRequest, error) {
	req, err := c.store.RequestLedger.TransitionWithdraw(id,
		model.RequestStatusPending, model.RequestStatusApproved)
	if err != nil {
		return nil, err
	}

	// settlement pickup is out-of-process; never on the mutation path
	go c.notifier.NotifyApproved(context.Background(), model.RequestKindWithdraw, req.ID)

	c.logger.Info("withdraw request approved", map[string]string{
		"request_id": req.ID,
	})
	return req, nil
}

// MarkWithdrawSent records that the settlement agent dispatched the payout.
// The off-chain balance was already debited at creation, so this is a pure
// status flip.
func (c *Controller) MarkWithdrawSent(id string) (*model.WithdrawRequest, error) {
	req, err := c.store.RequestLedger.TransitionWithdraw(id,
		model.RequestStatusApproved, model.RequestStatusSent)
	if err != nil {
		return nil, err
	}

	c.logger.Info("withdraw request sent", map[string]string{
		"request_id": req.ID,
	})
	return req, nil
}

func (c *Controller) ListWithdraws(filter requestledger.Filter) []model.WithdrawRequest {
	return c.store.RequestLedger.ListWithdraws(filter)
}
