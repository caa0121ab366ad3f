package controller

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/drxlabs/drx-backend/internal/model"
	"github.com/drxlabs/drx-backend/internal/store/requestledger"
)

// CreateBridge queues a transfer between the DRX ledger and the THR chain.
// The lock leg (drx-to-thr) debits the wallet here, so value leaves the
// ledger the moment it is promised to the counter-chain. The unlock leg
// (thr-to-drx) assumes the THR burn already happened externally and touches
// nothing until completion.
func (c *Controller) CreateBridge(wallet, thrAddress string, amount decimal.Decimal, direction model.BridgeDirection) (*model.BridgeRequest, error) {
	if wallet == "" || thrAddress == "" || !direction.Valid() {
		return nil, model.ErrMissingFields
	}
	if amount.Sign() <= 0 {
		return nil, model.ErrInvalidAmount
	}

	if direction == model.BridgeDirectionDrxToThr {
		if _, err := c.ledger.Debit(wallet, amount); err != nil {
			return nil, err
		}
	}

	req := c.store.RequestLedger.CreateBridge(wallet, thrAddress, amount, direction)

	c.logger.Info("bridge request created", map[string]string{
		"request_id":  req.ID,
		"wallet":      wallet,
		"amount":      amount.String(),
		"direction":   string(direction),
		"thr_address": thrAddress,
	})
	return req, nil
}

func (c *Controller) ApproveBridge(id string) (*model.BridgeRequest, error) {
	req, err := c.store.RequestLedger.TransitionBridge(id,
		model.RequestStatusPending, model.RequestStatusApproved)
	if err != nil {
		return nil, err
	}

	go c.notifier.NotifyApproved(context.Background(), model.RequestKindBridge, req.ID)

	c.logger.Info("bridge request approved", map[string]string{
		"request_id": req.ID,
	})
	return req, nil
}

// CompleteBridge finishes an approved bridge request. Only the unlock leg
// moves balance here: the THR asset was burned externally and the off-chain
// credit becomes spendable now.
func (c *Controller) CompleteBridge(id string) (*model.BridgeRequest, error) {
	req, err := c.store.RequestLedger.TransitionBridge(id,
		model.RequestStatusApproved, model.RequestStatusCompleted)
	if err != nil {
		return nil, err
	}

	if req.Direction == model.BridgeDirectionThrToDrx {
		// the guarded approved->completed transition above is what
		// stops a concurrent double credit, so it must come first.
		// Credit itself cannot fail here: Amount was validated
		// positive at creation and is immutable afterward.
		if _, err := c.ledger.Credit(req.Wallet, req.Amount); err != nil {
			c.logger.Error("failed to credit completed bridge", map[string]string{
				"request_id": req.ID,
				"error":      err.Error(),
			})
			return nil, err
		}
	}

	c.logger.Info("bridge request completed", map[string]string{
		"request_id": req.ID,
		"direction":  string(req.Direction),
	})
	return req, nil
}

func (c *Controller) ListBridges(filter requestledger.Filter) []model.BridgeRequest {
	return c.store.RequestLedger.ListBridges(filter)
}
