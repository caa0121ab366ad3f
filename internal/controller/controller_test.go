package controller

import (
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drxlabs/drx-backend/internal/catalog"
	"github.com/drxlabs/drx-backend/internal/ledger"
	"github.com/drxlabs/drx-backend/internal/model"
	"github.com/drxlabs/drx-backend/internal/settlement"
	"github.com/drxlabs/drx-backend/internal/store"
	"github.com/drxlabs/drx-backend/internal/store/requestledger"
	"github.com/drxlabs/drx-backend/internal/types/environments"
	"github.com/drxlabs/drx-backend/internal/utils/config"
	"github.com/drxlabs/drx-backend/internal/utils/logger"
)

func newTestController(t *testing.T) IController {
	t.Helper()

	appConfig := &config.AppConfig{Environment: environments.Test}
	log := logger.New(environments.Test)

	return New(
		ledger.New(log),
		store.New(),
		catalog.New([]model.Item{
			{ID: "sword", Name: "Sword", Price: decimal.NewFromInt(200)},
		}, []model.Mission{
			{ID: "first-win", Name: "First Win", Reward: decimal.NewFromInt(500)},
		}),
		settlement.New(appConfig, log),
		nil,
		log,
		appConfig,
	)
}

// wallet W1: buy an item, withdraw the rest, drive the request to sent
func TestWithdrawScenario(t *testing.T) {
	c := newTestController(t)

	_, err := c.Credit("W1", decimal.NewFromInt(500))
	require.NoError(t, err)

	balance, inventory, err := c.Purchase("W1", "sword")
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.NewFromInt(300)))
	assert.Equal(t, []string{"sword"}, inventory)

	req, err := c.CreateWithdraw("W1")
	require.NoError(t, err)
	assert.Equal(t, model.RequestStatusPending, req.Status)
	assert.True(t, req.Amount.Equal(decimal.NewFromInt(300)))
	assert.True(t, c.Balance("W1").IsZero())

	req, err = c.ApproveWithdraw(req.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RequestStatusApproved, req.Status)

	req, err = c.MarkWithdrawSent(req.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RequestStatusSent, req.Status)
	assert.True(t, c.Balance("W1").IsZero())
}

func TestCreateWithdraw_NoBalance(t *testing.T) {
	c := newTestController(t)

	_, err := c.CreateWithdraw("empty")
	assert.ErrorIs(t, err, model.ErrNoBalance)
	assert.Empty(t, c.ListWithdraws(requestledger.Filter{}))
}

func TestCreateWithdraw_MissingWallet(t *testing.T) {
	c := newTestController(t)

	_, err := c.CreateWithdraw("")
	assert.ErrorIs(t, err, model.ErrMissingFields)
}

func TestWithdrawTransitions_Guarded(t *testing.T) {
	c := newTestController(t)

	_, err := c.ApproveWithdraw("wd_missing")
	assert.ErrorIs(t, err, model.ErrNotFound)

	_, err = c.Credit("W1", decimal.NewFromInt(100))
	require.NoError(t, err)
	req, err := c.CreateWithdraw("W1")
	require.NoError(t, err)

	// sent before approved must be blocked
	_, err = c.MarkWithdrawSent(req.ID)
	assert.ErrorIs(t, err, model.ErrInvalidTransition)

	got := c.ListWithdraws(requestledger.Filter{Wallet: "W1"})
	require.Len(t, got, 1)
	assert.Equal(t, model.RequestStatusPending, got[0].Status)
}

// concurrent withdraw creation must never queue the same funds twice
func TestCreateWithdraw_Concurrent(t *testing.T) {
	c := newTestController(t)

	_, err := c.Credit("W1", decimal.NewFromInt(700))
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.CreateWithdraw("W1") //nolint:errcheck
		}()
	}
	wg.Wait()

	total := decimal.Zero
	for _, req := range c.ListWithdraws(requestledger.Filter{Wallet: "W1"}) {
		total = total.Add(req.Amount)
	}
	assert.True(t, total.Equal(decimal.NewFromInt(700)),
		"queued withdraw total %s exceeds the original balance", total)
}

// wallet W2: unlock leg credits only at completion
func TestBridgeUnlockScenario(t *testing.T) {
	c := newTestController(t)

	req, err := c.CreateBridge("W2", "thr1qxyz", decimal.NewFromInt(100), model.BridgeDirectionThrToDrx)
	require.NoError(t, err)
	assert.Equal(t, model.RequestStatusPending, req.Status)
	assert.True(t, c.Balance("W2").IsZero())

	req, err = c.ApproveBridge(req.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RequestStatusApproved, req.Status)
	assert.True(t, c.Balance("W2").IsZero())

	req, err = c.CompleteBridge(req.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RequestStatusCompleted, req.Status)
	assert.NotNil(t, req.CompletedAt)
	assert.True(t, c.Balance("W2").Equal(decimal.NewFromInt(100)))
}

// wallet W3: lock leg fails without sufficient balance and leaves no trace
func TestBridgeLock_Insufficient(t *testing.T) {
	c := newTestController(t)

	_, err := c.Credit("W3", decimal.NewFromInt(50))
	require.NoError(t, err)

	_, err = c.CreateBridge("W3", "thr1qxyz", decimal.NewFromInt(80), model.BridgeDirectionDrxToThr)
	assert.ErrorIs(t, err, model.ErrInsufficientBalance)
	assert.True(t, c.Balance("W3").Equal(decimal.NewFromInt(50)))
	assert.Empty(t, c.ListBridges(requestledger.Filter{}))
}

func TestBridgeLock_DebitsOnceAtCreation(t *testing.T) {
	c := newTestController(t)

	_, err := c.Credit("W4", decimal.NewFromInt(120))
	require.NoError(t, err)

	req, err := c.CreateBridge("W4", "thr1qxyz", decimal.NewFromInt(80), model.BridgeDirectionDrxToThr)
	require.NoError(t, err)
	assert.True(t, c.Balance("W4").Equal(decimal.NewFromInt(40)))

	_, err = c.ApproveBridge(req.ID)
	require.NoError(t, err)
	_, err = c.CompleteBridge(req.ID)
	require.NoError(t, err)

	// no further movement after creation
	assert.True(t, c.Balance("W4").Equal(decimal.NewFromInt(40)))
}

func TestCreateBridge_Validation(t *testing.T) {
	c := newTestController(t)

	_, err := c.CreateBridge("", "thr1qxyz", decimal.NewFromInt(10), model.BridgeDirectionThrToDrx)
	assert.ErrorIs(t, err, model.ErrMissingFields)

	_, err = c.CreateBridge("W1", "", decimal.NewFromInt(10), model.BridgeDirectionThrToDrx)
	assert.ErrorIs(t, err, model.ErrMissingFields)

	_, err = c.CreateBridge("W1", "thr1qxyz", decimal.NewFromInt(10), model.BridgeDirection("sideways"))
	assert.ErrorIs(t, err, model.ErrMissingFields)

	_, err = c.CreateBridge("W1", "thr1qxyz", decimal.Zero, model.BridgeDirectionThrToDrx)
	assert.ErrorIs(t, err, model.ErrInvalidAmount)
}

func TestPurchase_UnknownItem(t *testing.T) {
	c := newTestController(t)

	_, err := c.Credit("W1", decimal.NewFromInt(500))
	require.NoError(t, err)

	_, _, err = c.Purchase("W1", "unobtainium")
	assert.ErrorIs(t, err, model.ErrItemNotFound)
	assert.True(t, c.Balance("W1").Equal(decimal.NewFromInt(500)))
}

func TestCompleteMission(t *testing.T) {
	c := newTestController(t)

	balance, err := c.CompleteMission("W1", "first-win")
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.NewFromInt(500)))

	_, err = c.CompleteMission("W1", "no-such-mission")
	assert.ErrorIs(t, err, model.ErrMissionNotFound)
}

func TestArchiveSettled_NoDatabase(t *testing.T) {
	c := newTestController(t)

	n, err := c.ArchiveSettled()
	require.NoError(t, err)
	assert.Zero(t, n)
}
