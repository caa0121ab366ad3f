package wallet

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/drxlabs/drx-backend/internal/controller"
	"github.com/drxlabs/drx-backend/internal/monitoring"
	"github.com/drxlabs/drx-backend/internal/utils/config"
	"github.com/drxlabs/drx-backend/internal/utils/logger"
	"github.com/drxlabs/drx-backend/internal/view"
)

type AmountRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

type PurchaseRequest struct {
	Wallet string `json:"wallet" binding:"required"`
	ItemID string `json:"item_id" binding:"required"`
}

type CompleteMissionRequest struct {
	Wallet    string `json:"wallet" binding:"required"`
	MissionID string `json:"mission_id" binding:"required"`
}

type WalletResponse struct {
	Wallet    string          `json:"wallet"`
	Balance   decimal.Decimal `json:"balance"`
	Inventory []string        `json:"inventory"`
}

type handler struct {
	controller controller.IController
	logger     *logger.Logger
	appConfig  *config.AppConfig
	metrics    *monitoring.HTTPMetrics
}

func New(controller controller.IController, logger *logger.Logger, appConfig *config.AppConfig, metrics *monitoring.HTTPMetrics) IHandler {
	return &handler{
		controller: controller,
		logger:     logger,
		appConfig:  appConfig,
		metrics:    metrics,
	}
}

func (h *handler) recordOperation(operation string, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	h.metrics.RecordLedgerOperation(operation, status)
}

// Get godoc
// @Summary Get wallet state
// @Description Returns the wallet's DRX balance and item inventory
// @id getWallet
// @Tags Wallet
// @Produce json
// @Param wallet path string true "Wallet identifier"
// @Success 200 {object} WalletResponse
// @Router /wallets/{wallet} [get]
func (h *handler) Get(c *gin.Context) {
	wallet := c.Param("wallet")

	c.JSON(http.StatusOK, view.CreateResponse(WalletResponse{
		Wallet:    wallet,
		Balance:   h.controller.Balance(wallet),
		Inventory: h.controller.Inventory(wallet),
	}, nil, nil, ""))
}

// Credit godoc
// @Summary Credit a wallet
// @Description Adds DRX to a wallet. Admin only.
// @id creditWallet
// @Tags Wallet
// @Accept json
// @Produce json
// @Param wallet path string true "Wallet identifier"
// @Param request body AmountRequest true "Amount to credit"
// @Success 200 {object} WalletResponse
// @Failure 400 {object} view.ErrorResponse
// @Router /wallets/{wallet}/credit [post]
func (h *handler) Credit(c *gin.Context) {
	wallet := c.Param("wallet")

	var req AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("[Credit][ShouldBindJSON]", map[string]string{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, view.CreateResponse[any](nil, err, req, "invalid request"))
		return
	}

	balance, err := h.controller.Credit(wallet, req.Amount)
	h.recordOperation("credit", err)
	if err != nil {
		h.logger.Error("[Credit][Credit]", map[string]string{
			"wallet": wallet,
			"error":  err.Error(),
		})
		c.JSON(view.ErrorStatus(err), view.CreateResponse[any](nil, err, req, "failed to credit wallet"))
		return
	}

	c.JSON(http.StatusOK, view.CreateResponse(WalletResponse{
		Wallet:    wallet,
		Balance:   balance,
		Inventory: h.controller.Inventory(wallet),
	}, nil, nil, ""))
}

// Debit godoc
// @Summary Debit a wallet
// @Description Removes DRX from a wallet. Admin only.
// @id debitWallet
// @Tags Wallet
// @Accept json
// @Produce json
// @Param wallet path string true "Wallet identifier"
// @Param request body AmountRequest true "Amount to debit"
// @Success 200 {object} WalletResponse
// @Failure 400 {object} view.ErrorResponse
// @Router /wallets/{wallet}/debit [post]
func (h *handler) Debit(c *gin.Context) {
	wallet := c.Param("wallet")

	var req AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("[Debit][ShouldBindJSON]", map[string]string{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, view.CreateResponse[any](nil, err, req, "invalid request"))
		return
	}

	balance, err := h.controller.Debit(wallet, req.Amount)
	h.recordOperation("debit", err)
	if err != nil {
		h.logger.Error("[Debit][Debit]", map[string]string{
			"wallet": wallet,
			"error":  err.Error(),
		})
		c.JSON(view.ErrorStatus(err), view.CreateResponse[any](nil, err, req, "failed to debit wallet"))
		return
	}

	c.JSON(http.StatusOK, view.CreateResponse(WalletResponse{
		Wallet:    wallet,
		Balance:   balance,
		Inventory: h.controller.Inventory(wallet),
	}, nil, nil, ""))
}

// Purchase godoc
// @Summary Purchase an item
// @Description Debits the item price and appends the item to the inventory
// @id purchaseItem
// @Tags Wallet
// @Accept json
// @Produce json
// @Param request body PurchaseRequest true "Purchase parameters"
// @Success 200 {object} WalletResponse
// @Failure 400 {object} view.ErrorResponse
// @Failure 404 {object} view.ErrorResponse
// @Router /purchases [post]
func (h *handler) Purchase(c *gin.Context) {
	var req PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("[Purchase][ShouldBindJSON]", map[string]string{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, view.CreateResponse[any](nil, err, req, "invalid request"))
		return
	}

	balance, inventory, err := h.controller.Purchase(req.Wallet, req.ItemID)
	h.recordOperation("purchase", err)
	if err != nil {
		h.logger.Error("[Purchase][Purchase]", map[string]string{
			"wallet": req.Wallet,
			"item":   req.ItemID,
			"error":  err.Error(),
		})
		c.JSON(view.ErrorStatus(err), view.CreateResponse[any](nil, err, req, "failed to purchase item"))
		return
	}

	c.JSON(http.StatusOK, view.CreateResponse(WalletResponse{
		Wallet:    req.Wallet,
		Balance:   balance,
		Inventory: inventory,
	}, nil, nil, ""))
}

// CompleteMission godoc
// @Summary Complete a mission
// @Description Credits the mission reward to the wallet
// @id completeMission
// @Tags Wallet
// @Accept json
// @Produce json
// @Param request body CompleteMissionRequest true "Mission completion parameters"
// @Success 200 {object} WalletResponse
// @Failure 400 {object} view.ErrorResponse
// @Failure 404 {object} view.ErrorResponse
// @Router /missions/complete [post]
func (h *handler) CompleteMission(c *gin.Context) {
	var req CompleteMissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("[CompleteMission][ShouldBindJSON]", map[string]string{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, view.CreateResponse[any](nil, err, req, "invalid request"))
		return
	}

	balance, err := h.controller.CompleteMission(req.Wallet, req.MissionID)
	h.recordOperation("complete_mission", err)
	if err != nil {
		h.logger.Error("[CompleteMission][CompleteMission]", map[string]string{
			"wallet":  req.Wallet,
			"mission": req.MissionID,
			"error":   err.Error(),
		})
		c.JSON(view.ErrorStatus(err), view.CreateResponse[any](nil, err, req, "failed to complete mission"))
		return
	}

	c.JSON(http.StatusOK, view.CreateResponse(WalletResponse{
		Wallet:    req.Wallet,
		Balance:   balance,
		Inventory: h.controller.Inventory(req.Wallet),
	}, nil, nil, ""))
}
