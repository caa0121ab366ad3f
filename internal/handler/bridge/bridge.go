package bridge

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/drxlabs/drx-backend/internal/controller"
	"github.com/drxlabs/drx-backend/internal/model"
	"github.com/drxlabs/drx-backend/internal/store/requestledger"
	"github.com/drxlabs/drx-backend/internal/utils/config"
	"github.com/drxlabs/drx-backend/internal/utils/logger"
	"github.com/drxlabs/drx-backend/internal/view"
)

type CreateRequest struct {
	Wallet     string          `json:"wallet" binding:"required"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	ThrAddress string          `json:"thr_address" binding:"required"`
	Direction  string          `json:"direction" binding:"required,oneof=drx-to-thr thr-to-drx"`
}

type handler struct {
	controller controller.IController
	logger     *logger.Logger
	appConfig  *config.AppConfig
}

func New(controller controller.IController, logger *logger.Logger, appConfig *config.AppConfig) IHandler {
	return &handler{
		controller: controller,
		logger:     logger,
		appConfig:  appConfig,
	}
}

// Create godoc
// @Summary Create a bridge request
// @Description Queues a transfer between the DRX ledger and the THR chain. The drx-to-thr leg debits the wallet immediately; thr-to-drx only credits on completion.
// @id createBridge
// @Tags Bridge
// @Accept json
// @Produce json
// @Param request body CreateRequest true "Bridge parameters"
// @Success 200 {object} model.BridgeRequest
// @Failure 400 {object} view.ErrorResponse
// @Router /bridges [post]
func (h *handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("[Create][ShouldBindJSON]", map[string]string{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, view.CreateResponse[any](nil, err, req, "invalid request"))
		return
	}

	// validate req
	if err := validator.New().Struct(req); err != nil {
		h.logger.Error("[Create][Validator]", map[string]string{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, view.CreateResponse[any](nil, err, req, "invalid request"))
		return
	}

	record, err := h.controller.CreateBridge(req.Wallet, req.ThrAddress, req.Amount, model.BridgeDirection(req.Direction))
	if err != nil {
		h.logger.Error("[Create][CreateBridge]", map[string]string{
			"wallet":    req.Wallet,
			"direction": req.Direction,
			"error":     err.Error(),
		})
		c.JSON(view.ErrorStatus(err), view.CreateResponse[any](nil, err, req, "failed to create bridge request"))
		return
	}

	c.JSON(http.StatusOK, view.CreateResponse(record, nil, nil, ""))
}

// Approve godoc
// @Summary Approve a bridge request
// @Description Moves a pending bridge request to approved. Admin only.
// @id approveBridge
// @Tags Bridge
// @Produce json
// @Param id path string true "Request id"
// @Success 200 {object} model.BridgeRequest
// @Failure 404 {object} view.ErrorResponse
// @Failure 409 {object} view.ErrorResponse
// @Router /bridges/{id}/approve [post]
func (h *handler) Approve(c *gin.Context) {
	id := c.Param("id")

	record, err := h.controller.ApproveBridge(id)
	if err != nil {
		h.logger.Error("[Approve][ApproveBridge]", map[string]string{
			"request_id": id,
			"error":      err.Error(),
		})
		c.JSON(view.ErrorStatus(err), view.CreateResponse[any](nil, err, nil, "failed to approve bridge request"))
		return
	}

	c.JSON(http.StatusOK, view.CreateResponse(record, nil, nil, ""))
}

// Complete godoc
// @Summary Complete a bridge request
// @Description Finishes an approved bridge request; the thr-to-drx leg credits the wallet here. Admin only.
// @id completeBridge
// @Tags Bridge
// @Produce json
// @Param id path string true "Request id"
// @Success 200 {object} model.BridgeRequest
// @Failure 404 {object} view.ErrorResponse
// @Failure 409 {object} view.ErrorResponse
// @Router /bridges/{id}/complete [post]
func (h *handler) Complete(c *gin.Context) {
	id := c.Param("id")

	record, err := h.controller.CompleteBridge(id)
	if err != nil {
		h.logger.Error("[Complete][CompleteBridge]", map[string]string{
			"request_id": id,
			"error":      err.Error(),
		})
		c.JSON(view.ErrorStatus(err), view.CreateResponse[any](nil, err, nil, "failed to complete bridge request"))
		return
	}

	c.JSON(http.StatusOK, view.CreateResponse(record, nil, nil, ""))
}

// List godoc
// @Summary List bridge requests
// @Description Lists bridge requests, optionally filtered by status and wallet; records always carry their direction
// @id listBridges
// @Tags Bridge
// @Produce json
// @Param status query string false "Status filter" Enums(pending, approved, completed)
// @Param wallet query string false "Wallet filter"
// @Success 200 {array} model.BridgeRequest
// @Router /bridges [get]
func (h *handler) List(c *gin.Context) {
	records := h.controller.ListBridges(requestledger.Filter{
		Status: model.RequestStatus(c.Query("status")),
		Wallet: c.Query("wallet"),
	})

	c.JSON(http.StatusOK, view.CreateResponse(records, nil, nil, ""))
}
