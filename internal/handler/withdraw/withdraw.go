package withdraw

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/drxlabs/drx-backend/internal/controller"
	"github.com/drxlabs/drx-backend/internal/model"
	"github.com/drxlabs/drx-backend/internal/store/requestledger"
	"github.com/drxlabs/drx-backend/internal/utils/config"
	"github.com/drxlabs/drx-backend/internal/utils/logger"
	"github.com/drxlabs/drx-backend/internal/view"
)

type CreateRequest struct {
	Wallet string `json:"wallet" binding:"required"`
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
// @Summary Create a withdraw request
// @Description Zeroes the wallet's DRX balance and queues it for on-chain payout
// @id createWithdraw
// @Tags Withdraw
// @Accept json
// @Produce json
// @Param request body CreateRequest true "Withdraw parameters"
// @Success 200 {object} model.WithdrawRequest
// @Failure 400 {object} view.ErrorResponse
// @Router /withdrawals [post]
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

	record, err := h.controller.CreateWithdraw(req.Wallet)
	if err != nil {
		h.logger.Error("[Create][CreateWithdraw]", map[string]string{
			"wallet": req.Wallet,
			"error":  err.Error(),
		})
		c.JSON(view.ErrorStatus(err), view.CreateResponse[any](nil, err, req, "failed to create withdraw request"))
		return
	}

	c.JSON(http.StatusOK, view.CreateResponse(record, nil, nil, ""))
}

// Approve godoc
// @Summary Approve a withdraw request
// @Description Moves a pending withdraw request to approved. Admin only.
// @id approveWithdraw
// @Tags Withdraw
// @Produce json
// @Param id path string true "Request id"
// @Success 200 {object} model.WithdrawRequest
// @Failure 404 {object} view.ErrorResponse
// @Failure 409 {object} view.ErrorResponse
// @Router /withdrawals/{id}/approve [post]
func (h *handler) Approve(c *gin.Context) {
	id := c.Param("id")

	record, err := h.controller.ApproveWithdraw(id)
	if err != nil {
		h.logger.Error("[Approve][ApproveWithdraw]", map[string]string{
			"request_id": id,
			"error":      err.Error(),
		})
		c.JSON(view.ErrorStatus(err), view.CreateResponse[any](nil, err, nil, "failed to approve withdraw request"))
		return
	}

	c.JSON(http.StatusOK, view.CreateResponse(record, nil, nil, ""))
}

// MarkSent godoc
// @Summary Mark a withdraw request as sent
// @Description Records that the settlement agent dispatched the payout. Admin only.
// @id markWithdrawSent
// @Tags Withdraw
// @Produce json
// @Param id path string true "Request id"
// @Success 200 {object} model.WithdrawRequest
// @Failure 404 {object} view.ErrorResponse
// @Failure 409 {object} view.ErrorResponse
// @Router /withdrawals/{id}/sent [post]
func (h *handler) MarkSent(c *gin.Context) {
	id := c.Param("id")

	record, err := h.controller.MarkWithdrawSent(id)
	if err != nil {
		h.logger.Error("[MarkSent][MarkWithdrawSent]", map[string]string{
			"request_id": id,
			"error":      err.Error(),
		})
		c.JSON(view.ErrorStatus(err), view.CreateResponse[any](nil, err, nil, "failed to mark withdraw request sent"))
		return
	}

	c.JSON(http.StatusOK, view.CreateResponse(record, nil, nil, ""))
}

// List godoc
// @Summary List withdraw requests
// @Description Lists withdraw requests, optionally filtered by status and wallet
// @id listWithdraws
// @Tags Withdraw
// @Produce json
// @Param status query string false "Status filter" Enums(pending, approved, sent)
// @Param wallet query string false "Wallet filter"
// @Success 200 {array} model.WithdrawRequest
// @Router /withdrawals [get]
func (h *handler) List(c *gin.Context) {
	records := h.controller.ListWithdraws(requestledger.Filter{
		Status: model.RequestStatus(c.Query("status")),
		Wallet: c.Query("wallet"),
	})

	c.JSON(http.StatusOK, view.CreateResponse(records, nil, nil, ""))
}
