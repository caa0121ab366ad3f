package withdraw

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drxlabs/drx-backend/internal/catalog"
	"github.com/drxlabs/drx-backend/internal/controller"
	"github.com/drxlabs/drx-backend/internal/ledger"
	"github.com/drxlabs/drx-backend/internal/model"
	"github.com/drxlabs/drx-backend/internal/settlement"
	"github.com/drxlabs/drx-backend/internal/store"
	"github.com/drxlabs/drx-backend/internal/types/environments"
	"github.com/drxlabs/drx-backend/internal/utils/config"
	"github.com/drxlabs/drx-backend/internal/utils/logger"
	"github.com/drxlabs/drx-backend/internal/view"
)

func newTestRouter(t *testing.T) (*gin.Engine, controller.IController) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	appConfig := &config.AppConfig{Environment: environments.Test}
	log := logger.New(environments.Test)
	core := controller.New(
		ledger.New(log),
		store.New(),
		catalog.New(nil, nil),
		settlement.New(appConfig, log),
		nil,
		log,
		appConfig,
	)

	h := New(core, log, appConfig)
	router := gin.New()
	router.POST("/withdrawals", h.Create)
	router.GET("/withdrawals", h.List)
	router.POST("/withdrawals/:id/approve", h.Approve)
	router.POST("/withdrawals/:id/sent", h.MarkSent)

	return router, core
}

func createWithdraw(t *testing.T, router *gin.Engine, wallet string) model.WithdrawRequest {
	t.Helper()

	body, _ := json.Marshal(CreateRequest{Wallet: wallet})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/withdrawals", bytes.NewReader(body))
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp view.Response[model.WithdrawRequest]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Data
}

func TestCreate(t *testing.T) {
	router, core := newTestRouter(t)

	_, err := core.Credit("w1", decimal.NewFromInt(300))
	require.NoError(t, err)

	record := createWithdraw(t, router, "w1")
	assert.Equal(t, model.RequestStatusPending, record.Status)
	assert.True(t, record.Amount.Equal(decimal.NewFromInt(300)))
	assert.True(t, core.Balance("w1").IsZero())
}

func TestCreate_NoBalance(t *testing.T) {
	router, _ := newTestRouter(t)

	body, _ := json.Marshal(CreateRequest{Wallet: "empty"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/withdrawals", bytes.NewReader(body))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestApproveThenSent(t *testing.T) {
	router, core := newTestRouter(t)

	_, err := core.Credit("w1", decimal.NewFromInt(100))
	require.NoError(t, err)
	record := createWithdraw(t, router, "w1")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/withdrawals/"+record.ID+"/approve", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("POST", "/withdrawals/"+record.ID+"/sent", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp view.Response[model.WithdrawRequest]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, model.RequestStatusSent, resp.Data.Status)
	assert.NotNil(t, resp.Data.SentAt)
}

func TestMarkSent_BeforeApprove(t *testing.T) {
	router, core := newTestRouter(t)

	_, err := core.Credit("w1", decimal.NewFromInt(100))
	require.NoError(t, err)
	record := createWithdraw(t, router, "w1")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/withdrawals/"+record.ID+"/sent", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestApprove_UnknownID(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/withdrawals/wd_missing/approve", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestList_StatusFilter(t *testing.T) {
	router, core := newTestRouter(t)

	_, err := core.Credit("w1", decimal.NewFromInt(100))
	require.NoError(t, err)
	_, err = core.Credit("w2", decimal.NewFromInt(200))
	require.NoError(t, err)

	first := createWithdraw(t, router, "w1")
	createWithdraw(t, router, "w2")

	_, err = core.ApproveWithdraw(first.ID)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/withdrawals?status=pending", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp view.Response[[]model.WithdrawRequest]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "w2", resp.Data[0].Wallet)
}
