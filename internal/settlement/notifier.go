package settlement

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
	"github.com/sony/gobreaker"

	"github.com/drxlabs/drx-backend/internal/model"
	"github.com/drxlabs/drx-backend/internal/utils/config"
	"github.com/drxlabs/drx-backend/internal/utils/logger"
)

const (
	notifyTimeout = 10 * time.Second
	// a request is approved once, so a long de-dupe window is safe
	dedupeTTL = 24 * time.Hour
)

type notifyPayload struct {
	RequestID string `json:"request_id"`
	Kind      string `json:"kind"`
}

type Notifier struct {
	httpClient     *http.Client
	webhookURL     string
	circuitBreaker *gobreaker.CircuitBreaker
	notified       *cache.Cache
	logger         *logger.Logger
}

func New(appConfig *config.AppConfig, logger *logger.Logger) INotifier {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "settlement_webhook",
		MaxRequests: 1,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Info("settlement webhook circuit breaker state changed", map[string]string{
				"name": name,
				"from": from.String(),
				"to":   to.String(),
			})
		},
	})

	return &Notifier{
		httpClient: &http.Client{
			Timeout: notifyTimeout,
		},
		webhookURL:     appConfig.Settlement.WebhookURL,
		circuitBreaker: cb,
		notified:       cache.New(dedupeTTL, dedupeTTL),
		logger:         logger,
	}
}

func (n *Notifier) NotifyApproved(ctx context.Context, kind model.RequestKind, requestID string) {
	if n.webhookURL == "" {
		return
	}
	if _, seen := n.notified.Get(requestID); seen {
		return
	}

	_, err := n.circuitBreaker.Execute(func() (interface{}, error) {
		return nil, n.post(ctx, notifyPayload{
			RequestID: requestID,
			Kind:      string(kind),
		})
	})
	if err != nil {
		n.logger.Error("failed to notify settlement agent", map[string]string{
			"request_id": requestID,
			"error":      err.Error(),
		})
		return
	}

	n.notified.SetDefault(requestID, true)
	n.logger.Info("notified settlement agent", map[string]string{
		"request_id": requestID,
		"kind":       string(kind),
	})
}

func (n *Notifier) post(ctx context.Context, payload notifyPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.webhookURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return errors.Errorf("settlement webhook returned %s", resp.Status)
	}

	return nil
}
