package requestledger

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/drxlabs/drx-backend/internal/model"
)

type Store struct {
	mu        sync.Mutex
	withdraws []*model.WithdrawRequest
	bridges   []*model.BridgeRequest

	withdrawByID map[string]*model.WithdrawRequest
	bridgeByID   map[string]*model.BridgeRequest

	archived map[string]bool
}

func New() IStore {
	return &Store{
		withdrawByID: map[string]*model.WithdrawRequest{},
		bridgeByID:   map[string]*model.BridgeRequest{},
		archived:     map[string]bool{},
	}
}

func (s *Store) CreateWithdraw(wallet string, amount decimal.Decimal) *model.WithdrawRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	req := &model.WithdrawRequest{
		ID:        newRequestID("wd"),
		Wallet:    wallet,
		Amount:    amount,
		Status:    model.RequestStatusPending,
		CreatedAt: time.Now(),
	}
	s.withdraws = append(s.withdraws, req)
	s.withdrawByID[req.ID] = req

	out := *req
	return &out
}

func (s *Store) CreateBridge(wallet, thrAddress string, amount decimal.Decimal, direction model.BridgeDirection) *model.BridgeRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	req := &model.BridgeRequest{
		ID:         newRequestID("br"),
		Wallet:     wallet,
		Amount:     amount,
		ThrAddress: thrAddress,
		Direction:  direction,
		Status:     model.RequestStatusPending,
		CreatedAt:  time.Now(),
	}
	s.bridges = append(s.bridges, req)
	s.bridgeByID[req.ID] = req

	out := *req
	return &out
}

func (s *Store) GetWithdraw(id string) (*model.WithdrawRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, ok := s.withdrawByID[id]
	if !ok {
		return nil, model.ErrNotFound
	}

	out := *req
	return &out, nil
}

func (s *Store) GetBridge(id string) (*model.BridgeRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, ok := s.bridgeByID[id]
	if !ok {
		return nil, model.ErrNotFound
	}

	out := *req
	return &out, nil
}

func (s *Store) TransitionWithdraw(id string, from, to model.RequestStatus) (*model.WithdrawRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, ok := s.withdrawByID[id]
	if !ok {
		return nil, model.ErrNotFound
	}
	if req.Status != from {
		return nil, model.ErrInvalidTransition
	}

	now := time.Now()
	req.Status = to
	switch to {
	case model.RequestStatusApproved:
		req.ApprovedAt = &now
	case model.RequestStatusSent:
		req.SentAt = &now
	}

	out := *req
	return &out, nil
}

func (s *Store) TransitionBridge(id string, from, to model.RequestStatus) (*model.BridgeRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, ok := s.bridgeByID[id]
	if !ok {
		return nil, model.ErrNotFound
	}
	if req.Status != from {
		return nil, model.ErrInvalidTransition
	}

	now := time.Now()
	req.Status = to
	switch to {
	case model.RequestStatusApproved:
		req.ApprovedAt = &now
	case model.RequestStatusCompleted:
		req.CompletedAt = &now
	}

	out := *req
	return &out, nil
}

func (s *Store) ListWithdraws(filter Filter) []model.WithdrawRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []model.WithdrawRequest{}
	for _, req := range s.withdraws {
		if filter.Status != "" && req.Status != filter.Status {
			continue
		}
		if filter.Wallet != "" && req.Wallet != filter.Wallet {
			continue
		}
		out = append(out, *req)
	}

	return out
}

func (s *Store) ListBridges(filter Filter) []model.BridgeRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []model.BridgeRequest{}
	for _, req := range s.bridges {
		if filter.Status != "" && req.Status != filter.Status {
			continue
		}
		if filter.Wallet != "" && req.Wallet != filter.Wallet {
			continue
		}
		out = append(out, *req)
	}

	return out
}

func (s *Store) DrainTerminal() []model.ArchivedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows := []model.ArchivedRequest{}
	for _, req := range s.withdraws {
		if req.Status != model.RequestStatusSent || s.archived[req.ID] {
			continue
		}
		rows = append(rows, model.ArchivedRequest{
			RequestID:   req.ID,
			Kind:        model.RequestKindWithdraw,
			Wallet:      req.Wallet,
			Amount:      req.Amount.String(),
			Status:      string(req.Status),
			RequestedAt: req.CreatedAt,
			SettledAt:   req.SentAt,
		})
	}
	for _, req := range s.bridges {
		if req.Status != model.RequestStatusCompleted || s.archived[req.ID] {
			continue
		}
		rows = append(rows, model.ArchivedRequest{
			RequestID:   req.ID,
			Kind:        model.RequestKindBridge,
			Wallet:      req.Wallet,
			Amount:      req.Amount.String(),
			ThrAddress:  req.ThrAddress,
			Direction:   string(req.Direction),
			Status:      string(req.Status),
			RequestedAt: req.CreatedAt,
			SettledAt:   req.CompletedAt,
		})
	}

	return rows
}

func (s *Store) MarkArchived(requestIDs []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range requestIDs {
		s.archived[id] = true
	}
}

// newRequestID builds a time-ordered id with a random suffix, e.g.
// wd_1735689600000_9f1c2d3e.
func newRequestID(prefix string) string {
	suffix := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return fmt.Sprintf("%s_%d_%s", prefix, time.Now().UnixMilli(), suffix)
}
