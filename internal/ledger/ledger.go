package ledger

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/drxlabs/drx-backend/internal/model"
	"github.com/drxlabs/drx-backend/internal/utils/logger"
)

type Store struct {
	mu          sync.Mutex
	balances    map[string]decimal.Decimal
	inventories map[string][]string
	logger      *logger.Logger
}

func New(logger *logger.Logger) ILedger {
	return &Store{
		balances:    map[string]decimal.Decimal{},
		inventories: map[string][]string{},
		logger:      logger,
	}
}

func (s *Store) Balance(wallet string) decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.balances[wallet]
}

func (s *Store) Inventory(wallet string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]string{}, s.inventories[wallet]...)
}

func (s *Store) Credit(wallet string, amount decimal.Decimal) (decimal.Decimal, error) {
	if amount.Sign() <= 0 {
		return decimal.Zero, model.ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	newBalance := s.balances[wallet].Add(amount)
	s.balances[wallet] = newBalance

	s.logger.Debug("credited wallet", map[string]string{
		"wallet":  wallet,
		"amount":  amount.String(),
		"balance": newBalance.String(),
	})
	return newBalance, nil
}

func (s *Store) Debit(wallet string, amount decimal.Decimal) (decimal.Decimal, error) {
	if amount.Sign() <= 0 {
		return decimal.Zero, model.ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.debit(wallet, amount)
}

func (s *Store) Purchase(wallet, itemID string, price decimal.Decimal) (decimal.Decimal, []string, error) {
	if price.Sign() <= 0 {
		return decimal.Zero, nil, model.ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	newBalance, err := s.debit(wallet, price)
	if err != nil {
		return decimal.Zero, nil, err
	}

	s.inventories[wallet] = append(s.inventories[wallet], itemID)
	return newBalance, append([]string{}, s.inventories[wallet]...), nil
}

func (s *Store) WithdrawAll(wallet string) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	balance := s.balances[wallet]
	if balance.Sign() <= 0 {
		return decimal.Zero, model.ErrNoBalance
	}

	s.balances[wallet] = decimal.Zero
	return balance, nil
}

// debit assumes the caller holds s.mu.
func (s *Store) debit(wallet string, amount decimal.Decimal) (decimal.Decimal, error) {
	balance := s.balances[wallet]
	if balance.LessThan(amount) {
		return decimal.Zero, model.ErrInsufficientBalance
	}

	newBalance := balance.Sub(amount)
	s.balances[wallet] = newBalance
	return newBalance, nil
}
