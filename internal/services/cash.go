package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tmuriuki/cashlink/internal/commission"
	"github.com/tmuriuki/cashlink/internal/logger"
	"github.com/tmuriuki/cashlink/internal/metrics"
	"github.com/tmuriuki/cashlink/internal/models"
)

// EstimatedCompletion is how far ahead the completion estimate on a fresh
// transaction is set. Display only, not an enforced expiry.
const EstimatedCompletion = 10 * time.Minute

// AgentBalanceWriter applies confirmed balance deltas on the agent side.
// Both operations are guarded: they return sql.ErrNoRows instead of driving
// a balance negative.
type AgentBalanceWriter interface {
	ApplyCashIn(ctx context.Context, agentID uuid.UUID, amount float64) error
	ApplyCashOut(ctx context.Context, agentID uuid.UUID, amount float64) error
}

// WalletReader defines methods for reading user wallets.
type WalletReader interface {
	GetPrimaryByUserID(ctx context.Context, userID uuid.UUID) (*models.WalletDB, error) // Returns nil when absent
}

// WalletWriter defines guarded wallet balance mutations.
type WalletWriter interface {
	Credit(ctx context.Context, userID uuid.UUID, amount float64) error
	Debit(ctx context.Context, userID uuid.UUID, amount float64) error // sql.ErrNoRows on insufficiency
}

// TransactionReader defines cash transaction lookups.
type TransactionReader interface {
	GetByID(ctx context.Context, transactionID uuid.UUID) (*models.CashTransactionDB, error) // Returns nil when absent
}

// TransactionWriter defines cash transaction persistence.
type TransactionWriter interface {
	Save(ctx context.Context, txn *models.CashTransactionDB) error
	UpdateStatus(ctx context.Context, transactionID uuid.UUID, status string) error // CAS on pending; sql.ErrNoRows when not pending
}

// PinValidator verifies a user's transaction PIN.
type PinValidator interface {
	ValidatePin(ctx context.Context, userID uuid.UUID, pin string) error
}

// Notifier delivers best-effort agent notifications and audit events.
// Implementations must never fail the caller.
type Notifier interface {
	NotifyAgent(ctx context.Context, agentID, eventType string, payload any)
	LogEvent(ctx context.Context, userID, eventType, details string)
}

// TxRunner executes a function inside a single atomic store transaction.
type TxRunner interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// CashService is the transactional core: all cash-in/cash-out money
// movement and its invariants live here. Initiation performs read-only
// sufficiency checks; balances move only at confirmation, re-checked
// inside one atomic update.
type CashService struct {
	agents       AgentReader
	agentWrite   AgentBalanceWriter
	wallets      WalletReader
	walletWrite  WalletWriter
	txRead       TransactionReader
	txWrite      TransactionWriter
	identity     PinValidator
	notifier     Notifier
	runner       TxRunner
	calc         *commission.Calculator
	m            *metrics.Metrics
	now          func() time.Time
}

// NewCashService creates a new CashService. Metrics may be nil.
func NewCashService(
	agents AgentReader,
	agentWrite AgentBalanceWriter,
	wallets WalletReader,
	walletWrite WalletWriter,
	txRead TransactionReader,
	txWrite TransactionWriter,
	identity PinValidator,
	notifier Notifier,
	runner TxRunner,
	calc *commission.Calculator,
	m *metrics.Metrics,
) *CashService {
	return &CashService{
		agents:      agents,
		agentWrite:  agentWrite,
		wallets:     wallets,
		walletWrite: walletWrite,
		txRead:      txRead,
		txWrite:     txWrite,
		identity:    identity,
		notifier:    notifier,
		runner:      runner,
		calc:        calc,
		m:           m,
		now:         time.Now,
	}
}

// WithClock overrides the service clock, for tests.
func (s *CashService) WithClock(now func() time.Time) *CashService {
	s.now = now
	return s
}

// resolveAgent loads the agent by code and checks it can serve.
func (s *CashService) resolveAgent(ctx context.Context, agentCode string) (*models.AgentDB, error) {
	agent, err := s.agents.GetByCode(ctx, agentCode)
	if err != nil {
		logger.Log.Errorw("failed to resolve agent", "code", agentCode, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	if agent == nil {
		return nil, ErrAgentNotFound
	}
	if agent.Status != models.AgentStatusActive {
		return nil, ErrAgentUnavailable
	}
	return agent, nil
}

// InitiateCashIn creates a pending cash-in: the customer hands the agent
// physical cash and will receive digital credit once the agent confirms.
// No balance moves here.
func (s *CashService) InitiateCashIn(ctx context.Context, customerID uuid.UUID, agentCode string, amount float64, customerPhone, channel string) (*models.CashTransactionDB, time.Time, error) {
	if agentCode == "" || customerPhone == "" || amount == 0 {
		return nil, time.Time{}, ErrMissingField
	}
	if amount < models.MinTxAmount {
		return nil, time.Time{}, ErrInvalidAmount
	}

	agent, err := s.resolveAgent(ctx, agentCode)
	if err != nil {
		return nil, time.Time{}, err
	}
	if agent.FloatBalance < amount {
		return nil, time.Time{}, ErrInsufficientAgentFloat
	}

	fee := s.calc.FeeWithRates(amount, models.TxTypeCashIn, agent.CommissionRates)

	txn := &models.CashTransactionDB{
		TransactionID: uuid.New(),
		Reference:     uuid.NewString(),
		AgentID:       agent.AgentID,
		CustomerID:    customerID,
		CustomerPhone: customerPhone,
		Type:          models.TxTypeCashIn,
		Amount:        amount,
		Commission:    fee,
		Status:        models.TxStatusPending,
		Channel:       channel,
		CreatedAt:     s.now(),
	}
	if err := s.txWrite.Save(ctx, txn); err != nil {
		logger.Log.Errorw("failed to save cash-in transaction", "reference", txn.Reference, "error", err)
		return nil, time.Time{}, err
	}

	// Best effort; a notification failure never rolls back the transaction.
	s.notifier.NotifyAgent(ctx, agent.AgentID.String(), "cash_in_requested", txn)
	s.notifier.LogEvent(ctx, customerID.String(), "cash_in_initiated", txn.Reference)
	if s.m != nil {
		s.m.CashTransactions.WithLabelValues(models.TxTypeCashIn, models.TxStatusPending).Inc()
	}

	return txn, txn.CreatedAt.Add(EstimatedCompletion), nil
}

// InitiateCashOut creates a pending cash-out after verifying the customer
// can cover amount plus commission and the agent holds enough physical
// cash. Returns the transaction and the total the customer will be
// debited at confirmation.
func (s *CashService) InitiateCashOut(ctx context.Context, customerID uuid.UUID, agentCode string, amount float64, pin, channel string) (*models.CashTransactionDB, float64, error) {
	if agentCode == "" || pin == "" || amount == 0 {
		return nil, 0, ErrMissingField
	}
	if amount < models.MinTxAmount {
		return nil, 0, ErrInvalidAmount
	}

	if err := s.identity.ValidatePin(ctx, customerID, pin); err != nil {
		return nil, 0, err
	}

	agent, err := s.resolveAgent(ctx, agentCode)
	if err != nil {
		return nil, 0, err
	}

	fee := s.calc.FeeWithRates(amount, models.TxTypeCashOut, agent.CommissionRates)
	total := commission.Round2(amount + fee)

	wallet, err := s.wallets.GetPrimaryByUserID(ctx, customerID)
	if err != nil {
		logger.Log.Errorw("failed to read customer wallet", "customer_id", customerID, "error", err)
		return nil, 0, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	if wallet == nil {
		return nil, 0, ErrWalletNotFound
	}
	if wallet.Balance < total {
		return nil, 0, ErrInsufficientBalance
	}

	if agent.CashBalance < amount {
		return nil, 0, ErrInsufficientAgentCash
	}

	txn := &models.CashTransactionDB{
		TransactionID: uuid.New(),
		Reference:     uuid.NewString(),
		AgentID:       agent.AgentID,
		CustomerID:    customerID,
		Type:          models.TxTypeCashOut,
		Amount:        amount,
		Commission:    fee,
		Status:        models.TxStatusPending,
		Channel:       channel,
		CreatedAt:     s.now(),
	}
	if err := s.txWrite.Save(ctx, txn); err != nil {
		logger.Log.Errorw("failed to save cash-out transaction", "reference", txn.Reference, "error", err)
		return nil, 0, err
	}

	s.notifier.NotifyAgent(ctx, agent.AgentID.String(), "cash_out_requested", txn)
	s.notifier.LogEvent(ctx, customerID.String(), "cash_out_initiated", txn.Reference)
	if s.m != nil {
		s.m.CashTransactions.WithLabelValues(models.TxTypeCashOut, models.TxStatusPending).Inc()
	}

	return txn, total, nil
}

// Confirm settles or cancels a pending transaction on behalf of the
// serving agent. On confirm the balance deltas for the transaction type
// are applied atomically with the status change; a guard failure marks
// the transaction failed and nothing is applied.
func (s *CashService) Confirm(ctx context.Context, agentUserID, transactionID uuid.UUID, pin, action string) (*models.CashTransactionDB, error) {
	if pin == "" || (action != models.ConfirmActionConfirm && action != models.ConfirmActionCancel) {
		return nil, ErrMissingField
	}

	if err := s.identity.ValidatePin(ctx, agentUserID, pin); err != nil {
		return nil, err
	}

	agent, err := s.agents.GetByOwner(ctx, agentUserID)
	if err != nil {
		logger.Log.Errorw("failed to resolve acting agent", "user_id", agentUserID, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	if agent == nil {
		return nil, ErrAgentNotFound
	}

	txn, err := s.txRead.GetByID(ctx, transactionID)
	if err != nil {
		logger.Log.Errorw("failed to load transaction", "transaction_id", transactionID, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	if txn == nil {
		return nil, ErrTransactionNotFound
	}
	if txn.Status != models.TxStatusPending {
		return nil, ErrTransactionNotPending
	}
	if txn.AgentID != agent.AgentID {
		return nil, ErrUnauthorized
	}

	if action == models.ConfirmActionCancel {
		if err := s.txWrite.UpdateStatus(ctx, transactionID, models.TxStatusCancelled); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, ErrTransactionNotPending
			}
			return nil, err
		}
		txn.Status = models.TxStatusCancelled
		s.notifier.LogEvent(ctx, agentUserID.String(), "transaction_cancelled", txn.Reference)
		if s.m != nil {
			s.m.CashTransactions.WithLabelValues(txn.Type, models.TxStatusCancelled).Inc()
		}
		return txn, nil
	}

	err = s.runner.Do(ctx, func(ctx context.Context) error {
		// The status CAS and both balance guards run against current
		// balances inside this one store transaction, so racing
		// confirmations cannot double-apply or drive anything negative.
		if err := s.txWrite.UpdateStatus(ctx, transactionID, models.TxStatusCompleted); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrTransactionNotPending
			}
			return err
		}

		switch txn.Type {
		case models.TxTypeCashIn:
			if err := s.walletWrite.Credit(ctx, txn.CustomerID, txn.Amount); err != nil {
				return guardViolation(err)
			}
			if err := s.agentWrite.ApplyCashIn(ctx, txn.AgentID, txn.Amount); err != nil {
				return guardViolation(err)
			}
		case models.TxTypeCashOut:
			if err := s.walletWrite.Debit(ctx, txn.CustomerID, commission.Round2(txn.Amount+txn.Commission)); err != nil {
				return guardViolation(err)
			}
			if err := s.agentWrite.ApplyCashOut(ctx, txn.AgentID, txn.Amount); err != nil {
				return guardViolation(err)
			}
		default:
			return fmt.Errorf("unknown transaction type %q", txn.Type)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrBalanceInvariantViolation) {
			// The transaction must end up failed, not pending, so it is
			// never retried automatically and stays visible for manual
			// reconciliation. This runs outside the rolled-back store
			// transaction.
			if markErr := s.txWrite.UpdateStatus(ctx, transactionID, models.TxStatusFailed); markErr != nil {
				logger.Log.Errorw("failed to mark transaction failed", "transaction_id", transactionID, "error", markErr)
			}
			if s.m != nil {
				s.m.CashTransactions.WithLabelValues(txn.Type, models.TxStatusFailed).Inc()
			}
		}
		return nil, err
	}

	completed := s.now()
	txn.Status = models.TxStatusCompleted
	txn.CompletedAt = &completed

	s.notifier.NotifyAgent(ctx, agent.AgentID.String(), "transaction_completed", txn)
	s.notifier.LogEvent(ctx, agentUserID.String(), "transaction_completed", txn.Reference)
	if s.m != nil {
		s.m.CashTransactions.WithLabelValues(txn.Type, models.TxStatusCompleted).Inc()
	}

	return txn, nil
}

func guardViolation(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrBalanceInvariantViolation
	}
	return err
}
