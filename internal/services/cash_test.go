package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/tmuriuki/cashlink/internal/commission"
	"github.com/tmuriuki/cashlink/internal/models"
)

type cashMocks struct {
	agents      *MockAgentReader
	agentWrite  *MockAgentBalanceWriter
	wallets     *MockWalletReader
	walletWrite *MockWalletWriter
	txRead      *MockTransactionReader
	txWrite     *MockTransactionWriter
	identity    *MockPinValidator
	notifier    *MockNotifier
	runner      *MockTxRunner
}

func newCashService(ctrl *gomock.Controller) (*CashService, *cashMocks) {
	m := &cashMocks{
		agents:      NewMockAgentReader(ctrl),
		agentWrite:  NewMockAgentBalanceWriter(ctrl),
		wallets:     NewMockWalletReader(ctrl),
		walletWrite: NewMockWalletWriter(ctrl),
		txRead:      NewMockTransactionReader(ctrl),
		txWrite:     NewMockTransactionWriter(ctrl),
		identity:    NewMockPinValidator(ctrl),
		notifier:    NewMockNotifier(ctrl),
		runner:      NewMockTxRunner(ctrl),
	}
	svc := NewCashService(
		m.agents, m.agentWrite, m.wallets, m.walletWrite,
		m.txRead, m.txWrite, m.identity, m.notifier, m.runner,
		commission.NewCalculator(), nil,
	)
	return svc, m
}

// runInline makes the mocked runner execute the transactional closure
// directly, the way the real store-backed runner does.
func runInline(runner *MockTxRunner) {
	runner.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
}

func TestCashService_InitiateCashIn_Validation(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newCashService(ctrl)

	_, _, err := svc.InitiateCashIn(ctx, customerID, "", 100, "+233551234567", models.ChannelApp)
	assert.ErrorIs(t, err, ErrMissingField)

	_, _, err = svc.InitiateCashIn(ctx, customerID, "AGT-0042", 100, "", models.ChannelApp)
	assert.ErrorIs(t, err, ErrMissingField)

	_, _, err = svc.InitiateCashIn(ctx, customerID, "AGT-0042", 9.99, "+233551234567", models.ChannelApp)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestCashService_InitiateCashIn_AgentChecks(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newCashService(ctrl)

	m.agents.EXPECT().GetByCode(ctx, "AGT-NONE").Return(nil, nil)
	_, _, err := svc.InitiateCashIn(ctx, customerID, "AGT-NONE", 100, "+233551234567", models.ChannelApp)
	assert.ErrorIs(t, err, ErrAgentNotFound)

	suspended := testAgent("AGT-SUSP", 0, 4.0)
	suspended.Status = models.AgentStatusSuspended
	m.agents.EXPECT().GetByCode(ctx, "AGT-SUSP").Return(&suspended, nil)
	_, _, err = svc.InitiateCashIn(ctx, customerID, "AGT-SUSP", 100, "+233551234567", models.ChannelApp)
	assert.ErrorIs(t, err, ErrAgentUnavailable)

	lowFloat := testAgent("AGT-LOW", 0, 4.0)
	lowFloat.FloatBalance = 50
	m.agents.EXPECT().GetByCode(ctx, "AGT-LOW").Return(&lowFloat, nil)
	_, _, err = svc.InitiateCashIn(ctx, customerID, "AGT-LOW", 100, "+233551234567", models.ChannelApp)
	assert.ErrorIs(t, err, ErrInsufficientAgentFloat)
}

func TestCashService_InitiateCashIn_Success(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newCashService(ctrl)
	svc.WithClock(func() time.Time { return mondayNoon })

	agent := testAgent("AGT-0042", 0, 4.7)
	m.agents.EXPECT().GetByCode(ctx, "AGT-0042").Return(&agent, nil)
	m.txWrite.EXPECT().Save(ctx, gomock.Any()).Return(nil)
	m.notifier.EXPECT().NotifyAgent(ctx, agent.AgentID.String(), "cash_in_requested", gomock.Any())
	m.notifier.EXPECT().LogEvent(ctx, customerID.String(), "cash_in_initiated", gomock.Any())

	txn, eta, err := svc.InitiateCashIn(ctx, customerID, "AGT-0042", 100, "+233551234567", models.ChannelApp)
	assert.NoError(t, err)
	assert.Equal(t, models.TxStatusPending, txn.Status)
	assert.Equal(t, models.TxTypeCashIn, txn.Type)
	assert.Equal(t, 1.00, txn.Commission)
	assert.Equal(t, agent.AgentID, txn.AgentID)
	assert.Equal(t, mondayNoon.Add(EstimatedCompletion), eta)
}

func TestCashService_InitiateCashIn_AgentRateOverride(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newCashService(ctrl)

	agent := testAgent("AGT-0042", 0, 4.7)
	agent.CommissionRates = models.RateTable{models.TxTypeCashIn: 0.02}
	m.agents.EXPECT().GetByCode(ctx, "AGT-0042").Return(&agent, nil)
	m.txWrite.EXPECT().Save(ctx, gomock.Any()).Return(nil)
	m.notifier.EXPECT().NotifyAgent(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
	m.notifier.EXPECT().LogEvent(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())

	txn, _, err := svc.InitiateCashIn(ctx, customerID, "AGT-0042", 100, "+233551234567", models.ChannelUSSD)
	assert.NoError(t, err)
	assert.Equal(t, 2.00, txn.Commission)
}

func TestCashService_InitiateCashOut_InvalidPin(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newCashService(ctrl)

	m.identity.EXPECT().ValidatePin(ctx, customerID, "9999").Return(ErrInvalidCredentials)

	_, _, err := svc.InitiateCashOut(ctx, customerID, "AGT-0042", 100, "9999", models.ChannelApp)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestCashService_InitiateCashOut_BalanceBoundary(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newCashService(ctrl)

	agent := testAgent("AGT-0042", 0, 4.7)

	// 100 at the default 1.5% rate needs 101.50 in the wallet.
	m.identity.EXPECT().ValidatePin(ctx, customerID, "1234").Return(nil)
	m.agents.EXPECT().GetByCode(ctx, "AGT-0042").Return(&agent, nil)
	m.wallets.EXPECT().GetPrimaryByUserID(ctx, customerID).Return(&models.WalletDB{
		WalletID: uuid.New(), UserID: customerID, Balance: 101.49,
	}, nil)

	_, _, err := svc.InitiateCashOut(ctx, customerID, "AGT-0042", 100, "1234", models.ChannelApp)
	assert.ErrorIs(t, err, ErrInsufficientBalance)

	m.identity.EXPECT().ValidatePin(ctx, customerID, "1234").Return(nil)
	m.agents.EXPECT().GetByCode(ctx, "AGT-0042").Return(&agent, nil)
	m.wallets.EXPECT().GetPrimaryByUserID(ctx, customerID).Return(&models.WalletDB{
		WalletID: uuid.New(), UserID: customerID, Balance: 101.50,
	}, nil)
	m.txWrite.EXPECT().Save(ctx, gomock.Any()).Return(nil)
	m.notifier.EXPECT().NotifyAgent(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
	m.notifier.EXPECT().LogEvent(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())

	txn, total, err := svc.InitiateCashOut(ctx, customerID, "AGT-0042", 100, "1234", models.ChannelApp)
	assert.NoError(t, err)
	assert.Equal(t, 101.50, total)
	assert.Equal(t, 1.50, txn.Commission)
}

func TestCashService_InitiateCashOut_InsufficientAgentCash(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newCashService(ctrl)

	agent := testAgent("AGT-0042", 0, 4.7)
	agent.CashBalance = 50

	m.identity.EXPECT().ValidatePin(ctx, customerID, "1234").Return(nil)
	m.agents.EXPECT().GetByCode(ctx, "AGT-0042").Return(&agent, nil)
	m.wallets.EXPECT().GetPrimaryByUserID(ctx, customerID).Return(&models.WalletDB{
		WalletID: uuid.New(), UserID: customerID, Balance: 500,
	}, nil)

	_, _, err := svc.InitiateCashOut(ctx, customerID, "AGT-0042", 100, "1234", models.ChannelApp)
	assert.ErrorIs(t, err, ErrInsufficientAgentCash)
}

// pendingCashIn wires the confirmation preamble: PIN check, acting agent
// lookup and the pending transaction read.
func pendingCashIn(ctx context.Context, m *cashMocks, agentUserID uuid.UUID) (*models.AgentDB, *models.CashTransactionDB) {
	agent := testAgent("AGT-0042", 0, 4.7)
	agent.UserID = agentUserID

	txn := &models.CashTransactionDB{
		TransactionID: uuid.New(),
		Reference:     uuid.NewString(),
		AgentID:       agent.AgentID,
		CustomerID:    uuid.New(),
		Type:          models.TxTypeCashIn,
		Amount:        100,
		Commission:    1.00,
		Status:        models.TxStatusPending,
	}

	m.identity.EXPECT().ValidatePin(ctx, agentUserID, "1234").Return(nil)
	m.agents.EXPECT().GetByOwner(ctx, agentUserID).Return(&agent, nil)
	m.txRead.EXPECT().GetByID(ctx, txn.TransactionID).Return(txn, nil)

	return &agent, txn
}

func TestCashService_Confirm_Validation(t *testing.T) {
	ctx := context.Background()
	agentUserID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newCashService(ctrl)

	_, err := svc.Confirm(ctx, agentUserID, uuid.New(), "", models.ConfirmActionConfirm)
	assert.ErrorIs(t, err, ErrMissingField)

	_, err = svc.Confirm(ctx, agentUserID, uuid.New(), "1234", "approve")
	assert.ErrorIs(t, err, ErrMissingField)
}

func TestCashService_Confirm_Ownership(t *testing.T) {
	ctx := context.Background()
	agentUserID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newCashService(ctrl)

	_, txn := pendingCashIn(ctx, m, agentUserID)
	txn.AgentID = uuid.New() // belongs to somebody else

	_, err := svc.Confirm(ctx, agentUserID, txn.TransactionID, "1234", models.ConfirmActionConfirm)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestCashService_Confirm_NotPending(t *testing.T) {
	ctx := context.Background()
	agentUserID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newCashService(ctrl)

	_, txn := pendingCashIn(ctx, m, agentUserID)
	txn.Status = models.TxStatusCompleted

	_, err := svc.Confirm(ctx, agentUserID, txn.TransactionID, "1234", models.ConfirmActionConfirm)
	assert.ErrorIs(t, err, ErrTransactionNotPending)
}

func TestCashService_Confirm_Cancel(t *testing.T) {
	ctx := context.Background()
	agentUserID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newCashService(ctrl)

	_, txn := pendingCashIn(ctx, m, agentUserID)
	m.txWrite.EXPECT().UpdateStatus(ctx, txn.TransactionID, models.TxStatusCancelled).Return(nil)
	m.notifier.EXPECT().LogEvent(ctx, agentUserID.String(), "transaction_cancelled", txn.Reference)

	// No runner, no wallet and no agent balance expectations: a cancel
	// must not move money.
	out, err := svc.Confirm(ctx, agentUserID, txn.TransactionID, "1234", models.ConfirmActionCancel)
	assert.NoError(t, err)
	assert.Equal(t, models.TxStatusCancelled, out.Status)
}

func TestCashService_Confirm_CashIn(t *testing.T) {
	ctx := context.Background()
	agentUserID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newCashService(ctrl)
	svc.WithClock(func() time.Time { return mondayNoon })

	agent, txn := pendingCashIn(ctx, m, agentUserID)

	runInline(m.runner)
	m.txWrite.EXPECT().UpdateStatus(gomock.Any(), txn.TransactionID, models.TxStatusCompleted).Return(nil)
	m.walletWrite.EXPECT().Credit(gomock.Any(), txn.CustomerID, 100.0).Return(nil)
	m.agentWrite.EXPECT().ApplyCashIn(gomock.Any(), agent.AgentID, 100.0).Return(nil)
	m.notifier.EXPECT().NotifyAgent(ctx, agent.AgentID.String(), "transaction_completed", gomock.Any())
	m.notifier.EXPECT().LogEvent(ctx, agentUserID.String(), "transaction_completed", txn.Reference)

	out, err := svc.Confirm(ctx, agentUserID, txn.TransactionID, "1234", models.ConfirmActionConfirm)
	assert.NoError(t, err)
	assert.Equal(t, models.TxStatusCompleted, out.Status)
	assert.NotNil(t, out.CompletedAt)
	assert.Equal(t, mondayNoon, *out.CompletedAt)
}

func TestCashService_Confirm_CashOut_DebitsTotal(t *testing.T) {
	ctx := context.Background()
	agentUserID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newCashService(ctrl)

	agent, txn := pendingCashIn(ctx, m, agentUserID)
	txn.Type = models.TxTypeCashOut
	txn.Commission = 1.50

	runInline(m.runner)
	m.txWrite.EXPECT().UpdateStatus(gomock.Any(), txn.TransactionID, models.TxStatusCompleted).Return(nil)
	m.walletWrite.EXPECT().Debit(gomock.Any(), txn.CustomerID, 101.50).Return(nil)
	m.agentWrite.EXPECT().ApplyCashOut(gomock.Any(), agent.AgentID, 100.0).Return(nil)
	m.notifier.EXPECT().NotifyAgent(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
	m.notifier.EXPECT().LogEvent(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())

	out, err := svc.Confirm(ctx, agentUserID, txn.TransactionID, "1234", models.ConfirmActionConfirm)
	assert.NoError(t, err)
	assert.Equal(t, models.TxStatusCompleted, out.Status)
}

func TestCashService_Confirm_LostRace(t *testing.T) {
	ctx := context.Background()
	agentUserID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newCashService(ctrl)

	_, txn := pendingCashIn(ctx, m, agentUserID)

	// A concurrent confirmation won the status CAS between our read and
	// our update. Nothing is applied and nothing is marked failed.
	runInline(m.runner)
	m.txWrite.EXPECT().UpdateStatus(gomock.Any(), txn.TransactionID, models.TxStatusCompleted).Return(sql.ErrNoRows)

	_, err := svc.Confirm(ctx, agentUserID, txn.TransactionID, "1234", models.ConfirmActionConfirm)
	assert.ErrorIs(t, err, ErrTransactionNotPending)
}

func TestCashService_Confirm_GuardViolationMarksFailed(t *testing.T) {
	ctx := context.Background()
	agentUserID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newCashService(ctrl)

	_, txn := pendingCashIn(ctx, m, agentUserID)
	txn.Type = models.TxTypeCashOut
	txn.Commission = 1.50

	runInline(m.runner)
	m.txWrite.EXPECT().UpdateStatus(gomock.Any(), txn.TransactionID, models.TxStatusCompleted).Return(nil)
	// The wallet emptied between initiation and confirmation.
	m.walletWrite.EXPECT().Debit(gomock.Any(), txn.CustomerID, 101.50).Return(sql.ErrNoRows)
	m.txWrite.EXPECT().UpdateStatus(ctx, txn.TransactionID, models.TxStatusFailed).Return(nil)

	_, err := svc.Confirm(ctx, agentUserID, txn.TransactionID, "1234", models.ConfirmActionConfirm)
	assert.ErrorIs(t, err, ErrBalanceInvariantViolation)
}
