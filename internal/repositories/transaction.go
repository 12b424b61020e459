package repositories

import (
	"context"
	"database/sql"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/tmuriuki/cashlink/internal/logger"
	"github.com/tmuriuki/cashlink/internal/models"
)

const txColumns = `
	transaction_id, reference, agent_id, customer_id, customer_phone,
	type, amount, commission, status, channel, created_at, completed_at
`

// TransactionWriteRepository handles cash transaction write operations
type TransactionWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewTransactionWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *TransactionWriteRepository {
	return &TransactionWriteRepository{db: db, txGetter: txGetter}
}

func (r *TransactionWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new pending transaction. The unique constraint on
// reference makes re-submission with the same reference fail instead of
// creating a second row.
func (r *TransactionWriteRepository) Save(ctx context.Context, txn *models.CashTransactionDB) error {
	query := `
		INSERT INTO cash_transactions
			(transaction_id, reference, agent_id, customer_id, customer_phone,
			 type, amount, commission, status, channel, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
	`
	args := []any{
		txn.TransactionID, txn.Reference, txn.AgentID, txn.CustomerID,
		txn.CustomerPhone, txn.Type, txn.Amount, txn.Commission,
		txn.Status, txn.Channel,
	}

	_, err := r.executor(ctx).ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{txn.Reference, txn.Type, txn.Amount},
		"error", err,
	)

	return err
}

// UpdateStatus moves a pending transaction to the given terminal status.
// The status guard is the compare-and-set: when the row is no longer
// pending the statement affects nothing and sql.ErrNoRows is returned.
func (r *TransactionWriteRepository) UpdateStatus(ctx context.Context, transactionID uuid.UUID, status string) error {
	query := `
		UPDATE cash_transactions
		SET status = $2,
		    completed_at = CASE WHEN $2 = 'completed' THEN NOW() ELSE completed_at END
		WHERE transaction_id = $1 AND status = 'pending'
		RETURNING status
	`

	var newStatus string
	err := sqlx.GetContext(ctx, r.executor(ctx), &newStatus, query, transactionID, status)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{transactionID, status},
		"result", newStatus,
		"error", err,
	)

	return err
}

// TransactionReadRepository handles cash transaction read operations
type TransactionReadRepository struct {
	db *sqlx.DB
}

func NewTransactionReadRepository(db *sqlx.DB) *TransactionReadRepository {
	return &TransactionReadRepository{db: db}
}

// GetByID retrieves a transaction by identifier. Returns nil when absent.
func (r *TransactionReadRepository) GetByID(ctx context.Context, transactionID uuid.UUID) (*models.CashTransactionDB, error) {
	query := `
		SELECT ` + txColumns + `
		FROM cash_transactions
		WHERE transaction_id = $1
	`

	var txn models.CashTransactionDB
	err := r.db.GetContext(ctx, &txn, query, transactionID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{transactionID},
		"error", err,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &txn, nil
}

// ListPendingByAgent retrieves an agent's transactions awaiting confirmation,
// oldest first.
func (r *TransactionReadRepository) ListPendingByAgent(ctx context.Context, agentID uuid.UUID) ([]models.CashTransactionDB, error) {
	query := `
		SELECT ` + txColumns + `
		FROM cash_transactions
		WHERE agent_id = $1 AND status = 'pending'
		ORDER BY created_at
	`

	var txns []models.CashTransactionDB
	err := r.db.SelectContext(ctx, &txns, query, agentID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{agentID},
		"result", len(txns),
		"error", err,
	)

	return txns, err
}

// DailyStats aggregates an agent's completed transactions since local midnight.
func (r *TransactionReadRepository) DailyStats(ctx context.Context, agentID uuid.UUID) (*models.DailyStats, error) {
	query := `
		SELECT
			COUNT(*) AS transaction_count,
			COALESCE(SUM(amount), 0) AS volume,
			COALESCE(SUM(commission), 0) AS commission,
			COALESCE(SUM(amount) FILTER (WHERE type = 'cash_in'), 0) AS cash_in_volume,
			COALESCE(SUM(amount) FILTER (WHERE type = 'cash_out'), 0) AS cash_out_volume
		FROM cash_transactions
		WHERE agent_id = $1
		  AND status = 'completed'
		  AND completed_at >= date_trunc('day', NOW())
	`

	var stats struct {
		TransactionCount int64   `db:"transaction_count"`
		Volume           float64 `db:"volume"`
		Commission       float64 `db:"commission"`
		CashInVolume     float64 `db:"cash_in_volume"`
		CashOutVolume    float64 `db:"cash_out_volume"`
	}
	err := r.db.GetContext(ctx, &stats, query, agentID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{agentID},
		"result", stats,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &models.DailyStats{
		TransactionCount: stats.TransactionCount,
		Volume:           stats.Volume,
		Commission:       stats.Commission,
		CashInVolume:     stats.CashInVolume,
		CashOutVolume:    stats.CashOutVolume,
	}, nil
}
