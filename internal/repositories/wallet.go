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

// WalletReadRepository handles wallet read operations
type WalletReadRepository struct {
	db *sqlx.DB
}

func NewWalletReadRepository(db *sqlx.DB) *WalletReadRepository {
	return &WalletReadRepository{db: db}
}

// GetPrimaryByUserID retrieves the user's primary wallet. Returns nil when absent.
func (r *WalletReadRepository) GetPrimaryByUserID(ctx context.Context, userID uuid.UUID) (*models.WalletDB, error) {
	query := `
		SELECT wallet_id, user_id, currency, balance, is_primary, created_at, updated_at
		FROM wallets
		WHERE user_id = $1 AND is_primary = TRUE
	`

	var wallet models.WalletDB
	err := r.db.GetContext(ctx, &wallet, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &wallet, nil
}

// WalletWriteRepository handles wallet write operations
type WalletWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewWalletWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *WalletWriteRepository {
	return &WalletWriteRepository{db: db, txGetter: txGetter}
}

func (r *WalletWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Credit increases the user's primary wallet balance in a single statement.
func (r *WalletWriteRepository) Credit(ctx context.Context, userID uuid.UUID, amount float64) error {
	query := `
		UPDATE wallets
		SET balance = balance + $2, updated_at = NOW()
		WHERE user_id = $1 AND is_primary = TRUE
		RETURNING balance
	`

	var balance float64
	err := sqlx.GetContext(ctx, r.executor(ctx), &balance, query, userID, amount)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, amount},
		"result", balance,
		"error", err,
	)

	return err
}

// Debit decreases the user's primary wallet balance. The balance guard makes
// an insufficient debit fail with sql.ErrNoRows rather than go negative.
func (r *WalletWriteRepository) Debit(ctx context.Context, userID uuid.UUID, amount float64) error {
	query := `
		UPDATE wallets
		SET balance = balance - $2, updated_at = NOW()
		WHERE user_id = $1 AND is_primary = TRUE AND balance >= $2
		RETURNING balance
	`

	var balance float64
	err := sqlx.GetContext(ctx, r.executor(ctx), &balance, query, userID, amount)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, amount},
		"result", balance,
		"error", err,
	)

	return err
}
