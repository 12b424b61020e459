package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/tmuriuki/cashlink/internal/logger"
	"github.com/tmuriuki/cashlink/internal/models"
)

// TransferRecordWriteRepository persists direct wallet movement records
type TransferRecordWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewTransferRecordWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *TransferRecordWriteRepository {
	return &TransferRecordWriteRepository{db: db, txGetter: txGetter}
}

func (r *TransferRecordWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts one transfer record row.
func (r *TransferRecordWriteRepository) Save(ctx context.Context, rec *models.TransferRecordDB) error {
	query := `
		INSERT INTO transfer_records
			(record_id, reference, wallet_id, user_id, counterparty_phone, type, amount, fee, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
	`
	args := []any{
		rec.RecordID, rec.Reference, rec.WalletID, rec.UserID,
		rec.CounterpartyPhone, rec.Type, rec.Amount, rec.Fee,
	}

	_, err := r.executor(ctx).ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{rec.Reference, rec.Type, rec.Amount},
		"error", err,
	)

	return err
}

// TransferRecordReadRepository reads direct wallet movement records
type TransferRecordReadRepository struct {
	db *sqlx.DB
}

func NewTransferRecordReadRepository(db *sqlx.DB) *TransferRecordReadRepository {
	return &TransferRecordReadRepository{db: db}
}

// ListRecentByUser retrieves the user's newest transfer records, newest first.
func (r *TransferRecordReadRepository) ListRecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]models.TransferRecordDB, error) {
	query := `
		SELECT record_id, reference, wallet_id, user_id, counterparty_phone, type, amount, fee, created_at
		FROM transfer_records
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	var recs []models.TransferRecordDB
	err := r.db.SelectContext(ctx, &recs, query, userID, limit)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, limit},
		"result", len(recs),
		"error", err,
	)

	return recs, err
}
