package repositories

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestWalletCreditDebit(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	userID := seedUser(t, db, "+233551111111")
	seedWallet(t, db, userID, 0)

	writer := NewWalletWriteRepository(db, nil)

	assert.NoError(t, writer.Credit(ctx, userID, 100))
	assert.Equal(t, 100.0, walletBalance(t, db, userID))

	assert.NoError(t, writer.Debit(ctx, userID, 30))
	assert.Equal(t, 70.0, walletBalance(t, db, userID))

	// The guard rejects a debit past zero and leaves the balance alone.
	err := writer.Debit(ctx, userID, 100)
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.Equal(t, 70.0, walletBalance(t, db, userID))
}

func TestWalletGetPrimaryByUserID(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	userID := seedUser(t, db, "+233551111111")
	walletID := seedWallet(t, db, userID, 42.50)

	reader := NewWalletReadRepository(db)

	wallet, err := reader.GetPrimaryByUserID(ctx, userID)
	assert.NoError(t, err)
	assert.Equal(t, walletID, wallet.WalletID)
	assert.Equal(t, 42.50, wallet.Balance)
	assert.True(t, wallet.IsPrimary)

	wallet, err = reader.GetPrimaryByUserID(ctx, uuid.New())
	assert.NoError(t, err)
	assert.Nil(t, wallet)
}

func TestWalletRunnerRollsBackBothLegs(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	senderID := seedUser(t, db, "+233551111111")
	recipientID := seedUser(t, db, "+233552222222")
	seedWallet(t, db, senderID, 100)
	seedWallet(t, db, recipientID, 0)

	writer := NewWalletWriteRepository(db, TxFromContext)
	runner := NewRunner(db)

	// The credit lands first inside the transaction; when the debit hits
	// the guard the whole thing unwinds.
	err := runner.Do(ctx, func(ctx context.Context) error {
		if err := writer.Credit(ctx, recipientID, 500); err != nil {
			return err
		}
		return writer.Debit(ctx, senderID, 500)
	})
	assert.ErrorIs(t, err, sql.ErrNoRows)

	assert.Equal(t, 100.0, walletBalance(t, db, senderID))
	assert.Equal(t, 0.0, walletBalance(t, db, recipientID))
}
