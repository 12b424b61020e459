package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/tmuriuki/cashlink/internal/logger"
	"github.com/tmuriuki/cashlink/internal/models"
)

// --- Setup Postgres ---
func setupPostgres(t *testing.T) (*sqlx.DB, func()) {
	logger.New("debug")
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "secret", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(30 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, err := container.Host(ctx)
	assert.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	assert.NoError(t, err)

	dsn := fmt.Sprintf("postgres://postgres:secret@%s:%s/testdb?sslmode=disable", host, port.Port())
	db, err := sqlx.Connect("pgx", dsn)
	assert.NoError(t, err)

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	migrations := []string{
		`CREATE TABLE IF NOT EXISTS users (
			user_id UUID PRIMARY KEY,
			phone VARCHAR(20) NOT NULL UNIQUE,
			full_name VARCHAR(100) NOT NULL DEFAULT '',
			pin_hash VARCHAR(255) NOT NULL DEFAULT '',
			created_at TIMESTAMP NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMP NOT NULL DEFAULT NOW()
		);`,
		`CREATE TABLE IF NOT EXISTS wallets (
			wallet_id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
			currency CHAR(3) NOT NULL DEFAULT 'GHS',
			balance NUMERIC(20,2) NOT NULL DEFAULT 0.0,
			is_primary BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMP NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMP NOT NULL DEFAULT NOW(),
			UNIQUE (user_id, currency)
		);`,
		`CREATE TABLE IF NOT EXISTS agents (
			agent_id UUID PRIMARY KEY,
			user_id UUID NOT NULL,
			code VARCHAR(20) NOT NULL UNIQUE,
			latitude DOUBLE PRECISION NOT NULL,
			longitude DOUBLE PRECISION NOT NULL,
			address VARCHAR(255) NOT NULL DEFAULT '',
			city VARCHAR(100) NOT NULL DEFAULT '',
			region VARCHAR(100) NOT NULL DEFAULT '',
			services JSONB NOT NULL DEFAULT '[]',
			cash_balance NUMERIC(20,2) NOT NULL DEFAULT 0.0,
			float_balance NUMERIC(20,2) NOT NULL DEFAULT 0.0,
			commission_rates JSONB,
			status VARCHAR(20) NOT NULL DEFAULT 'active',
			working_hours JSONB NOT NULL DEFAULT '{}',
			rating NUMERIC(3,2) NOT NULL DEFAULT 0.0,
			total_transactions BIGINT NOT NULL DEFAULT 0,
			tier VARCHAR(20) NOT NULL DEFAULT 'basic',
			created_at TIMESTAMP NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMP NOT NULL DEFAULT NOW()
		);`,
		`CREATE TABLE IF NOT EXISTS cash_transactions (
			transaction_id UUID PRIMARY KEY,
			reference VARCHAR(64) NOT NULL UNIQUE,
			agent_id UUID NOT NULL,
			customer_id UUID NOT NULL,
			customer_phone VARCHAR(20) NOT NULL DEFAULT '',
			type VARCHAR(20) NOT NULL,
			amount NUMERIC(20,2) NOT NULL,
			commission NUMERIC(20,2) NOT NULL DEFAULT 0.0,
			status VARCHAR(20) NOT NULL DEFAULT 'pending',
			channel VARCHAR(10) NOT NULL DEFAULT 'app',
			created_at TIMESTAMP NOT NULL DEFAULT NOW(),
			completed_at TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS transfer_records (
			record_id UUID PRIMARY KEY,
			reference VARCHAR(64) NOT NULL,
			wallet_id UUID NOT NULL,
			user_id UUID NOT NULL,
			counterparty_phone VARCHAR(20) NOT NULL DEFAULT '',
			type VARCHAR(20) NOT NULL,
			amount NUMERIC(20,2) NOT NULL,
			fee NUMERIC(20,2) NOT NULL DEFAULT 0.0,
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		);`,
	}

	for _, m := range migrations {
		_, err = db.Exec(m)
		assert.NoError(t, err)
	}

	return db, func() {
		db.Close()
		container.Terminate(ctx)
	}
}

// --- Helpers ---
func seedUser(t *testing.T, db *sqlx.DB, phone string) uuid.UUID {
	userID := uuid.New()
	_, err := db.Exec(`INSERT INTO users (user_id, phone, full_name, pin_hash) VALUES ($1, $2, $3, $4)`,
		userID, phone, "Test User", "hash")
	assert.NoError(t, err)
	return userID
}

func seedWallet(t *testing.T, db *sqlx.DB, userID uuid.UUID, balance float64) uuid.UUID {
	walletID := uuid.New()
	_, err := db.Exec(`INSERT INTO wallets (wallet_id, user_id, balance) VALUES ($1, $2, $3)`,
		walletID, userID, balance)
	assert.NoError(t, err)
	return walletID
}

func seedAgent(t *testing.T, db *sqlx.DB, code string, cash, float float64) uuid.UUID {
	agentID := uuid.New()
	_, err := db.Exec(`
		INSERT INTO agents (agent_id, user_id, code, latitude, longitude, services, cash_balance, float_balance, working_hours)
		VALUES ($1, $2, $3, 5.6037, -0.1870, $4, $5, $6, $7)`,
		agentID, uuid.New(), code,
		models.StringList{models.ServiceCashIn, models.ServiceCashOut},
		cash, float,
		models.WorkingHours{Days: models.StringList{"mon", "tue", "wed", "thu", "fri"}, Open: "08:00", Close: "20:00"},
	)
	assert.NoError(t, err)
	return agentID
}

func walletBalance(t *testing.T, db *sqlx.DB, userID uuid.UUID) float64 {
	var balance float64
	err := db.Get(&balance, `SELECT balance FROM wallets WHERE user_id = $1 AND is_primary = TRUE`, userID)
	assert.NoError(t, err)
	return balance
}

func agentBalances(t *testing.T, db *sqlx.DB, agentID uuid.UUID) (cash, float float64) {
	err := db.QueryRow(`SELECT cash_balance, float_balance FROM agents WHERE agent_id = $1`, agentID).
		Scan(&cash, &float)
	assert.NoError(t, err)
	return cash, float
}
