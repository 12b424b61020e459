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

const agentColumns = `
	agent_id, user_id, code, latitude, longitude, address, city, region,
	services, cash_balance, float_balance, commission_rates, status,
	working_hours, rating, total_transactions, tier, created_at, updated_at
`

// AgentReadRepository handles agent read operations
type AgentReadRepository struct {
	db *sqlx.DB
}

func NewAgentReadRepository(db *sqlx.DB) *AgentReadRepository {
	return &AgentReadRepository{db: db}
}

// GetByCode retrieves an agent by its unique code. Returns nil when absent.
func (r *AgentReadRepository) GetByCode(ctx context.Context, code string) (*models.AgentDB, error) {
	query := `
		SELECT ` + agentColumns + `
		FROM agents
		WHERE code = $1
	`

	var agent models.AgentDB
	err := r.db.GetContext(ctx, &agent, query, code)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{code},
		"error", err,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &agent, nil
}

// GetByOwner retrieves the agent owned by the given user. Returns nil when absent.
func (r *AgentReadRepository) GetByOwner(ctx context.Context, userID uuid.UUID) (*models.AgentDB, error) {
	query := `
		SELECT ` + agentColumns + `
		FROM agents
		WHERE user_id = $1
	`

	var agent models.AgentDB
	err := r.db.GetContext(ctx, &agent, query, userID)

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
	return &agent, nil
}

// ListActive retrieves all agents with active status. Candidate filtering
// beyond status (service, float threshold, working hours, radius) happens
// in the directory service.
func (r *AgentReadRepository) ListActive(ctx context.Context) ([]models.AgentDB, error) {
	query := `
		SELECT ` + agentColumns + `
		FROM agents
		WHERE status = $1
	`

	var agents []models.AgentDB
	err := r.db.SelectContext(ctx, &agents, query, models.AgentStatusActive)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(agents),
		"error", err,
	)

	return agents, err
}

// AgentWriteRepository handles agent balance mutations
type AgentWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewAgentWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *AgentWriteRepository {
	return &AgentWriteRepository{db: db, txGetter: txGetter}
}

func (r *AgentWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// ApplyCashIn settles a confirmed cash-in on the agent side: physical cash
// rises, the fronted float is consumed. The float guard makes the statement
// fail with sql.ErrNoRows instead of driving the balance negative.
func (r *AgentWriteRepository) ApplyCashIn(ctx context.Context, agentID uuid.UUID, amount float64) error {
	query := `
		UPDATE agents
		SET cash_balance = cash_balance + $2,
		    float_balance = float_balance - $2,
		    total_transactions = total_transactions + 1,
		    updated_at = NOW()
		WHERE agent_id = $1 AND float_balance >= $2
		RETURNING float_balance
	`

	var balance float64
	err := sqlx.GetContext(ctx, r.executor(ctx), &balance, query, agentID, amount)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{agentID, amount},
		"result", balance,
		"error", err,
	)

	return err
}

// ApplyCashOut settles a confirmed cash-out on the agent side: physical cash
// is paid out, the float is replenished. Guarded against negative cash.
func (r *AgentWriteRepository) ApplyCashOut(ctx context.Context, agentID uuid.UUID, amount float64) error {
	query := `
		UPDATE agents
		SET cash_balance = cash_balance - $2,
		    float_balance = float_balance + $2,
		    total_transactions = total_transactions + 1,
		    updated_at = NOW()
		WHERE agent_id = $1 AND cash_balance >= $2
		RETURNING cash_balance
	`

	var balance float64
	err := sqlx.GetContext(ctx, r.executor(ctx), &balance, query, agentID, amount)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{agentID, amount},
		"result", balance,
		"error", err,
	)

	return err
}
