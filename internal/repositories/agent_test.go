package repositories

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tmuriuki/cashlink/internal/models"
)

func TestAgentGetByCode(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	agentID := seedAgent(t, db, "AGT-0042", 5000, 10000)

	reader := NewAgentReadRepository(db)

	agent, err := reader.GetByCode(ctx, "AGT-0042")
	assert.NoError(t, err)
	assert.Equal(t, agentID, agent.AgentID)
	assert.Equal(t, models.AgentStatusActive, agent.Status)
	assert.True(t, agent.Services.Contains(models.ServiceCashIn))
	assert.Equal(t, "08:00", agent.WorkingHours.Open)
	assert.Equal(t, 10000.0, agent.FloatBalance)

	agent, err = reader.GetByCode(ctx, "AGT-NONE")
	assert.NoError(t, err)
	assert.Nil(t, agent)
}

func TestAgentListActive(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	seedAgent(t, db, "AGT-0001", 1000, 1000)
	inactiveID := seedAgent(t, db, "AGT-0002", 1000, 1000)
	_, err := db.Exec(`UPDATE agents SET status = 'suspended' WHERE agent_id = $1`, inactiveID)
	assert.NoError(t, err)

	reader := NewAgentReadRepository(db)

	agents, err := reader.ListActive(ctx)
	assert.NoError(t, err)
	assert.Len(t, agents, 1)
	assert.Equal(t, "AGT-0001", agents[0].Code)
}

func TestAgentApplyCashIn(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	agentID := seedAgent(t, db, "AGT-0042", 1000, 500)

	writer := NewAgentWriteRepository(db, nil)

	// Cash in: physical cash up, float down.
	assert.NoError(t, writer.ApplyCashIn(ctx, agentID, 200))
	cash, float := agentBalances(t, db, agentID)
	assert.Equal(t, 1200.0, cash)
	assert.Equal(t, 300.0, float)

	// The float guard refuses to go negative.
	err := writer.ApplyCashIn(ctx, agentID, 400)
	assert.ErrorIs(t, err, sql.ErrNoRows)
	cash, float = agentBalances(t, db, agentID)
	assert.Equal(t, 1200.0, cash)
	assert.Equal(t, 300.0, float)
}

func TestAgentApplyCashOut(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	agentID := seedAgent(t, db, "AGT-0042", 300, 1000)

	writer := NewAgentWriteRepository(db, nil)

	// Cash out: physical cash down, float up.
	assert.NoError(t, writer.ApplyCashOut(ctx, agentID, 200))
	cash, float := agentBalances(t, db, agentID)
	assert.Equal(t, 100.0, cash)
	assert.Equal(t, 1200.0, float)

	// The cash guard refuses to go negative.
	err := writer.ApplyCashOut(ctx, agentID, 400)
	assert.ErrorIs(t, err, sql.ErrNoRows)

	var total int64
	assert.NoError(t, db.Get(&total, `SELECT total_transactions FROM agents WHERE agent_id = $1`, agentID))
	assert.Equal(t, int64(1), total)
}
