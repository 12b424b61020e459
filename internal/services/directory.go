package services

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/tmuriuki/cashlink/internal/commission"
	"github.com/tmuriuki/cashlink/internal/geo"
	"github.com/tmuriuki/cashlink/internal/logger"
	"github.com/tmuriuki/cashlink/internal/models"
)

// Directory matching parameters.
const (
	DefaultRadiusKm = 5.0
	// MinFloatThreshold is the float balance below which an agent cannot
	// reliably honor a cash-in and is excluded from matching.
	MinFloatThreshold = 1000.0
	// tieBreakKm is the distance delta under which two candidates are
	// considered tied and ordered by rating instead.
	tieBreakKm = 0.5
	maxResults = 20
)

// AgentReader defines the agent lookups the directory needs.
type AgentReader interface {
	GetByCode(ctx context.Context, code string) (*models.AgentDB, error)   // Returns nil when absent
	GetByOwner(ctx context.Context, userID uuid.UUID) (*models.AgentDB, error) // Returns nil when absent
	ListActive(ctx context.Context) ([]models.AgentDB, error)
}

// AgentBoardReader defines the aggregates the dashboard needs.
type AgentBoardReader interface {
	ListPendingByAgent(ctx context.Context, agentID uuid.UUID) ([]models.CashTransactionDB, error)
	DailyStats(ctx context.Context, agentID uuid.UUID) (*models.DailyStats, error)
}

// DirectoryService answers which agents can serve a customer right now
// and ranks them.
type DirectoryService struct {
	agents AgentReader
	board  AgentBoardReader
	now    func() time.Time
}

// NewDirectoryService creates a new DirectoryService. The clock defaults
// to time.Now.
func NewDirectoryService(agents AgentReader, board AgentBoardReader) *DirectoryService {
	return &DirectoryService{
		agents: agents,
		board:  board,
		now:    time.Now,
	}
}

// WithClock overrides the service clock, for working-hours tests.
func (svc *DirectoryService) WithClock(now func() time.Time) *DirectoryService {
	svc.now = now
	return svc
}

// FindNearby returns up to 20 eligible agents ranked by distance, with
// rating breaking near-ties. A radius of zero or less falls back to the
// default. An empty result is not an error.
func (svc *DirectoryService) FindNearby(ctx context.Context, lat, lon, radiusKm float64, service string) ([]models.NearbyAgent, error) {
	if math.IsNaN(lat) || math.IsNaN(lon) || lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return nil, ErrInvalidLocation
	}
	if radiusKm <= 0 {
		radiusKm = DefaultRadiusKm
	}

	agents, err := svc.agents.ListActive(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list active agents", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	now := svc.now()

	type candidate struct {
		agent    models.AgentDB
		distance float64
	}
	var candidates []candidate
	for _, a := range agents {
		if service != "" && !a.Services.Contains(service) {
			continue
		}
		if a.Status != models.AgentStatusActive {
			continue
		}
		if a.FloatBalance < MinFloatThreshold {
			continue
		}
		if !a.WorkingHours.Contains(now) {
			continue
		}
		d := geo.Distance(lat, lon, a.Latitude, a.Longitude)
		if d > radiusKm {
			continue
		}
		candidates = append(candidates, candidate{agent: a, distance: d})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if math.Abs(candidates[i].distance-candidates[j].distance) < tieBreakKm {
			if candidates[i].agent.Rating != candidates[j].agent.Rating {
				return candidates[i].agent.Rating > candidates[j].agent.Rating
			}
		}
		return candidates[i].distance < candidates[j].distance
	})

	if len(candidates) > maxResults {
		candidates = candidates[:maxResults]
	}

	result := make([]models.NearbyAgent, 0, len(candidates))
	for _, c := range candidates {
		result = append(result, models.NearbyAgent{
			Code:       c.agent.Code,
			Address:    c.agent.Address,
			City:       c.agent.City,
			Services:   c.agent.Services,
			Rating:     c.agent.Rating,
			Tier:       c.agent.Tier,
			DistanceKm: commission.Round2(c.distance),
		})
	}
	return result, nil
}

// FindByCode resolves an agent by its unique code.
func (svc *DirectoryService) FindByCode(ctx context.Context, code string) (*models.AgentDB, error) {
	agent, err := svc.agents.GetByCode(ctx, code)
	if err != nil {
		logger.Log.Errorw("failed to get agent by code", "code", code, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	if agent == nil {
		return nil, ErrAgentNotFound
	}
	return agent, nil
}

// FindByOwner resolves the agent owned by the given user.
func (svc *DirectoryService) FindByOwner(ctx context.Context, userID uuid.UUID) (*models.AgentDB, error) {
	agent, err := svc.agents.GetByOwner(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get agent by owner", "user_id", userID, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	if agent == nil {
		return nil, ErrAgentNotFound
	}
	return agent, nil
}

// Dashboard assembles the agent's profile, today's aggregates and pending
// transactions.
func (svc *DirectoryService) Dashboard(ctx context.Context, agentUserID uuid.UUID) (*models.DashboardResponse, error) {
	agent, err := svc.FindByOwner(ctx, agentUserID)
	if err != nil {
		return nil, err
	}

	stats, err := svc.board.DailyStats(ctx, agent.AgentID)
	if err != nil {
		logger.Log.Errorw("failed to get daily stats", "agent_id", agent.AgentID, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	pending, err := svc.board.ListPendingByAgent(ctx, agent.AgentID)
	if err != nil {
		logger.Log.Errorw("failed to list pending transactions", "agent_id", agent.AgentID, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	return &models.DashboardResponse{
		Agent:   agent,
		Today:   *stats,
		Pending: pending,
	}, nil
}
