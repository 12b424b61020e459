package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/tmuriuki/cashlink/internal/jwt"
	"github.com/tmuriuki/cashlink/internal/logger"
	"github.com/tmuriuki/cashlink/internal/models"
)

// DashboardTokener defines only the methods needed by this handler.
type DashboardTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// DashboardReader defines the interface that the service must implement.
type DashboardReader interface {
	Dashboard(ctx context.Context, agentUserID uuid.UUID) (*models.DashboardResponse, error)
}

// NewDashboardHandler returns an HTTP handler for the agent dashboard.
// @Summary Agent dashboard
// @Description Returns the authenticated agent's profile, balances, today's aggregates and transactions awaiting confirmation.
// @Tags agents
// @Produce json
// @Success 200 {object} models.DashboardResponse "Dashboard payload"
// @Failure 401 {object} models.DashboardErrorResponse "Unauthorized"
// @Failure 404 {object} models.DashboardErrorResponse "Agent not found"
// @Router /agent/dashboard [get]
// @Security BearerAuth
func NewDashboardHandler(svc DashboardReader, tokenGetter DashboardTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(models.DashboardErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(models.DashboardErrorResponse{Error: "Unauthorized"})
			return
		}

		dash, err := svc.Dashboard(ctx, claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to build dashboard", "userID", claims.UserID, "error", err)
			w.WriteHeader(statusFor(err))
			json.NewEncoder(w).Encode(models.DashboardErrorResponse{Error: clientMessage(err)})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(dash)
	}
}
