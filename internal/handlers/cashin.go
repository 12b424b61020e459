package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/tmuriuki/cashlink/internal/jwt"
	"github.com/tmuriuki/cashlink/internal/logger"
	"github.com/tmuriuki/cashlink/internal/models"
)

// CashInTokener defines only the methods needed by this handler.
type CashInTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// CashInInitiator defines the interface that the service must implement.
type CashInInitiator interface {
	InitiateCashIn(ctx context.Context, customerID uuid.UUID, agentCode string, amount float64, customerPhone, channel string) (*models.CashTransactionDB, time.Time, error)
}

// NewCashInHandler returns an HTTP handler for initiating a cash-in.
// @Summary Initiate cash-in
// @Description Creates a pending cash-in transaction against the named agent. No balance moves until the agent confirms.
// @Tags cash
// @Accept json
// @Produce json
// @Param request body models.CashInRequest true "Cash-in Request"
// @Success 201 {object} models.CashInResponse "Pending transaction created"
// @Failure 400 {object} models.CashInErrorResponse "Invalid amount or missing field"
// @Failure 401 {object} models.CashInErrorResponse "Unauthorized"
// @Failure 404 {object} models.CashInErrorResponse "Agent not found"
// @Failure 409 {object} models.CashInErrorResponse "Agent unavailable or insufficient float"
// @Router /cash-in [post]
// @Security BearerAuth
func NewCashInHandler(svc CashInInitiator, tokenGetter CashInTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(models.CashInErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(models.CashInErrorResponse{Error: "Unauthorized"})
			return
		}

		var req models.CashInRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode cash-in request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(models.CashInErrorResponse{Error: "Invalid request body"})
			return
		}

		txn, eta, err := svc.InitiateCashIn(ctx, claims.UserID, req.AgentCode, req.Amount, req.CustomerPhone, models.ChannelApp)
		if err != nil {
			logger.Log.Errorw("failed to initiate cash-in", "userID", claims.UserID, "agent", req.AgentCode, "error", err)
			w.WriteHeader(statusFor(err))
			json.NewEncoder(w).Encode(models.CashInErrorResponse{Error: clientMessage(err)})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.CashInResponse{
			Message:             "Cash-in initiated, awaiting agent confirmation",
			Transaction:         txn,
			EstimatedCompletion: eta,
		})
	}
}
