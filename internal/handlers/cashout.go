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

// CashOutTokener defines only the methods needed by this handler.
type CashOutTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// CashOutInitiator defines the interface that the service must implement.
type CashOutInitiator interface {
	InitiateCashOut(ctx context.Context, customerID uuid.UUID, agentCode string, amount float64, pin, channel string) (*models.CashTransactionDB, float64, error)
}

// NewCashOutHandler returns an HTTP handler for initiating a cash-out.
// @Summary Initiate cash-out
// @Description Creates a pending cash-out transaction after verifying the customer PIN, wallet cover for amount plus commission, and the agent's physical cash. The wallet is debited only when the agent confirms.
// @Tags cash
// @Accept json
// @Produce json
// @Param request body models.CashOutRequest true "Cash-out Request"
// @Success 201 {object} models.CashOutResponse "Pending transaction created"
// @Failure 400 {object} models.CashOutErrorResponse "Invalid amount or missing field"
// @Failure 401 {object} models.CashOutErrorResponse "Unauthorized or wrong PIN"
// @Failure 404 {object} models.CashOutErrorResponse "Agent or wallet not found"
// @Failure 409 {object} models.CashOutErrorResponse "Insufficient balance or agent cash"
// @Router /cash-out [post]
// @Security BearerAuth
func NewCashOutHandler(svc CashOutInitiator, tokenGetter CashOutTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(models.CashOutErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(models.CashOutErrorResponse{Error: "Unauthorized"})
			return
		}

		var req models.CashOutRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode cash-out request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(models.CashOutErrorResponse{Error: "Invalid request body"})
			return
		}

		txn, total, err := svc.InitiateCashOut(ctx, claims.UserID, req.AgentCode, req.Amount, req.Pin, models.ChannelApp)
		if err != nil {
			logger.Log.Errorw("failed to initiate cash-out", "userID", claims.UserID, "agent", req.AgentCode, "error", err)
			w.WriteHeader(statusFor(err))
			json.NewEncoder(w).Encode(models.CashOutErrorResponse{Error: clientMessage(err)})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.CashOutResponse{
			Message:        "Cash-out initiated, awaiting agent confirmation",
			Transaction:    txn,
			TotalDeduction: total,
		})
	}
}
