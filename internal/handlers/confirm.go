package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/tmuriuki/cashlink/internal/jwt"
	"github.com/tmuriuki/cashlink/internal/logger"
	"github.com/tmuriuki/cashlink/internal/metrics"
	"github.com/tmuriuki/cashlink/internal/models"
)

// ConfirmTokener defines only the methods needed by this handler.
type ConfirmTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// Confirmer defines the interface that the service must implement.
type Confirmer interface {
	Confirm(ctx context.Context, agentUserID, transactionID uuid.UUID, pin, action string) (*models.CashTransactionDB, error)
}

// NewConfirmHandler returns an HTTP handler for the agent's confirm/cancel step.
// @Summary Confirm or cancel a pending transaction
// @Description Settles or cancels a pending cash transaction on behalf of the serving agent. Confirmation applies all balance deltas atomically; a second confirm of the same transaction is rejected.
// @Tags cash
// @Accept json
// @Produce json
// @Param request body models.ConfirmRequest true "Confirm Request"
// @Success 200 {object} models.ConfirmResponse "Transaction settled or cancelled"
// @Failure 400 {object} models.ConfirmErrorResponse "Invalid request"
// @Failure 401 {object} models.ConfirmErrorResponse "Unauthorized or wrong PIN"
// @Failure 403 {object} models.ConfirmErrorResponse "Transaction belongs to another agent"
// @Failure 404 {object} models.ConfirmErrorResponse "Transaction not found"
// @Failure 409 {object} models.ConfirmErrorResponse "Transaction is not pending"
// @Router /cash-transactions/confirm [post]
// @Security BearerAuth
func NewConfirmHandler(svc Confirmer, tokenGetter ConfirmTokener, m *metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(models.ConfirmErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(models.ConfirmErrorResponse{Error: "Unauthorized"})
			return
		}

		var req models.ConfirmRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode confirm request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(models.ConfirmErrorResponse{Error: "Invalid request body"})
			return
		}

		transactionID, err := uuid.Parse(req.TransactionID)
		if err != nil {
			logger.Log.Warnw("invalid transaction id", "transaction_id", req.TransactionID)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(models.ConfirmErrorResponse{Error: "Invalid transaction id"})
			return
		}

		start := time.Now()
		txn, err := svc.Confirm(ctx, claims.UserID, transactionID, req.Pin, req.Action)
		if m != nil {
			m.ConfirmLatency.WithLabelValues(req.Action).Observe(time.Since(start).Seconds())
		}
		if err != nil {
			logger.Log.Errorw("confirmation failed", "userID", claims.UserID, "transaction_id", transactionID, "action", req.Action, "error", err)
			w.WriteHeader(statusFor(err))
			json.NewEncoder(w).Encode(models.ConfirmErrorResponse{Error: clientMessage(err)})
			return
		}

		message := "Transaction completed"
		if txn.Status == models.TxStatusCancelled {
			message = "Transaction cancelled"
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(models.ConfirmResponse{
			Message:     message,
			Transaction: txn,
		})
	}
}
