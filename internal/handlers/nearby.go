package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/tmuriuki/cashlink/internal/logger"
	"github.com/tmuriuki/cashlink/internal/metrics"
	"github.com/tmuriuki/cashlink/internal/models"
)

// NearbyFinder defines the directory query the handler needs.
type NearbyFinder interface {
	FindNearby(ctx context.Context, lat, lon, radiusKm float64, service string) ([]models.NearbyAgent, error)
}

// NewNearbyHandler returns an HTTP handler for the public agent directory query.
// @Summary Find nearby agents
// @Description Returns up to 20 serviceable agents ranked by distance, nearest first. Agents that are inactive, outside working hours, below the float threshold or missing the requested service are excluded.
// @Tags agents
// @Produce json
// @Param lat query number true "Latitude of the customer"
// @Param lon query number true "Longitude of the customer"
// @Param radius_km query number false "Search radius in kilometers, defaults to 5"
// @Param service query string false "Required service (cash_in, cash_out, bill_payment)"
// @Success 200 {object} models.NearbyResponse "Ranked agents"
// @Failure 400 {object} models.NearbyErrorResponse "Invalid location"
// @Router /agents/nearby [get]
func NewNearbyHandler(svc NearbyFinder, m *metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		lat, errLat := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
		lon, errLon := strconv.ParseFloat(r.URL.Query().Get("lon"), 64)
		if errLat != nil || errLon != nil {
			logger.Log.Warnw("nearby query with unparsable coordinates",
				"lat", r.URL.Query().Get("lat"), "lon", r.URL.Query().Get("lon"))
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(models.NearbyErrorResponse{Error: "Invalid location"})
			return
		}

		var radiusKm float64
		if raw := r.URL.Query().Get("radius_km"); raw != "" {
			radiusKm, _ = strconv.ParseFloat(raw, 64)
		}
		service := r.URL.Query().Get("service")

		if m != nil {
			m.NearbyQueries.Inc()
		}

		agents, err := svc.FindNearby(ctx, lat, lon, radiusKm, service)
		if err != nil {
			logger.Log.Errorw("nearby query failed", "lat", lat, "lon", lon, "error", err)
			w.WriteHeader(statusFor(err))
			json.NewEncoder(w).Encode(models.NearbyErrorResponse{Error: clientMessage(err)})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(models.NearbyResponse{Agents: agents})
	}
}
