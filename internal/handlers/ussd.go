package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/tmuriuki/cashlink/internal/logger"
	"github.com/tmuriuki/cashlink/internal/models"
	"github.com/tmuriuki/cashlink/internal/ussd"
)

// USSDNavigator defines the interface that the navigator must implement.
type USSDNavigator interface {
	Handle(ctx context.Context, req models.USSDRequest) ussd.Response
}

// NewUSSDHandler returns an HTTP handler for USSD gateway callbacks.
// Gateways post either JSON or form-encoded fields; the response is plain
// text prefixed with CON (session continues) or END (session terminates).
// @Summary USSD gateway callback
// @Description Handles one hop of a USSD session. The gateway accumulates all user input in the text field; the navigator reconstructs the session position from it on every call.
// @Tags ussd
// @Accept json
// @Produce plain
// @Param request body models.USSDRequest true "Gateway callback"
// @Success 200 {string} string "CON or END prefixed menu text"
// @Router /ussd [post]
func NewUSSDHandler(nav USSDNavigator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req models.USSDRequest
		if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				logger.Log.Errorw("failed to decode ussd callback", "error", err)
				w.WriteHeader(http.StatusBadRequest)
				return
			}
		} else {
			if err := r.ParseForm(); err != nil {
				logger.Log.Errorw("failed to parse ussd form", "error", err)
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			req = models.USSDRequest{
				SessionID:   r.FormValue("sessionId"),
				PhoneNumber: r.FormValue("phoneNumber"),
				Text:        r.FormValue("text"),
				ServiceCode: r.FormValue("serviceCode"),
			}
		}

		resp := nav.Handle(ctx, req)

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(resp.Render()))
	}
}
