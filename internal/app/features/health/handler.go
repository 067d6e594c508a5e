package health

import (
	"context"
	"net/http"

	"github.com/dalemusser/folio/internal/app/system/apiresp"
	"github.com/dalemusser/folio/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// Pinger is satisfied by *mongo.Client.
type Pinger interface {
	Ping(ctx context.Context, rp *readpref.ReadPref) error
}

// Handler holds dependencies needed for health checks.
type Handler struct {
	DB  Pinger
	Log *zap.Logger
}

// NewHandler constructs a health Handler with the Mongo client and logger.
func NewHandler(db Pinger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:  db,
		Log: logger,
	}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Message  string `json:"message,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Serve handles GET /health.
//
// On success: 200 and
//
//	{ "status":"ok", "database":"connected" }
//
// On DB failure: 503 and
//
//	{ "status":"error", "database":"disconnected", "message":"Database unavailable", "error":"…"}
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping())
	defer cancel()

	if err := h.DB.Ping(ctx, readpref.Primary()); err != nil {
		h.Log.Error("health-check: mongo ping failed", zap.Error(err))
		apiresp.JSON(w, http.StatusServiceUnavailable, healthResponse{
			Status:   "error",
			Database: "disconnected",
			Message:  "Database unavailable",
			Error:    err.Error(),
		})
		return
	}

	apiresp.JSON(w, http.StatusOK, healthResponse{
		Status:   "ok",
		Database: "connected",
	})
}
