package health

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/eduardgagite/portfolio/internal/app/store/catalog"
	"github.com/eduardgagite/portfolio/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// Handler holds dependencies needed for health checks.
type Handler struct {
	Catalog *catalog.Loader
	Log     *zap.Logger
}

// NewHandler constructs a health Handler with the catalog loader and logger.
func NewHandler(loader *catalog.Loader, logger *zap.Logger) *Handler {
	return &Handler{
		Catalog: loader,
		Log:     logger,
	}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status    string `json:"status"`
	Catalog   string `json:"catalog"`
	Source    string `json:"source,omitempty"`
	Materials int    `json:"materials"`
	Message   string `json:"message,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Serve handles GET /health.
//
// On success: 200 and
//
//	{ "status":"ok", "catalog":"loaded", "source":"file:public", "materials":12 }
//
// On index failure: 503 and
//
//	{ "status":"error", "catalog":"unavailable", "message":"Materials index unavailable", "error":"…"}
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping())
	defer cancel()

	w.Header().Set("Content-Type", "application/json")

	resp := healthResponse{
		Status:  "ok",
		Catalog: "loaded",
		Source:  h.Catalog.Source().String(),
	}

	idx, err := h.Catalog.Index(ctx)
	if err != nil {
		h.Log.Error("health-check: materials index unavailable", zap.Error(err))
		w.WriteHeader(http.StatusServiceUnavailable)
		resp.Status = "error"
		resp.Catalog = "unavailable"
		resp.Message = "Materials index unavailable"
		resp.Error = err.Error()
		_ = json.NewEncoder(w).Encode(resp)
		return
	}

	resp.Materials = len(idx.Entries)
	_ = json.NewEncoder(w).Encode(resp)
}
