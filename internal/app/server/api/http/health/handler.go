package health

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"ecitoyen/internal/app/server/api/http/response"
)

// Pinger проверяет доступность базы данных.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	db         Pinger
	version    string
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(db Pinger, version string, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		db:         db,
		version:    version,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.healthCheckOp(), h.healthCheck)
}

func (h *Handler) healthCheck(ctx context.Context, _ *Input) (*response.Output[Response], error) {
	h.log.Debug("health check request received")

	if h.db != nil {
		if err := h.db.Ping(ctx); err != nil {
			h.log.Error("database unreachable", "error", err)
			return nil, huma.Error503ServiceUnavailable("database unavailable")
		}
	}

	return response.OK(Response{
		Status:  "OK",
		Version: h.version,
	}), nil
}
