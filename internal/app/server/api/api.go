// GET    /api/health
// GET    /api/citizens          POST /api/citizens
// GET    /api/citizens/{id}     PUT  /api/citizens/{id}    DELETE /api/citizens/{id}
// GET    /api/payments          POST /api/payments
// GET    /api/payments/{id}
// GET    /api/payment-types
// GET    /api/payment-stats
// GET    /api/dashboard-stats

package api

import (
	citizenAPI "ecitoyen/internal/app/server/api/http/citizen"
	healthAPI "ecitoyen/internal/app/server/api/http/health"
	"ecitoyen/internal/app/server/api/http/middleware"
	"ecitoyen/internal/app/server/api/http/middleware/logger"
	"ecitoyen/internal/app/server/api/http/response"
	revenueAPI "ecitoyen/internal/app/server/api/http/revenue"
	"ecitoyen/internal/domain/citizen"
	"ecitoyen/internal/domain/revenue"
	"ecitoyen/internal/infrastructure/storage/postgres"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/exp/slog"
)

const Version = "1.0.0"

// Services - зависимости обработчиков.
type Services struct {
	DB       healthAPI.Pinger
	Citizens citizen.Servicer
	Revenue  revenue.Servicer
}

// New создает *chi.Mux поверх хранилища PostgreSQL.
func New(storage *postgres.Storage, log *slog.Logger) *chi.Mux {
	citizenRepo := postgres.NewCitizenRepository(storage, log)
	revenueRepo := postgres.NewRevenueRepository(storage, log)

	return NewWithServices(Services{
		DB:       storage.Pool(),
		Citizens: citizen.NewService(citizenRepo, log),
		Revenue:  revenue.NewService(revenueRepo, citizenRepo, nil, log),
	}, log)
}

// NewWithServices регистрирует все операции через huma.Register.
func NewWithServices(svc Services, log *slog.Logger) *chi.Mux {
	huma.NewError = response.NewError

	mux := chi.NewMux()
	mux.Use(chimw.RequestID, chimw.Recoverer)

	config := huma.DefaultConfig("e-Citoyen API", Version)
	API := humachi.New(mux, config)

	for _, h := range handlers(svc, log) {
		h.SetupRoutes(API)
	}

	return mux
}

type routes interface {
	SetupRoutes(api huma.API)
}

func handlers(svc Services, log *slog.Logger) []routes {
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer(loggerMW.Middleware())

	healthHandler := healthAPI.NewHandler(svc.DB, Version, log, middlewares.Take())
	citizenHandler := citizenAPI.NewHandler(svc.Citizens, log, middlewares.Take())
	revenueHandler := revenueAPI.NewHandler(svc.Revenue, log, middlewares.Take())

	return []routes{healthHandler, citizenHandler, revenueHandler}
}
