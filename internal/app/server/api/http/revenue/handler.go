package revenue

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"ecitoyen/internal/app/server/api/http/response"
	"ecitoyen/internal/domain/revenue"
)

type Handler struct {
	service    revenue.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service revenue.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listPaymentsOp(), h.listPayments)
	huma.Register(api, h.getPaymentOp(), h.getPayment)
	huma.Register(api, h.createPaymentOp(), h.createPayment)
	huma.Register(api, h.listTypesOp(), h.listTypes)
	huma.Register(api, h.paymentStatsOp(), h.paymentStats)
	huma.Register(api, h.dashboardOp(), h.dashboard)
}

func (h *Handler) listPayments(ctx context.Context, _ *struct{}) (*response.Output[[]revenue.Payment], error) {
	payments, err := h.service.ListPayments(ctx)
	if err != nil {
		return nil, h.mapErr(err)
	}
	return response.OK(payments), nil
}

func (h *Handler) getPayment(ctx context.Context, input *paymentInput) (*response.Output[revenue.Payment], error) {
	p, err := h.service.GetPayment(ctx, input.ID)
	if err != nil {
		return nil, h.mapErr(err)
	}
	return response.OK(p), nil
}

func (h *Handler) createPayment(ctx context.Context, input *createPaymentInput) (*response.Output[revenue.Payment], error) {
	p, err := h.service.CreatePayment(ctx, input.Body)
	if err != nil {
		return nil, h.mapErr(err)
	}
	return response.OKWithMessage(p, "Paiement enregistré"), nil
}

func (h *Handler) listTypes(ctx context.Context, _ *struct{}) (*response.Output[[]revenue.PaymentType], error) {
	types, err := h.service.ListTypes(ctx)
	if err != nil {
		return nil, h.mapErr(err)
	}
	return response.OK(types), nil
}

func (h *Handler) paymentStats(ctx context.Context, _ *struct{}) (*response.Output[revenue.PaymentStats], error) {
	stats, err := h.service.PaymentStats(ctx)
	if err != nil {
		return nil, h.mapErr(err)
	}
	return response.OK(stats), nil
}

func (h *Handler) dashboard(ctx context.Context, _ *struct{}) (*response.Output[revenue.DashboardStats], error) {
	stats, err := h.service.Dashboard(ctx)
	if err != nil {
		return nil, h.mapErr(err)
	}
	return response.OK(stats), nil
}

func (h *Handler) mapErr(err error) error {
	switch {
	case errors.Is(err, revenue.ErrNotFound):
		return huma.Error404NotFound("Paiement introuvable")
	case errors.Is(err, revenue.ErrUnknownCitizen):
		return huma.Error422UnprocessableEntity("Citoyen inconnu")
	case errors.Is(err, revenue.ErrInvalidInput), errors.Is(err, revenue.ErrUnknownStatus):
		return huma.Error422UnprocessableEntity(err.Error())
	}
	h.log.Error("revenue request failed", "error", err)
	return huma.Error500InternalServerError("Erreur interne")
}
