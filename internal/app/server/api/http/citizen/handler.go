package citizen

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"ecitoyen/internal/app/server/api/http/response"
	"ecitoyen/internal/domain/citizen"
)

type Handler struct {
	service    citizen.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service citizen.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.getOp(), h.get)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*response.Output[[]citizen.Citizen], error) {
	citizens, err := h.service.List(ctx)
	if err != nil {
		return nil, h.mapErr(err)
	}
	return response.OK(citizens), nil
}

func (h *Handler) get(ctx context.Context, input *idInput) (*response.Output[citizen.Citizen], error) {
	c, err := h.service.Get(ctx, input.ID)
	if err != nil {
		return nil, h.mapErr(err)
	}
	return response.OK(c), nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*response.Output[citizen.Citizen], error) {
	c, err := h.service.Create(ctx, input.Body)
	if err != nil {
		return nil, h.mapErr(err)
	}
	return response.OKWithMessage(c, "Citoyen enregistré"), nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*response.Output[citizen.Citizen], error) {
	c, err := h.service.Update(ctx, input.ID, input.Body)
	if err != nil {
		return nil, h.mapErr(err)
	}
	return response.OKWithMessage(c, "Citoyen mis à jour"), nil
}

func (h *Handler) delete(ctx context.Context, input *idInput) (*response.Output[deleted], error) {
	if err := h.service.Delete(ctx, input.ID); err != nil {
		return nil, h.mapErr(err)
	}
	return response.OKWithMessage(deleted{ID: input.ID}, "Citoyen supprimé"), nil
}

func (h *Handler) mapErr(err error) error {
	switch {
	case errors.Is(err, citizen.ErrNotFound):
		return huma.Error404NotFound("Citoyen introuvable")
	case errors.Is(err, citizen.ErrEmailTaken):
		return huma.Error409Conflict("Email déjà utilisé")
	case errors.Is(err, citizen.ErrInvalidInput):
		return huma.Error422UnprocessableEntity(err.Error())
	}
	h.log.Error("citizen request failed", "error", err)
	return huma.Error500InternalServerError("Erreur interne")
}
