package citizen

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "citizens-list",
		Method:      http.MethodGet,
		Path:        "/api/citizens",
		Summary:     "Liste des citoyens",
		Tags:        []string{"citizens"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) getOp() huma.Operation {
	return huma.Operation{
		OperationID: "citizens-get",
		Method:      http.MethodGet,
		Path:        "/api/citizens/{id}",
		Summary:     "Détail d'un citoyen",
		Tags:        []string{"citizens"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "citizens-create",
		Method:        http.MethodPost,
		Path:          "/api/citizens",
		Summary:       "Enregistrer un citoyen",
		Tags:          []string{"citizens"},
		DefaultStatus: http.StatusCreated,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "citizens-update",
		Method:      http.MethodPut,
		Path:        "/api/citizens/{id}",
		Summary:     "Modifier un citoyen",
		Description: "Mise à jour partielle: les champs absents restent inchangés.",
		Tags:        []string{"citizens"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "citizens-delete",
		Method:      http.MethodDelete,
		Path:        "/api/citizens/{id}",
		Summary:     "Supprimer un citoyen",
		Tags:        []string{"citizens"},
		Middlewares: h.middleware,
	}
}
