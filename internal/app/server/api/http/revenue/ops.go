package revenue

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listPaymentsOp() huma.Operation {
	return huma.Operation{
		OperationID: "payments-list",
		Method:      http.MethodGet,
		Path:        "/api/payments",
		Summary:     "Liste des paiements",
		Description: "Du plus récent au plus ancien.",
		Tags:        []string{"payments"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) getPaymentOp() huma.Operation {
	return huma.Operation{
		OperationID: "payments-get",
		Method:      http.MethodGet,
		Path:        "/api/payments/{id}",
		Summary:     "Détail d'un paiement",
		Tags:        []string{"payments"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createPaymentOp() huma.Operation {
	return huma.Operation{
		OperationID:   "payments-create",
		Method:        http.MethodPost,
		Path:          "/api/payments",
		Summary:       "Enregistrer un paiement",
		Tags:          []string{"payments"},
		DefaultStatus: http.StatusCreated,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) listTypesOp() huma.Operation {
	return huma.Operation{
		OperationID: "payment-types-list",
		Method:      http.MethodGet,
		Path:        "/api/payment-types",
		Summary:     "Types de paiement",
		Tags:        []string{"payments"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) paymentStatsOp() huma.Operation {
	return huma.Operation{
		OperationID: "payment-stats",
		Method:      http.MethodGet,
		Path:        "/api/payment-stats",
		Summary:     "Statistiques des paiements",
		Tags:        []string{"stats"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) dashboardOp() huma.Operation {
	return huma.Operation{
		OperationID: "dashboard-stats",
		Method:      http.MethodGet,
		Path:        "/api/dashboard-stats",
		Summary:     "Tableau de bord",
		Description: "Totaux, activités récentes et recettes des six derniers mois.",
		Tags:        []string{"stats"},
		Middlewares: h.middleware,
	}
}
