package revenue

import "ecitoyen/internal/domain/revenue"

type paymentInput struct {
	ID int64 `path:"id" minimum:"1" example:"1" doc:"Identifiant du paiement"`
}

type createPaymentInput struct {
	Body revenue.CreatePaymentRequest
}
