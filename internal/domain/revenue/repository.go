package revenue

import "context"

type Repository interface {
	ListPayments(ctx context.Context) ([]Payment, error)
	GetPayment(ctx context.Context, id int64) (Payment, error)
	CreatePayment(ctx context.Context, req CreatePaymentRequest) (Payment, error)
	ListTypes(ctx context.Context) ([]PaymentType, error)
}

// CitizenCounter - источник числа граждан для сводки.
type CitizenCounter interface {
	Count(ctx context.Context) (int, error)
}
