package citizen

import "context"

type Repository interface {
	List(ctx context.Context) ([]Citizen, error)
	Get(ctx context.Context, id int64) (Citizen, error)
	Create(ctx context.Context, req CreateRequest) (Citizen, error)
	Update(ctx context.Context, c Citizen) (Citizen, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}
