package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"ecitoyen/internal/domain/revenue"
)

// amount хранится как NUMERIC, наружу отдается float8.
const paymentColumns = `id, citizen_id, type, amount::float8, status, created_at`

type RevenueRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewRevenueRepository(s *Storage, log *slog.Logger) *RevenueRepository {
	return &RevenueRepository{
		pool: s.Pool(),
		log:  log.With("component", "revenue_repository"),
	}
}

func scanPayment(row pgx.Row) (revenue.Payment, error) {
	var p revenue.Payment
	err := row.Scan(&p.ID, &p.CitizenID, &p.Type, &p.Amount, &p.Status, &p.CreatedAt)
	return p, err
}

func (r *RevenueRepository) ListPayments(ctx context.Context) ([]revenue.Payment, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+paymentColumns+` FROM payments ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	out := make([]revenue.Payment, 0)
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *RevenueRepository) GetPayment(ctx context.Context, id int64) (revenue.Payment, error) {
	p, err := scanPayment(r.pool.QueryRow(ctx,
		`SELECT `+paymentColumns+` FROM payments WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return revenue.Payment{}, revenue.ErrNotFound
	}
	if err != nil {
		return revenue.Payment{}, fmt.Errorf("get payment: %w", err)
	}
	return p, nil
}

func (r *RevenueRepository) CreatePayment(ctx context.Context, req revenue.CreatePaymentRequest) (revenue.Payment, error) {
	p, err := scanPayment(r.pool.QueryRow(ctx,
		`INSERT INTO payments (citizen_id, type, amount, status) VALUES ($1, $2, $3, $4)
		 RETURNING `+paymentColumns,
		req.CitizenID, req.Type, req.Amount, req.Status))
	if pgCode(err) == codeForeignKeyViolation {
		return revenue.Payment{}, revenue.ErrUnknownCitizen
	}
	if err != nil {
		return revenue.Payment{}, fmt.Errorf("create payment: %w", err)
	}
	return p, nil
}

func (r *RevenueRepository) ListTypes(ctx context.Context) ([]revenue.PaymentType, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, description, amount::float8, category FROM payment_types ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list payment types: %w", err)
	}

	types, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (revenue.PaymentType, error) {
		var t revenue.PaymentType
		err := row.Scan(&t.ID, &t.Name, &t.Description, &t.Amount, &t.Category)
		return t, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan payment types: %w", err)
	}
	return types, nil
}
