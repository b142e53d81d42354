package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"ecitoyen/internal/domain/citizen"
)

const citizenColumns = `id, name, email, phone, address, created_at`

type CitizenRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewCitizenRepository(s *Storage, log *slog.Logger) *CitizenRepository {
	return &CitizenRepository{
		pool: s.Pool(),
		log:  log.With("component", "citizen_repository"),
	}
}

func scanCitizen(row pgx.Row) (citizen.Citizen, error) {
	var c citizen.Citizen
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.CreatedAt)
	return c, err
}

func citizenErr(err error) error {
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return citizen.ErrNotFound
	case pgCode(err) == codeUniqueViolation:
		return citizen.ErrEmailTaken
	}
	return err
}

func (r *CitizenRepository) List(ctx context.Context) ([]citizen.Citizen, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+citizenColumns+` FROM citizens ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list citizens: %w", err)
	}
	defer rows.Close()

	out := make([]citizen.Citizen, 0)
	for rows.Next() {
		c, err := scanCitizen(rows)
		if err != nil {
			return nil, fmt.Errorf("scan citizen: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *CitizenRepository) Get(ctx context.Context, id int64) (citizen.Citizen, error) {
	c, err := scanCitizen(r.pool.QueryRow(ctx,
		`SELECT `+citizenColumns+` FROM citizens WHERE id = $1`, id))
	if err != nil {
		return citizen.Citizen{}, citizenErr(err)
	}
	return c, nil
}

func (r *CitizenRepository) Create(ctx context.Context, req citizen.CreateRequest) (citizen.Citizen, error) {
	c, err := scanCitizen(r.pool.QueryRow(ctx,
		`INSERT INTO citizens (name, email, phone, address) VALUES ($1, $2, $3, $4)
		 RETURNING `+citizenColumns,
		req.Name, req.Email, req.Phone, req.Address))
	if err != nil {
		r.log.Debug("insert failed", "email", req.Email, "error", err)
		return citizen.Citizen{}, citizenErr(err)
	}
	return c, nil
}

func (r *CitizenRepository) Update(ctx context.Context, in citizen.Citizen) (citizen.Citizen, error) {
	c, err := scanCitizen(r.pool.QueryRow(ctx,
		`UPDATE citizens SET name = $2, email = $3, phone = $4, address = $5
		 WHERE id = $1 RETURNING `+citizenColumns,
		in.ID, in.Name, in.Email, in.Phone, in.Address))
	if err != nil {
		return citizen.Citizen{}, citizenErr(err)
	}
	return c, nil
}

func (r *CitizenRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM citizens WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete citizen: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return citizen.ErrNotFound
	}
	return nil
}

func (r *CitizenRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM citizens`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count citizens: %w", err)
	}
	return n, nil
}
