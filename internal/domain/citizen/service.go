package citizen

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	List(ctx context.Context) ([]Citizen, error)
	Get(ctx context.Context, id int64) (Citizen, error)
	Create(ctx context.Context, req CreateRequest) (Citizen, error)
	Update(ctx context.Context, id int64, req UpdateRequest) (Citizen, error)
	Delete(ctx context.Context, id int64) error
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "citizen_service"),
	}
}

func (s *Service) List(ctx context.Context) ([]Citizen, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (Citizen, error) {
	return s.repo.Get(ctx, id)
}

func validate(name, email string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("%w: bad email %q", ErrInvalidInput, email)
	}
	return nil
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (Citizen, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if err := validate(req.Name, req.Email); err != nil {
		s.log.Debug("validation failed", "email", req.Email, "error", err)
		return Citizen{}, err
	}

	c, err := s.repo.Create(ctx, req)
	if err != nil {
		return Citizen{}, err
	}

	s.log.Info("citizen created", "id", c.ID)
	return c, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateRequest) (Citizen, error) {
	current, err := s.repo.Get(ctx, id)
	if err != nil {
		return Citizen{}, err
	}

	next := req.Apply(current)
	if err := validate(next.Name, next.Email); err != nil {
		return Citizen{}, err
	}

	return s.repo.Update(ctx, next)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("citizen deleted", "id", id)
	return nil
}
