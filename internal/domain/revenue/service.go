package revenue

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/exp/slog"

	"ecitoyen/internal/utils/clock"
)

type Servicer interface {
	ListPayments(ctx context.Context) ([]Payment, error)
	GetPayment(ctx context.Context, id int64) (Payment, error)
	CreatePayment(ctx context.Context, req CreatePaymentRequest) (Payment, error)
	ListTypes(ctx context.Context) ([]PaymentType, error)
	PaymentStats(ctx context.Context) (PaymentStats, error)
	Dashboard(ctx context.Context) (DashboardStats, error)
}

type Service struct {
	repo     Repository
	citizens CitizenCounter
	clock    clock.Clock
	log      *slog.Logger
}

func NewService(repo Repository, citizens CitizenCounter, clk clock.Clock, log *slog.Logger) *Service {
	if clk == nil {
		clk = clock.System()
	}
	return &Service{
		repo:     repo,
		citizens: citizens,
		clock:    clk,
		log:      log.With("component", "revenue_service"),
	}
}

func (s *Service) ListPayments(ctx context.Context) ([]Payment, error) {
	return s.repo.ListPayments(ctx)
}

func (s *Service) GetPayment(ctx context.Context, id int64) (Payment, error) {
	return s.repo.GetPayment(ctx, id)
}

func (s *Service) CreatePayment(ctx context.Context, req CreatePaymentRequest) (Payment, error) {
	req.Type = strings.TrimSpace(req.Type)
	if req.Type == "" || req.Amount <= 0 || req.CitizenID <= 0 {
		return Payment{}, fmt.Errorf("%w: citizen, type and positive amount are required", ErrInvalidInput)
	}
	switch req.Status {
	case "":
		req.Status = StatusPending
	case StatusPending, StatusCompleted, StatusFailed:
	default:
		return Payment{}, fmt.Errorf("%w: %s", ErrUnknownStatus, req.Status)
	}

	p, err := s.repo.CreatePayment(ctx, req)
	if err != nil {
		return Payment{}, err
	}

	s.log.Info("payment created", "id", p.ID, "citizen_id", p.CitizenID, "amount", p.Amount)
	return p, nil
}

func (s *Service) ListTypes(ctx context.Context) ([]PaymentType, error) {
	return s.repo.ListTypes(ctx)
}

func (s *Service) PaymentStats(ctx context.Context) (PaymentStats, error) {
	payments, err := s.repo.ListPayments(ctx)
	if err != nil {
		return PaymentStats{}, err
	}
	return ComputePaymentStats(payments), nil
}

func (s *Service) Dashboard(ctx context.Context) (DashboardStats, error) {
	payments, err := s.repo.ListPayments(ctx)
	if err != nil {
		return DashboardStats{}, err
	}
	types, err := s.repo.ListTypes(ctx)
	if err != nil {
		return DashboardStats{}, err
	}
	citizens, err := s.citizens.Count(ctx)
	if err != nil {
		return DashboardStats{}, fmt.Errorf("count citizens: %w", err)
	}
	return ComputeDashboard(payments, types, citizens, s.clock.Now()), nil
}
