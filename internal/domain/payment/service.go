package payment

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slog"

	"ecitoyen/internal/domain/view"
	"ecitoyen/internal/storage/kv"
)

type Servicer interface {
	List() []Payment
	Get(id string) (Payment, error)
	Create(p Payment) (Payment, error)
	Stage(b *kv.Batch, p Payment) (Payment, error)
	Update(id string, p Patch) (bool, error)
	SetStatus(id string, st Status) (bool, error)
	View(f Filter, s Sort) []Payment
	Recent(n int) []Payment
	Stats() Stats
	FindByReference(ref string) []Payment
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "payment_service"),
	}
}

func (s *Service) List() []Payment {
	return s.repo.All()
}

func (s *Service) Get(id string) (Payment, error) {
	p, ok := s.repo.Find(id)
	if !ok {
		return Payment{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return p, nil
}

func (s *Service) validate(p Payment) (Payment, error) {
	p.ID = strings.TrimSpace(p.ID)
	p.Type = strings.TrimSpace(p.Type)
	if p.ID == "" {
		return p, fmt.Errorf("%w: empty id", ErrInvalidInput)
	}
	if p.Type == "" {
		return p, fmt.Errorf("%w: empty type", ErrInvalidInput)
	}
	if _, err := ValidateAmount(p.Amount); err != nil {
		return p, fmt.Errorf("%w: %q", err, p.Amount)
	}
	if p.Status == "" {
		p.Status = StatusPending
	}
	if err := p.Status.Validate(); err != nil {
		return p, err
	}
	if _, exists := s.repo.Find(p.ID); exists {
		return p, fmt.Errorf("%w: %s", ErrDuplicateID, p.ID)
	}
	return p, nil
}

func (s *Service) Create(p Payment) (Payment, error) {
	p, err := s.validate(p)
	if err != nil {
		return Payment{}, err
	}

	s.repo.Append(p)
	s.log.Info("payment recorded", "id", p.ID, "type", p.Type, "amount", p.Amount, "status", p.Status)

	return p, nil
}

func (s *Service) Stage(b *kv.Batch, p Payment) (Payment, error) {
	p, err := s.validate(p)
	if err != nil {
		return Payment{}, err
	}

	s.repo.StageAppend(b, p)
	return p, nil
}

// Update применяет патч; неизвестный id дает false без ошибки.
func (s *Service) Update(id string, p Patch) (bool, error) {
	if err := p.Validate(); err != nil {
		return false, err
	}
	if p.Amount != nil {
		if _, err := ValidateAmount(*p.Amount); err != nil {
			return false, err
		}
	}

	found := s.repo.UpdateByID(id, p.Apply)
	if !found {
		s.log.Debug("update skipped, payment not found", "id", id)
	}
	return found, nil
}

func (s *Service) SetStatus(id string, st Status) (bool, error) {
	return s.Update(id, Patch{Status: &st})
}

func (s *Service) View(f Filter, st Sort) []Payment {
	return View(s.repo.All(), f, st)
}

func (s *Service) Recent(n int) []Payment {
	return view.Top(View(s.repo.All(), Filter{}, DefaultSort), n)
}

func (s *Service) Stats() Stats {
	return Compute(s.repo.All())
}

// FindByReference возвращает платежи с данной внешней ссылкой.
func (s *Service) FindByReference(ref string) []Payment {
	var out []Payment
	for _, p := range s.repo.All() {
		if p.Reference == ref {
			out = append(out, p)
		}
	}
	return out
}
