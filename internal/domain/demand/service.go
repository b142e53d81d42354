package demand

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slog"

	"ecitoyen/internal/domain/view"
	"ecitoyen/internal/storage/kv"
)

type Servicer interface {
	List() []Demand
	Get(id string) (Demand, error)
	Create(d Demand) (Demand, error)
	Stage(b *kv.Batch, d Demand) (Demand, error)
	Update(id string, p Patch) (bool, error)
	SetStatus(id string, st Status) (bool, error)
	Cancel(id string) bool
	View(f Filter, s Sort) []Demand
	Recent(n int) []Demand
	Stats() Stats
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "demand_service"),
	}
}

func (s *Service) List() []Demand {
	return s.repo.All()
}

func (s *Service) Get(id string) (Demand, error) {
	d, ok := s.repo.Find(id)
	if !ok {
		return Demand{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return d, nil
}

func (s *Service) validate(d Demand) (Demand, error) {
	d.ID = strings.TrimSpace(d.ID)
	d.Type = strings.TrimSpace(d.Type)
	if d.ID == "" {
		return d, fmt.Errorf("%w: empty id", ErrInvalidInput)
	}
	if d.Type == "" {
		return d, fmt.Errorf("%w: empty type", ErrInvalidInput)
	}
	if d.Status == "" {
		d.Status = StatusPending
	}
	if err := d.Status.Validate(); err != nil {
		return d, err
	}
	if _, exists := s.repo.Find(d.ID); exists {
		return d, fmt.Errorf("%w: %s", ErrDuplicateID, d.ID)
	}
	return d, nil
}

// Create добавляет заявку в конец коллекции.
func (s *Service) Create(d Demand) (Demand, error) {
	d, err := s.validate(d)
	if err != nil {
		return Demand{}, err
	}

	s.repo.Append(d)
	s.log.Info("demand created", "id", d.ID, "type", d.Type)

	return d, nil
}

// Stage добавляет заявку в пакет; запись произойдет при Commit.
func (s *Service) Stage(b *kv.Batch, d Demand) (Demand, error) {
	d, err := s.validate(d)
	if err != nil {
		return Demand{}, err
	}

	s.repo.StageAppend(b, d)
	return d, nil
}

// Update применяет патч. Неизвестный id - не ошибка: возвращается false.
func (s *Service) Update(id string, p Patch) (bool, error) {
	if err := p.Validate(); err != nil {
		return false, err
	}

	found := s.repo.UpdateByID(id, p.Apply)
	if !found {
		s.log.Debug("update skipped, demand not found", "id", id)
	}
	return found, nil
}

func (s *Service) SetStatus(id string, st Status) (bool, error) {
	return s.Update(id, Patch{Status: &st})
}

// Cancel переводит заявку в статус cancelled. Запись не удаляется.
func (s *Service) Cancel(id string) bool {
	found, _ := s.SetStatus(id, StatusCancelled)
	return found
}

func (s *Service) View(f Filter, st Sort) []Demand {
	return View(s.repo.All(), f, st)
}

// Recent возвращает n последних заявок по дате.
func (s *Service) Recent(n int) []Demand {
	return view.Top(View(s.repo.All(), Filter{}, DefaultSort), n)
}

func (s *Service) Stats() Stats {
	st := Stats{ByStatus: make(map[Status]int)}
	for _, d := range s.repo.All() {
		st.Total++
		st.ByStatus[d.Status]++
		if d.Status.IsOpen() {
			st.Pending++
		}
		if d.Status == StatusCompleted {
			st.Completed++
		}
	}
	return st
}
