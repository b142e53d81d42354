package appointment

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	List() []Appointment
	Get(id string) (Appointment, error)
	Book(a Appointment) (Appointment, error)
	Update(id string, p Patch) (bool, error)
	Cancel(id string) bool
	Complete(id string) bool
	Reschedule(id, date, hm string) (bool, error)
	View(f Filter, s Sort) []Appointment
	Stats(now time.Time) Stats
	Next(now time.Time, n int) []Appointment
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "appointment_service"),
	}
}

func (s *Service) List() []Appointment {
	return s.repo.All()
}

func (s *Service) Get(id string) (Appointment, error) {
	a, ok := s.repo.Find(id)
	if !ok {
		return Appointment{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return a, nil
}

// Book добавляет запись на прием. Время должно быть одним из предлагаемых слотов.
func (s *Service) Book(a Appointment) (Appointment, error) {
	a.ID = strings.TrimSpace(a.ID)
	a.Service = strings.TrimSpace(a.Service)
	if a.ID == "" || a.Service == "" {
		return Appointment{}, fmt.Errorf("%w: id and service are required", ErrInvalidInput)
	}
	if _, ok := a.When(); !ok {
		return Appointment{}, fmt.Errorf("%w: bad date %q", ErrInvalidInput, a.Date)
	}
	if !IsTimeSlot(a.Time) {
		return Appointment{}, fmt.Errorf("%w: %s", ErrInvalidSlot, a.Time)
	}
	if a.Status == "" {
		a.Status = StatusConfirmed
	}
	if err := a.Status.Validate(); err != nil {
		return Appointment{}, err
	}
	if _, exists := s.repo.Find(a.ID); exists {
		return Appointment{}, fmt.Errorf("%w: %s", ErrDuplicateID, a.ID)
	}
	if !IsKnownService(a.Service) {
		s.log.Debug("booking a service outside the catalog", "service", a.Service)
	}

	s.repo.Append(a)
	s.log.Info("appointment booked", "id", a.ID, "service", a.Service, "date", a.Date, "time", a.Time)

	return a, nil
}

func (s *Service) Update(id string, p Patch) (bool, error) {
	if err := p.Validate(); err != nil {
		return false, err
	}

	found := s.repo.UpdateByID(id, p.Apply)
	if !found {
		s.log.Debug("update skipped, appointment not found", "id", id)
	}
	return found, nil
}

func (s *Service) setStatus(id string, st Status) bool {
	found, _ := s.Update(id, Patch{Status: &st})
	return found
}

// Cancel отменяет прием; запись остается в коллекции.
func (s *Service) Cancel(id string) bool {
	return s.setStatus(id, StatusCancelled)
}

func (s *Service) Complete(id string) bool {
	return s.setStatus(id, StatusCompleted)
}

// Reschedule переносит прием на новую дату и слот.
func (s *Service) Reschedule(id, date, hm string) (bool, error) {
	if !IsTimeSlot(hm) {
		return false, fmt.Errorf("%w: %s", ErrInvalidSlot, hm)
	}
	st := StatusRescheduled
	return s.Update(id, Patch{Date: &date, Time: &hm, Status: &st})
}

func (s *Service) View(f Filter, st Sort) []Appointment {
	return View(s.repo.All(), f, st)
}

func (s *Service) Stats(now time.Time) Stats {
	return Compute(s.repo.All(), now)
}

func (s *Service) Next(now time.Time, n int) []Appointment {
	return Next(s.repo.All(), now, n)
}
