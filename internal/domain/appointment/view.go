package appointment

import (
	"fmt"
	"time"

	"ecitoyen/internal/domain/view"
)

type SortBy string

const (
	SortByDate    SortBy = "date"
	SortByService SortBy = "service"
	SortByStatus  SortBy = "status"
)

func (s SortBy) Validate() error {
	switch s {
	case SortByDate, SortByService, SortByStatus:
		return nil
	}
	return fmt.Errorf("неверное поле сортировки: %s", s)
}

type Filter struct {
	Search  string
	Status  Status
	Service string
}

func (f Filter) Match(a Appointment) bool {
	if f.Status != "" && a.Status != f.Status {
		return false
	}
	if f.Service != "" && a.Service != f.Service {
		return false
	}
	return view.Matches(f.Search, a.Service, a.ID, a.Contact, a.Reason)
}

type Sort struct {
	By    SortBy
	Order view.Order
}

// DefaultSort - ближайшие приемы первыми.
var DefaultSort = Sort{By: SortByDate, Order: view.Asc}

func compareWhen(a, b Appointment) int {
	ta, _ := a.When()
	tb, _ := b.When()
	return ta.Compare(tb)
}

func View(items []Appointment, f Filter, s Sort) []Appointment {
	out := make([]Appointment, 0, len(items))
	for _, a := range items {
		if f.Match(a) {
			out = append(out, a)
		}
	}

	if s.By == "" {
		s = DefaultSort
	}
	collator := view.Collator()
	view.SortStable(out, func(a, b Appointment) int {
		switch s.By {
		case SortByService:
			return collator.CompareString(a.Service, b.Service)
		case SortByStatus:
			return collator.CompareString(string(a.Status), string(b.Status))
		default:
			return compareWhen(a, b)
		}
	}, s.Order)

	return out
}

// Compute считает статистику относительно now. Предстоящие - подтвержденные
// или ожидающие приемы позже now.
func Compute(items []Appointment, now time.Time) Stats {
	st := Stats{Total: len(items)}
	for _, a := range items {
		when, ok := a.When()
		if ok && when.After(now) && (a.Status == StatusConfirmed || a.Status == StatusPending) {
			st.Upcoming++
		}
		if ok && when.Before(now) {
			st.Past++
		}
		switch a.Status {
		case StatusConfirmed:
			st.Confirmed++
		case StatusCancelled:
			st.Cancelled++
		}
	}
	return st
}

// Next возвращает n ближайших подтвержденных приемов после now.
func Next(items []Appointment, now time.Time, n int) []Appointment {
	var upcoming []Appointment
	for _, a := range items {
		when, ok := a.When()
		if ok && when.After(now) && a.Status == StatusConfirmed {
			upcoming = append(upcoming, a)
		}
	}
	view.SortStable(upcoming, compareWhen, view.Asc)
	return view.Top(upcoming, n)
}
