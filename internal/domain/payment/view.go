package payment

import (
	"fmt"

	"ecitoyen/internal/domain/view"
)

type SortBy string

const (
	SortByDate   SortBy = "date"
	SortByAmount SortBy = "amount"
	SortByType   SortBy = "type"
	SortByStatus SortBy = "status"
)

func (s SortBy) Validate() error {
	switch s {
	case SortByDate, SortByAmount, SortByType, SortByStatus:
		return nil
	}
	return fmt.Errorf("неверное поле сортировки: %s", s)
}

// Filter - параметры вкладки платежей. Пустые поля означают "все".
type Filter struct {
	Search string
	Status Status
	Method string
}

func (f Filter) Match(p Payment) bool {
	if f.Status != "" && p.Status != f.Status {
		return false
	}
	if f.Method != "" && p.Method != f.Method {
		return false
	}
	return view.Matches(f.Search, p.Type, p.ID, p.Reference)
}

type Sort struct {
	By    SortBy
	Order view.Order
}

var DefaultSort = Sort{By: SortByDate, Order: view.Desc}

func View(items []Payment, f Filter, s Sort) []Payment {
	out := make([]Payment, 0, len(items))
	for _, p := range items {
		if f.Match(p) {
			out = append(out, p)
		}
	}

	if s.By == "" {
		s = DefaultSort
	}
	collator := view.Collator()
	view.SortStable(out, func(a, b Payment) int {
		switch s.By {
		case SortByAmount:
			return a.Value().Cmp(b.Value())
		case SortByType:
			return collator.CompareString(a.Type, b.Type)
		case SortByStatus:
			return collator.CompareString(string(a.Status), string(b.Status))
		default:
			return view.CompareDates(a.Date, b.Date)
		}
	}, s.Order)

	return out
}

// Compute считает статистику: pending включает processing.
func Compute(items []Payment) Stats {
	var paid, pending []Payment
	st := Stats{Total: len(items)}
	for _, p := range items {
		switch p.Status {
		case StatusCompleted:
			paid = append(paid, p)
		case StatusPending, StatusProcessing:
			pending = append(pending, p)
		case StatusFailed:
			st.Failed++
		}
	}
	st.TotalAmount = Sum(items)
	st.Paid = len(paid)
	st.PaidAmount = Sum(paid)
	st.Pending = len(pending)
	st.PendingAmount = Sum(pending)
	return st
}
