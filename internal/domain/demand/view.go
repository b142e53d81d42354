package demand

import (
	"fmt"

	"ecitoyen/internal/domain/view"
)

type SortBy string

const (
	SortByDate   SortBy = "date"
	SortByType   SortBy = "type"
	SortByStatus SortBy = "status"
)

func (s SortBy) Validate() error {
	switch s {
	case SortByDate, SortByType, SortByStatus:
		return nil
	}
	return fmt.Errorf("неверное поле сортировки: %s", s)
}

// Filter - параметры вкладки "Mes demandes". Пустой Status означает все статусы.
type Filter struct {
	Search string
	Status Status
}

func (f Filter) Match(d Demand) bool {
	if f.Status != "" && d.Status != f.Status {
		return false
	}
	return view.Matches(f.Search, d.Type, d.ID)
}

type Sort struct {
	By    SortBy
	Order view.Order
}

// DefaultSort - новые заявки первыми.
var DefaultSort = Sort{By: SortByDate, Order: view.Desc}

// View фильтрует и сортирует заявки, не изменяя исходный срез.
func View(items []Demand, f Filter, s Sort) []Demand {
	out := make([]Demand, 0, len(items))
	for _, d := range items {
		if f.Match(d) {
			out = append(out, d)
		}
	}

	if s.By == "" {
		s = DefaultSort
	}
	collator := view.Collator()
	view.SortStable(out, func(a, b Demand) int {
		switch s.By {
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
