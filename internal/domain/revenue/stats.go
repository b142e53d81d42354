package revenue

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

const (
	recentActivities = 5
	monthlyWindow    = 6
)

func sum(items []Payment) float64 {
	total := decimal.Zero
	for _, p := range items {
		total = total.Add(decimal.NewFromFloat(p.Amount))
	}
	return total.InexactFloat64()
}

// ComputePaymentStats группирует платежи по статусу и виду.
func ComputePaymentStats(items []Payment) PaymentStats {
	st := PaymentStats{
		TotalPayments: len(items),
		TotalAmount:   sum(items),
		ByStatus:      make(map[string]int),
		ByType:        []TypeTotal{},
	}

	byType := make(map[string][]Payment)
	for _, p := range items {
		st.ByStatus[p.Status]++
		byType[p.Type] = append(byType[p.Type], p)
	}
	for name, ps := range byType {
		st.ByType = append(st.ByType, TypeTotal{Type: name, Count: len(ps), Amount: sum(ps)})
	}
	sort.Slice(st.ByType, func(i, j int) bool {
		if st.ByType[i].Amount != st.ByType[j].Amount {
			return st.ByType[i].Amount > st.ByType[j].Amount
		}
		return st.ByType[i].Type < st.ByType[j].Type
	})
	return st
}

// ComputeDashboard собирает сводку администратора. Выручка считается только
// по завершенным платежам, документы - по видам категории document.
func ComputeDashboard(payments []Payment, types []PaymentType, citizens int, now time.Time) DashboardStats {
	documents := make(map[string]bool)
	for _, t := range types {
		if t.Category == CategoryDocument {
			documents[t.Name] = true
		}
	}

	var completed []Payment
	st := DashboardStats{
		TotalCitizens:    citizens,
		TotalPayments:    len(payments),
		RecentActivities: []Activity{},
	}
	for _, p := range payments {
		if p.Status == StatusCompleted {
			completed = append(completed, p)
		}
		if documents[p.Type] {
			st.TotalDocuments++
		}
	}
	st.TotalRevenue = sum(completed)

	recent := append([]Payment(nil), payments...)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	if len(recent) > recentActivities {
		recent = recent[:recentActivities]
	}
	for _, p := range recent {
		st.RecentActivities = append(st.RecentActivities, Activity{
			Type:        "payment",
			Description: p.Type,
			Amount:      p.Amount,
			Date:        p.CreatedAt,
		})
	}

	st.MonthlyData = monthly(completed, now)
	return st
}

// monthly возвращает суммы за последние monthlyWindow месяцев, от старого к новому.
func monthly(items []Payment, now time.Time) []MonthlyTotal {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	out := make([]MonthlyTotal, monthlyWindow)
	index := make(map[string]int, monthlyWindow)
	totals := make([]decimal.Decimal, monthlyWindow)
	for i := 0; i < monthlyWindow; i++ {
		m := first.AddDate(0, i-monthlyWindow+1, 0).Format("2006-01")
		out[i].Month = m
		index[m] = i
	}

	for _, p := range items {
		i, ok := index[p.CreatedAt.In(now.Location()).Format("2006-01")]
		if !ok {
			continue
		}
		out[i].Count++
		totals[i] = totals[i].Add(decimal.NewFromFloat(p.Amount))
	}
	for i := range out {
		out[i].Amount = totals[i].InexactFloat64()
	}
	return out
}
