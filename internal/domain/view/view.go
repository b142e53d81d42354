// Package view содержит общие операции представления коллекций:
// поиск, сортировку и сравнение строк по правилам французской локали.
// Представления никогда не изменяют сохраненные данные.
package view

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"ecitoyen/internal/utils/clock"
)

type Order string

const (
	Asc  Order = "asc"
	Desc Order = "desc"
)

func (o Order) Validate() error {
	switch o {
	case Asc, Desc:
		return nil
	}
	return fmt.Errorf("неверный порядок сортировки: %s", o)
}

// ParseOrder разбирает порядок сортировки; пустая строка дает def.
func ParseOrder(s string, def Order) (Order, error) {
	if s == "" {
		return def, nil
	}
	o := Order(strings.ToLower(s))
	if err := o.Validate(); err != nil {
		return "", err
	}
	return o, nil
}

// SortStable сортирует items на месте; равные элементы сохраняют порядок вставки.
func SortStable[T any](items []T, cmp func(a, b T) int, o Order) {
	slices.SortStableFunc(items, func(a, b T) int {
		c := cmp(a, b)
		if o == Desc {
			return -c
		}
		return c
	})
}

// Collator возвращает сравнение строк для французской локали.
// Не безопасен для конкурентного использования: создавайте на каждую сортировку.
func Collator() *collate.Collator {
	return collate.New(language.French)
}

// Matches сообщает, содержит ли хотя бы одно из полей needle без учета регистра.
// Пустой needle подходит всегда.
func Matches(needle string, fields ...string) bool {
	needle = strings.ToLower(strings.TrimSpace(needle))
	if needle == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

// CompareDates сравнивает даты в строковом виде. Неразборчивые даты меньше любых других.
func CompareDates(a, b string) int {
	ta, _ := clock.ParseDate(a)
	tb, _ := clock.ParseDate(b)
	return ta.Compare(tb)
}

// Top возвращает первые n элементов (копию). n < 0 дает пустой срез.
func Top[T any](items []T, n int) []T {
	n = max(n, 0)
	if n > len(items) {
		n = len(items)
	}
	out := make([]T, n)
	copy(out, items[:n])
	return out
}

