package clock

import (
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// Clock - источник текущего времени
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// System возвращает часы на основе time.Now.
func System() Clock {
	return systemClock{}
}

// Fixed - часы с заданным временем, для тестов.
type Fixed time.Time

func (f Fixed) Now() time.Time { return time.Time(f) }

var layouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.000Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
	"02/01/2006",
}

// ParseDate разбирает дату в одном из форматов, которые встречаются в
// сохраненных записях. Неразборчивая строка дает нулевое время и false.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Combine склеивает дату YYYY-MM-DD и время HH:MM.
func Combine(date, hm string) (time.Time, bool) {
	if hm == "" {
		return ParseDate(date)
	}
	if t, ok := ParseDate(date + "T" + hm); ok {
		return t, true
	}
	return ParseDate(date)
}

// Day форматирует дату как YYYY-MM-DD.
func Day(t time.Time) string {
	return t.Format("2006-01-02")
}

// Stamp форматирует момент времени как RFC 3339 в UTC с миллисекундами.
func Stamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z07:00")
}

// FrenchDay форматирует дату как JJ/MM/AAAA.
func FrenchDay(t time.Time) string {
	return t.Format("02/01/2006")
}

const week = 7 * 24 * time.Hour

// Шкала центра уведомлений; после недели показывается дата.
var frenchMagnitudes = []humanize.RelTimeMagnitude{
	{D: time.Minute, Format: "À l'instant", DivBy: 1},
	{D: time.Hour, Format: "Il y a %dmin", DivBy: time.Minute},
	{D: 24 * time.Hour, Format: "Il y a %dh", DivBy: time.Hour},
	{D: week, Format: "Il y a %dj", DivBy: 24 * time.Hour},
}

// Relative форматирует t относительно now: "À l'instant", "Il y a 5min",
// "Il y a 3h", "Il y a 2j", затем JJ/MM/AAAA. Будущее время считается текущим.
func Relative(t, now time.Time) string {
	if t.After(now) {
		t = now
	}
	if now.Sub(t) >= week {
		return FrenchDay(t)
	}
	return humanize.CustomRelTime(t, now, "", "", frenchMagnitudes)
}
