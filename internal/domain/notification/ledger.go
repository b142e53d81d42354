package notification

import (
	"context"
	"fmt"

	"github.com/oklog/ulid/v2"
	"golang.org/x/exp/slog"

	"ecitoyen/internal/storage/kv"
	"ecitoyen/internal/utils/clock"
)

// FilterAll и FilterUnread - фильтры центра уведомлений помимо категорий.
const (
	FilterAll    = "all"
	FilterUnread = "unread"
)

// Ledger - журнал уведомлений в ключе notifications.
// Счетчик непрочитанных не хранится, а вычисляется при каждом обращении.
type Ledger struct {
	list  *kv.List[Notification]
	perm  Permissioner
	clock clock.Clock
	log   *slog.Logger
}

func NewLedger(store *kv.Store, perm Permissioner, clk clock.Clock, log *slog.Logger) *Ledger {
	if clk == nil {
		clk = clock.System()
	}
	return &Ledger{
		list:  kv.NewList[Notification](store, kv.KeyNotifications),
		perm:  perm,
		clock: clk,
		log:   log.With("component", "notification_ledger"),
	}
}

// Add добавляет уведомление в начало журнала и возвращает его id.
func (l *Ledger) Add(in Input) (string, error) {
	if err := in.Validate(); err != nil {
		return "", err
	}

	now := l.clock.Now()
	n := Notification{
		ID:          ulid.MustNew(ulid.Timestamp(now), ulid.DefaultEntropy()).String(),
		Type:        in.Type,
		Category:    in.Category,
		Title:       in.Title,
		Message:     in.Message,
		Timestamp:   clock.Stamp(now),
		Read:        false,
		ActionURL:   in.ActionURL,
		ActionLabel: in.ActionLabel,
	}

	l.list.Prepend(n)
	l.log.Debug("notification added", "id", n.ID, "category", n.Category, "type", n.Type)

	return n.ID, nil
}

func (l *Ledger) setRead(id string, read bool) bool {
	return l.list.UpdateByID(id, func(n Notification) Notification {
		n.Read = read
		return n
	})
}

// MarkAsRead отмечает уведомление прочитанным. Неизвестный id - no-op.
func (l *Ledger) MarkAsRead(id string) bool {
	return l.setRead(id, true)
}

func (l *Ledger) MarkAsUnread(id string) bool {
	return l.setRead(id, false)
}

// MarkAllAsRead возвращает число отмеченных уведомлений.
func (l *Ledger) MarkAllAsRead() int {
	return l.list.UpdateWhere(
		func(n Notification) bool { return !n.Read },
		func(n Notification) Notification {
			n.Read = true
			return n
		},
	)
}

func (l *Ledger) Remove(id string) bool {
	return l.list.Retain(func(n Notification) bool { return n.ID != id }) > 0
}

// Delete - синоним Remove.
func (l *Ledger) Delete(id string) bool {
	return l.Remove(id)
}

func (l *Ledger) ClearAll() {
	l.list.Replace([]Notification{})
	l.log.Debug("notifications cleared")
}

// ClearRead удаляет только прочитанные уведомления.
func (l *Ledger) ClearRead() int {
	return l.list.Retain(func(n Notification) bool { return !n.Read })
}

// List возвращает уведомления, новые первыми.
func (l *Ledger) List() []Notification {
	return l.list.All()
}

func (l *Ledger) Get(id string) (Notification, bool) {
	return l.list.Find(id)
}

func (l *Ledger) UnreadCount() int {
	count := 0
	for _, n := range l.list.All() {
		if !n.Read {
			count++
		}
	}
	return count
}

func (l *Ledger) ByCategory(c Category) []Notification {
	return l.where(func(n Notification) bool { return n.Category == c })
}

func (l *Ledger) Unread() []Notification {
	return l.where(func(n Notification) bool { return !n.Read })
}

// Filter применяет фильтр центра уведомлений: all, unread или категория.
func (l *Ledger) Filter(key string) ([]Notification, error) {
	switch key {
	case "", FilterAll:
		return l.List(), nil
	case FilterUnread:
		return l.Unread(), nil
	}
	c := Category(key)
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFilter, key)
	}
	return l.ByCategory(c), nil
}

func (l *Ledger) where(keep func(Notification) bool) []Notification {
	out := []Notification{}
	for _, n := range l.list.All() {
		if keep(n) {
			out = append(out, n)
		}
	}
	return out
}

// RequestPermission спрашивает разрешение на показ уведомлений.
// Отсутствие или ошибка возможности означает отказ.
func (l *Ledger) RequestPermission(ctx context.Context) bool {
	if l.perm == nil {
		return false
	}
	granted, err := l.perm.RequestPermission(ctx)
	if err != nil {
		l.log.Warn("notification permission unavailable", "error", err)
		return false
	}
	return granted
}

// SeedSamples добавляет демонстрационные уведомления.
func (l *Ledger) SeedSamples() []string {
	samples := []Input{
		{
			Type:     TypeSuccess,
			Category: CategoryDemand,
			Title:    "Demande approuvée",
			Message:  "Votre demande de certificat de naissance a été approuvée",
		},
	}

	ids := make([]string, 0, len(samples))
	for _, in := range samples {
		id, err := l.Add(in)
		if err != nil {
			l.log.Error("sample notification rejected", "error", err)
			continue
		}
		ids = append(ids, id)
	}
	return ids
}
