package appointment

import (
	"fmt"

	"github.com/danielgtaylor/huma/v2"
)

type Status string

const (
	StatusConfirmed   Status = "confirmed"
	StatusPending     Status = "pending"
	StatusCancelled   Status = "cancelled"
	StatusCompleted   Status = "completed"
	StatusRescheduled Status = "rescheduled"
)

func Statuses() []Status {
	return []Status{StatusConfirmed, StatusPending, StatusCancelled, StatusCompleted, StatusRescheduled}
}

func (Status) Schema(r huma.Registry) *huma.Schema {
	enum := make([]any, 0, len(Statuses()))
	for _, s := range Statuses() {
		enum = append(enum, string(s))
	}
	return &huma.Schema{
		Type:        huma.TypeString,
		Enum:        enum,
		Description: "Статус записи на прием",
		Examples:    []any{StatusConfirmed},
	}
}

// Validate реализует интерфейс huma.Validatable.
func (s Status) Validate() error {
	switch s {
	case StatusConfirmed, StatusPending, StatusCancelled, StatusCompleted, StatusRescheduled:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidStatus, string(s))
}

func (s Status) String() string {
	return string(s)
}

func (s Status) DisplayName() string {
	switch s {
	case StatusConfirmed:
		return "Confirmé"
	case StatusPending:
		return "En attente"
	case StatusCancelled:
		return "Annulé"
	case StatusCompleted:
		return "Terminé"
	case StatusRescheduled:
		return "Reporté"
	default:
		return string(s)
	}
}
