package payment

import (
	"fmt"

	"github.com/danielgtaylor/huma/v2"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
	StatusRefunded   Status = "refunded"
)

func Statuses() []Status {
	return []Status{StatusPending, StatusProcessing, StatusCompleted, StatusFailed, StatusRefunded}
}

func (Status) Schema(r huma.Registry) *huma.Schema {
	enum := make([]any, 0, len(Statuses()))
	for _, s := range Statuses() {
		enum = append(enum, string(s))
	}
	return &huma.Schema{
		Type:        huma.TypeString,
		Enum:        enum,
		Description: "Статус платежа",
		Examples:    []any{StatusCompleted},
	}
}

// Validate реализует интерфейс huma.Validatable.
func (s Status) Validate() error {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted, StatusFailed, StatusRefunded:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidStatus, string(s))
}

func (s Status) String() string {
	return string(s)
}

func (s Status) DisplayName() string {
	switch s {
	case StatusPending:
		return "En attente"
	case StatusProcessing:
		return "En cours"
	case StatusCompleted:
		return "Payé"
	case StatusFailed:
		return "Échoué"
	case StatusRefunded:
		return "Remboursé"
	default:
		return string(s)
	}
}
