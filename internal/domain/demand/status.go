package demand

import (
	"fmt"

	"github.com/danielgtaylor/huma/v2"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusReady      Status = "ready"
	StatusCompleted  Status = "completed"
	StatusRejected   Status = "rejected"
	StatusCancelled  Status = "cancelled"
)

// Statuses возвращает все допустимые статусы в порядке жизненного цикла.
func Statuses() []Status {
	return []Status{StatusPending, StatusProcessing, StatusReady, StatusCompleted, StatusRejected, StatusCancelled}
}

func (Status) Schema(r huma.Registry) *huma.Schema {
	enum := make([]any, 0, len(Statuses()))
	for _, s := range Statuses() {
		enum = append(enum, string(s))
	}
	return &huma.Schema{
		Type:        huma.TypeString,
		Enum:        enum,
		Description: "Статус заявки на документ",
		Examples:    []any{StatusPending},
	}
}

// Validate реализует интерфейс huma.Validatable.
func (s Status) Validate() error {
	switch s {
	case StatusPending, StatusProcessing, StatusReady, StatusCompleted, StatusRejected, StatusCancelled:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidStatus, string(s))
}

func (s Status) String() string {
	return string(s)
}

// DisplayName возвращает название статуса, как его видит гражданин.
func (s Status) DisplayName() string {
	switch s {
	case StatusPending:
		return "En attente"
	case StatusProcessing:
		return "En cours"
	case StatusReady:
		return "Prêt"
	case StatusCompleted:
		return "Terminé"
	case StatusRejected:
		return "Refusé"
	case StatusCancelled:
		return "Annulé"
	default:
		return string(s)
	}
}

// IsOpen - заявка еще в работе.
func (s Status) IsOpen() bool {
	return s == StatusPending || s == StatusProcessing
}
