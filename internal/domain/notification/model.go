package notification

import (
	"fmt"
	"strings"

	"github.com/danielgtaylor/huma/v2"
)

// Type - уровень уведомления.
type Type string

const (
	TypeInfo    Type = "info"
	TypeSuccess Type = "success"
	TypeWarning Type = "warning"
	TypeError   Type = "error"
)

func (Type) Schema(r huma.Registry) *huma.Schema {
	return &huma.Schema{
		Type:        huma.TypeString,
		Enum:        []any{string(TypeInfo), string(TypeSuccess), string(TypeWarning), string(TypeError)},
		Description: "Уровень уведомления",
		Examples:    []any{TypeInfo},
	}
}

func (t Type) Validate() error {
	switch t {
	case TypeInfo, TypeSuccess, TypeWarning, TypeError:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidType, string(t))
}

func (t Type) String() string {
	return string(t)
}

// Category - раздел портала, к которому относится уведомление.
type Category string

const (
	CategoryDemand      Category = "demand"
	CategoryPayment     Category = "payment"
	CategoryAppointment Category = "appointment"
	CategorySystem      Category = "system"
)

func Categories() []Category {
	return []Category{CategoryDemand, CategoryPayment, CategoryAppointment, CategorySystem}
}

func (Category) Schema(r huma.Registry) *huma.Schema {
	enum := make([]any, 0, 4)
	for _, c := range Categories() {
		enum = append(enum, string(c))
	}
	return &huma.Schema{
		Type:        huma.TypeString,
		Enum:        enum,
		Description: "Категория уведомления",
		Examples:    []any{CategorySystem},
	}
}

func (c Category) Validate() error {
	switch c {
	case CategoryDemand, CategoryPayment, CategoryAppointment, CategorySystem:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidCategory, string(c))
}

func (c Category) String() string {
	return string(c)
}

func (c Category) DisplayName() string {
	switch c {
	case CategoryDemand:
		return "Demandes"
	case CategoryPayment:
		return "Paiements"
	case CategoryAppointment:
		return "Rendez-vous"
	case CategorySystem:
		return "Système"
	default:
		return string(c)
	}
}

// Notification - запись журнала уведомлений. Новые записи идут первыми.
type Notification struct {
	ID          string   `json:"id"`
	Type        Type     `json:"type"`
	Category    Category `json:"category"`
	Title       string   `json:"title"`
	Message     string   `json:"message"`
	Timestamp   string   `json:"timestamp"`
	Read        bool     `json:"read"`
	ActionURL   string   `json:"actionUrl,omitempty"`
	ActionLabel string   `json:"actionLabel,omitempty"`
}

func (n Notification) GetID() string {
	return n.ID
}

// Input - данные нового уведомления; id, время и read=false проставляет журнал.
type Input struct {
	Type        Type
	Category    Category
	Title       string
	Message     string
	ActionURL   string
	ActionLabel string
}

func (in Input) Validate() error {
	if err := in.Type.Validate(); err != nil {
		return err
	}
	return in.Category.Validate()
}

// ValidateTitle - проверка для ручного ввода в CLI. Журнал сам принимает
// любой заголовок, в том числе пустой.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	return nil
}
