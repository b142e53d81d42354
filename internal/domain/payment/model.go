package payment

import "github.com/shopspring/decimal"

// Payment - платеж гражданина. Сумма хранится строкой, как ее ввели.
type Payment struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Amount    string `json:"amount"`
	Date      string `json:"date"`
	Status    Status `json:"status"`
	Method    string `json:"method,omitempty"`
	Reference string `json:"reference,omitempty"`
}

func (p Payment) GetID() string {
	return p.ID
}

// Value возвращает сумму платежа как десятичное число.
func (p Payment) Value() decimal.Decimal {
	return ParseAmount(p.Amount)
}

// Patch - частичное обновление платежа; nil-поля не меняются.
type Patch struct {
	Type      *string
	Amount    *string
	Date      *string
	Status    *Status
	Method    *string
	Reference *string
}

func (p Patch) Apply(pm Payment) Payment {
	if p.Type != nil {
		pm.Type = *p.Type
	}
	if p.Amount != nil {
		pm.Amount = *p.Amount
	}
	if p.Date != nil {
		pm.Date = *p.Date
	}
	if p.Status != nil {
		pm.Status = *p.Status
	}
	if p.Method != nil {
		pm.Method = *p.Method
	}
	if p.Reference != nil {
		pm.Reference = *p.Reference
	}
	return pm
}

func (p Patch) Validate() error {
	if p.Status != nil {
		return p.Status.Validate()
	}
	return nil
}

// Stats - сводка вкладки платежей.
type Stats struct {
	Total         int             `json:"total"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	Paid          int             `json:"paid"`
	PaidAmount    decimal.Decimal `json:"paidAmount"`
	Pending       int             `json:"pending"`
	PendingAmount decimal.Decimal `json:"pendingAmount"`
	Failed        int             `json:"failed"`
}

// Способы оплаты, предлагаемые порталом.
const (
	MethodCard     = "Carte Bancaire"
	MethodMobile   = "Mobile Money"
	MethodTransfer = "Virement Bancaire"
	MethodCash     = "Espèces"
)

func Methods() []string {
	return []string{MethodCard, MethodMobile, MethodTransfer, MethodCash}
}
