package revenue

import (
	"time"
)

// Статусы платежей на сервере.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Категории видов платежей.
const (
	CategoryTax      = "tax"
	CategoryDocument = "document"
)

// Payment - платеж гражданина в удаленном API.
type Payment struct {
	ID        int64     `json:"id"`
	CitizenID int64     `json:"citizen_id"`
	Type      string    `json:"type"`
	Amount    float64   `json:"amount"`
	Status    string    `json:"status" enum:"pending,completed,failed"`
	CreatedAt time.Time `json:"created_at"`
}

type CreatePaymentRequest struct {
	CitizenID int64   `json:"citizen_id" minimum:"1"`
	Type      string  `json:"type" minLength:"1"`
	Amount    float64 `json:"amount" exclusiveMinimum:"0"`
	Status    string  `json:"status,omitempty" enum:"pending,completed,failed"`
}

// PaymentType - вид платежа (налог или документ) с базовой суммой.
type PaymentType struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category,omitempty"`
}

type TypeTotal struct {
	Type   string  `json:"type"`
	Count  int     `json:"count"`
	Amount float64 `json:"amount"`
}

type PaymentStats struct {
	TotalPayments int            `json:"totalPayments"`
	TotalAmount   float64        `json:"totalAmount"`
	ByStatus      map[string]int `json:"byStatus"`
	ByType        []TypeTotal    `json:"byType"`
}

type Activity struct {
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Date        time.Time `json:"date"`
}

type MonthlyTotal struct {
	Month  string  `json:"month"`
	Count  int     `json:"count"`
	Amount float64 `json:"amount"`
}

type DashboardStats struct {
	TotalCitizens    int            `json:"totalCitizens"`
	TotalPayments    int            `json:"totalPayments"`
	TotalRevenue     float64        `json:"totalRevenue"`
	TotalDocuments   int            `json:"totalDocuments"`
	RecentActivities []Activity     `json:"recentActivities"`
	MonthlyData      []MonthlyTotal `json:"monthlyData"`
}
