package appointment

import (
	"time"

	"ecitoyen/internal/utils/clock"
)

// Appointment - запись на прием в муниципальную службу.
type Appointment struct {
	ID      string `json:"id"`
	Service string `json:"service"`
	Date    string `json:"date"`
	Time    string `json:"time"`
	Status  Status `json:"status"`
	Reason  string `json:"reason,omitempty"`
	Contact string `json:"contact,omitempty"`
}

func (a Appointment) GetID() string {
	return a.ID
}

// When возвращает момент приема (дата + время).
func (a Appointment) When() (time.Time, bool) {
	return clock.Combine(a.Date, a.Time)
}

type Patch struct {
	Service *string
	Date    *string
	Time    *string
	Status  *Status
	Reason  *string
	Contact *string
}

func (p Patch) Apply(a Appointment) Appointment {
	if p.Service != nil {
		a.Service = *p.Service
	}
	if p.Date != nil {
		a.Date = *p.Date
	}
	if p.Time != nil {
		a.Time = *p.Time
	}
	if p.Status != nil {
		a.Status = *p.Status
	}
	if p.Reason != nil {
		a.Reason = *p.Reason
	}
	if p.Contact != nil {
		a.Contact = *p.Contact
	}
	return a
}

func (p Patch) Validate() error {
	if p.Status != nil {
		return p.Status.Validate()
	}
	return nil
}

type Stats struct {
	Total     int `json:"total"`
	Upcoming  int `json:"upcoming"`
	Past      int `json:"past"`
	Confirmed int `json:"confirmed"`
	Cancelled int `json:"cancelled"`
}
