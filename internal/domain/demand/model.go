package demand

import "slices"

// Demand - заявка гражданина на документ.
// Сохраняется в ключе citizenDemands в порядке создания.
type Demand struct {
	ID           string   `json:"id"`
	Type         string   `json:"type"`
	Date         string   `json:"date"`
	Status       Status   `json:"status"`
	Documents    []string `json:"documents,omitzero"`
	Reference    string   `json:"reference,omitempty"`
	Price        string   `json:"price,omitempty"`
	ExpectedDate string   `json:"expectedDate,omitempty"`
}

func (d Demand) GetID() string {
	return d.ID
}

// Patch - частичное обновление заявки; nil-поля не меняются.
type Patch struct {
	Type         *string
	Date         *string
	Status       *Status
	Documents    []string
	Reference    *string
	Price        *string
	ExpectedDate *string
}

// Apply возвращает копию d с примененными полями патча.
func (p Patch) Apply(d Demand) Demand {
	if p.Type != nil {
		d.Type = *p.Type
	}
	if p.Date != nil {
		d.Date = *p.Date
	}
	if p.Status != nil {
		d.Status = *p.Status
	}
	if p.Documents != nil {
		d.Documents = slices.Clone(p.Documents)
	}
	if p.Reference != nil {
		d.Reference = *p.Reference
	}
	if p.Price != nil {
		d.Price = *p.Price
	}
	if p.ExpectedDate != nil {
		d.ExpectedDate = *p.ExpectedDate
	}
	return d
}

func (p Patch) Validate() error {
	if p.Status != nil {
		return p.Status.Validate()
	}
	return nil
}

// Stats - сводка по заявкам.
type Stats struct {
	Total     int            `json:"total"`
	Pending   int            `json:"pending"`
	Completed int            `json:"completed"`
	ByStatus  map[Status]int `json:"byStatus"`
}
