package citizen

import "time"

// Citizen - гражданин в реестре удаленного API.
type Citizen struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateRequest struct {
	Name    string `json:"name" minLength:"1" maxLength:"200"`
	Email   string `json:"email" format:"email"`
	Phone   string `json:"phone,omitempty" maxLength:"32"`
	Address string `json:"address,omitempty" maxLength:"500"`
}

// UpdateRequest - частичное обновление; отсутствующие поля не меняются.
type UpdateRequest struct {
	Name    *string `json:"name,omitempty" minLength:"1" maxLength:"200"`
	Email   *string `json:"email,omitempty" format:"email"`
	Phone   *string `json:"phone,omitempty" maxLength:"32"`
	Address *string `json:"address,omitempty" maxLength:"500"`
}

func (r UpdateRequest) Apply(c Citizen) Citizen {
	if r.Name != nil {
		c.Name = *r.Name
	}
	if r.Email != nil {
		c.Email = *r.Email
	}
	if r.Phone != nil {
		c.Phone = *r.Phone
	}
	if r.Address != nil {
		c.Address = *r.Address
	}
	return c
}
