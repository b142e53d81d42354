package session

import (
	"fmt"
	"strings"

	"github.com/danielgtaylor/huma/v2"
)

type Role string

const (
	RoleCitizen Role = "citizen"
	RoleAgent   Role = "agent"
	RoleAdmin   Role = "admin"
)

func (Role) Schema(r huma.Registry) *huma.Schema {
	return &huma.Schema{
		Type:        huma.TypeString,
		Enum:        []any{string(RoleCitizen), string(RoleAgent), string(RoleAdmin)},
		Description: "Роль пользователя портала",
		Examples:    []any{RoleCitizen},
	}
}

func (r Role) Validate() error {
	switch r {
	case RoleCitizen, RoleAgent, RoleAdmin:
		return nil
	}
	return fmt.Errorf("неверная роль: %s", r)
}

func (r Role) String() string {
	return string(r)
}

func (r Role) DisplayName() string {
	switch r {
	case RoleCitizen:
		return "Citoyen"
	case RoleAgent:
		return "Agent communal"
	case RoleAdmin:
		return "Administrateur"
	default:
		return string(r)
	}
}

// User - профиль текущего пользователя. Это кэш профиля, а не учетные данные.
type User struct {
	ID             string `json:"id"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	Role           Role   `json:"role"`
	Matricule      string `json:"matricule,omitempty"`
	Service        string `json:"service,omitempty"`
	Fonction       string `json:"fonction,omitempty"`
	Commune        string `json:"commune,omitempty"`
	AdresseCommune string `json:"adresseCommune,omitempty"`
}

func (u User) GetID() string {
	return u.ID
}

func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// Тип пользователя, выбранный в форме входа или регистрации.
const (
	UserTypeCitizen = "citoyen"
	UserTypeAgent   = "agent"
	UserTypeAdmin   = "admin"
)

type LoginInput struct {
	Email    string
	Password string
	UserType string
}

type RegisterInput struct {
	FirstName       string
	LastName        string
	Email           string
	Phone           string
	Address         string
	Password        string
	ConfirmPassword string
	UserType        string

	// Поля агента
	Matricule      string
	Commune        string
	Fonction       string
	Service        string
	AdresseCommune string
}

func (in RegisterInput) IsAgent() bool {
	return strings.EqualFold(in.UserType, UserTypeAgent)
}

// ProfilePatch - изменение профиля; nil-поля не меняются.
type ProfilePatch struct {
	FirstName *string
	LastName  *string
	Phone     *string
	Address   *string
	Service   *string
	Fonction  *string
	Commune   *string
}

func (p ProfilePatch) Apply(u User) User {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}
	set(&u.FirstName, p.FirstName)
	set(&u.LastName, p.LastName)
	set(&u.Phone, p.Phone)
	set(&u.Address, p.Address)
	set(&u.Service, p.Service)
	set(&u.Fonction, p.Fonction)
	set(&u.Commune, p.Commune)
	return u
}
