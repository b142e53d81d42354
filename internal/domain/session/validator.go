package session

import (
	"fmt"
	"net/mail"
	"strings"
)

const MinPasswordLen = 6

// Validator - интерфейс для валидации форм входа и регистрации
type Validator interface {
	ValidateRegister(in RegisterInput) error
	ValidateEmail(email string) error
	ValidatePassword(password string) error
}

type FormValidator struct {
	minPasswordLen int
}

// NewFormValidator создает новый валидатор
func NewFormValidator() *FormValidator {
	return &FormValidator{minPasswordLen: MinPasswordLen}
}

// ValidateRegister валидирует данные для регистрации
func (v *FormValidator) ValidateRegister(in RegisterInput) error {
	required := []struct {
		field string
		value string
	}{
		{"firstName", in.FirstName},
		{"lastName", in.LastName},
		{"email", in.Email},
		{"phone", in.Phone},
		{"address", in.Address},
		{"password", in.Password},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return invalid(r.field, ErrRequiredField, "Ce champ est obligatoire")
		}
	}

	if err := v.ValidateEmail(in.Email); err != nil {
		return err
	}

	if in.Password != in.ConfirmPassword {
		return invalid("confirmPassword", ErrPasswordMismatch, "Les mots de passe ne correspondent pas")
	}

	if err := v.ValidatePassword(in.Password); err != nil {
		return err
	}

	if in.IsAgent() {
		for _, r := range []struct {
			field string
			value string
		}{
			{"matricule", in.Matricule},
			{"commune", in.Commune},
			{"fonction", in.Fonction},
		} {
			if strings.TrimSpace(r.value) == "" {
				return invalid(r.field, ErrRequiredField, "Tous les champs obligatoires pour un agent doivent être remplis")
			}
		}
	}

	return nil
}

// ValidateEmail валидирует адрес электронной почты
func (v *FormValidator) ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return invalid("email", ErrRequiredField, "Ce champ est obligatoire")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return invalid("email", ErrInvalidEmail, "Adresse e-mail invalide")
	}
	return nil
}

// ValidatePassword валидирует пароль
func (v *FormValidator) ValidatePassword(password string) error {
	if len([]rune(password)) < v.minPasswordLen {
		return invalid("password", ErrPasswordTooShort, fmt.Sprintf("Le mot de passe doit contenir au moins %d caractères", v.minPasswordLen))
	}
	return nil
}
