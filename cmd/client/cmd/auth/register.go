package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"ecitoyen/cmd/client/cmd/types"
	"ecitoyen/internal/domain/session"
)

var reg session.RegisterInput

var RegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Зарегистрироваться",
	Long: `Создает профиль гражданина (или агента с --type agent) и сразу
открывает сессию.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		in := reg
		in.FirstName = types.Prompt("Prénom", in.FirstName)
		in.LastName = types.Prompt("Nom", in.LastName)
		in.Email = types.Prompt("Email", in.Email)
		in.Phone = types.Prompt("Téléphone", in.Phone)
		in.Address = types.Prompt("Adresse", in.Address)
		if in.Password, err = types.Password("Mot de passe", in.Password); err != nil {
			return err
		}
		if in.ConfirmPassword, err = types.Password("Confirmer le mot de passe", in.ConfirmPassword); err != nil {
			return err
		}

		u, err := app.Session.Register(cmd.Context(), in)
		if err != nil {
			return fmt.Errorf("ошибка регистрации: %w", err)
		}

		if types.WantJSON(cmd) {
			return types.PrintJSON(u)
		}
		types.Success("Compte créé: %s (%s)", u.FullName(), u.ID)
		return nil
	},
}

func init() {
	f := RegisterCmd.Flags()
	f.StringVar(&reg.FirstName, "first-name", "", "имя")
	f.StringVar(&reg.LastName, "last-name", "", "фамилия")
	f.StringVar(&reg.Email, "email", "", "адрес электронной почты")
	f.StringVar(&reg.Phone, "phone", "", "телефон")
	f.StringVar(&reg.Address, "address", "", "адрес")
	f.StringVar(&reg.Password, "password", "", "пароль (иначе будет запрошен)")
	f.StringVar(&reg.ConfirmPassword, "confirm-password", "", "подтверждение пароля")
	f.StringVar(&reg.UserType, "type", session.UserTypeCitizen, "тип пользователя: citoyen или agent")
	f.StringVar(&reg.Matricule, "matricule", "", "матрикул агента")
	f.StringVar(&reg.Commune, "commune", "", "коммуна агента")
	f.StringVar(&reg.Fonction, "fonction", "", "должность агента")
	f.StringVar(&reg.Service, "service", "", "служба агента")
	f.StringVar(&reg.AdresseCommune, "adresse-commune", "", "адрес коммуны")
}
