package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"ecitoyen/cmd/client/cmd/types"
	"ecitoyen/internal/domain/session"
)

var (
	loginEmail    string
	loginPassword string
	loginType     string
)

var LoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Войти на портал",
	Long: `Открывает сессию. Пользователь с неизвестным адресом создается
автоматически (в режиме AUTH_MODE=demo).`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		email := types.Prompt("Email", loginEmail)
		password, err := types.Password("Mot de passe", loginPassword)
		if err != nil {
			return err
		}

		u, err := app.Session.Login(cmd.Context(), session.LoginInput{
			Email:    email,
			Password: password,
			UserType: loginType,
		})
		if err != nil {
			return fmt.Errorf("ошибка аутентификации: %w", err)
		}

		if types.WantJSON(cmd) {
			return types.PrintJSON(u)
		}
		types.Success("Bienvenue, %s (%s)", u.FullName(), u.Role.DisplayName())
		if app.Session.Mode() == session.ModeDemo {
			types.Warning("mode démo: le mot de passe n'a pas été vérifié")
		}
		return nil
	},
}

func init() {
	LoginCmd.Flags().StringVarP(&loginEmail, "email", "e", "", "адрес электронной почты")
	LoginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "пароль (иначе будет запрошен)")
	LoginCmd.Flags().StringVarP(&loginType, "type", "t", session.UserTypeCitizen, "тип пользователя: citoyen, agent, admin")
}
