package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"ecitoyen/cmd/client/cmd/types"
	"ecitoyen/internal/domain/session"
)

var LogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Выйти",
	Long:  `Удаляет текущую сессию. Список зарегистрированных пользователей сохраняется.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		app.Session.Logout()
		types.Success("Déconnecté")
		return nil
	},
}

var WhoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Текущий пользователь",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		u, ok := app.Session.Current()
		if !ok {
			return session.ErrNotAuthenticated
		}
		if types.WantJSON(cmd) {
			return types.PrintJSON(u)
		}

		fmt.Printf("%s <%s>\n", u.FullName(), u.Email)
		fmt.Printf("ID:        %s\n", u.ID)
		fmt.Printf("Rôle:      %s\n", u.Role.DisplayName())
		fmt.Printf("Téléphone: %s\n", u.Phone)
		fmt.Printf("Adresse:   %s\n", u.Address)
		if u.Role == session.RoleAgent {
			fmt.Printf("Matricule: %s (%s, %s)\n", u.Matricule, u.Fonction, u.Commune)
		}
		if app.Session.Mode() == session.ModeDemo {
			types.Warning("mode d'authentification démo: les mots de passe ne sont pas vérifiés")
		}
		return nil
	},
}

var (
	profileFirstName string
	profileLastName  string
	profilePhone     string
	profileAddress   string
)

var ProfileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Изменить профиль",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		var p session.ProfilePatch
		flags := cmd.Flags()
		if flags.Changed("first-name") {
			p.FirstName = &profileFirstName
		}
		if flags.Changed("last-name") {
			p.LastName = &profileLastName
		}
		if flags.Changed("phone") {
			p.Phone = &profilePhone
		}
		if flags.Changed("address") {
			p.Address = &profileAddress
		}

		u, err := app.Session.UpdateProfile(p)
		if err != nil {
			return err
		}
		types.Success("Profil mis à jour: %s", u.FullName())
		return nil
	},
}

var UsersCmd = &cobra.Command{
	Use:   "users",
	Short: "Зарегистрированные пользователи",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		users := app.Session.Users()
		if types.WantJSON(cmd) {
			return types.PrintJSON(users)
		}

		w := types.NewTable()
		fmt.Fprintln(w, "ID\tNOM\tEMAIL\tRÔLE")
		for _, u := range users {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", u.ID, u.FullName(), u.Email, u.Role.DisplayName())
		}
		return w.Flush()
	},
}

func init() {
	ProfileCmd.Flags().StringVar(&profileFirstName, "first-name", "", "имя")
	ProfileCmd.Flags().StringVar(&profileLastName, "last-name", "", "фамилия")
	ProfileCmd.Flags().StringVar(&profilePhone, "phone", "", "телефон")
	ProfileCmd.Flags().StringVar(&profileAddress, "address", "", "адрес")
}
