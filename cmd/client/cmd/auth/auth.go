package auth

import (
	"github.com/spf13/cobra"
)

// AuthCmd - родительская команда для всех операций с сессией пользователя
var AuthCmd = &cobra.Command{
	Use:   "auth",
	Short: "Сессия пользователя",
	Long:  `Вход, регистрация, выход и профиль текущего пользователя.`,
}
