// Package types содержит общее для подкоманд клиента: ключ контекста
// приложения, вывод таблиц и JSON, запросы ввода.
package types

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"ecitoyen/internal/app/client"
)

type contextKey string

// ClientAppKey - ключ, под которым корневая команда кладет *client.App в контекст.
const ClientAppKey contextKey = "client_app"

// App достает приложение из контекста команды.
func App(cmd *cobra.Command) (*client.App, error) {
	app, ok := cmd.Context().Value(ClientAppKey).(*client.App)
	if !ok || app == nil {
		return nil, fmt.Errorf("приложение не инициализировано")
	}
	return app, nil
}

// WantJSON сообщает, указан ли глобальный флаг --json.
func WantJSON(cmd *cobra.Command) bool {
	f := cmd.Flag("json")
	return f != nil && f.Value.String() == "true"
}

func PrintJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func NewTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
}

var (
	good    = color.New(color.FgGreen).SprintFunc()
	waiting = color.New(color.FgYellow).SprintFunc()
	bad     = color.New(color.FgRed).SprintFunc()
)

// Status раскрашивает подпись статуса по его коду.
func Status(code, label string) string {
	switch code {
	case "completed", "confirmed", "ready", "success":
		return good(label)
	case "pending", "processing", "rescheduled", "warning":
		return waiting(label)
	case "rejected", "failed", "cancelled", "refunded", "error":
		return bad(label)
	}
	return label
}

func Success(format string, args ...any) {
	fmt.Println(good("✓ ") + fmt.Sprintf(format, args...))
}

func Warning(format string, args ...any) {
	fmt.Println(waiting("⚠ ") + fmt.Sprintf(format, args...))
}

var stdin = bufio.NewReader(os.Stdin)

// Prompt читает строку, если значение не задано флагом.
func Prompt(label, value string) string {
	if value != "" {
		return value
	}
	fmt.Print(label + ": ")
	line, _ := stdin.ReadString('\n')
	return strings.TrimSpace(line)
}

// Password читает пароль без эха, если он не задан флагом.
func Password(label, value string) (string, error) {
	if value != "" {
		return value, nil
	}
	fmt.Print(label + ": ")
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		line, err := stdin.ReadString('\n')
		return strings.TrimSpace(line), err
	}
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("ошибка чтения пароля: %w", err)
	}
	return string(password), nil
}
