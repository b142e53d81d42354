package notification

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"ecitoyen/cmd/client/cmd/types"
	"ecitoyen/internal/domain/notification"
	"ecitoyen/internal/utils/clock"
)

// NotificationCmd - центр уведомлений
var NotificationCmd = &cobra.Command{
	Use:     "notification",
	Aliases: []string{"notif", "notifications"},
	Short:   "Центр уведомлений",
}

var listFilter string

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Список уведомлений",
	Long:  `Фильтры: all, unread или категория (demand, payment, appointment, system).`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		items, err := app.Notifications.Filter(listFilter)
		if err != nil {
			return err
		}
		if types.WantJSON(cmd) {
			return types.PrintJSON(items)
		}

		fmt.Printf("Notifications (%d non lues)\n\n", app.Notifications.UnreadCount())
		if len(items) == 0 {
			fmt.Println("Aucune notification")
			return nil
		}

		for _, n := range items {
			mark := " "
			if !n.Read {
				mark = "●"
			}
			fmt.Printf("%s %s  %s\n", mark, types.Status(string(n.Type), n.Title), relative(n.Timestamp, app.Now()))
			fmt.Printf("  %s\n", n.Message)
			fmt.Printf("  [%s] %s\n\n", n.Category.DisplayName(), n.ID)
		}
		return nil
	},
}

// relative - "Il y a 5min" в стиле центра уведомлений.
func relative(ts string, now time.Time) string {
	t, ok := clock.ParseDate(ts)
	if !ok {
		return ts
	}
	return clock.Relative(t, now)
}

var ReadCmd = &cobra.Command{
	Use:   "read [id]",
	Short: "Отметить прочитанным (без id - все)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		if len(args) == 0 {
			n := app.Notifications.MarkAllAsRead()
			types.Success("%d notification(s) marquée(s) comme lue(s)", n)
			return nil
		}
		if !app.Notifications.MarkAsRead(args[0]) {
			fmt.Println("Notification introuvable")
		}
		return nil
	},
}

var UnreadCmd = &cobra.Command{
	Use:   "unread <id>",
	Short: "Отметить непрочитанным",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		if !app.Notifications.MarkAsUnread(args[0]) {
			fmt.Println("Notification introuvable")
		}
		return nil
	},
}

var RemoveCmd = &cobra.Command{
	Use:     "remove <id>",
	Aliases: []string{"delete"},
	Short:   "Удалить уведомление",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		if !app.Notifications.Remove(args[0]) {
			fmt.Println("Notification introuvable")
		}
		return nil
	},
}

var clearReadOnly bool

var ClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Очистить журнал (--read: только прочитанные)",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		if clearReadOnly {
			n := app.Notifications.ClearRead()
			types.Success("%d notification(s) supprimée(s)", n)
			return nil
		}
		app.Notifications.ClearAll()
		types.Success("Toutes les notifications ont été supprimées")
		return nil
	},
}

var (
	addType     string
	addCategory string
	addMessage  string
)

var AddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Добавить уведомление",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		if err := notification.ValidateTitle(args[0]); err != nil {
			return err
		}

		id, err := app.Notifications.Add(notification.Input{
			Type:     notification.Type(addType),
			Category: notification.Category(addCategory),
			Title:    args[0],
			Message:  addMessage,
		})
		if err != nil {
			return err
		}
		fmt.Println(id)
		return nil
	},
}

var SeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Добавить демонстрационные уведомления",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		ids := app.Notifications.SeedSamples()
		types.Success("%d notification(s) de test ajoutée(s)", len(ids))
		return nil
	},
}

var PermissionCmd = &cobra.Command{
	Use:   "permission",
	Short: "Запросить разрешение на показ уведомлений",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		if app.Notifications.RequestPermission(cmd.Context()) {
			types.Success("Notifications autorisées")
		} else {
			types.Warning("Notifications refusées")
		}
		return nil
	},
}

func init() {
	ListCmd.Flags().StringVarP(&listFilter, "filter", "f", notification.FilterAll, "all, unread, demand, payment, appointment, system")
	ClearCmd.Flags().BoolVar(&clearReadOnly, "read", false, "удалить только прочитанные")
	AddCmd.Flags().StringVar(&addType, "type", string(notification.TypeInfo), "info, success, warning, error")
	AddCmd.Flags().StringVar(&addCategory, "category", string(notification.CategorySystem), "demand, payment, appointment, system")
	AddCmd.Flags().StringVar(&addMessage, "message", "", "текст уведомления")
}
