package cmd

import (
	"ecitoyen/cmd/client/cmd/appointment"
	"ecitoyen/cmd/client/cmd/auth"
	"ecitoyen/cmd/client/cmd/demand"
	"ecitoyen/cmd/client/cmd/notification"
	"ecitoyen/cmd/client/cmd/payment"
	"ecitoyen/cmd/client/cmd/remote"
)

func init() {
	// Сессия
	rootCmd.AddCommand(auth.AuthCmd)
	auth.AuthCmd.AddCommand(auth.LoginCmd, auth.RegisterCmd, auth.LogoutCmd, auth.WhoamiCmd, auth.ProfileCmd, auth.UsersCmd)

	// Заявки на документы
	rootCmd.AddCommand(demand.DemandCmd)
	demand.DemandCmd.AddCommand(demand.RequestCmd, demand.DocumentsCmd, demand.ListCmd, demand.CancelCmd, demand.StatusCmd)

	// Платежи
	rootCmd.AddCommand(payment.PaymentCmd)
	payment.PaymentCmd.AddCommand(payment.PayCmd, payment.TaxesCmd, payment.ListCmd, payment.StatsCmd, payment.ReceiptCmd)

	// Прием
	rootCmd.AddCommand(appointment.AppointmentCmd)
	appointment.AppointmentCmd.AddCommand(appointment.BookCmd, appointment.SlotsCmd, appointment.ServicesCmd,
		appointment.ListCmd, appointment.CancelCmd, appointment.CompleteCmd, appointment.RescheduleCmd)

	// Уведомления
	rootCmd.AddCommand(notification.NotificationCmd)
	notification.NotificationCmd.AddCommand(notification.ListCmd, notification.ReadCmd, notification.UnreadCmd,
		notification.RemoveCmd, notification.ClearCmd, notification.AddCmd, notification.SeedCmd, notification.PermissionCmd)

	// Удаленный API
	rootCmd.AddCommand(remote.RemoteCmd)
	remote.RemoteCmd.AddCommand(remote.PingCmd, remote.CitizensCmd, remote.CreateCitizenCmd, remote.UpdateCitizenCmd,
		remote.DeleteCitizenCmd, remote.PaymentsCmd, remote.CreatePaymentCmd, remote.TypesCmd, remote.StatsCmd)

	rootCmd.AddCommand(overviewCmd, reconcileCmd)
}
