package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"ecitoyen/cmd/client/cmd/types"
)

var overviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Vue d'ensemble",
	Long:  `Сводка: потрачено, заявки в работе, ближайшие приемы, последние операции.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		ov := app.Overview(app.Now())
		if types.WantJSON(cmd) {
			return types.PrintJSON(ov)
		}

		if u, ok := app.Session.Current(); ok {
			fmt.Printf("Bonjour, %s\n\n", u.FullName())
		}
		fmt.Printf("Total dépensé:         %s FC\n", ov.TotalSpent)
		fmt.Printf("Demandes en cours:     %d\n", ov.PendingDemands)
		fmt.Printf("Demandes terminées:    %d\n", ov.CompletedDemands)
		fmt.Printf("Rendez-vous à venir:   %d\n", ov.UpcomingAppointments)
		fmt.Printf("Notifications non lues: %d\n", ov.UnreadNotifications)

		if len(ov.NextAppointments) > 0 {
			fmt.Println("\nProchains rendez-vous:")
			for _, a := range ov.NextAppointments {
				fmt.Printf("  %s %s  %s\n", a.Date, a.Time, a.Service)
			}
		}
		if len(ov.RecentDemands) > 0 {
			fmt.Println("\nDemandes récentes:")
			for _, d := range ov.RecentDemands {
				fmt.Printf("  %s  %s  %s\n", d.Date, d.Type, types.Status(string(d.Status), d.Status.DisplayName()))
			}
		}
		if len(ov.RecentPayments) > 0 {
			fmt.Println("\nPaiements récents:")
			for _, p := range ov.RecentPayments {
				fmt.Printf("  %s  %s  %s\n", p.Type, p.Amount, types.Status(string(p.Status), p.Status.DisplayName()))
			}
		}
		return nil
	},
}

var reconcileRepair bool

var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Найти заявки без оплаты",
	Long: `Ищет заявки на документы, для которых не сохранился платеж с тем же
reference. С --repair по каждой добавляется системное предупреждение.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		orphans := app.Reconcile(reconcileRepair)
		if types.WantJSON(cmd) {
			return types.PrintJSON(orphans)
		}
		if len(orphans) == 0 {
			types.Success("Toutes les demandes ont un paiement")
			return nil
		}
		for _, o := range orphans {
			types.Warning("%s (%s): paiement introuvable", o.Demand.ID, o.Demand.Reference)
		}
		return nil
	},
}

func init() {
	reconcileCmd.Flags().BoolVar(&reconcileRepair, "repair", false, "добавить предупреждения в журнал")
}
