package appointment

import (
	"fmt"

	"github.com/spf13/cobra"

	"ecitoyen/cmd/client/cmd/types"
	"ecitoyen/internal/domain/appointment"
	"ecitoyen/internal/domain/view"
)

var (
	listSearch  string
	listStatus  string
	listService string
	listSort    string
	listOrder   string
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Мои приемы",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		f := appointment.Filter{Search: listSearch, Status: appointment.Status(listStatus), Service: listService}
		if f.Status != "" {
			if err := f.Status.Validate(); err != nil {
				return err
			}
		}
		s := appointment.Sort{By: appointment.SortBy(listSort)}
		if err := s.By.Validate(); err != nil {
			return err
		}
		if s.Order, err = view.ParseOrder(listOrder, appointment.DefaultSort.Order); err != nil {
			return err
		}

		items := app.Appointments.View(f, s)
		if types.WantJSON(cmd) {
			return types.PrintJSON(items)
		}
		if len(items) == 0 {
			fmt.Println("Aucun rendez-vous")
			return nil
		}

		st := app.Appointments.Stats(app.Now())
		fmt.Printf("À venir: %d  Passés: %d  Confirmés: %d  Annulés: %d\n\n", st.Upcoming, st.Past, st.Confirmed, st.Cancelled)

		w := types.NewTable()
		fmt.Fprintln(w, "ID\tSERVICE\tDATE\tHEURE\tSTATUT")
		for _, a := range items {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", a.ID, a.Service, a.Date, a.Time, types.Status(string(a.Status), a.Status.DisplayName()))
		}
		return w.Flush()
	},
}

var CancelCmd = &cobra.Command{
	Use:   "cancel <id>",
	Short: "Отменить прием",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		if err := app.CancelAppointment(cmd.Context(), args[0]); err != nil {
			return err
		}
		types.Success("Rendez-vous %s annulé", args[0])
		return nil
	},
}

var CompleteCmd = &cobra.Command{
	Use:   "complete <id>",
	Short: "Отметить прием как состоявшийся",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		if !app.Appointments.Complete(args[0]) {
			return fmt.Errorf("прием не найден: %s", args[0])
		}
		types.Success("Rendez-vous %s terminé", args[0])
		return nil
	},
}

var (
	rescheduleDate string
	rescheduleTime string
)

var RescheduleCmd = &cobra.Command{
	Use:   "reschedule <id>",
	Short: "Перенести прием",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		found, err := app.Appointments.Reschedule(args[0], rescheduleDate, rescheduleTime)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("прием не найден: %s", args[0])
		}
		types.Success("Rendez-vous reporté au %s à %s", rescheduleDate, rescheduleTime)
		return nil
	},
}

func init() {
	ListCmd.Flags().StringVarP(&listSearch, "search", "s", "", "поиск")
	ListCmd.Flags().StringVar(&listStatus, "status", "", "фильтр по статусу")
	ListCmd.Flags().StringVar(&listService, "service", "", "фильтр по услуге")
	ListCmd.Flags().StringVar(&listSort, "sort", string(appointment.SortByDate), "сортировка: date, service, status")
	ListCmd.Flags().StringVar(&listOrder, "order", "", "порядок: asc или desc")

	RescheduleCmd.Flags().StringVarP(&rescheduleDate, "date", "d", "", "новая дата YYYY-MM-DD")
	RescheduleCmd.Flags().StringVarP(&rescheduleTime, "time", "t", "", "новое время HH:MM")
	_ = RescheduleCmd.MarkFlagRequired("date")
	_ = RescheduleCmd.MarkFlagRequired("time")
}
