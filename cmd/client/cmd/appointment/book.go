package appointment

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"ecitoyen/cmd/client/cmd/types"
	"ecitoyen/internal/app/client"
	"ecitoyen/internal/domain/appointment"
)

var (
	bookDate    string
	bookTime    string
	bookReason  string
	bookContact string
)

var BookCmd = &cobra.Command{
	Use:   "book <service>",
	Short: "Записаться на прием",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		fmt.Println("Confirmation du rendez-vous...")
		a, err := app.BookAppointment(cmd.Context(), client.AppointmentRequest{
			Service: args[0],
			Date:    bookDate,
			Time:    bookTime,
			Reason:  bookReason,
			Contact: bookContact,
		})
		if err != nil {
			return err
		}

		if types.WantJSON(cmd) {
			return types.PrintJSON(a)
		}
		types.Success("Rendez-vous confirmé !")
		fmt.Printf("%s: %s le %s à %s\n", a.ID, a.Service, a.Date, a.Time)
		return nil
	},
}

var SlotsCmd = &cobra.Command{
	Use:   "slots",
	Short: "Свободные даты и время",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		dates := appointment.AvailableDates(app.Now())
		slots := appointment.TimeSlots()
		if types.WantJSON(cmd) {
			return types.PrintJSON(map[string][]string{"dates": dates, "times": slots})
		}
		fmt.Println("Dates:  " + strings.Join(dates, ", "))
		fmt.Println("Heures: " + strings.Join(slots, ", "))
		return nil
	},
}

var ServicesCmd = &cobra.Command{
	Use:   "services",
	Short: "Службы и услуги",
	RunE: func(cmd *cobra.Command, _ []string) error {
		deps := appointment.Departments()
		if types.WantJSON(cmd) {
			return types.PrintJSON(deps)
		}
		for _, d := range deps {
			fmt.Printf("%s\n", d.Name)
			for _, s := range d.Services {
				fmt.Printf("  - %s\n", s)
			}
		}
		return nil
	},
}

func init() {
	BookCmd.Flags().StringVarP(&bookDate, "date", "d", "", "дата YYYY-MM-DD")
	BookCmd.Flags().StringVarP(&bookTime, "time", "t", "", "время HH:MM")
	BookCmd.Flags().StringVar(&bookReason, "reason", "", "причина визита")
	BookCmd.Flags().StringVar(&bookContact, "contact", "", "контакт для связи")
	_ = BookCmd.MarkFlagRequired("date")
	_ = BookCmd.MarkFlagRequired("time")
}
