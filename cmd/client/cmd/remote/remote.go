package remote

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"ecitoyen/cmd/client/cmd/types"
	"ecitoyen/internal/domain/citizen"
	"ecitoyen/internal/domain/revenue"
)

// RemoteCmd - команды удаленного API портала. Локальное хранилище они не меняют.
var RemoteCmd = &cobra.Command{
	Use:   "remote",
	Short: "Удаленный API портала",
	Long:  `Граждане, платежи и статистика на сервере e-Citoyen (API_BASE_URL).`,
}

const requestTimeout = 30 * time.Second

func withTimeout(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), requestTimeout)
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("неверный id: %s", s)
	}
	return id, nil
}

var PingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Проверить соединение",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		ctx, cancel := withTimeout(cmd)
		defer cancel()

		if !app.API.TestConnection(ctx) {
			return fmt.Errorf("сервер недоступен: %s", app.API.BaseURL())
		}
		types.Success("Connexion établie: %s", app.API.BaseURL())
		return nil
	},
}

var CitizensCmd = &cobra.Command{
	Use:   "citizens [id]",
	Short: "Граждане на сервере",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		ctx, cancel := withTimeout(cmd)
		defer cancel()

		var list []citizen.Citizen
		if len(args) == 1 {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			c, err := app.API.GetCitizen(ctx, id)
			if err != nil {
				return err
			}
			list = []citizen.Citizen{c}
		} else if list, err = app.API.GetCitizens(ctx); err != nil {
			return err
		}

		if types.WantJSON(cmd) {
			return types.PrintJSON(list)
		}
		w := types.NewTable()
		fmt.Fprintln(w, "ID\tNOM\tEMAIL\tTÉLÉPHONE\tINSCRIT")
		for _, c := range list {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", c.ID, c.Name, c.Email, c.Phone, humanize.Time(c.CreatedAt))
		}
		return w.Flush()
	},
}

var newCitizen citizen.CreateRequest

var CreateCitizenCmd = &cobra.Command{
	Use:   "create-citizen",
	Short: "Создать гражданина на сервере",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		ctx, cancel := withTimeout(cmd)
		defer cancel()

		c, err := app.API.CreateCitizen(ctx, newCitizen)
		if err != nil {
			return err
		}
		types.Success("Citoyen créé: %d", c.ID)
		return nil
	},
}

var (
	updName    string
	updEmail   string
	updPhone   string
	updAddress string
)

var UpdateCitizenCmd = &cobra.Command{
	Use:   "update-citizen <id>",
	Short: "Изменить гражданина на сервере",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		var req citizen.UpdateRequest
		flags := cmd.Flags()
		if flags.Changed("name") {
			req.Name = &updName
		}
		if flags.Changed("email") {
			req.Email = &updEmail
		}
		if flags.Changed("phone") {
			req.Phone = &updPhone
		}
		if flags.Changed("address") {
			req.Address = &updAddress
		}

		ctx, cancel := withTimeout(cmd)
		defer cancel()

		c, err := app.API.UpdateCitizen(ctx, id, req)
		if err != nil {
			return err
		}
		types.Success("Citoyen %d mis à jour", c.ID)
		return nil
	},
}

var DeleteCitizenCmd = &cobra.Command{
	Use:   "delete-citizen <id>",
	Short: "Удалить гражданина на сервере",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		ctx, cancel := withTimeout(cmd)
		defer cancel()

		if err := app.API.DeleteCitizen(ctx, id); err != nil {
			return err
		}
		types.Success("Citoyen %d supprimé", id)
		return nil
	},
}

var PaymentsCmd = &cobra.Command{
	Use:   "payments [id]",
	Short: "Платежи на сервере",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		ctx, cancel := withTimeout(cmd)
		defer cancel()

		var list []revenue.Payment
		if len(args) == 1 {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			p, err := app.API.GetPayment(ctx, id)
			if err != nil {
				return err
			}
			list = []revenue.Payment{p}
		} else if list, err = app.API.GetPayments(ctx); err != nil {
			return err
		}

		if types.WantJSON(cmd) {
			return types.PrintJSON(list)
		}
		w := types.NewTable()
		fmt.Fprintln(w, "ID\tCITOYEN\tTYPE\tMONTANT\tSTATUT\tDATE")
		for _, p := range list {
			fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%s\t%s\n",
				p.ID, p.CitizenID, p.Type, humanize.FormatFloat("# ###,##", p.Amount), types.Status(p.Status, p.Status), humanize.Time(p.CreatedAt))
		}
		return w.Flush()
	},
}

var newPayment revenue.CreatePaymentRequest

var CreatePaymentCmd = &cobra.Command{
	Use:   "create-payment",
	Short: "Создать платеж на сервере",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		ctx, cancel := withTimeout(cmd)
		defer cancel()

		p, err := app.API.CreatePayment(ctx, newPayment)
		if err != nil {
			return err
		}
		types.Success("Paiement créé: %d", p.ID)
		return nil
	},
}

var TypesCmd = &cobra.Command{
	Use:   "payment-types",
	Short: "Виды платежей на сервере",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		ctx, cancel := withTimeout(cmd)
		defer cancel()

		list, err := app.API.GetPaymentTypes(ctx)
		if err != nil {
			return err
		}
		if types.WantJSON(cmd) {
			return types.PrintJSON(list)
		}
		w := types.NewTable()
		fmt.Fprintln(w, "ID\tNOM\tMONTANT\tDESCRIPTION")
		for _, t := range list {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", t.ID, t.Name, humanize.FormatFloat("# ###,##", t.Amount), t.Description)
		}
		return w.Flush()
	},
}

var StatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Статистика платежей и сводка",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		ctx, cancel := withTimeout(cmd)
		defer cancel()

		ps, err := app.API.GetPaymentStats(ctx)
		if err != nil {
			return err
		}
		ds, err := app.API.GetDashboardStats(ctx)
		if err != nil {
			return err
		}
		if types.WantJSON(cmd) {
			return types.PrintJSON(map[string]any{"payments": ps, "dashboard": ds})
		}

		fmt.Printf("Citoyens:   %s\n", humanize.Comma(int64(ds.TotalCitizens)))
		fmt.Printf("Paiements:  %s\n", humanize.Comma(int64(ds.TotalPayments)))
		fmt.Printf("Recettes:   %s FC\n", humanize.FormatFloat("# ###,##", ds.TotalRevenue))
		fmt.Printf("Documents:  %d\n\n", ds.TotalDocuments)

		w := types.NewTable()
		fmt.Fprintln(w, "MOIS\tPAIEMENTS\tMONTANT")
		for _, m := range ds.MonthlyData {
			fmt.Fprintf(w, "%s\t%d\t%s\n", m.Month, m.Count, humanize.FormatFloat("# ###,##", m.Amount))
		}
		return w.Flush()
	},
}

func init() {
	f := CreateCitizenCmd.Flags()
	f.StringVar(&newCitizen.Name, "name", "", "имя")
	f.StringVar(&newCitizen.Email, "email", "", "email")
	f.StringVar(&newCitizen.Phone, "phone", "", "телефон")
	f.StringVar(&newCitizen.Address, "address", "", "адрес")
	_ = CreateCitizenCmd.MarkFlagRequired("name")
	_ = CreateCitizenCmd.MarkFlagRequired("email")

	u := UpdateCitizenCmd.Flags()
	u.StringVar(&updName, "name", "", "имя")
	u.StringVar(&updEmail, "email", "", "email")
	u.StringVar(&updPhone, "phone", "", "телефон")
	u.StringVar(&updAddress, "address", "", "адрес")

	p := CreatePaymentCmd.Flags()
	p.Int64Var(&newPayment.CitizenID, "citizen", 0, "id гражданина")
	p.StringVar(&newPayment.Type, "type", "", "вид платежа")
	p.Float64Var(&newPayment.Amount, "amount", 0, "сумма")
	p.StringVar(&newPayment.Status, "status", "", "pending, completed, failed")
	_ = CreatePaymentCmd.MarkFlagRequired("citizen")
	_ = CreatePaymentCmd.MarkFlagRequired("type")
	_ = CreatePaymentCmd.MarkFlagRequired("amount")
}
