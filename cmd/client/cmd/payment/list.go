package payment

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ecitoyen/cmd/client/cmd/types"
	"ecitoyen/internal/domain/payment"
	"ecitoyen/internal/domain/view"
)

var (
	listSearch string
	listStatus string
	listMethod string
	listSort   string
	listOrder  string
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "История платежей",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		f := payment.Filter{Search: listSearch, Status: payment.Status(listStatus), Method: listMethod}
		if f.Status != "" {
			if err := f.Status.Validate(); err != nil {
				return err
			}
		}
		if f.Method != "" {
			f.Method = payment.ResolveMethod(f.Method)
		}
		s := payment.Sort{By: payment.SortBy(listSort)}
		if err := s.By.Validate(); err != nil {
			return err
		}
		if s.Order, err = view.ParseOrder(listOrder, payment.DefaultSort.Order); err != nil {
			return err
		}

		items := app.Payments.View(f, s)
		if types.WantJSON(cmd) {
			return types.PrintJSON(items)
		}
		if len(items) == 0 {
			fmt.Println("Aucun paiement trouvé")
			return nil
		}

		w := types.NewTable()
		fmt.Fprintln(w, "ID\tTYPE\tMONTANT\tDATE\tMÉTHODE\tSTATUT")
		for _, p := range items {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				p.ID, p.Type, p.Amount, p.Date, p.Method, types.Status(string(p.Status), p.Status.DisplayName()))
		}
		return w.Flush()
	},
}

var StatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Сводка по платежам",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		st := app.Payments.Stats()
		if types.WantJSON(cmd) {
			return types.PrintJSON(st)
		}
		fmt.Printf("Total:      %d (%s FC)\n", st.Total, payment.FormatAmount(st.TotalAmount))
		fmt.Printf("Payés:      %d (%s FC)\n", st.Paid, payment.FormatAmount(st.PaidAmount))
		fmt.Printf("En attente: %d (%s FC)\n", st.Pending, payment.FormatAmount(st.PendingAmount))
		fmt.Printf("Échoués:    %d\n", st.Failed)
		return nil
	},
}

var receiptSave bool

var ReceiptCmd = &cobra.Command{
	Use:   "receipt <id>",
	Short: "Квитанция об оплате",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		p, err := app.Payments.Get(args[0])
		if err != nil {
			return err
		}

		text := payment.Receipt(p)
		if !receiptSave {
			fmt.Print(text)
			return nil
		}

		name := payment.ReceiptFileName(p)
		if err := os.WriteFile(name, []byte(text), 0600); err != nil {
			return fmt.Errorf("ошибка сохранения квитанции: %w", err)
		}
		types.Success("Reçu enregistré: %s", name)
		return nil
	},
}

func init() {
	ListCmd.Flags().StringVarP(&listSearch, "search", "s", "", "поиск по типу, id или reference")
	ListCmd.Flags().StringVar(&listStatus, "status", "", "фильтр по статусу")
	ListCmd.Flags().StringVar(&listMethod, "method", "", "фильтр по способу оплаты")
	ListCmd.Flags().StringVar(&listSort, "sort", string(payment.SortByDate), "сортировка: date, amount, type, status")
	ListCmd.Flags().StringVar(&listOrder, "order", "", "порядок: asc или desc")

	ReceiptCmd.Flags().BoolVar(&receiptSave, "save", false, "сохранить квитанцию в файл")
}
