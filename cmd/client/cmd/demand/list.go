package demand

import (
	"fmt"

	"github.com/spf13/cobra"

	"ecitoyen/cmd/client/cmd/types"
	"ecitoyen/internal/domain/demand"
	"ecitoyen/internal/domain/view"
)

var (
	listSearch string
	listStatus string
	listSort   string
	listOrder  string
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Список заявок",
	Long:  `Вкладка "Mes demandes": поиск, фильтр по статусу и сортировка.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		f := demand.Filter{Search: listSearch, Status: demand.Status(listStatus)}
		if f.Status != "" {
			if err := f.Status.Validate(); err != nil {
				return err
			}
		}
		s := demand.Sort{By: demand.SortBy(listSort)}
		if err := s.By.Validate(); err != nil {
			return err
		}
		if s.Order, err = view.ParseOrder(listOrder, demand.DefaultSort.Order); err != nil {
			return err
		}

		items := app.Demands.View(f, s)
		if types.WantJSON(cmd) {
			return types.PrintJSON(items)
		}
		if len(items) == 0 {
			fmt.Println("Aucune demande trouvée")
			return nil
		}

		w := types.NewTable()
		fmt.Fprintln(w, "ID\tDOCUMENT\tDATE\tSTATUT\tRÉFÉRENCE")
		for _, d := range items {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", d.ID, d.Type, d.Date, types.Status(string(d.Status), d.Status.DisplayName()), d.Reference)
		}
		return w.Flush()
	},
}

var CancelCmd = &cobra.Command{
	Use:   "cancel <id>",
	Short: "Отменить заявку",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		if err := app.CancelDemand(cmd.Context(), args[0]); err != nil {
			return err
		}
		types.Success("Demande %s annulée", args[0])
		return nil
	},
}

var StatusCmd = &cobra.Command{
	Use:   "status <id> <status>",
	Short: "Изменить статус заявки",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		found, err := app.Demands.SetStatus(args[0], demand.Status(args[1]))
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("заявка не найдена: %s", args[0])
		}
		types.Success("Statut mis à jour")
		return nil
	},
}

func init() {
	ListCmd.Flags().StringVarP(&listSearch, "search", "s", "", "поиск по документу или id")
	ListCmd.Flags().StringVar(&listStatus, "status", "", "фильтр по статусу")
	ListCmd.Flags().StringVar(&listSort, "sort", string(demand.SortByDate), "сортировка: date, type, status")
	ListCmd.Flags().StringVar(&listOrder, "order", "", "порядок: asc или desc")
}
