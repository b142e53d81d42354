package demand

import (
	"fmt"

	"github.com/spf13/cobra"

	"ecitoyen/cmd/client/cmd/types"
	"ecitoyen/internal/app/client"
	"ecitoyen/internal/domain/demand"
)

var requestMethod string

var RequestCmd = &cobra.Command{
	Use:   "request <document>",
	Short: "Заказать документ",
	Long: `Создает заявку и ее оплату одной транзакцией.
Доступные документы: "Acte de naissance", "Acte de mariage", "Certificat de résidence".`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		fmt.Println("Traitement du paiement...")
		got, err := app.RequestDocument(cmd.Context(), client.DocumentRequest{
			Document: args[0],
			Method:   requestMethod,
		})
		if err != nil {
			return err
		}

		if types.WantJSON(cmd) {
			return types.PrintJSON(got)
		}
		if !got.Committed {
			types.Warning("la demande n'a pas pu être enregistrée sur le disque")
		}
		types.Success("Demande créée avec succès !")
		fmt.Printf("Référence:     %s\n", got.Demand.Reference)
		fmt.Printf("Document:      %s (%s)\n", got.Demand.Type, got.Demand.Price)
		fmt.Printf("Date prévue:   %s\n", got.Demand.ExpectedDate)
		fmt.Printf("Paiement:      %s via %s\n", got.Payment.ID, got.Payment.Method)
		return nil
	},
}

var DocumentsCmd = &cobra.Command{
	Use:   "documents",
	Short: "Каталог документов",
	RunE: func(cmd *cobra.Command, _ []string) error {
		docs := demand.Documents()
		if types.WantJSON(cmd) {
			return types.PrintJSON(docs)
		}

		w := types.NewTable()
		fmt.Fprintln(w, "DOCUMENT\tPRIX\tDÉLAI")
		for _, d := range docs {
			fmt.Fprintf(w, "%s\t%s\t%s\n", d.Name, d.Price, d.Delay)
		}
		return w.Flush()
	},
}

func init() {
	RequestCmd.Flags().StringVarP(&requestMethod, "method", "m", "card", "способ оплаты: card, mobile, bank, cash")
}
