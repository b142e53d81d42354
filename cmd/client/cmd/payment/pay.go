package payment

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"ecitoyen/cmd/client/cmd/types"
	"ecitoyen/internal/app/client"
	"ecitoyen/internal/domain/payment"
)

var (
	payAmount    string
	payMethod    string
	payReference string
)

var PayCmd = &cobra.Command{
	Use:   "pay <tax-type>",
	Short: "Оплатить сбор",
	Long: `Оплачивает сбор из каталога (fonciere, permis, commerce, amende,
voirie, marche) или произвольный платеж. Без --amount берется базовая сумма сбора.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		fmt.Println("Traitement du paiement...")
		p, err := app.Pay(cmd.Context(), client.PaymentRequest{
			TaxType:   args[0],
			Amount:    payAmount,
			Method:    payMethod,
			Reference: payReference,
		})
		if err != nil {
			return err
		}

		if types.WantJSON(cmd) {
			return types.PrintJSON(p)
		}
		types.Success("Paiement effectué: %s FC", payment.FormatAmount(p.Value()))
		fmt.Printf("Transaction: %s\n", p.ID)
		return nil
	},
}

var TaxesCmd = &cobra.Command{
	Use:   "taxes",
	Short: "Каталог сборов",
	RunE: func(cmd *cobra.Command, _ []string) error {
		taxes := payment.TaxTypes()
		if types.WantJSON(cmd) {
			return types.PrintJSON(taxes)
		}

		w := types.NewTable()
		fmt.Fprintln(w, "CODE\tTAXE\tMONTANT DE BASE\tDESCRIPTION")
		for _, t := range taxes {
			fmt.Fprintf(w, "%s\t%s\t%s FC\t%s\n", t.ID, t.Name, payment.FormatAmount(decimal.NewFromInt(t.BaseAmount)), t.Description)
		}
		return w.Flush()
	},
}

func init() {
	PayCmd.Flags().StringVarP(&payAmount, "amount", "a", "", "сумма в FC")
	PayCmd.Flags().StringVarP(&payMethod, "method", "m", "card", "способ оплаты: card, mobile, bank, cash")
	PayCmd.Flags().StringVarP(&payReference, "reference", "r", "", "номер декларации, парцеллы и т.п.")
}
