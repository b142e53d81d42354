package payment

import (
	"github.com/spf13/cobra"
)

// PaymentCmd - родительская команда для платежей
var PaymentCmd = &cobra.Command{
	Use:     "payment",
	Aliases: []string{"paiement", "payments"},
	Short:   "Платежи",
	Long:    `Оплата муниципальных сборов, история платежей и квитанции.`,
}
