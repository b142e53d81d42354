package demand

import (
	"github.com/spf13/cobra"
)

// DemandCmd - родительская команда для заявок на документы
var DemandCmd = &cobra.Command{
	Use:     "demand",
	Aliases: []string{"demande", "demands"},
	Short:   "Заявки на документы",
	Long:    `Заказ документов (с оплатой), список заявок и отмена.`,
}
