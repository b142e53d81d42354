package appointment

import (
	"github.com/spf13/cobra"
)

// AppointmentCmd - родительская команда для записи на прием
var AppointmentCmd = &cobra.Command{
	Use:     "appointment",
	Aliases: []string{"rdv", "appointments"},
	Short:   "Запись на прием",
	Long:    `Запись в муниципальные службы, список приемов, перенос и отмена.`,
}
