package payment

import (
	"fmt"
	"strings"

	"ecitoyen/internal/utils/clock"
)

const receiptIssuer = "Administration Communale - RDC"

// Receipt формирует текст квитанции об оплате.
func Receipt(p Payment) string {
	var b strings.Builder

	b.WriteString("REÇU DE PAIEMENT\n")
	b.WriteString(receiptIssuer + "\n\n")
	fmt.Fprintf(&b, "Référence: %s\n", p.ID)
	fmt.Fprintf(&b, "Type: %s\n", p.Type)
	fmt.Fprintf(&b, "Montant: %s FC\n", FormatAmount(p.Value()))
	fmt.Fprintf(&b, "Date: %s\n", formatReceiptDate(p.Date))
	fmt.Fprintf(&b, "Méthode: %s\n", p.Method)
	fmt.Fprintf(&b, "Statut: %s\n", p.Status.DisplayName())
	if p.Reference != "" {
		fmt.Fprintf(&b, "Référence externe: %s\n", p.Reference)
	}
	b.WriteString("\nMerci pour votre paiement.\n")

	return b.String()
}

// ReceiptFileName - имя файла квитанции.
func ReceiptFileName(p Payment) string {
	return "recu_" + p.ID + ".txt"
}

func formatReceiptDate(s string) string {
	t, ok := clock.ParseDate(s)
	if !ok {
		return s
	}
	return t.Local().Format("02/01/2006 15:04")
}
