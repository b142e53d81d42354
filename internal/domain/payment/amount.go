package payment

import (
	"regexp"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// Ведущая числовая часть строки: "10$" -> "10", "1.5e3 FC" -> "1.5e3".
var leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// ParseAmount разбирает сумму так же снисходительно, как ее разбирал портал:
// берется ведущее число, остальное игнорируется. Строка без числа дает 0.
func ParseAmount(s string) decimal.Decimal {
	m := leadingNumber.FindString(strings.TrimSpace(s))
	if m == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(m)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ValidateAmount проверяет сумму, введенную пользователем: должна начинаться
// с положительного числа ("15000", "10$").
func ValidateAmount(s string) (decimal.Decimal, error) {
	if leadingNumber.FindString(strings.TrimSpace(s)) == "" {
		return decimal.Zero, ErrInvalidAmount
	}
	d := ParseAmount(s)
	if !d.IsPositive() {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}

// ThousandsSep - разделитель разрядов fr-FR (узкий неразрывный пробел U+202F).
const ThousandsSep = "\u202f"

var (
	integerFormat = "#" + ThousandsSep + "###."
	decimalFormat = "#" + ThousandsSep + "###,##"
)

// FormatAmount форматирует сумму во французском стиле ("15 000", "1 234,5"),
// разряды разделяются ThousandsSep.
func FormatAmount(d decimal.Decimal) string {
	f, _ := d.Float64()
	if d.Equal(d.Truncate(0)) {
		return humanize.FormatFloat(integerFormat, f)
	}
	return strings.TrimRight(strings.TrimRight(humanize.FormatFloat(decimalFormat, f), "0"), ",")
}

// Sum складывает суммы платежей.
func Sum(items []Payment) decimal.Decimal {
	total := decimal.Zero
	for _, p := range items {
		total = total.Add(p.Value())
	}
	return total
}
