// Package ref генерирует идентификаторы и номера квитанций портала.
package ref

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const suffixLen = 6

// Millis - метка времени в миллисекундах (Unix).
func Millis(t time.Time) string {
	return strconv.FormatInt(t.UnixMilli(), 10)
}

// DemandID - идентификатор заявки на документ: RDC-<ms>.
func DemandID(t time.Time) string {
	return "RDC-" + Millis(t)
}

// DemandReference - номер квитанции заявки: RDC-<последние 8 цифр ms>.
func DemandReference(t time.Time) string {
	return "RDC-" + last(Millis(t), 8)
}

// PaymentID - идентификатор оплаты, созданной вместе с заявкой.
func PaymentID(t time.Time) string {
	return "PAY-" + Millis(t)
}

// TransactionID - идентификатор отдельного платежа: TXN-<ms>-<SUFFIX>.
func TransactionID(t time.Time) string {
	return "TXN-" + Millis(t) + "-" + Suffix()
}

// AppointmentID - идентификатор записи на прием: RDV-<ms>-<SUFFIX>.
func AppointmentID(t time.Time) string {
	return "RDV-" + Millis(t) + "-" + Suffix()
}

// UserID - идентификатор пользователя: <role>-<ms>.
func UserID(role string, t time.Time) string {
	return role + "-" + Millis(t)
}

// ServiceReference - внешняя ссылка платежа: <PREFIX>-<последние 6 цифр ms>.
func ServiceReference(prefix string, t time.Time) string {
	return strings.ToUpper(prefix) + "-" + last(Millis(t), 6)
}

// Suffix возвращает 6 случайных символов [0-9A-F].
func Suffix() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(raw[:suffixLen])
}

func last(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
