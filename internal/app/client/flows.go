package client

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"ecitoyen/internal/domain/appointment"
	"ecitoyen/internal/domain/demand"
	"ecitoyen/internal/domain/notification"
	"ecitoyen/internal/domain/payment"
	"ecitoyen/internal/utils/clock"
	"ecitoyen/internal/utils/ref"
)

var (
	ErrUnknownDocument = errors.New("unknown document")
	ErrNotFound        = errors.New("record not found")
)

const (
	overviewUpcoming = 3
	overviewRecent   = 5
)

// processing - пауза, имитирующая обработку. Не отменяется и не падает.
func (a *App) processing() {
	if d := a.config.ProcessingDelay(); d > 0 {
		a.pause(d)
	}
}

// notify добавляет уведомление; ошибка журнала не прерывает операцию.
func (a *App) notify(in notification.Input) {
	if _, err := a.Notifications.Add(in); err != nil {
		a.log.Warn("notification was not added", "title", in.Title, "error", err)
	}
}

type DocumentRequest struct {
	Document string
	Method   string
}

type DocumentReceipt struct {
	Demand    demand.Demand
	Payment   payment.Payment
	Committed bool
}

// RequestDocument создает заявку на документ и ее оплату. Обе записи
// пишутся одним пакетом и разделяют один reference.
func (a *App) RequestDocument(ctx context.Context, req DocumentRequest) (DocumentReceipt, error) {
	doc, ok := demand.FindDocument(req.Document)
	if !ok {
		return DocumentReceipt{}, fmt.Errorf("%w: %s", ErrUnknownDocument, req.Document)
	}

	a.processing()

	now := a.clock.Now()
	reference := ref.DemandReference(now)

	batch := a.store.NewBatch()
	d, err := a.Demands.Stage(batch, demand.Demand{
		ID:           ref.DemandID(now),
		Type:         doc.Name,
		Date:         clock.FrenchDay(now),
		Status:       demand.StatusPending,
		Reference:    reference,
		Price:        doc.Price,
		ExpectedDate: clock.FrenchDay(now.AddDate(0, 0, demand.ExpectedDelayDays)),
	})
	if err != nil {
		return DocumentReceipt{}, err
	}
	p, err := a.Payments.Stage(batch, payment.Payment{
		ID:        ref.PaymentID(now),
		Type:      doc.Name,
		Amount:    doc.Price,
		Date:      clock.FrenchDay(now),
		Status:    payment.StatusCompleted,
		Method:    payment.ResolveMethod(req.Method),
		Reference: reference,
	})
	if err != nil {
		return DocumentReceipt{}, err
	}

	committed := batch.Commit()
	if !committed {
		a.log.Error("document request was not fully persisted", "demand", d.ID, "payment", p.ID)
	}

	a.notify(notification.Input{
		Type:        notification.TypeSuccess,
		Category:    notification.CategoryDemand,
		Title:       "Demande créée",
		Message:     fmt.Sprintf("Votre demande de %s (%s) a été enregistrée.", d.Type, d.Reference),
		ActionURL:   "/citizen/demands",
		ActionLabel: "Voir mes demandes",
	})

	return DocumentReceipt{Demand: d, Payment: p, Committed: committed}, nil
}

type PaymentRequest struct {
	// TaxType - id или название сбора из каталога; иначе используется как есть.
	TaxType   string
	Amount    string
	Method    string
	Reference string
}

// Pay регистрирует оплату сбора.
func (a *App) Pay(ctx context.Context, req PaymentRequest) (payment.Payment, error) {
	typeName := strings.TrimSpace(req.TaxType)
	amount := strings.TrimSpace(req.Amount)
	if tax, ok := payment.FindTaxType(typeName); ok {
		typeName = tax.Name
		if amount == "" {
			amount = fmt.Sprint(tax.BaseAmount)
		}
	}
	if typeName == "" {
		typeName = "Paiement"
	}
	if _, err := payment.ValidateAmount(amount); err != nil {
		return payment.Payment{}, fmt.Errorf("%w: %q", err, amount)
	}

	a.processing()

	now := a.clock.Now()
	p, err := a.Payments.Create(payment.Payment{
		ID:        ref.TransactionID(now),
		Type:      typeName,
		Amount:    amount,
		Date:      clock.Stamp(now),
		Status:    payment.StatusCompleted,
		Method:    payment.ResolveMethod(req.Method),
		Reference: strings.TrimSpace(req.Reference),
	})
	if err != nil {
		return payment.Payment{}, err
	}

	a.notify(notification.Input{
		Type:        notification.TypeSuccess,
		Category:    notification.CategoryPayment,
		Title:       "Paiement effectué",
		Message:     fmt.Sprintf("Paiement de %s FC pour %s confirmé (%s).", payment.FormatAmount(p.Value()), p.Type, p.ID),
		ActionURL:   "/citizen/payments",
		ActionLabel: "Voir le reçu",
	})

	return p, nil
}

type AppointmentRequest struct {
	Service string
	Date    string
	Time    string
	Reason  string
	Contact string
}

// BookAppointment записывает гражданина на прием.
func (a *App) BookAppointment(ctx context.Context, req AppointmentRequest) (appointment.Appointment, error) {
	if !appointment.IsTimeSlot(req.Time) {
		return appointment.Appointment{}, fmt.Errorf("%w: %s", appointment.ErrInvalidSlot, req.Time)
	}

	a.processing()

	now := a.clock.Now()
	booked, err := a.Appointments.Book(appointment.Appointment{
		ID:      ref.AppointmentID(now),
		Service: req.Service,
		Date:    req.Date,
		Time:    req.Time,
		Status:  appointment.StatusConfirmed,
		Reason:  strings.TrimSpace(req.Reason),
		Contact: strings.TrimSpace(req.Contact),
	})
	if err != nil {
		return appointment.Appointment{}, err
	}

	a.notify(notification.Input{
		Type:        notification.TypeSuccess,
		Category:    notification.CategoryAppointment,
		Title:       "Rendez-vous confirmé",
		Message:     fmt.Sprintf("%s le %s à %s.", booked.Service, booked.Date, booked.Time),
		ActionURL:   "/citizen/appointments",
		ActionLabel: "Voir mes rendez-vous",
	})

	return booked, nil
}

// CancelAppointment переводит прием в статус cancelled.
func (a *App) CancelAppointment(ctx context.Context, id string) error {
	if !a.Appointments.Cancel(id) {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	a.notify(notification.Input{
		Type:     notification.TypeInfo,
		Category: notification.CategoryAppointment,
		Title:    "Rendez-vous annulé",
		Message:  fmt.Sprintf("Le rendez-vous %s a été annulé.", id),
	})
	return nil
}

// CancelDemand переводит заявку в статус cancelled.
func (a *App) CancelDemand(ctx context.Context, id string) error {
	if !a.Demands.Cancel(id) {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	a.notify(notification.Input{
		Type:     notification.TypeInfo,
		Category: notification.CategoryDemand,
		Title:    "Demande annulée",
		Message:  fmt.Sprintf("La demande %s a été annulée.", id),
	})
	return nil
}

// Overview - данные вкладки "Vue d'ensemble".
type Overview struct {
	TotalSpent           string                    `json:"totalSpent"`
	PendingDemands       int                       `json:"pendingDemands"`
	CompletedDemands     int                       `json:"completedDemands"`
	UpcomingAppointments int                       `json:"upcomingAppointments"`
	UnreadNotifications  int                       `json:"unreadNotifications"`
	NextAppointments     []appointment.Appointment `json:"nextAppointments"`
	RecentDemands        []demand.Demand           `json:"recentDemands"`
	RecentPayments       []payment.Payment         `json:"recentPayments"`
}

func (a *App) Overview(now time.Time) Overview {
	ds := a.Demands.Stats()
	ps := a.Payments.Stats()
	as := a.Appointments.Stats(now)

	return Overview{
		TotalSpent:           payment.FormatAmount(ps.PaidAmount),
		PendingDemands:       ds.Pending,
		CompletedDemands:     ds.Completed,
		UpcomingAppointments: as.Upcoming,
		UnreadNotifications:  a.Notifications.UnreadCount(),
		NextAppointments:     a.Appointments.Next(now, overviewUpcoming),
		RecentDemands:        a.Demands.Recent(overviewRecent),
		RecentPayments:       a.Payments.Recent(overviewRecent),
	}
}

// Orphan - заявка, для которой не нашлось платежа с тем же reference.
type Orphan struct {
	Demand demand.Demand `json:"demand"`
}

// Reconcile ищет заявки на документы без оплаты (незавершенная запись двух
// ключей). С repair=true по каждой добавляется системное предупреждение.
// Записи никогда не удаляются.
func (a *App) Reconcile(repair bool) []Orphan {
	var orphans []Orphan
	for _, d := range a.Demands.List() {
		if d.Reference == "" || d.Price == "" {
			continue
		}
		if len(a.Payments.FindByReference(d.Reference)) == 0 {
			orphans = append(orphans, Orphan{Demand: d})
		}
	}

	if repair {
		for _, o := range orphans {
			a.notify(notification.Input{
				Type:     notification.TypeWarning,
				Category: notification.CategorySystem,
				Title:    "Paiement introuvable",
				Message:  fmt.Sprintf("Aucun paiement n'a été trouvé pour la demande %s (%s).", o.Demand.ID, o.Demand.Reference),
			})
		}
	}

	if len(orphans) > 0 {
		a.log.Warn("demands without payment found", "count", len(orphans), "repair", repair)
	}
	return orphans
}
