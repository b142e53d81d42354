package appointment

import (
	"slices"
	"time"

	"ecitoyen/internal/utils/clock"
)

// Department - отдел мэрии и его услуги.
type Department struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Services []string `json:"services"`
}

var departments = []Department{
	{ID: "etat-civil", Name: "État Civil", Services: []string{
		"Demande d'acte de naissance", "Demande d'acte de mariage", "Demande d'acte de décès",
		"Déclaration de naissance", "Déclaration de mariage", "Certificat de résidence",
	}},
	{ID: "urbanisme", Name: "Urbanisme & Construction", Services: []string{
		"Demande de permis de construire", "Certificat d'urbanisme", "Déclaration de travaux",
		"Consultation du PLU", "Demande de raccordement", "Contrôle de conformité",
	}},
	{ID: "finances", Name: "Finances & Taxes", Services: []string{
		"Questions sur taxes foncières", "Problème de paiement", "Demande d'échelonnement",
		"Réclamation fiscale", "Mise à jour cadastrale", "Évaluation immobilière",
	}},
	{ID: "social", Name: "Services Sociaux", Services: []string{
		"Aide sociale", "Logement social", "Insertion professionnelle",
		"Aide aux familles", "Services aux personnes âgées", "Handicap et accessibilité",
	}},
	{ID: "commerce", Name: "Commerce & Entreprises", Services: []string{
		"Création d'entreprise", "Licence commerciale", "Occupation du domaine public",
		"Marché et foires", "Publicité et enseignes", "Contrôle sanitaire",
	}},
	{ID: "maire", Name: "Cabinet du Maire", Services: []string{
		"Audience avec le Maire", "Réclamation administrative", "Projet de développement",
		"Partenariat public-privé", "Événement communautaire", "Médiation administrative",
	}},
}

var timeSlots = []string{
	"08:00", "08:30", "09:00", "09:30", "10:00", "10:30",
	"11:00", "11:30", "14:00", "14:30", "15:00", "15:30",
	"16:00", "16:30", "17:00",
}

// bookingDays - сколько рабочих дней вперед открыта запись.
const bookingDays = 15

func Departments() []Department {
	return slices.Clone(departments)
}

func TimeSlots() []string {
	return slices.Clone(timeSlots)
}

// IsKnownService сообщает, предлагает ли какой-либо отдел эту услугу.
func IsKnownService(service string) bool {
	for _, d := range departments {
		if slices.Contains(d.Services, service) {
			return true
		}
	}
	return false
}

func IsTimeSlot(hm string) bool {
	return slices.Contains(timeSlots, hm)
}

// AvailableDates возвращает следующие 15 рабочих дней, начиная с завтрашнего.
func AvailableDates(now time.Time) []string {
	dates := make([]string, 0, bookingDays)
	current := now.AddDate(0, 0, 1)
	for len(dates) < bookingDays {
		if wd := current.Weekday(); wd != time.Saturday && wd != time.Sunday {
			dates = append(dates, clock.Day(current))
		}
		current = current.AddDate(0, 0, 1)
	}
	return dates
}
