package demand

import "strings"

// Document - документ, который можно заказать через портал.
type Document struct {
	Name  string `json:"name"`
	Price string `json:"price"`
	Delay string `json:"delay"`
}

var documents = []Document{
	{Name: "Acte de naissance", Price: "10$", Delay: "3-5 jours"},
	{Name: "Acte de mariage", Price: "15$", Delay: "5-7 jours"},
	{Name: "Certificat de résidence", Price: "5$", Delay: "1-2 jours"},
}

// ExpectedDelayDays - срок готовности, который обещается при заказе.
const ExpectedDelayDays = 7

func Documents() []Document {
	out := make([]Document, len(documents))
	copy(out, documents)
	return out
}

// FindDocument ищет документ по названию без учета регистра.
func FindDocument(name string) (Document, bool) {
	for _, d := range documents {
		if strings.EqualFold(d.Name, strings.TrimSpace(name)) {
			return d, true
		}
	}
	return Document{}, false
}
