package payment

import "strings"

// TaxType - вид муниципального сбора с базовой суммой в FC.
type TaxType struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	BaseAmount  int64  `json:"baseAmount"`
}

var taxTypes = []TaxType{
	{ID: "fonciere", Name: "Taxe Foncière", Description: "Taxe sur les biens immobiliers", BaseAmount: 15000},
	{ID: "permis", Name: "Permis de Construire", Description: "Frais de permis de construction", BaseAmount: 25000},
	{ID: "commerce", Name: "Patente Commerciale", Description: "Licence pour activité commerciale", BaseAmount: 30000},
	{ID: "amende", Name: "Amendes", Description: "Contraventions et amendes diverses", BaseAmount: 5000},
	{ID: "voirie", Name: "Taxe de Voirie", Description: "Entretien des routes et infrastructures", BaseAmount: 8000},
	{ID: "marche", Name: "Droit de Marché", Description: "Occupation d'emplacement au marché", BaseAmount: 3000},
}

func TaxTypes() []TaxType {
	out := make([]TaxType, len(taxTypes))
	copy(out, taxTypes)
	return out
}

// FindTaxType ищет сбор по id или названию без учета регистра.
func FindTaxType(key string) (TaxType, bool) {
	for _, t := range taxTypes {
		if strings.EqualFold(t.ID, key) || strings.EqualFold(t.Name, key) {
			return t, true
		}
	}
	return TaxType{}, false
}

var methodAliases = map[string]string{
	"card":   MethodCard,
	"mobile": MethodMobile,
	"bank":   MethodTransfer,
	"cash":   MethodCash,
}

// ResolveMethod переводит короткий код способа оплаты (card, mobile, bank, cash)
// в название; неизвестный код дает Carte Bancaire.
func ResolveMethod(code string) string {
	if name, ok := methodAliases[strings.ToLower(code)]; ok {
		return name
	}
	for _, m := range Methods() {
		if strings.EqualFold(m, code) {
			return m
		}
	}
	return MethodCard
}
