package payment

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecitoyen/internal/domain/view"
	"ecitoyen/internal/infrastructure/storage/memory"
	"ecitoyen/internal/storage/kv"
	"ecitoyen/internal/utils/logger"
)

func newService(t *testing.T) (*Service, *kv.Store) {
	t.Helper()
	store := kv.New(memory.New(), logger.Discard())
	return NewService(NewRepository(store), logger.Discard()), store
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "15000", want: "15000"},
		{in: "10$", want: "10"},
		{in: " 12.5 FC", want: "12.5"},
		{in: "1.5e3", want: "1500"},
		{in: ".5", want: "0.5"},
		{in: "-3", want: "-3"},
		{in: "abc", want: "0"},
		{in: "", want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.True(t, decimal.RequireFromString(tt.want).Equal(ParseAmount(tt.in)), "got %s", ParseAmount(tt.in))
		})
	}
}

func TestValidateAmount(t *testing.T) {
	_, err := ValidateAmount("10$")
	assert.NoError(t, err)

	for _, bad := range []string{"", "gratuit", "0", "-5"} {
		_, err := ValidateAmount(bad)
		assert.ErrorIs(t, err, ErrInvalidAmount, bad)
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "15"+ThousandsSep+"000", FormatAmount(decimal.NewFromInt(15000)))
	assert.Equal(t, "1"+ThousandsSep+"234,5", FormatAmount(decimal.RequireFromString("1234.5")))
	assert.Equal(t, "1"+ThousandsSep+"250"+ThousandsSep+"000", FormatAmount(decimal.NewFromInt(1250000)))
	assert.Equal(t, "5", FormatAmount(decimal.NewFromInt(5)))

	// байты U+202F, а не обычный пробел
	assert.Equal(t, []byte{'1', '5', 0xe2, 0x80, 0xaf, '0', '0', '0'}, []byte(FormatAmount(decimal.NewFromInt(15000))))
}

func TestService_RoundTripKeepsStringAmount(t *testing.T) {
	svc, store := newService(t)

	p := Payment{
		ID:        "TXN-1-ABC123",
		Type:      "Taxe Foncière",
		Amount:    "15000.50",
		Date:      "2025-01-15T10:00:00.000Z",
		Status:    StatusCompleted,
		Method:    MethodMobile,
		Reference: "FONCIERE-200123",
	}
	_, err := svc.Create(p)
	require.NoError(t, err)

	raw, _ := store.Raw(kv.KeyPayments)
	assert.Contains(t, string(raw), `"amount":"15000.50"`)

	var decoded []Payment
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, []Payment{p}, decoded)
}

func TestService_Create(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Create(Payment{ID: "P1", Type: "Amendes", Amount: "abc"})
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = svc.Create(Payment{ID: "P1", Type: "Amendes", Amount: "5000", Status: "lost"})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	got, err := svc.Create(Payment{ID: "P1", Type: "Amendes", Amount: "5000"})
	require.NoError(t, err)
	assert.Equal(t, StatusPending, got.Status)

	_, err = svc.Create(Payment{ID: "P1", Type: "Amendes", Amount: "5000"})
	assert.ErrorIs(t, err, ErrDuplicateID)
}

func TestService_Update(t *testing.T) {
	svc, _ := newService(t)
	_, _ = svc.Create(Payment{ID: "P1", Type: "Amendes", Amount: "5000"})
	before := svc.List()

	found, err := svc.SetStatus("unknown", StatusRefunded)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, before, svc.List())

	found, err = svc.SetStatus("P1", StatusFailed)
	require.NoError(t, err)
	assert.True(t, found)
	once := svc.List()
	_, _ = svc.SetStatus("P1", StatusFailed)
	assert.Equal(t, once, svc.List())

	bad := "rien"
	_, err = svc.Update("P1", Patch{Amount: &bad})
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestCompute(t *testing.T) {
	items := []Payment{
		{ID: "1", Amount: "10$", Status: StatusCompleted},
		{ID: "2", Amount: "15000", Status: StatusCompleted},
		{ID: "3", Amount: "500", Status: StatusPending},
		{ID: "4", Amount: "250.25", Status: StatusProcessing},
		{ID: "5", Amount: "100", Status: StatusFailed},
		{ID: "6", Amount: "n/a", Status: StatusRefunded},
	}

	st := Compute(items)
	assert.Equal(t, 6, st.Total)
	assert.Equal(t, "15860.25", st.TotalAmount.String())
	assert.Equal(t, 2, st.Paid)
	assert.Equal(t, "15010", st.PaidAmount.String())
	assert.Equal(t, 2, st.Pending)
	assert.Equal(t, "750.25", st.PendingAmount.String())
	assert.Equal(t, 1, st.Failed)
}

func TestView(t *testing.T) {
	items := []Payment{
		{ID: "TXN-1", Type: "Taxe Foncière", Amount: "15000", Date: "2025-01-10", Status: StatusCompleted, Method: MethodCard},
		{ID: "TXN-2", Type: "Amendes", Amount: "5000", Date: "2025-01-12", Status: StatusPending, Method: MethodMobile, Reference: "AMENDE-1"},
		{ID: "TXN-3", Type: "Droit de Marché", Amount: "3000", Date: "2025-01-11", Status: StatusCompleted, Method: MethodMobile},
	}

	ids := func(ps []Payment) []string {
		out := make([]string, 0, len(ps))
		for _, p := range ps {
			out = append(out, p.ID)
		}
		return out
	}

	assert.Equal(t, []string{"TXN-2", "TXN-3", "TXN-1"}, ids(View(items, Filter{}, Sort{})))
	assert.Equal(t, []string{"TXN-3", "TXN-2", "TXN-1"}, ids(View(items, Filter{}, Sort{By: SortByAmount, Order: view.Asc})))
	assert.Equal(t, []string{"TXN-2", "TXN-3"}, ids(View(items, Filter{Method: MethodMobile}, DefaultSort)))
	assert.Equal(t, []string{"TXN-2"}, ids(View(items, Filter{Search: "amende-"}, DefaultSort)))
	assert.Equal(t, []string{"TXN-3", "TXN-1"}, ids(View(items, Filter{Status: StatusCompleted}, Sort{By: SortByType, Order: view.Asc})))
}

func TestReceipt(t *testing.T) {
	p := Payment{
		ID:        "TXN-1",
		Type:      "Taxe Foncière",
		Amount:    "15000",
		Date:      "2025-01-15",
		Status:    StatusCompleted,
		Method:    MethodCard,
		Reference: "FONCIERE-1",
	}

	r := Receipt(p)
	assert.Contains(t, r, "REÇU DE PAIEMENT")
	assert.Contains(t, r, "Montant: 15"+ThousandsSep+"000 FC")
	assert.Contains(t, r, "Statut: Payé")
	assert.Contains(t, r, "Référence externe: FONCIERE-1")
	assert.Equal(t, "recu_TXN-1.txt", ReceiptFileName(p))

	p.Reference = ""
	assert.NotContains(t, Receipt(p), "Référence externe")
}

func TestCatalog(t *testing.T) {
	tt, ok := FindTaxType("fonciere")
	require.True(t, ok)
	assert.Equal(t, int64(15000), tt.BaseAmount)

	_, ok = FindTaxType("Droit de marché")
	assert.True(t, ok)

	assert.Equal(t, MethodMobile, ResolveMethod("mobile"))
	assert.Equal(t, MethodCash, ResolveMethod("Espèces"))
	assert.Equal(t, MethodCard, ResolveMethod("bitcoin"))
	assert.Len(t, TaxTypes(), 6)
}

func TestService_FindByReference(t *testing.T) {
	svc, _ := newService(t)
	_, _ = svc.Create(Payment{ID: "PAY-1", Type: "Acte", Amount: "10$", Reference: "RDC-1"})
	_, _ = svc.Create(Payment{ID: "PAY-2", Type: "Acte", Amount: "10$", Reference: "RDC-2"})

	got := svc.FindByReference("RDC-2")
	require.Len(t, got, 1)
	assert.Equal(t, "PAY-2", got[0].ID)
	assert.Empty(t, svc.FindByReference("RDC-3"))
}
