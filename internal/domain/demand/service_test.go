package demand

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ecitoyen/internal/domain/view"
	"ecitoyen/internal/infrastructure/storage/memory"
	"ecitoyen/internal/storage/kv"
	"ecitoyen/internal/utils/logger"
)

// MockRepository is a mock implementation of the Repository interface for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) All() []Demand {
	args := m.Called()
	return args.Get(0).([]Demand)
}

func (m *MockRepository) Find(id string) (Demand, bool) {
	args := m.Called(id)
	return args.Get(0).(Demand), args.Bool(1)
}

func (m *MockRepository) Append(d Demand) {
	m.Called(d)
}

func (m *MockRepository) UpdateByID(id string, fn func(Demand) Demand) bool {
	args := m.Called(id, fn)
	return args.Bool(0)
}

func (m *MockRepository) StageAppend(b *kv.Batch, d Demand) {
	m.Called(b, d)
}

func newStoreService(t *testing.T) (*Service, *kv.Store) {
	t.Helper()
	store := kv.New(memory.New(), logger.Discard())
	return NewService(NewRepository(store), logger.Discard()), store
}

func TestService_Create(t *testing.T) {
	tests := []struct {
		name    string
		input   Demand
		found   bool
		wantErr error
	}{
		{
			name:  "success defaults status",
			input: Demand{ID: "RDC-1", Type: "Acte de naissance", Date: "2025-01-15"},
		},
		{
			name:    "empty type",
			input:   Demand{ID: "RDC-1"},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "unknown status",
			input:   Demand{ID: "RDC-1", Type: "Acte", Status: "lost"},
			wantErr: ErrInvalidStatus,
		},
		{
			name:    "duplicate id",
			input:   Demand{ID: "RDC-1", Type: "Acte"},
			found:   true,
			wantErr: ErrDuplicateID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRepository)
			repo.On("Find", "RDC-1").Return(Demand{}, tt.found).Maybe()
			repo.On("Append", mock.AnythingOfType("demand.Demand")).Return().Maybe()

			svc := NewService(repo, logger.Discard())
			got, err := svc.Create(tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				repo.AssertNotCalled(t, "Append", mock.Anything)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, StatusPending, got.Status)
			repo.AssertCalled(t, "Append", got)
		})
	}
}

func TestService_RoundTrip(t *testing.T) {
	svc, store := newStoreService(t)

	d := Demand{
		ID:        "RDC-1736935200123",
		Type:      "Certificat de résidence",
		Date:      "2025-01-15T10:00:00.000Z",
		Status:    StatusProcessing,
		Documents: []string{"carte.pdf"},
		Reference: "RDC-35200123",
		Price:     "5000",
	}
	_, err := svc.Create(d)
	require.NoError(t, err)

	raw, ok := store.Raw(kv.KeyDemands)
	require.True(t, ok)

	var decoded []Demand
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, []Demand{d}, decoded)

	reopened := NewService(NewRepository(store), logger.Discard())
	assert.Equal(t, []Demand{d}, reopened.List())
}

func TestService_StoredShape(t *testing.T) {
	svc, store := newStoreService(t)
	_, err := svc.Create(Demand{ID: "D1", Type: "Acte de naissance", Date: "2025-01-15", Status: StatusPending})
	require.NoError(t, err)

	raw, _ := store.Raw(kv.KeyDemands)
	assert.JSONEq(t, `[{"id":"D1","type":"Acte de naissance","date":"2025-01-15","status":"pending"}]`, string(raw))
}

func TestService_DocumentsRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "absent", raw: `[{"id":"D1","type":"Acte","date":"2025-01-15","status":"pending"}]`},
		{name: "empty", raw: `[{"id":"D1","type":"Acte","date":"2025-01-15","status":"pending","documents":[]}]`},
		{name: "filled", raw: `[{"id":"D1","type":"Acte","date":"2025-01-15","status":"pending","documents":["carte.pdf"]}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := memory.New()
			require.NoError(t, backend.Save(kv.KeyDemands, []byte(tt.raw)))
			store := kv.New(backend, logger.Discard())
			svc := NewService(NewRepository(store), logger.Discard())

			// перезапись через обновление не должна менять форму записи
			found, err := svc.SetStatus("D1", StatusPending)
			require.NoError(t, err)
			require.True(t, found)

			raw, _ := store.Raw(kv.KeyDemands)
			assert.JSONEq(t, tt.raw, string(raw))
		})
	}
}

func TestService_DemandLifecycle(t *testing.T) {
	svc, _ := newStoreService(t)

	_, err := svc.Create(Demand{ID: "D1", Type: "Acte de naissance", Date: "2025-01-15", Status: StatusPending})
	require.NoError(t, err)

	found, err := svc.SetStatus("D1", StatusCompleted)
	require.NoError(t, err)
	assert.True(t, found)

	all := svc.List()
	require.Len(t, all, 1)
	assert.Equal(t, "D1", all[0].ID)
	assert.Equal(t, StatusCompleted, all[0].Status)
}

func TestService_Update(t *testing.T) {
	t.Run("idempotent", func(t *testing.T) {
		svc, _ := newStoreService(t)
		_, _ = svc.Create(Demand{ID: "D1", Type: "Acte", Date: "2025-01-15"})

		ref := "RDC-00000001"
		patch := Patch{Reference: &ref}
		_, _ = svc.Update("D1", patch)
		once := svc.List()
		_, _ = svc.Update("D1", patch)

		assert.Equal(t, once, svc.List())
	})

	t.Run("unknown id", func(t *testing.T) {
		svc, _ := newStoreService(t)
		_, _ = svc.Create(Demand{ID: "D1", Type: "Acte", Date: "2025-01-15"})
		before := svc.List()

		found, err := svc.SetStatus("nonexistent", StatusRejected)
		require.NoError(t, err)
		assert.False(t, found)
		assert.Equal(t, before, svc.List())
	})

	t.Run("invalid status rejected before write", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, logger.Discard())

		_, err := svc.SetStatus("D1", "archived")
		assert.ErrorIs(t, err, ErrInvalidStatus)
		repo.AssertNotCalled(t, "UpdateByID", mock.Anything, mock.Anything)
	})

	t.Run("cancel keeps record", func(t *testing.T) {
		svc, _ := newStoreService(t)
		_, _ = svc.Create(Demand{ID: "D1", Type: "Acte", Date: "2025-01-15"})

		assert.True(t, svc.Cancel("D1"))
		d, err := svc.Get("D1")
		require.NoError(t, err)
		assert.Equal(t, StatusCancelled, d.Status)
	})
}

func TestService_Get(t *testing.T) {
	svc, _ := newStoreService(t)
	_, err := svc.Get("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Stage(t *testing.T) {
	svc, store := newStoreService(t)
	b := store.NewBatch()

	_, err := svc.Stage(b, Demand{ID: "D1", Type: "Acte"})
	require.NoError(t, err)
	assert.Empty(t, svc.List())

	require.True(t, b.Commit())
	assert.Len(t, svc.List(), 1)
}

func TestView(t *testing.T) {
	items := []Demand{
		{ID: "D1", Type: "Permis de construire", Date: "2025-01-10", Status: StatusPending},
		{ID: "D2", Type: "Acte de naissance", Date: "2025-01-20", Status: StatusCompleted},
		{ID: "D3", Type: "Casier judiciaire", Date: "2025-01-15", Status: StatusPending},
	}

	ids := func(ds []Demand) []string {
		out := make([]string, 0, len(ds))
		for _, d := range ds {
			out = append(out, d.ID)
		}
		return out
	}

	tests := []struct {
		name   string
		filter Filter
		sort   Sort
		want   []string
	}{
		{name: "default newest first", want: []string{"D2", "D3", "D1"}},
		{name: "by type asc", sort: Sort{By: SortByType, Order: view.Asc}, want: []string{"D2", "D3", "D1"}},
		{name: "status filter", filter: Filter{Status: StatusPending}, want: []string{"D3", "D1"}},
		{name: "search by id", filter: Filter{Search: "d2"}, want: []string{"D2"}},
		{name: "search by type", filter: Filter{Search: "PERMIS"}, want: []string{"D1"}},
		{name: "date asc", sort: Sort{By: SortByDate, Order: view.Asc}, want: []string{"D1", "D3", "D2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(View(items, tt.filter, tt.sort)))
		})
	}

	assert.Equal(t, "D1", items[0].ID, "source slice is not reordered")
}

func TestService_Stats(t *testing.T) {
	svc, _ := newStoreService(t)
	_, _ = svc.Create(Demand{ID: "D1", Type: "A", Status: StatusPending})
	_, _ = svc.Create(Demand{ID: "D2", Type: "B", Status: StatusProcessing})
	_, _ = svc.Create(Demand{ID: "D3", Type: "C", Status: StatusCompleted})
	_, _ = svc.Create(Demand{ID: "D4", Type: "D", Status: StatusRejected})

	st := svc.Stats()
	assert.Equal(t, 4, st.Total)
	assert.Equal(t, 2, st.Pending)
	assert.Equal(t, 1, st.Completed)
	assert.Equal(t, 1, st.ByStatus[StatusRejected])
}

func TestStatus(t *testing.T) {
	for _, s := range Statuses() {
		assert.NoError(t, s.Validate())
		assert.NotEmpty(t, s.DisplayName())
	}
	assert.Equal(t, "Terminé", StatusCompleted.DisplayName())
	assert.Error(t, Status("ready ").Validate())
}

func TestCatalog(t *testing.T) {
	doc, ok := FindDocument("acte de mariage")
	require.True(t, ok)
	assert.Equal(t, "15$", doc.Price)

	_, ok = FindDocument("passeport")
	assert.False(t, ok)
	assert.Len(t, Documents(), 3)
}
