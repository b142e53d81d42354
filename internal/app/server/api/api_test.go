package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecitoyen/internal/app/client"
	"ecitoyen/internal/domain/citizen"
	"ecitoyen/internal/domain/revenue"
	"ecitoyen/internal/utils/clock"
	"ecitoyen/internal/utils/logger"
)

// memRepo - реестр в памяти для проверки маршрутов без PostgreSQL.
type memRepo struct {
	mu       sync.Mutex
	citizens []citizen.Citizen
	payments []revenue.Payment
	types    []revenue.PaymentType
	now      time.Time
}

func (r *memRepo) List(context.Context) ([]citizen.Citizen, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]citizen.Citizen(nil), r.citizens...), nil
}

func (r *memRepo) Get(_ context.Context, id int64) (citizen.Citizen, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.citizens {
		if c.ID == id {
			return c, nil
		}
	}
	return citizen.Citizen{}, citizen.ErrNotFound
}

func (r *memRepo) Create(_ context.Context, req citizen.CreateRequest) (citizen.Citizen, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.citizens {
		if strings.EqualFold(c.Email, req.Email) {
			return citizen.Citizen{}, citizen.ErrEmailTaken
		}
	}
	c := citizen.Citizen{
		ID:        int64(len(r.citizens) + 1),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		CreatedAt: r.now,
	}
	r.citizens = append(r.citizens, c)
	return c, nil
}

func (r *memRepo) Update(_ context.Context, in citizen.Citizen) (citizen.Citizen, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, c := range r.citizens {
		if c.ID == in.ID {
			r.citizens[i] = in
			return in, nil
		}
	}
	return citizen.Citizen{}, citizen.ErrNotFound
}

func (r *memRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, c := range r.citizens {
		if c.ID == id {
			r.citizens = append(r.citizens[:i], r.citizens[i+1:]...)
			return nil
		}
	}
	return citizen.ErrNotFound
}

func (r *memRepo) Count(context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.citizens), nil
}

func (r *memRepo) ListPayments(context.Context) ([]revenue.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]revenue.Payment(nil), r.payments...), nil
}

func (r *memRepo) GetPayment(_ context.Context, id int64) (revenue.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.payments {
		if p.ID == id {
			return p, nil
		}
	}
	return revenue.Payment{}, revenue.ErrNotFound
}

func (r *memRepo) CreatePayment(_ context.Context, req revenue.CreatePaymentRequest) (revenue.Payment, error) {
	if _, err := r.Get(context.Background(), req.CitizenID); err != nil {
		return revenue.Payment{}, revenue.ErrUnknownCitizen
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	p := revenue.Payment{
		ID:        int64(len(r.payments) + 1),
		CitizenID: req.CitizenID,
		Type:      req.Type,
		Amount:    req.Amount,
		Status:    req.Status,
		CreatedAt: r.now,
	}
	r.payments = append(r.payments, p)
	return p, nil
}

func (r *memRepo) ListTypes(context.Context) ([]revenue.PaymentType, error) {
	return r.types, nil
}

type pingOK struct{}

func (pingOK) Ping(context.Context) error { return nil }

func newTestServer(t *testing.T) (*httptest.Server, *memRepo) {
	t.Helper()

	now := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)
	repo := &memRepo{
		now: now,
		types: []revenue.PaymentType{
			{ID: 1, Name: "Taxe Foncière", Amount: 15000, Category: revenue.CategoryTax},
			{ID: 2, Name: "Acte de naissance", Amount: 10, Category: revenue.CategoryDocument},
		},
	}
	log := logger.Discard()

	mux := NewWithServices(Services{
		DB:       pingOK{},
		Citizens: citizen.NewService(repo, log),
		Revenue:  revenue.NewService(repo, repo, clock.Fixed(now), log),
	}, log)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, repo
}

func TestAPI_Envelope(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Status string `json:"status"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, body.Success)
	assert.Equal(t, "OK", body.Data.Status)
}

func TestAPI_ErrorEnvelope(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/citizens/42")
	require.NoError(t, err)
	defer resp.Body.Close()

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.False(t, body.Success)
	assert.Equal(t, "Citoyen introuvable", body.Message)
}

func TestAPI_WithClient(t *testing.T) {
	srv, _ := newTestServer(t)
	ctx := context.Background()
	api := client.NewAPIClient(srv.URL+"/api", 5*time.Second, logger.Discard())

	require.True(t, api.TestConnection(ctx))

	c, err := api.CreateCitizen(ctx, citizen.CreateRequest{Name: "Amani Kabila", Email: "amani@example.cd"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), c.ID)

	_, err = api.CreateCitizen(ctx, citizen.CreateRequest{Name: "Autre", Email: "AMANI@example.cd"})
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)

	phone := "+243 810 000 000"
	c, err = api.UpdateCitizen(ctx, c.ID, citizen.UpdateRequest{Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, phone, c.Phone)
	assert.Equal(t, "Amani Kabila", c.Name)

	p, err := api.CreatePayment(ctx, revenue.CreatePaymentRequest{CitizenID: c.ID, Type: "Taxe Foncière", Amount: 15000, Status: revenue.StatusCompleted})
	require.NoError(t, err)
	assert.Equal(t, revenue.StatusCompleted, p.Status)

	pending, err := api.CreatePayment(ctx, revenue.CreatePaymentRequest{CitizenID: c.ID, Type: "Acte de naissance", Amount: 10})
	require.NoError(t, err)
	assert.Equal(t, revenue.StatusPending, pending.Status)

	_, err = api.CreatePayment(ctx, revenue.CreatePaymentRequest{CitizenID: 99, Type: "Amendes", Amount: 5000})
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)

	stats, err := api.GetPaymentStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalPayments)
	assert.InDelta(t, 15010, stats.TotalAmount, 0.001)

	dash, err := api.GetDashboardStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, dash.TotalCitizens)
	assert.InDelta(t, 15000, dash.TotalRevenue, 0.001)
	assert.Equal(t, 1, dash.TotalDocuments)

	types, err := api.GetPaymentTypes(ctx)
	require.NoError(t, err)
	assert.Len(t, types, 2)

	require.NoError(t, api.DeleteCitizen(ctx, c.ID))
	_, err = api.GetCitizen(ctx, c.ID)
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}
