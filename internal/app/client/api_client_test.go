package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecitoyen/internal/domain/citizen"
	"ecitoyen/internal/domain/revenue"
	"ecitoyen/internal/utils/logger"
)

func newTestAPI(t *testing.T, handler http.HandlerFunc) *APIClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewAPIClient(srv.URL+"/api/", 5*time.Second, logger.Discard())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestAPIClient_GetCitizens(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/citizens", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		writeJSON(w, http.StatusOK, Response[[]citizen.Citizen]{
			Success: true,
			Data:    []citizen.Citizen{{ID: 1, Name: "Jean Kabila", Email: "jean@example.cd"}},
		})
	})

	got, err := api.GetCitizens(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Jean Kabila", got[0].Name)
}

func TestAPIClient_CreatePayment(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/payments", r.URL.Path)

		body, _ := io.ReadAll(r.Body)
		var req revenue.CreatePaymentRequest
		require.NoError(t, json.Unmarshal(body, &req))
		assert.Equal(t, int64(3), req.CitizenID)

		writeJSON(w, http.StatusCreated, Response[revenue.Payment]{
			Success: true,
			Data:    revenue.Payment{ID: 42, CitizenID: req.CitizenID, Type: req.Type, Amount: req.Amount, Status: "pending"},
		})
	})

	p, err := api.CreatePayment(context.Background(), revenue.CreatePaymentRequest{CitizenID: 3, Type: "Amendes", Amount: 5000})
	require.NoError(t, err)
	assert.Equal(t, int64(42), p.ID)
	assert.Equal(t, 5000.0, p.Amount)
}

func TestAPIClient_Errors(t *testing.T) {
	t.Run("http error", func(t *testing.T) {
		api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusNotFound, map[string]any{"success": false, "message": "citizen not found"})
		})

		_, err := api.GetCitizen(context.Background(), 9)

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
		assert.Equal(t, "citizen not found", apiErr.Message)
	})

	t.Run("unsuccessful envelope", func(t *testing.T) {
		api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]any{"success": false, "message": "maintenance"})
		})

		_, err := api.GetPaymentTypes(context.Background())
		assert.ErrorIs(t, err, ErrUnsuccessful)
		assert.Contains(t, err.Error(), "maintenance")
	})

	t.Run("bad json", func(t *testing.T) {
		api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html>"))
		})

		_, err := api.GetDashboardStats(context.Background())
		assert.Error(t, err)
	})
}

func TestAPIClient_DeleteCitizen(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/citizens/5", r.URL.Path)
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": nil})
	})

	assert.NoError(t, api.DeleteCitizen(context.Background(), 5))
}

func TestAPIClient_TestConnection(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/health" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	})
	assert.True(t, api.TestConnection(context.Background()))

	down := NewAPIClient("http://127.0.0.1:1/api", time.Second, logger.Discard())
	assert.False(t, down.TestConnection(context.Background()))
}
