package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/exp/slog"

	"ecitoyen/internal/domain/citizen"
	"ecitoyen/internal/domain/revenue"
)

// ErrUnsuccessful - сервер ответил 2xx, но с success=false в конверте.
var ErrUnsuccessful = errors.New("remote api reported failure")

// Response - конверт всех ответов удаленного API.
type Response[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data"`
	Message string `json:"message,omitempty"`
}

// APIError - ответ с кодом 4xx/5xx.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("ошибка сервера (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("ошибка сервера: статус %d", e.StatusCode)
}

// APIClient - клиент удаленного API портала (граждане, платежи, статистика).
type APIClient struct {
	client    *http.Client
	log       *slog.Logger
	baseURL   string
	userAgent string
}

func NewAPIClient(baseURL string, timeout time.Duration, log *slog.Logger) *APIClient {
	client := &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 10,
		},
	}

	return &APIClient{
		client:    client,
		log:       log.With("component", "api_client"),
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: "eCitoyen-Client/1.0",
	}
}

func (h *APIClient) BaseURL() string {
	return h.baseURL
}

// TestConnection возвращает true, если /health отвечает 2xx.
func (h *APIClient) TestConnection(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.baseURL+"/health", nil)
	if err != nil {
		return false
	}
	req.Header.Set("User-Agent", h.userAgent)

	resp, err := h.client.Do(req)
	if err != nil {
		h.log.Debug("connection test failed", "error", err)
		return false
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

func (h *APIClient) GetCitizens(ctx context.Context) ([]citizen.Citizen, error) {
	return call[[]citizen.Citizen](ctx, h, http.MethodGet, "/citizens", nil)
}

func (h *APIClient) GetCitizen(ctx context.Context, id int64) (citizen.Citizen, error) {
	return call[citizen.Citizen](ctx, h, http.MethodGet, "/citizens/"+strconv.FormatInt(id, 10), nil)
}

func (h *APIClient) CreateCitizen(ctx context.Context, req citizen.CreateRequest) (citizen.Citizen, error) {
	return call[citizen.Citizen](ctx, h, http.MethodPost, "/citizens", req)
}

func (h *APIClient) UpdateCitizen(ctx context.Context, id int64, req citizen.UpdateRequest) (citizen.Citizen, error) {
	return call[citizen.Citizen](ctx, h, http.MethodPut, "/citizens/"+strconv.FormatInt(id, 10), req)
}

func (h *APIClient) DeleteCitizen(ctx context.Context, id int64) error {
	_, err := call[json.RawMessage](ctx, h, http.MethodDelete, "/citizens/"+strconv.FormatInt(id, 10), nil)
	return err
}

func (h *APIClient) GetPayments(ctx context.Context) ([]revenue.Payment, error) {
	return call[[]revenue.Payment](ctx, h, http.MethodGet, "/payments", nil)
}

func (h *APIClient) GetPayment(ctx context.Context, id int64) (revenue.Payment, error) {
	return call[revenue.Payment](ctx, h, http.MethodGet, "/payments/"+strconv.FormatInt(id, 10), nil)
}

func (h *APIClient) CreatePayment(ctx context.Context, req revenue.CreatePaymentRequest) (revenue.Payment, error) {
	return call[revenue.Payment](ctx, h, http.MethodPost, "/payments", req)
}

func (h *APIClient) GetPaymentTypes(ctx context.Context) ([]revenue.PaymentType, error) {
	return call[[]revenue.PaymentType](ctx, h, http.MethodGet, "/payment-types", nil)
}

func (h *APIClient) GetPaymentStats(ctx context.Context) (revenue.PaymentStats, error) {
	return call[revenue.PaymentStats](ctx, h, http.MethodGet, "/payment-stats", nil)
}

func (h *APIClient) GetDashboardStats(ctx context.Context) (revenue.DashboardStats, error) {
	return call[revenue.DashboardStats](ctx, h, http.MethodGet, "/dashboard-stats", nil)
}

func call[T any](ctx context.Context, h *APIClient, method, path string, body any) (T, error) {
	var zero T

	resp, err := h.doRequest(ctx, method, path, body)
	if err != nil {
		return zero, err
	}

	var envelope Response[T]
	if err := h.parseResponse(resp, &envelope); err != nil {
		return zero, err
	}
	if !envelope.Success {
		return zero, fmt.Errorf("%w: %s", ErrUnsuccessful, envelope.Message)
	}

	return envelope.Data, nil
}

func (h *APIClient) doRequest(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("ошибка маршалинга тела запроса: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", h.userAgent)

	h.log.Debug("Отправка запроса",
		"method", method,
		"url", req.URL.String(),
	)

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса: %w", err)
	}

	return resp, nil
}

func (h *APIClient) parseResponse(resp *http.Response, result any) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("ошибка чтения ответа: %w", err)
	}

	h.log.Debug("Получен ответ",
		"status", resp.StatusCode,
		"bytes", len(body),
	)

	if resp.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var errResp struct {
			Message string `json:"message"`
			Detail  string `json:"detail"`
		}
		if err := json.Unmarshal(body, &errResp); err == nil {
			apiErr.Message = errResp.Message
			if apiErr.Message == "" {
				apiErr.Message = errResp.Detail
			}
		}
		return apiErr
	}

	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("ошибка парсинга ответа: %w", err)
	}

	return nil
}
