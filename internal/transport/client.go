package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shenikar/chennai_live_alerts/internal/config"
	"github.com/shenikar/chennai_live_alerts/internal/models"
	"github.com/sirupsen/logrus"
)

const defaultTimeout = 10 * time.Second

// Client работает с удаленным API оповещений
type Client struct {
	baseURL    string
	apiKey     string
	enabled    bool
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewClient создает клиент из конфигурации. Клиент выключен, если базовый URL пуст
// или бэкенд отключен флагом.
func NewClient(cfg *config.Config, logger *logrus.Logger) *Client {
	timeout := cfg.AlertsAPITimeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.AlertsAPIBaseURL, "/"),
		apiKey:  cfg.AlertsAPIKey,
		enabled: cfg.BackendEnabled(),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Enabled сообщает, настроен ли бэкенд
func (c *Client) Enabled() bool {
	return c.enabled
}

// FetchAlerts запрашивает список оповещений с учетом фильтров
func (c *Client) FetchAlerts(ctx context.Context, filters models.AlertFilters) ([]models.Alert, error) {
	if !c.enabled {
		return nil, ErrBackendDisabled
	}

	query := url.Values{}
	if filters.Pincode != "" {
		query.Set("pincode", filters.Pincode)
	}
	if filters.Area != "" {
		query.Set("area", filters.Area)
	}
	if filters.IncludeInactive {
		query.Set("includeInactive", "true")
	}

	endpoint := c.baseURL + "/alerts"
	if encoded := query.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	var payloads []AlertPayload
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &payloads); err != nil {
		return nil, err
	}

	c.logger.WithFields(logrus.Fields{
		"component": "transport",
		"count":     len(payloads),
		"pincode":   filters.Pincode,
		"area":      filters.Area,
	}).Debug("Fetched alerts from backend")

	return PayloadsToAlerts(payloads), nil
}

// AcknowledgeAlert помечает оповещение неактивным на бэкенде
func (c *Client) AcknowledgeAlert(ctx context.Context, id string) (models.Alert, error) {
	if !c.enabled {
		return models.Alert{}, ErrBackendDisabled
	}

	endpoint := fmt.Sprintf("%s/alerts/%s/acknowledge", c.baseURL, url.PathEscape(id))

	var payload *AlertPayload
	if err := c.do(ctx, http.MethodPost, endpoint, nil, &payload); err != nil {
		return models.Alert{}, err
	}
	if payload == nil {
		return models.Alert{}, &TransportError{Message: "empty acknowledge response"}
	}
	return PayloadToAlert(*payload), nil
}

// SubmitReport создает на бэкенде оповещение из сообщения пользователя
func (c *Client) SubmitReport(ctx context.Context, report models.AlertReport) (models.Alert, error) {
	if !c.enabled {
		return models.Alert{}, ErrBackendDisabled
	}

	body, err := json.Marshal(ReportToPayload(report))
	if err != nil {
		return models.Alert{}, &TransportError{Message: "failed to marshal report", Err: err}
	}

	var payload *AlertPayload
	if err := c.do(ctx, http.MethodPost, c.baseURL+"/alerts/report", body, &payload); err != nil {
		return models.Alert{}, err
	}
	if payload == nil {
		return models.Alert{}, &TransportError{Message: "empty report response"}
	}
	return PayloadToAlert(*payload), nil
}

// do выполняет запрос и декодирует ответ в out. Пустое тело или 204 оставляют out без изменений.
func (c *Client) do(ctx context.Context, method, endpoint string, body []byte, out any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return &TransportError{Message: "failed to create request", Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Message: fmt.Sprintf("%s %s failed", method, req.URL.Path), Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Message: "failed to read response body", Status: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp.StatusCode, data)
	}

	if resp.StatusCode == http.StatusNoContent || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return &TransportError{Message: "failed to parse response", Status: resp.StatusCode, Err: err}
	}
	return nil
}

func decodeError(status int, data []byte) error {
	terr := &TransportError{Status: status, Message: http.StatusText(status)}

	var apiErr errorPayload
	if err := json.Unmarshal(data, &apiErr); err == nil {
		if apiErr.Message != "" {
			terr.Message = apiErr.Message
		}
		terr.Code = apiErr.Code
	}
	if terr.Message == "" {
		terr.Message = fmt.Sprintf("unexpected HTTP status %d", status)
	}
	return terr
}

// AsTransportError извлекает TransportError из цепочки ошибок
func AsTransportError(err error) (*TransportError, bool) {
	var terr *TransportError
	if errors.As(err, &terr) {
		return terr, true
	}
	return nil, false
}
