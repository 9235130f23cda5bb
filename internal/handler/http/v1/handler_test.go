package v1

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/chennai_live_alerts/internal/config"
	"github.com/shenikar/chennai_live_alerts/internal/models"
	"github.com/shenikar/chennai_live_alerts/internal/service"
	"github.com/shenikar/chennai_live_alerts/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var authHeader = map[string]string{"X-API-Key": "test-api-key"}

// newTestHandler создает новый экземпляр Handler с мокированным сервисом
func newTestHandler(t *testing.T) (*Handler, *mocks.MockAlertService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockAlertService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		APIKeys: []string{"test-api-key"},
	}

	handler := NewHandler(mockService, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, mockService, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func testAlert(id string) models.Alert {
	return models.Alert{
		ID:            id,
		Title:         "கனமழை எச்சரிக்கை",
		TitleEn:       "Heavy rain warning",
		Message:       "கனமழை",
		MessageEn:     "Heavy rain",
		Severity:      models.SeverityHigh,
		Timestamp:     time.Date(2026, 10, 18, 8, 0, 0, 0, time.UTC),
		Source:        "IMD Chennai",
		AffectedAreas: []string{"Mylapore"},
		Pincodes:      []string{"600004"},
		IsActive:      true,
	}
}

func validReport() ReportRequest {
	return ReportRequest{
		Title:    "Tree fallen",
		Message:  "Road blocked near the bus stop",
		Severity: "medium",
		Area:     "Adyar",
		Pincode:  "600020",
	}
}

func TestGetState_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	lastSync := time.Date(2026, 10, 18, 8, 5, 0, 0, time.UTC)

	mockService.EXPECT().State().Return(models.SyncState{
		Alerts:         []models.Alert{testAlert("a1")},
		Error:          service.MsgBackendUnavailable,
		LastSync:       &lastSync,
		PendingReports: []models.AlertReport{{Title: "queued", Severity: models.SeverityLow}},
	}).Times(1)

	w := makeRequest(router, "GET", "/api/v1/alerts", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp StateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Alerts, 1)
	assert.Equal(t, "a1", resp.Alerts[0].ID)
	assert.Equal(t, "high", resp.Alerts[0].Severity)
	require.NotNil(t, resp.Error)
	assert.Equal(t, service.MsgBackendUnavailable, *resp.Error)
	assert.False(t, resp.IsUsingBackend)
	require.Len(t, resp.PendingReports, 1)
	assert.True(t, resp.LastSync.Equal(lastSync))
}

func TestGetState_EmptyErrorIsNull(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().State().Return(models.SyncState{}).Times(1)

	w := makeRequest(router, "GET", "/api/v1/alerts", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"error":null`)
	assert.Contains(t, w.Body.String(), `"alerts":[]`)
	assert.Contains(t, w.Body.String(), `"pendingReports":[]`)
}

func TestRefresh_WithFilters(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	expected := models.AlertFilters{Pincode: "600042", Area: "Velachery", IncludeInactive: true}

	mockService.EXPECT().
		Refresh(gomock.Any(), &expected).
		Return(models.SyncState{IsUsingBackend: true, Alerts: []models.Alert{testAlert("a1")}}).
		Times(1)

	body, _ := json.Marshal(RefreshRequest{Pincode: "600042", Area: "Velachery", IncludeInactive: true})
	w := makeRequest(router, "POST", "/api/v1/alerts/refresh", bytes.NewBuffer(body), authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp StateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.IsUsingBackend)
}

func TestRefresh_EmptyBodyKeepsFilters(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		Refresh(gomock.Any(), gomock.Nil()).
		Return(models.SyncState{}).
		Times(1)

	w := makeRequest(router, "POST", "/api/v1/alerts/refresh", nil, authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRefresh_InvalidPincode(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().Refresh(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "POST", "/api/v1/alerts/refresh", bytes.NewBufferString(`{"pincode":"60A"}`), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRefresh_Unauthorized(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().Refresh(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/alerts/refresh", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API key required")
}

func TestRefresh_InvalidAPIKey(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().Refresh(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/alerts/refresh", nil, map[string]string{"Authorization": "Bearer wrong"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid API key")
}

func TestRefresh_BearerToken(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().Refresh(gomock.Any(), gomock.Nil()).Return(models.SyncState{}).Times(1)

	w := makeRequest(router, "POST", "/api/v1/alerts/refresh", nil, map[string]string{"Authorization": "Bearer test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetAlert_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().GetAlertByID("a1").Return(testAlert("a1"), true).Times(1)

	w := makeRequest(router, "GET", "/api/v1/alerts/a1", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp AlertResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Heavy rain warning", resp.TitleEn)
	assert.Equal(t, []string{"600004"}, resp.Pincodes)
}

func TestGetAlert_NotFound(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().GetAlertByID("missing").Return(models.Alert{}, false).Times(1)

	w := makeRequest(router, "GET", "/api/v1/alerts/missing", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "alert not found")
}

func TestAcknowledgeAlert_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	acked := testAlert("a1")
	acked.IsActive = false
	mockService.EXPECT().Acknowledge(gomock.Any(), "a1").Return(&acked, nil).Times(1)

	w := makeRequest(router, "POST", "/api/v1/alerts/a1/acknowledge", nil, authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp AlertResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.IsActive)
}

func TestAcknowledgeAlert_NotFound(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().Acknowledge(gomock.Any(), "missing").Return(nil, service.ErrAlertNotFound).Times(1)

	w := makeRequest(router, "POST", "/api/v1/alerts/missing/acknowledge", nil, authHeader)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAcknowledgeAlert_ServiceError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().Acknowledge(gomock.Any(), "a1").Return(nil, errors.New("storage unavailable")).Times(1)

	w := makeRequest(router, "POST", "/api/v1/alerts/a1/acknowledge", nil, authHeader)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestSubmitReport_Synced(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := validReport()

	mockService.EXPECT().
		SubmitReport(gomock.Any(), DTOToReportModel(reqBody)).
		Return(models.SubmitResult{Status: models.SubmitStatusSynced, Alert: testAlert("srv-1")}, nil).
		Times(1)

	body, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/alerts/report", bytes.NewBuffer(body), authHeader)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp SubmitResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "synced", resp.Status)
	assert.Equal(t, "srv-1", resp.Alert.ID)
}

func TestSubmitReport_Queued(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		SubmitReport(gomock.Any(), gomock.Any()).
		Return(models.SubmitResult{Status: models.SubmitStatusQueued, Alert: testAlert("sim-1")}, nil).
		Times(1)

	body, _ := json.Marshal(validReport())
	w := makeRequest(router, "POST", "/api/v1/alerts/report", bytes.NewBuffer(body), authHeader)

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"queued"`)
}

func TestSubmitReport_InvalidJSON(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().SubmitReport(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "POST", "/api/v1/alerts/report", bytes.NewBufferString(`{"title": "test"`), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestSubmitReport_ValidationError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().SubmitReport(gomock.Any(), gomock.Any()).Times(0)

	reqBody := validReport()
	reqBody.Severity = "apocalyptic"
	body, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/alerts/report", bytes.NewBuffer(body), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Severity")
}

func TestSubmitReport_MissingTitle(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().SubmitReport(gomock.Any(), gomock.Any()).Times(0)

	reqBody := validReport()
	reqBody.Title = ""
	body, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/alerts/report", bytes.NewBuffer(body), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Title")
}

func TestSubmitReport_ServiceError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().
		SubmitReport(gomock.Any(), gomock.Any()).
		Return(models.SubmitResult{}, errors.New("quota exceeded")).
		Times(1)

	body, _ := json.Marshal(validReport())
	w := makeRequest(router, "POST", "/api/v1/alerts/report", bytes.NewBuffer(body), authHeader)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHealthCheck(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().State().Return(models.SyncState{IsUsingBackend: true}).Times(1)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","mode":"backend"}`, w.Body.String())
}

func TestRoutes_OpenWithoutConfiguredKeys(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockAlertService(ctrl)
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewHandler(mockService, logger, &config.Config{}).RegisterRoutes(router.Group("/api/v1"))

	mockService.EXPECT().Refresh(gomock.Any(), gomock.Nil()).Return(models.SyncState{}).Times(1)

	w := makeRequest(router, "POST", "/api/v1/alerts/refresh", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}
