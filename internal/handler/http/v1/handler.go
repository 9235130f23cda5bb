package v1

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/chennai_live_alerts/internal/config"
	"github.com/shenikar/chennai_live_alerts/internal/models"
	"github.com/shenikar/chennai_live_alerts/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	alertService service.AlertService
	logger       *logrus.Logger
	validate     *validator.Validate
	cfg          *config.Config
}

func NewHandler(alertService service.AlertService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		alertService: alertService,
		logger:       logger,
		validate:     validator.New(),
		cfg:          cfg,
	}
}

// @Summary Get current alerts state
// @Description Get the current synchronization state: alerts, loading flag, error, last sync time, mode and offline queue.
// @Tags Alerts
// @Accept json
// @Produce json
// @Success 200 {object} StateResponse
// @Router /alerts [get]
func (h *Handler) getState(c *gin.Context) {
	c.JSON(http.StatusOK, ModelToStateResponse(h.alertService.State()))
}

// @Summary Refresh alerts
// @Description Reload alerts from the backend or the community simulation. An empty body repeats the last filters. Requires API key.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param filters body RefreshRequest false "Alert filters"
// @Success 200 {object} StateResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /alerts/refresh [post]
func (h *Handler) refreshAlerts(c *gin.Context) {
	log := h.logger.WithField("method", "refreshAlerts")

	var input RefreshRequest
	var filters *models.AlertFilters
	if err := c.ShouldBindJSON(&input); err != nil {
		if !errors.Is(err, io.EOF) {
			log.WithError(err).Warn("Failed to bind JSON")
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
	} else {
		if err := h.validate.Struct(input); err != nil {
			log.WithError(err).Warn("Validation failed")
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		f := DTOToFilters(input)
		filters = &f
	}

	state := h.alertService.Refresh(c.Request.Context(), filters)
	c.JSON(http.StatusOK, ModelToStateResponse(state))
}

// @Summary Get alert by ID
// @Description Get a single alert from the current state by its ID.
// @Tags Alerts
// @Accept json
// @Produce json
// @Param id path string true "Alert ID"
// @Success 200 {object} AlertResponse
// @Failure 404 {object} map[string]string "Alert not found"
// @Router /alerts/{id} [get]
func (h *Handler) getAlert(c *gin.Context) {
	alert, ok := h.alertService.GetAlertByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "alert not found"})
		return
	}
	c.JSON(http.StatusOK, ModelToAlertResponse(alert))
}

// @Summary Acknowledge an alert
// @Description Mark an alert as no longer active. Falls back to the local simulation when the backend is unreachable. Requires API key.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Alert ID"
// @Success 200 {object} AlertResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Alert not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts/{id}/acknowledge [post]
func (h *Handler) acknowledgeAlert(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "acknowledgeAlert").WithField("id", id)

	alert, err := h.alertService.Acknowledge(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrAlertNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "alert not found"})
			return
		}
		log.WithError(err).Error("Failed to acknowledge alert in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelToAlertResponse(*alert))
}

// @Summary Submit a community report
// @Description Submit a resident report. Returns 201 when delivered to the backend and 202 when saved offline for later sync. Requires API key.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param report body ReportRequest true "Community report"
// @Success 201 {object} SubmitResponse "Report synced"
// @Success 202 {object} SubmitResponse "Report queued offline"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts/report [post]
func (h *Handler) submitReport(c *gin.Context) {
	var input ReportRequest
	log := h.logger.WithField("method", "submitReport")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.alertService.SubmitReport(c.Request.Context(), DTOToReportModel(input))
	if err != nil {
		log.WithError(err).Error("Failed to submit report in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	status := http.StatusCreated
	if result.Status == models.SubmitStatusQueued {
		status = http.StatusAccepted
	}
	c.JSON(status, SubmitResponse{
		Status: string(result.Status),
		Alert:  ModelToAlertResponse(result.Alert),
	})
}

// @Summary Get application health status
// @Description Get health status of the application and the current data source
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok", Mode: modeOf(h.alertService.State())})
}
