package transport

import (
	"time"

	"github.com/shenikar/chennai_live_alerts/internal/models"
)

// AlertPayload - формат оповещения на проводе
type AlertPayload struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	TitleEn          string    `json:"title_en,omitempty"`
	Message          string    `json:"message"`
	MessageEn        string    `json:"message_en,omitempty"`
	Severity         string    `json:"severity"`
	Timestamp        time.Time `json:"timestamp"`
	Source           string    `json:"source"`
	AffectedAreas    []string  `json:"affected_areas,omitempty"`
	AffectedPincodes []string  `json:"affected_pincodes,omitempty"`
	IsActive         bool      `json:"is_active"`
}

// ReportPayload - тело запроса POST /alerts/report
type ReportPayload struct {
	Title           string `json:"title"`
	TitleEn         string `json:"title_en,omitempty"`
	Message         string `json:"message"`
	MessageEn       string `json:"message_en,omitempty"`
	Severity        string `json:"severity"`
	Area            string `json:"area,omitempty"`
	Pincode         string `json:"pincode,omitempty"`
	Source          string `json:"source,omitempty"`
	ReporterName    string `json:"reporter_name,omitempty"`
	ReporterContact string `json:"reporter_contact,omitempty"`
}

// errorPayload - тело ответа с ошибкой
type errorPayload struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

// PayloadToAlert преобразует формат провода в доменную модель
func PayloadToAlert(p AlertPayload) models.Alert {
	return models.NormalizeAlert(models.Alert{
		ID:            p.ID,
		Title:         p.Title,
		TitleEn:       p.TitleEn,
		Message:       p.Message,
		MessageEn:     p.MessageEn,
		Severity:      models.Severity(p.Severity),
		Timestamp:     p.Timestamp,
		Source:        p.Source,
		AffectedAreas: p.AffectedAreas,
		Pincodes:      p.AffectedPincodes,
		IsActive:      p.IsActive,
	})
}

// PayloadsToAlerts преобразует слайс payload в слайс моделей
func PayloadsToAlerts(payloads []AlertPayload) []models.Alert {
	alerts := make([]models.Alert, len(payloads))
	for i, p := range payloads {
		alerts[i] = PayloadToAlert(p)
	}
	return alerts
}

// ReportToPayload преобразует сообщение пользователя в тело запроса
func ReportToPayload(r models.AlertReport) ReportPayload {
	return ReportPayload{
		Title:           r.Title,
		TitleEn:         r.TitleEn,
		Message:         r.Message,
		MessageEn:       r.MessageEn,
		Severity:        string(r.Severity),
		Area:            r.Area,
		Pincode:         r.Pincode,
		Source:          r.Source,
		ReporterName:    r.ReporterName,
		ReporterContact: r.ReporterContact,
	}
}
