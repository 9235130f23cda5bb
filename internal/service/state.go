package service

import (
	"time"

	"github.com/shenikar/chennai_live_alerts/internal/models"
)

// Сообщения, которые видит пользователь
const (
	MsgBackendUnavailable = "Live alerts backend unavailable. Running in community simulation mode."
	MsgLoadFailed         = "Unable to load alerts right now. Please try again."
	MsgReportQueued       = "Report saved offline. It will sync automatically when the backend is reachable."
)

type eventKind int

const (
	eventRefreshStarted eventKind = iota
	eventBackendSucceeded
	eventBackendFailed
	eventSimulationLoaded
	eventSimulationFailed
	eventDemoted
	eventAlertsReplaced
	eventAlertUpdated
	eventAlertAdded
	eventQueueChanged
)

// event - вход чистой функции переходов
type event struct {
	kind    eventKind
	alerts  []models.Alert
	alert   models.Alert
	pending []models.AlertReport
	message string
	at      time.Time
}

// transition вычисляет новое состояние без побочных эффектов
func transition(s models.SyncState, ev event) models.SyncState {
	switch ev.kind {
	case eventRefreshStarted:
		s.Loading = true
		s.Error = ""
	case eventBackendSucceeded:
		s.Alerts = normalizeAlerts(ev.alerts)
		s.IsUsingBackend = true
		s.Error = ""
		s.LastSync = timePtr(ev.at)
		s.Loading = false
	case eventBackendFailed:
		s.IsUsingBackend = false
		s.Error = MsgBackendUnavailable
	case eventSimulationLoaded:
		s.Alerts = models.CloneAlerts(ev.alerts)
		s.LastSync = timePtr(ev.at)
		s.Loading = false
	case eventSimulationFailed:
		// устаревшие данные лучше, чем никаких: Alerts не трогаем
		s.Error = MsgLoadFailed
		s.Loading = false
	case eventDemoted:
		s.IsUsingBackend = false
		if ev.message != "" {
			s.Error = ev.message
		}
	case eventAlertsReplaced:
		s.Alerts = models.CloneAlerts(ev.alerts)
	case eventAlertUpdated:
		alerts := models.CloneAlerts(s.Alerts)
		if models.ReplaceAlert(alerts, ev.alert) {
			s.Alerts = alerts
		}
	case eventAlertAdded:
		alerts := make([]models.Alert, 0, len(s.Alerts)+1)
		alerts = append(alerts, ev.alert)
		for _, a := range s.Alerts {
			if a.ID != ev.alert.ID {
				alerts = append(alerts, a)
			}
		}
		s.Alerts = alerts
	case eventQueueChanged:
		s.PendingReports = models.CloneReports(ev.pending)
	}
	return s
}

// normalizeAlerts убирает дубликаты по id (побеждает последняя запись) и сортирует от новых к старым
func normalizeAlerts(alerts []models.Alert) []models.Alert {
	out := models.MergeAlerts(nil, alerts)
	models.SortByTimestampDesc(out)
	return out
}

func timePtr(t time.Time) *time.Time {
	return &t
}
