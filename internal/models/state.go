package models

import "time"

// SyncState - реактивное состояние синхронизации, которое видят потребители
type SyncState struct {
	Alerts         []Alert       `json:"alerts"`
	Loading        bool          `json:"loading"`
	Error          string        `json:"error,omitempty"`
	LastSync       *time.Time    `json:"lastSync,omitempty"`
	IsUsingBackend bool          `json:"isUsingBackend"`
	PendingReports []AlertReport `json:"pendingReports"`
}

// Clone возвращает копию состояния, безопасную для передачи наружу
func (s SyncState) Clone() SyncState {
	out := s
	out.Alerts = CloneAlerts(s.Alerts)
	if out.Alerts == nil {
		out.Alerts = []Alert{}
	}
	out.PendingReports = CloneReports(s.PendingReports)
	if s.LastSync != nil {
		t := *s.LastSync
		out.LastSync = &t
	}
	return out
}
