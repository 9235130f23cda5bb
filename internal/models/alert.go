package models

import (
	"sort"
	"time"
)

// Severity - уровень важности оповещения
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// Rank возвращает порядковый вес уровня, больше - важнее. Неизвестный уровень имеет вес 0.
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 4
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	}
	return 0
}

// Valid сообщает, является ли уровень одним из известных
func (s Severity) Valid() bool {
	return s.Rank() > 0
}

// Alert представляет одно гражданское оповещение
type Alert struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	TitleEn       string    `json:"titleEn"`
	Message       string    `json:"message"`
	MessageEn     string    `json:"messageEn"`
	Severity      Severity  `json:"severity"`
	Timestamp     time.Time `json:"timestamp"`
	Source        string    `json:"source"`
	AffectedAreas []string  `json:"affectedAreas,omitempty"`
	Pincodes      []string  `json:"pincodes,omitempty"`
	IsActive      bool      `json:"isActive"`
}

// AlertFilters - фильтры выборки оповещений
type AlertFilters struct {
	Pincode         string `json:"pincode,omitempty"`
	Area            string `json:"area,omitempty"`
	IncludeInactive bool   `json:"includeInactive,omitempty"`
}

// NormalizeAlert заполняет английские поля основным текстом, если они пустые
func NormalizeAlert(alert Alert) Alert {
	if alert.TitleEn == "" {
		alert.TitleEn = alert.Title
	}
	if alert.MessageEn == "" {
		alert.MessageEn = alert.Message
	}
	return alert
}

// MergeAlerts объединяет два списка по id. При совпадении id побеждает запись из incoming,
// порядок первого появления сохраняется.
func MergeAlerts(existing, incoming []Alert) []Alert {
	merged := make([]Alert, 0, len(existing)+len(incoming))
	index := make(map[string]int, len(existing)+len(incoming))

	for _, list := range [][]Alert{existing, incoming} {
		for _, alert := range list {
			if i, ok := index[alert.ID]; ok {
				merged[i] = alert
				continue
			}
			index[alert.ID] = len(merged)
			merged = append(merged, alert)
		}
	}
	return merged
}

// SortByTimestampDesc сортирует оповещения от новых к старым
func SortByTimestampDesc(alerts []Alert) {
	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].Timestamp.After(alerts[j].Timestamp)
	})
}

// ReplaceAlert заменяет оповещение с тем же id. Возвращает false, если такого нет.
func ReplaceAlert(alerts []Alert, updated Alert) bool {
	for i := range alerts {
		if alerts[i].ID == updated.ID {
			alerts[i] = updated
			return true
		}
	}
	return false
}

// CloneAlerts возвращает независимую копию списка
func CloneAlerts(alerts []Alert) []Alert {
	if alerts == nil {
		return nil
	}
	out := make([]Alert, len(alerts))
	copy(out, alerts)
	return out
}
