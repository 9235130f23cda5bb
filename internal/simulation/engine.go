package simulation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/chennai_live_alerts/internal/models"
	"github.com/shenikar/chennai_live_alerts/internal/store"
	"github.com/sirupsen/logrus"
)

const (
	alertsCacheKey    = "chennai_live_alerts_cache"
	pendingReportsKey = "chennai_live_alerts_pending_reports"

	defaultReportSource = "Community report"
)

// ErrCorrupted - данные в хранилище не удалось разобрать
var ErrCorrupted = errors.New("simulation: corrupted data in store")

// Engine - локальная симуляция ленты оповещений поверх постоянного хранилища.
// Используется по умолчанию без бэкенда и как запасной путь при его отказе.
type Engine struct {
	store    store.KeyValueStore
	logger   *logrus.Logger
	cacheKey string
	queueKey string
	now      func() time.Time

	// cacheMu сериализует read-modify-write кэша оповещений, queueMu - очереди
	cacheMu sync.Mutex
	queueMu sync.Mutex
}

// NewEngine создает движок симуляции. Ключи хранилища получают префикс keyPrefix.
func NewEngine(kv store.KeyValueStore, logger *logrus.Logger, keyPrefix string) *Engine {
	return &Engine{
		store:    kv,
		logger:   logger,
		cacheKey: store.Key(keyPrefix, alertsCacheKey),
		queueKey: store.Key(keyPrefix, pendingReportsKey),
		now:      time.Now,
	}
}

// GetAlerts возвращает отфильтрованные оповещения из кэша, досеивая недостающие
// начальные оповещения. Уже сохраненные записи начальным набором не перезаписываются,
// поэтому подтверждение оповещения не откатывается.
func (e *Engine) GetAlerts(ctx context.Context, filters models.AlertFilters) ([]models.Alert, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("simulation: get alerts: %w", err)
	}
	log := e.logger.WithFields(logrus.Fields{
		"service": "simulation",
		"method":  "GetAlerts",
	})

	e.cacheMu.Lock()
	defer e.cacheMu.Unlock()

	cached := e.loadCacheOrReset(ctx, log)

	present := make(map[string]struct{}, len(cached))
	for _, alert := range cached {
		present[alert.ID] = struct{}{}
	}
	var missing []models.Alert
	for _, seed := range seedAlerts(e.now()) {
		if _, ok := present[seed.ID]; !ok {
			missing = append(missing, seed)
		}
	}

	alerts := cached
	if len(missing) > 0 {
		alerts = models.MergeAlerts(cached, missing)
		if err := e.saveCache(ctx, alerts); err != nil {
			log.WithError(err).Warn("Failed to persist seeded alerts")
		}
		log.WithField("seeded", len(missing)).Debug("Merged seed alerts into cache")
	}

	result := filterAlerts(alerts, filters)
	models.SortByTimestampDesc(result)
	return result, nil
}

// AcknowledgeAlert помечает оповещение неактивным. Возвращает nil без ошибки, если оповещения нет.
func (e *Engine) AcknowledgeAlert(ctx context.Context, id string) (*models.Alert, error) {
	log := e.logger.WithFields(logrus.Fields{
		"service":  "simulation",
		"method":   "AcknowledgeAlert",
		"alert_id": id,
	})

	e.cacheMu.Lock()
	defer e.cacheMu.Unlock()

	alerts := e.loadCacheOrReset(ctx, log)
	for i := range alerts {
		if alerts[i].ID != id {
			continue
		}
		alerts[i].IsActive = false
		if err := e.saveCache(ctx, alerts); err != nil {
			log.WithError(err).Warn("Failed to persist acknowledged alert")
		}
		updated := alerts[i]
		log.Info("Alert acknowledged locally")
		return &updated, nil
	}

	log.Debug("Alert not found in simulation cache")
	return nil, nil
}

// AddAlert создает локальное оповещение из сообщения пользователя и добавляет его в кэш
func (e *Engine) AddAlert(ctx context.Context, report models.AlertReport) (models.Alert, error) {
	log := e.logger.WithFields(logrus.Fields{
		"service": "simulation",
		"method":  "AddAlert",
	})

	alert := e.alertFromReport(report)

	e.cacheMu.Lock()
	defer e.cacheMu.Unlock()

	alerts := e.loadCacheOrReset(ctx, log)
	alerts = models.MergeAlerts(alerts, []models.Alert{alert})
	if err := e.saveCache(ctx, alerts); err != nil {
		log.WithError(err).Warn("Failed to persist local alert")
	}

	log.WithField("alert_id", alert.ID).Info("Local alert created from report")
	return alert, nil
}

// SaveAlerts перезаписывает кэш оповещений
func (e *Engine) SaveAlerts(ctx context.Context, alerts []models.Alert) error {
	e.cacheMu.Lock()
	defer e.cacheMu.Unlock()
	return e.saveCache(ctx, alerts)
}

// LoadAlerts читает кэш как есть, без досева и фильтрации. Пустой кэш - пустой список.
func (e *Engine) LoadAlerts(ctx context.Context) ([]models.Alert, error) {
	e.cacheMu.Lock()
	defer e.cacheMu.Unlock()

	alerts, err := e.loadCache(ctx)
	if err != nil {
		return nil, err
	}
	models.SortByTimestampDesc(alerts)
	return alerts, nil
}

// QueueReport добавляет сообщение в конец постоянной очереди
func (e *Engine) QueueReport(ctx context.Context, report models.AlertReport) error {
	e.queueMu.Lock()
	defer e.queueMu.Unlock()

	queue, err := e.loadQueueOrReset(ctx)
	if err != nil {
		return err
	}
	queue = append(queue, report)
	return e.saveQueue(ctx, queue)
}

// DrainQueue читает очередь и очищает её за одну операцию
func (e *Engine) DrainQueue(ctx context.Context) ([]models.AlertReport, error) {
	e.queueMu.Lock()
	defer e.queueMu.Unlock()

	queue, err := e.loadQueueOrReset(ctx)
	if err != nil {
		return nil, err
	}
	if len(queue) == 0 {
		return queue, nil
	}
	if err := e.saveQueue(ctx, []models.AlertReport{}); err != nil {
		return nil, err
	}
	return queue, nil
}

// LoadQueue читает очередь без изменений
func (e *Engine) LoadQueue(ctx context.Context) ([]models.AlertReport, error) {
	e.queueMu.Lock()
	defer e.queueMu.Unlock()
	return e.loadQueueOrReset(ctx)
}

// ReplaceQueue перезаписывает очередь целиком. Служебная операция для сброса
// или восстановления очереди оператором; синхронизация её не вызывает.
func (e *Engine) ReplaceQueue(ctx context.Context, reports []models.AlertReport) error {
	e.queueMu.Lock()
	defer e.queueMu.Unlock()
	return e.saveQueue(ctx, reports)
}

// RequeueFront возвращает неотправленные сообщения в начало очереди, перед теми,
// что были добавлены пока шла отправка. Возвращает итоговую очередь.
func (e *Engine) RequeueFront(ctx context.Context, reports []models.AlertReport) ([]models.AlertReport, error) {
	e.queueMu.Lock()
	defer e.queueMu.Unlock()

	current, err := e.loadQueueOrReset(ctx)
	if err != nil {
		return nil, err
	}
	if len(reports) == 0 {
		return current, nil
	}
	queue := make([]models.AlertReport, 0, len(reports)+len(current))
	queue = append(queue, reports...)
	queue = append(queue, current...)
	if err := e.saveQueue(ctx, queue); err != nil {
		return nil, err
	}
	return queue, nil
}

func (e *Engine) alertFromReport(report models.AlertReport) models.Alert {
	now := e.now().UTC()

	alert := models.Alert{
		ID:        fmt.Sprintf("sim-%d-%s", now.UnixMilli(), strings.ReplaceAll(uuid.NewString(), "-", "")[:10]),
		Title:     report.Title,
		TitleEn:   report.TitleEn,
		Message:   report.Message,
		MessageEn: report.MessageEn,
		Severity:  report.Severity,
		Timestamp: now,
		Source:    report.Source,
		IsActive:  true,
	}
	if alert.Source == "" {
		alert.Source = defaultReportSource
	}
	if report.Area != "" {
		alert.AffectedAreas = []string{report.Area}
	}
	if report.Pincode != "" {
		alert.Pincodes = []string{report.Pincode}
	}
	return models.NormalizeAlert(alert)
}

// loadCacheOrReset читает кэш; при порче или недоступности хранилища начинает с начального набора
func (e *Engine) loadCacheOrReset(ctx context.Context, log *logrus.Entry) []models.Alert {
	alerts, err := e.loadCache(ctx)
	if err == nil {
		return alerts
	}

	if errors.Is(err, ErrCorrupted) {
		log.WithError(err).Error("Alert cache is corrupted, resetting to seed alerts")
	} else {
		log.WithError(err).Warn("Alert cache is unavailable, resetting to seed alerts")
	}

	seeds := seedAlerts(e.now())
	if saveErr := e.saveCache(ctx, seeds); saveErr != nil {
		log.WithError(saveErr).Warn("Failed to re-persist seed alerts")
	}
	return seeds
}

func (e *Engine) loadCache(ctx context.Context) ([]models.Alert, error) {
	data, err := e.store.Get(ctx, e.cacheKey)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return []models.Alert{}, nil
		}
		return nil, fmt.Errorf("simulation: failed to read alert cache: %w", err)
	}

	var alerts []models.Alert
	if err := json.Unmarshal(data, &alerts); err != nil {
		return nil, fmt.Errorf("%w: alert cache: %v", ErrCorrupted, err)
	}
	if alerts == nil {
		alerts = []models.Alert{}
	}
	return alerts, nil
}

func (e *Engine) saveCache(ctx context.Context, alerts []models.Alert) error {
	if alerts == nil {
		alerts = []models.Alert{}
	}
	data, err := json.Marshal(alerts)
	if err != nil {
		return fmt.Errorf("simulation: failed to marshal alert cache: %w", err)
	}
	if err := e.store.Set(ctx, e.cacheKey, data); err != nil {
		return fmt.Errorf("simulation: failed to write alert cache: %w", err)
	}
	return nil
}

// loadQueueOrReset читает очередь. Испорченная очередь сбрасывается в пустую,
// а недоступное хранилище возвращает ошибку, чтобы не затереть сохраненные сообщения.
func (e *Engine) loadQueueOrReset(ctx context.Context) ([]models.AlertReport, error) {
	data, err := e.store.Get(ctx, e.queueKey)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return []models.AlertReport{}, nil
		}
		return nil, fmt.Errorf("simulation: failed to read report queue: %w", err)
	}

	var queue []models.AlertReport
	if err := json.Unmarshal(data, &queue); err != nil {
		e.logger.WithFields(logrus.Fields{
			"service": "simulation",
			"key":     e.queueKey,
		}).WithError(err).Error("Report queue is corrupted, resetting to empty queue")
		if saveErr := e.saveQueue(ctx, []models.AlertReport{}); saveErr != nil {
			return nil, saveErr
		}
		return []models.AlertReport{}, nil
	}
	if queue == nil {
		queue = []models.AlertReport{}
	}
	return queue, nil
}

func (e *Engine) saveQueue(ctx context.Context, reports []models.AlertReport) error {
	if reports == nil {
		reports = []models.AlertReport{}
	}
	data, err := json.Marshal(reports)
	if err != nil {
		return fmt.Errorf("simulation: failed to marshal report queue: %w", err)
	}
	if err := e.store.Set(ctx, e.queueKey, data); err != nil {
		return fmt.Errorf("simulation: failed to write report queue: %w", err)
	}
	return nil
}

// filterAlerts применяет фильтры: неактивные исключаются по умолчанию, pincode - точное
// совпадение, area - подстрока без учета регистра.
func filterAlerts(alerts []models.Alert, filters models.AlertFilters) []models.Alert {
	area := strings.ToLower(strings.TrimSpace(filters.Area))
	pincode := strings.TrimSpace(filters.Pincode)

	result := make([]models.Alert, 0, len(alerts))
	for _, alert := range alerts {
		if !alert.IsActive && !filters.IncludeInactive {
			continue
		}
		if pincode != "" && !slices.Contains(alert.Pincodes, pincode) {
			continue
		}
		if area != "" && !matchesArea(alert.AffectedAreas, area) {
			continue
		}
		result = append(result, alert)
	}
	return result
}

func matchesArea(areas []string, lowered string) bool {
	for _, a := range areas {
		if strings.Contains(strings.ToLower(a), lowered) {
			return true
		}
	}
	return false
}
