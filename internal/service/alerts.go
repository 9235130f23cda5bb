package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/shenikar/chennai_live_alerts/internal/models"
	"github.com/sirupsen/logrus"
)

// ErrAlertNotFound возвращается, когда оповещение не найдено ни в бэкенде, ни в локальном кэше
var ErrAlertNotFound = errors.New("alert not found")

// AlertsTransport определяет контракт клиента удаленного API оповещений
type AlertsTransport interface {
	Enabled() bool
	FetchAlerts(ctx context.Context, filters models.AlertFilters) ([]models.Alert, error)
	AcknowledgeAlert(ctx context.Context, id string) (models.Alert, error)
	SubmitReport(ctx context.Context, report models.AlertReport) (models.Alert, error)
}

// SimulationEngine определяет контракт локального источника оповещений и офлайн-очереди
type SimulationEngine interface {
	GetAlerts(ctx context.Context, filters models.AlertFilters) ([]models.Alert, error)
	AcknowledgeAlert(ctx context.Context, id string) (*models.Alert, error)
	AddAlert(ctx context.Context, report models.AlertReport) (models.Alert, error)
	SaveAlerts(ctx context.Context, alerts []models.Alert) error
	LoadAlerts(ctx context.Context) ([]models.Alert, error)
	QueueReport(ctx context.Context, report models.AlertReport) error
	DrainQueue(ctx context.Context) ([]models.AlertReport, error)
	LoadQueue(ctx context.Context) ([]models.AlertReport, error)
	RequeueFront(ctx context.Context, reports []models.AlertReport) ([]models.AlertReport, error)
}

// AlertService определяет контракт для потребителей состояния оповещений (HTTP-слой)
type AlertService interface {
	State() models.SyncState
	Refresh(ctx context.Context, filters *models.AlertFilters) models.SyncState
	Acknowledge(ctx context.Context, id string) (*models.Alert, error)
	SubmitReport(ctx context.Context, report models.AlertReport) (models.SubmitResult, error)
	GetAlertByID(id string) (models.Alert, bool)
}

// ChangeReason описывает, какое действие изменило состояние
type ChangeReason string

const (
	ReasonRehydrated   ChangeReason = "rehydrated"
	ReasonLoading      ChangeReason = "loading"
	ReasonRefreshed    ChangeReason = "refreshed"
	ReasonAcknowledged ChangeReason = "acknowledged"
	ReasonReported     ChangeReason = "reported"
	ReasonFlushed      ChangeReason = "flushed"
)

// StateChange - уведомление подписчику со снимком нового состояния
type StateChange struct {
	Reason ChangeReason
	State  models.SyncState
	// Alert заполняется для подтверждений и новых сообщений
	Alert *models.Alert
}

// Listener получает уведомления об изменениях состояния
type Listener func(change StateChange)

// SyncController - единственный владелец состояния синхронизации.
// Выбирает источник данных (бэкенд или симуляция), переключается на симуляцию
// при ошибках и досылает офлайн-очередь после восстановления связи.
type SyncController struct {
	transport  AlertsTransport
	simulation SimulationEngine
	logger     *logrus.Logger
	interval   time.Duration
	now        func() time.Time

	mu           sync.RWMutex
	state        models.SyncState
	filters      models.AlertFilters
	generation   uint64
	disposed     bool
	listeners    map[int]Listener
	nextListener int

	// flushMu не дает двум досылкам очереди идти одновременно.
	// queueMu связывает чтение очереди из хранилища с записью PendingReports.
	flushMu sync.Mutex
	queueMu sync.Mutex

	startOnce   sync.Once
	disposeOnce sync.Once
	cancel      context.CancelFunc
	done        chan struct{}
}

// NewSyncController создает контроллер. interval <= 0 отключает автообновление.
func NewSyncController(transport AlertsTransport, simulation SimulationEngine, logger *logrus.Logger, filters models.AlertFilters, interval time.Duration) *SyncController {
	return &SyncController{
		transport:  transport,
		simulation: simulation,
		logger:     logger,
		interval:   interval,
		now:        time.Now,
		state:      models.SyncState{}.Clone(),
		filters:    filters,
		listeners:  make(map[int]Listener),
	}
}

// Start восстанавливает состояние из хранилища, выполняет первое обновление
// и запускает периодическое автообновление
func (c *SyncController) Start(ctx context.Context) {
	c.startOnce.Do(func() {
		c.rehydrate(ctx)
		c.Refresh(ctx, nil)

		c.mu.Lock()
		defer c.mu.Unlock()
		if c.disposed {
			return
		}
		loopCtx, cancel := context.WithCancel(context.Background())
		c.cancel = cancel
		c.done = make(chan struct{})
		go c.autoRefresh(loopCtx)
	})
}

// Dispose останавливает автообновление и отписывает всех слушателей.
// Результаты операций, завершившихся после Dispose, отбрасываются.
func (c *SyncController) Dispose() {
	c.disposeOnce.Do(func() {
		c.mu.Lock()
		c.disposed = true
		c.listeners = make(map[int]Listener)
		cancel, done := c.cancel, c.done
		c.mu.Unlock()

		if cancel != nil {
			cancel()
			<-done
		}
		c.logger.WithFields(logrus.Fields{
			"service": "alerts",
			"method":  "Dispose",
		}).Info("Sync controller disposed")
	})
}

// Subscribe регистрирует слушателя. Возвращает функцию отписки.
func (c *SyncController) Subscribe(listener Listener) func() {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextListener
	c.nextListener++
	c.listeners[id] = listener

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.listeners, id)
	}
}

// State возвращает снимок текущего состояния
func (c *SyncController) State() models.SyncState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state.Clone()
}

// Filters возвращает фильтры последнего обновления
func (c *SyncController) Filters() models.AlertFilters {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filters
}

// GetAlertByID ищет оповещение в текущем состоянии
func (c *SyncController) GetAlertByID(id string) (models.Alert, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, a := range c.state.Alerts {
		if a.ID == id {
			return models.CloneAlerts([]models.Alert{a})[0], true
		}
	}
	return models.Alert{}, false
}

// Refresh загружает оповещения. nil-фильтры означают повтор с последними фильтрами.
// Результат более раннего обновления, завершившегося после более позднего, отбрасывается.
func (c *SyncController) Refresh(ctx context.Context, filters *models.AlertFilters) models.SyncState {
	c.mu.Lock()
	if c.disposed {
		snapshot := c.state.Clone()
		c.mu.Unlock()
		return snapshot
	}
	if filters != nil {
		c.filters = *filters
	}
	current := c.filters
	c.generation++
	gen := c.generation
	c.mu.Unlock()

	log := c.logger.WithFields(logrus.Fields{
		"service":    "alerts",
		"method":     "Refresh",
		"generation": gen,
		"pincode":    current.Pincode,
		"area":       current.Area,
	})
	log.Debug("Refreshing alerts")

	c.applyGeneration(gen, ReasonLoading, nil, event{kind: eventRefreshStarted})

	var events []event
	if c.transport.Enabled() {
		alerts, err := c.transport.FetchAlerts(ctx, current)
		if err == nil {
			alerts = normalizeAlerts(alerts)
			if !c.applyGeneration(gen, ReasonRefreshed, nil, event{kind: eventBackendSucceeded, alerts: alerts, at: c.now()}) {
				log.Debug("Discarding stale backend result")
				return c.State()
			}
			if err := c.simulation.SaveAlerts(ctx, alerts); err != nil {
				log.WithError(err).Warn("Failed to persist backend alerts")
			}
			log.WithField("count", len(alerts)).Info("Alerts refreshed from backend")
			c.flushQueue(ctx)
			return c.State()
		}
		log.WithError(err).Warn("Backend fetch failed, falling back to simulation")
		events = append(events, event{kind: eventBackendFailed})
	}

	alerts, err := c.simulation.GetAlerts(ctx, current)
	if err != nil {
		log.WithError(err).Error("Simulation failed to load alerts")
		events = append(events, event{kind: eventSimulationFailed})
	} else {
		events = append(events, event{kind: eventSimulationLoaded, alerts: alerts, at: c.now()})
	}

	if !c.applyGeneration(gen, ReasonRefreshed, nil, events...) {
		log.Debug("Discarding stale simulation result")
	}
	return c.State()
}

// Acknowledge подтверждает оповещение через бэкенд, а при его недоступности - локально
func (c *SyncController) Acknowledge(ctx context.Context, id string) (*models.Alert, error) {
	log := c.logger.WithFields(logrus.Fields{
		"service":  "alerts",
		"method":   "Acknowledge",
		"alert_id": id,
	})

	if c.backendLive() {
		alert, err := c.transport.AcknowledgeAlert(ctx, id)
		if err == nil {
			if c.apply(ReasonAcknowledged, &alert, event{kind: eventAlertUpdated, alert: alert}) {
				c.persistState(ctx, log)
			}
			log.Info("Alert acknowledged via backend")
			return &alert, nil
		}
		log.WithError(err).Warn("Backend acknowledge failed, falling back to simulation")
		c.apply(ReasonAcknowledged, nil, event{kind: eventDemoted, message: MsgBackendUnavailable})
	}

	local, err := c.simulation.AcknowledgeAlert(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to acknowledge alert locally")
		return nil, fmt.Errorf("service: could not acknowledge alert: %w", err)
	}
	if local == nil {
		log.Warn("Alert not found")
		return nil, ErrAlertNotFound
	}

	c.apply(ReasonAcknowledged, local, event{kind: eventAlertUpdated, alert: *local})
	log.Info("Alert acknowledged locally")
	return local, nil
}

// SubmitReport отправляет сообщение жителя. Без бэкенда сообщение ставится
// в офлайн-очередь и сразу появляется в списке как локальное оповещение.
func (c *SyncController) SubmitReport(ctx context.Context, report models.AlertReport) (models.SubmitResult, error) {
	log := c.logger.WithFields(logrus.Fields{
		"service":  "alerts",
		"method":   "SubmitReport",
		"severity": report.Severity,
		"pincode":  report.Pincode,
	})

	if c.backendLive() {
		alert, err := c.transport.SubmitReport(ctx, report)
		if err == nil {
			if c.apply(ReasonReported, &alert, event{kind: eventAlertAdded, alert: alert}) {
				c.persistState(ctx, log)
			}
			log.WithField("alert_id", alert.ID).Info("Report synced to backend")
			return models.SubmitResult{Status: models.SubmitStatusSynced, Alert: alert}, nil
		}
		log.WithError(err).Warn("Backend submit failed, queueing report")
		c.apply(ReasonReported, nil, event{kind: eventDemoted, message: MsgReportQueued})
	}

	if err := c.simulation.QueueReport(ctx, report); err != nil {
		log.WithError(err).Error("Failed to queue report")
		return models.SubmitResult{}, fmt.Errorf("service: could not queue report: %w", err)
	}

	local, addErr := c.simulation.AddAlert(ctx, report)

	c.queueMu.Lock()
	pending, err := c.simulation.LoadQueue(ctx)
	if err != nil {
		log.WithError(err).Warn("Failed to reload pending queue")
		pending = append(c.State().PendingReports, report)
	}
	if addErr != nil {
		c.apply(ReasonReported, nil, event{kind: eventQueueChanged, pending: pending})
		c.queueMu.Unlock()
		log.WithError(addErr).Error("Failed to add local alert")
		return models.SubmitResult{}, fmt.Errorf("service: could not add local alert: %w", addErr)
	}
	c.apply(ReasonReported, &local,
		event{kind: eventQueueChanged, pending: pending},
		event{kind: eventAlertAdded, alert: local},
	)
	c.queueMu.Unlock()

	log.WithFields(logrus.Fields{
		"alert_id": local.ID,
		"pending":  len(pending),
	}).Info("Report queued offline")
	return models.SubmitResult{Status: models.SubmitStatusQueued, Alert: local}, nil
}

// flushQueue досылает офлайн-очередь в бэкенд. Доставка "хотя бы один раз":
// неотправленные сообщения возвращаются в начало очереди в исходном порядке.
func (c *SyncController) flushQueue(ctx context.Context) {
	c.flushMu.Lock()
	defer c.flushMu.Unlock()

	log := c.logger.WithFields(logrus.Fields{
		"service": "alerts",
		"method":  "flushQueue",
	})

	drained, err := c.simulation.DrainQueue(ctx)
	if err != nil {
		log.WithError(err).Warn("Failed to drain pending queue")
		return
	}
	if len(drained) == 0 {
		c.queueMu.Lock()
		defer c.queueMu.Unlock()
		queue, err := c.simulation.LoadQueue(ctx)
		if err != nil {
			log.WithError(err).Warn("Failed to reload pending queue")
			return
		}
		if len(queue) != len(c.State().PendingReports) {
			c.apply(ReasonFlushed, nil, event{kind: eventQueueChanged, pending: queue})
		}
		return
	}

	var remaining []models.AlertReport
	delivered := 0
	for _, report := range drained {
		if _, err := c.transport.SubmitReport(ctx, report); err != nil {
			log.WithError(err).Warn("Failed to deliver queued report")
			remaining = append(remaining, report)
			continue
		}
		delivered++
	}

	c.queueMu.Lock()
	defer c.queueMu.Unlock()
	queue, err := c.simulation.RequeueFront(ctx, remaining)
	if err != nil {
		log.WithError(err).WithField("lost", len(remaining)).Error("Failed to requeue undelivered reports")
		queue = remaining
	}

	c.apply(ReasonFlushed, nil, event{kind: eventQueueChanged, pending: queue})
	log.WithFields(logrus.Fields{
		"delivered": delivered,
		"remaining": len(queue),
	}).Info("Pending queue flushed")
}

func (c *SyncController) rehydrate(ctx context.Context) {
	log := c.logger.WithFields(logrus.Fields{
		"service": "alerts",
		"method":  "rehydrate",
	})

	var events []event
	alerts, err := c.simulation.LoadAlerts(ctx)
	if err != nil {
		log.WithError(err).Warn("Failed to load cached alerts")
	} else if len(alerts) > 0 {
		includeInactive := c.Filters().IncludeInactive
		visible := make([]models.Alert, 0, len(alerts))
		for _, a := range alerts {
			if a.IsActive || includeInactive {
				visible = append(visible, a)
			}
		}
		models.SortByTimestampDesc(visible)
		events = append(events, event{kind: eventAlertsReplaced, alerts: visible})
	}

	pending, err := c.simulation.LoadQueue(ctx)
	if err != nil {
		log.WithError(err).Warn("Failed to load pending queue")
	} else {
		events = append(events, event{kind: eventQueueChanged, pending: pending})
	}

	if len(events) > 0 {
		c.apply(ReasonRehydrated, nil, events...)
	}
	log.WithFields(logrus.Fields{
		"alerts":  len(alerts),
		"pending": len(pending),
	}).Info("State rehydrated from store")
}

func (c *SyncController) autoRefresh(ctx context.Context) {
	defer close(c.done)
	if c.interval <= 0 {
		return
	}

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.Refresh(ctx, nil)
		}
	}
}

// backendLive сообщает, что последняя операция с бэкендом была успешной
func (c *SyncController) backendLive() bool {
	if !c.transport.Enabled() {
		return false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state.IsUsingBackend
}

// persistState сохраняет текущий список в кэш, чтобы перезапуск видел последние данные
func (c *SyncController) persistState(ctx context.Context, log *logrus.Entry) {
	if err := c.simulation.SaveAlerts(ctx, c.State().Alerts); err != nil {
		log.WithError(err).Warn("Failed to persist alerts")
	}
}

// apply применяет события и уведомляет слушателей. Возвращает false после Dispose.
func (c *SyncController) apply(reason ChangeReason, alert *models.Alert, events ...event) bool {
	return c.commit(func() bool { return true }, reason, alert, events)
}

// applyGeneration применяет события, только если gen - последнее начатое обновление
func (c *SyncController) applyGeneration(gen uint64, reason ChangeReason, alert *models.Alert, events ...event) bool {
	return c.commit(func() bool { return c.generation == gen }, reason, alert, events)
}

func (c *SyncController) commit(guard func() bool, reason ChangeReason, alert *models.Alert, events []event) bool {
	c.mu.Lock()
	if c.disposed || !guard() {
		c.mu.Unlock()
		return false
	}
	for _, ev := range events {
		c.state = transition(c.state, ev)
	}
	change := StateChange{Reason: reason, State: c.state.Clone()}
	if alert != nil {
		copied := models.CloneAlerts([]models.Alert{*alert})[0]
		change.Alert = &copied
	}
	listeners := make([]Listener, 0, len(c.listeners))
	for _, l := range c.listeners {
		listeners = append(listeners, l)
	}
	c.mu.Unlock()

	for _, l := range listeners {
		l(change)
	}
	return true
}
