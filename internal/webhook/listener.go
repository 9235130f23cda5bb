package webhook

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/chennai_live_alerts/internal/service"
	"github.com/sirupsen/logrus"
)

const (
	publishTimeout = 2 * time.Second
	eventBuffer    = 256
)

// Listener превращает изменения состояния синхронизации в события вебхука.
// Публикация идет в фоне, Handle не ждет Redis.
type Listener struct {
	publisher WebhookPublisher
	logger    *logrus.Logger
	now       func() time.Time
	events    chan AlertEvent
	done      chan struct{}

	mu          sync.Mutex
	started     bool
	closed      bool
	seen        bool
	lastBackend bool
	lastPending int
}

// NewListener создает Listener. События публикуются после Start.
func NewListener(publisher WebhookPublisher, logger *logrus.Logger) *Listener {
	return &Listener{
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
		events:    make(chan AlertEvent, eventBuffer),
		done:      make(chan struct{}),
	}
}

// Start запускает фоновую публикацию событий
func (l *Listener) Start(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.started || l.closed {
		return
	}
	l.started = true
	go l.run(ctx)
}

// Close прекращает прием событий и ждет публикации уже принятых
func (l *Listener) Close() {
	l.mu.Lock()
	if !l.closed {
		l.closed = true
		close(l.events)
	}
	started := l.started
	l.mu.Unlock()

	if started {
		<-l.done
	}
}

// Handle подходит как service.Listener. Если буфер переполнен, событие отбрасывается.
func (l *Listener) Handle(change service.StateChange) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return
	}

	for _, event := range l.eventsFor(change) {
		select {
		case l.events <- event:
		default:
			l.logger.WithFields(logrus.Fields{
				"component":  "webhook",
				"event_type": event.Type,
			}).Warn("Webhook event buffer full, dropping event")
		}
	}
}

func (l *Listener) run(ctx context.Context) {
	defer close(l.done)
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-l.events:
			if !ok {
				return
			}
			l.publish(ctx, event)
		}
	}
}

// eventsFor вызывается под l.mu
func (l *Listener) eventsFor(change service.StateChange) []AlertEvent {
	state := change.State
	base := AlertEvent{
		ID:             uuid.NewString(),
		IsUsingBackend: state.IsUsingBackend,
		PendingReports: len(state.PendingReports),
		Timestamp:      l.now().UTC(),
	}

	var events []AlertEvent
	switch change.Reason {
	case service.ReasonAcknowledged:
		if change.Alert != nil {
			ev := base
			ev.Type = EventAlertAcknowledged
			ev.Alert = change.Alert
			events = append(events, ev)
		}
	case service.ReasonReported:
		if change.Alert != nil {
			ev := base
			ev.Type = EventAlertReported
			ev.Alert = change.Alert
			events = append(events, ev)
		}
	case service.ReasonFlushed:
		if len(state.PendingReports) < l.lastPending {
			ev := base
			ev.Type = EventReportsFlushed
			events = append(events, ev)
		}
	}

	// первое наблюдение задает исходный режим без события
	if l.seen && state.IsUsingBackend != l.lastBackend {
		ev := base
		ev.Type = EventModeChanged
		events = append(events, ev)
	}
	l.seen = true
	l.lastBackend = state.IsUsingBackend
	l.lastPending = len(state.PendingReports)

	return events
}

func (l *Listener) publish(ctx context.Context, event AlertEvent) {
	log := l.logger.WithFields(logrus.Fields{
		"component":  "webhook",
		"event_type": event.Type,
	})

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	if err := l.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Error("Failed to publish webhook event")
		return
	}
	log.Debug("Webhook event published")
}
