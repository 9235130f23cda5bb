package simulation

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/shenikar/chennai_live_alerts/internal/models"
	"github.com/shenikar/chennai_live_alerts/internal/store"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestEngine - вспомогательная функция для создания движка поверх хранилища в памяти
func newTestEngine(t *testing.T) (*Engine, *store.MemoryStore) {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	kv := store.NewMemoryStore()
	return NewEngine(kv, logger, "test"), kv
}

func putAlerts(t *testing.T, kv store.KeyValueStore, alerts []models.Alert) {
	t.Helper()
	data, err := json.Marshal(alerts)
	require.NoError(t, err)
	require.NoError(t, kv.Set(context.Background(), store.Key("test", alertsCacheKey), data))
}

func TestGetAlerts_SeedsEmptyCache(t *testing.T) {
	engine, kv := newTestEngine(t)
	ctx := context.Background()

	alerts, err := engine.GetAlerts(ctx, models.AlertFilters{})

	require.NoError(t, err)
	assert.Len(t, alerts, len(seedSet))

	// Начальный набор сохранен в хранилище с абсолютным временем
	data, err := kv.Get(ctx, store.Key("test", alertsCacheKey))
	require.NoError(t, err)
	var persisted []models.Alert
	require.NoError(t, json.Unmarshal(data, &persisted))
	assert.Len(t, persisted, len(seedSet))
	assert.False(t, persisted[0].Timestamp.IsZero())
}

func TestGetAlerts_TimestampsFrozenAfterSeeding(t *testing.T) {
	engine, _ := newTestEngine(t)
	ctx := context.Background()

	first, err := engine.GetAlerts(ctx, models.AlertFilters{})
	require.NoError(t, err)

	engine.now = func() time.Time { return time.Now().Add(3 * time.Hour) }
	second, err := engine.GetAlerts(ctx, models.AlertFilters{})
	require.NoError(t, err)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.True(t, first[i].Timestamp.Equal(second[i].Timestamp), "timestamp of %s changed", first[i].ID)
	}
}

func TestGetAlerts_SortedNewestFirst(t *testing.T) {
	engine, _ := newTestEngine(t)

	alerts, err := engine.GetAlerts(context.Background(), models.AlertFilters{IncludeInactive: true})
	require.NoError(t, err)

	for i := 1; i < len(alerts); i++ {
		assert.True(t, alerts[i-1].Timestamp.After(alerts[i].Timestamp),
			"%s should be newer than %s", alerts[i-1].ID, alerts[i].ID)
	}
}

func TestGetAlerts_PincodeFilter(t *testing.T) {
	engine, kv := newTestEngine(t)
	now := time.Now().UTC()
	putAlerts(t, kv, []models.Alert{
		{ID: "p", Title: "p", Pincodes: []string{"600099"}, Timestamp: now, IsActive: true},
	})

	alerts, err := engine.GetAlerts(context.Background(), models.AlertFilters{Pincode: "600099"})
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, "p", alerts[0].ID)

	alerts, err = engine.GetAlerts(context.Background(), models.AlertFilters{Pincode: "600098"})
	require.NoError(t, err)
	for _, a := range alerts {
		assert.NotEqual(t, "p", a.ID)
	}
}

func TestGetAlerts_AreaFilterCaseInsensitiveSubstring(t *testing.T) {
	engine, _ := newTestEngine(t)

	alerts, err := engine.GetAlerts(context.Background(), models.AlertFilters{Area: "velACH"})
	require.NoError(t, err)
	require.NotEmpty(t, alerts)
	for _, a := range alerts {
		assert.True(t, matchesArea(a.AffectedAreas, "velach"))
	}
}

func TestGetAlerts_InactiveExcludedByDefault(t *testing.T) {
	engine, kv := newTestEngine(t)
	now := time.Now().UTC()
	putAlerts(t, kv, []models.Alert{
		{ID: "off", Title: "off", Timestamp: now, IsActive: false},
	})

	alerts, err := engine.GetAlerts(context.Background(), models.AlertFilters{})
	require.NoError(t, err)
	for _, a := range alerts {
		assert.NotEqual(t, "off", a.ID)
	}

	alerts, err = engine.GetAlerts(context.Background(), models.AlertFilters{IncludeInactive: true})
	require.NoError(t, err)
	assert.Equal(t, "off", alerts[0].ID)
}

func TestGetAlerts_CorruptedCacheResetsToSeed(t *testing.T) {
	engine, kv := newTestEngine(t)
	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, store.Key("test", alertsCacheKey), []byte("{not json")))

	alerts, err := engine.GetAlerts(ctx, models.AlertFilters{})
	require.NoError(t, err)
	assert.Len(t, alerts, len(seedSet))

	// кэш перезаписан корректными данными
	loaded, err := engine.LoadAlerts(ctx)
	require.NoError(t, err)
	assert.Len(t, loaded, len(seedSet))
}

func TestLoadAlerts_Corrupted(t *testing.T) {
	engine, kv := newTestEngine(t)
	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, store.Key("test", alertsCacheKey), []byte("garbage")))

	_, err := engine.LoadAlerts(ctx)
	assert.ErrorIs(t, err, ErrCorrupted)
}

func TestAcknowledgeAlert_Idempotent(t *testing.T) {
	engine, _ := newTestEngine(t)
	ctx := context.Background()
	_, err := engine.GetAlerts(ctx, models.AlertFilters{})
	require.NoError(t, err)

	first, err := engine.AcknowledgeAlert(ctx, "seed-power-cut-adyar")
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.False(t, first.IsActive)

	second, err := engine.AcknowledgeAlert(ctx, "seed-power-cut-adyar")
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.False(t, second.IsActive)
}

func TestAcknowledgeAlert_StickyAcrossReseed(t *testing.T) {
	engine, _ := newTestEngine(t)
	ctx := context.Background()
	_, err := engine.GetAlerts(ctx, models.AlertFilters{})
	require.NoError(t, err)

	_, err = engine.AcknowledgeAlert(ctx, "seed-cyclone-watch")
	require.NoError(t, err)

	alerts, err := engine.GetAlerts(ctx, models.AlertFilters{IncludeInactive: true})
	require.NoError(t, err)
	for _, a := range alerts {
		if a.ID == "seed-cyclone-watch" {
			assert.False(t, a.IsActive, "seed merge must not resurrect acknowledged alert")
		}
	}

	active, err := engine.GetAlerts(ctx, models.AlertFilters{})
	require.NoError(t, err)
	assert.Len(t, active, len(seedSet)-1)
}

func TestAcknowledgeAlert_NotFound(t *testing.T) {
	engine, _ := newTestEngine(t)

	alert, err := engine.AcknowledgeAlert(context.Background(), "nope")
	assert.NoError(t, err)
	assert.Nil(t, alert)
}

func TestAddAlert(t *testing.T) {
	engine, _ := newTestEngine(t)
	ctx := context.Background()
	_, err := engine.GetAlerts(ctx, models.AlertFilters{})
	require.NoError(t, err)

	report := models.AlertReport{Title: "Flood", Message: "Water rising", Severity: models.SeverityHigh, Pincode: "600020", Area: "Adyar"}
	first, err := engine.AddAlert(ctx, report)
	require.NoError(t, err)
	second, err := engine.AddAlert(ctx, report)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.True(t, first.IsActive)
	assert.Equal(t, "Flood", first.TitleEn)
	assert.Equal(t, defaultReportSource, first.Source)
	assert.Equal(t, []string{"600020"}, first.Pincodes)

	alerts, err := engine.GetAlerts(ctx, models.AlertFilters{Pincode: "600020"})
	require.NoError(t, err)
	ids := map[string]bool{}
	for _, a := range alerts {
		ids[a.ID] = true
	}
	assert.True(t, ids[first.ID])
	assert.True(t, ids[second.ID])
	assert.True(t, ids["seed-power-cut-adyar"], "merge must not overwrite existing cache")
}

func TestQueueHelpers(t *testing.T) {
	engine, _ := newTestEngine(t)
	ctx := context.Background()

	queue, err := engine.LoadQueue(ctx)
	require.NoError(t, err)
	assert.Empty(t, queue)

	require.NoError(t, engine.QueueReport(ctx, models.AlertReport{Title: "1"}))
	require.NoError(t, engine.QueueReport(ctx, models.AlertReport{Title: "2"}))

	queue, err = engine.LoadQueue(ctx)
	require.NoError(t, err)
	assert.Len(t, queue, 2)

	drained, err := engine.DrainQueue(ctx)
	require.NoError(t, err)
	assert.Equal(t, "1", drained[0].Title)
	assert.Equal(t, "2", drained[1].Title)

	queue, err = engine.LoadQueue(ctx)
	require.NoError(t, err)
	assert.Empty(t, queue)

	require.NoError(t, engine.ReplaceQueue(ctx, []models.AlertReport{{Title: "x"}}))
	queue, err = engine.LoadQueue(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.AlertReport{{Title: "x"}}, queue)
}

func TestRequeueFront_KeepsReportsQueuedDuringFlush(t *testing.T) {
	engine, _ := newTestEngine(t)
	ctx := context.Background()

	require.NoError(t, engine.QueueReport(ctx, models.AlertReport{Title: "old"}))
	drained, err := engine.DrainQueue(ctx)
	require.NoError(t, err)
	require.Len(t, drained, 1)

	// новое сообщение пришло, пока шла отправка
	require.NoError(t, engine.QueueReport(ctx, models.AlertReport{Title: "new"}))

	queue, err := engine.RequeueFront(ctx, drained)
	require.NoError(t, err)
	assert.Equal(t, []string{"old", "new"}, []string{queue[0].Title, queue[1].Title})
}

func TestQueue_CorruptedResetsToEmpty(t *testing.T) {
	engine, kv := newTestEngine(t)
	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, store.Key("test", pendingReportsKey), []byte("[{")))

	queue, err := engine.LoadQueue(ctx)
	require.NoError(t, err)
	assert.Empty(t, queue)

	require.NoError(t, engine.QueueReport(ctx, models.AlertReport{Title: "after"}))
	queue, err = engine.LoadQueue(ctx)
	require.NoError(t, err)
	assert.Len(t, queue, 1)
}

type brokenStore struct{}

func (brokenStore) Get(context.Context, string) ([]byte, error) {
	return nil, errors.New("storage unavailable")
}

func (brokenStore) Set(context.Context, string, []byte) error {
	return errors.New("quota exceeded")
}

func TestBrokenStore_StillServesSeeds(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	engine := NewEngine(brokenStore{}, logger, "")

	alerts, err := engine.GetAlerts(context.Background(), models.AlertFilters{})
	require.NoError(t, err)
	assert.Len(t, alerts, len(seedSet))

	// очередь не должна молча теряться при недоступном хранилище
	err = engine.QueueReport(context.Background(), models.AlertReport{Title: "x"})
	assert.Error(t, err)
}

func TestGetAlerts_CanceledContext(t *testing.T) {
	engine, _ := newTestEngine(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := engine.GetAlerts(ctx, models.AlertFilters{})
	assert.ErrorIs(t, err, context.Canceled)
}
