package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shenikar/ambulance_dispatch/internal/models"
)

func setupTestCache(t *testing.T) (*miniredis.Miniredis, *DetailsCache) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, NewDetailsCache(client, time.Minute).(*DetailsCache)
}

func TestDetailsCache_RoundTrip(t *testing.T) {
	mr, cache := setupTestCache(t)
	ctx := context.Background()
	id := uuid.New()

	got, err := cache.Get(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, got)

	details := &models.OccurrenceDetails{
		Occurrence: &models.Occurrence{ID: id, AreaID: "A", Severity: models.SeverityHigh, Status: models.StatusDispatched},
		Attendance: &models.Attendance{ID: uuid.New(), OccurrenceID: id, Route: []string{"B", "A"}, Distance: 4},
		History: []*models.HistoryEntry{
			{ID: 1, OccurrenceID: id, NewStatus: models.StatusOpen},
			{ID: 2, OccurrenceID: id, PreviousStatus: models.StatusOpen, NewStatus: models.StatusDispatched},
		},
	}
	version, err := cache.Version(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.DetailsVersion{}, version)

	require.NoError(t, cache.Set(ctx, details, version))
	assert.True(t, mr.Exists(detailsKey(id)))
	assert.Equal(t, time.Minute, mr.TTL(detailsKey(id)))

	got, err = cache.Get(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, models.StatusDispatched, got.Occurrence.Status)
	assert.Equal(t, []string{"B", "A"}, got.Attendance.Route)
	assert.Len(t, got.History, 2)

	require.NoError(t, cache.Invalidate(ctx, id))
	assert.False(t, mr.Exists(detailsKey(id)))
}

func TestDetailsCache_Expires(t *testing.T) {
	mr, cache := setupTestCache(t)
	ctx := context.Background()
	id := uuid.New()

	require.NoError(t, cache.Set(ctx, &models.OccurrenceDetails{Occurrence: &models.Occurrence{ID: id}}, models.DetailsVersion{}))
	mr.FastForward(2 * time.Minute)

	got, err := cache.Get(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDetailsCache_CorruptedValue(t *testing.T) {
	mr, cache := setupTestCache(t)
	id := uuid.New()
	require.NoError(t, mr.Set(detailsKey(id), "not json"))

	_, err := cache.Get(context.Background(), id)
	assert.Error(t, err)
}

func TestDetailsCache_LateWriteAfterInvalidate(t *testing.T) {
	mr, cache := setupTestCache(t)
	ctx := context.Background()
	id := uuid.New()

	// Читатель берёт версию и загружает карточку, пока вызов ещё OPEN
	version, err := cache.Version(ctx, id)
	require.NoError(t, err)
	stale := &models.OccurrenceDetails{Occurrence: &models.Occurrence{ID: id, Status: models.StatusOpen}}

	// Параллельная отмена коммитится и сбрасывает кеш раньше, чем читатель пишет
	require.NoError(t, cache.Invalidate(ctx, id))
	require.NoError(t, cache.Set(ctx, stale, version))
	assert.True(t, mr.Exists(detailsKey(id)))

	got, err := cache.Get(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, got, "stale details must not be served after invalidation")

	// Следующее чтение с новой версией снова попадает в кеш
	version, err = cache.Version(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version.Occurrence)
	fresh := &models.OccurrenceDetails{Occurrence: &models.Occurrence{ID: id, Status: models.StatusCancelled}}
	require.NoError(t, cache.Set(ctx, fresh, version))

	got, err = cache.Get(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, models.StatusCancelled, got.Occurrence.Status)
	assert.Equal(t, 2*time.Minute, mr.TTL(generationKey(id)))
}

func TestDetailsCache_InvalidateAll(t *testing.T) {
	_, cache := setupTestCache(t)
	ctx := context.Background()
	first, second := uuid.New(), uuid.New()

	for _, id := range []uuid.UUID{first, second} {
		version, err := cache.Version(ctx, id)
		require.NoError(t, err)
		require.NoError(t, cache.Set(ctx, &models.OccurrenceDetails{Occurrence: &models.Occurrence{ID: id}}, version))
	}

	// Правка экипажа или машины делает недействительными все карточки
	require.NoError(t, cache.InvalidateAll(ctx))

	for _, id := range []uuid.UUID{first, second} {
		got, err := cache.Get(ctx, id)
		require.NoError(t, err)
		assert.Nil(t, got)
	}

	version, err := cache.Version(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, models.DetailsVersion{Occurrence: 0, Resources: 1}, version)
}
