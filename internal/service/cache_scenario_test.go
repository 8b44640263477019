package service_test

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
	"github.com/shenikar/ambulance_dispatch/internal/repository"
	"github.com/shenikar/ambulance_dispatch/internal/service"
)

func newRedisFixture(t *testing.T) *fixture {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return newFixtureWithCache(t, repository.NewDetailsCache(client, time.Minute))
}

// interleavedOccurrences выполняет afterRead один раз сразу после первого
// чтения вызова: читатель уже держит старое состояние, а переход коммитится
type interleavedOccurrences struct {
	service.OccurrenceRepository
	afterRead func()
}

func (r *interleavedOccurrences) GetOccurrence(ctx context.Context, id uuid.UUID) (*models.Occurrence, error) {
	o, err := r.OccurrenceRepository.GetOccurrence(ctx, id)
	if hook := r.afterRead; hook != nil {
		r.afterRead = nil
		hook()
	}
	return o, err
}

func TestDetails_TransitionDuringLoad(t *testing.T) {
	f := newRedisFixture(t)
	occ := f.open(models.SeverityLow, "centro")

	reads := &interleavedOccurrences{OccurrenceRepository: f.store}
	reader := service.NewOccurrenceService(reads, f.store, f.store, f.store, f.holder, f.cache, f.publisher, f.logger)
	reads.afterRead = func() {
		_, err := f.occurrences.Cancel(f.ctx, occ.ID, "duplicate call")
		require.NoError(t, err)
	}

	// Читатель загрузил OPEN до отмены и записал карточку в кеш после неё
	stale, err := reader.Details(f.ctx, occ.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusOpen, stale.Occurrence.Status)

	// Следующее чтение не получает устаревшую карточку
	details, err := f.occurrences.Details(f.ctx, occ.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, details.Occurrence.Status)
	require.Len(t, details.History, 2)

	// И кеширует актуальную
	details, err = reader.Details(f.ctx, occ.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, details.Occurrence.Status)
}

func TestDetails_AdminWritesInvalidate(t *testing.T) {
	f := newRedisFixture(t)
	amb, team := f.staffed(models.AmbulanceBasic, "norte")
	occ := f.open(models.SeverityLow, "norte")
	_, err := f.dispatch.Dispatch(f.ctx, occ.ID, amb.ID)
	require.NoError(t, err)

	details, err := f.occurrences.Details(f.ctx, occ.ID)
	require.NoError(t, err)
	require.NotNil(t, details.Team)
	assert.Equal(t, team.Description, details.Team.Description)

	t.Run("Team update", func(t *testing.T) {
		team.Description = "Equipe Norte"
		_, err := f.roster.UpdateTeam(f.ctx, team)
		require.NoError(t, err)

		details, err := f.occurrences.Details(f.ctx, occ.ID)
		require.NoError(t, err)
		require.NotNil(t, details.Team)
		assert.Equal(t, "Equipe Norte", details.Team.Description)
	})

	t.Run("Ambulance status", func(t *testing.T) {
		_, err := f.occurrences.Cancel(f.ctx, occ.ID, "test")
		require.NoError(t, err)
		details, err := f.occurrences.Details(f.ctx, occ.ID)
		require.NoError(t, err)
		assert.Equal(t, models.AmbulanceAvailable, details.Ambulance.Status)

		_, err = f.fleet.SetStatus(f.ctx, amb.ID, models.AmbulanceMaintenance)
		require.NoError(t, err)

		details, err = f.occurrences.Details(f.ctx, occ.ID)
		require.NoError(t, err)
		assert.Equal(t, models.AmbulanceMaintenance, details.Ambulance.Status)
	})

	t.Run("Team deletion", func(t *testing.T) {
		require.NoError(t, f.roster.DeleteTeam(f.ctx, team.ID))

		details, err := f.occurrences.Details(f.ctx, occ.ID)
		require.NoError(t, err)
		assert.Nil(t, details.Team)
	})
}
