package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/ambulance_dispatch/internal/apperror"
	"github.com/shenikar/ambulance_dispatch/internal/metrics"
	"github.com/shenikar/ambulance_dispatch/internal/models"
	"github.com/shenikar/ambulance_dispatch/internal/webhook"
)

type options struct {
	now Clock
}

// Option настраивает сервисы
type Option func(*options)

// WithClock подменяет источник текущего времени
func WithClock(now Clock) Option {
	return func(o *options) { o.now = now }
}

func buildOptions(opts []Option) options {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// lifecycle - общая часть машины состояний вызова: проверка перехода,
// запись статуса с CAS, история и действия после фиксации.
type lifecycle struct {
	occurrences OccurrenceRepository
	cache       DetailsCache
	publisher   webhook.Publisher
	logger      *logrus.Logger
	now         Clock
}

// transition выполняется внутри транзакции
func (l *lifecycle) transition(ctx context.Context, o *models.Occurrence, to models.OccurrenceStatus, note string) (*models.HistoryEntry, error) {
	from := o.Status
	if !models.CanTransition(from, to) {
		return nil, &apperror.InvalidTransitionError{From: string(from), To: string(to)}
	}

	o.Status = to
	if err := l.occurrences.UpdateOccurrenceStatus(ctx, o, from); err != nil {
		o.Status = from
		return nil, err
	}

	entry := &models.HistoryEntry{
		OccurrenceID:   o.ID,
		PreviousStatus: from,
		NewStatus:      to,
		ChangedAt:      l.now(),
		Note:           note,
	}
	if err := l.occurrences.AppendHistory(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// committed вызывается после фиксации транзакции. Ошибки кеша и публикации
// только логируются: состояние уже сохранено.
func (l *lifecycle) committed(ctx context.Context, entry *models.HistoryEntry, ambulanceID *uuid.UUID) {
	metrics.IncTransition(string(entry.PreviousStatus), string(entry.NewStatus))

	log := l.logger.WithFields(logrus.Fields{
		"occurrence_id": entry.OccurrenceID,
		"new_status":    entry.NewStatus,
	})

	if err := l.cache.Invalidate(ctx, entry.OccurrenceID); err != nil {
		log.WithError(err).Warn("Failed to invalidate occurrence details cache")
	}

	event := webhook.Event{
		OccurrenceID:   entry.OccurrenceID,
		PreviousStatus: string(entry.PreviousStatus),
		NewStatus:      string(entry.NewStatus),
		AmbulanceID:    ambulanceID,
		Note:           entry.Note,
		Timestamp:      entry.ChangedAt,
	}
	if err := l.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to publish transition event")
	}
}

// invalidateAllDetails сбрасывает все карточки после правки машины или экипажа
func invalidateAllDetails(ctx context.Context, cache DetailsCache, log *logrus.Entry) {
	if err := cache.InvalidateAll(ctx); err != nil {
		log.WithError(err).Warn("Failed to invalidate occurrence details cache")
	}
}
