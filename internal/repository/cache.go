package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/shenikar/ambulance_dispatch/internal/models"
	"github.com/shenikar/ambulance_dispatch/internal/service"
)

// resourcesGenKey - общее поколение для правок машин и экипажей
const resourcesGenKey = "occurrence:details:gen"

// DetailsCache - кеш карточек вызовов в Redis.
// Рядом с карточкой хранится версия, с которой она была прочитана из хранилища;
// Get отдаёт карточку, только если версия совпадает с текущими поколениями.
type DetailsCache struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewDetailsCache(client *redis.Client, ttl time.Duration) service.DetailsCache {
	return &DetailsCache{redisClient: client, ttl: ttl}
}

// cachedDetails - значение ключа карточки
type cachedDetails struct {
	Version models.DetailsVersion     `json:"version"`
	Details *models.OccurrenceDetails `json:"details"`
}

func detailsKey(id uuid.UUID) string {
	return fmt.Sprintf("occurrence:details:%s", id.String())
}

func generationKey(id uuid.UUID) string {
	return fmt.Sprintf("occurrence:details:gen:%s", id.String())
}

// Get пытается получить карточку из Redis; промах или устаревшая версия - nil, nil
func (c *DetailsCache) Get(ctx context.Context, id uuid.UUID) (*models.OccurrenceDetails, error) {
	vals, err := c.redisClient.MGet(ctx, detailsKey(id), generationKey(id), resourcesGenKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get occurrence details from cache: %w", err)
	}
	raw, ok := vals[0].(string)
	if !ok {
		return nil, nil
	}

	entry := &cachedDetails{}
	if err := json.Unmarshal([]byte(raw), entry); err != nil {
		return nil, fmt.Errorf("failed to unmarshal occurrence details from cache: %w", err)
	}
	if entry.Details == nil || entry.Details.Occurrence == nil {
		return nil, fmt.Errorf("failed to unmarshal occurrence details from cache: empty entry")
	}

	current, err := parseVersion(vals[1], vals[2])
	if err != nil {
		return nil, err
	}
	if entry.Version != current {
		return nil, nil
	}
	return entry.Details, nil
}

// Version читает текущие поколения карточки
func (c *DetailsCache) Version(ctx context.Context, id uuid.UUID) (models.DetailsVersion, error) {
	vals, err := c.redisClient.MGet(ctx, generationKey(id), resourcesGenKey).Result()
	if err != nil {
		return models.DetailsVersion{}, fmt.Errorf("failed to get occurrence details version: %w", err)
	}
	return parseVersion(vals[0], vals[1])
}

// Set сохраняет карточку с версией, прочитанной до загрузки из хранилища.
// Ключ поколения живёт дольше карточки, иначе счётчик мог бы начаться заново
// и совпасть со старой версией.
func (c *DetailsCache) Set(ctx context.Context, details *models.OccurrenceDetails, version models.DetailsVersion) error {
	val, err := json.Marshal(cachedDetails{Version: version, Details: details})
	if err != nil {
		return fmt.Errorf("failed to marshal occurrence details for cache: %w", err)
	}
	id := details.Occurrence.ID
	_, err = c.redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, detailsKey(id), val, c.ttl)
		pipe.Expire(ctx, generationKey(id), 2*c.ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to set occurrence details in cache: %w", err)
	}
	return nil
}

// Invalidate увеличивает поколение вызова и удаляет карточку
func (c *DetailsCache) Invalidate(ctx context.Context, id uuid.UUID) error {
	_, err := c.redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, generationKey(id))
		pipe.Expire(ctx, generationKey(id), 2*c.ttl)
		pipe.Del(ctx, detailsKey(id))
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to invalidate occurrence details cache: %w", err)
	}
	return nil
}

func (c *DetailsCache) InvalidateAll(ctx context.Context) error {
	if err := c.redisClient.Incr(ctx, resourcesGenKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate occurrence details cache: %w", err)
	}
	return nil
}

// parseVersion разбирает ответ MGET; отсутствующий ключ - поколение 0
func parseVersion(occurrence, resources any) (models.DetailsVersion, error) {
	var (
		v   models.DetailsVersion
		err error
	)
	if v.Occurrence, err = parseGeneration(occurrence); err != nil {
		return v, err
	}
	if v.Resources, err = parseGeneration(resources); err != nil {
		return v, err
	}
	return v, nil
}

func parseGeneration(val any) (int64, error) {
	if val == nil {
		return 0, nil
	}
	s, ok := val.(string)
	if !ok {
		return 0, errors.New("unexpected cache generation type")
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse cache generation: %w", err)
	}
	return n, nil
}

// NoopDetailsCache используется, когда Redis не настроен
type NoopDetailsCache struct{}

func (NoopDetailsCache) Get(context.Context, uuid.UUID) (*models.OccurrenceDetails, error) {
	return nil, nil
}

func (NoopDetailsCache) Version(context.Context, uuid.UUID) (models.DetailsVersion, error) {
	return models.DetailsVersion{}, nil
}

func (NoopDetailsCache) Set(context.Context, *models.OccurrenceDetails, models.DetailsVersion) error {
	return nil
}

func (NoopDetailsCache) Invalidate(context.Context, uuid.UUID) error { return nil }

func (NoopDetailsCache) InvalidateAll(context.Context) error { return nil }
