// Package inventory persists the household food inventory. Items are
// grouped by storage location so the fridge, pantry and freezer views
// can be loaded independently.
package inventory

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"wastenot/planner/internal/config"
	"wastenot/planner/internal/domain"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

type Store interface {
	Add(ctx context.Context, item domain.FoodItem) (domain.FoodItem, error)
	Remove(ctx context.Context, location domain.Location, id string) error
	ItemsByLocation(ctx context.Context, location domain.Location) ([]domain.FoodItem, error)
	All(ctx context.Context) ([]domain.FoodItem, error)
}

type redisStore struct {
	redisClient *redis.Client
	keyPrefix   string
}

func NewRedisStore(redisClient *redis.Client, cfg config.RedisConfig) Store {
	return &redisStore{
		redisClient: redisClient,
		keyPrefix:   cfg.KeyPrefix,
	}
}

func (s *redisStore) key(location domain.Location) string {
	return s.keyPrefix + location.String()
}

func (s *redisStore) Add(ctx context.Context, item domain.FoodItem) (domain.FoodItem, error) {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if item.AddedAt.IsZero() {
		item.AddedAt = time.Now().UTC()
	}

	data, err := json.Marshal(item)
	if err != nil {
		return domain.FoodItem{}, fmt.Errorf("failed to serialize inventory item: %w", err)
	}

	if err := s.redisClient.HSet(ctx, s.key(item.Location), item.ID, data).Err(); err != nil {
		return domain.FoodItem{}, fmt.Errorf("failed to save inventory item %s: %w", item.Name, err)
	}

	log.Debugf("Added %s (%s) to %s", item.Name, item.Quantity, item.Location)
	return item, nil
}

func (s *redisStore) Remove(ctx context.Context, location domain.Location, id string) error {
	removed, err := s.redisClient.HDel(ctx, s.key(location), id).Result()
	if err != nil {
		return fmt.Errorf("failed to remove inventory item %s: %w", id, err)
	}
	if removed == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

func (s *redisStore) ItemsByLocation(ctx context.Context, location domain.Location) ([]domain.FoodItem, error) {
	entries, err := s.redisClient.HGetAll(ctx, s.key(location)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load inventory for %s: %w", location, err)
	}

	items := make([]domain.FoodItem, 0, len(entries))
	for id, data := range entries {
		var item domain.FoodItem
		if err := json.Unmarshal([]byte(data), &item); err != nil {
			log.Warnf("Skipping unreadable inventory entry %s: %v", id, err)
			continue
		}
		items = append(items, item)
	}

	// HGetAll ordering is unspecified; keep renders stable.
	sort.Slice(items, func(i, j int) bool {
		if items[i].AddedAt.Equal(items[j].AddedAt) {
			return items[i].ID < items[j].ID
		}
		return items[i].AddedAt.Before(items[j].AddedAt)
	})

	return items, nil
}

func (s *redisStore) All(ctx context.Context) ([]domain.FoodItem, error) {
	var all []domain.FoodItem
	for _, location := range domain.Locations {
		items, err := s.ItemsByLocation(ctx, location)
		if err != nil {
			return nil, err
		}
		all = append(all, items...)
	}
	return all, nil
}
