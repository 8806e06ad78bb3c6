package facility

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
)

const (
	listKey  = "facilities:all"
	itemKeyF = "facilities:%d"
)

var (
	// ErrEncode возвращается при ошибке сериализации значения кэша
	ErrEncode = errors.New("facility.cache: failed to encode value")

	// ErrRedis возвращается при ошибке обращения к Redis
	ErrRedis = errors.New("facility.cache: redis error")
)

type cachedFacility struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Cache кэш справочника объектов в Redis
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New создает кэш с заданным временем жизни записей
func New(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// GetList возвращает закэшированный список объектов
func (c *Cache) GetList(ctx context.Context) ([]domain.Facility, bool, error) {
	var items []cachedFacility
	ok, err := c.get(ctx, listKey, &items)
	if !ok || err != nil {
		return nil, false, err
	}

	facilities := make([]domain.Facility, 0, len(items))
	for _, item := range items {
		facilities = append(facilities, domain.Facility{ID: item.ID, Name: item.Name})
	}
	return facilities, true, nil
}

// SetList кэширует список объектов
func (c *Cache) SetList(ctx context.Context, facilities []domain.Facility) error {
	items := make([]cachedFacility, 0, len(facilities))
	for _, f := range facilities {
		items = append(items, cachedFacility{ID: f.ID, Name: f.Name})
	}
	return c.set(ctx, listKey, items)
}

// Get возвращает закэшированный объект
func (c *Cache) Get(ctx context.Context, id int64) (*domain.Facility, bool, error) {
	var item cachedFacility
	ok, err := c.get(ctx, itemKey(id), &item)
	if !ok || err != nil {
		return nil, false, err
	}
	return &domain.Facility{ID: item.ID, Name: item.Name}, true, nil
}

// Set кэширует объект
func (c *Cache) Set(ctx context.Context, facility domain.Facility) error {
	return c.set(ctx, itemKey(facility.ID), cachedFacility{ID: facility.ID, Name: facility.Name})
}

func (c *Cache) get(ctx context.Context, key string, out interface{}) (bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: get %s: %v", ErrRedis, key, err)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		// Битая запись считается промахом и будет перезаписана
		return false, nil
	}
	return true, nil
}

func (c *Cache) set(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrEncode, key, err)
	}

	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: set %s: %v", ErrRedis, key, err)
	}
	return nil
}

func itemKey(id int64) string {
	return fmt.Sprintf(itemKeyF, id)
}
