package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"pet-adoption-backend/internal/domain/pet"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	petListKey   = "pets:all"
	petKeyPrefix = "pets:id:"
)

// PetCatalog is a cache-aside pet.Repository in front of the database.
// Redis failures fall through to the database; they never fail a read.
type PetCatalog struct {
	next  pet.Repository
	rdb   *redis.Client
	ttl   time.Duration
	log   *zap.Logger
	group singleflight.Group
}

var _ pet.Repository = (*PetCatalog)(nil)

func NewPetCatalog(next pet.Repository, rdb *redis.Client, ttl time.Duration, log *zap.Logger) *PetCatalog {
	if log == nil {
		log = zap.NewNop()
	}
	return &PetCatalog{next: next, rdb: rdb, ttl: ttl, log: log}
}

func (c *PetCatalog) List(ctx context.Context) ([]pet.Pet, error) {
	var out []pet.Pet
	if c.get(ctx, petListKey, &out) {
		return out, nil
	}
	v, err, _ := c.group.Do(petListKey, func() (any, error) {
		pets, err := c.next.List(ctx)
		if err != nil {
			return nil, err
		}
		c.set(ctx, petListKey, pets)
		return pets, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]pet.Pet), nil
}

func (c *PetCatalog) GetByID(ctx context.Context, id uint64) (*pet.Pet, error) {
	key := petKeyPrefix + strconv.FormatUint(id, 10)
	var p pet.Pet
	if c.get(ctx, key, &p) {
		return &p, nil
	}
	v, err, _ := c.group.Do(key, func() (any, error) {
		got, err := c.next.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		c.set(ctx, key, got)
		return got, nil
	})
	if err != nil {
		return nil, err
	}
	cp := *v.(*pet.Pet)
	return &cp, nil
}

// Invalidate drops every cached catalog entry.
func (c *PetCatalog) Invalidate(ctx context.Context) error {
	keys, err := c.rdb.Keys(ctx, "pets:*").Result()
	if err != nil || len(keys) == 0 {
		return err
	}
	return c.rdb.Del(ctx, keys...).Err()
}

func (c *PetCatalog) get(ctx context.Context, key string, dst any) bool {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn("pet cache read failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal(b, dst); err != nil {
		c.log.Warn("pet cache entry corrupt", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (c *PetCatalog) set(ctx context.Context, key string, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, b, c.ttl).Err(); err != nil {
		c.log.Warn("pet cache write failed", zap.String("key", key), zap.Error(err))
	}
}
