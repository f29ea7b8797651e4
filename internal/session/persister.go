package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// KeyPrefix is the fixed Redis namespace for persisted session records.
const KeyPrefix = "portal:sesion:"

// Persister abstracts the durable backing store so sessions can live in
// Redis (default) or an in-memory double under test.
type Persister interface {
	// Guardar writes the full record for id, replacing any previous value.
	Guardar(ctx context.Context, id string, s Sesion) error
	// Cargar reads the record for id. Returns (nil, nil) when absent.
	Cargar(ctx context.Context, id string) (*Sesion, error)
	// Eliminar removes the record for id.
	Eliminar(ctx context.Context, id string) error
}

// RedisPersister stores one JSON record per session under KeyPrefix+id.
type RedisPersister struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisPersister(rdb *redis.Client, ttl time.Duration) *RedisPersister {
	return &RedisPersister{rdb: rdb, ttl: ttl}
}

func (p *RedisPersister) Guardar(ctx context.Context, id string, s Sesion) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return p.rdb.Set(ctx, KeyPrefix+id, data, p.ttl).Err()
}

func (p *RedisPersister) Cargar(ctx context.Context, id string) (*Sesion, error) {
	data, err := p.rdb.Get(ctx, KeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var s Sesion
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (p *RedisPersister) Eliminar(ctx context.Context, id string) error {
	return p.rdb.Del(ctx, KeyPrefix+id).Err()
}
