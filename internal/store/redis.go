package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultMenuTTL — время жизни снимка меню в Redis.
const DefaultMenuTTL = 24 * time.Hour

// RedisSink хранит сырое меню под ключом iiko:menu:<organizationID>.
type RedisSink struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSink подключается к Redis. ttl <= 0 — DefaultMenuTTL.
func NewRedisSink(addr, password string, db int, ttl time.Duration) *RedisSink {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return newRedisSink(client, ttl)
}

func newRedisSink(client *redis.Client, ttl time.Duration) *RedisSink {
	if ttl <= 0 {
		ttl = DefaultMenuTTL
	}
	return &RedisSink{client: client, ttl: ttl}
}

// MenuKey возвращает ключ меню организации.
func MenuKey(organizationID string) string {
	return "iiko:menu:" + organizationID
}

// Name реализует session.MenuSink.
func (s *RedisSink) Name() string { return "Redis" }

// SaveMenu кладёт меню в Redis и возвращает ключ.
func (s *RedisSink) SaveMenu(ctx context.Context, organizationID string, raw []byte) (string, error) {
	key := MenuKey(organizationID)
	if err := s.client.Set(ctx, key, raw, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("redis set %s: %w", key, err)
	}
	return key, nil
}

// LoadMenu возвращает закэшированное меню или ErrMenuNotCached.
func (s *RedisSink) LoadMenu(ctx context.Context, organizationID string) ([]byte, error) {
	data, err := s.client.Get(ctx, MenuKey(organizationID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMenuNotCached
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}
	return data, nil
}

// Ping проверяет соединение.
func (s *RedisSink) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close закрывает соединение.
func (s *RedisSink) Close() error {
	return s.client.Close()
}
