// Package redisstore adapts a go-redis client to fiber.Storage so the rate limiter
// can share its counters across replicas.
package redisstore

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "qr-attendance:"

// Storage implements fiber.Storage on top of Redis.
type Storage struct {
	Client *redis.Client
}

// New connects to redis with short timeouts.
func New(addr string) *Storage {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  1 * time.Second,
		WriteTimeout: 1 * time.Second,
	})
	return &Storage{Client: client}
}

// Get returns nil, nil for a missing key, as fiber.Storage requires.
func (s *Storage) Get(key string) ([]byte, error) {
	if key == "" {
		return nil, nil
	}
	val, err := s.Client.Get(context.Background(), keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	return val, err
}

func (s *Storage) Set(key string, val []byte, exp time.Duration) error {
	if key == "" || len(val) == 0 {
		return nil
	}
	return s.Client.Set(context.Background(), keyPrefix+key, val, exp).Err()
}

func (s *Storage) Delete(key string) error {
	if key == "" {
		return nil
	}
	return s.Client.Del(context.Background(), keyPrefix+key).Err()
}

// Reset removes only keys written through this storage.
func (s *Storage) Reset() error {
	ctx := context.Background()
	iter := s.Client.Scan(ctx, 0, keyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := s.Client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

func (s *Storage) Close() error {
	return s.Client.Close()
}

// Ping verifies redis connectivity.
func (s *Storage) Ping(ctx context.Context) error {
	if s == nil || s.Client == nil {
		return errors.New("redis storage not configured")
	}
	return s.Client.Ping(ctx).Err()
}
