// Package redis implements the document store on Redis, using pub/sub to
// notify watchers in every process sharing the instance.
package redis

import (
	"context"
	"log/slog"

	"cheeserater/config"
	"cheeserater/internal/domain/repository"
	"cheeserater/internal/errors"

	"github.com/redis/go-redis/v9"
)

type kvStore struct {
	client        *redis.Client
	channelPrefix string
	logger        *slog.Logger
}

// NewClient creates a client from the redis configuration section.
func NewClient(cfg *config.Config) (*redis.Client, error) {
	if cfg.Redis == nil || cfg.Redis.Addr == "" {
		return nil, errors.New("redis address is required for the redis store driver")
	}

	return redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}), nil
}

// NewKVStore wraps client. Change events for key are published on
// "<keyPrefix>:changes:<key>".
func NewKVStore(client *redis.Client, keyPrefix string, logger *slog.Logger) repository.KVStore {
	prefix := "changes:"
	if keyPrefix != "" {
		prefix = keyPrefix + ":changes:"
	}

	return &kvStore{
		client:        client,
		channelPrefix: prefix,
		logger:        logger,
	}
}

func (s *kvStore) channel(key string) string {
	return s.channelPrefix + key
}

func (s *kvStore) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, repository.ErrKeyNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "redis GET %s", key)
	}

	return value, nil
}

// Set stores the value and publishes it in one MULTI/EXEC round trip.
func (s *kvStore) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, key, value, 0)
		pipe.Publish(ctx, s.channel(key), value)

		return nil
	})
	if err != nil {
		return errors.Wrapf(err, "redis SET %s", key)
	}

	return nil
}

func (s *kvStore) Subscribe(ctx context.Context, key string) (<-chan []byte, error) {
	sub := s.client.Subscribe(ctx, s.channel(key))

	// Wait for the subscription to be confirmed so no later write is missed.
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()

		return nil, errors.Wrapf(err, "redis SUBSCRIBE %s", key)
	}

	out := make(chan []byte, 1)
	go func() {
		defer close(out)
		defer func() {
			if err := sub.Close(); err != nil {
				s.logger.Debug("Closing redis subscription failed",
					slog.String("key", key),
					slog.Any("error", err),
				)
			}
		}()

		messages := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}
				select {
				case out <- []byte(msg.Payload):
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}

func (s *kvStore) Close() error {
	return s.client.Close()
}
