package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// IRedis exposes the capped, expiring list operations used for chat
// transcripts.
type IRedis interface {
	AppendList(ctx context.Context, key string, ttl time.Duration, maxLen int, values ...string) error
	GetList(ctx context.Context, key string) ([]string, error)
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
	Close() error
}

type Options struct {
	Address  string
	Password string
	DB       int
}

type redisClient struct {
	client *redis.Client
	log    *logrus.Logger
}

// New creates the client and pings once. A failed ping is logged, not
// returned, so the server can start before Redis does.
func New(opts Options, log *logrus.Logger) IRedis {
	log.Info(fmt.Sprintf("Connecting to Redis at %s...", opts.Address))

	client := redis.NewClient(&redis.Options{
		Addr:     opts.Address,
		Password: opts.Password,
		DB:       opts.DB,
	})

	r := &redisClient{client: client, log: log}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := r.Ping(ctx); err != nil {
		log.Error(fmt.Sprintf("Failed to connect to Redis: %v", err))
	} else {
		log.Info("Successfully connected to Redis")
	}

	return r
}

func (r *redisClient) AppendList(ctx context.Context, key string, ttl time.Duration, maxLen int, values ...string) error {
	if len(values) == 0 {
		return nil
	}

	args := make([]interface{}, len(values))
	for i, v := range values {
		args[i] = v
	}

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, key, args...)
		if maxLen > 0 {
			pipe.LTrim(ctx, key, int64(-maxLen), -1)
		}
		if ttl > 0 {
			pipe.Expire(ctx, key, ttl)
		}
		return nil
	})
	if err != nil {
		r.log.Error(fmt.Sprintf("Error appending to list %s: %v", key, err))
		return err
	}

	r.log.Debug(fmt.Sprintf("Appended %d values to list %s", len(values), key))
	return nil
}

func (r *redisClient) GetList(ctx context.Context, key string) ([]string, error) {
	values, err := r.client.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		r.log.Error(fmt.Sprintf("Error reading list %s: %v", key, err))
		return nil, err
	}
	return values, nil
}

func (r *redisClient) Delete(ctx context.Context, key string) error {
	result, err := r.client.Del(ctx, key).Result()
	if err != nil {
		r.log.Error(fmt.Sprintf("Error deleting key %s: %v", key, err))
		return err
	}

	if result == 0 {
		r.log.Debug(fmt.Sprintf("Key %s not found for deletion", key))
	}
	return nil
}

func (r *redisClient) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *redisClient) Close() error {
	return r.client.Close()
}
