package chatRepository

import (
	"context"
	"time"

	"RuleChatbot/internal/entity"
	redisPkg "RuleChatbot/pkg/redis"

	"github.com/sirupsen/logrus"
)

const (
	DefaultTTL      = 24 * time.Hour
	DefaultMaxTurns = 200
)

// Repository stores the ordered transcript of each chat session. Sessions
// expire ttl after their last append and keep at most maxTurns turns.
type Repository interface {
	Append(ctx context.Context, sessionID string, turns ...entity.Turn) error
	List(ctx context.Context, sessionID string) ([]entity.Turn, error)
	Clear(ctx context.Context, sessionID string) error
}

type Options struct {
	TTL      time.Duration
	MaxTurns int
}

func (o Options) withDefaults() Options {
	if o.TTL <= 0 {
		o.TTL = DefaultTTL
	}
	if o.MaxTurns <= 0 {
		o.MaxTurns = DefaultMaxTurns
	}
	return o
}

func NewRedis(client redisPkg.IRedis, log *logrus.Logger, opts Options) Repository {
	return &redisRepository{
		client: client,
		log:    log,
		opts:   opts.withDefaults(),
	}
}

func NewMemory(log *logrus.Logger, opts Options) Repository {
	return &memoryRepository{
		sessions: make(map[string]*memorySession),
		log:      log,
		opts:     opts.withDefaults(),
		now:      time.Now,
	}
}
