package config

import (
	chatRepository "RuleChatbot/internal/api/chat/repository"
	"RuleChatbot/pkg/redis"

	"github.com/sirupsen/logrus"
)

// NewTranscriptRepository stores transcripts in Redis when REDIS_ADDRESS is
// set and in process memory otherwise. The returned client is nil for the
// memory store.
func NewTranscriptRepository(env *Env, log *logrus.Logger) (chatRepository.Repository, redis.IRedis) {
	opts := chatRepository.Options{
		TTL:      env.TranscriptTTL,
		MaxTurns: env.TranscriptMaxTurns,
	}

	if env.RedisAddress == "" {
		log.Warn("REDIS_ADDRESS not set, keeping transcripts in memory")
		return chatRepository.NewMemory(log, opts), nil
	}

	client := redis.New(redis.Options{
		Address:  env.RedisAddress,
		Password: env.RedisPassword,
		DB:       env.RedisDB,
	}, log)

	return chatRepository.NewRedis(client, log, opts), client
}
