package chatRepository

import (
	"context"
	"fmt"

	"RuleChatbot/internal/api/chat"
	"RuleChatbot/internal/entity"
	contextPkg "RuleChatbot/pkg/context"
	redisPkg "RuleChatbot/pkg/redis"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

const transcriptKeyPrefix = "chat:transcript:"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type redisRepository struct {
	client redisPkg.IRedis
	log    *logrus.Logger
	opts   Options
}

func transcriptKey(sessionID string) string {
	return transcriptKeyPrefix + sessionID
}

func (r *redisRepository) Append(ctx context.Context, sessionID string, turns ...entity.Turn) error {
	requestID := contextPkg.GetRequestID(ctx)

	values := make([]string, 0, len(turns))
	for _, turn := range turns {
		raw, err := json.Marshal(turn)
		if err != nil {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to marshal transcript turn")
			return fmt.Errorf("marshal turn: %w", err)
		}
		values = append(values, string(raw))
	}

	if err := r.client.AppendList(ctx, transcriptKey(sessionID), r.opts.TTL, r.opts.MaxTurns, values...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"session_id": sessionID,
			"error":      err.Error(),
		}).Error("Failed to append transcript")
		return fmt.Errorf("%w: %v", chat.ErrTranscriptUnavailable, err)
	}

	return nil
}

func (r *redisRepository) List(ctx context.Context, sessionID string) ([]entity.Turn, error) {
	requestID := contextPkg.GetRequestID(ctx)

	values, err := r.client.GetList(ctx, transcriptKey(sessionID))
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"session_id": sessionID,
			"error":      err.Error(),
		}).Error("Failed to read transcript")
		return nil, fmt.Errorf("%w: %v", chat.ErrTranscriptUnavailable, err)
	}

	if len(values) == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"session_id": sessionID,
		}).Debug("No transcript found for session")
		return nil, chat.ErrSessionNotFound
	}

	turns := make([]entity.Turn, 0, len(values))
	for _, raw := range values {
		var turn entity.Turn
		if err := json.Unmarshal([]byte(raw), &turn); err != nil {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"session_id": sessionID,
				"error":      err.Error(),
			}).Warn("Skipping malformed transcript turn")
			continue
		}
		turns = append(turns, turn)
	}

	return turns, nil
}

func (r *redisRepository) Clear(ctx context.Context, sessionID string) error {
	if err := r.client.Delete(ctx, transcriptKey(sessionID)); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"session_id": sessionID,
			"error":      err.Error(),
		}).Error("Failed to clear transcript")
		return fmt.Errorf("%w: %v", chat.ErrTranscriptUnavailable, err)
	}
	return nil
}
