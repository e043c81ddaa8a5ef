package chatRepository

import (
	"context"
	"sync"
	"time"

	"RuleChatbot/internal/api/chat"
	"RuleChatbot/internal/entity"
	contextPkg "RuleChatbot/pkg/context"

	"github.com/sirupsen/logrus"
)

type memorySession struct {
	turns     []entity.Turn
	expiresAt time.Time
}

type memoryRepository struct {
	mu       sync.RWMutex
	sessions map[string]*memorySession
	log      *logrus.Logger
	opts     Options
	now      func() time.Time
}

func (r *memoryRepository) Append(ctx context.Context, sessionID string, turns ...entity.Turn) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.evictExpired(now)

	session, ok := r.sessions[sessionID]
	if !ok {
		session = &memorySession{}
		r.sessions[sessionID] = session
	}

	session.turns = append(session.turns, turns...)
	if over := len(session.turns) - r.opts.MaxTurns; over > 0 {
		session.turns = append([]entity.Turn(nil), session.turns[over:]...)
	}
	session.expiresAt = now.Add(r.opts.TTL)

	r.log.WithFields(logrus.Fields{
		"request_id": contextPkg.GetRequestID(ctx),
		"session_id": sessionID,
		"turns":      len(session.turns),
	}).Debug("Transcript appended")

	return nil
}

func (r *memoryRepository) List(ctx context.Context, sessionID string) ([]entity.Turn, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[sessionID]
	if !ok || !r.now().Before(session.expiresAt) || len(session.turns) == 0 {
		return nil, chat.ErrSessionNotFound
	}

	turns := make([]entity.Turn, len(session.turns))
	copy(turns, session.turns)
	return turns, nil
}

func (r *memoryRepository) Clear(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, sessionID)
	return nil
}

// evictExpired must be called with mu held for writing.
func (r *memoryRepository) evictExpired(now time.Time) {
	for id, session := range r.sessions {
		if !now.Before(session.expiresAt) {
			delete(r.sessions, id)
		}
	}
}
