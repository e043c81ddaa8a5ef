package chatRepository

import (
	"context"
	"errors"
	"io"
	"os"
	"strconv"
	"testing"
	"time"

	"RuleChatbot/internal/api/chat"
	"RuleChatbot/internal/entity"
	redisPkg "RuleChatbot/pkg/redis"

	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

type fakeRedis struct {
	lists   map[string][]string
	ttls    map[string]time.Duration
	failing bool
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{lists: map[string][]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) AppendList(_ context.Context, key string, ttl time.Duration, maxLen int, values ...string) error {
	if f.failing {
		return errors.New("connection refused")
	}
	list := append(f.lists[key], values...)
	if maxLen > 0 && len(list) > maxLen {
		list = list[len(list)-maxLen:]
	}
	f.lists[key] = list
	f.ttls[key] = ttl
	return nil
}

func (f *fakeRedis) GetList(_ context.Context, key string) ([]string, error) {
	if f.failing {
		return nil, errors.New("connection refused")
	}
	return f.lists[key], nil
}

func (f *fakeRedis) Delete(_ context.Context, key string) error {
	if f.failing {
		return errors.New("connection refused")
	}
	delete(f.lists, key)
	return nil
}

func (f *fakeRedis) Ping(context.Context) error { return nil }
func (f *fakeRedis) Close() error               { return nil }

func turns(messages ...string) []entity.Turn {
	out := make([]entity.Turn, 0, len(messages))
	for i, m := range messages {
		speaker := entity.SpeakerUser
		if i%2 == 1 {
			speaker = entity.SpeakerBot
		}
		out = append(out, entity.Turn{Speaker: speaker, Message: m, CreatedAt: time.Unix(int64(i), 0).UTC()})
	}
	return out
}

func repositories(t *testing.T) map[string]Repository {
	t.Helper()
	opts := Options{TTL: time.Hour, MaxTurns: 4}
	return map[string]Repository{
		"memory": NewMemory(testLogger(), opts),
		"redis":  NewRedis(newFakeRedis(), testLogger(), opts),
	}
}

func TestRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()

	for name, repo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			if _, err := repo.List(ctx, "s1"); !errors.Is(err, chat.ErrSessionNotFound) {
				t.Fatalf("expected ErrSessionNotFound, got %v", err)
			}

			if err := repo.Append(ctx, "s1", turns("hello", "Hello! How can I help you today?")...); err != nil {
				t.Fatalf("Append: %v", err)
			}

			got, err := repo.List(ctx, "s1")
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			if len(got) != 2 || got[0].Speaker != entity.SpeakerUser || got[1].Speaker != entity.SpeakerBot {
				t.Fatalf("unexpected transcript %+v", got)
			}
			if got[0].Message != "hello" {
				t.Errorf("expected first message hello, got %q", got[0].Message)
			}

			if _, err := repo.List(ctx, "other"); !errors.Is(err, chat.ErrSessionNotFound) {
				t.Errorf("sessions must be isolated, got %v", err)
			}

			if err := repo.Clear(ctx, "s1"); err != nil {
				t.Fatalf("Clear: %v", err)
			}
			if _, err := repo.List(ctx, "s1"); !errors.Is(err, chat.ErrSessionNotFound) {
				t.Errorf("expected cleared session to be gone, got %v", err)
			}
			if err := repo.Clear(ctx, "s1"); err != nil {
				t.Errorf("clearing twice should succeed, got %v", err)
			}
		})
	}
}

func TestRepositoryKeepsLatestTurns(t *testing.T) {
	ctx := context.Background()

	for name, repo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			for i := 0; i < 3; i++ {
				if err := repo.Append(ctx, "s1", turns("q"+strconv.Itoa(i), "a"+strconv.Itoa(i))...); err != nil {
					t.Fatalf("Append: %v", err)
				}
			}

			got, err := repo.List(ctx, "s1")
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			if len(got) != 4 {
				t.Fatalf("expected 4 turns, got %d", len(got))
			}
			if got[0].Message != "q1" || got[3].Message != "a2" {
				t.Errorf("expected oldest turns trimmed, got %+v", got)
			}
		})
	}
}

func TestMemoryRepositoryExpires(t *testing.T) {
	ctx := context.Background()
	repo := NewMemory(testLogger(), Options{TTL: time.Minute}).(*memoryRepository)

	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return now }

	if err := repo.Append(ctx, "s1", turns("hi")...); err != nil {
		t.Fatalf("Append: %v", err)
	}

	now = now.Add(59 * time.Second)
	if _, err := repo.List(ctx, "s1"); err != nil {
		t.Fatalf("expected session alive, got %v", err)
	}

	now = now.Add(2 * time.Second)
	if _, err := repo.List(ctx, "s1"); !errors.Is(err, chat.ErrSessionNotFound) {
		t.Errorf("expected expired session, got %v", err)
	}

	if err := repo.Append(ctx, "s2", turns("hey")...); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if _, ok := repo.sessions["s1"]; ok {
		t.Error("expected expired session to be evicted on write")
	}
}

func TestRedisRepositoryUsesKeyAndTTL(t *testing.T) {
	ctx := context.Background()
	client := newFakeRedis()
	repo := NewRedis(client, testLogger(), Options{})

	if err := repo.Append(ctx, "abc", turns("hi")...); err != nil {
		t.Fatalf("Append: %v", err)
	}

	if _, ok := client.lists["chat:transcript:abc"]; !ok {
		t.Errorf("expected key chat:transcript:abc, got %v", client.lists)
	}
	if client.ttls["chat:transcript:abc"] != DefaultTTL {
		t.Errorf("expected default ttl, got %v", client.ttls["chat:transcript:abc"])
	}
}

func TestRedisRepositorySkipsMalformedTurns(t *testing.T) {
	ctx := context.Background()
	client := newFakeRedis()
	client.lists["chat:transcript:s1"] = []string{"not json", `{"speaker":"You","message":"hi"}`}

	got, err := NewRedis(client, testLogger(), Options{}).List(ctx, "s1")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 1 || got[0].Message != "hi" {
		t.Errorf("unexpected turns %+v", got)
	}
}

func TestRedisRepositoryUnavailable(t *testing.T) {
	ctx := context.Background()
	client := newFakeRedis()
	client.failing = true
	repo := NewRedis(client, testLogger(), Options{})

	if err := repo.Append(ctx, "s1", turns("hi")...); !errors.Is(err, chat.ErrTranscriptUnavailable) {
		t.Errorf("Append: expected ErrTranscriptUnavailable, got %v", err)
	}
	if _, err := repo.List(ctx, "s1"); !errors.Is(err, chat.ErrTranscriptUnavailable) {
		t.Errorf("List: expected ErrTranscriptUnavailable, got %v", err)
	}
	if err := repo.Clear(ctx, "s1"); !errors.Is(err, chat.ErrTranscriptUnavailable) {
		t.Errorf("Clear: expected ErrTranscriptUnavailable, got %v", err)
	}
}

func TestRedisRepositoryLive(t *testing.T) {
	addr := os.Getenv("REDIS_ADDRESS")
	if addr == "" {
		t.Skip("REDIS_ADDRESS not set")
	}

	ctx := context.Background()
	client := redisPkg.New(redisPkg.Options{Address: addr}, testLogger())
	defer client.Close()

	repo := NewRedis(client, testLogger(), Options{TTL: time.Minute, MaxTurns: 10})
	sessionID := "test-" + strconv.FormatInt(time.Now().UnixNano(), 10)
	defer repo.Clear(ctx, sessionID)

	if err := repo.Append(ctx, sessionID, turns("hi", "Hello! How can I help you today?")...); err != nil {
		t.Fatalf("Append: %v", err)
	}
	got, err := repo.List(ctx, sessionID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected 2 turns, got %d", len(got))
	}
}
