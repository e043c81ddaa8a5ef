package chatService

import (
	"context"

	"RuleChatbot/internal/api/chat"
	chatRepository "RuleChatbot/internal/api/chat/repository"
	"RuleChatbot/pkg/nlp"
	"RuleChatbot/pkg/utils"

	"github.com/sirupsen/logrus"
)

type IChatService interface {
	// Reply answers one utterance and records it in the session transcript.
	// It only fails on invalid input; transcript errors are logged.
	Reply(ctx context.Context, req chat.ChatRequest) (*chat.ChatResponse, error)
	NewSessionID() string

	GetTranscript(ctx context.Context, sessionID string) (*chat.TranscriptResponse, error)
	ClearTranscript(ctx context.Context, sessionID string) error

	TestNLPProcessing(ctx context.Context, req chat.NLPTestRequest) *chat.NLPTestResponse
	GetIntents(ctx context.Context) []chat.IntentResponse
}

type chatService struct {
	log       *logrus.Logger
	repo      chatRepository.Repository
	responder nlp.IResponder
	utils     utils.IUtils
}

func NewChatService(
	log *logrus.Logger,
	repo chatRepository.Repository,
	responder nlp.IResponder,
	utils utils.IUtils,
) IChatService {
	return &chatService{
		log:       log,
		repo:      repo,
		responder: responder,
		utils:     utils,
	}
}
