package chatService

import (
	"context"

	"RuleChatbot/internal/api/chat"
	contextPkg "RuleChatbot/pkg/context"

	"github.com/sirupsen/logrus"
)

func (s *chatService) TestNLPProcessing(ctx context.Context, req chat.NLPTestRequest) *chat.NLPTestResponse {
	result := s.responder.Classify(req.Text)

	s.log.WithFields(logrus.Fields{
		"request_id":      contextPkg.GetRequestID(ctx),
		"intent":          result.Intent,
		"expanded_tokens": len(result.ExpandedTokens),
	}).Debug("NLP test processed")

	scores := make([]chat.IntentScore, 0, len(result.Scores))
	for _, sc := range result.Scores {
		scores = append(scores, chat.IntentScore{Intent: sc.Intent, Score: sc.Score})
	}

	return &chat.NLPTestResponse{
		Input:    req.Text,
		Intent:   result.Intent,
		Matched:  result.Matched,
		Score:    result.Score,
		Response: result.Response,
		Scores:   scores,
		Processing: chat.ProcessingDetail{
			Tokens:         result.Tokens,
			ExpandedTokens: result.ExpandedTokens,
			ProcessingTime: result.ProcessingTime,
		},
	}
}

func (s *chatService) GetIntents(ctx context.Context) []chat.IntentResponse {
	intents := s.responder.Catalog().Intents()

	out := make([]chat.IntentResponse, 0, len(intents))
	for _, intent := range intents {
		out = append(out, chat.IntentResponse{
			Name:     intent.Name,
			Keywords: intent.Keywords.Sorted(),
			Response: intent.Response,
		})
	}
	return out
}
