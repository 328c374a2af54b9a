package usecases

import (
	"context"
	"sync"

	"pneuma_bot/internal/entities"
)

// stubAIClient records every request and answers with reply/err, or with
// respond when it is set.
type stubAIClient struct {
	mu       sync.Mutex
	requests []entities.LLMRequest

	reply   string
	err     error
	respond func(ctx context.Context, req entities.LLMRequest) (string, error)
}

func (s *stubAIClient) GenerateResponse(ctx context.Context, req entities.LLMRequest) (string, error) {
	s.mu.Lock()
	s.requests = append(s.requests, req)
	s.mu.Unlock()

	if s.respond != nil {
		return s.respond(ctx, req)
	}
	return s.reply, s.err
}

func (s *stubAIClient) calls() []entities.LLMRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entities.LLMRequest, len(s.requests))
	copy(out, s.requests)
	return out
}
