package usecases

import (
	"context"
	"errors"
	"fmt"
	"pneuma_bot/internal/entities"
	"pneuma_bot/internal/infrastructure"
	"pneuma_bot/internal/interfaces"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"
)

var ErrEmptyReply = errors.New("ai client returned an empty reply")

// GeneratorOptions bound outbound calls. Zero values mean no limit and no
// timeout.
type GeneratorOptions struct {
	MaxConcurrent int
	Timeout       time.Duration
}

// ResponseGenerator wraps the AI client and turns every failure into the
// fallback reply.
type ResponseGenerator struct {
	client  interfaces.AIClient
	logger  *zap.Logger
	slots   *semaphore.Weighted
	timeout time.Duration
}

func NewResponseGenerator(client interfaces.AIClient, logger *zap.Logger, opts GeneratorOptions) *ResponseGenerator {
	if logger == nil {
		logger = zap.NewNop()
	}
	g := &ResponseGenerator{
		client:  client,
		logger:  logger,
		timeout: opts.Timeout,
	}
	if opts.MaxConcurrent > 0 {
		g.slots = semaphore.NewWeighted(int64(opts.MaxConcurrent))
	}
	return g
}

// Generate asks the model to answer userMessage from contextBlock. It never
// returns an error: on failure the Reply holds FallbackReply and the cause.
func (g *ResponseGenerator) Generate(ctx context.Context, userMessage, contextBlock string) entities.Reply {
	req := entities.LLMRequest{
		SystemInstruction: SystemInstruction,
		Context:           contextBlock,
		UserMessage:       userMessage,
	}

	text, err := g.call(ctx, req)
	if err != nil {
		infrastructure.LoggerFromContext(ctx, g.logger).Error("error calling Gemini API", zap.Error(err))
		return entities.Reply{Text: FallbackReply, Err: err}
	}
	return entities.Reply{Text: text}
}

func (g *ResponseGenerator) call(ctx context.Context, req entities.LLMRequest) (text string, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("ai client panicked: %v", p)
		}
	}()

	// The sender hanging up does not abort a reply in flight.
	ctx = context.WithoutCancel(ctx)
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	if g.slots != nil {
		if err := g.slots.Acquire(ctx, 1); err != nil {
			return "", fmt.Errorf("waiting for a generation slot: %w", err)
		}
		defer g.slots.Release(1)
	}

	text, err = g.client.GenerateResponse(ctx, req)
	if err != nil {
		return "", err
	}
	if text == "" {
		return "", ErrEmptyReply
	}
	return text, nil
}
