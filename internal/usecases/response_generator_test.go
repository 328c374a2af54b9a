package usecases

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"pneuma_bot/internal/entities"
	"pneuma_bot/internal/infrastructure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestGenerateSuccess(t *testing.T) {
	client := &stubAIClient{reply: "Lisbon for 35k Amex points."}
	gen := NewResponseGenerator(client, zap.NewNop(), GeneratorOptions{})

	reply := gen.Generate(context.Background(), "any deals?", "Today's Sweet-Spot Deals: ...")

	assert.Equal(t, "Lisbon for 35k Amex points.", reply.Text)
	assert.False(t, reply.Failed())

	calls := client.calls()
	require.Len(t, calls, 1)
	assert.Equal(t, SystemInstruction, calls[0].SystemInstruction)
	assert.Equal(t, "Today's Sweet-Spot Deals: ...", calls[0].Context)
	assert.Equal(t, "any deals?", calls[0].UserMessage)
	assert.Equal(t,
		"Context:\nToday's Sweet-Spot Deals: ...\n\nUser Question:\nany deals?\n\nTask: Answer the user's question.",
		calls[0].Prompt())
}

func TestGenerateReturnsModelTextVerbatim(t *testing.T) {
	text := "  *Deal 1*: JFK -> LIS\n\n_35,000 points_  "
	gen := NewResponseGenerator(&stubAIClient{reply: text}, nil, GeneratorOptions{})

	assert.Equal(t, text, gen.Generate(context.Background(), "q", "c").Text)
}

func TestGenerateFailureReturnsFallback(t *testing.T) {
	providerErr := errors.New("429 quota exceeded")
	core, logs := observer.New(zapcore.DebugLevel)
	gen := NewResponseGenerator(&stubAIClient{err: providerErr}, zap.New(core), GeneratorOptions{})

	ctx := infrastructure.WithRequestID(context.Background(), "req-1")
	reply := gen.Generate(ctx, "any deals?", "ctx")

	assert.Equal(t, FallbackReply, reply.Text)
	assert.True(t, reply.Failed())
	assert.ErrorIs(t, reply.Err, providerErr)

	errorLogs := logs.FilterLevelExact(zapcore.ErrorLevel).All()
	require.Len(t, errorLogs, 1)
	assert.Equal(t, "error calling Gemini API", errorLogs[0].Message)
	assert.Equal(t, "req-1", errorLogs[0].ContextMap()["request_id"])
}

func TestGenerateEmptyReplyIsFailure(t *testing.T) {
	gen := NewResponseGenerator(&stubAIClient{reply: ""}, nil, GeneratorOptions{})

	reply := gen.Generate(context.Background(), "q", "c")

	assert.Equal(t, FallbackReply, reply.Text)
	assert.ErrorIs(t, reply.Err, ErrEmptyReply)
}

func TestGenerateRecoversClientPanic(t *testing.T) {
	client := &stubAIClient{respond: func(context.Context, entities.LLMRequest) (string, error) {
		panic("nil candidate")
	}}
	gen := NewResponseGenerator(client, nil, GeneratorOptions{})

	reply := gen.Generate(context.Background(), "q", "c")

	assert.Equal(t, FallbackReply, reply.Text)
	require.Error(t, reply.Err)
	assert.Contains(t, reply.Err.Error(), "nil candidate")
}

func TestGenerateIgnoresCallerCancellation(t *testing.T) {
	client := &stubAIClient{respond: func(ctx context.Context, _ entities.LLMRequest) (string, error) {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		return "still answered", nil
	}}
	gen := NewResponseGenerator(client, nil, GeneratorOptions{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, "still answered", gen.Generate(ctx, "q", "c").Text)
}

func TestGenerateTimeout(t *testing.T) {
	client := &stubAIClient{respond: func(ctx context.Context, _ entities.LLMRequest) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	}}
	gen := NewResponseGenerator(client, nil, GeneratorOptions{Timeout: 20 * time.Millisecond})

	reply := gen.Generate(context.Background(), "q", "c")

	assert.Equal(t, FallbackReply, reply.Text)
	assert.ErrorIs(t, reply.Err, context.DeadlineExceeded)
}

func TestGenerateBoundsConcurrentCalls(t *testing.T) {
	const limit = 2
	var inFlight, peak atomic.Int32
	release := make(chan struct{})

	client := &stubAIClient{respond: func(context.Context, entities.LLMRequest) (string, error) {
		n := inFlight.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		<-release
		inFlight.Add(-1)
		return "ok", nil
	}}
	gen := NewResponseGenerator(client, nil, GeneratorOptions{MaxConcurrent: limit})

	var wg sync.WaitGroup
	replies := make([]entities.Reply, 5)
	for i := range replies {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			replies[i] = gen.Generate(context.Background(), "q", "c")
		}(i)
	}

	require.Eventually(t, func() bool { return inFlight.Load() == limit }, time.Second, 5*time.Millisecond)
	// Give the remaining goroutines a chance to push past the limit if they could.
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, int32(limit), inFlight.Load())

	close(release)
	wg.Wait()

	assert.Equal(t, int32(limit), peak.Load())
	for _, r := range replies {
		assert.Equal(t, "ok", r.Text)
	}
}
