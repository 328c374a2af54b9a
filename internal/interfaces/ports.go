package interfaces

import (
	"context"
	"pneuma_bot/internal/entities"
)

// AIClient is the outbound text-generation service.
type AIClient interface {
	GenerateResponse(ctx context.Context, req entities.LLMRequest) (string, error)
}

// MessageProcessor turns an inbound message into the bot's reply. It never
// fails; provider errors come back as a fallback Reply.
type MessageProcessor interface {
	ProcessMessage(ctx context.Context, msg entities.InboundMessage) entities.Reply
}
