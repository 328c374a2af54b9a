package entities

import "fmt"

// InboundMessage is the payload of one webhook call. It lives for a single
// request/response cycle.
type InboundMessage struct {
	Body string
	From string // e.g., "whatsapp:+14155238886"
}

// Intent is the result of classifying an inbound message.
type Intent string

const (
	IntentSweetSpotDeals Intent = "sweet_spot_deals"
	IntentTransferBasics Intent = "transfer_basics"
	IntentAboutService   Intent = "about_service"
	IntentFallback       Intent = "fallback"
)

// LLMRequest is everything sent to the text-generation service for one reply.
type LLMRequest struct {
	SystemInstruction string
	Context           string
	UserMessage       string
}

// Prompt renders the user turn: the context block followed by the question.
func (r LLMRequest) Prompt() string {
	return fmt.Sprintf("Context:\n%s\n\nUser Question:\n%s\n\nTask: Answer the user's question.", r.Context, r.UserMessage)
}

// Reply is what the bot answers with. Err is set when Text is the fallback
// apology instead of model output; it is for logs only and never shown to the
// sender.
type Reply struct {
	Text string
	Err  error
}

func (r Reply) Failed() bool {
	return r.Err != nil
}
