package usecases

import (
	"context"
	"pneuma_bot/internal/entities"
	"pneuma_bot/internal/infrastructure"
	"pneuma_bot/internal/interfaces"
	"pneuma_bot/internal/repository"

	"go.uber.org/zap"
)

// MessageService answers inbound messages: route to an intent, attach that
// intent's context, generate a reply.
type MessageService struct {
	router    *IntentRouter
	catalog   *repository.ContextCatalog
	generator *ResponseGenerator
	logger    *zap.Logger
}

var _ interfaces.MessageProcessor = (*MessageService)(nil)

func NewMessageService(router *IntentRouter, catalog *repository.ContextCatalog, generator *ResponseGenerator, logger *zap.Logger) *MessageService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MessageService{
		router:    router,
		catalog:   catalog,
		generator: generator,
		logger:    logger,
	}
}

// ProcessMessage always yields a reply; a failed generation carries the
// fallback text.
func (s *MessageService) ProcessMessage(ctx context.Context, msg entities.InboundMessage) entities.Reply {
	log := infrastructure.LoggerFromContext(ctx, s.logger)

	intent := s.router.Classify(msg.Body)
	log.Info("received message",
		zap.String("from", msg.From),
		zap.String("body", msg.Body),
		zap.String("intent", string(intent)),
	)

	reply := s.generator.Generate(ctx, msg.Body, s.catalog.Lookup(intent))

	log.Info("generated response",
		zap.String("reply", reply.Text),
		zap.Bool("fallback", reply.Failed()),
	)
	return reply
}
