package http

import (
	"encoding/json"
	"net/http"
	"pneuma_bot/internal/entities"
	"pneuma_bot/internal/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const serviceStatus = "Pneuma FAQ Bot is running"

// webhookPayload mirrors the Twilio-style form fields. Key names are case
// sensitive, which encoding/json alone would not enforce.
type webhookPayload struct {
	Body *string `json:"Body" binding:"required"`
	From *string `json:"From" binding:"required"`
}

func (p *webhookPayload) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if err := decodeField(raw, "Body", &p.Body); err != nil {
		return err
	}
	return decodeField(raw, "From", &p.From)
}

type Handler struct {
	processor interfaces.MessageProcessor
	logger    *zap.Logger
}

func NewHandler(processor interfaces.MessageProcessor, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		processor: processor,
		logger:    logger,
	}
}

// NewRouter returns a gin engine with middleware and all routes registered.
func NewRouter(processor interfaces.MessageProcessor, logger *zap.Logger) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := gin.New()
	r.Use(RequestID())
	r.Use(RequestLogger(logger))
	r.Use(gin.Recovery())
	r.Use(SecurityHeaders())
	SetupRoutes(r, NewHandler(processor, logger))
	return r
}

func SetupRoutes(r *gin.Engine, h *Handler) {
	r.GET("/", h.Status)
	r.POST("/webhook", h.HandleWebhook)
	// Path used by the first prototype.
	r.POST("/whatsapp", h.HandleWebhook)
}

// Status is the liveness endpoint.
func (h *Handler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": serviceStatus})
}

// HandleWebhook answers one inbound message. Generation failures still return
// 200 with the fallback text as the reply.
func (h *Handler) HandleWebhook(c *gin.Context) {
	var payload webhookPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		status, msg, details := classifyBindError(err)
		_ = c.Error(err)
		resp := gin.H{"error": msg}
		if len(details) > 0 {
			resp["details"] = details
		}
		c.JSON(status, resp)
		return
	}

	msg := entities.InboundMessage{
		Body: *payload.Body,
		From: *payload.From,
	}

	reply := h.processor.ProcessMessage(c.Request.Context(), msg)
	c.JSON(http.StatusOK, gin.H{"reply": reply.Text})
}
