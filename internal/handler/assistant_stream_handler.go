package handler

import (
	"afrimigrate-be/internal/pkg/logger"
	"afrimigrate-be/internal/pkg/serverutils"
	"afrimigrate-be/internal/service"
	internalWS "afrimigrate-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

const localSessionID = "assistant_session_id"

// AssistantStreamHandler upgrades clients to a websocket that receives
// every message appended to one assistant session.
type AssistantStreamHandler struct {
	service service.IAssistantService
	hub     *internalWS.Hub
	logger  logger.ILogger
}

func NewAssistantStreamHandler(service service.IAssistantService, hub *internalWS.Hub, log logger.ILogger) *AssistantStreamHandler {
	return &AssistantStreamHandler{
		service: service,
		hub:     hub,
		logger:  log,
	}
}

func (h *AssistantStreamHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/assistant/v1/sessions/:id/ws", h.Upgrade, websocket.New(h.serve))
}

// Upgrade rejects plain HTTP requests and unknown sessions before the
// handshake.
func (h *AssistantStreamHandler) Upgrade(ctx *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(ctx) {
		return fiber.ErrUpgradeRequired
	}
	id := ctx.Params("id")
	if !h.service.Exists(id) {
		return serverutils.NotFound("assistant session %s not found", id)
	}
	ctx.Locals(localSessionID, id)
	return ctx.Next()
}

func (h *AssistantStreamHandler) serve(c *websocket.Conn) {
	id, _ := c.Locals(localSessionID).(string)
	h.logger.Info("AssistantStream", "Client connected", map[string]interface{}{"session_id": id})
	internalWS.ServeWs(h.hub, c, id)
}
