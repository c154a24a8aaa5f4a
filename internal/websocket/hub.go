package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"afrimigrate-be/internal/constant"
	"afrimigrate-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const outboundBuffer = 256

// envelope is what travels over Redis between instances.
type envelope struct {
	Origin    string          `json:"origin"`
	SessionID string          `json:"session_id"`
	Message   json.RawMessage `json:"message"`
}

// Hub fans assistant transcript updates out to the websocket clients
// watching a session, on this instance and, through Redis, on the others.
type Hub struct {
	// Registered clients: session id -> watchers (several tabs may follow
	// the same conversation).
	clients map[string][]*Client

	register   chan *Client
	unregister chan *Client
	outbound   chan envelope

	mu sync.RWMutex

	// Redis connection for cross-instance communication
	rdb      *redis.Client
	instance string

	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		outbound:   make(chan envelope, outboundBuffer),
		clients:    make(map[string][]*Client),
		rdb:        rdb,
		instance:   uuid.NewString(),
		logger:     log,
	}
}

// Run processes registrations and outbound messages until ctx is done.
func (h *Hub) Run(ctx context.Context) {
	if h.rdb != nil {
		go h.subscribeToRedis(ctx)
	}

	for {
		select {
		case <-ctx.Done():
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.SessionID] = append(h.clients[client.SessionID], client)
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"session_id": client.SessionID})

		case client := <-h.unregister:
			h.remove(client)

		case env := <-h.outbound:
			h.deliver(env.SessionID, env.Message)
			h.publishToRedis(ctx, env)
		}
	}
}

// PublishToSession queues payload for every client watching sessionID. It
// never blocks; when the queue is full the update is dropped and clients
// recover it by reloading the transcript.
func (h *Hub) PublishToSession(sessionID string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		h.logger.Error("Hub", "Failed to encode payload", map[string]interface{}{"session_id": sessionID, "error": err})
		return
	}

	select {
	case h.outbound <- envelope{Origin: h.instance, SessionID: sessionID, Message: data}:
	default:
		h.logger.Warn("Hub", "Outbound queue full, dropping update", map[string]interface{}{"session_id": sessionID})
	}
}

// Watchers is the number of local clients following sessionID.
func (h *Hub) Watchers(sessionID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[sessionID])
}

func (h *Hub) remove(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	clients, ok := h.clients[client.SessionID]
	if !ok {
		return
	}
	for i, c := range clients {
		if c == client {
			h.clients[client.SessionID] = append(clients[:i], clients[i+1:]...)
			close(client.Send)
			break
		}
	}
	if len(h.clients[client.SessionID]) == 0 {
		delete(h.clients, client.SessionID)
		h.logger.Info("Hub", "Session has no more watchers", map[string]interface{}{"session_id": client.SessionID})
	}
}

func (h *Hub) deliver(sessionID string, data []byte) {
	var stalled []*Client

	// Sends happen under the read lock so remove cannot close a channel
	// mid-send.
	h.mu.RLock()
	for _, client := range h.clients[sessionID] {
		select {
		case client.Send <- data:
		default:
			stalled = append(stalled, client)
		}
	}
	h.mu.RUnlock()

	for _, client := range stalled {
		h.logger.Warn("Hub", "Client send buffer full, disconnecting", map[string]interface{}{"session_id": sessionID})
		h.remove(client)
	}
}

func (h *Hub) publishToRedis(ctx context.Context, env envelope) {
	if h.rdb == nil {
		return
	}
	payload, err := json.Marshal(env)
	if err != nil {
		return
	}
	if err := h.rdb.Publish(ctx, constant.AssistantEventsChannel, payload).Err(); err != nil {
		h.logger.Warn("Hub", "Redis publish failed", map[string]interface{}{"session_id": env.SessionID, "error": err.Error()})
	}
}

// subscribeToRedis relays updates published by other instances to the
// local watchers of the same session.
func (h *Hub) subscribeToRedis(ctx context.Context) {
	pubsub := h.rdb.Subscribe(ctx, constant.AssistantEventsChannel)
	defer pubsub.Close()

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var env envelope
			if err := json.Unmarshal([]byte(msg.Payload), &env); err != nil {
				h.logger.Warn("Hub", "Redis message parse error", map[string]interface{}{"error": err.Error()})
				continue
			}
			if env.Origin == h.instance {
				continue
			}
			h.deliver(env.SessionID, env.Message)
		}
	}
}
