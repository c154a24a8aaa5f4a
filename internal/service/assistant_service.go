package service

import (
	"context"
	"errors"
	"time"

	"afrimigrate-be/internal/constant"
	"afrimigrate-be/internal/dto"
	"afrimigrate-be/internal/pkg/clock"
	"afrimigrate-be/internal/pkg/logger"
	"afrimigrate-be/internal/pkg/metrics"
	"afrimigrate-be/internal/pkg/serverutils"
	"afrimigrate-be/internal/repository/memory"
	"afrimigrate-be/pkg/helpdesk"
	"afrimigrate-be/pkg/store"

	"github.com/google/uuid"
)

// AssistantBroadcaster pushes transcript updates to live clients. It is
// called with the session lock held and must not block.
type AssistantBroadcaster interface {
	PublishToSession(sessionID string, payload interface{})
}

type IAssistantService interface {
	CreateSession(ctx context.Context, req *dto.CreateAssistantSessionRequest) (*dto.AssistantSessionResponse, error)
	Show(ctx context.Context, sessionId string) (*dto.AssistantSessionResponse, error)
	Ask(ctx context.Context, sessionId string, req *dto.AskAssistantRequest) (*dto.AssistantMessage, error)
	Open(ctx context.Context, sessionId string) (*dto.AssistantSessionResponse, error)
	Close(ctx context.Context, sessionId string) (*dto.AssistantSessionResponse, error)
	Exists(sessionId string) bool
	FAQs() []dto.FAQResponse
}

type AssistantOptions struct {
	HelpReplyDelay    time.Duration
	SupportReplyDelay time.Duration
	Clock             clock.Clock
}

type assistantService struct {
	sessionRepo   *memory.SessionRepository
	knowledgeBase *helpdesk.KnowledgeBase
	supportBot    helpdesk.Responder
	broadcaster   AssistantBroadcaster
	metrics       *metrics.AssistantMetrics
	logger        logger.ILogger
	opts          AssistantOptions
}

func NewAssistantService(
	sessionRepo *memory.SessionRepository,
	knowledgeBase *helpdesk.KnowledgeBase,
	broadcaster AssistantBroadcaster,
	metrics *metrics.AssistantMetrics,
	logger logger.ILogger,
	opts AssistantOptions,
) IAssistantService {
	if opts.Clock == nil {
		opts.Clock = clock.Real()
	}
	return &assistantService{
		sessionRepo:   sessionRepo,
		knowledgeBase: knowledgeBase,
		supportBot:    helpdesk.NewKeywordResponder(constant.SupportRules, constant.SupportFallback),
		broadcaster:   broadcaster,
		metrics:       metrics,
		logger:        logger,
		opts:          opts,
	}
}

func (s *assistantService) CreateSession(ctx context.Context, req *dto.CreateAssistantSessionRequest) (*dto.AssistantSessionResponse, error) {
	desk := req.Desk
	if desk == "" {
		desk = constant.DeskHelp
	}

	id := uuid.NewString()
	session, err := s.newDeskSession(desk)
	if err != nil {
		return nil, err
	}
	if s.broadcaster != nil {
		session.OnAppend(func(m helpdesk.Message) {
			s.broadcaster.PublishToSession(id, map[string]interface{}{
				"type": "message",
				"data": toAssistantMessage(m),
			})
		})
	}

	stored := &store.AssistantSession{
		ID:        id,
		Desk:      desk,
		CreatedAt: s.opts.Clock.Now(),
		Session:   session,
	}
	s.sessionRepo.Save(stored)
	s.metrics.ActiveSessions.Inc()

	session.Open()

	s.logger.Info("ASSISTANT", "Session created", map[string]interface{}{"session_id": id, "desk": desk})
	return toSessionResponse(stored), nil
}

func (s *assistantService) newDeskSession(desk string) (*helpdesk.Session, error) {
	onReply := helpdesk.OnReply(func(_ string, reply helpdesk.Reply) {
		s.metrics.ObserveReply(desk, reply.Matched)
	})

	switch desk {
	case constant.DeskHelp:
		return helpdesk.NewSession(s.knowledgeBase,
			helpdesk.WithClock(s.opts.Clock),
			helpdesk.WithReplyDelay(s.opts.HelpReplyDelay),
			onReply,
		), nil
	case constant.DeskSupport:
		return helpdesk.NewSession(s.supportBot,
			helpdesk.WithClock(s.opts.Clock),
			helpdesk.WithReplyDelay(s.opts.SupportReplyDelay),
			helpdesk.WithGreeting(constant.SupportGreeting),
			onReply,
		), nil
	}
	return nil, serverutils.BadRequest("unknown desk %q", desk)
}

func (s *assistantService) Show(ctx context.Context, sessionId string) (*dto.AssistantSessionResponse, error) {
	stored, err := s.find(sessionId)
	if err != nil {
		return nil, err
	}
	return toSessionResponse(stored), nil
}

func (s *assistantService) Ask(ctx context.Context, sessionId string, req *dto.AskAssistantRequest) (*dto.AssistantMessage, error) {
	stored, err := s.find(sessionId)
	if err != nil {
		return nil, err
	}

	sent, err := stored.Session.Ask(req.Content)
	switch {
	case errors.Is(err, helpdesk.ErrEmptyQuery):
		return nil, serverutils.BadRequest("content must not be blank")
	case errors.Is(err, helpdesk.ErrSessionClosed):
		return nil, &serverutils.AppError{Kind: serverutils.ErrConflict, Message: "assistant session is closed"}
	case err != nil:
		return nil, err
	}

	// Refresh the expiry while the conversation is active.
	s.sessionRepo.Save(stored)

	msg := toAssistantMessage(sent)
	return &msg, nil
}

func (s *assistantService) Open(ctx context.Context, sessionId string) (*dto.AssistantSessionResponse, error) {
	stored, err := s.find(sessionId)
	if err != nil {
		return nil, err
	}
	stored.Session.Open()
	s.sessionRepo.Save(stored)
	return toSessionResponse(stored), nil
}

func (s *assistantService) Close(ctx context.Context, sessionId string) (*dto.AssistantSessionResponse, error) {
	stored, err := s.find(sessionId)
	if err != nil {
		return nil, err
	}
	stored.Session.Close()
	return toSessionResponse(stored), nil
}

func (s *assistantService) Exists(sessionId string) bool {
	_, ok := s.sessionRepo.Get(sessionId)
	return ok
}

func (s *assistantService) FAQs() []dto.FAQResponse {
	faqs := s.knowledgeBase.FAQs()
	res := make([]dto.FAQResponse, 0, len(faqs))
	for _, f := range faqs {
		res = append(res, dto.FAQResponse{Question: f.Question, Answer: f.Answer})
	}
	return res
}

func (s *assistantService) find(sessionId string) (*store.AssistantSession, error) {
	stored, ok := s.sessionRepo.Get(sessionId)
	if !ok {
		return nil, serverutils.NotFound("assistant session %s not found", sessionId)
	}
	return stored, nil
}

func toAssistantMessage(m helpdesk.Message) dto.AssistantMessage {
	return dto.AssistantMessage{
		Role:    m.Role,
		Content: m.Content,
		At:      m.At,
		Lines:   helpdesk.Linkify(m.Content),
	}
}

func toSessionResponse(stored *store.AssistantSession) *dto.AssistantSessionResponse {
	msgs := stored.Session.Messages()
	out := make([]dto.AssistantMessage, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, toAssistantMessage(m))
	}
	return &dto.AssistantSessionResponse{
		Id:        stored.ID,
		Desk:      stored.Desk,
		Open:      stored.Session.IsOpen(),
		Pending:   stored.Session.Pending(),
		CreatedAt: stored.CreatedAt,
		Messages:  out,
	}
}
