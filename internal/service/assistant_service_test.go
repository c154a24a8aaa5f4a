package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"afrimigrate-be/internal/constant"
	"afrimigrate-be/internal/dto"
	"afrimigrate-be/internal/pkg/clock"
	"afrimigrate-be/internal/pkg/logger"
	"afrimigrate-be/internal/pkg/metrics"
	"afrimigrate-be/internal/pkg/serverutils"
	"afrimigrate-be/internal/repository/memory"
	"afrimigrate-be/pkg/helpdesk"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingBroadcaster struct {
	mu       sync.Mutex
	payloads map[string][]interface{}
}

func (b *recordingBroadcaster) PublishToSession(sessionID string, payload interface{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.payloads == nil {
		b.payloads = map[string][]interface{}{}
	}
	b.payloads[sessionID] = append(b.payloads[sessionID], payload)
}

func (b *recordingBroadcaster) count(sessionID string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.payloads[sessionID])
}

type assistantFixture struct {
	service     IAssistantService
	clock       *clock.FakeClock
	metrics     *metrics.AssistantMetrics
	broadcaster *recordingBroadcaster
}

func newAssistantFixture(t *testing.T) assistantFixture {
	t.Helper()
	kb, err := helpdesk.NewKnowledgeBase("", constant.HelpCenterFAQs)
	require.NoError(t, err)

	fake := clock.Fake(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	m := metrics.NewAssistantMetrics(nil)
	b := &recordingBroadcaster{}
	svc := NewAssistantService(memory.NewSessionRepository(time.Hour, nil), kb, b, m, logger.NewNop(), AssistantOptions{
		HelpReplyDelay:    helpdesk.DefaultReplyDelay,
		SupportReplyDelay: 800 * time.Millisecond,
		Clock:             fake,
	})
	return assistantFixture{service: svc, clock: fake, metrics: m, broadcaster: b}
}

func TestAssistantCreateSessionGreets(t *testing.T) {
	f := newAssistantFixture(t)

	res, err := f.service.CreateSession(context.Background(), &dto.CreateAssistantSessionRequest{})
	require.NoError(t, err)

	assert.Equal(t, constant.DeskHelp, res.Desk)
	assert.True(t, res.Open)
	require.Len(t, res.Messages, 1)
	assert.Equal(t, helpdesk.DefaultGreeting, res.Messages[0].Content)
	assert.True(t, f.service.Exists(res.Id))
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.ActiveSessions))
	assert.Equal(t, 1, f.broadcaster.count(res.Id))
}

func TestAssistantAskMatchesFAQ(t *testing.T) {
	f := newAssistantFixture(t)
	ctx := context.Background()
	session, err := f.service.CreateSession(ctx, &dto.CreateAssistantSessionRequest{Desk: constant.DeskHelp})
	require.NoError(t, err)

	sent, err := f.service.Ask(ctx, session.Id, &dto.AskAssistantRequest{Content: "  how do I upgrade?  "})
	require.NoError(t, err)
	assert.Equal(t, helpdesk.RoleUser, sent.Role)
	assert.Equal(t, "how do I upgrade?", sent.Content)

	shown, err := f.service.Show(ctx, session.Id)
	require.NoError(t, err)
	assert.Equal(t, 1, shown.Pending)

	f.clock.Advance(helpdesk.DefaultReplyDelay)

	shown, err = f.service.Show(ctx, session.Id)
	require.NoError(t, err)
	require.Len(t, shown.Messages, 3)
	assert.Equal(t, 0, shown.Pending)
	assert.Contains(t, shown.Messages[2].Content, "Q: How do I upgrade to Premium?")
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.Replies.WithLabelValues(constant.DeskHelp, metrics.OutcomeMatched)))
	assert.Equal(t, 3, f.broadcaster.count(session.Id))
}

func TestAssistantFallbackCarriesQuickLinks(t *testing.T) {
	f := newAssistantFixture(t)
	ctx := context.Background()
	session, err := f.service.CreateSession(ctx, &dto.CreateAssistantSessionRequest{})
	require.NoError(t, err)

	_, err = f.service.Ask(ctx, session.Id, &dto.AskAssistantRequest{Content: "zzz qqq"})
	require.NoError(t, err)
	f.clock.Advance(helpdesk.DefaultReplyDelay)

	shown, err := f.service.Show(ctx, session.Id)
	require.NoError(t, err)
	reply := shown.Messages[len(shown.Messages)-1]
	assert.Equal(t, helpdesk.FallbackReply, reply.Content)

	var routes []helpdesk.Route
	for _, line := range reply.Lines {
		for _, s := range line {
			if s.IsRoute() {
				routes = append(routes, s.Route)
			}
		}
	}
	assert.Equal(t, helpdesk.Routes, routes)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.Replies.WithLabelValues(constant.DeskHelp, metrics.OutcomeFallback)))
}

func TestAssistantSupportDesk(t *testing.T) {
	f := newAssistantFixture(t)
	ctx := context.Background()
	session, err := f.service.CreateSession(ctx, &dto.CreateAssistantSessionRequest{Desk: constant.DeskSupport})
	require.NoError(t, err)
	assert.Equal(t, constant.SupportGreeting, session.Messages[0].Content)

	_, err = f.service.Ask(ctx, session.Id, &dto.AskAssistantRequest{Content: "hello"})
	require.NoError(t, err)

	f.clock.Advance(helpdesk.DefaultReplyDelay)
	shown, _ := f.service.Show(ctx, session.Id)
	assert.Equal(t, 1, shown.Pending)

	f.clock.Advance(800 * time.Millisecond)
	shown, _ = f.service.Show(ctx, session.Id)
	assert.Equal(t, 0, shown.Pending)
	assert.Len(t, shown.Messages, 3)
}

func TestAssistantAskErrors(t *testing.T) {
	f := newAssistantFixture(t)
	ctx := context.Background()
	session, err := f.service.CreateSession(ctx, &dto.CreateAssistantSessionRequest{})
	require.NoError(t, err)

	_, err = f.service.Ask(ctx, session.Id, &dto.AskAssistantRequest{Content: "   "})
	assert.ErrorIs(t, err, serverutils.ErrBadRequest)

	_, err = f.service.Ask(ctx, "missing", &dto.AskAssistantRequest{Content: "hi"})
	assert.ErrorIs(t, err, serverutils.ErrNotFound)

	closed, err := f.service.Close(ctx, session.Id)
	require.NoError(t, err)
	assert.False(t, closed.Open)

	_, err = f.service.Ask(ctx, session.Id, &dto.AskAssistantRequest{Content: "hi"})
	assert.ErrorIs(t, err, serverutils.ErrConflict)

	reopened, err := f.service.Open(ctx, session.Id)
	require.NoError(t, err)
	assert.True(t, reopened.Open)
	assert.Len(t, reopened.Messages, 1, "reopening does not greet twice")
}

func TestAssistantUnknownDesk(t *testing.T) {
	f := newAssistantFixture(t)
	_, err := f.service.CreateSession(context.Background(), &dto.CreateAssistantSessionRequest{Desk: "sales"})
	assert.ErrorIs(t, err, serverutils.ErrBadRequest)
}

func TestAssistantFAQs(t *testing.T) {
	f := newAssistantFixture(t)
	faqs := f.service.FAQs()
	require.Len(t, faqs, len(constant.HelpCenterFAQs))
	assert.Equal(t, constant.HelpCenterFAQs[0].Question, faqs[0].Question)
}
