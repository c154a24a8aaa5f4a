package helpdesk

import (
	"errors"
	"strings"
	"sync"
	"time"

	"afrimigrate-be/internal/pkg/clock"
)

const (
	DefaultReplyDelay = 300 * time.Millisecond

	DefaultGreeting = "Hi! I’m your Afrimigrate assistant. Ask me about visas, jobs, pricing, or your profile. I’ll point you to the right place."
)

var (
	ErrEmptyQuery    = errors.New("query is empty")
	ErrSessionClosed = errors.New("assistant session is closed")
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Message struct {
	Role    Role      `json:"role"`
	Content string    `json:"content"`
	At      time.Time `json:"at"`
}

// Observer is called for every message appended to a transcript, in
// transcript order. It runs with the session lock held and must not call
// back into the session.
type Observer func(Message)

type SessionOption func(*Session)

func WithClock(c clock.Clock) SessionOption {
	return func(s *Session) { s.clock = c }
}

func WithReplyDelay(d time.Duration) SessionOption {
	return func(s *Session) { s.delay = d }
}

func WithGreeting(greeting string) SessionOption {
	return func(s *Session) { s.greeting = greeting }
}

// WithCancelOnClose drops replies that are still pending when the session
// is closed. Without it a pending reply is appended after Close, as the
// widget always did.
func WithCancelOnClose() SessionOption {
	return func(s *Session) { s.cancelOnClose = true }
}

// OnReply is told about every reply as it is scheduled.
func OnReply(fn func(query string, reply Reply)) SessionOption {
	return func(s *Session) { s.onReply = fn }
}

type pendingReply struct {
	message Message
	timer   *clock.Timer
	ready   bool
	dropped bool
}

// Session is one assistant conversation. The transcript is append-only and
// each user message gets exactly one reply, released in question order.
type Session struct {
	mu sync.Mutex

	responder     Responder
	clock         clock.Clock
	delay         time.Duration
	greeting      string
	cancelOnClose bool
	onReply       func(string, Reply)

	open      bool
	messages  []Message
	observers []Observer

	nextSeq    uint64
	releaseSeq uint64
	pending    map[uint64]*pendingReply
}

func NewSession(responder Responder, opts ...SessionOption) *Session {
	s := &Session{
		responder: responder,
		clock:     clock.Real(),
		delay:     DefaultReplyDelay,
		greeting:  DefaultGreeting,
		pending:   make(map[uint64]*pendingReply),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OnAppend registers an observer for future messages.
func (s *Session) OnAppend(o Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, o)
}

// Open shows the widget. The greeting is added the first time an empty
// transcript is opened.
func (s *Session) Open() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = true
	if len(s.messages) == 0 && s.greeting != "" {
		s.appendLocked(RoleAssistant, s.greeting)
	}
}

func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = false
	if !s.cancelOnClose {
		return
	}
	for _, p := range s.pending {
		if p.ready {
			continue
		}
		p.dropped = true
		if p.timer != nil {
			p.timer.Stop()
		}
	}
	s.releaseLocked()
}

func (s *Session) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open
}

// Ask appends the user's message and schedules the reply. Blank text is a
// no-op.
func (s *Session) Ask(text string) (Message, error) {
	text = strings.TrimFunc(text, isSpace)
	if text == "" {
		return Message{}, ErrEmptyQuery
	}

	s.mu.Lock()
	if !s.open {
		s.mu.Unlock()
		return Message{}, ErrSessionClosed
	}

	sent := s.appendLocked(RoleUser, text)

	reply := s.responder.Respond(text)
	if s.onReply != nil {
		s.onReply(text, reply)
	}

	seq := s.nextSeq
	s.nextSeq++
	p := &pendingReply{message: Message{Role: RoleAssistant, Content: reply.Content}}
	s.pending[seq] = p
	s.mu.Unlock()

	// Scheduled outside the lock: a zero delay may run deliver inline.
	timer := s.clock.AfterFunc(s.delay, func() { s.deliver(seq) })

	s.mu.Lock()
	p.timer = timer
	s.mu.Unlock()

	return sent, nil
}

// Messages returns a copy of the transcript.
func (s *Session) Messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Pending is the number of replies scheduled but not yet in the transcript.
func (s *Session) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

func (s *Session) deliver(seq uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.pending[seq]
	if !ok || p.dropped {
		return
	}
	p.ready = true
	s.releaseLocked()
}

// releaseLocked appends every settled reply at the head of the queue, so a
// reply never overtakes one that was asked for earlier.
func (s *Session) releaseLocked() {
	for {
		p, ok := s.pending[s.releaseSeq]
		if !ok || !(p.ready || p.dropped) {
			return
		}
		delete(s.pending, s.releaseSeq)
		s.releaseSeq++
		if p.ready {
			s.appendLocked(p.message.Role, p.message.Content)
		}
	}
}

func (s *Session) appendLocked(role Role, content string) Message {
	m := Message{Role: role, Content: content, At: s.clock.Now()}
	s.messages = append(s.messages, m)
	for _, o := range s.observers {
		o(m)
	}
	return m
}
