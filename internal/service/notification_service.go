package service

import (
	"context"
	"fmt"

	"afrimigrate-be/internal/pkg/logger"
	"afrimigrate-be/internal/pkg/mailer"
	"afrimigrate-be/pkg/events"
	pktNats "afrimigrate-be/pkg/nats"
)

const notificationDurable = "afrimigrate-notifier"

// EventSubscriber is the part of the NATS subscriber the worker needs.
type EventSubscriber interface {
	Subscribe(ctx context.Context, subject string, durableName string, handler pktNats.EventHandler) error
}

// NotificationService emails the support desk about new add-on requests,
// status changes and visa applications.
type NotificationService struct {
	subscriber EventSubscriber
	mailer     mailer.IEmailService
	supportTo  string
	logger     logger.ILogger
}

func NewNotificationService(sub EventSubscriber, mail mailer.IEmailService, supportTo string, log logger.ILogger) *NotificationService {
	return &NotificationService{
		subscriber: sub,
		mailer:     mail,
		supportTo:  supportTo,
		logger:     log,
	}
}

// Start begins listening to the event bus.
func (s *NotificationService) Start(ctx context.Context) error {
	if s.subscriber == nil {
		return fmt.Errorf("notification worker has no event subscriber")
	}
	if err := s.subscriber.Subscribe(ctx, events.SubjectPrefix+">", notificationDurable, s.HandleEvent); err != nil {
		return err
	}
	s.logger.Info("NOTIFICATION", "Notification worker started", map[string]interface{}{"subject": events.SubjectPrefix + ">"})
	return nil
}

// HandleEvent turns one event into a support desk email. Unknown events are
// acknowledged and ignored; a mail failure is returned so the bus retries.
func (s *NotificationService) HandleEvent(ctx context.Context, event events.Event) error {
	notice, ok := NoticeFor(event)
	if !ok {
		s.logger.Debug("NOTIFICATION", "Ignoring event", map[string]interface{}{"type": event.EventType()})
		return nil
	}
	if s.supportTo == "" {
		s.logger.Warn("NOTIFICATION", "No support desk address configured, dropping notice", map[string]interface{}{"type": event.EventType()})
		return nil
	}
	return s.mailer.SendNotice(s.supportTo, notice)
}

// NoticeFor builds the email for the events the support desk cares about.
func NoticeFor(event events.Event) (mailer.Notice, bool) {
	p := event.Payload()
	at := event.Timestamp().UTC().Format("2006-01-02 15:04 MST")

	switch event.EventType() {
	case events.TypeServiceRequestCreated:
		return mailer.Notice{
			Subject: "New add-on request: " + events.String(p, "title"),
			Heading: "A new add-on request was submitted",
			Fields: [][2]string{
				{"Request", events.String(p, "request_id")},
				{"User", events.String(p, "user_id")},
				{"Type", events.String(p, "type")},
				{"Price", events.String(p, "price")},
				{"Status", events.String(p, "status")},
				{"At", at},
			},
		}, true

	case events.TypeServiceRequestStatusChanged:
		return mailer.Notice{
			Subject: fmt.Sprintf("Add-on request %s is now %s", events.String(p, "title"), events.String(p, "status")),
			Heading: "An add-on request changed status",
			Fields: [][2]string{
				{"Request", events.String(p, "request_id")},
				{"User", events.String(p, "user_id")},
				{"From", events.String(p, "previous_status")},
				{"To", events.String(p, "status")},
				{"At", at},
			},
		}, true

	case events.TypeVisaApplicationCreated:
		return mailer.Notice{
			Subject: fmt.Sprintf("New visa application: %s (%s)", events.String(p, "visa_type"), events.String(p, "country")),
			Heading: "A visa application draft was started",
			Fields: [][2]string{
				{"Application", events.String(p, "application_id")},
				{"User", events.String(p, "user_id")},
				{"Country", events.String(p, "country")},
				{"Visa type", events.String(p, "visa_type")},
				{"At", at},
			},
		}, true
	}
	return mailer.Notice{}, false
}
