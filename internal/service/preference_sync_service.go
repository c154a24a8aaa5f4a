package service

import (
	"context"
	"encoding/json"
	"time"

	"afrimigrate-be/internal/dto"
	"afrimigrate-be/internal/entity"
	"afrimigrate-be/internal/pkg/logger"
	"afrimigrate-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
)

const PreferenceSyncTopic = "preference_sync"

const (
	syncAttempts     = 3
	syncRetryBackoff = 200 * time.Millisecond
)

// IPreferenceSyncService moves preference snapshots from the fast store to
// Postgres off the request path.
type IPreferenceSyncService interface {
	Publish(ctx context.Context, snapshot *dto.PreferenceSnapshot) error
	Consume(ctx context.Context) error
}

type preferenceSyncService struct {
	publisher  message.Publisher
	subscriber message.Subscriber
	topicName  string
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewPreferenceSyncService(
	publisher message.Publisher,
	subscriber message.Subscriber,
	uowFactory unitofwork.RepositoryFactory,
	logger logger.ILogger,
) IPreferenceSyncService {
	return &preferenceSyncService{
		publisher:  publisher,
		subscriber: subscriber,
		topicName:  PreferenceSyncTopic,
		uowFactory: uowFactory,
		logger:     logger,
	}
}

func (s *preferenceSyncService) Publish(ctx context.Context, snapshot *dto.PreferenceSnapshot) error {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)
	return s.publisher.Publish(s.topicName, msg)
}

func (s *preferenceSyncService) Consume(ctx context.Context) error {
	messages, err := s.subscriber.Subscribe(ctx, s.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			s.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (s *preferenceSyncService) processMessage(ctx context.Context, msg *message.Message) {
	var snapshot dto.PreferenceSnapshot
	if err := json.Unmarshal(msg.Payload, &snapshot); err != nil {
		s.logger.Error("PREFERENCE_SYNC", "Dropping malformed message", map[string]interface{}{"error": err, "message_id": msg.UUID})
		msg.Ack()
		return
	}
	userId, err := uuid.Parse(snapshot.UserId)
	if err != nil {
		s.logger.Error("PREFERENCE_SYNC", "Dropping message with bad user id", map[string]interface{}{"user_id": snapshot.UserId})
		msg.Ack()
		return
	}

	pref := &entity.UserPreference{
		UserId:                 userId,
		OriginCountryCode:      snapshot.OriginCountryCode,
		DestinationCountryCode: snapshot.DestinationCountryCode,
		Locale:                 snapshot.Locale,
		UpdatedAt:              snapshot.UpdatedAt,
	}

	for attempt := 1; attempt <= syncAttempts; attempt++ {
		err = s.uowFactory.NewUnitOfWork(ctx).PreferenceRepository().Upsert(ctx, pref)
		if err == nil {
			s.logger.Debug("PREFERENCE_SYNC", "Preferences synced", map[string]interface{}{"user_id": snapshot.UserId})
			msg.Ack()
			return
		}
		s.logger.Warn("PREFERENCE_SYNC", "Upsert failed", map[string]interface{}{"user_id": snapshot.UserId, "attempt": attempt, "error": err.Error()})

		select {
		case <-ctx.Done():
			msg.Nack()
			return
		case <-time.After(syncRetryBackoff * time.Duration(attempt)):
		}
	}

	// The fast store still has the value; the next update will sync it.
	s.logger.Error("PREFERENCE_SYNC", "Giving up on preference sync", map[string]interface{}{"user_id": snapshot.UserId, "error": err})
	msg.Ack()
}
