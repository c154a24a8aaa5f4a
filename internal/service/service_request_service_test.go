package service

import (
	"context"
	"testing"

	"afrimigrate-be/internal/dto"
	"afrimigrate-be/internal/pkg/logger"
	"afrimigrate-be/internal/pkg/serverutils"
	"afrimigrate-be/pkg/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceRequestCatalog(t *testing.T) {
	svc := NewServiceRequestService(newFakeStore(), events.NopPublisher{}, logger.NewNop())

	items := svc.Catalog()
	require.Len(t, items, 5)
	byType := map[string]dto.AddonCatalogItem{}
	for _, item := range items {
		byType[item.Type] = item
	}
	assert.Equal(t, "$49.00", byType["document"].Price)
	assert.True(t, byType["support"].PremiumOnly)
	assert.Nil(t, byType["referral"].PriceCents)
}

func TestServiceRequestCreate(t *testing.T) {
	store := newFakeStore()
	publisher := &recordingPublisher{}
	svc := NewServiceRequestService(store, publisher, logger.NewNop())
	ctx := context.Background()
	userId := uuid.New()

	res, err := svc.Create(ctx, userId, false, &dto.CreateServiceRequestRequest{Type: "document", DocumentType: "Visa Letter"})
	require.NoError(t, err)
	assert.Equal(t, "Document: Visa Letter", res.Title)
	assert.Equal(t, "payment_pending", res.Status)
	require.NotNil(t, res.PriceCents)
	assert.EqualValues(t, 4900, *res.PriceCents)
	assert.Equal(t, []string{events.TypeServiceRequestCreated}, publisher.types())

	_, err = svc.Create(ctx, userId, false, &dto.CreateServiceRequestRequest{Type: "support", Channel: "callback"})
	assert.ErrorIs(t, err, serverutils.ErrForbidden)

	_, err = svc.Create(ctx, userId, true, &dto.CreateServiceRequestRequest{Type: "support", Channel: "callback"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, userId, false, &dto.CreateServiceRequestRequest{Type: "document"})
	assert.ErrorIs(t, err, serverutils.ErrBadRequest)

	all, err := svc.List(ctx, userId, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	docs, err := svc.List(ctx, userId, "document")
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, res.Id, docs[0].Id)
}

func TestServiceRequestUpdateStatus(t *testing.T) {
	store := newFakeStore()
	publisher := &recordingPublisher{}
	svc := NewServiceRequestService(store, publisher, logger.NewNop())
	ctx := context.Background()
	userId := uuid.New()

	created, err := svc.Create(ctx, userId, false, &dto.CreateServiceRequestRequest{Type: "referral", Provider: "insurance"})
	require.NoError(t, err)
	assert.Equal(t, "pending", created.Status)

	same, err := svc.UpdateStatus(ctx, userId, &dto.UpdateServiceRequestStatusRequest{Id: created.Id, Status: "pending"})
	require.NoError(t, err)
	assert.Nil(t, same.UpdatedAt)

	updated, err := svc.UpdateStatus(ctx, userId, &dto.UpdateServiceRequestStatusRequest{Id: created.Id, Status: "in_progress"})
	require.NoError(t, err)
	assert.Equal(t, "in_progress", updated.Status)
	assert.Equal(t, []string{events.TypeServiceRequestCreated, events.TypeServiceRequestStatusChanged}, publisher.types())
	assert.Equal(t, "pending", publisher.events[1].Payload()["previous_status"])

	_, err = svc.UpdateStatus(ctx, uuid.New(), &dto.UpdateServiceRequestStatusRequest{Id: created.Id, Status: "completed"})
	assert.ErrorIs(t, err, serverutils.ErrNotFound)
}
