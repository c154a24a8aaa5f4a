package service

import (
	"context"
	"errors"
	"testing"

	"afrimigrate-be/internal/dto"
	"afrimigrate-be/internal/pkg/serverutils"
	"afrimigrate-be/pkg/profile"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileShowMissing(t *testing.T) {
	svc := NewProfileService(newFakeStore())
	_, err := svc.Show(context.Background(), uuid.New())
	assert.ErrorIs(t, err, serverutils.ErrNotFound)
}

func TestProfileSaveNormalizesAndKeepsIdentity(t *testing.T) {
	svc := NewProfileService(newFakeStore())
	ctx := context.Background()
	userId := uuid.New()

	first, err := svc.Save(ctx, userId, &dto.SaveProfileRequest{Profile: profile.Profile{
		Personal: profile.Personal{Name: "  Amara Okafor "},
		Skills:   []string{"go", " go", "", "sql"},
		Documents: []profile.Document{
			{Name: "cv.pdf", Type: "application/pdf", Size: 2048},
		},
	}})
	require.NoError(t, err)
	assert.Equal(t, "Amara Okafor", first.Personal.Name)
	assert.Equal(t, []string{"go", "sql"}, first.Skills)
	require.Len(t, first.Documents, 1)
	assert.NotEmpty(t, first.Documents[0].Id)
	assert.False(t, first.Documents[0].AddedAt.IsZero())
	assert.Equal(t, []profile.Experience{}, first.Experience)
	assert.Nil(t, first.UpdatedAt)

	second, err := svc.Save(ctx, userId, &dto.SaveProfileRequest{Profile: profile.Profile{
		Personal: profile.Personal{Name: "Amara O."},
	}})
	require.NoError(t, err)
	assert.Equal(t, first.Id, second.Id)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)
	assert.NotNil(t, second.UpdatedAt)
}

func TestProfileSaveRequiresName(t *testing.T) {
	svc := NewProfileService(newFakeStore())

	_, err := svc.Save(context.Background(), uuid.New(), &dto.SaveProfileRequest{})
	require.ErrorIs(t, err, serverutils.ErrBadRequest)

	var appErr *serverutils.AppError
	require.True(t, errors.As(err, &appErr))
	require.Len(t, appErr.Fields, 1)
	assert.Equal(t, "personal.name", appErr.Fields[0].Field)
}

func TestProfileDocuments(t *testing.T) {
	svc := NewProfileService(newFakeStore())
	ctx := context.Background()
	userId := uuid.New()

	_, err := svc.AddDocument(ctx, userId, &dto.AddProfileDocumentRequest{Name: "cv.pdf", Type: "application/pdf", Size: 10})
	assert.ErrorIs(t, err, serverutils.ErrNotFound, "documents need a profile")

	_, err = svc.Save(ctx, userId, &dto.SaveProfileRequest{Profile: profile.Profile{Personal: profile.Personal{Name: "Kofi"}}})
	require.NoError(t, err)

	_, err = svc.AddDocument(ctx, userId, &dto.AddProfileDocumentRequest{Name: "photo.png", Type: "image/png", Size: 10})
	assert.ErrorIs(t, err, serverutils.ErrBadRequest)

	_, err = svc.AddDocument(ctx, userId, &dto.AddProfileDocumentRequest{Name: "big.pdf", Type: "application/pdf", Size: profile.MaxDocumentBytes + 1})
	assert.ErrorIs(t, err, serverutils.ErrBadRequest)

	withDoc, err := svc.AddDocument(ctx, userId, &dto.AddProfileDocumentRequest{Name: "passport.pdf", Size: 4096})
	require.NoError(t, err)
	require.Len(t, withDoc.Documents, 1)

	docId := withDoc.Documents[0].Id
	removed, err := svc.RemoveDocument(ctx, userId, docId)
	require.NoError(t, err)
	assert.Empty(t, removed.Documents)

	_, err = svc.RemoveDocument(ctx, userId, docId)
	assert.ErrorIs(t, err, serverutils.ErrNotFound)
}
