package controller

import (
	"context"
	"net/http"
	"testing"

	"afrimigrate-be/internal/constant"
	"afrimigrate-be/internal/dto"
	"afrimigrate-be/internal/pkg/serverutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPreferenceService struct {
	userId  uuid.UUID
	updated *dto.UpdatePreferenceRequest
}

func (s *stubPreferenceService) Get(ctx context.Context, userId uuid.UUID) (*dto.PreferenceResponse, error) {
	s.userId = userId
	return &dto.PreferenceResponse{Locale: constant.DefaultLocale}, nil
}

func (s *stubPreferenceService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdatePreferenceRequest) (*dto.PreferenceResponse, error) {
	s.userId, s.updated = userId, req
	return &dto.PreferenceResponse{Locale: *req.Locale}, nil
}

func (s *stubPreferenceService) Catalog() *dto.CountryCatalogResponse {
	return &dto.CountryCatalogResponse{Origins: constant.AfricanOrigins, Destinations: constant.Destinations}
}

func TestPreferenceController(t *testing.T) {
	stub := &stubPreferenceService{}
	app := newTestApp(NewPreferenceController(stub, serverutils.NewJwtMiddleware(testSecret)))
	userId := uuid.New()
	token := bearer(t, userId, "")

	status, res := do(t, app, http.MethodGet, "/api/catalog/v1/countries", nil, "")
	assert.Equal(t, http.StatusOK, status)
	assert.Len(t, decode[dto.CountryCatalogResponse](t, res.Data).Origins, len(constant.AfricanOrigins))

	status, _ = do(t, app, http.MethodGet, "/api/preferences/v1", nil, "")
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = do(t, app, http.MethodGet, "/api/preferences/v1", nil, token)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, userId, stub.userId)

	status, res = do(t, app, http.MethodPut, "/api/preferences/v1", map[string]string{"locale": "fr"}, token)
	assert.Equal(t, http.StatusOK, status)
	require.NotNil(t, stub.updated)
	assert.Nil(t, stub.updated.OriginCountryCode, "omitted fields stay untouched")
	assert.Equal(t, "fr", decode[dto.PreferenceResponse](t, res.Data).Locale)

	status, res = do(t, app, http.MethodPut, "/api/preferences/v1", map[string]string{"locale": "de"}, token)
	assert.Equal(t, http.StatusBadRequest, status)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "locale", res.Errors[0].Field)
}
