package controller

import (
	"context"
	"net/http"
	"testing"

	"afrimigrate-be/internal/dto"
	"afrimigrate-be/internal/pkg/serverutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubServiceRequestService struct {
	userId  uuid.UUID
	premium bool
	created *dto.CreateServiceRequestRequest
	listed  string
	updated *dto.UpdateServiceRequestStatusRequest
}

func (s *stubServiceRequestService) Catalog() []dto.AddonCatalogItem {
	return []dto.AddonCatalogItem{{Type: "referral", Price: "Contact"}}
}

func (s *stubServiceRequestService) Create(ctx context.Context, userId uuid.UUID, premium bool, req *dto.CreateServiceRequestRequest) (*dto.ServiceRequestResponse, error) {
	s.userId, s.premium, s.created = userId, premium, req
	return &dto.ServiceRequestResponse{Id: uuid.New(), Type: req.Type}, nil
}

func (s *stubServiceRequestService) List(ctx context.Context, userId uuid.UUID, requestType string) ([]*dto.ServiceRequestResponse, error) {
	s.userId, s.listed = userId, requestType
	return []*dto.ServiceRequestResponse{}, nil
}

func (s *stubServiceRequestService) UpdateStatus(ctx context.Context, userId uuid.UUID, req *dto.UpdateServiceRequestStatusRequest) (*dto.ServiceRequestResponse, error) {
	s.userId, s.updated = userId, req
	return &dto.ServiceRequestResponse{Id: req.Id, Status: req.Status}, nil
}

func TestAddonController(t *testing.T) {
	stub := &stubServiceRequestService{}
	app := newTestApp(NewAddonController(stub, serverutils.NewJwtMiddleware(testSecret)))
	userId := uuid.New()

	t.Run("catalog is public", func(t *testing.T) {
		status, _ := do(t, app, http.MethodGet, "/api/addons/v1/catalog", nil, "")
		assert.Equal(t, http.StatusOK, status)
	})

	t.Run("requests need a token", func(t *testing.T) {
		status, _ := do(t, app, http.MethodGet, "/api/addons/v1/requests", nil, "")
		assert.Equal(t, http.StatusUnauthorized, status)
	})

	t.Run("create passes the plan through", func(t *testing.T) {
		body := map[string]string{"type": "support", "channel": "callback"}
		status, _ := do(t, app, http.MethodPost, "/api/addons/v1/requests", body, bearer(t, userId, "premium"))
		assert.Equal(t, http.StatusCreated, status)
		assert.Equal(t, userId, stub.userId)
		assert.True(t, stub.premium)
		require.NotNil(t, stub.created)
		assert.Equal(t, "callback", stub.created.Channel)

		status, _ = do(t, app, http.MethodPost, "/api/addons/v1/requests", body, bearer(t, userId, "free"))
		assert.Equal(t, http.StatusCreated, status)
		assert.False(t, stub.premium)
	})

	t.Run("create validates the type", func(t *testing.T) {
		status, res := do(t, app, http.MethodPost, "/api/addons/v1/requests", map[string]string{"type": "visa"}, bearer(t, userId, ""))
		assert.Equal(t, http.StatusBadRequest, status)
		require.Len(t, res.Errors, 1)
		assert.Equal(t, "type", res.Errors[0].Field)
	})

	t.Run("list filters by type", func(t *testing.T) {
		status, _ := do(t, app, http.MethodGet, "/api/addons/v1/requests?type=document", nil, bearer(t, userId, ""))
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "document", stub.listed)
	})

	t.Run("update status", func(t *testing.T) {
		id := uuid.New()
		status, _ := do(t, app, http.MethodPatch, "/api/addons/v1/requests/"+id.String()+"/status", map[string]string{"status": "completed"}, bearer(t, userId, ""))
		assert.Equal(t, http.StatusOK, status)
		require.NotNil(t, stub.updated)
		assert.Equal(t, id, stub.updated.Id)

		status, _ = do(t, app, http.MethodPatch, "/api/addons/v1/requests/not-a-uuid/status", map[string]string{"status": "completed"}, bearer(t, userId, ""))
		assert.Equal(t, http.StatusBadRequest, status)

		status, _ = do(t, app, http.MethodPatch, "/api/addons/v1/requests/"+id.String()+"/status", map[string]string{"status": "lost"}, bearer(t, userId, ""))
		assert.Equal(t, http.StatusBadRequest, status)
	})
}
