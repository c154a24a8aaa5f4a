package service

import (
	"context"
	"errors"
	"time"

	"afrimigrate-be/internal/dto"
	"afrimigrate-be/internal/entity"
	"afrimigrate-be/internal/pkg/logger"
	"afrimigrate-be/internal/pkg/serverutils"
	"afrimigrate-be/internal/repository/specification"
	"afrimigrate-be/internal/repository/unitofwork"
	"afrimigrate-be/pkg/addons"
	"afrimigrate-be/pkg/events"

	"github.com/google/uuid"
)

type IServiceRequestService interface {
	Catalog() []dto.AddonCatalogItem
	Create(ctx context.Context, userId uuid.UUID, premium bool, req *dto.CreateServiceRequestRequest) (*dto.ServiceRequestResponse, error)
	List(ctx context.Context, userId uuid.UUID, requestType string) ([]*dto.ServiceRequestResponse, error)
	UpdateStatus(ctx context.Context, userId uuid.UUID, req *dto.UpdateServiceRequestStatusRequest) (*dto.ServiceRequestResponse, error)
}

type serviceRequestService struct {
	uowFactory unitofwork.RepositoryFactory
	publisher  events.Publisher
	logger     logger.ILogger
}

func NewServiceRequestService(uowFactory unitofwork.RepositoryFactory, publisher events.Publisher, logger logger.ILogger) IServiceRequestService {
	return &serviceRequestService{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger,
	}
}

func (s *serviceRequestService) Catalog() []dto.AddonCatalogItem {
	types := []addons.RequestType{addons.TypeDocument, addons.TypeConsultation, addons.TypeLanguage, addons.TypeSupport, addons.TypeReferral}
	items := make([]dto.AddonCatalogItem, 0, len(types))
	for _, t := range types {
		var cents *int64
		if price, ok := addons.Prices[t]; ok {
			cents = &price
		}
		items = append(items, dto.AddonCatalogItem{
			Type:        string(t),
			PriceCents:  cents,
			Price:       addons.FormatPrice(cents),
			PremiumOnly: t == addons.TypeSupport,
		})
	}
	return items
}

func (s *serviceRequestService) Create(ctx context.Context, userId uuid.UUID, premium bool, req *dto.CreateServiceRequestRequest) (*dto.ServiceRequestResponse, error) {
	order, err := addons.Prepare(addons.Draft{
		Type:            addons.RequestType(req.Type),
		DocumentType:    req.DocumentType,
		Description:     req.Description,
		Files:           req.Files,
		Datetime:        req.Datetime,
		DurationMinutes: req.DurationMinutes,
		PackageName:     req.PackageName,
		Level:           req.Level,
		Channel:         req.Channel,
		Provider:        req.Provider,
	}, premium)
	switch {
	case errors.Is(err, addons.ErrPremiumOnly):
		return nil, &serverutils.AppError{Kind: serverutils.ErrForbidden, Message: err.Error()}
	case err != nil:
		return nil, serverutils.BadRequest("%s", err.Error())
	}

	sr := entity.ServiceRequest{
		Id:         uuid.New(),
		UserId:     userId,
		Type:       string(order.Type),
		Title:      order.Title,
		PriceCents: order.PriceCents,
		Status:     string(order.Status),
		Details:    order.Details,
		CreatedAt:  time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ServiceRequestRepository().Create(ctx, &sr); err != nil {
		return nil, err
	}

	s.publish(ctx, events.TypeServiceRequestCreated, &sr)
	return toServiceRequestResponse(&sr), nil
}

func (s *serviceRequestService) List(ctx context.Context, userId uuid.UUID, requestType string) ([]*dto.ServiceRequestResponse, error) {
	specs := []specification.Specification{
		specification.UserOwnedBy{UserID: userId},
		specification.NewestFirst{},
	}
	if requestType != "" {
		specs = append(specs, specification.ByRequestType{Type: requestType})
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	requests, err := uow.ServiceRequestRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.ServiceRequestResponse, 0, len(requests))
	for _, r := range requests {
		res = append(res, toServiceRequestResponse(r))
	}
	return res, nil
}

func (s *serviceRequestService) UpdateStatus(ctx context.Context, userId uuid.UUID, req *dto.UpdateServiceRequestStatusRequest) (*dto.ServiceRequestResponse, error) {
	if !addons.ValidStatus(addons.Status(req.Status)) {
		return nil, serverutils.BadRequest("invalid status %q", req.Status)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	sr, err := uow.ServiceRequestRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if sr == nil {
		return nil, serverutils.NotFound("service request not found")
	}
	if sr.Status == req.Status {
		return toServiceRequestResponse(sr), nil
	}

	now := time.Now()
	previous := sr.Status
	sr.Status = req.Status
	sr.UpdatedAt = &now
	if err := uow.ServiceRequestRepository().Update(ctx, sr); err != nil {
		return nil, err
	}

	s.publish(ctx, events.TypeServiceRequestStatusChanged, sr, "previous_status", previous)
	return toServiceRequestResponse(sr), nil
}

// publish never fails the request; the row is already stored.
func (s *serviceRequestService) publish(ctx context.Context, eventType string, sr *entity.ServiceRequest, extra ...string) {
	data := map[string]interface{}{
		"request_id": sr.Id.String(),
		"user_id":    sr.UserId.String(),
		"type":       sr.Type,
		"title":      sr.Title,
		"status":     sr.Status,
		"price":      addons.FormatPrice(sr.PriceCents),
	}
	for i := 0; i+1 < len(extra); i += 2 {
		data[extra[i]] = extra[i+1]
	}

	if err := s.publisher.Publish(ctx, events.New(eventType, data)); err != nil {
		s.logger.Warn("ADDONS", "Failed to publish service request event", map[string]interface{}{
			"request_id": sr.Id.String(),
			"event":      eventType,
			"error":      err.Error(),
		})
	}
}

func toServiceRequestResponse(sr *entity.ServiceRequest) *dto.ServiceRequestResponse {
	details := sr.Details
	if details == nil {
		details = map[string]interface{}{}
	}
	return &dto.ServiceRequestResponse{
		Id:         sr.Id,
		Type:       sr.Type,
		Title:      sr.Title,
		PriceCents: sr.PriceCents,
		Price:      addons.FormatPrice(sr.PriceCents),
		Status:     sr.Status,
		Details:    details,
		CreatedAt:  sr.CreatedAt,
		UpdatedAt:  sr.UpdatedAt,
	}
}
