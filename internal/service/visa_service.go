package service

import (
	"context"
	"strings"
	"time"

	"afrimigrate-be/internal/dto"
	"afrimigrate-be/internal/entity"
	"afrimigrate-be/internal/pkg/logger"
	"afrimigrate-be/internal/pkg/serverutils"
	"afrimigrate-be/internal/repository/specification"
	"afrimigrate-be/internal/repository/unitofwork"
	"afrimigrate-be/pkg/events"
	"afrimigrate-be/pkg/visa"

	"github.com/google/uuid"
)

type IVisaService interface {
	Countries() []string
	Requirements(country string) (*visa.CountryRequirements, error)
	CheckEligibility(req *dto.EligibilityRequest) (*dto.EligibilityResponse, error)
	CreateApplication(ctx context.Context, userId uuid.UUID, req *dto.CreateVisaApplicationRequest) (*dto.VisaApplicationResponse, error)
	ListApplications(ctx context.Context, userId uuid.UUID) ([]*dto.VisaApplicationResponse, error)
	UpdateApplicationStatus(ctx context.Context, userId uuid.UUID, req *dto.UpdateVisaApplicationStatusRequest) (*dto.VisaApplicationResponse, error)
}

type visaService struct {
	uowFactory unitofwork.RepositoryFactory
	publisher  events.Publisher
	logger     logger.ILogger
}

func NewVisaService(uowFactory unitofwork.RepositoryFactory, publisher events.Publisher, logger logger.ILogger) IVisaService {
	return &visaService{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger,
	}
}

func (s *visaService) Countries() []string {
	return visa.Countries
}

func (s *visaService) Requirements(country string) (*visa.CountryRequirements, error) {
	req, ok := visa.Requirements(country)
	if !ok {
		return nil, serverutils.NotFound("no visa requirements for %q", country)
	}
	return &req, nil
}

func (s *visaService) CheckEligibility(req *dto.EligibilityRequest) (*dto.EligibilityResponse, error) {
	if _, ok := visa.Requirements(req.TargetCountry); !ok {
		return nil, serverutils.BadRequest("unsupported target country %q", req.TargetCountry)
	}

	accepted, rejected := visa.FilterDocuments(req.Documents)
	assessment := visa.Assess(visa.Profile{
		TargetCountry:   req.TargetCountry,
		YearsExperience: req.YearsExperience,
		LanguageScore:   req.LanguageScore,
		Degree:          strings.TrimSpace(req.Degree),
		DocumentCount:   len(accepted),
	})

	// Without a step the wizard is on its results page.
	step := len(visa.WizardSteps) - 1
	if req.Step != nil {
		step = *req.Step
	}
	if rejected == nil {
		rejected = []string{}
	}

	return &dto.EligibilityResponse{
		Assessment:        assessment,
		AcceptedDocuments: accepted,
		RejectedDocuments: rejected,
		Steps:             visa.WizardSteps,
		Progress:          visa.Progress(step),
	}, nil
}

func (s *visaService) CreateApplication(ctx context.Context, userId uuid.UUID, req *dto.CreateVisaApplicationRequest) (*dto.VisaApplicationResponse, error) {
	name := strings.TrimSpace(req.ApplicantName)
	if name == "" {
		name = visa.DefaultApplicantName
	}

	app := entity.VisaApplication{
		Id:            uuid.New(),
		UserId:        userId,
		Country:       req.Country,
		VisaType:      req.VisaType,
		ApplicantName: name,
		Status:        string(visa.StatusDraft),
		CreatedAt:     time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.VisaApplicationRepository().Create(ctx, &app); err != nil {
		return nil, err
	}

	event := events.New(events.TypeVisaApplicationCreated, map[string]interface{}{
		"application_id": app.Id.String(),
		"user_id":        userId.String(),
		"country":        app.Country,
		"visa_type":      app.VisaType,
	})
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("VISA", "Failed to publish application event", map[string]interface{}{"application_id": app.Id.String(), "error": err.Error()})
	}

	return toVisaApplicationResponse(&app), nil
}

func (s *visaService) ListApplications(ctx context.Context, userId uuid.UUID) ([]*dto.VisaApplicationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	apps, err := uow.VisaApplicationRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.NewestFirst{},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.VisaApplicationResponse, 0, len(apps))
	for _, app := range apps {
		res = append(res, toVisaApplicationResponse(app))
	}
	return res, nil
}

func (s *visaService) UpdateApplicationStatus(ctx context.Context, userId uuid.UUID, req *dto.UpdateVisaApplicationStatusRequest) (*dto.VisaApplicationResponse, error) {
	if !visa.ValidStatus(visa.Status(req.Status)) {
		return nil, serverutils.BadRequest("invalid status %q", req.Status)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	app, err := uow.VisaApplicationRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, serverutils.NotFound("visa application not found")
	}

	now := time.Now()
	app.Status = req.Status
	app.UpdatedAt = &now
	if err := uow.VisaApplicationRepository().Update(ctx, app); err != nil {
		return nil, err
	}
	return toVisaApplicationResponse(app), nil
}

func toVisaApplicationResponse(app *entity.VisaApplication) *dto.VisaApplicationResponse {
	return &dto.VisaApplicationResponse{
		Id:            app.Id,
		Country:       app.Country,
		VisaType:      app.VisaType,
		ApplicantName: app.ApplicantName,
		Status:        app.Status,
		CreatedAt:     app.CreatedAt,
		UpdatedAt:     app.UpdatedAt,
	}
}
