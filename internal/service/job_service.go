package service

import (
	"context"
	"time"

	"afrimigrate-be/internal/dto"
	"afrimigrate-be/internal/entity"
	"afrimigrate-be/internal/pkg/logger"
	"afrimigrate-be/internal/pkg/serverutils"
	"afrimigrate-be/internal/repository/specification"
	"afrimigrate-be/internal/repository/unitofwork"
	"afrimigrate-be/pkg/jobs"

	"github.com/google/uuid"
)

// JobViewer is who is browsing the board. UserId is nil for anonymous
// visitors, who get no destination filter.
type JobViewer struct {
	UserId  *uuid.UUID
	Premium bool
}

type IJobService interface {
	Search(ctx context.Context, viewer JobViewer, req *dto.JobSearchRequest) (*dto.JobSearchResponse, error)
	Recommend(viewer JobViewer, skills string, tab string) []dto.JobListing
	Save(ctx context.Context, userId uuid.UUID, req *dto.SaveJobRequest) (*dto.SavedJobResponse, error)
	ListSaved(ctx context.Context, userId uuid.UUID) ([]*dto.SavedJobResponse, error)
	Unsave(ctx context.Context, userId uuid.UUID, jobId string) error
}

type jobService struct {
	uowFactory        unitofwork.RepositoryFactory
	preferenceService IPreferenceService
	logger            logger.ILogger
}

func NewJobService(uowFactory unitofwork.RepositoryFactory, preferenceService IPreferenceService, logger logger.ILogger) IJobService {
	return &jobService{
		uowFactory:        uowFactory,
		preferenceService: preferenceService,
		logger:            logger,
	}
}

func (s *jobService) Search(ctx context.Context, viewer JobViewer, req *dto.JobSearchRequest) (*dto.JobSearchResponse, error) {
	filter := jobs.Filter{
		Query:    req.Query,
		Location: req.Location,
		Type:     jobs.JobType(req.Type),
		Skills:   req.Skills,
		Tab:      jobs.Tab(req.Tab),
	}

	if viewer.UserId != nil {
		pref, err := s.preferenceService.Get(ctx, *viewer.UserId)
		if err != nil {
			// The board still works without the preference filter.
			s.logger.Warn("JOBS", "Failed to load destination preference", map[string]interface{}{"user_id": viewer.UserId.String(), "error": err.Error()})
		} else if pref.DestinationCountry != nil {
			filter.Destination = &jobs.Destination{
				Code: pref.DestinationCountry.Code,
				Name: pref.DestinationCountry.Name,
			}
		}
	}

	page := jobs.Paginate(jobs.Search(jobs.Listings, filter), req.Page)
	return &dto.JobSearchResponse{
		Jobs:    toJobListings(page.Jobs, viewer.Premium),
		Total:   page.Total,
		Page:    page.Page,
		HasMore: page.HasMore,
	}, nil
}

func (s *jobService) Recommend(viewer JobViewer, skills string, tab string) []dto.JobListing {
	return toJobListings(jobs.Recommend(jobs.Listings, skills, jobs.Tab(tab)), viewer.Premium)
}

func (s *jobService) Save(ctx context.Context, userId uuid.UUID, req *dto.SaveJobRequest) (*dto.SavedJobResponse, error) {
	job, ok := jobs.FindByID(req.JobId)
	if !ok {
		return nil, serverutils.NotFound("job %s not found", req.JobId)
	}

	saved := entity.SavedJob{
		Id:        uuid.New(),
		UserId:    userId,
		JobId:     job.Id,
		Title:     job.Title,
		Employer:  job.Employer,
		Location:  job.Location,
		URL:       job.URL,
		CreatedAt: time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.SavedJobRepository().Create(ctx, &saved); err != nil {
		return nil, err
	}

	// Saving twice keeps the first row; answer with whatever is stored.
	existing, err := uow.SavedJobRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.ByJobID{JobID: job.Id},
	)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return toSavedJobResponse(existing[0]), nil
	}
	return toSavedJobResponse(&saved), nil
}

func (s *jobService) ListSaved(ctx context.Context, userId uuid.UUID) ([]*dto.SavedJobResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	saved, err := uow.SavedJobRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.NewestFirst{},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.SavedJobResponse, 0, len(saved))
	for _, j := range saved {
		res = append(res, toSavedJobResponse(j))
	}
	return res, nil
}

func (s *jobService) Unsave(ctx context.Context, userId uuid.UUID, jobId string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	removed, err := uow.SavedJobRepository().Delete(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.ByJobID{JobID: jobId},
	)
	if err != nil {
		return err
	}
	if removed == 0 {
		return serverutils.NotFound("job %s is not saved", jobId)
	}
	return nil
}

// toJobListings blanks the apply link of premium listings for free viewers.
func toJobListings(list []jobs.Job, premiumViewer bool) []dto.JobListing {
	out := make([]dto.JobListing, 0, len(list))
	for _, j := range list {
		locked := jobs.Locked(j, premiumViewer)
		if locked {
			j.URL = ""
		}
		out = append(out, dto.JobListing{Job: j, Locked: locked})
	}
	return out
}

func toSavedJobResponse(j *entity.SavedJob) *dto.SavedJobResponse {
	return &dto.SavedJobResponse{
		Id:        j.Id,
		JobId:     j.JobId,
		Title:     j.Title,
		Employer:  j.Employer,
		Location:  j.Location,
		URL:       j.URL,
		CreatedAt: j.CreatedAt,
	}
}
