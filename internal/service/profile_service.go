package service

import (
	"context"
	"errors"
	"time"

	"afrimigrate-be/internal/dto"
	"afrimigrate-be/internal/entity"
	"afrimigrate-be/internal/pkg/serverutils"
	"afrimigrate-be/internal/repository/unitofwork"
	"afrimigrate-be/pkg/profile"

	"github.com/google/uuid"
)

type IProfileService interface {
	Show(ctx context.Context, userId uuid.UUID) (*dto.ProfileResponse, error)
	Save(ctx context.Context, userId uuid.UUID, req *dto.SaveProfileRequest) (*dto.ProfileResponse, error)
	AddDocument(ctx context.Context, userId uuid.UUID, req *dto.AddProfileDocumentRequest) (*dto.ProfileResponse, error)
	RemoveDocument(ctx context.Context, userId uuid.UUID, documentId string) (*dto.ProfileResponse, error)
}

type profileService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewProfileService(uowFactory unitofwork.RepositoryFactory) IProfileService {
	return &profileService{
		uowFactory: uowFactory,
	}
}

func (s *profileService) Show(ctx context.Context, userId uuid.UUID) (*dto.ProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	p, err := uow.ProfileRepository().FindByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, serverutils.NotFound("profile not found")
	}
	return toProfileResponse(p), nil
}

func (s *profileService) Save(ctx context.Context, userId uuid.UUID, req *dto.SaveProfileRequest) (*dto.ProfileResponse, error) {
	data := profile.Normalize(req.Profile)
	for i := range data.Documents {
		if data.Documents[i].Id == "" {
			data.Documents[i].Id = uuid.NewString()
		}
		if data.Documents[i].AddedAt.IsZero() {
			data.Documents[i].AddedAt = time.Now().UTC()
		}
	}
	if err := validateProfile(data); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	existing, err := uow.ProfileRepository().FindByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}

	p := fromProfileData(userId, existing, data)
	if err := uow.ProfileRepository().Save(ctx, p); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}
	return toProfileResponse(p), nil
}

// AddDocument attaches document metadata to an existing profile.
func (s *profileService) AddDocument(ctx context.Context, userId uuid.UUID, req *dto.AddProfileDocumentRequest) (*dto.ProfileResponse, error) {
	if err := profile.CheckDocument(req.Name, req.Type, req.Size); err != nil {
		return nil, serverutils.BadRequest("%s", err.Error())
	}

	return s.mutate(ctx, userId, func(p *entity.Profile) error {
		p.Documents = append(p.Documents, profile.Document{
			Id:      uuid.NewString(),
			Name:    req.Name,
			Size:    req.Size,
			Type:    req.Type,
			AddedAt: time.Now().UTC(),
		})
		return nil
	})
}

func (s *profileService) RemoveDocument(ctx context.Context, userId uuid.UUID, documentId string) (*dto.ProfileResponse, error) {
	return s.mutate(ctx, userId, func(p *entity.Profile) error {
		for i, d := range p.Documents {
			if d.Id == documentId {
				p.Documents = append(p.Documents[:i], p.Documents[i+1:]...)
				return nil
			}
		}
		return serverutils.NotFound("document %s not found", documentId)
	})
}

func (s *profileService) mutate(ctx context.Context, userId uuid.UUID, fn func(p *entity.Profile) error) (*dto.ProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	p, err := uow.ProfileRepository().FindByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, serverutils.NotFound("profile not found")
	}
	if err := fn(p); err != nil {
		return nil, err
	}

	now := time.Now()
	p.UpdatedAt = &now
	if err := uow.ProfileRepository().Save(ctx, p); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}
	return toProfileResponse(p), nil
}

func validateProfile(p profile.Profile) error {
	err := profile.Validate(p)
	if err == nil {
		return nil
	}
	if errors.Is(err, profile.ErrNameRequired) {
		return &serverutils.AppError{
			Kind:    serverutils.ErrBadRequest,
			Message: "validation failed",
			Fields:  []serverutils.FieldError{{Field: "personal.name", Rule: "required"}},
			Err:     err,
		}
	}
	return &serverutils.AppError{Kind: serverutils.ErrBadRequest, Message: err.Error()}
}

func fromProfileData(userId uuid.UUID, existing *entity.Profile, data profile.Profile) *entity.Profile {
	p := &entity.Profile{
		Id:        uuid.New(),
		UserId:    userId,
		CreatedAt: time.Now(),
	}
	if existing != nil {
		now := time.Now()
		p.Id = existing.Id
		p.CreatedAt = existing.CreatedAt
		p.UpdatedAt = &now
	}
	p.Personal = data.Personal
	p.Skills = data.Skills
	p.Certifications = data.Certifications
	p.Experience = data.Experience
	p.Languages = data.Languages
	p.Documents = data.Documents
	return p
}

func toProfileResponse(p *entity.Profile) *dto.ProfileResponse {
	return &dto.ProfileResponse{
		Id: p.Id,
		Profile: profile.Profile{
			Personal:       p.Personal,
			Skills:         nonNilSlice(p.Skills),
			Certifications: nonNilSlice(p.Certifications),
			Experience:     nonNilSlice(p.Experience),
			Languages:      nonNilSlice(p.Languages),
			Documents:      nonNilSlice(p.Documents),
		},
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func nonNilSlice[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
