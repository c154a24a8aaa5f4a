package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"afrimigrate-be/internal/constant"
	"afrimigrate-be/internal/dto"
	"afrimigrate-be/internal/pkg/logger"
	"afrimigrate-be/internal/pkg/serverutils"
	"afrimigrate-be/internal/repository/contract"
	"afrimigrate-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IPreferenceService interface {
	Get(ctx context.Context, userId uuid.UUID) (*dto.PreferenceResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdatePreferenceRequest) (*dto.PreferenceResponse, error)
	Catalog() *dto.CountryCatalogResponse
}

type preferenceService struct {
	uowFactory  unitofwork.RepositoryFactory
	cache       contract.PreferenceCache
	syncService IPreferenceSyncService
	logger      logger.ILogger
	now         func() time.Time
}

func NewPreferenceService(
	uowFactory unitofwork.RepositoryFactory,
	cache contract.PreferenceCache,
	syncService IPreferenceSyncService,
	logger logger.ILogger,
) IPreferenceService {
	return &preferenceService{
		uowFactory:  uowFactory,
		cache:       cache,
		syncService: syncService,
		logger:      logger,
		now:         time.Now,
	}
}

func (s *preferenceService) Catalog() *dto.CountryCatalogResponse {
	return &dto.CountryCatalogResponse{
		Origins:      constant.AfricanOrigins,
		Destinations: constant.Destinations,
		Locales:      []string{constant.LocaleEN, constant.LocaleFR},
	}
}

func (s *preferenceService) Get(ctx context.Context, userId uuid.UUID) (*dto.PreferenceResponse, error) {
	snap, err := s.current(ctx, userId)
	if err != nil {
		return nil, err
	}
	return toPreferenceResponse(snap), nil
}

func (s *preferenceService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdatePreferenceRequest) (*dto.PreferenceResponse, error) {
	snap, err := s.current(ctx, userId)
	if err != nil {
		return nil, err
	}

	if req.OriginCountryCode != nil {
		code, err := pickCountry(*req.OriginCountryCode, constant.FindOrigin, "origin_country_code")
		if err != nil {
			return nil, err
		}
		snap.OriginCountryCode = code
	}
	if req.DestinationCountryCode != nil {
		code, err := pickCountry(*req.DestinationCountryCode, constant.FindDestination, "destination_country_code")
		if err != nil {
			return nil, err
		}
		snap.DestinationCountryCode = code
	}
	if req.Locale != nil {
		if _, ok := constant.Dictionary[*req.Locale]; !ok {
			return nil, serverutils.BadRequest("unsupported locale %q", *req.Locale)
		}
		snap.Locale = *req.Locale
	}
	snap.UpdatedAt = s.now().UTC()

	cacheErr := s.cache.Set(ctx, snap)
	if cacheErr != nil {
		s.logger.Warn("PREFERENCE", "Preference cache unavailable, relying on sync", map[string]interface{}{"user_id": userId.String(), "error": cacheErr.Error()})
	}

	// The write is lost only when neither store accepted it.
	if err := s.syncService.Publish(ctx, snap); err != nil {
		if cacheErr != nil {
			return nil, fmt.Errorf("failed to store preferences: %w", errors.Join(cacheErr, err))
		}
		s.logger.Warn("PREFERENCE", "Failed to queue preference sync", map[string]interface{}{"user_id": userId.String(), "error": err.Error()})
	}

	return toPreferenceResponse(snap), nil
}

// current prefers the database row, then the fast store, then defaults.
func (s *preferenceService) current(ctx context.Context, userId uuid.UUID) (*dto.PreferenceSnapshot, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	pref, err := uow.PreferenceRepository().FindByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}

	cached, err := s.cache.Get(ctx, userId)
	if err != nil {
		s.logger.Warn("PREFERENCE", "Preference cache unavailable", map[string]interface{}{"user_id": userId.String(), "error": err.Error()})
		cached = nil
	}

	switch {
	case pref != nil && (cached == nil || !cached.UpdatedAt.After(pref.UpdatedAt)):
		return &dto.PreferenceSnapshot{
			UserId:                 userId.String(),
			OriginCountryCode:      pref.OriginCountryCode,
			DestinationCountryCode: pref.DestinationCountryCode,
			Locale:                 pref.Locale,
			UpdatedAt:              pref.UpdatedAt,
		}, nil
	case cached != nil:
		cached.UserId = userId.String()
		return cached, nil
	default:
		return &dto.PreferenceSnapshot{UserId: userId.String(), Locale: constant.DefaultLocale}, nil
	}
}

func pickCountry(code string, find func(string) (constant.Country, bool), field string) (*string, error) {
	if code == "" {
		return nil, nil
	}
	if _, ok := find(code); !ok {
		return nil, &serverutils.AppError{
			Kind:    serverutils.ErrBadRequest,
			Message: "validation failed",
			Fields:  []serverutils.FieldError{{Field: field, Rule: "country"}},
		}
	}
	return &code, nil
}

func toPreferenceResponse(snap *dto.PreferenceSnapshot) *dto.PreferenceResponse {
	locale := snap.Locale
	if _, ok := constant.Dictionary[locale]; !ok {
		locale = constant.DefaultLocale
	}
	res := &dto.PreferenceResponse{
		Locale: locale,
		Labels: constant.Dictionary[locale],
	}
	if snap.OriginCountryCode != nil {
		if c, ok := constant.FindOrigin(*snap.OriginCountryCode); ok {
			res.OriginCountry = &c
		}
	}
	if snap.DestinationCountryCode != nil {
		if c, ok := constant.FindDestination(*snap.DestinationCountryCode); ok {
			res.DestinationCountry = &c
		}
	}
	if !snap.UpdatedAt.IsZero() {
		at := snap.UpdatedAt
		res.UpdatedAt = &at
	}
	return res
}
