package unitofwork

import (
	"context"

	"afrimigrate-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	PreferenceRepository() contract.PreferenceRepository
	ProfileRepository() contract.ProfileRepository
	ServiceRequestRepository() contract.ServiceRequestRepository
	VisaApplicationRepository() contract.VisaApplicationRepository
	SavedJobRepository() contract.SavedJobRepository
}
