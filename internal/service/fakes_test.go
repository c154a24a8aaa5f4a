package service

import (
	"context"
	"sort"
	"sync"

	"afrimigrate-be/internal/dto"
	"afrimigrate-be/internal/entity"
	"afrimigrate-be/internal/repository/contract"
	"afrimigrate-be/internal/repository/specification"
	"afrimigrate-be/internal/repository/unitofwork"
	"afrimigrate-be/pkg/events"

	"github.com/google/uuid"
)

// fakeStore backs every fake repository so tests can inspect rows directly.
type fakeStore struct {
	mu          sync.Mutex
	preferences map[uuid.UUID]*entity.UserPreference
	profiles    map[uuid.UUID]*entity.Profile
	requests    []*entity.ServiceRequest
	visas       []*entity.VisaApplication
	savedJobs   []*entity.SavedJob
	upsertErr   error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		preferences: map[uuid.UUID]*entity.UserPreference{},
		profiles:    map[uuid.UUID]*entity.Profile{},
	}
}

func (s *fakeStore) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUnitOfWork{store: s}
}

type fakeUnitOfWork struct {
	store *fakeStore
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) error { return nil }
func (u *fakeUnitOfWork) Commit() error                   { return nil }
func (u *fakeUnitOfWork) Rollback() error                 { return nil }

func (u *fakeUnitOfWork) PreferenceRepository() contract.PreferenceRepository {
	return fakePreferenceRepo{u.store}
}

func (u *fakeUnitOfWork) ProfileRepository() contract.ProfileRepository {
	return fakeProfileRepo{u.store}
}

func (u *fakeUnitOfWork) ServiceRequestRepository() contract.ServiceRequestRepository {
	return fakeServiceRequestRepo{u.store}
}

func (u *fakeUnitOfWork) VisaApplicationRepository() contract.VisaApplicationRepository {
	return fakeVisaRepo{u.store}
}

func (u *fakeUnitOfWork) SavedJobRepository() contract.SavedJobRepository {
	return fakeSavedJobRepo{u.store}
}

// row is the subset of columns the specifications filter on.
type row struct {
	id     uuid.UUID
	userId uuid.UUID
	jobId  string
	kind   string
}

func matches(r row, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if r.id != s.ID {
				return false
			}
		case specification.UserOwnedBy:
			if r.userId != s.UserID {
				return false
			}
		case specification.ByJobID:
			if r.jobId != s.JobID {
				return false
			}
		case specification.ByRequestType:
			if r.kind != s.Type {
				return false
			}
		}
	}
	return true
}

type fakePreferenceRepo struct{ s *fakeStore }

func (r fakePreferenceRepo) FindByUserId(ctx context.Context, userId uuid.UUID) (*entity.UserPreference, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.preferences[userId]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r fakePreferenceRepo) Upsert(ctx context.Context, pref *entity.UserPreference) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.upsertErr != nil {
		return r.s.upsertErr
	}
	cp := *pref
	r.s.preferences[pref.UserId] = &cp
	return nil
}

type fakeProfileRepo struct{ s *fakeStore }

func (r fakeProfileRepo) FindByUserId(ctx context.Context, userId uuid.UUID) (*entity.Profile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.profiles[userId]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r fakeProfileRepo) Save(ctx context.Context, p *entity.Profile) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *p
	r.s.profiles[p.UserId] = &cp
	return nil
}

type fakeServiceRequestRepo struct{ s *fakeStore }

func requestRow(sr *entity.ServiceRequest) row {
	return row{id: sr.Id, userId: sr.UserId, kind: sr.Type}
}

func (r fakeServiceRequestRepo) Create(ctx context.Context, req *entity.ServiceRequest) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *req
	r.s.requests = append(r.s.requests, &cp)
	return nil
}

func (r fakeServiceRequestRepo) Update(ctx context.Context, req *entity.ServiceRequest) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, existing := range r.s.requests {
		if existing.Id == req.Id {
			cp := *req
			r.s.requests[i] = &cp
		}
	}
	return nil
}

func (r fakeServiceRequestRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ServiceRequest, error) {
	all, _ := r.FindAll(ctx, specs...)
	if len(all) == 0 {
		return nil, nil
	}
	return all[0], nil
}

func (r fakeServiceRequestRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ServiceRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.ServiceRequest
	for _, sr := range r.s.requests {
		if matches(requestRow(sr), specs) {
			cp := *sr
			out = append(out, &cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

type fakeVisaRepo struct{ s *fakeStore }

func (r fakeVisaRepo) Create(ctx context.Context, app *entity.VisaApplication) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *app
	r.s.visas = append(r.s.visas, &cp)
	return nil
}

func (r fakeVisaRepo) Update(ctx context.Context, app *entity.VisaApplication) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, existing := range r.s.visas {
		if existing.Id == app.Id {
			cp := *app
			r.s.visas[i] = &cp
		}
	}
	return nil
}

func (r fakeVisaRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.VisaApplication, error) {
	all, _ := r.FindAll(ctx, specs...)
	if len(all) == 0 {
		return nil, nil
	}
	return all[0], nil
}

func (r fakeVisaRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.VisaApplication, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.VisaApplication
	for _, app := range r.s.visas {
		if matches(row{id: app.Id, userId: app.UserId}, specs) {
			cp := *app
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeSavedJobRepo struct{ s *fakeStore }

func (r fakeSavedJobRepo) Create(ctx context.Context, job *entity.SavedJob) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.savedJobs {
		if existing.UserId == job.UserId && existing.JobId == job.JobId {
			return nil
		}
	}
	cp := *job
	r.s.savedJobs = append(r.s.savedJobs, &cp)
	return nil
}

func (r fakeSavedJobRepo) Delete(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	kept := r.s.savedJobs[:0]
	var removed int64
	for _, j := range r.s.savedJobs {
		if matches(row{id: j.Id, userId: j.UserId, jobId: j.JobId}, specs) {
			removed++
			continue
		}
		kept = append(kept, j)
	}
	r.s.savedJobs = kept
	return removed, nil
}

func (r fakeSavedJobRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SavedJob, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.SavedJob
	for _, j := range r.s.savedJobs {
		if matches(row{id: j.Id, userId: j.UserId, jobId: j.JobId}, specs) {
			cp := *j
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeCache struct {
	mu     sync.Mutex
	items  map[string]dto.PreferenceSnapshot
	getErr error
	setErr error
}

func newFakeCache() *fakeCache {
	return &fakeCache{items: map[string]dto.PreferenceSnapshot{}}
}

func (c *fakeCache) Get(ctx context.Context, userId uuid.UUID) (*dto.PreferenceSnapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return nil, c.getErr
	}
	snap, ok := c.items[userId.String()]
	if !ok {
		return nil, nil
	}
	return &snap, nil
}

func (c *fakeCache) Set(ctx context.Context, snap *dto.PreferenceSnapshot) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.setErr != nil {
		return c.setErr
	}
	c.items[snap.UserId] = *snap
	return nil
}

type recordingSync struct {
	mu        sync.Mutex
	published []dto.PreferenceSnapshot
	err       error
}

func (r *recordingSync) Publish(ctx context.Context, snap *dto.PreferenceSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.published = append(r.published, *snap)
	return r.err
}

func (r *recordingSync) Consume(ctx context.Context) error { return nil }

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *recordingPublisher) Publish(ctx context.Context, event events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.events))
	for i, e := range p.events {
		out[i] = e.EventType()
	}
	return out
}
