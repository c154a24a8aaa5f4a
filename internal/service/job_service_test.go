package service

import (
	"context"
	"testing"
	"time"

	"afrimigrate-be/internal/dto"
	"afrimigrate-be/internal/pkg/logger"
	"afrimigrate-be/internal/pkg/serverutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJobFixture() (IJobService, preferenceFixture) {
	prefs := newPreferenceFixture(time.Now())
	return NewJobService(prefs.store, prefs.service, logger.NewNop()), prefs
}

func listingIds(listings []dto.JobListing) []string {
	ids := make([]string, len(listings))
	for i, l := range listings {
		ids[i] = l.Id
	}
	return ids
}

func TestJobSearchAnonymous(t *testing.T) {
	svc, _ := newJobFixture()

	res, err := svc.Search(context.Background(), JobViewer{}, &dto.JobSearchRequest{})
	require.NoError(t, err)
	assert.Equal(t, 8, res.Total)
	assert.Len(t, res.Jobs, 6)
	assert.True(t, res.HasMore)

	for _, j := range res.Jobs {
		if j.Premium {
			assert.True(t, j.Locked)
			assert.Empty(t, j.URL)
		} else {
			assert.False(t, j.Locked)
			assert.NotEmpty(t, j.URL)
		}
	}
}

func TestJobSearchPremiumViewerSeesLinks(t *testing.T) {
	svc, _ := newJobFixture()

	res, err := svc.Search(context.Background(), JobViewer{Premium: true}, &dto.JobSearchRequest{Page: 2})
	require.NoError(t, err)
	assert.Len(t, res.Jobs, 8)
	assert.False(t, res.HasMore)
	for _, j := range res.Jobs {
		assert.False(t, j.Locked)
		assert.NotEmpty(t, j.URL)
	}
}

func TestJobSearchUsesDestinationPreference(t *testing.T) {
	svc, prefs := newJobFixture()
	userId := uuid.New()
	_, err := prefs.service.Update(context.Background(), userId, &dto.UpdatePreferenceRequest{DestinationCountryCode: strPtr("CA")})
	require.NoError(t, err)

	res, err := svc.Search(context.Background(), JobViewer{UserId: &userId}, &dto.JobSearchRequest{})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, listingIds(res.Jobs))
}

func TestJobSaveIsIdempotent(t *testing.T) {
	svc, prefs := newJobFixture()
	ctx := context.Background()
	userId := uuid.New()

	first, err := svc.Save(ctx, userId, &dto.SaveJobRequest{JobId: "7"})
	require.NoError(t, err)
	assert.Equal(t, "ML Engineer", first.Title)

	second, err := svc.Save(ctx, userId, &dto.SaveJobRequest{JobId: "7"})
	require.NoError(t, err)
	assert.Equal(t, first.Id, second.Id)
	assert.Len(t, prefs.store.savedJobs, 1)

	saved, err := svc.ListSaved(ctx, userId)
	require.NoError(t, err)
	require.Len(t, saved, 1)

	require.NoError(t, svc.Unsave(ctx, userId, "7"))
	assert.ErrorIs(t, svc.Unsave(ctx, userId, "7"), serverutils.ErrNotFound)
}

func TestJobSaveUnknownJob(t *testing.T) {
	svc, _ := newJobFixture()
	_, err := svc.Save(context.Background(), uuid.New(), &dto.SaveJobRequest{JobId: "404"})
	assert.ErrorIs(t, err, serverutils.ErrNotFound)
}

func TestJobRecommendLocksPremiumListings(t *testing.T) {
	svc, _ := newJobFixture()
	recs := svc.Recommend(JobViewer{}, "python", "")
	require.NotEmpty(t, recs)
	for _, r := range recs {
		assert.Equal(t, r.Premium, r.Locked)
	}
}
