package controller

import (
	"net/http"
	"testing"

	"afrimigrate-be/internal/dto"
	"afrimigrate-be/internal/pkg/serverutils"
	"afrimigrate-be/internal/service"
	"afrimigrate-be/pkg/skills"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSkillsTestApp() *fiber.App {
	return newTestApp(NewSkillsController(service.NewSkillsService(), serverutils.NewOptionalJwtMiddleware(testSecret)))
}

func TestSkillsController(t *testing.T) {
	app := newSkillsTestApp()

	t.Run("overview lists the questions", func(t *testing.T) {
		status, res := do(t, app, http.MethodGet, "/api/skills/v1", nil, "")
		assert.Equal(t, http.StatusOK, status)
		overview := decode[struct {
			Questions []skills.Question `json:"questions"`
		}](t, res.Data)
		assert.Len(t, overview.Questions, 5)
	})

	t.Run("assessment scores answers", func(t *testing.T) {
		body := map[string]interface{}{"answers": map[string]int{"q1": 5, "q2": 3, "q3": 1}}
		status, res := do(t, app, http.MethodPost, "/api/skills/v1/assessment", body, "")
		assert.Equal(t, http.StatusOK, status)
		result := decode[skills.Result](t, res.Data)
		assert.Equal(t, 9, result.Total)
		assert.Equal(t, 36, result.Percent)
	})

	t.Run("assessment rejects an invalid choice", func(t *testing.T) {
		body := map[string]interface{}{"answers": map[string]int{"q1": 4}}
		status, res := do(t, app, http.MethodPost, "/api/skills/v1/assessment", body, "")
		assert.Equal(t, http.StatusBadRequest, status)
		assert.False(t, res.Success)
	})

	t.Run("courses", func(t *testing.T) {
		status, res := do(t, app, http.MethodGet, "/api/skills/v1/courses", nil, "")
		assert.Equal(t, http.StatusOK, status)
		assert.Len(t, decode[[]skills.Course](t, res.Data), len(skills.Courses))
	})
}

func TestSkillsControllerResumeSuggestionsByPlan(t *testing.T) {
	app := newSkillsTestApp()
	body := map[string]string{}

	status, res := do(t, app, http.MethodPost, "/api/skills/v1/resume/suggestions", body, "")
	require.Equal(t, http.StatusOK, status)
	freemium := decode[dto.ResumeSuggestionResponse](t, res.Data)
	assert.Equal(t, []string{skills.SuggestSummary, skills.SuggestSkills}, freemium.Suggestions)
	assert.True(t, freemium.Limited)

	status, res = do(t, app, http.MethodPost, "/api/skills/v1/resume/suggestions", body, bearer(t, uuid.New(), "premium"))
	require.Equal(t, http.StatusOK, status)
	premium := decode[dto.ResumeSuggestionResponse](t, res.Data)
	assert.Len(t, premium.Suggestions, 4)
	assert.False(t, premium.Limited)
}

func TestSkillsControllerInterviewFeedbackByPlan(t *testing.T) {
	app := newSkillsTestApp()
	body := map[string]string{"question_id": "i1", "answer": "I moved from Lagos to lead a payments team."}

	status, res := do(t, app, http.MethodPost, "/api/skills/v1/interview/feedback", body, bearer(t, uuid.New(), ""))
	require.Equal(t, http.StatusOK, status)
	preview := decode[skills.Feedback](t, res.Data)
	assert.True(t, preview.Locked)
	assert.Equal(t, skills.FeedbackPreview, preview.Preview)
	assert.Empty(t, preview.Points)

	status, res = do(t, app, http.MethodPost, "/api/skills/v1/interview/feedback", body, bearer(t, uuid.New(), "premium"))
	require.Equal(t, http.StatusOK, status)
	full := decode[skills.Feedback](t, res.Data)
	assert.False(t, full.Locked)
	assert.Len(t, full.Points, 3)

	status, _ = do(t, app, http.MethodPost, "/api/skills/v1/interview/feedback", map[string]string{"question_id": "i1"}, "")
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = do(t, app, http.MethodPost, "/api/skills/v1/interview/feedback", map[string]string{"question_id": "i7", "answer": "x"}, "")
	assert.Equal(t, http.StatusNotFound, status)
}
