package skills

import "errors"

var ErrUnknownQuestion = errors.New("unknown interview question")

const FeedbackPreview = "Preview: Focus on structure and add metrics. Use action verbs and keep answers 1-2 minutes long."

var detailedFeedback = []string{
	"Structure: Clear STAR flow (3/5). Add more context to the Situation.",
	"Impact: Quantify the Result with metrics (e.g., 20% reduction in errors).",
	"Delivery: Avoid passive voice; use confident, concise statements.",
}

type Feedback struct {
	QuestionId string   `json:"question_id"`
	Rubric     string   `json:"rubric"`
	Preview    string   `json:"preview,omitempty"`
	Points     []string `json:"points"`
	Locked     bool     `json:"locked"`
}

func FindInterviewQuestion(id string) (InterviewQuestion, bool) {
	for _, q := range InterviewQuestions {
		if q.Id == id {
			return q, true
		}
	}
	return InterviewQuestion{}, false
}

// InterviewFeedback returns the detailed points for Premium users and only
// the preview otherwise.
func InterviewFeedback(questionId string, premium bool) (Feedback, error) {
	q, ok := FindInterviewQuestion(questionId)
	if !ok {
		return Feedback{}, ErrUnknownQuestion
	}
	fb := Feedback{QuestionId: q.Id, Rubric: q.Rubric}
	if !premium {
		fb.Preview = FeedbackPreview
		fb.Points = []string{}
		fb.Locked = true
		return fb, nil
	}
	fb.Points = append([]string(nil), detailedFeedback...)
	return fb, nil
}
