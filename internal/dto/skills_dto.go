package dto

import "afrimigrate-be/pkg/skills"

type AssessmentRequest struct {
	Answers map[string]int `json:"answers" validate:"required"`
}

type ResumeSuggestionResponse struct {
	Suggestions []string `json:"suggestions"`
	Limited     bool     `json:"limited"`
}

type InterviewFeedbackRequest struct {
	QuestionId string `json:"question_id" validate:"required"`
	Answer     string `json:"answer" validate:"required"`
}

type SkillsOverviewResponse struct {
	Steps     []string          `json:"steps"`
	Questions []skills.Question `json:"questions"`
}
