package service

import (
	"afrimigrate-be/internal/dto"
	"afrimigrate-be/internal/pkg/serverutils"
	"afrimigrate-be/pkg/skills"
)

type ISkillsService interface {
	Overview() *dto.SkillsOverviewResponse
	Assess(req *dto.AssessmentRequest) (*skills.Result, error)
	SuggestResume(resume *skills.Resume, premium bool) *dto.ResumeSuggestionResponse
	Courses() []skills.Course
	InterviewQuestions() []skills.InterviewQuestion
	InterviewFeedback(req *dto.InterviewFeedbackRequest, premium bool) (*skills.Feedback, error)
}

type skillsService struct{}

func NewSkillsService() ISkillsService {
	return &skillsService{}
}

func (s *skillsService) Overview() *dto.SkillsOverviewResponse {
	return &dto.SkillsOverviewResponse{
		Steps:     skills.Steps,
		Questions: skills.Questions,
	}
}

func (s *skillsService) Assess(req *dto.AssessmentRequest) (*skills.Result, error) {
	res, err := skills.Score(req.Answers)
	if err != nil {
		return nil, serverutils.BadRequest("%s", err.Error())
	}
	return &res, nil
}

func (s *skillsService) SuggestResume(resume *skills.Resume, premium bool) *dto.ResumeSuggestionResponse {
	suggestions, limited := skills.Limit(skills.Suggest(*resume), premium)
	return &dto.ResumeSuggestionResponse{Suggestions: suggestions, Limited: limited}
}

func (s *skillsService) Courses() []skills.Course {
	return skills.Courses
}

func (s *skillsService) InterviewQuestions() []skills.InterviewQuestion {
	return skills.InterviewQuestions
}

func (s *skillsService) InterviewFeedback(req *dto.InterviewFeedbackRequest, premium bool) (*skills.Feedback, error) {
	fb, err := skills.InterviewFeedback(req.QuestionId, premium)
	if err != nil {
		return nil, serverutils.NotFound("interview question %s not found", req.QuestionId)
	}
	return &fb, nil
}
