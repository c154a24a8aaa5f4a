package skills

import (
	"fmt"
	"math"
)

type Choice struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

type Question struct {
	Id      string   `json:"id"`
	Prompt  string   `json:"prompt"`
	Choices []Choice `json:"choices"`
}

var Questions = []Question{
	{Id: "q1", Prompt: "How comfortable are you with writing a resume tailored to a job?", Choices: []Choice{{"Expert", 5}, {"Intermediate", 3}, {"Beginner", 1}}},
	{Id: "q2", Prompt: "Rate your interview preparedness (behavioral + technical).", Choices: []Choice{{"Very prepared", 5}, {"Somewhat prepared", 3}, {"Not prepared", 1}}},
	{Id: "q3", Prompt: "English communication in professional settings.", Choices: []Choice{{"Fluent", 5}, {"Good", 3}, {"Needs work", 1}}},
	{Id: "q4", Prompt: "Job search strategy knowledge (keywords, networking, ATS).", Choices: []Choice{{"Strong", 5}, {"Average", 3}, {"Limited", 1}}},
	{Id: "q5", Prompt: "Do you know which roles match your immigration eligibility?", Choices: []Choice{{"Yes", 5}, {"Partly", 3}, {"No", 1}}},
}

// MaxScore is the best possible total.
var MaxScore = len(Questions) * 5

type Result struct {
	Total    int `json:"total"`
	Max      int `json:"max"`
	Percent  int `json:"percent"`
	Answered int `json:"answered"`
}

// Score totals the chosen values. Unanswered questions count as zero; an
// unknown question id or a value that is not one of its choices is an error.
func Score(answers map[string]int) (Result, error) {
	total := 0
	for id, value := range answers {
		q, ok := findQuestion(id)
		if !ok {
			return Result{}, fmt.Errorf("unknown question %q", id)
		}
		if !q.allows(value) {
			return Result{}, fmt.Errorf("invalid answer %d for %s", value, id)
		}
		total += value
	}
	return Result{
		Total:    total,
		Max:      MaxScore,
		Percent:  int(math.Round(float64(total) / float64(MaxScore) * 100)),
		Answered: len(answers),
	}, nil
}

func findQuestion(id string) (Question, bool) {
	for _, q := range Questions {
		if q.Id == id {
			return q, true
		}
	}
	return Question{}, false
}

func (q Question) allows(value int) bool {
	for _, c := range q.Choices {
		if c.Value == value {
			return true
		}
	}
	return false
}
