package visa

import (
	"math"
	"regexp"
)

type Level string

const (
	LevelStrong Level = "Strong"
	LevelMedium Level = "Medium"
	LevelLow    Level = "Low"
)

// WizardSteps are the visa wizard pages in order.
var WizardSteps = []string{"personal", "passport", "education", "work", "language", "documents", "payment", "results"}

type Profile struct {
	TargetCountry   string
	YearsExperience float64
	LanguageScore   float64
	Degree          string
	DocumentCount   int
}

type Assessment struct {
	Score          int    `json:"score"`
	Level          Level  `json:"level"`
	Recommendation string `json:"recommendation"`
}

var (
	workPattern    = regexp.MustCompile(`(?i)Work|Skilled|Blue Card`)
	studyPattern   = regexp.MustCompile(`(?i)Study`)
	visitorPattern = regexp.MustCompile(`(?i)Visitor|Schengen`)
)

// Assess scores a wizard submission out of 6 and picks the visa type that
// fits the resulting level in the target country.
func Assess(p Profile) Assessment {
	score := 0
	if p.YearsExperience >= 2 {
		score += 2
	}
	if p.LanguageScore >= 6 {
		score += 2
	}
	if p.Degree != "" {
		score++
	}
	if p.DocumentCount > 0 {
		score++
	}

	var visas []Visa
	if r, ok := Requirements(p.TargetCountry); ok {
		visas = r.Visas
	}

	switch {
	case score >= 5:
		return Assessment{Score: score, Level: LevelStrong, Recommendation: recommend(visas, workPattern, "Work")}
	case score >= 3:
		return Assessment{Score: score, Level: LevelMedium, Recommendation: recommend(visas, studyPattern, "Study")}
	default:
		return Assessment{Score: score, Level: LevelLow, Recommendation: recommend(visas, visitorPattern, "Visitor")}
	}
}

func recommend(visas []Visa, pattern *regexp.Regexp, fallback string) string {
	for _, v := range visas {
		if pattern.MatchString(v.Type) {
			return v.Type
		}
	}
	if len(visas) > 0 {
		return visas[0].Type
	}
	return fallback
}

// Progress is the wizard completion percentage for a zero-based step,
// clamped to the valid range.
func Progress(step int) int {
	if step < 0 {
		step = 0
	}
	if step >= len(WizardSteps) {
		step = len(WizardSteps) - 1
	}
	return int(math.Round(float64(step+1) / float64(len(WizardSteps)) * 100))
}
