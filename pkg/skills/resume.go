package skills

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

type Resume struct {
	Name       string `json:"name"`
	Title      string `json:"title"`
	Summary    string `json:"summary"`
	Skills     string `json:"skills"`
	Experience string `json:"experience"`
	Target     string `json:"target"`
}

const (
	minSummaryLength = 120

	SuggestSummary  = "Expand your summary to 3-4 sentences and include 1-2 quantified achievements."
	SuggestSkills   = "List at least 6-10 skills separated by commas, prioritizing job-specific keywords."
	SuggestQuantify = "Quantify impact in experience (e.g., increased efficiency by 15%, handled $200k budget)."
	SuggestTarget   = "Reference your target role in the summary to improve ATS match."
	SuggestTitle    = "Add a clear professional title (e.g., Frontend Developer | React | TypeScript)."
	SuggestWellDone = "Great foundation! Consider tailoring bullet points to each application."
)

var quantified = regexp.MustCompile(`\d+%|\$|\d+\+`)

// Suggest returns resume advice in a fixed order. A resume that trips no
// rule gets a single encouragement.
func Suggest(r Resume) []string {
	var out []string
	if utf8.RuneCountInString(strings.TrimSpace(r.Summary)) < minSummaryLength {
		out = append(out, SuggestSummary)
	}
	if !strings.Contains(r.Skills, ",") {
		out = append(out, SuggestSkills)
	}
	if !quantified.MatchString(r.Experience) {
		out = append(out, SuggestQuantify)
	}
	if r.Target != "" && !strings.Contains(strings.ToLower(r.Summary), strings.ToLower(r.Target)) {
		out = append(out, SuggestTarget)
	}
	if r.Title == "" {
		out = append(out, SuggestTitle)
	}
	if len(out) == 0 {
		out = append(out, SuggestWellDone)
	}
	return out
}

// FreemiumSuggestionLimit is how many resume suggestions a Freemium user sees.
const FreemiumSuggestionLimit = 2

// Limit trims suggestions for Freemium users and reports whether any were
// held back.
func Limit(suggestions []string, premium bool) ([]string, bool) {
	if premium || len(suggestions) <= FreemiumSuggestionLimit {
		return suggestions, false
	}
	return suggestions[:FreemiumSuggestionLimit], true
}
