package jobs

import (
	"sort"
	"strings"
)

const PageSize = 6

type Tab string

const (
	TabVisa    Tab = "visa"
	TabNonVisa Tab = "nonVisa"
)

// Destination is the viewer's preferred destination country, if any.
type Destination struct {
	Code string
	Name string
}

type Filter struct {
	Query       string
	Location    string
	Type        JobType
	Skills      string // comma separated
	Tab         Tab
	Destination *Destination
}

type Page struct {
	Jobs    []Job `json:"jobs"`
	Total   int   `json:"total"`
	Page    int   `json:"page"`
	HasMore bool  `json:"has_more"`
}

// ParseSkills lowercases and splits a comma separated skill list, dropping
// blanks.
func ParseSkills(raw string) []string {
	parts := strings.Split(strings.ToLower(raw), ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (t Tab) matches(j Job) bool {
	if t == TabNonVisa {
		return !j.VisaSponsored
	}
	return j.VisaSponsored
}

// Search applies every filter in f to jobs, keeping catalog order.
func Search(jobs []Job, f Filter) []Job {
	q := strings.ToLower(strings.TrimSpace(f.Query))
	loc := strings.ToLower(strings.TrimSpace(f.Location))
	skills := ParseSkills(f.Skills)
	synonyms := destinationSynonyms(f.Destination)

	out := make([]Job, 0, len(jobs))
	for _, j := range jobs {
		if !f.Tab.matches(j) {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(j.Title), q) && !strings.Contains(strings.ToLower(j.Employer), q) {
			continue
		}
		if loc != "" && !strings.Contains(strings.ToLower(j.Location), loc) {
			continue
		}
		if f.Type != "" && j.Type != f.Type {
			continue
		}
		if !hasAllSkills(j, skills) {
			continue
		}
		if f.Destination != nil && !inDestination(j, synonyms) {
			continue
		}
		out = append(out, j)
	}
	return out
}

func hasAllSkills(j Job, skills []string) bool {
	joined := strings.ToLower(strings.Join(j.Skills, " "))
	for _, s := range skills {
		if !strings.Contains(joined, s) {
			return false
		}
	}
	return true
}

func destinationSynonyms(d *Destination) []string {
	if d == nil {
		return nil
	}
	synonyms := []string{strings.ToLower(d.Name), strings.ToLower(d.Code)}
	switch d.Code {
	case "UK":
		synonyms = append(synonyms, "united kingdom")
	case "US":
		synonyms = append(synonyms, "united states")
	}
	return synonyms
}

// inDestination keeps every job when the destination has no usable
// synonyms.
func inDestination(j Job, synonyms []string) bool {
	loc := strings.ToLower(j.Location)
	usable := false
	for _, s := range synonyms {
		if s == "" {
			continue
		}
		usable = true
		if strings.Contains(loc, s) {
			return true
		}
	}
	return !usable
}

// Paginate returns the first page*PageSize results. Pages are cumulative,
// like a "load more" list. page < 1 is treated as 1 and pages past the
// last one are clamped to it.
func Paginate(results []Job, page int) Page {
	if page < 1 {
		page = 1
	}
	if last := len(results)/PageSize + 1; page > last {
		page = last
	}
	end := page * PageSize
	if end > len(results) {
		end = len(results)
	}
	return Page{
		Jobs:    results[:end],
		Total:   len(results),
		Page:    page,
		HasMore: len(results) > end,
	}
}

// Recommend scores every job by skill overlap (x2) plus one point when it
// fits the tab, and returns the top three. Ties keep catalog order.
func Recommend(jobs []Job, skills string, tab Tab) []Job {
	set := make(map[string]struct{})
	for _, s := range ParseSkills(skills) {
		set[s] = struct{}{}
	}

	type scored struct {
		job   Job
		score int
	}
	ranked := make([]scored, len(jobs))
	for i, j := range jobs {
		overlap := 0
		for _, sk := range j.Skills {
			if _, ok := set[sk]; ok {
				overlap++
			}
		}
		visa := 0
		if tab.matches(j) {
			visa = 1
		}
		ranked[i] = scored{job: j, score: overlap*2 + visa}
	}
	sort.SliceStable(ranked, func(a, b int) bool { return ranked[a].score > ranked[b].score })

	n := 3
	if len(ranked) < n {
		n = len(ranked)
	}
	out := make([]Job, n)
	for i := 0; i < n; i++ {
		out[i] = ranked[i].job
	}
	return out
}

// Locked reports whether the listing details are hidden from this viewer.
func Locked(j Job, premiumViewer bool) bool {
	return j.Premium && !premiumViewer
}
