package helpdesk

import (
	"strings"
	"unicode/utf8"
)

// Route is one of the in-app pages the assistant may link to.
type Route string

const (
	RouteVisa    Route = "/visa"
	RouteJobs    Route = "/jobs"
	RouteProfile Route = "/profile"
	RouteAddons  Route = "/addons"
	RoutePricing Route = "/pricing"
)

// Routes is the closed set of linkable routes, in quick-link order.
var Routes = []Route{RouteVisa, RouteJobs, RouteProfile, RouteAddons, RoutePricing}

// ParseRoute reports whether token is exactly one of Routes.
func ParseRoute(token string) (Route, bool) {
	for _, r := range Routes {
		if token == string(r) {
			return r, true
		}
	}
	return "", false
}

// Segment is either plain text or a recognised route, never both.
type Segment struct {
	Text  string `json:"text,omitempty"`
	Route Route  `json:"route,omitempty"`
}

func (s Segment) IsRoute() bool { return s.Route != "" }

// Linkify splits text into lines and each line into segments.
func Linkify(text string) [][]Segment {
	lines := strings.Split(text, "\n")
	out := make([][]Segment, len(lines))
	for i, line := range lines {
		out[i] = LinkifyLine(line)
	}
	return out
}

// LinkifyLine marks whitespace-delimited tokens that equal a known route.
// The surrounding whitespace stays in the neighbouring text segments, so
// concatenating all segments reproduces line exactly.
func LinkifyLine(line string) []Segment {
	segments := make([]Segment, 0)
	last := 0
	i := 0
	for i < len(line) {
		r, size := utf8.DecodeRuneInString(line[i:])
		if isSpace(r) {
			i += size
			continue
		}

		start := i
		for i < len(line) {
			r, size = utf8.DecodeRuneInString(line[i:])
			if isSpace(r) {
				break
			}
			i += size
		}

		route, ok := ParseRoute(line[start:i])
		if !ok {
			continue
		}
		if start > last {
			segments = append(segments, Segment{Text: line[last:start]})
		}
		segments = append(segments, Segment{Route: route})
		last = i
	}
	if last < len(line) {
		segments = append(segments, Segment{Text: line[last:]})
	}
	return segments
}
