package helpdesk

import (
	"reflect"
	"strings"
	"testing"
)

func TestLinkifyLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []Segment
	}{
		{
			name: "route in the middle keeps surrounding text",
			line: "Visa: /visa and more",
			want: []Segment{{Text: "Visa: "}, {Route: RouteVisa}, {Text: " and more"}},
		},
		{
			name: "partial route is plain text",
			line: "/visaextra",
			want: []Segment{{Text: "/visaextra"}},
		},
		{
			name: "plural is not a route",
			line: "see /visas",
			want: []Segment{{Text: "see /visas"}},
		},
		{
			name: "route alone",
			line: "/pricing",
			want: []Segment{{Route: RoutePricing}},
		},
		{
			name: "adjacent routes",
			line: "/jobs /profile",
			want: []Segment{{Route: RouteJobs}, {Text: " "}, {Route: RouteProfile}},
		},
		{
			name: "unknown route",
			line: "go to /dashboard now",
			want: []Segment{{Text: "go to /dashboard now"}},
		},
		{
			name: "route glued to punctuation",
			line: "open (/addons)",
			want: []Segment{{Text: "open (/addons)"}},
		},
		{
			name: "quick link bullet",
			line: "• Addons: /addons",
			want: []Segment{{Text: "• Addons: "}, {Route: RouteAddons}},
		},
		{
			name: "byte order mark delimits a route",
			line: "see\uFEFF/jobs",
			want: []Segment{{Text: "see\uFEFF"}, {Route: RouteJobs}},
		},
		{
			name: "next line character does not delimit",
			line: "see\u0085/jobs",
			want: []Segment{{Text: "see\u0085/jobs"}},
		},
		{
			name: "empty line",
			line: "",
			want: []Segment{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LinkifyLine(tt.line)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("LinkifyLine(%q) = %#v, want %#v", tt.line, got, tt.want)
			}
		})
	}
}

func TestLinkifyFallbackReply(t *testing.T) {
	lines := Linkify(FallbackReply)
	if len(lines) != 6 {
		t.Fatalf("expected 6 lines, got %d", len(lines))
	}

	var routes []Route
	for _, segments := range lines {
		for _, s := range segments {
			if s.IsRoute() {
				routes = append(routes, s.Route)
			}
		}
	}
	if !reflect.DeepEqual(routes, Routes) {
		t.Errorf("routes = %v, want %v", routes, Routes)
	}
}

func TestLinkifyPreservesText(t *testing.T) {
	text := "Q: Where can I find visa requirements?\n\nOpen /visa or /jobs,\tthen /pricing"
	var b strings.Builder
	for i, segments := range Linkify(text) {
		if i > 0 {
			b.WriteString("\n")
		}
		for _, s := range segments {
			if s.IsRoute() {
				b.WriteString(string(s.Route))
			} else {
				b.WriteString(s.Text)
			}
		}
	}
	if b.String() != text {
		t.Errorf("round trip = %q, want %q", b.String(), text)
	}
}
