package helpdesk

import (
	"strings"
	"testing"
)

var helpCenterFAQs = []FAQ{
	{Question: "How do I start my migration journey?", Answer: "Create a free account, choose your target country, and follow the 3‑step plan on the Home page."},
	{Question: "Where can I find visa requirements?", Answer: "Open the Visa page, pick a destination, and review visa types, documents, and processing timelines."},
	{Question: "How do I upgrade to Premium?", Answer: "Visit the Pricing section and select a plan to unlock mentorship, reviews, and priority support."},
}

func TestScore(t *testing.T) {
	tests := []struct {
		name     string
		document string
		query    string
		want     float64
	}{
		{"all tokens present", "how do i upgrade to premium?", "how upgrade", 1.0},
		{"half the tokens present", "how do i start my journey?", "how upgrade", 0.5},
		{"query is lowercased", "where can i find visa requirements?", "VISA Requirements", 1.0},
		{"substring counts as hit", "open the visa page", "vis pag", 1.0},
		{"single letter inflates", "anything with an a", "a zzz", 0.5},
		{"duplicate tokens each count", "visa", "visa visa jobs", 2.0 / 3.0},
		{"empty query", "anything", "", 0},
		{"whitespace query", "anything", "  \t\n ", 0},
		{"no hits", "visa", "pricing", 0},
		{"byte order mark separates tokens", "visa jobs", "visa\uFEFFjobs", 1.0},
		{"next line does not separate tokens", "visa jobs", "visa\u0085jobs", 0},
		{"no-break space separates tokens", "visa jobs", "visa\u00A0pricing", 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(tt.document, tt.query); got != tt.want {
				t.Errorf("Score(%q, %q) = %v, want %v", tt.document, tt.query, got, tt.want)
			}
		})
	}
}

func TestThresholdIsStrict(t *testing.T) {
	if exceedsThreshold(0.3) {
		t.Error("a score of exactly 0.3 must not match")
	}
	if !exceedsThreshold(0.31) {
		t.Error("a score of 0.31 must match")
	}

	// 3 hits out of 10 tokens scores exactly 0.3.
	m := NewMatcher([]FAQ{{Question: "alpha beta gamma", Answer: ""}})
	reply := m.Respond("alpha beta gamma q1 q2 q3 q4 q5 q6 q7")
	if reply.Matched || reply.Content != FallbackReply {
		t.Errorf("expected fallback at score 0.3, got %+v", reply)
	}

	// 1 hit out of 3 tokens is above the threshold.
	reply = m.Respond("alpha q1 q2")
	if !reply.Matched {
		t.Errorf("expected a match at score 1/3, got %+v", reply)
	}
}

func TestRespondFormatsBestMatch(t *testing.T) {
	m := NewMatcher(helpCenterFAQs)

	reply := m.Respond("How do I upgrade?")
	want := "Q: How do I upgrade to Premium?\n\nVisit the Pricing section and select a plan to unlock mentorship, reviews, and priority support."
	if !reply.Matched {
		t.Fatalf("expected a match, got fallback")
	}
	if reply.Content != want {
		t.Errorf("Content = %q, want %q", reply.Content, want)
	}
}

func TestRespondFallsBackWithoutFAQs(t *testing.T) {
	m := NewMatcher(nil)
	for _, q := range []string{"visa", "how do i upgrade", "a"} {
		reply := m.Respond(q)
		if reply.Matched {
			t.Errorf("Respond(%q) matched with no FAQs", q)
		}
		assertRoutesInOrder(t, reply.Content)
	}
}

func TestRespondBlankQueryFallsBack(t *testing.T) {
	m := NewMatcher(helpCenterFAQs)
	if reply := m.Respond("   "); reply.Matched || reply.Content != FallbackReply {
		t.Errorf("blank query should fall back, got %+v", reply)
	}
}

func TestRankIsStableOnTies(t *testing.T) {
	faqs := []FAQ{
		{Question: "first visa"},
		{Question: "second"},
		{Question: "third visa"},
	}
	ranked := NewMatcher(faqs).Rank("visa")

	got := make([]string, len(ranked))
	for i, r := range ranked {
		got[i] = r.FAQ.Question
	}
	want := []string{"first visa", "third visa", "second"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("Rank order = %v, want %v", got, want)
	}
}

func assertRoutesInOrder(t *testing.T, text string) {
	t.Helper()
	pos := -1
	for _, r := range Routes {
		idx := strings.Index(text, string(r))
		if idx < 0 {
			t.Fatalf("fallback is missing %s", r)
		}
		if idx <= pos {
			t.Fatalf("route %s is out of order", r)
		}
		pos = idx
	}
}
