package helpdesk

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
)

// MatchThreshold is the score a FAQ has to exceed (strictly) before its
// answer is returned instead of the fallback.
const MatchThreshold = 0.3

// FallbackReply lists the canonical quick links in fixed order.
const FallbackReply = "I couldn’t find an exact answer, but here are quick links: \n" +
	"• Visa: /visa\n" +
	"• Jobs: /jobs\n" +
	"• Profile: /profile\n" +
	"• Addons: /addons\n" +
	"• Pricing: /pricing"

// FAQ is a static question/answer pair.
type FAQ struct {
	Question string `json:"question" yaml:"q"`
	Answer   string `json:"answer" yaml:"a"`
}

// ScoredMatch is a FAQ together with its score for one query.
type ScoredMatch struct {
	FAQ   FAQ     `json:"faq"`
	Score float64 `json:"score"`
}

// Reply is what a Responder produces for a single user message.
type Reply struct {
	Content string
	Matched bool
}

// Responder turns a user query into the assistant's reply text.
type Responder interface {
	Respond(query string) Reply
}

type indexedFAQ struct {
	faq      FAQ
	document string
}

// Matcher scores queries against a fixed FAQ list.
type Matcher struct {
	index []indexedFAQ
}

// NewMatcher builds the document text of every FAQ once.
func NewMatcher(faqs []FAQ) *Matcher {
	index := make([]indexedFAQ, len(faqs))
	for i, f := range faqs {
		index[i] = indexedFAQ{
			faq:      f,
			document: strings.ToLower(f.Question + " " + f.Answer),
		}
	}
	return &Matcher{index: index}
}

// isSpace follows the browser's \s class: U+FEFF separates tokens and
// U+0085 does not.
func isSpace(r rune) bool {
	if r == '\uFEFF' {
		return true
	}
	return r != '\u0085' && unicode.IsSpace(r)
}

// Len returns the number of indexed FAQs.
func (m *Matcher) Len() int { return len(m.index) }

// Score is the fraction of whitespace-separated query tokens that appear
// as substrings of document. The query is lowercased; document is expected
// to be lowercased already. A query with no tokens scores 0.
func Score(document, query string) float64 {
	tokens := strings.FieldsFunc(strings.ToLower(query), isSpace)
	if len(tokens) == 0 {
		return 0
	}
	hits := 0
	for _, t := range tokens {
		if strings.Contains(document, t) {
			hits++
		}
	}
	return float64(hits) / float64(len(tokens))
}

// Rank scores every FAQ and orders them by descending score. Equal scores
// keep their original order.
func (m *Matcher) Rank(query string) []ScoredMatch {
	scored := make([]ScoredMatch, len(m.index))
	for i, item := range m.index {
		scored[i] = ScoredMatch{FAQ: item.faq, Score: Score(item.document, query)}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}

// Best returns the top ranked FAQ when it clears MatchThreshold.
func (m *Matcher) Best(query string) (ScoredMatch, bool) {
	ranked := m.Rank(query)
	if len(ranked) == 0 || !exceedsThreshold(ranked[0].Score) {
		return ScoredMatch{}, false
	}
	return ranked[0], true
}

// Respond formats the best FAQ as "Q: <question>\n\n<answer>", or returns
// FallbackReply.
func (m *Matcher) Respond(query string) Reply {
	best, ok := m.Best(query)
	if !ok {
		return Reply{Content: FallbackReply}
	}
	return Reply{Content: FormatAnswer(best.FAQ), Matched: true}
}

// FormatAnswer renders a matched FAQ the way the assistant shows it.
func FormatAnswer(f FAQ) string {
	return fmt.Sprintf("Q: %s\n\n%s", f.Question, f.Answer)
}

func exceedsThreshold(score float64) bool {
	return score > MatchThreshold
}
