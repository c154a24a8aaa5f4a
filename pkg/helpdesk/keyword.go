package helpdesk

import "strings"

// KeywordRule answers with Reply when the query contains any of Keywords.
type KeywordRule struct {
	Keywords []string
	Reply    string
}

// KeywordResponder is the support desk's rule-based bot. Rules are checked
// in order; the first hit wins.
type KeywordResponder struct {
	rules    []KeywordRule
	fallback string
}

func NewKeywordResponder(rules []KeywordRule, fallback string) *KeywordResponder {
	return &KeywordResponder{rules: rules, fallback: fallback}
}

func (k *KeywordResponder) Respond(query string) Reply {
	q := strings.ToLower(query)
	for _, rule := range k.rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(q, kw) {
				return Reply{Content: rule.Reply, Matched: true}
			}
		}
	}
	return Reply{Content: k.fallback}
}
