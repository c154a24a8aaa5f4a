package helpdesk

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const faqYAML = `faqs:
  - q: How do I upgrade to Premium?
    a: Visit the Pricing section.
  - q: ""
    a: skipped
  - q: Where are jobs?
    a: Open /jobs.
`

func TestParseFAQs(t *testing.T) {
	faqs, err := ParseFAQs([]byte(faqYAML))
	require.NoError(t, err)
	assert.Equal(t, []FAQ{
		{Question: "How do I upgrade to Premium?", Answer: "Visit the Pricing section."},
		{Question: "Where are jobs?", Answer: "Open /jobs."},
	}, faqs)

	_, err = ParseFAQs([]byte("faqs: [unterminated"))
	assert.Error(t, err)
}

func TestKnowledgeBaseMissingFileUsesDefaults(t *testing.T) {
	kb, err := NewKnowledgeBase(filepath.Join(t.TempDir(), "missing.yaml"), helpCenterFAQs)
	require.NoError(t, err)
	assert.Equal(t, helpCenterFAQs, kb.FAQs())
	assert.True(t, kb.Respond("upgrade premium").Matched)
}

func TestKnowledgeBaseReloadKeepsListOnParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "faqs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(faqYAML), 0o644))

	kb, err := NewKnowledgeBase(path, helpCenterFAQs)
	require.NoError(t, err)
	require.Len(t, kb.FAQs(), 2)

	require.NoError(t, os.WriteFile(path, []byte("faqs: [unterminated"), 0o644))
	assert.Error(t, kb.Reload())
	assert.Len(t, kb.FAQs(), 2)
	assert.Equal(t, 2, kb.Matcher().Len())
}

func TestKnowledgeBaseWatchReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "faqs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(faqYAML), 0o644))

	kb, err := NewKnowledgeBase(path, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, kb.Watch(ctx, nil))

	updated := "faqs:\n  - q: What does pricing include?\n    a: See /pricing.\n"
	require.NoError(t, os.WriteFile(path, []byte(updated), 0o644))

	assert.Eventually(t, func() bool {
		faqs := kb.FAQs()
		return len(faqs) == 1 && faqs[0].Question == "What does pricing include?"
	}, 2*time.Second, 20*time.Millisecond)
}

func TestKnowledgeBaseWatchKeepsListWhenFileMovesAway(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "faqs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(faqYAML), 0o644))

	kb, err := NewKnowledgeBase(path, helpCenterFAQs)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, kb.Watch(ctx, nil))

	require.NoError(t, os.Rename(path, filepath.Join(dir, "faqs.yaml.bak")))
	assert.Never(t, func() bool {
		return len(kb.FAQs()) != 2
	}, 300*time.Millisecond, 20*time.Millisecond)

	updated := "faqs:\n  - q: What does pricing include?\n    a: See /pricing.\n"
	require.NoError(t, os.WriteFile(path, []byte(updated), 0o644))
	assert.Eventually(t, func() bool {
		return len(kb.FAQs()) == 1
	}, 2*time.Second, 20*time.Millisecond)
}
