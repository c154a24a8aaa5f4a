package constant

import "afrimigrate-be/pkg/helpdesk"

const (
	DeskHelp    = "help"
	DeskSupport = "support"

	SupportGreeting = "Hi! I'm your migration assistant. Ask me about visas, documents, or next steps."
	SupportFallback = "Thanks! I'm a placeholder AI. For precise info, consult official immigration portals listed in Resources."

	AssistantEventsChannel = "assistant_events"
)

// HelpCenterFAQs is served when no FAQ file is configured.
var HelpCenterFAQs = []helpdesk.FAQ{
	{
		Question: "How do I start my migration journey?",
		Answer:   "Create a free account, choose your target country, and follow the 3‑step plan on the Home page.",
	},
	{
		Question: "Where can I find visa requirements?",
		Answer:   "Open the Visa page, pick a destination, and review visa types, documents, and processing timelines.",
	},
	{
		Question: "How do I upgrade to Premium?",
		Answer:   "Visit the Pricing section and select a plan to unlock mentorship, reviews, and priority support.",
	},
}

var SupportRules = []helpdesk.KeywordRule{
	{
		Keywords: []string{"processing", "time"},
		Reply:    "Processing times vary by visa type and country. Check official websites (e.g., IRCC/UKVI) and apply early.",
	},
	{
		Keywords: []string{"document", "docs"},
		Reply:    "Common documents include passport, photos, proof of funds, travel history, and purpose letters. See our Visa page for details.",
	},
	{
		Keywords: []string{"premium"},
		Reply:    "Premium includes exclusive groups, webinars, and priority support.",
	},
}
