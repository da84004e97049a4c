package story

import "strings"

// Context summarizes the narrative framing of a story: which feature it
// belongs to, what must already exist, and how the concurrency edge case
// should be phrased.
type Context struct {
	Feature             string   `json:"feature"`
	Prerequisites       []string `json:"prerequisites"`
	ConcurrencyScenario string   `json:"concurrency_scenario"`
	ConcurrencyCount    int      `json:"concurrency_count"`
}

// contextRule pairs a keyword predicate with the context it produces.
// Rules are evaluated top-down and the first match wins, so specific
// features (authentication, orders) take precedence over the generic
// CRUD rules below them.
type contextRule struct {
	matches func(story, action string) bool
	result  Context
}

var contextRules = []contextRule{
	{
		matches: func(story, _ string) bool {
			return containsAny(story, "login", "sign in", "authenticate")
		},
		result: Context{
			Feature:             "User Authentication",
			Prerequisites:       []string{"User account exists in system"},
			ConcurrencyScenario: "multiple login attempts from different locations",
			ConcurrencyCount:    3,
		},
	},
	{
		matches: func(story, _ string) bool {
			return containsAny(story, "register", "sign up")
		},
		result: Context{
			Feature:             "User Registration",
			ConcurrencyScenario: "simultaneous registrations with similar email addresses",
			ConcurrencyCount:    3,
		},
	},
	{
		matches: func(story, _ string) bool {
			return containsAny(story, "order", "purchase")
		},
		result: Context{
			Feature:             "Order Management",
			Prerequisites:       []string{"Products available in inventory", "Payment method configured"},
			ConcurrencyScenario: "multiple users ordering the last available item",
			ConcurrencyCount:    5,
		},
	},
	{
		matches: func(story, _ string) bool {
			return containsAny(story, "payment", "checkout")
		},
		result: Context{
			Feature:             "Payment Processing",
			Prerequisites:       []string{"Valid payment method", "Sufficient funds/credit"},
			ConcurrencyScenario: "duplicate payment submissions",
			ConcurrencyCount:    3,
		},
	},
	{
		matches: func(_, action string) bool {
			return containsAny(action, "create", "add")
		},
		result: Context{
			Feature:             "Resource Creation",
			ConcurrencyScenario: "simultaneous creation of resources with same identifiers",
			ConcurrencyCount:    3,
		},
	},
	{
		matches: func(_, action string) bool {
			return containsAny(action, "update", "edit")
		},
		result: Context{
			Feature:             "Resource Update",
			Prerequisites:       []string{"Resource exists in system"},
			ConcurrencyScenario: "conflicting updates to the same resource",
			ConcurrencyCount:    3,
		},
	},
	{
		matches: func(_, action string) bool {
			return containsAny(action, "delete", "remove")
		},
		result: Context{
			Feature:             "Resource Deletion",
			Prerequisites:       []string{"Resource exists and is not referenced by other entities"},
			ConcurrencyScenario: "simultaneous deletion attempts on the same resource",
			ConcurrencyCount:    3,
		},
	},
	{
		matches: func(_, action string) bool {
			return containsAny(action, "view", "display")
		},
		result: Context{
			Feature:             "Data Retrieval",
			Prerequisites:       []string{"Data exists in system"},
			ConcurrencyScenario: "high-volume concurrent read operations",
			ConcurrencyCount:    20,
		},
	},
}

// Classify returns the feature context for a story. The raw story text and
// the extracted action are matched case-insensitively against the ordered
// rule list; when nothing matches, a generic context is returned.
func Classify(story, action string) Context {
	lowerStory := strings.ToLower(story)
	lowerAction := strings.ToLower(action)

	for _, rule := range contextRules {
		if rule.matches(lowerStory, lowerAction) {
			return rule.result
		}
	}

	return Context{
		Feature:             "Feature",
		ConcurrencyScenario: "multiple users accessing the resource",
		ConcurrencyCount:    3,
	}
}

func containsAny(s string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
