// Package lexicon provides the fixed vocabularies and extraction helpers
// the synthesizers use to pull domain nouns and action verbs out of
// free-form input.
package lexicon

import (
	"regexp"
	"strings"
)

// Domain nouns commonly found in user stories, singular and plural forms.
var entityVocabulary = []string{
	"order", "orders", "product", "products", "user", "users",
	"account", "accounts", "profile", "profiles", "payment", "payments",
	"cart", "booking", "bookings", "reservation", "reservations",
	"ticket", "tickets", "item", "items", "document", "documents",
	"report", "reports", "invoice", "invoices", "message", "messages",
	"notification", "notifications", "comment", "comments", "post", "posts",
	"article", "articles", "event", "events", "task", "tasks",
	"project", "projects", "file", "files", "image", "images",
	"video", "videos", "customer", "customers", "employee", "employees",
}

// Action verbs commonly found in user stories, checked in this order.
var verbVocabulary = []string{
	"create", "add", "update", "edit", "modify", "delete", "remove",
	"view", "see", "display", "search", "find", "filter", "sort",
	"upload", "download", "send", "receive", "submit", "approve",
	"reject", "cancel", "book", "reserve", "purchase", "pay",
	"login", "logout", "register", "authenticate", "share",
	"export", "import", "sync",
}

var (
	entityPattern = regexp.MustCompile(`(?i)\b(` + strings.Join(entityVocabulary, "|") + `)\b`)
	articleNoun   = regexp.MustCompile(`(?i)\b(my|the|a|an) ([a-z]+)`)
)

// Entities returns the domain nouns found in text, first-seen order,
// de-duplicated. When the vocabulary yields nothing it captures the noun
// following an article, and failing that returns ["item"]. Never empty.
func Entities(text string) []string {
	var entities []string
	seen := make(map[string]bool)

	for _, match := range entityPattern.FindAllString(text, -1) {
		if !seen[match] {
			seen[match] = true
			entities = append(entities, match)
		}
	}

	if len(entities) == 0 {
		if m := articleNoun.FindStringSubmatch(text); m != nil {
			entities = append(entities, m[2])
		}
	}

	if len(entities) == 0 {
		return []string{"item"}
	}
	return entities
}

// Verbs returns the action verbs present in action as substrings,
// in vocabulary order. Falls back to ["perform"]. Never empty.
func Verbs(action string) []string {
	var verbs []string
	lowerAction := strings.ToLower(action)

	for _, verb := range verbVocabulary {
		if strings.Contains(lowerAction, verb) {
			verbs = append(verbs, verb)
		}
	}

	if len(verbs) == 0 {
		return []string{"perform"}
	}
	return verbs
}
