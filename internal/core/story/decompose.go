// Package story turns a free-form user story into a structured model and
// synthesizes the fixed taxonomy of integration-test cases from it.
package story

import (
	"regexp"
	"strings"

	"github.com/Caseforge/caseforge-cli/internal/core/lexicon"
)

// Model is the structured form of a user story. Every field has a lenient
// default so malformed stories degrade instead of failing.
type Model struct {
	Role          string `json:"role"`
	Action        string `json:"action"`
	Benefit       string `json:"benefit"`
	PrimaryEntity string `json:"primary_entity"`
	PrimaryVerb   string `json:"primary_verb"`
}

var (
	roleCommaPattern  = regexp.MustCompile(`(?i)As an? (.*?),`)
	rolePlainPattern  = regexp.MustCompile(`(?i)As an? (.*?) I`)
	actionFullPattern = regexp.MustCompile(`(?i)I want to (.*?) so that`)
	actionTailPattern = regexp.MustCompile(`(?i)I want to (.*?)$`)
	benefitPattern    = regexp.MustCompile(`(?i)so that (.*?)$`)
)

// Decompose extracts {role, action, benefit, entity, verb} from a raw
// user story. Missing pieces fall back to defaults: role "user", action
// the first 100 characters of the story, benefit "achieve the desired
// outcome".
func Decompose(story string) Model {
	model := Model{
		Role:    "user",
		Benefit: "achieve the desired outcome",
	}

	if m := roleCommaPattern.FindStringSubmatch(story); m != nil {
		model.Role = strings.TrimSpace(m[1])
	} else if m := rolePlainPattern.FindStringSubmatch(story); m != nil {
		model.Role = strings.TrimSpace(m[1])
	}

	if m := actionFullPattern.FindStringSubmatch(story); m != nil {
		model.Action = strings.TrimSpace(m[1])
	} else if m := actionTailPattern.FindStringSubmatch(story); m != nil {
		model.Action = strings.TrimSpace(m[1])
	} else {
		model.Action = truncate(story, 100)
	}

	if m := benefitPattern.FindStringSubmatch(story); m != nil {
		model.Benefit = strings.TrimSpace(m[1])
	}

	// Entities come from the action, not the whole story; scanning the
	// story would pick up the role noun ("customer", "user") first.
	model.PrimaryEntity = lexicon.Entities(model.Action)[0]
	model.PrimaryVerb = lexicon.Verbs(model.Action)[0]

	return model
}

// truncate cuts on rune boundaries so a multibyte character at the limit
// is never split into invalid UTF-8.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
