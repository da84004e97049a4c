// Package generator is the single entry point of the engine: it dispatches
// a generation request to the story or contract synthesizer based on the
// declared input kind.
package generator

import (
	"time"

	"github.com/google/uuid"

	"github.com/Caseforge/caseforge-cli/internal/core/contract"
	"github.com/Caseforge/caseforge-cli/internal/core/story"
	"github.com/Caseforge/caseforge-cli/internal/core/suite"
)

// FromUserStory synthesizes 5-6 test cases from a user story.
// Pure function of its input; never fails.
func FromUserStory(text string) []suite.TestCase {
	return story.Synthesize(text)
}

// FromAPIContract synthesizes 2-13 test cases from an API contract.
// Pure function of its input; never fails.
func FromAPIContract(text string) []suite.TestCase {
	return contract.Synthesize(text)
}

// Generate dispatches on kind. Unknown kinds are treated as user stories,
// matching the lenient defaulting used everywhere else in the engine.
func Generate(kind, text string) []suite.TestCase {
	if kind == suite.InputAPIContract {
		return FromAPIContract(text)
	}
	return FromUserStory(text)
}

// NewSuite runs a generation and wraps the result with identity and
// timestamps so it can be persisted or displayed.
func NewSuite(kind, text, name string) *suite.Suite {
	now := time.Now()
	return &suite.Suite{
		ID:          uuid.NewString(),
		Name:        name,
		InputKind:   kind,
		InputText:   text,
		Cases:       Generate(kind, text),
		IsTemporary: name == "",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
