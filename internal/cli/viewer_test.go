package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Caseforge/caseforge-cli/internal/core/renderer"
	"github.com/Caseforge/caseforge-cli/internal/core/suite"
)

func viewerSuite(cases []suite.TestCase) *suite.Suite {
	return &suite.Suite{
		ID:        "viewer-test-id",
		InputKind: suite.InputUserStory,
		Cases:     cases,
	}
}

func TestViewerRendersSelectedCase(t *testing.T) {
	m := NewViewerModel(viewerSuite([]suite.TestCase{{
		ID:             "1",
		Title:          "Feature - user can view reports",
		Description:    "Verify report viewing",
		Type:           suite.TypePositive,
		Priority:       suite.PriorityHigh,
		Steps:          []string{"Open the reports page"},
		ExpectedResult: "Reports are shown",
	}}), renderer.TargetJest)

	out := m.View()
	if !strings.Contains(out, "Feature - user can view reports") {
		t.Errorf("expected case title in view, got:\n%s", out)
	}
	if !strings.Contains(out, "Open the reports page") {
		t.Errorf("expected step in view, got:\n%s", out)
	}
}

func TestViewerEmptySuiteDoesNotPanic(t *testing.T) {
	m := NewViewerModel(viewerSuite(nil), renderer.TargetJest)

	out := m.View()
	if !strings.Contains(out, "no test cases") {
		t.Errorf("expected empty-state message, got:\n%s", out)
	}

	// Copy on an empty suite must be a no-op rather than an index panic.
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}})
	if _, ok := updated.(ViewerModel); !ok {
		t.Fatalf("unexpected model type %T", updated)
	}
}

func TestViewerCyclesFormats(t *testing.T) {
	format := renderer.TargetJest
	for i := 0; i < len(renderer.Targets); i++ {
		format = nextTarget(format)
	}
	if format != renderer.TargetJest {
		t.Errorf("expected format cycle to return to jest, got %q", format)
	}

	if nextTarget("unknown") != renderer.TargetJest {
		t.Errorf("expected unknown format to reset to jest")
	}
}
