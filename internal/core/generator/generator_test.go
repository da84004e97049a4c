package generator

import (
	"strings"
	"testing"

	"github.com/Caseforge/caseforge-cli/internal/core/suite"
)

func TestGenerateDispatchesOnKind(t *testing.T) {
	storyCases := Generate(suite.InputUserStory, "As a user, I want to view reports")
	if len(storyCases) != 5 {
		t.Errorf("expected 5 story cases, got %d", len(storyCases))
	}

	contractCases := Generate(suite.InputAPIContract, `{"paths": {"/users": {"get": {}}}}`)
	if len(contractCases) == 0 {
		t.Fatal("expected contract cases")
	}
	if !strings.HasPrefix(contractCases[0].Title, "GET /users") {
		t.Errorf("expected endpoint-level case, got %q", contractCases[0].Title)
	}
}

func TestGenerateUnknownKindDefaultsToStory(t *testing.T) {
	cases := Generate("something-else", "As a user, I want to view reports")

	if len(cases) != 5 {
		t.Errorf("expected story synthesis for unknown kind, got %d cases", len(cases))
	}
}

func TestNewSuite(t *testing.T) {
	s := NewSuite(suite.InputUserStory, "As a user, I want to view reports", "reports")

	if s.ID == "" {
		t.Error("expected generated suite ID")
	}
	if s.Name != "reports" {
		t.Errorf("expected name 'reports', got %q", s.Name)
	}
	if s.IsTemporary {
		t.Error("named suite must not be temporary")
	}
	if s.InputKind != suite.InputUserStory {
		t.Errorf("unexpected input kind %q", s.InputKind)
	}
	if len(s.Cases) == 0 {
		t.Error("expected generated cases")
	}
	if s.CreatedAt.IsZero() || !s.CreatedAt.Equal(s.UpdatedAt) {
		t.Error("expected matching creation and update timestamps")
	}
}

func TestNewSuiteUnnamedIsTemporary(t *testing.T) {
	s := NewSuite(suite.InputUserStory, "As a user, I want to view reports", "")

	if !s.IsTemporary {
		t.Error("unnamed suite must be temporary")
	}
}
