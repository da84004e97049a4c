package suite

import (
	"encoding/json"
	"fmt"
	"time"
)

// Test case classifications. The engine only ever emits these three values.
const (
	TypePositive = "positive"
	TypeNegative = "negative"
	TypeEdgeCase = "edge-case"
)

// Priorities assigned by the synthesizers.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Input kinds accepted by the generator.
const (
	InputUserStory   = "user-story"
	InputAPIContract = "api-contract"
)

// TestCase is a single synthesized integration-test scenario.
// IDs are sequential strings starting at "1", unique within one
// generation run only.
type TestCase struct {
	ID             string         `json:"id"`
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	Type           string         `json:"type" jsonschema:"enum=positive,enum=negative,enum=edge-case"`
	Priority       string         `json:"priority" jsonschema:"enum=high,enum=medium,enum=low"`
	Steps          []string       `json:"steps"`
	ExpectedResult string         `json:"expected_result"`
	Preconditions  []string       `json:"preconditions"`
	TestData       map[string]any `json:"test_data,omitempty"`
}

// Suite wraps one generation run together with the input that produced it.
type Suite struct {
	ID          string     `json:"id"`
	Name        string     `json:"name,omitempty"`
	InputKind   string     `json:"input_kind"`
	InputText   string     `json:"input_text"`
	Cases       []TestCase `json:"cases"`
	IsTemporary bool       `json:"is_temporary"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Summary returns a one-line description for list views.
// Format: "6 cases from user-story"
func (s *Suite) Summary() string {
	noun := "cases"
	if len(s.Cases) == 1 {
		noun = "case"
	}
	return fmt.Sprintf("%d %s from %s", len(s.Cases), noun, s.InputKind)
}

// CountByType returns how many cases carry the given type label.
func (s *Suite) CountByType(caseType string) int {
	count := 0
	for _, tc := range s.Cases {
		if tc.Type == caseType {
			count++
		}
	}
	return count
}

// TestDataJSON renders the case's test data as indented JSON for display.
// Returns an empty string when there is no test data.
func (tc *TestCase) TestDataJSON() string {
	if len(tc.TestData) == 0 {
		return ""
	}
	data, err := json.MarshalIndent(tc.TestData, "", "  ")
	if err != nil {
		return ""
	}
	return string(data)
}
