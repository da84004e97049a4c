package story

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/Caseforge/caseforge-cli/internal/core/suite"
)

var integrationPattern = regexp.MustCompile(`(?i)integrat|connect|sync|webhook|api|external|third[- ]party`)

// Synthesize expands a raw user story into the fixed sequence of test
// cases: positive, invalid data, unauthorized, boundary, concurrency, and
// (when the story mentions another system) an integration flow. Always
// returns 5 or 6 cases with sequential IDs starting at "1". Extraction and
// classification run exactly once; every case interpolates the same model.
func Synthesize(text string) []suite.TestCase {
	model := Decompose(text)
	ctx := Classify(text, model.Action)
	boundary := BoundaryFor(model.PrimaryEntity)

	cases := []suite.TestCase{
		positiveCase(model, ctx),
		invalidDataCase(model, ctx),
		unauthorizedCase(model, ctx),
		boundaryCase(model, ctx, boundary),
		concurrencyCase(model, ctx),
	}

	if integrationPattern.MatchString(text) {
		cases = append(cases, integrationCase(model, ctx))
	}

	for i := range cases {
		cases[i].ID = strconv.Itoa(i + 1)
	}

	return cases
}

func positiveCase(m Model, ctx Context) suite.TestCase {
	dataPrecondition := "Required data exists in the system"
	if len(ctx.Prerequisites) > 0 {
		dataPrecondition = strings.Join(ctx.Prerequisites, ", ")
	}

	return suite.TestCase{
		Title:       fmt.Sprintf("%s - %s can successfully %s", ctx.Feature, m.Role, m.Action),
		Description: fmt.Sprintf("Verify that a %s can successfully %s to %s", m.Role, m.Action, m.Benefit),
		Type:        suite.TypePositive,
		Priority:    suite.PriorityHigh,
		Steps: []string{
			fmt.Sprintf("User with role %q authenticates with the system", m.Role),
			fmt.Sprintf("Navigate to the %s interface", ctx.Feature),
			fmt.Sprintf("%s the %s with valid data", capitalize(m.PrimaryVerb), m.PrimaryEntity),
			fmt.Sprintf("Submit the request to %s", m.Action),
			"Verify success response and confirmation message",
			fmt.Sprintf("Verify the %s reflects the expected changes", m.PrimaryEntity),
		},
		ExpectedResult: fmt.Sprintf("%s successfully %s and the system confirms: %q", capitalize(m.Role), m.Action, m.Benefit),
		Preconditions: []string{
			"System is accessible",
			fmt.Sprintf("%s has valid credentials and required permissions", capitalize(m.Role)),
			dataPrecondition,
		},
		TestData: map[string]any{
			"role":       m.Role,
			"action":     m.Action,
			"entity":     m.PrimaryEntity,
			"sampleData": SampleFor(m.PrimaryEntity),
		},
	}
}

func invalidDataCase(m Model, ctx Context) suite.TestCase {
	return suite.TestCase{
		Title:       fmt.Sprintf("%s - Cannot %s with invalid %s data", ctx.Feature, m.Action, m.PrimaryEntity),
		Description: fmt.Sprintf("Verify that %s receives appropriate error when attempting to %s with invalid or incomplete %s information", m.Role, m.Action, m.PrimaryEntity),
		Type:        suite.TypeNegative,
		Priority:    suite.PriorityHigh,
		Steps: []string{
			fmt.Sprintf("User %q authenticates with the system", m.Role),
			fmt.Sprintf("Attempt to %s with missing required fields for %s", m.Action, m.PrimaryEntity),
			"Submit the invalid request",
			"Verify error response with status code 400",
			"Verify specific validation error message identifies missing/invalid fields",
			fmt.Sprintf("Verify the %s was not modified in the system", m.PrimaryEntity),
		},
		ExpectedResult: fmt.Sprintf("Request fails with clear validation error: \"Unable to %s: %s data is invalid or incomplete\"", m.Action, m.PrimaryEntity),
		Preconditions:  []string{"System is accessible"},
		TestData: map[string]any{
			"role":        m.Role,
			"invalidData": fmt.Sprintf("Missing required fields for %s", m.PrimaryEntity),
			"entity":      m.PrimaryEntity,
		},
	}
}

func unauthorizedCase(m Model, ctx Context) suite.TestCase {
	return suite.TestCase{
		Title:       fmt.Sprintf("%s - Unauthorized user cannot %s", ctx.Feature, m.Action),
		Description: fmt.Sprintf("Verify that users without proper authorization cannot %s as intended for %s", m.Action, m.Role),
		Type:        suite.TypeNegative,
		Priority:    suite.PriorityHigh,
		Steps: []string{
			fmt.Sprintf("Attempt to %s without authentication token", m.Action),
			"Verify request is rejected with 401/403 status code",
			fmt.Sprintf("Verify error message: \"Insufficient permissions to %s\"", m.Action),
			fmt.Sprintf("Confirm the %s remains unchanged", m.PrimaryEntity),
			"Test with authenticated user lacking required role",
			"Verify similar authorization error occurs",
		},
		ExpectedResult: fmt.Sprintf("Unauthorized access prevented: users who are not %q cannot %s", m.Role, m.Action),
		Preconditions:  []string{"System is accessible", "Role-based access control is configured"},
		TestData: map[string]any{
			"unauthorizedRole": "guest",
			"requiredRole":     m.Role,
			"entity":           m.PrimaryEntity,
		},
	}
}

func boundaryCase(m Model, ctx Context, b Boundary) suite.TestCase {
	return suite.TestCase{
		Title:       fmt.Sprintf("%s - Boundary conditions when %s", ctx.Feature, m.Action),
		Description: fmt.Sprintf("Verify system correctly handles edge cases and boundary values when %s attempts to %s", m.Role, m.Action),
		Type:        suite.TypeEdgeCase,
		Priority:    suite.PriorityMedium,
		Steps: []string{
			fmt.Sprintf("Test %s with maximum allowed %s", m.Action, b.MaxField),
			fmt.Sprintf("Test %s with minimum allowed %s", m.Action, b.MinField),
			fmt.Sprintf("Test %s with empty or null values for optional fields", m.Action),
			fmt.Sprintf("Test %s with special characters in %s %s", m.Action, m.PrimaryEntity, b.TextField),
			"Verify appropriate validation or acceptance for each scenario",
			"Verify data integrity is maintained",
		},
		ExpectedResult: fmt.Sprintf("System handles boundary cases gracefully: accepts valid edge values, rejects invalid ones with clear messages for %q", m.PrimaryEntity),
		Preconditions:  []string{"System is accessible", fmt.Sprintf("%s is authenticated", capitalize(m.Role))},
		TestData: map[string]any{
			"boundaries": b,
			"entity":     m.PrimaryEntity,
			"testScenarios": []string{
				fmt.Sprintf("Maximum %s", b.MaxField),
				fmt.Sprintf("Minimum %s", b.MinField),
				fmt.Sprintf("Special characters in %s", b.TextField),
			},
		},
	}
}

func concurrencyCase(m Model, ctx Context) suite.TestCase {
	return suite.TestCase{
		Title:       fmt.Sprintf("%s - Concurrent attempts to %s", ctx.Feature, m.Action),
		Description: fmt.Sprintf("Verify data consistency when multiple %ss attempt to %s simultaneously on the same %s", m.Role, m.Action, m.PrimaryEntity),
		Type:        suite.TypeEdgeCase,
		Priority:    suite.PriorityMedium,
		Steps: []string{
			fmt.Sprintf("Setup: Create test %s in known state", m.PrimaryEntity),
			fmt.Sprintf("Simulate %s", ctx.ConcurrencyScenario),
			fmt.Sprintf("Execute concurrent requests from multiple %s sessions", m.Role),
			fmt.Sprintf("Verify the final state of %s is consistent", m.PrimaryEntity),
			"Verify no data corruption or race conditions occurred",
			"Verify all operations are properly logged with timestamps",
		},
		ExpectedResult: fmt.Sprintf("System maintains data integrity: %s state is consistent, conflicts are detected and handled appropriately", m.PrimaryEntity),
		Preconditions: []string{
			"System supports concurrent access",
			fmt.Sprintf("Multiple %s accounts available for testing", m.Role),
			fmt.Sprintf("%s exists and is in testable state", m.PrimaryEntity),
		},
		TestData: map[string]any{
			"concurrencyTest":           ctx.ConcurrencyScenario,
			"entity":                    m.PrimaryEntity,
			"numberOfSimultaneousUsers": ctx.ConcurrencyCount,
		},
	}
}

func integrationCase(m Model, ctx Context) suite.TestCase {
	return suite.TestCase{
		Title:       fmt.Sprintf("%s - Integration flow when %s %s", ctx.Feature, m.Role, m.Action),
		Description: fmt.Sprintf("Verify end-to-end integration between systems when %s attempts to %s", m.Role, m.Action),
		Type:        suite.TypePositive,
		Priority:    suite.PriorityHigh,
		Steps: []string{
			fmt.Sprintf("%s initiates request to %s", capitalize(m.Role), m.Action),
			"Verify request is properly formatted and sent to integrated system",
			"Monitor for expected response from external system",
			"Verify data transformation and mapping between systems",
			fmt.Sprintf("Confirm %s is updated based on integration response", m.PrimaryEntity),
			"Verify audit trail captures integration events",
		},
		ExpectedResult: fmt.Sprintf("Integration completes successfully: %s is synchronized across systems, %s receives confirmation that %s", m.PrimaryEntity, m.Role, m.Benefit),
		Preconditions: []string{
			"All integrated systems are available and accessible",
			"Integration credentials are valid",
			fmt.Sprintf("%s has permissions for cross-system operations", capitalize(m.Role)),
		},
		TestData: map[string]any{
			"integration":          "External system integration",
			"entity":               m.PrimaryEntity,
			"expectedResponseTime": "< 3 seconds",
		},
	}
}
