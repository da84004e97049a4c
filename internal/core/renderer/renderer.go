// Package renderer turns test cases into illustrative code skeletons for
// common JavaScript test frameworks. The output embeds the scenario as
// comments; it is a starting point, not a runnable test.
package renderer

import (
	"fmt"
	"strings"

	"github.com/Caseforge/caseforge-cli/internal/core/suite"
)

// Supported export targets.
const (
	TargetJest       = "jest"
	TargetPlaywright = "playwright"
	TargetCypress    = "cypress"
)

// Targets lists the supported export targets in display order.
var Targets = []string{TargetJest, TargetPlaywright, TargetCypress}

// ValidTarget reports whether target names a supported framework.
func ValidTarget(target string) bool {
	for _, t := range Targets {
		if t == target {
			return true
		}
	}
	return false
}

// ArtifactName returns the file name for an exported bundle.
func ArtifactName(target string) string {
	if target == TargetJest {
		return "test-cases-jest.test.js"
	}
	return fmt.Sprintf("test-cases-%s.spec.js", target)
}

// Format renders a single test case as a code skeleton for the target
// framework. Unknown targets render as jest.
func Format(tc suite.TestCase, target string) string {
	switch target {
	case TargetPlaywright:
		return formatPlaywright(tc)
	case TargetCypress:
		return formatCypress(tc)
	default:
		return formatJest(tc)
	}
}

// ExportAll concatenates the formatted cases with blank-line separators.
func ExportAll(cases []suite.TestCase, target string) string {
	formatted := make([]string, len(cases))
	for i, tc := range cases {
		formatted[i] = Format(tc, target)
	}
	return strings.Join(formatted, "\n\n")
}

func formatJest(tc suite.TestCase) string {
	var b strings.Builder

	fmt.Fprintf(&b, "describe('%s', () => {\n", tc.Title)
	fmt.Fprintf(&b, "  test('%s', async () => {\n", tc.Description)
	b.WriteString("    // Arrange\n")
	writeComments(&b, "    ", tc.Preconditions)
	if data := tc.TestDataJSON(); data != "" {
		fmt.Fprintf(&b, "    const testData = %s;\n", indentBlock(data, "    "))
	}
	b.WriteString("\n    // Act\n")
	for i, step := range tc.Steps {
		fmt.Fprintf(&b, "    // Step %d: %s\n", i+1, step)
	}
	b.WriteString("\n    // Assert\n")
	fmt.Fprintf(&b, "    // %s\n", tc.ExpectedResult)
	b.WriteString("    expect(result).toBeDefined();\n")
	b.WriteString("  });\n")
	b.WriteString("});")

	return b.String()
}

func formatPlaywright(tc suite.TestCase) string {
	var b strings.Builder

	fmt.Fprintf(&b, "test('%s', async ({ page }) => {\n", tc.Title)
	fmt.Fprintf(&b, "  // %s\n", tc.Description)
	b.WriteString("\n  // Preconditions\n")
	writeComments(&b, "  ", tc.Preconditions)
	b.WriteString("\n  // Test Steps\n")
	writeNumberedComments(&b, "  ", tc.Steps)
	fmt.Fprintf(&b, "\n  // Expected Result: %s\n", tc.ExpectedResult)
	b.WriteString("  await expect(page).toBeDefined();\n")
	b.WriteString("});")

	return b.String()
}

func formatCypress(tc suite.TestCase) string {
	var b strings.Builder

	fmt.Fprintf(&b, "describe('%s', () => {\n", tc.Title)
	fmt.Fprintf(&b, "  it('%s', () => {\n", tc.Description)
	b.WriteString("    // Preconditions\n")
	writeComments(&b, "    ", tc.Preconditions)
	b.WriteString("\n    // Test Steps\n")
	writeNumberedComments(&b, "    ", tc.Steps)
	fmt.Fprintf(&b, "\n    // Expected Result: %s\n", tc.ExpectedResult)
	b.WriteString("    cy.visit('/');\n")
	b.WriteString("  });\n")
	b.WriteString("});")

	return b.String()
}

func writeComments(b *strings.Builder, indent string, lines []string) {
	for _, line := range lines {
		fmt.Fprintf(b, "%s// %s\n", indent, line)
	}
}

func writeNumberedComments(b *strings.Builder, indent string, lines []string) {
	for i, line := range lines {
		fmt.Fprintf(b, "%s// %d. %s\n", indent, i+1, line)
	}
}

// indentBlock indents every line after the first so multi-line JSON sits
// inside the surrounding statement.
func indentBlock(s, indent string) string {
	return strings.ReplaceAll(s, "\n", "\n"+indent)
}
