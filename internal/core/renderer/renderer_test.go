package renderer

import (
	"strings"
	"testing"

	"github.com/Caseforge/caseforge-cli/internal/core/suite"
)

func sampleCase() suite.TestCase {
	return suite.TestCase{
		ID:             "1",
		Title:          "Order Management - customer can cancel",
		Description:    "Verify cancellation works",
		Type:           suite.TypePositive,
		Priority:       suite.PriorityHigh,
		Steps:          []string{"Authenticate", "Cancel the order"},
		ExpectedResult: "Order is cancelled",
		Preconditions:  []string{"System is accessible"},
		TestData:       map[string]any{"entity": "order"},
	}
}

func TestFormatJest(t *testing.T) {
	out := Format(sampleCase(), TargetJest)

	for _, want := range []string{
		"describe('Order Management - customer can cancel', () => {",
		"test('Verify cancellation works', async () => {",
		"// Arrange",
		"// System is accessible",
		"const testData = {",
		"// Step 1: Authenticate",
		"// Step 2: Cancel the order",
		"// Order is cancelled",
		"expect(result).toBeDefined();",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("jest output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatPlaywright(t *testing.T) {
	out := Format(sampleCase(), TargetPlaywright)

	for _, want := range []string{
		"test('Order Management - customer can cancel', async ({ page }) => {",
		"// 1. Authenticate",
		"// 2. Cancel the order",
		"// Expected Result: Order is cancelled",
		"await expect(page).toBeDefined();",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("playwright output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatCypress(t *testing.T) {
	out := Format(sampleCase(), TargetCypress)

	for _, want := range []string{
		"it('Verify cancellation works', () => {",
		"cy.visit('/');",
		"// Expected Result: Order is cancelled",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("cypress output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatUnknownTargetFallsBackToJest(t *testing.T) {
	if Format(sampleCase(), "mocha") != Format(sampleCase(), TargetJest) {
		t.Error("expected unknown target to render as jest")
	}
}

func TestFormatOmitsTestDataWhenEmpty(t *testing.T) {
	tc := sampleCase()
	tc.TestData = nil

	if strings.Contains(Format(tc, TargetJest), "const testData") {
		t.Error("expected no testData block for empty test data")
	}
}

func TestValidTarget(t *testing.T) {
	for _, target := range Targets {
		if !ValidTarget(target) {
			t.Errorf("expected %q to be valid", target)
		}
	}
	if ValidTarget("mocha") {
		t.Error("expected 'mocha' to be invalid")
	}
}

func TestArtifactName(t *testing.T) {
	tests := map[string]string{
		TargetJest:       "test-cases-jest.test.js",
		TargetPlaywright: "test-cases-playwright.spec.js",
		TargetCypress:    "test-cases-cypress.spec.js",
	}
	for target, want := range tests {
		if got := ArtifactName(target); got != want {
			t.Errorf("ArtifactName(%q) = %q, want %q", target, got, want)
		}
	}
}

func TestExportAllJoinsWithBlankLine(t *testing.T) {
	cases := []suite.TestCase{sampleCase(), sampleCase()}

	out := ExportAll(cases, TargetCypress)

	if strings.Count(out, "describe(") != 2 {
		t.Errorf("expected 2 describe blocks, got:\n%s", out)
	}
	if !strings.Contains(out, "});\n\ndescribe(") {
		t.Error("expected blank-line separator between cases")
	}
}
