package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Caseforge/caseforge-cli/internal/core/suite"
)

func testSuite(id, name string, temporary bool) *suite.Suite {
	return &suite.Suite{
		ID:          id,
		Name:        name,
		InputKind:   suite.InputUserStory,
		InputText:   "As a user, I want to view reports",
		Cases:       []suite.TestCase{{ID: "1", Title: "Test", Type: suite.TypePositive}},
		IsTemporary: temporary,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

func TestSuiteManagement(t *testing.T) {
	tempSuite := testSuite("temp-test-id", "", true)
	permanentSuite := testSuite("perm-test-id", "Test Suite", false)

	if err := SaveSuite(tempSuite); err != nil {
		t.Fatalf("Failed to save temporary suite: %v", err)
	}
	if err := SaveSuite(permanentSuite); err != nil {
		t.Fatalf("Failed to save permanent suite: %v", err)
	}

	loadedTemp, err := LoadSuite(tempSuite.ID)
	if err != nil {
		t.Fatalf("Failed to load temporary suite: %v", err)
	}
	if !loadedTemp.IsTemporary {
		t.Errorf("Expected temporary suite, got permanent")
	}

	loadedPerm, err := LoadSuite(permanentSuite.ID)
	if err != nil {
		t.Fatalf("Failed to load permanent suite: %v", err)
	}
	if loadedPerm.IsTemporary {
		t.Errorf("Expected permanent suite, got temporary")
	}
	if len(loadedPerm.Cases) != 1 {
		t.Errorf("Expected cases to round-trip, got %d", len(loadedPerm.Cases))
	}

	found, err := FindSuiteByName("Test Suite")
	if err != nil {
		t.Fatalf("Failed to find suite by name: %v", err)
	}
	if found.ID != permanentSuite.ID {
		t.Errorf("Found wrong suite: expected %s, got %s", permanentSuite.ID, found.ID)
	}

	named, err := ListNamedSuites()
	if err != nil {
		t.Fatalf("Failed to list named suites: %v", err)
	}
	foundNamed := false
	for _, s := range named {
		if s.ID == permanentSuite.ID {
			foundNamed = true
		}
		if s.ID == tempSuite.ID {
			t.Errorf("Temporary suite should not be in named suites list")
		}
	}
	if !foundNamed {
		t.Errorf("Named suite not found in list")
	}

	// Cleanup
	tempPath, _ := GetSuitePathByType(tempSuite.ID, true)
	os.RemoveAll(tempPath)

	permPath, _ := GetSuitePathByType(permanentSuite.ID, false)
	os.RemoveAll(permPath)
}

func TestCheckNameConflict(t *testing.T) {
	existing := testSuite("conflict-test-id", "Conflict Suite", false)
	if err := SaveSuite(existing); err != nil {
		t.Fatalf("Failed to save suite: %v", err)
	}
	defer func() {
		path, _ := GetSuitePathByType(existing.ID, false)
		os.RemoveAll(path)
	}()

	conflict, err := CheckNameConflict("Conflict Suite", "")
	if err != nil {
		t.Fatalf("Failed to check name conflict: %v", err)
	}
	if conflict == nil || conflict.ID != existing.ID {
		t.Errorf("Expected conflict with %s, got %v", existing.ID, conflict)
	}

	// The suite itself is excluded when renaming.
	conflict, err = CheckNameConflict("Conflict Suite", existing.ID)
	if err != nil {
		t.Fatalf("Failed to check name conflict: %v", err)
	}
	if conflict != nil {
		t.Errorf("Expected no conflict when excluding own ID, got %v", conflict)
	}

	conflict, err = CheckNameConflict("", "")
	if err != nil {
		t.Fatalf("Failed to check empty name: %v", err)
	}
	if conflict != nil {
		t.Errorf("Expected no conflict for empty name, got %v", conflict)
	}
}

func TestDeleteSuite(t *testing.T) {
	s := testSuite("delete-test-id", "Delete Me", false)
	if err := SaveSuite(s); err != nil {
		t.Fatalf("Failed to save suite: %v", err)
	}

	if err := DeleteSuite(s); err != nil {
		t.Fatalf("Failed to delete suite: %v", err)
	}

	if _, err := LoadSuite(s.ID); err == nil {
		t.Errorf("Expected load to fail after delete")
	}
}

func TestGetSuitePathByType(t *testing.T) {
	testID := "path-test-id"

	permPath, err := GetSuitePathByType(testID, false)
	if err != nil {
		t.Fatalf("Failed to get permanent suite path: %v", err)
	}
	if !filepath.IsAbs(permPath) {
		t.Errorf("Expected absolute path, got: %s", permPath)
	}

	tempPath, err := GetSuitePathByType(testID, true)
	if err != nil {
		t.Fatalf("Failed to get temporary suite path: %v", err)
	}
	if tempPath[:4] != "/tmp" {
		t.Errorf("Expected temporary path to start with /tmp, got: %s", tempPath)
	}

	// Cleanup
	os.RemoveAll(permPath)
	os.RemoveAll(tempPath)
}

func TestCleanupTempSuites(t *testing.T) {
	SaveSuite(testSuite("cleanup-test-1", "", true))
	SaveSuite(testSuite("cleanup-test-2", "", true))

	if err := CleanupTempSuites(); err != nil {
		t.Fatalf("Failed to cleanup temp suites: %v", err)
	}

	tempPath, _ := GetTempSuitesDir()
	entries, _ := os.ReadDir(tempPath)
	if len(entries) > 0 {
		t.Errorf("Expected no temporary suites after cleanup, found %d", len(entries))
	}
}

func TestValidateInputPath(t *testing.T) {
	if err := ValidateInputPath(""); err == nil {
		t.Errorf("Expected error for empty path")
	}

	if err := ValidateInputPath("/nonexistent/contract.json"); err == nil {
		t.Errorf("Expected error for missing file")
	}

	dir := t.TempDir()
	if err := ValidateInputPath(dir); err == nil {
		t.Errorf("Expected error for directory path")
	}

	path := filepath.Join(dir, "contract.json")
	if err := os.WriteFile(path, []byte("{}"), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}
	if err := ValidateInputPath(path); err != nil {
		t.Errorf("Expected readable file to validate, got: %v", err)
	}
}
