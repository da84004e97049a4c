package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Caseforge/caseforge-cli/internal/core/suite"
)

// SaveSuite writes a suite to disk, stamping UpdatedAt.
func SaveSuite(s *suite.Suite) error {
	suitePath, err := GetSuitePathByType(s.ID, s.IsTemporary)
	if err != nil {
		return err
	}

	s.UpdatedAt = time.Now()

	filePath := filepath.Join(suitePath, suiteFile)
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal suite: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write suite file: %w", err)
	}

	return nil
}

// LoadSuite reads a suite from disk, checking the permanent location
// first and the temporary one second.
func LoadSuite(suiteID string) (*suite.Suite, error) {
	permanentPath, err := GetSuitesDir()
	if err != nil {
		return nil, err
	}

	filePath := filepath.Join(permanentPath, suiteID, suiteFile)
	data, err := os.ReadFile(filePath)
	if err != nil {
		tempPath, err2 := GetTempSuitesDir()
		if err2 != nil {
			return nil, fmt.Errorf("failed to read suite file: %w", err)
		}

		tempFilePath := filepath.Join(tempPath, suiteID, suiteFile)
		data, err = os.ReadFile(tempFilePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read suite file: %w", err)
		}
	}

	var s suite.Suite
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal suite: %w", err)
	}

	return &s, nil
}

// ListSuites returns every suite in permanent storage. Entries that fail
// to load are skipped.
func ListSuites() ([]*suite.Suite, error) {
	suitesPath, err := GetSuitesDir()
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(suitesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read suites directory: %w", err)
	}

	var suites []*suite.Suite
	for _, entry := range entries {
		if entry.IsDir() {
			s, err := LoadSuite(entry.Name())
			if err != nil {
				continue
			}
			suites = append(suites, s)
		}
	}

	return suites, nil
}

// ListNamedSuites returns only named (non-temporary) suites.
func ListNamedSuites() ([]*suite.Suite, error) {
	suites, err := ListSuites()
	if err != nil {
		return nil, err
	}

	var named []*suite.Suite
	for _, s := range suites {
		if !s.IsTemporary && s.Name != "" {
			named = append(named, s)
		}
	}

	return named, nil
}

// FindSuiteByName searches permanent storage for a suite by name.
func FindSuiteByName(name string) (*suite.Suite, error) {
	suites, err := ListNamedSuites()
	if err != nil {
		return nil, err
	}

	for _, s := range suites {
		if s.Name == name {
			return s, nil
		}
	}

	return nil, fmt.Errorf("suite not found: %s", name)
}

// CheckNameConflict reports whether another suite already uses the name.
func CheckNameConflict(name string, excludeSuiteID string) (*suite.Suite, error) {
	if name == "" {
		return nil, nil
	}

	suites, err := ListNamedSuites()
	if err != nil {
		return nil, err
	}

	for _, s := range suites {
		if s.Name == name && s.ID != excludeSuiteID {
			return s, nil
		}
	}

	return nil, nil
}

// DeleteSuite removes a suite's directory.
func DeleteSuite(s *suite.Suite) error {
	suitePath, err := GetSuitePathByType(s.ID, s.IsTemporary)
	if err != nil {
		return err
	}

	if err := os.RemoveAll(suitePath); err != nil {
		return fmt.Errorf("failed to delete suite directory: %w", err)
	}

	return nil
}

// CleanupTempSuites removes all temporary suites.
func CleanupTempSuites() error {
	tempPath, err := GetTempSuitesDir()
	if err != nil {
		return err
	}

	entries, err := os.ReadDir(tempPath)
	if err != nil {
		return fmt.Errorf("failed to read temp suites directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			suitePath := filepath.Join(tempPath, entry.Name())
			if err := os.RemoveAll(suitePath); err != nil {
				continue
			}
		}
	}

	return nil
}
