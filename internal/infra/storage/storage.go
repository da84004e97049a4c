// Package storage persists generated suites under the user's home
// directory so they can be reopened from the interactive browser. Unnamed
// runs live under the system temp dir and are swept on startup.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

const storageDir = ".caseforge"
const suitesDir = "suites"
const tempSuitesDir = "/tmp/caseforge-suites"
const suiteFile = "suite.json"

// GetSuitesDir returns the path to the named-suites directory, creating
// it when missing.
func GetSuitesDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	suitesPath := filepath.Join(homeDir, storageDir, suitesDir)
	if err := os.MkdirAll(suitesPath, 0755); err != nil {
		return "", fmt.Errorf("failed to create suites directory: %w", err)
	}

	return suitesPath, nil
}

// GetTempSuitesDir returns the path to the temporary suites directory,
// creating it when missing.
func GetTempSuitesDir() (string, error) {
	if err := os.MkdirAll(tempSuitesDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create temp suites directory: %w", err)
	}
	return tempSuitesDir, nil
}

// GetSuitePathByType returns the directory for a specific suite based on
// whether it is temporary.
func GetSuitePathByType(suiteID string, isTemporary bool) (string, error) {
	var suitesPath string
	var err error

	if isTemporary {
		suitesPath, err = GetTempSuitesDir()
	} else {
		suitesPath, err = GetSuitesDir()
	}

	if err != nil {
		return "", err
	}

	suitePath := filepath.Join(suitesPath, suiteID)
	if err := os.MkdirAll(suitePath, 0755); err != nil {
		return "", fmt.Errorf("failed to create suite directory: %w", err)
	}

	return suitePath, nil
}

// ValidateInputPath checks that an input file exists and is readable.
func ValidateInputPath(path string) error {
	if path == "" {
		return fmt.Errorf("input path is empty")
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("input file does not exist: %s", path)
		}
		return fmt.Errorf("failed to access input file: %w", err)
	}

	if !info.Mode().IsRegular() {
		return fmt.Errorf("input path is not a regular file: %s", path)
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("input file is not readable: %w", err)
	}
	_ = file.Close()

	return nil
}
