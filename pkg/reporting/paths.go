package reporting

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultPathManager implements path management functionality
type DefaultPathManager struct{}

// NewDefaultPathManager creates a new path manager
func NewDefaultPathManager() *DefaultPathManager {
	return &DefaultPathManager{}
}

// GetDefaultOutputDir derives the output directory from the ledger
// file name, e.g. exports/FTMO.csv -> results/FTMO.
func (p *DefaultPathManager) GetDefaultOutputDir(dataFile string) string {
	stem := strings.TrimSuffix(filepath.Base(dataFile), filepath.Ext(dataFile))
	stem = strings.TrimSpace(stem)
	if stem == "" || stem == "." {
		stem = "report"
	}
	return filepath.Join("results", stem)
}

// EnsureDirectoryExists creates the directory if it doesn't exist
func (p *DefaultPathManager) EnsureDirectoryExists(path string) error {
	return os.MkdirAll(path, 0755)
}

// Package-level convenience function
func DefaultOutputDir(dataFile string) string {
	return NewDefaultPathManager().GetDefaultOutputDir(dataFile)
}
