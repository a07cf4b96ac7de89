package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// OutputManager lays out export files as <base>/<runID>/<file>.
type OutputManager struct {
	BaseOutputDir string
}

// NewOutputManager creates a new output manager
func NewOutputManager(baseOutputDir string) *OutputManager {
	return &OutputManager{
		BaseOutputDir: baseOutputDir,
	}
}

// CreateRunDir creates the directory holding one export run's files.
func (om *OutputManager) CreateRunDir(runID string) (string, error) {
	runDir := filepath.Join(om.BaseOutputDir, filepath.Base(runID))
	if err := os.MkdirAll(runDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create run output directory: %w", err)
	}
	return runDir, nil
}

// OutputFilePath creates the run directory and returns the full path for
// fileName inside it.
func (om *OutputManager) OutputFilePath(runID, fileName string) (string, error) {
	runDir, err := om.CreateRunDir(runID)
	if err != nil {
		return "", err
	}
	return filepath.Join(runDir, SafeFileName(fileName)), nil
}

// ResolveFile returns the path of an existing export file, refusing names
// that would escape the base directory.
func (om *OutputManager) ResolveFile(runID, fileName string) (string, error) {
	if !plainName(runID) || !plainName(fileName) {
		return "", fmt.Errorf("invalid export path %s/%s", runID, fileName)
	}
	p := filepath.Join(om.BaseOutputDir, runID, fileName)
	fi, err := os.Stat(p)
	if err != nil {
		return "", err
	}
	if !fi.Mode().IsRegular() {
		return "", fmt.Errorf("export path %s/%s is not a file", runID, fileName)
	}
	return p, nil
}

// plainName reports whether name is a single path element.
func plainName(name string) bool {
	return name != "" && name != "." && name != ".." && name == filepath.Base(name)
}

// DownloadURL returns the API path serving an export file.
func (om *OutputManager) DownloadURL(runID, fileName string) string {
	return fmt.Sprintf("/api/v1/exports/%s/%s", runID, SafeFileName(fileName))
}

// FileType determines the file type based on extension
func (om *OutputManager) FileType(fileName string) string {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".csv":
		return "csv"
	case ".json":
		return "json"
	default:
		return "unknown"
	}
}

// EnsureOutputDirExists ensures the base output directory exists
func (om *OutputManager) EnsureOutputDirExists() error {
	return os.MkdirAll(om.BaseOutputDir, 0o755)
}

// SafeFileName replaces anything outside [A-Za-z0-9._-] with "_".
func SafeFileName(name string) string {
	name = unsafeFileChars.ReplaceAllString(filepath.Base(name), "_")
	if name == "" || name == "." || name == ".." {
		return "export"
	}
	return name
}
