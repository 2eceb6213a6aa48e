package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ManifestName is the file that marks a project root.
const ManifestName = "lunar.toml"

// Manifest is the parsed lunar.toml.
type Manifest struct {
	Package PackageSection `toml:"package"`
	Check   CheckSection   `toml:"check"`
}

// PackageSection is the [package] table.
type PackageSection struct {
	Name    string `toml:"name"`
	Dialect string `toml:"dialect"` // "lua51" (default) or "extended"
}

// CheckSection is the [check] table controlling directory checks.
type CheckSection struct {
	// Include lists directories to scan, relative to the project root.
	// Empty means the whole project.
	Include []string `toml:"include"`
	// Exclude lists directory basenames skipped during the walk.
	Exclude []string `toml:"exclude"`
	// MaxDiagnostics caps collected diagnostics; 0 keeps the default.
	MaxDiagnostics int `toml:"max_diagnostics"`
}

// ErrPackageSectionMissing indicates that [package] is missing in a manifest.
var ErrPackageSectionMissing = errors.New("missing [package]")

// Load parses a lunar.toml file.
func Load(path string) (Manifest, error) {
	var m Manifest
	meta, err := toml.DecodeFile(path, &m)
	if err != nil {
		return Manifest{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return Manifest{}, fmt.Errorf("%s: %w", path, ErrPackageSectionMissing)
	}
	if d := strings.TrimSpace(m.Package.Dialect); d != "" && d != "lua51" && d != "extended" {
		return Manifest{}, fmt.Errorf("%s: unknown dialect %q", path, d)
	}
	return m, nil
}

// FindManifest walks up from startDir to locate lunar.toml.
func FindManifest(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// FindRoot returns the directory containing lunar.toml, if any.
func FindRoot(startDir string) (root string, ok bool, err error) {
	manifestPath, ok, err := FindManifest(startDir)
	if err != nil || !ok {
		return "", ok, err
	}
	return filepath.Dir(manifestPath), true, nil
}
