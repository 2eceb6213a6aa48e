package driver

import (
	"errors"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"lunar/internal/diag"
	"lunar/internal/parser"
	"lunar/internal/source"
)

// Options configures directory-level operations.
type Options struct {
	Dialect parser.Dialect
	// MaxDiagnostics caps every per-file bag; 0 uses DefaultMaxDiagnostics.
	MaxDiagnostics int
	// Jobs limits parallelism; 0 uses GOMAXPROCS.
	Jobs int
	// Exclude lists directory basenames skipped during walks.
	Exclude []string
	// Cache enables the best-effort disk cache for CheckDir; nil disables it.
	Cache *DiskCache
}

// DefaultMaxDiagnostics bounds a per-file diagnostic bag.
const DefaultMaxDiagnostics = 100

func (o Options) maxDiagnostics() int {
	if o.MaxDiagnostics > 0 {
		return o.MaxDiagnostics
	}
	return DefaultMaxDiagnostics
}

func (o Options) jobs(files int) int {
	jobs := o.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	if jobs > files {
		jobs = files
	}
	return jobs
}

// listLuaFiles returns the sorted *.lua files under dir, skipping excluded
// directory basenames. Sorting keeps every downstream report deterministic.
func listLuaFiles(dir string, exclude []string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			for _, ex := range exclude {
				if d.Name() == ex && path != dir {
					return filepath.SkipDir
				}
			}
			return nil
		}
		if strings.HasSuffix(path, ".lua") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// reportParseError converts a parse failure into a bag entry. Lexical errors
// reach the bag through the lexer's reporter, so they are skipped here.
func reportParseError(bag *diag.Bag, fileID source.FileID, err error) {
	var ute *parser.UnexpectedTokenError
	switch {
	case err == nil:
		return
	case errors.As(err, &ute):
		code := diag.SynUnexpectedToken
		if ute.Additional == "leftover token" {
			code = diag.SynLeftoverToken
		}
		span := ute.Token.Span
		span.File = fileID
		bag.Add(diag.Diagnostic{
			Severity: diag.SevError,
			Code:     code,
			Message:  ute.Error(),
			Primary:  span,
		})
	case errors.Is(err, parser.ErrEmpty):
		bag.Add(diag.Diagnostic{
			Severity: diag.SevError,
			Code:     diag.SynEmptyInput,
			Message:  err.Error(),
			Primary:  source.Span{File: fileID},
		})
	case errors.Is(err, parser.ErrNoEOF):
		bag.Add(diag.Diagnostic{
			Severity: diag.SevError,
			Code:     diag.SynNoEOF,
			Message:  err.Error(),
			Primary:  source.Span{File: fileID},
		})
	}
}

func reportLoadError(bag *diag.Bag, err error) {
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.IOLoadFileError,
		Message:  "failed to load file: " + err.Error(),
		Primary:  source.Span{},
	})
}
