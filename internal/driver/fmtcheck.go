package driver

import (
	"context"

	"golang.org/x/sync/errgroup"

	"lunar/internal/diag"
	"lunar/internal/source"
)

// FidelityResult is the round-trip verification outcome for one file.
type FidelityResult struct {
	Path string
	Bag  *diag.Bag
	// Exact is true when rendering the parsed tree reproduced the file
	// byte for byte. False with an empty bag means a fidelity defect.
	Exact bool
}

// VerifyDir parses every *.lua file under dir and checks that rendering the
// tree reproduces the source bytes. Files that fail to parse are reported
// through their bags and skipped.
func VerifyDir(ctx context.Context, dir string, opts Options) ([]FidelityResult, error) {
	files, err := listLuaFiles(dir, opts.Exclude)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}

	fileSet := source.NewFileSet()
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))
	for _, path := range files {
		id, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = id
	}

	results := make([]FidelityResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.jobs(len(files)))
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			bag := diag.NewBag(opts.maxDiagnostics())
			results[i] = FidelityResult{Path: path, Bag: bag}

			if loadErr, failed := loadErrors[path]; failed {
				reportLoadError(bag, loadErr)
				return nil
			}

			file := fileSet.Get(fileIDs[path])
			tree := parseInto(file, bag, opts)
			if tree == nil {
				return nil
			}
			results[i].Exact = tree.String() == string(file.Content)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
