package driver

import (
	"context"

	"golang.org/x/sync/errgroup"

	"lunar/internal/diag"
	"lunar/internal/lexer"
	"lunar/internal/source"
	"lunar/internal/token"
)

// TokenizeResult is the tokenization outcome for one file.
type TokenizeResult struct {
	Path   string
	FileID source.FileID
	Tokens []token.Token
	Bag    *diag.Bag
}

// TokenizeFile loads and tokenizes a single file into fileSet.
func TokenizeFile(fileSet *source.FileSet, path string, opts Options) TokenizeResult {
	bag := diag.NewBag(opts.maxDiagnostics())
	res := TokenizeResult{Path: path, Bag: bag}

	id, err := fileSet.Load(path)
	if err != nil {
		reportLoadError(bag, err)
		return res
	}
	res.FileID = id

	tokens, err := lexer.Tokenize(fileSet.Get(id), lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	if err != nil {
		// The reporter already captured the diagnostic.
		return res
	}
	res.Tokens = tokens
	return res
}

// TokenizeDir tokenizes every *.lua file under dir in parallel. Results come
// back in sorted path order regardless of scheduling.
func TokenizeDir(ctx context.Context, dir string, opts Options) (*source.FileSet, []TokenizeResult, error) {
	files, err := listLuaFiles(dir, opts.Exclude)
	if err != nil {
		return nil, nil, err
	}

	fileSet := source.NewFileSet()
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	// Loading happens up front: FileSet is not safe for concurrent writes,
	// and workers only read from it afterwards.
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

	results := make([]TokenizeResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.jobs(len(files)))
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			bag := diag.NewBag(opts.maxDiagnostics())
			results[i] = TokenizeResult{Path: path, Bag: bag}

			if loadErr, failed := loadErrors[path]; failed {
				reportLoadError(bag, loadErr)
				return nil
			}

			id := fileIDs[path]
			results[i].FileID = id
			tokens, err := lexer.Tokenize(fileSet.Get(id), lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
			if err != nil {
				return nil
			}
			results[i].Tokens = tokens
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}
