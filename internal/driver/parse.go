package driver

import (
	"context"

	"golang.org/x/sync/errgroup"

	"lunar/internal/ast"
	"lunar/internal/diag"
	"lunar/internal/lexer"
	"lunar/internal/parser"
	"lunar/internal/source"
)

// ParseResult is the parse outcome for one file. Tree is nil when the file
// failed to load, tokenize, or parse; Bag holds the reasons.
type ParseResult struct {
	Path   string
	FileID source.FileID
	Tree   *ast.Tree
	Bag    *diag.Bag
}

// ParseFile loads and parses a single file into fileSet.
func ParseFile(fileSet *source.FileSet, path string, opts Options) ParseResult {
	bag := diag.NewBag(opts.maxDiagnostics())
	res := ParseResult{Path: path, Bag: bag}

	id, err := fileSet.Load(path)
	if err != nil {
		reportLoadError(bag, err)
		return res
	}
	res.FileID = id
	res.Tree = parseInto(fileSet.Get(id), bag, opts)
	return res
}

func parseInto(file *source.File, bag *diag.Bag, opts Options) *ast.Tree {
	tree, err := parser.ParseSource(file,
		lexer.Options{Reporter: diag.BagReporter{Bag: bag}},
		parser.Options{Dialect: opts.Dialect})
	if err != nil {
		reportParseError(bag, file.ID, err)
		return nil
	}
	return tree
}

// ParseDir parses every *.lua file under dir in parallel.
func ParseDir(ctx context.Context, dir string, opts Options) (*source.FileSet, []ParseResult, error) {
	files, err := listLuaFiles(dir, opts.Exclude)
	if err != nil {
		return nil, nil, err
	}

	fileSet := source.NewFileSet()
	if len(files) == 0 {
		return fileSet, nil, nil
	}

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

	results := make([]ParseResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.jobs(len(files)))
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			bag := diag.NewBag(opts.maxDiagnostics())
			results[i] = ParseResult{Path: path, Bag: bag}

			if loadErr, failed := loadErrors[path]; failed {
				reportLoadError(bag, loadErr)
				return nil
			}

			id := fileIDs[path]
			results[i].FileID = id
			results[i].Tree = parseInto(fileSet.Get(id), bag, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}
