package driver

import (
	"context"
	"crypto/sha256"

	"golang.org/x/sync/errgroup"

	"lunar/internal/diag"
	"lunar/internal/parser"
	"lunar/internal/source"
)

// CheckResult is the check outcome for one file.
type CheckResult struct {
	Path   string
	FileID source.FileID
	Bag    *diag.Bag
	// FromCache marks results replayed from the disk cache.
	FromCache bool
}

// CheckStats summarizes one CheckDir run.
type CheckStats struct {
	Files     int
	CacheHits int
	WithError int
}

// CheckDir parses every *.lua file under dir in parallel and collects syntax
// diagnostics. With a cache configured, files whose content hash was checked
// before under the same dialect are replayed without re-parsing.
func CheckDir(ctx context.Context, dir string, opts Options) (*source.FileSet, []CheckResult, CheckStats, error) {
	var stats CheckStats

	files, err := listLuaFiles(dir, opts.Exclude)
	if err != nil {
		return nil, nil, stats, err
	}

	fileSet := source.NewFileSet()
	if len(files) == 0 {
		return fileSet, nil, stats, nil
	}
	stats.Files = len(files)

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

	results := make([]CheckResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.jobs(len(files)))
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			bag := diag.NewBag(opts.maxDiagnostics())
			results[i] = CheckResult{Path: path, Bag: bag}

			if loadErr, failed := loadErrors[path]; failed {
				reportLoadError(bag, loadErr)
				return nil
			}

			id := fileIDs[path]
			file := fileSet.Get(id)
			results[i].FileID = id

			if replayCached(opts.Cache, file, bag, opts) {
				results[i].FromCache = true
				return nil
			}

			parseInto(file, bag, opts)
			storeCached(opts.Cache, file, bag, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fileSet, results, stats, err
	}

	for i := range results {
		if results[i].FromCache {
			stats.CacheHits++
		}
		if results[i].Bag.HasErrors() {
			stats.WithError++
		}
	}
	return fileSet, results, stats, nil
}

// cacheKey derives the cache key from the file's content hash and the
// dialect, so the two dialects never evict each other's entries.
func cacheKey(hash Digest, dialect parser.Dialect) Digest {
	h := sha256.New()
	h.Write(hash[:])
	h.Write([]byte{uint8(dialect)})
	var out Digest
	h.Sum(out[:0])
	return out
}

// replayCached restores a prior outcome for the file's content, rebinding
// cached spans to this run's file id. Cache failures are treated as misses.
func replayCached(cache *DiskCache, file *source.File, bag *diag.Bag, opts Options) bool {
	if cache == nil {
		return false
	}
	var payload CachePayload
	ok, err := cache.Get(cacheKey(file.Hash, opts.Dialect), &payload)
	if err != nil || !ok || payload.Dialect != uint8(opts.Dialect) {
		return false
	}
	for _, cd := range payload.Diags {
		bag.Add(diag.Diagnostic{
			Severity: diag.Severity(cd.Severity),
			Code:     diag.Code(cd.Code),
			Message:  cd.Message,
			Primary: source.Span{
				File:  file.ID,
				Start: cd.StartByte,
				End:   cd.EndByte,
			},
		})
	}
	return true
}

func storeCached(cache *DiskCache, file *source.File, bag *diag.Bag, opts Options) {
	if cache == nil {
		return
	}
	payload := CachePayload{
		Schema:  cacheSchemaVersion,
		Dialect: uint8(opts.Dialect),
		Diags:   make([]CachedDiagnostic, 0, bag.Len()),
	}
	for _, d := range bag.Items() {
		payload.Diags = append(payload.Diags, CachedDiagnostic{
			Severity:  uint8(d.Severity),
			Code:      uint16(d.Code),
			Message:   d.Message,
			StartByte: d.Primary.Start,
			EndByte:   d.Primary.End,
		})
	}
	// Best-effort: a failed write only costs a re-parse next run.
	_ = cache.Put(cacheKey(file.Hash, opts.Dialect), &payload)
}
