package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"lunar/internal/diag"
	"lunar/internal/parser"
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(dir, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestTokenizeDir(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"a.lua":          "local x = 1\n",
		"sub/b.lua":      "print('b')\n",
		"vendor/c.lua":   "ignored()\n",
		"notes/d.txt":    "not lua",
		"broken/bad.lua": "x = 'unterminated\n",
	})

	fs, results, err := TokenizeDir(context.Background(), dir, Options{Exclude: []string{"vendor"}})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 3 {
		t.Fatalf("want 3 files, got %d: %+v", len(results), results)
	}
	if fs.Len() != 3 {
		t.Fatalf("file set holds %d files", fs.Len())
	}

	// Sorted path order: a.lua, broken/bad.lua, sub/b.lua.
	if filepath.Base(results[0].Path) != "a.lua" || filepath.Base(results[2].Path) != "b.lua" {
		t.Fatalf("results out of order: %v, %v, %v", results[0].Path, results[1].Path, results[2].Path)
	}

	if results[0].Bag.HasErrors() || len(results[0].Tokens) == 0 {
		t.Errorf("a.lua should tokenize cleanly")
	}
	if !results[1].Bag.HasErrors() {
		t.Errorf("bad.lua should report a lexical error")
	}
}

func TestParseDir(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"ok.lua":  "local x = 1\nreturn x\n",
		"bad.lua": "while x do\n",
	})

	_, results, err := ParseDir(context.Background(), dir, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("want 2 results, got %d", len(results))
	}

	bad, ok := results[0], results[1]
	if bad.Tree != nil || !bad.Bag.HasErrors() {
		t.Errorf("bad.lua: want nil tree with diagnostics")
	}
	found := false
	for _, d := range bad.Bag.Items() {
		if d.Code == diag.SynUnexpectedToken {
			found = true
		}
	}
	if !found {
		t.Errorf("bad.lua: no syntax diagnostic in bag: %+v", bad.Bag.Items())
	}

	if ok.Tree == nil || ok.Bag.HasErrors() {
		t.Errorf("ok.lua: want clean tree")
	}
	if got := ok.Tree.String(); got != "local x = 1\nreturn x\n" {
		t.Errorf("ok.lua round trip: %q", got)
	}
}

func TestParseDirExtendedDialect(t *testing.T) {
	dir := writeTree(t, map[string]string{"typed.lua": "local n: number = 1\n"})

	_, base, err := ParseDir(context.Background(), dir, Options{Dialect: parser.DialectLua51})
	if err != nil {
		t.Fatal(err)
	}
	if !base[0].Bag.HasErrors() {
		t.Error("annotation should fail in the base dialect")
	}

	_, ext, err := ParseDir(context.Background(), dir, Options{Dialect: parser.DialectExtended})
	if err != nil {
		t.Fatal(err)
	}
	if ext[0].Tree == nil || ext[0].Bag.HasErrors() {
		t.Errorf("annotation should parse in the extended dialect: %+v", ext[0].Bag.Items())
	}
}

func TestCheckDirUsesCache(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"ok.lua":  "return 1\n",
		"bad.lua": "x = \n",
	})
	cache, err := OpenDiskCacheAt(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatal(err)
	}
	opts := Options{Cache: cache}

	_, first, stats, err := CheckDir(context.Background(), dir, opts)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Files != 2 || stats.CacheHits != 0 || stats.WithError != 1 {
		t.Fatalf("first run stats: %+v", stats)
	}

	_, second, stats, err := CheckDir(context.Background(), dir, opts)
	if err != nil {
		t.Fatal(err)
	}
	if stats.CacheHits != 2 {
		t.Fatalf("second run stats: %+v", stats)
	}
	for i := range second {
		if !second[i].FromCache {
			t.Errorf("%s not replayed from cache", second[i].Path)
		}
	}

	// Replayed diagnostics keep code and span.
	firstBad, secondBad := first[0], second[0]
	if firstBad.Bag.Len() != secondBad.Bag.Len() {
		t.Fatalf("cache changed diagnostic count: %d vs %d", firstBad.Bag.Len(), secondBad.Bag.Len())
	}
	for i, d := range secondBad.Bag.Items() {
		orig := firstBad.Bag.Items()[i]
		if d.Code != orig.Code || d.Message != orig.Message {
			t.Errorf("diag %d mutated: %+v vs %+v", i, d, orig)
		}
		if d.Primary.Start != orig.Primary.Start || d.Primary.End != orig.Primary.End {
			t.Errorf("diag %d span mutated", i)
		}
	}

	// Different dialect misses the cache.
	_, _, stats, err = CheckDir(context.Background(), dir, Options{Cache: cache, Dialect: parser.DialectExtended})
	if err != nil {
		t.Fatal(err)
	}
	if stats.CacheHits != 0 {
		t.Fatalf("dialect change should miss the cache: %+v", stats)
	}

	// Content change misses the cache too.
	if err := os.WriteFile(filepath.Join(dir, "ok.lua"), []byte("return 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, _, stats, err = CheckDir(context.Background(), dir, opts)
	if err != nil {
		t.Fatal(err)
	}
	if stats.CacheHits != 1 {
		t.Fatalf("want 1 hit after editing one file: %+v", stats)
	}
}

func TestVerifyDir(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"ok.lua":  "-- header\nlocal x = 1 -- tail\nreturn x\n",
		"bad.lua": "function broken(\n",
	})

	results, err := VerifyDir(context.Background(), dir, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("want 2 results, got %d", len(results))
	}

	bad, ok := results[0], results[1]
	if bad.Exact || !bad.Bag.HasErrors() {
		t.Errorf("bad.lua: want parse failure, got %+v", bad)
	}
	if !ok.Exact || ok.Bag.HasErrors() {
		t.Errorf("ok.lua: want exact round trip, got %+v", ok)
	}
}

func TestCheckDirEmpty(t *testing.T) {
	_, results, stats, err := CheckDir(context.Background(), t.TempDir(), Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 0 || stats.Files != 0 {
		t.Fatalf("want empty run, got %d results", len(results))
	}
}
