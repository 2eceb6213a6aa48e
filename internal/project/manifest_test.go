package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ManifestName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, `
[package]
name = "demo"
dialect = "extended"

[check]
include = ["src"]
exclude = ["vendor"]
max_diagnostics = 50
`)

	m, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if m.Package.Name != "demo" || m.Package.Dialect != "extended" {
		t.Errorf("package section: %+v", m.Package)
	}
	if len(m.Check.Include) != 1 || m.Check.Include[0] != "src" {
		t.Errorf("include: %v", m.Check.Include)
	}
	if m.Check.MaxDiagnostics != 50 {
		t.Errorf("max_diagnostics: %d", m.Check.MaxDiagnostics)
	}
}

func TestLoadManifestRejectsBadInput(t *testing.T) {
	dir := t.TempDir()

	path := writeManifest(t, dir, "name = \"no tables\"\n")
	if _, err := Load(path); !errors.Is(err, ErrPackageSectionMissing) {
		t.Errorf("want ErrPackageSectionMissing, got %v", err)
	}

	path = writeManifest(t, dir, "[package]\nname = \"x\"\ndialect = \"lua99\"\n")
	if _, err := Load(path); err == nil {
		t.Error("want error for unknown dialect")
	}
}

func TestFindRootWalksUp(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[package]\nname = \"demo\"\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	got, ok, err := FindRoot(nested)
	if err != nil || !ok {
		t.Fatalf("FindRoot: ok=%v err=%v", ok, err)
	}
	resolvedRoot, _ := filepath.EvalSymlinks(root)
	resolvedGot, _ := filepath.EvalSymlinks(got)
	if resolvedGot != resolvedRoot {
		t.Errorf("root %q, want %q", resolvedGot, resolvedRoot)
	}
}

func TestFindRootAbsent(t *testing.T) {
	dir := t.TempDir()
	_, ok, err := FindRoot(dir)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("found a manifest in an empty directory")
	}
}
