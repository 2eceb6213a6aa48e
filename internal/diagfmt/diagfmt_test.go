package diagfmt

import (
	"encoding/json"
	"strings"
	"testing"

	"lunar/internal/diag"
	"lunar/internal/lexer"
	"lunar/internal/parser"
	"lunar/internal/source"
)

func testFile(t *testing.T, text string) (*source.FileSet, *source.File) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("main.lua", []byte(text))
	return fs, fs.Get(id)
}

func TestPrettyHeadingAndCaret(t *testing.T) {
	fs, f := testFile(t, "local x = 'oops\n")

	bag := diag.NewBag(16)
	_, err := lexer.Tokenize(f, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	if err == nil {
		t.Fatal("want lexical error")
	}

	var sb strings.Builder
	Pretty(&sb, bag, fs, PrettyOpts{Context: true})
	out := sb.String()

	if !strings.Contains(out, "main.lua:1:11:") {
		t.Errorf("missing location heading:\n%s", out)
	}
	if !strings.Contains(out, "ERROR LUN1002:") {
		t.Errorf("missing severity and code:\n%s", out)
	}
	if !strings.Contains(out, "local x = 'oops") {
		t.Errorf("missing context line:\n%s", out)
	}

	// The caret must sit under the opening quote (column 11).
	lines := strings.Split(out, "\n")
	caretLine := ""
	for _, l := range lines {
		if strings.Contains(l, "^") {
			caretLine = l
			break
		}
	}
	if caretLine == "" {
		t.Fatalf("no caret line:\n%s", out)
	}
	if got := strings.Index(caretLine, "^"); got != 4+10 {
		t.Errorf("caret at column %d, want %d:\n%s", got, 14, out)
	}
}

func TestJSONReport(t *testing.T) {
	fs, f := testFile(t, "x = 0x\n")

	bag := diag.NewBag(16)
	if _, err := lexer.Tokenize(f, lexer.Options{Reporter: diag.BagReporter{Bag: bag}}); err == nil {
		t.Fatal("want lexical error")
	}

	var sb strings.Builder
	if err := JSON(&sb, bag, fs, JSONOpts{IncludePositions: true, PathMode: PathModeBasename}); err != nil {
		t.Fatal(err)
	}

	var out DiagnosticsOutput
	if err := json.Unmarshal([]byte(sb.String()), &out); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, sb.String())
	}
	if out.Count != 1 || len(out.Diagnostics) != 1 {
		t.Fatalf("want 1 diagnostic, got count=%d len=%d", out.Count, len(out.Diagnostics))
	}
	d := out.Diagnostics[0]
	if d.Code != "LUN1005" || d.Severity != "ERROR" {
		t.Errorf("wrong code/severity: %+v", d)
	}
	if d.Location.File != "main.lua" || d.Location.StartLine != 1 {
		t.Errorf("wrong location: %+v", d.Location)
	}
}

func TestTokenDumps(t *testing.T) {
	fs, f := testFile(t, "local x = 1 -- c\n")
	tokens, err := lexer.Tokenize(f, lexer.Options{})
	if err != nil {
		t.Fatal(err)
	}

	var pretty strings.Builder
	FormatTokensPretty(&pretty, tokens, fs)
	out := pretty.String()
	if !strings.Contains(out, "KwLocal") || !strings.Contains(out, "(trivia)") {
		t.Errorf("token dump incomplete:\n%s", out)
	}

	var jsonOut strings.Builder
	if err := FormatTokensJSON(&jsonOut, tokens); err != nil {
		t.Fatal(err)
	}
	var decoded []TokenOutput
	if err := json.Unmarshal([]byte(jsonOut.String()), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(decoded) != len(tokens) {
		t.Errorf("dumped %d tokens, want %d", len(decoded), len(tokens))
	}
}

func TestTreeDump(t *testing.T) {
	fs, f := testFile(t, "local x = f(1)\n")
	_ = fs
	tree, err := parser.ParseSource(f, lexer.Options{}, parser.Options{})
	if err != nil {
		t.Fatal(err)
	}

	var sb strings.Builder
	FormatTreePretty(&sb, tree)
	out := sb.String()
	for _, want := range []string{"Tree", "LocalAssignment", "FunctionCall", `Number "1"`} {
		if !strings.Contains(out, want) {
			t.Errorf("dump missing %q:\n%s", want, out)
		}
	}
	// Indentation reflects nesting.
	if !strings.Contains(out, "  LocalAssignment") {
		t.Errorf("statement not indented under root:\n%s", out)
	}
}
