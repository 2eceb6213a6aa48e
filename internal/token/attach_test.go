package token_test

import (
	"strings"
	"testing"

	"lunar/internal/lexer"
	"lunar/internal/source"
	"lunar/internal/token"
)

func lexAll(t *testing.T, text string) []token.Token {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.lua", []byte(text))
	toks, err := lexer.Tokenize(fs.Get(id), lexer.Options{})
	if err != nil {
		t.Fatalf("Tokenize(%q): %v", text, err)
	}
	return toks
}

func renderRefs(refs []*token.Reference) string {
	var sb strings.Builder
	for _, r := range refs {
		r.WriteTo(&sb)
	}
	return sb.String()
}

func TestAttachSplitsAtNewline(t *testing.T) {
	text := "print(1)\n-- hello world\nlocal foo -- this is the word foo"
	refs := token.Attach(lexAll(t, text))

	var localRef, fooRef *token.Reference
	for _, r := range refs {
		switch {
		case r.Token.Kind == token.KwLocal:
			localRef = r
		case r.Token.Kind == token.Ident && r.Token.Text == "foo":
			fooRef = r
		}
	}
	if localRef == nil || fooRef == nil {
		t.Fatalf("did not find local/foo references")
	}

	wantLeading := []string{"\n", "-- hello world", "\n"}
	if len(localRef.Leading) != len(wantLeading) {
		t.Fatalf("local leading = %d trivia, want %d", len(localRef.Leading), len(wantLeading))
	}
	for i, w := range wantLeading {
		if localRef.Leading[i].Text != w {
			t.Errorf("local leading[%d] = %q, want %q", i, localRef.Leading[i].Text, w)
		}
	}

	wantTrailing := []string{" ", "-- this is the word foo"}
	if len(fooRef.Trailing) != len(wantTrailing) {
		t.Fatalf("foo trailing = %d trivia, want %d", len(fooRef.Trailing), len(wantTrailing))
	}
	for i, w := range wantTrailing {
		if fooRef.Trailing[i].Text != w {
			t.Errorf("foo trailing[%d] = %q, want %q", i, fooRef.Trailing[i].Text, w)
		}
	}

	if got := renderRefs(refs); got != text {
		t.Fatalf("references do not reproduce source:\n got %q\nwant %q", got, text)
	}
}

func TestAttachTrailingNeverSpansNewline(t *testing.T) {
	texts := []string{
		"a = 1 -- one\nb = 2\t\n\nc = 3 --[[ long\ncomment ]] d = 4",
		"x\n\n\ny",
		"   leading = true   ",
	}
	for _, text := range texts {
		refs := token.Attach(lexAll(t, text))
		for _, r := range refs {
			for _, tr := range r.Trailing {
				if tr.SpansNewline() {
					t.Errorf("%q: trailing trivia %q of %q spans a newline", text, tr.Text, r.Token.Text)
				}
			}
		}
		if got := renderRefs(refs); got != text {
			t.Errorf("%q: render mismatch %q", text, got)
		}
	}
}

func TestAttachTriviaOnlyInput(t *testing.T) {
	refs := token.Attach(lexAll(t, "-- just a comment"))
	if len(refs) != 1 {
		t.Fatalf("want single EOF reference, got %d", len(refs))
	}
	eof := refs[0]
	if eof.Token.Kind != token.EOF {
		t.Fatalf("reference kind = %v, want EOF", eof.Token.Kind)
	}
	if len(eof.Leading) != 1 || eof.Leading[0].Text != "-- just a comment" {
		t.Fatalf("EOF leading = %#v", eof.Leading)
	}
}

func TestAttachIsTotalOnEmptyInput(t *testing.T) {
	refs := token.Attach(lexAll(t, ""))
	if len(refs) != 1 || refs[0].Token.Kind != token.EOF {
		t.Fatalf("empty input: want lone EOF reference, got %#v", refs)
	}
}

func TestReferenceDetach(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.lua", []byte("local x = 1\n"))
	f := fs.Get(id)
	toks, err := lexer.Tokenize(f, lexer.Options{})
	if err != nil {
		t.Fatal(err)
	}
	refs := token.Attach(toks)

	x := refs[1]
	if x.Token.Text != "x" {
		t.Fatalf("refs[1] = %q, want x", x.Token.Text)
	}
	before := x.StartPosition(f)
	x.Detach(f)
	if !x.Detached() {
		t.Fatal("Detach did not bake positions")
	}
	after := x.StartPosition(nil)
	if before != after {
		t.Fatalf("baked position %v differs from resolved %v", after, before)
	}
	if after.Line != 1 || after.Column != 7 {
		t.Fatalf("x position = %v, want 1:7", after)
	}
}
