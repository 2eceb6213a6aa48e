package source

import "testing"

func TestSpanCover(t *testing.T) {
	a := Span{File: 0, Start: 4, End: 8}
	b := Span{File: 0, Start: 2, End: 6}
	got := a.Cover(b)
	if got.Start != 2 || got.End != 8 {
		t.Fatalf("Cover = %v, want 0:2-8", got)
	}

	other := Span{File: 1, Start: 0, End: 100}
	if got := a.Cover(other); got != a {
		t.Fatalf("Cover across files must not change the span, got %v", got)
	}
}

func TestLineColResolution(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.lua", []byte("local x\nprint(x)\n"))
	f := fs.Get(id)

	cases := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{1, 1}},
		{6, LineCol{1, 7}},
		{7, LineCol{1, 8}},  // the newline itself ends line 1
		{8, LineCol{2, 1}},  // 'p'
		{15, LineCol{2, 8}}, // ')'
		{17, LineCol{3, 1}}, // EOF offset
	}
	for _, c := range cases {
		if got := f.LineColAt(c.off); got != c.want {
			t.Errorf("LineColAt(%d) = %v, want %v", c.off, got, c.want)
		}
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.lua", []byte("one\ntwo\nthree"))
	f := fs.Get(id)

	if got := f.GetLine(1); got != "one" {
		t.Errorf("GetLine(1) = %q", got)
	}
	if got := f.GetLine(2); got != "two" {
		t.Errorf("GetLine(2) = %q", got)
	}
	if got := f.GetLine(3); got != "three" {
		t.Errorf("GetLine(3) = %q", got)
	}
	if got := f.GetLine(4); got != "" {
		t.Errorf("GetLine(4) = %q, want empty", got)
	}
	if got := f.GetLine(0); got != "" {
		t.Errorf("GetLine(0) = %q, want empty", got)
	}
}

func TestLoadKeepsBytesVerbatim(t *testing.T) {
	fs := NewFileSet()
	raw := []byte("\xEF\xBB\xBFa = 1\r\nb = 2\r\n")
	id := fs.AddVirtual("crlf.lua", raw)
	if got := fs.Get(id).Content; string(got) != string(raw) {
		t.Fatalf("content was rewritten: %q", got)
	}
}
