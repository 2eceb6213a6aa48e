package diagfmt

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"lunar/internal/diag"
	"lunar/internal/source"
)

var (
	errorColor = color.New(color.FgRed, color.Bold)
	warnColor  = color.New(color.FgYellow, color.Bold)
	infoColor  = color.New(color.FgCyan, color.Bold)
	placeColor = color.New(color.Bold)
	caretColor = color.New(color.FgRed)
)

// Pretty formats diagnostics for humans, one per entry in bag order (call
// bag.Sort() first for document order):
//
//	<path>:<line>:<col>: <severity> <code>: <message>
//	    <source line>
//	    ^~~~
//
// followed by the notes when ShowNotes is set.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		writeHeading(w, d.Severity, d.Code, d.Message, d.Primary, fs, opts)
		if opts.Context {
			writeContext(w, d.Primary, fs, opts)
		}
		if opts.ShowNotes {
			for _, note := range d.Notes {
				writeHeading(w, diag.SevInfo, d.Code, note.Msg, note.Span, fs, opts)
				if opts.Context {
					writeContext(w, note.Span, fs, opts)
				}
			}
		}
	}
}

func severityPrinter(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return errorColor
	case diag.SevWarning:
		return warnColor
	default:
		return infoColor
	}
}

func formatPath(f *source.File, mode PathMode) string {
	if mode == PathModeBasename {
		return filepath.Base(f.Path)
	}
	return f.Path
}

func writeHeading(w io.Writer, sev diag.Severity, code diag.Code, msg string, span source.Span, fs *source.FileSet, opts PrettyOpts) {
	f := fs.Get(span.File)
	start, _ := fs.Resolve(span)

	place := placeColor
	sevPrint := severityPrinter(sev)
	if !opts.Color {
		place = color.New()
		sevPrint = color.New()
	}

	place.Fprintf(w, "%s:%d:%d:", formatPath(f, opts.PathMode), start.Line, start.Col)
	fmt.Fprint(w, " ")
	sevPrint.Fprintf(w, "%s %s:", sev, code)
	fmt.Fprintf(w, " %s\n", msg)
}

// writeContext prints the source line of the span's start plus a caret
// underline. Widths are measured in display cells, so tabs and wide runes
// keep the underline aligned.
func writeContext(w io.Writer, span source.Span, fs *source.FileSet, opts PrettyOpts) {
	f := fs.Get(span.File)
	start, end := fs.Resolve(span)

	line := f.GetLine(start.Line)
	if line == "" && start.Col > 1 {
		return
	}

	fmt.Fprintf(w, "    %s\n", line)

	col := int(start.Col) - 1
	if col > len(line) {
		col = len(line)
	}
	pad := displayWidth(line[:col])

	length := 1
	if end.Line == start.Line && end.Col > start.Col {
		hi := int(end.Col) - 1
		if hi > len(line) {
			hi = len(line)
		}
		length = displayWidth(line[col:hi])
		if length < 1 {
			length = 1
		}
	}

	underline := "^" + strings.Repeat("~", length-1)
	caret := caretColor
	if !opts.Color {
		caret = color.New()
	}
	fmt.Fprint(w, "    "+strings.Repeat(" ", pad))
	caret.Fprintln(w, underline)
}

func displayWidth(s string) int {
	w := 0
	for _, r := range s {
		if r == '\t' {
			w += 8 - w%8
			continue
		}
		w += runewidth.RuneWidth(r)
	}
	return w
}
