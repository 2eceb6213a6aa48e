package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"lunar/internal/source"
	"lunar/internal/token"
)

// TokenOutput is one token of the flat stream, trivia included.
type TokenOutput struct {
	Kind      string `json:"kind"`
	Text      string `json:"text,omitempty"`
	StartByte uint32 `json:"start_byte"`
	EndByte   uint32 `json:"end_byte"`
	Trivia    bool   `json:"trivia,omitempty"`
}

// FormatTokensPretty dumps the token stream one per line with resolved
// positions. Trivia tokens are flagged so the significant stream is easy to
// read off.
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) {
	for i, tok := range tokens {
		start, end := fs.Resolve(tok.Span)

		fmt.Fprintf(w, "%3d: %-12s", i, tok.Kind.String())
		if tok.Text != "" {
			fmt.Fprintf(w, " %q", tok.Text)
		}
		fmt.Fprintf(w, " at %d:%d-%d:%d", start.Line, start.Col, end.Line, end.Col)
		if tok.IsTrivia() {
			fmt.Fprint(w, " (trivia)")
		}
		fmt.Fprintln(w)
	}
}

// FormatTokensJSON dumps the token stream as an indented JSON array.
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	out := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, TokenOutput{
			Kind:      tok.Kind.String(),
			Text:      tok.Text,
			StartByte: tok.Span.Start,
			EndByte:   tok.Span.End,
			Trivia:    tok.IsTrivia(),
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
