package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"lunar/internal/ast"
)

// astDumper prints one line per tree node, indented by depth.
type astDumper struct {
	w     io.Writer
	depth int
}

func (d *astDumper) Visit(n ast.Node) bool {
	fmt.Fprintf(d.w, "%s%s\n", strings.Repeat("  ", d.depth), nodeLabel(n))
	d.depth++
	return true
}

func (d *astDumper) Leave(ast.Node) {
	d.depth--
}

func nodeLabel(n ast.Node) string {
	label := strings.TrimPrefix(fmt.Sprintf("%T", n), "*ast.")
	switch v := n.(type) {
	case *ast.Name:
		return fmt.Sprintf("%s %q", label, v.Token.Token.Text)
	case *ast.Number:
		return fmt.Sprintf("%s %q", label, v.Token.Token.Text)
	case *ast.StringLiteral:
		return fmt.Sprintf("%s %q", label, v.Token.Token.Text)
	case *ast.Symbol:
		return fmt.Sprintf("%s %q", label, v.Token.Token.Text)
	default:
		return label
	}
}

// FormatTreePretty dumps the tree structure, one node per line. Trivia and
// punctuation are omitted; use rendering for the byte-exact view.
func FormatTreePretty(w io.Writer, tree *ast.Tree) {
	ast.Walk(&astDumper{w: w}, tree)
}
