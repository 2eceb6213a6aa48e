package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"lunar/internal/parser"
	"lunar/internal/project"
)

// useColor decides colorization from the --color flag and the terminal.
func useColor(cmd *cobra.Command, out *os.File) bool {
	flag, _ := cmd.Root().PersistentFlags().GetString("color")
	switch flag {
	case "on":
		return true
	case "off":
		return false
	default:
		return isTerminal(out)
	}
}

func maxDiagnostics(cmd *cobra.Command) int {
	n, _ := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if n <= 0 {
		n = 100
	}
	return n
}

// resolveDialect maps the --dialect flag to a parser dialect; "auto" consults
// the nearest lunar.toml above startPath, falling back to plain Lua 5.1.
func resolveDialect(cmd *cobra.Command, startPath string) (parser.Dialect, *project.Manifest, error) {
	flag, _ := cmd.Root().PersistentFlags().GetString("dialect")
	switch flag {
	case "lua51":
		return parser.DialectLua51, nil, nil
	case "extended":
		return parser.DialectExtended, nil, nil
	case "auto":
	default:
		return parser.DialectLua51, nil, fmt.Errorf("unknown dialect %q", flag)
	}

	start := startPath
	if info, err := os.Stat(start); err != nil || !info.IsDir() {
		start = filepath.Dir(start)
	}
	manifestPath, ok, err := project.FindManifest(start)
	if err != nil || !ok {
		return parser.DialectLua51, nil, err
	}
	m, err := project.Load(manifestPath)
	if err != nil {
		return parser.DialectLua51, nil, err
	}
	if m.Package.Dialect == "extended" {
		return parser.DialectExtended, &m, nil
	}
	return parser.DialectLua51, &m, nil
}
