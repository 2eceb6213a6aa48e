package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lunar/internal/diagfmt"
	"lunar/internal/driver"
	"lunar/internal/source"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.lua",
	Short: "Parse a Lua source file",
	Long:  `Parse builds the full-fidelity syntax tree of a Lua source file`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "tree", "output format (tree|source)")
}

func runParse(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	dialect, _, err := resolveDialect(cmd, args[0])
	if err != nil {
		return err
	}

	fileSet := source.NewFileSet()
	result := driver.ParseFile(fileSet, args[0], driver.Options{
		Dialect:        dialect,
		MaxDiagnostics: maxDiagnostics(cmd),
	})

	if result.Bag.HasErrors() {
		result.Bag.Sort()
		diagfmt.Pretty(os.Stderr, result.Bag, fileSet, diagfmt.PrettyOpts{
			Color:     useColor(cmd, os.Stderr),
			Context:   true,
			ShowNotes: true,
		})
		return fmt.Errorf("parse failed")
	}

	switch format {
	case "tree":
		diagfmt.FormatTreePretty(os.Stdout, result.Tree)
		return nil
	case "source":
		// The rendered tree is the input, byte for byte.
		fmt.Print(result.Tree.String())
		return nil
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
