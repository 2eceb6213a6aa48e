package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lunar/internal/diagfmt"
	"lunar/internal/driver"
	"lunar/internal/source"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.lua",
	Short: "Tokenize a Lua source file",
	Long:  `Tokenize dumps the flat token stream of a Lua source file, trivia included`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	fileSet := source.NewFileSet()
	result := driver.TokenizeFile(fileSet, args[0], driver.Options{
		MaxDiagnostics: maxDiagnostics(cmd),
	})

	if result.Bag.HasErrors() {
		diagfmt.Pretty(os.Stderr, result.Bag, fileSet, diagfmt.PrettyOpts{
			Color:   useColor(cmd, os.Stderr),
			Context: true,
		})
		return fmt.Errorf("tokenization failed")
	}

	switch format {
	case "pretty":
		diagfmt.FormatTokensPretty(os.Stdout, result.Tokens, fileSet)
		return nil
	case "json":
		return diagfmt.FormatTokensJSON(os.Stdout, result.Tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
