package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"lunar/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "lunar",
	Short: "Lossless Lua parser and toolchain",
	Long:  `Lunar parses Lua 5.1 sources into full-fidelity syntax trees that render back byte for byte`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().String("dialect", "auto", "source dialect (auto|lua51|extended)")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
