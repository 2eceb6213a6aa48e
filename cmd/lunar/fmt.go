package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lunar/internal/driver"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [flags] [dir]",
	Short: "Verify round-trip fidelity of Lua files",
	Long:  `Fmt parses every *.lua file under a directory and verifies that rendering the tree reproduces the file byte for byte`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runFmt,
}

func runFmt(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	dialect, manifest, err := resolveDialect(cmd, dir)
	if err != nil {
		return err
	}

	opts := driver.Options{
		Dialect:        dialect,
		MaxDiagnostics: maxDiagnostics(cmd),
	}
	if manifest != nil {
		opts.Exclude = manifest.Check.Exclude
	}

	results, err := driver.VerifyDir(cmd.Context(), dir, opts)
	if err != nil {
		return err
	}

	var broken, unparsed int
	for _, r := range results {
		switch {
		case r.Bag.HasErrors():
			unparsed++
			fmt.Fprintf(os.Stderr, "%s: does not parse\n", r.Path)
		case !r.Exact:
			broken++
			fmt.Fprintf(os.Stderr, "%s: render does not reproduce the source\n", r.Path)
		}
	}

	if broken > 0 || unparsed > 0 {
		return fmt.Errorf("%d files failed verification (%d unparsed)", broken+unparsed, unparsed)
	}
	fmt.Printf("verified %d files\n", len(results))
	return nil
}
