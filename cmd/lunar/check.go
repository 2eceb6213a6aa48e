package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lunar/internal/diag"
	"lunar/internal/diagfmt"
	"lunar/internal/driver"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [dir]",
	Short: "Check every Lua file under a directory",
	Long:  `Check parses all *.lua files under a directory in parallel and reports syntax diagnostics`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().Bool("no-cache", false, "disable the disk cache")
	checkCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	checkCmd.Flags().Bool("stats", false, "print run statistics")
}

func runCheck(cmd *cobra.Command, args []string) error {
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
		if manifest.Check.MaxDiagnostics > 0 {
			opts.MaxDiagnostics = manifest.Check.MaxDiagnostics
		}
	}

	if noCache, _ := cmd.Flags().GetBool("no-cache"); !noCache {
		cache, err := driver.OpenDiskCache("lunar")
		if err == nil {
			opts.Cache = cache
		}
		// A cache that fails to open is skipped, not fatal.
	}

	fileSet, results, stats, err := driver.CheckDir(cmd.Context(), dir, opts)
	if err != nil {
		return err
	}

	merged := diag.NewBag(opts.MaxDiagnostics * len(results))
	for i := range results {
		merged.Merge(results[i].Bag)
	}
	merged.Sort()

	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "pretty":
		diagfmt.Pretty(os.Stdout, merged, fileSet, diagfmt.PrettyOpts{
			Color:     useColor(cmd, os.Stdout),
			Context:   true,
			ShowNotes: true,
		})
	case "json":
		if err := diagfmt.JSON(os.Stdout, merged, fileSet, diagfmt.JSONOpts{
			IncludePositions: true,
			IncludeNotes:     true,
		}); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	if showStats, _ := cmd.Flags().GetBool("stats"); showStats {
		fmt.Fprintf(os.Stderr, "checked %d files (%d from cache), %d with errors\n",
			stats.Files, stats.CacheHits, stats.WithError)
	}

	if stats.WithError > 0 {
		return fmt.Errorf("found errors in %d of %d files", stats.WithError, stats.Files)
	}
	return nil
}
