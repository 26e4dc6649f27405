package main

import (
	"context"
	"fmt"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sucheet2000/medical-desert-california/internal/acquire"
	"github.com/sucheet2000/medical-desert-california/internal/fetcher"
	"github.com/sucheet2000/medical-desert-california/internal/store"
)

var acquireCmd = &cobra.Command{
	Use:   "acquire",
	Short: "Download the raw datasets",
	Long: `Downloads the CDC PLACES tract-level export, the USDA Food Access Research
Atlas workbook, and a single-page NPPES provider sample into the raw data
directory. Sources run independently: one failing does not block the others.

Use --status to print the last recorded fetch per source instead.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		st, err := store.NewSQLite(cfg.Data.ManifestPath)
		if err != nil {
			return eris.Wrap(err, "acquire: open manifest")
		}
		defer st.Close() //nolint:errcheck

		if err := st.Migrate(ctx); err != nil {
			return eris.Wrap(err, "acquire: migrate manifest")
		}

		showStatus, _ := cmd.Flags().GetBool("status")
		if showStatus {
			return printAcquireStatus(ctx, st)
		}

		sourcesStr, _ := cmd.Flags().GetString("sources")
		var names []string
		if sourcesStr != "" {
			names = splitAndTrim(sourcesStr)
		}

		reg := acquire.NewRegistry(cfg)
		sources, err := reg.Select(names)
		if err != nil {
			return err
		}

		f := fetcher.NewHTTPFetcher(fetcher.HTTPOptions{
			UserAgent:    cfg.Fetch.UserAgent,
			Timeout:      time.Duration(cfg.Fetch.TimeoutSecs) * time.Second,
			MaxRetries:   cfg.Fetch.MaxRetries,
			RateLimiters: fetcher.DefaultRateLimiters(),
		})

		zap.L().Info("starting acquisition",
			zap.Int("sources", len(sources)),
			zap.String("raw_dir", cfg.Data.RawDir),
		)

		summary, err := acquire.RunAll(ctx, sources, f, cfg.Data.RawDir, st)
		if err != nil {
			return eris.Wrap(err, "acquire")
		}

		printAcquireSummary(summary)

		if summary.Failed() {
			return eris.Errorf("acquire: %d of %d sources failed", summary.FailedCount(), len(summary.Results))
		}
		return nil
	},
}

func init() {
	acquireCmd.Flags().String("sources", "", "comma-separated source names (default: all)")
	acquireCmd.Flags().Bool("status", false, "show the last recorded fetch per source")
	rootCmd.AddCommand(acquireCmd)
}

// printAcquireSummary prints the per-source outcome table.
func printAcquireSummary(summary *acquire.Summary) {
	fmt.Printf("%-8s %-8s %12s %10s %s\n", "Source", "Status", "Bytes", "Records", "Detail")
	fmt.Println(strings.Repeat("-", 72))
	for _, r := range summary.Results {
		status, detail := "ok", r.Path
		if r.Err != nil {
			status, detail = "failed", r.Err.Error()
		}
		fmt.Printf("%-8s %-8s %12d %10d %s\n", r.Source, status, r.Bytes, r.Records, detail)
	}
}

// printAcquireStatus prints the latest manifest row per source.
func printAcquireStatus(ctx context.Context, st store.Store) error {
	fetches, err := st.LatestFetches(ctx)
	if err != nil {
		return eris.Wrap(err, "acquire: read manifest")
	}

	if len(fetches) == 0 {
		fmt.Println("No sources acquired yet")
		return nil
	}

	fmt.Printf("%-8s %-8s %12s %10s %-17s %s\n", "Source", "Status", "Bytes", "Records", "Fetched At", "Path")
	fmt.Println(strings.Repeat("-", 84))
	for _, rec := range fetches {
		detail := rec.Path
		if rec.Status == store.StatusFailed {
			detail = rec.Error
		}
		fmt.Printf("%-8s %-8s %12d %10d %-17s %s\n",
			rec.Source, rec.Status, rec.Bytes, rec.Records,
			rec.FetchedAt.Format("2006-01-02 15:04"), detail)
	}
	return nil
}

// splitAndTrim splits a comma-separated list, trimming whitespace and
// dropping empty entries.
func splitAndTrim(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
