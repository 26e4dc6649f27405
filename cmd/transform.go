package main

import (
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sucheet2000/medical-desert-california/internal/transform"
)

var transformCmd = &cobra.Command{
	Use:   "transform",
	Short: "Merge the raw datasets and derive risk scores",
	Long: `Reads the raw CDC and USDA tables, filters to the configured state,
reshapes the health data to one row per census tract, joins on tract FIPS,
derives the healthcare desert risk fields, and writes the full-state table
plus a county-filtered subset.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		county, _ := cmd.Flags().GetString("county")
		if county == "" {
			county = cfg.Transform.CountyFilter
		}

		p := &transform.Pipeline{
			RawDir:       cfg.Data.RawDir,
			ProcessedDir: cfg.Data.ProcessedDir,
			HealthFile:   cfg.Data.HealthFile,
			FoodFile:     cfg.Data.FoodFile,
			Health: transform.HealthFilter{
				StateAbbr: cfg.Transform.StateAbbr,
				Measures:  cfg.Transform.Measures,
			},
			Food: transform.FoodFilter{
				StateName: cfg.Transform.StateName,
				Sheet:     cfg.Sources.USDASheet,
			},
			Fill: transform.FillPolicy{
				AssumeNotDesert: cfg.Transform.AssumeNotDesert,
				AssumeUrban:     cfg.Transform.AssumeUrban,
			},
			CountyFilter: county,
		}

		res, err := p.Run(ctx)
		if err != nil {
			if errors.Is(err, transform.ErrMissingInput) {
				return eris.Wrap(err, "transform: raw input missing (run 'medical-desert acquire' first)")
			}
			return eris.Wrap(err, "transform")
		}

		fmt.Printf("Census tracts:        %d\n", res.Tracts)
		fmt.Printf("County tracts:        %d\n", res.CountyTracts)
		fmt.Printf("Food deserts:         %d\n", res.FoodDeserts)
		fmt.Printf("High-risk tracts:     %d\n", res.HighRisk)
		fmt.Printf("Full dataset:         %s\n", res.FullPath)
		fmt.Printf("County dataset:       %s\n", res.CountyPath)
		return nil
	},
}

func init() {
	transformCmd.Flags().String("county", "", "county filter term (default: from config)")
	rootCmd.AddCommand(transformCmd)
}
