package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sucheet2000/medical-desert-california/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "medical-desert",
	Short: "Healthcare desert risk analysis for California census tracts",
	Long: `Downloads CDC PLACES health measures, the USDA Food Access Research Atlas,
and an NPPES provider sample, then merges them by census tract FIPS code and
derives a composite healthcare desert risk score per tract.

Run 'acquire' first, then 'transform'.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
