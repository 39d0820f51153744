package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/adlenadlen/xyzconv/internal/batch"
	"github.com/adlenadlen/xyzconv/internal/history"
	"github.com/adlenadlen/xyzconv/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded conversions",
	Long: `History lists past conversions from the local history database, newest
first. Recording is off by default; enable it with history.enabled in the
config file or XYZCONV_HISTORY_ENABLED=true.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := history.NewStore(historyConfig())
		if err != nil {
			return err
		}
		defer store.Close()

		if clear, _ := cmd.Flags().GetBool("clear"); clear {
			n, err := store.Clear(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d records\n", n)
			return nil
		}

		limit, _ := cmd.Flags().GetInt("limit")
		records, err := store.List(cmd.Context(), limit)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No conversions recorded.")
			return nil
		}
		for _, rec := range records {
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s -> %s  %s -> %s  %d points (%d skipped)\n",
				rec.ConvertedAt.Format("2006-01-02 15:04"),
				rec.Source, rec.Target, rec.Input, rec.Output,
				rec.Points, rec.Skipped)
		}
		return nil
	},
}

// historyConfig reads the history store settings from viper.
func historyConfig() types.HistoryConfig {
	return types.HistoryConfig{
		Enabled: viper.GetBool("history.enabled"),
		Path:    viper.GetString("history.path"),
	}
}

// recordHistory appends a successful conversion to the history store when
// recording is enabled. A history failure is only a warning; the
// conversion itself already succeeded.
func recordHistory(cmd *cobra.Command, res batch.JobResult) {
	cfg := historyConfig()
	if !cfg.Enabled {
		return
	}

	store, err := history.NewStore(cfg)
	if err != nil {
		log.Warn().Err(err).Msg("cannot open history store")
		return
	}
	defer store.Close()

	err = store.Add(cmd.Context(), history.Record{
		Input:   res.Input,
		Output:  res.OutputPath,
		Source:  res.Source,
		Target:  res.Target,
		Points:  res.Points,
		Skipped: res.Skipped,
	})
	if err != nil {
		log.Warn().Err(err).Msg("cannot record conversion")
	}
}

func init() {
	historyCmd.Flags().Int("limit", 20, "maximum number of records to show")
	historyCmd.Flags().Bool("clear", false, "delete all recorded conversions")

	rootCmd.AddCommand(historyCmd)
}
