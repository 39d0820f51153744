package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adlenadlen/xyzconv/internal/batch"
	"github.com/adlenadlen/xyzconv/pkg/types"
)

var batchCmd = &cobra.Command{
	Use:   "batch <jobfile>",
	Short: "Convert a list of point files described by a YAML job file",
	Long: `Batch runs every conversion listed in a YAML job file, sequentially and
in order. A failed job is reported and does not stop the remaining jobs.

Use --init to write an example job file to the given path instead of
running one.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if scaffold, _ := cmd.Flags().GetBool("init"); scaffold {
			if err := batch.WriteJobFile(args[0], exampleJobs); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote example job file: %s\n", args[0])
			return nil
		}

		jobs, err := batch.ReadJobFile(args[0])
		if err != nil {
			return err
		}

		r, err := newReader()
		if err != nil {
			return err
		}

		result, done := batch.RunAll(r, jobs, cmd.OutOrStdout())
		for _, res := range done {
			recordHistory(cmd, res)
		}

		if result.HasFailures() {
			return fmt.Errorf("%d of %d jobs failed", result.Failed, result.Total())
		}
		return nil
	},
}

// exampleJobs is the scaffold written by --init.
var exampleJobs = []batch.Job{
	{
		Input:    "survey.sdr",
		To:       types.FormatCSV,
		OutOrder: types.OrderNorthEast,
	},
	{
		Input:       "points.txt",
		To:          types.FormatSDR,
		InDelimiter: types.DelimiterComma,
		InOrder:     types.OrderNorthEast,
	},
}

func init() {
	batchCmd.Flags().Bool("init", false, "write an example job file and exit")

	rootCmd.AddCommand(batchCmd)
}
