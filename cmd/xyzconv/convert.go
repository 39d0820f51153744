package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adlenadlen/xyzconv/internal/batch"
	"github.com/adlenadlen/xyzconv/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert <file>",
	Short: "Convert a single point file to another format",
	Long: `Convert reads one point file, parses it according to its source format,
and writes the result in the target format next to the input file (or to
--output). The source format is inferred from the file extension unless
--from is given; unrecognized extensions are treated as delimited TXT.

Formats with fixed conventions (SDR33, PNT) ignore delimiter and order
flags. TXT takes both; CSV is always semicolon-delimited but needs a
coordinate order.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		job, err := jobFromFlags(cmd, args[0])
		if err != nil {
			return err
		}

		r, err := newReader()
		if err != nil {
			return err
		}

		res, err := batch.Run(r, job)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Converted %d points: %s -> %s\n",
			res.Points, res.Input, res.OutputPath)
		if res.Skipped > 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "Skipped %d unparsable lines\n", res.Skipped)
		}

		recordHistory(cmd, res)
		return nil
	},
}

// jobFromFlags builds a batch.Job from the convert command's flags,
// applying configured defaults for delimiter and order.
func jobFromFlags(cmd *cobra.Command, input string) (batch.Job, error) {
	job := batch.Job{Input: input}

	fromStr, _ := cmd.Flags().GetString("from")
	if fromStr != "" {
		from, err := types.FormatFromString(fromStr)
		if err != nil {
			return batch.Job{}, err
		}
		job.From = from
	}

	toStr, _ := cmd.Flags().GetString("to")
	to, err := types.FormatFromString(toStr)
	if err != nil {
		return batch.Job{}, err
	}
	job.To = to

	inDelim, _ := cmd.Flags().GetString("in-delimiter")
	if job.InDelimiter, err = delimiterOption(inDelim); err != nil {
		return batch.Job{}, err
	}
	inOrder, _ := cmd.Flags().GetString("in-order")
	if job.InOrder, err = orderOption(inOrder); err != nil {
		return batch.Job{}, err
	}
	outDelim, _ := cmd.Flags().GetString("out-delimiter")
	if job.OutDelimiter, err = delimiterOption(outDelim); err != nil {
		return batch.Job{}, err
	}
	outOrder, _ := cmd.Flags().GetString("out-order")
	if job.OutOrder, err = orderOption(outOrder); err != nil {
		return batch.Job{}, err
	}

	job.Output, _ = cmd.Flags().GetString("output")
	return job, nil
}

func init() {
	convertCmd.Flags().String("from", "", "source format: sdr, txt, pnt, or csv (default: from extension)")
	convertCmd.Flags().String("to", "", "target format: sdr, txt, pnt, or csv")
	convertCmd.Flags().String("in-delimiter", "", "source delimiter for TXT: comma, space, tab, or semicolon")
	convertCmd.Flags().String("in-order", "", "source coordinate order for TXT/CSV: north-east or east-north")
	convertCmd.Flags().String("out-delimiter", "", "target delimiter for TXT")
	convertCmd.Flags().String("out-order", "", "target coordinate order for TXT/CSV")
	convertCmd.Flags().String("output", "", "output file path (default: <input>_converted.<ext>)")
	convertCmd.MarkFlagRequired("to")

	rootCmd.AddCommand(convertCmd)
}
