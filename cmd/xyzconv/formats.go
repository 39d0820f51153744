package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adlenadlen/xyzconv/pkg/types"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List supported formats, delimiters, and coordinate orders",
	Run: func(cmd *cobra.Command, args []string) {
		w := cmd.OutOrStdout()

		fmt.Fprintln(w, "Formats:")
		for _, f := range types.Formats {
			fmt.Fprintf(w, "  %-5s %s\n", f, f.Label())
		}

		fmt.Fprintln(w, "\nDelimiters (TXT):")
		for _, d := range types.Delimiters {
			fmt.Fprintf(w, "  %-10s %s\n", d, d.Label())
		}

		fmt.Fprintln(w, "\nCoordinate orders (TXT, CSV):")
		for _, o := range types.CoordinateOrders {
			fmt.Fprintf(w, "  %-11s %s\n", o, o.Label())
		}
	},
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}
