package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"findaword/internal/fitness"
)

func newCompareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare <a> <b>",
		Short: "Print every fitness metric for two strings",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return compare(cmd.OutOrStdout(), args[0], args[1])
		},
	}
}

func compare(w io.Writer, a, b string) error {
	if _, err := fmt.Fprintf(w, "%q vs %q\n", a, b); err != nil {
		return err
	}
	for _, m := range fitness.All() {
		if _, err := fmt.Fprintf(w, "%-15s %.6f\n", m.String(), m.Score([]byte(a), []byte(b))); err != nil {
			return err
		}
	}
	return nil
}
