package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/born-ml/adjoint/internal/objective"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List benchmark objectives",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tDIM\tSTART\tDESCRIPTION")
			for _, name := range objective.Names() {
				o, err := objective.Lookup(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(tw, "%s\t%s\t%v\t%s\n", o.Name, dimString(o.Dim), o.Start, o.Description)
			}
			return tw.Flush()
		},
	}
}

func dimString(dim int) string {
	switch {
	case dim == 0:
		return "any"
	case dim < 0:
		return ">=" + strconv.Itoa(-dim)
	default:
		return strconv.Itoa(dim)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "adjoint %s\n", version)
		},
	}
}
