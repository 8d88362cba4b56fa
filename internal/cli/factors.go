package cli

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/carbonscope/carbonscope/internal/factors"
)

func newFactorsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "factors",
		Short: "Inspect the built-in emission factor tables",
	}
	cmd.AddCommand(newFactorsListCmd(), newFactorsShowCmd())
	return cmd
}

func newFactorsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List factor table names",
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range factors.TableNames() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func newFactorsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <table>",
		Short: "Print the entries of one factor table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, ok := factors.Default().Table(args[0])
			if !ok {
				return fmt.Errorf("unknown factor table %q (try: factors list)", args[0])
			}

			keys := make([]string, 0, len(table))
			for k := range table {
				keys = append(keys, k)
			}
			sort.Strings(keys)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "KEY\tUNIT\tKGCO2E")
			for _, k := range keys {
				f := table[k]
				for _, unit := range f.Units() {
					fmt.Fprintf(w, "%s\t%s\t%g\n", k, unit, f.PerUnit[unit])
				}
			}
			return w.Flush()
		},
	}
}
