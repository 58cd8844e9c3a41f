package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored question banks, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		banks, err := a.Banks.List(cmd.Context())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "Storage Key\tName\tQuestions\tTypes")
		fmt.Fprintln(w, "-----------\t----\t---------\t-----")
		for _, b := range banks {
			var types []string
			for _, tc := range b.ByType {
				types = append(types, fmt.Sprintf("%s:%d", tc.Type, tc.Count))
			}
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", b.StorageKey, b.DisplayName, b.TotalQuestions, strings.Join(types, ", "))
		}
		return w.Flush()
	},
}
