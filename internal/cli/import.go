package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>...",
	Short: "Import xls, xlsx, txt, txts or json question bank files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		failed := 0
		for _, r := range a.Banks.ImportFiles(cmd.Context(), args) {
			if r.Err != nil {
				failed++
				fmt.Fprintf(cmd.ErrOrStderr(), "✗ %s: %v\n", r.Path, r.Err)
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ %s → %s (%d questions)\n", r.Path, r.Bank.StorageKey, len(r.Bank.Questions))
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d files failed", failed, len(args))
		}
		return nil
	},
}
