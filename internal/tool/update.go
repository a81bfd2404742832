package tool

import (
	"github.com/spf13/cobra"

	"github.com/visyura/notna-archives.art/internal/collection"
)

func newUpdateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "update",
		Short: "Regenerate every collection's gallery data file",
		Long: `Scans all configured gallery folders and rewrites the generated data
files. The data files are machine-owned; any hand edits are overwritten.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := collection.Load(opts.config())
			if err != nil {
				return err
			}
			if err := regenerate(cmd, opts, cfg); err != nil {
				return err
			}
			cmd.Println("Done. All gallery data files updated.")
			return nil
		},
	}
}
