// Package tool implements the gallery maintenance CLI: regenerating the
// generated data files, adding new gallery folders, reordering images and
// sections, and rotating a folder to a uniform orientation.
package tool

import (
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/visyura/notna-archives.art/internal/collection"
	"github.com/visyura/notna-archives.art/internal/manifest"
)

type options struct {
	root       string
	configPath string
}

func (o *options) config() string {
	if o.configPath != "" {
		return o.configPath
	}
	return filepath.Join(o.root, "galleries.yaml")
}

// NewRootCmd builds the gallerytool command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "gallerytool",
		Short: "Maintain the portfolio gallery folders and their generated data files",
		Long: `gallerytool keeps the portfolio site's gallery data in sync with the
image folders on disk: it regenerates the generated manifest files, adds
new folders as galleries, reorders images and sections, and rotates a
folder's images to a uniform orientation.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
	}

	cmd.PersistentFlags().StringVar(&opts.root, "root", ".", "site root directory")
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "gallery config file (default <root>/galleries.yaml)")

	cmd.AddCommand(
		newUpdateCmd(opts),
		newAddCmd(opts),
		newReorderImagesCmd(opts),
		newReorderSectionsCmd(opts),
		newRotateCmd(opts),
	)

	return cmd
}

// regenerate rewrites every collection manifest from the current config
// and folder state.
func regenerate(cmd *cobra.Command, opts *options, cfg *collection.Config) error {
	for i := range cfg.Collections {
		col := &cfg.Collections[i]
		cmd.Printf("Processing %s/\n", col.BaseDir)
		warnf := func(format string, args ...any) {
			cmd.Printf("   warning: "+format+"\n", args...)
		}
		if err := manifest.Write(opts.root, col, warnf); err != nil {
			return err
		}
		cmd.Printf("   updated %s\n", col.DataFile)
	}
	return nil
}
