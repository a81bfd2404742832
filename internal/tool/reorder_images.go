package tool

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/visyura/notna-archives.art/internal/collection"
	"github.com/visyura/notna-archives.art/internal/gallery"
)

func newReorderImagesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "reorder-images",
		Short: "Set an explicit image order for one gallery",
		Long: `Lists every configured gallery, shows the selected one's current image
order, and records a reversed or custom order as the gallery's explicit
order before regenerating the data files.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := collection.Load(opts.config())
			if err != nil {
				return err
			}

			type entry struct {
				baseDir string
				folder  string
			}
			var entries []entry
			for _, col := range cfg.Collections {
				for _, g := range col.Galleries {
					entries = append(entries, entry{baseDir: col.BaseDir, folder: g.Folder})
				}
			}
			if len(entries) == 0 {
				cmd.Println("No galleries found.")
				return nil
			}

			cmd.Println("Available galleries:")
			for i, e := range entries {
				cmd.Printf("  %d. %s/%s\n", i+1, e.baseDir, e.folder)
			}

			p := NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
			answer, err := p.Question("Which gallery do you want to reorder? (enter number): ")
			if err != nil {
				return err
			}
			idx, err := ParseIndex(answer, len(entries))
			if errors.Is(err, ErrQuit) {
				cmd.Println("Cancelled.")
				return nil
			}
			if err != nil {
				return err
			}
			selected := entries[idx]

			images, err := gallery.ScanImages(filepath.Join(opts.root, selected.baseDir, selected.folder))
			if err != nil {
				return err
			}
			if len(images) == 0 {
				return fmt.Errorf("no images in %s/%s", selected.baseDir, selected.folder)
			}

			cmd.Printf("%s/%s (%d images)\n", selected.baseDir, selected.folder, len(images))
			cmd.Println("Current order:")
			for i, img := range images {
				cmd.Printf("  %d. %s\n", i+1, img)
			}

			cmd.Println("How do you want to reorder?")
			cmd.Println("  r - Reverse order")
			cmd.Println("  c - Custom order (enter numbers)")
			cmd.Println("  q - Cancel")
			action, err := p.Question("Choose action: ")
			if err != nil {
				return err
			}

			var newOrder []string
			switch strings.ToLower(action) {
			case "r":
				newOrder = make([]string, len(images))
				for i, img := range images {
					newOrder[len(images)-1-i] = img
				}
			case "c":
				cmd.Println("Enter the new order as comma-separated numbers.")
				cmd.Println("Example: 3,1,2,4 (this puts image 3 first, then 1, then 2, then 4)")
				orderInput, err := p.Question("New order: ")
				if err != nil {
					return err
				}
				indices, err := ParseOrder(orderInput, len(images))
				if err != nil {
					return err
				}
				for _, i := range indices {
					newOrder = append(newOrder, images[i])
				}
			default:
				cmd.Println("Cancelled.")
				return nil
			}

			cmd.Println("New order:")
			for i, img := range newOrder {
				cmd.Printf("  %d. %s\n", i+1, img)
			}
			confirm, err := p.Question("Apply this order? (y/n): ")
			if err != nil {
				return err
			}
			if !strings.EqualFold(confirm, "y") {
				cmd.Println("Cancelled.")
				return nil
			}

			col, err := cfg.Collection(selected.baseDir)
			if err != nil {
				return err
			}
			if err := col.SetImageOrder(selected.folder, newOrder); err != nil {
				return err
			}
			if err := cfg.Save(opts.config()); err != nil {
				return err
			}
			cmd.Println("Order updated in configuration.")

			return regenerate(cmd, opts, cfg)
		},
	}
}
