package tool

import (
	"errors"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/visyura/notna-archives.art/internal/collection"
	"github.com/visyura/notna-archives.art/internal/gallery"
)

func newAddCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "add",
		Short: "Add a new image folder as a gallery",
		Long: `Scans every collection's base directory for folders that contain
images but are not yet configured, lets you pick one and a position,
auto-rotates its images to the majority orientation, then records the
gallery and regenerates all data files.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := collection.Load(opts.config())
			if err != nil {
				return err
			}

			cmd.Println("Scanning for new galleries...")
			var candidates []gallery.NewFolder
			for i := range cfg.Collections {
				col := &cfg.Collections[i]
				candidates = append(candidates, gallery.FindNewFolders(opts.root, col.BaseDir, col.IDs())...)
			}

			if len(candidates) == 0 {
				cmd.Println("No new galleries found. All folders are already configured.")
				return nil
			}

			cmd.Printf("Found %d new folder(s) with images:\n", len(candidates))
			for i, folder := range candidates {
				cmd.Printf("  %d. %s (%d images)\n", i+1, folder.Name, folder.ImageCount)
			}

			p := NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
			answer, err := p.Question("Which folder do you want to add? (enter number or \"q\" to quit): ")
			if err != nil {
				return err
			}
			idx, err := ParseIndex(answer, len(candidates))
			if errors.Is(err, ErrQuit) {
				cmd.Println("Cancelled.")
				return nil
			}
			if err != nil {
				return err
			}
			selected := candidates[idx]
			cmd.Printf("Selected: %s\n", selected.Name)

			autoRotate(cmd, filepath.Join(opts.root, selected.BaseDir, selected.Name))

			col, err := cfg.Collection(selected.BaseDir)
			if err != nil {
				return err
			}

			summaries := col.Summaries()
			cmd.Println("Current galleries (in order):")
			for i, s := range summaries {
				cmd.Printf("  %d. %s\n", i+1, s.Title)
			}
			cmd.Println("Where do you want to add it?")
			cmd.Println("  0. At the TOP (newest first)")
			for i, s := range summaries {
				cmd.Printf("  %d. After %q\n", i+1, s.Title)
			}

			answer, err = p.Question("Enter position (0 for top): ")
			if err != nil {
				return err
			}
			position, err := ParsePosition(answer, len(summaries))
			if err != nil {
				return err
			}

			record := collection.Gallery{
				Folder:      selected.Name,
				Title:       gallery.TitleFromFolder(selected.Name),
				AspectRatio: "auto",
			}
			if err := col.InsertAt(record, position); err != nil {
				return err
			}
			if err := cfg.Save(opts.config()); err != nil {
				return err
			}
			cmd.Printf("Added %q to %s\n", record.Title, col.BaseDir)

			if err := regenerate(cmd, opts, cfg); err != nil {
				return err
			}
			cmd.Println("Done. Refresh your browser to see the new gallery.")
			return nil
		},
	}
}

// autoRotate brings the folder's images to the majority orientation before
// the gallery is first published. Per-image failures only lower the count.
func autoRotate(cmd *cobra.Command, folder string) {
	files, err := gallery.ScanImages(folder)
	if err != nil || len(files) == 0 {
		return
	}

	cmd.Println("Analyzing image orientations...")
	descs := gallery.ClassifyFolder(folder, files)
	if len(descs) == 0 {
		cmd.Println("   could not analyze any images, skipping auto-rotation")
		return
	}

	vote := gallery.Decide(descs)
	if vote.PortraitCount == 0 && vote.LandscapeCount == 0 {
		cmd.Println("   all images are square, no rotation needed")
		return
	}
	cmd.Printf("   Portrait: %d, Landscape: %d\n", vote.PortraitCount, vote.LandscapeCount)
	cmd.Printf("   Majority: %s\n", vote.Majority)

	if vote.NoAction() {
		cmd.Println("   all images already match the majority orientation")
		return
	}

	result := gallery.RotateAll(vote.Candidates, gallery.DegreesToward(vote.Majority), func(file string) {
		cmd.Printf("   Rotating: %s\n", file)
	})
	cmd.Printf("   Rotated %d of %d images.\n", result.Rotated, result.Attempted)
}
