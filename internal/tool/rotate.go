package tool

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/visyura/notna-archives.art/internal/gallery"
)

func newRotateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "rotate <folder> [horizontal|vertical|landscape|portrait]",
		Short: "Rotate a folder's images to a uniform orientation",
		Long: `Analyzes every image in the folder (relative to the site root) and
rotates the minority so all images share one orientation. Without an
orientation argument the tool reports the counts and asks which way to go.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var target gallery.Orientation
			haveTarget := false
			if len(args) == 2 {
				t, ok := ParseOrientation(args[1])
				if !ok {
					return fmt.Errorf("invalid orientation %q", args[1])
				}
				target = t
				haveTarget = true
			}

			folder := filepath.Join(opts.root, filepath.FromSlash(args[0]))

			files, err := gallery.ScanImages(folder)
			if err != nil {
				return fmt.Errorf("folder not found: %s", args[0])
			}
			if len(files) == 0 {
				cmd.Printf("No images found in %s\n", args[0])
				return nil
			}

			cmd.Printf("Found %d images in %s\n", len(files), args[0])
			cmd.Println("Analyzing image orientations...")

			descs := gallery.ClassifyFolder(folder, files)
			if len(descs) == 0 {
				return fmt.Errorf("could not analyze any images in %s", args[0])
			}

			vote := gallery.Decide(descs)
			cmd.Printf("   Portrait: %d, Landscape: %d\n", vote.PortraitCount, vote.LandscapeCount)

			if vote.PortraitCount == 0 && vote.LandscapeCount == 0 {
				cmd.Println("All images are square. No rotation needed.")
				return nil
			}

			if !haveTarget {
				p := NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
				answer, err := p.Question("Enter \"h\" for HORIZONTAL or \"v\" for VERTICAL: ")
				if err != nil {
					return err
				}
				t, ok := ParseOrientation(answer)
				if !ok {
					return fmt.Errorf("invalid choice %q", answer)
				}
				target = t
			}

			candidates := gallery.CandidatesFor(descs, target)
			if len(candidates) == 0 {
				cmd.Printf("All images are already %s.\n", target)
				return nil
			}

			cmd.Printf("Rotating %d image(s) to %s...\n", len(candidates), target)
			result := gallery.RotateAll(candidates, gallery.DegreesToward(target), func(file string) {
				cmd.Printf("   Rotating: %s\n", file)
			})
			cmd.Printf("Rotated %d of %d images.\n", result.Rotated, result.Attempted)
			return nil
		},
	}
}
