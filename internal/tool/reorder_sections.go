package tool

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/visyura/notna-archives.art/internal/collection"
)

func newReorderSectionsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "reorder-sections",
		Short: "Move gallery sections up, down, to top, or to bottom",
		Long: `Interactively rearranges the section order of one collection. Changes
are kept in memory until you save, then the config and the generated
data files are rewritten.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := collection.Load(opts.config())
			if err != nil {
				return err
			}
			if len(cfg.Collections) == 0 {
				cmd.Println("No gallery sections found.")
				return nil
			}

			cmd.Println("Which page do you want to reorder?")
			for i, col := range cfg.Collections {
				cmd.Printf("  %d. %s (%d sections)\n", i+1, col.BaseDir, len(col.Galleries))
			}

			p := NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
			answer, err := p.Question("Choose page (enter number): ")
			if err != nil {
				return err
			}
			idx, err := ParseIndex(answer, len(cfg.Collections))
			if errors.Is(err, ErrQuit) {
				cmd.Println("Cancelled.")
				return nil
			}
			if err != nil {
				return err
			}
			col := &cfg.Collections[idx]

			for {
				cmd.Printf("\n%s\n", col.BaseDir)
				cmd.Println("Current section order:")
				for i, s := range col.Summaries() {
					cmd.Printf("  %d. %s\n", i+1, s.Title)
				}
				cmd.Println("What do you want to do?")
				cmd.Println("  [number] - Select a section to move")
				cmd.Println("  s - Save and exit")
				cmd.Println("  q - Cancel (discard changes)")

				action, err := p.Question("Choose: ")
				if err != nil {
					return err
				}
				switch strings.ToLower(action) {
				case "s":
					if err := cfg.Save(opts.config()); err != nil {
						return err
					}
					cmd.Println("Section order saved.")
					return regenerate(cmd, opts, cfg)
				case "q":
					cmd.Println("Cancelled.")
					return nil
				}

				section, err := ParseIndex(action, len(col.Galleries))
				if err != nil {
					cmd.Println("Invalid section number.")
					continue
				}

				cmd.Printf("Selected: %s\n", col.Galleries[section].Title)
				cmd.Println("Where do you want to move it?")
				cmd.Println("  u - Move UP")
				cmd.Println("  d - Move DOWN")
				cmd.Println("  t - Move to TOP")
				cmd.Println("  b - Move to BOTTOM")
				cmd.Println("  c - Cancel")

				move, err := p.Question("Choose: ")
				if err != nil {
					return err
				}

				target := -1
				switch strings.ToLower(move) {
				case "u":
					target = section - 1
				case "d":
					target = section + 1
				case "t":
					target = 0
				case "b":
					target = len(col.Galleries) - 1
				case "c":
					cmd.Println("Cancelled move.")
					continue
				default:
					cmd.Println("Invalid action.")
					continue
				}

				if err := col.Move(section, target); err != nil {
					cmd.Println("Cannot move in that direction.")
					continue
				}
				cmd.Println("Moved.")
			}
		},
	}
}
