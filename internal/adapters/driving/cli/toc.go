package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/tome-cli/internal/core/domain"
)

var tocCmd = &cobra.Command{
	Use:   "toc [dir]",
	Short: "Print the book's chapter tree",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runToc,
}

func init() {
	rootCmd.AddCommand(tocCmd)
}

func runToc(cmd *cobra.Command, args []string) error {
	dir := bookDirArg(args)

	book, store, err := loadBook(dir)
	if err != nil {
		return fmt.Errorf("book loading failed: %w", err)
	}

	if title := store.Book().Title; title != "" {
		cmd.Println(titleStyle.Render(title))
		cmd.Println()
	}

	it := book.Iter()
	for {
		item, ok := it.Next()
		if !ok {
			return nil
		}

		switch ch := item.(type) {
		case *domain.Chapter:
			pad := strings.Repeat("  ", len(ch.ParentNames))
			if ch.Number != nil {
				cmd.Println(pad + numberStyle.Render(ch.Number.String()) + " " + ch.Name)
			} else {
				cmd.Println(pad + ch.Name)
			}
		case *domain.VirtualChapter:
			if ch.Number != nil {
				pad := strings.Repeat("  ", len(ch.Number)-1)
				cmd.Println(pad + numberStyle.Render(ch.Number.String()) + " " + ch.Name)
			} else {
				cmd.Println(ch.Name)
			}
		case domain.Separator:
			cmd.Println(dimStyle.Render(strings.Repeat("-", 12)))
		}
	}
}
