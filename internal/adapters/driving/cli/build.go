package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/tome-cli/internal/adapters/driven/render/text"
	"github.com/custodia-labs/tome-cli/internal/core/domain"
)

var buildCmd = &cobra.Command{
	Use:   "build [dir]",
	Short: "Load the book and write its table of contents",
	Long: `Loads book.toml, parses src/SUMMARY.md, resolves every chapter and
writes the numbered table of contents to the build directory. With
create-missing enabled, absent chapter files are created as stubs.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	dir := bookDirArg(args)

	book, store, err := loadBook(dir)
	if err != nil {
		return fmt.Errorf("book loading failed: %w", err)
	}

	buildDir := filepath.Join(dir, store.Build().BuildDir)
	if err := os.MkdirAll(buildDir, 0o755); err != nil {
		return err
	}

	tocPath := filepath.Join(buildDir, "TOC.txt")
	out, err := os.Create(tocPath)
	if err != nil {
		return err
	}
	defer out.Close()

	renderer := text.New(out)
	if err := renderer.Render(book); err != nil {
		return fmt.Errorf("%s renderer failed: %w", renderer.Name(), err)
	}

	chapters := 0
	it := book.Iter()
	for {
		item, ok := it.Next()
		if !ok {
			break
		}
		if _, isChapter := item.(*domain.Chapter); isChapter {
			chapters++
		}
	}

	title := store.Book().Title
	if title == "" {
		title = dir
	}
	cmd.Println(successStyle.Render(fmt.Sprintf("Built %q: %d chapters", title, chapters)))
	cmd.Println(dimStyle.Render("Table of contents written to " + tocPath))
	return nil
}
