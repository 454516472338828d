package cli

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/tome-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/tome-cli/internal/logger"
)

var (
	initTitle     string
	initGitignore bool
)

const initialSummary = `# Summary

- [Chapter 1](./chapter_1.md)
`

const initialChapter = "# Chapter 1\n"

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Create the boilerplate structure and files for a new book",
	Long: `Creates a book skeleton: book.toml, a src directory with SUMMARY.md
and a first chapter, and optionally a .gitignore for the build
directory. Existing files are left untouched.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	initCmd.Flags().StringVar(&initTitle, "title", "", "title for the new book")
	initCmd.Flags().BoolVar(&initGitignore, "gitignore", true, "create a .gitignore for the build directory")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	dir := bookDirArg(args)

	store, err := file.NewConfigStore(dir)
	if err != nil {
		return err
	}
	bookCfg := store.Book()
	buildCfg := store.Build()

	srcDir := filepath.Join(dir, bookCfg.Src)
	if err := os.MkdirAll(srcDir, 0o755); err != nil {
		return err
	}

	created, err := createIfMissing(filepath.Join(srcDir, "SUMMARY.md"), initialSummary)
	if err != nil {
		return err
	}
	if created {
		cmd.Println(dimStyle.Render("Created " + filepath.Join(srcDir, "SUMMARY.md")))
	}

	if _, err := createIfMissing(filepath.Join(srcDir, "chapter_1.md"), initialChapter); err != nil {
		return err
	}

	if initGitignore {
		ignore := buildCfg.BuildDir + "\n"
		if _, err := createIfMissing(filepath.Join(dir, ".gitignore"), ignore); err != nil {
			return err
		}
	}

	if _, statErr := os.Stat(store.Path()); os.IsNotExist(statErr) {
		if initTitle != "" {
			store.Set("book.title", initTitle)
		}
		if author, ok := gitAuthorName(); ok {
			logger.Debug("obtained author name from gitconfig: %q", author)
			store.Set("book.authors", []string{author})
		}
		store.Set("book.src", bookCfg.Src)
		store.Set("build.build-dir", buildCfg.BuildDir)
		if err := store.Save(); err != nil {
			return err
		}
	}

	cmd.Println(successStyle.Render(fmt.Sprintf("Created new book at %s", srcDir)))
	return nil
}

// createIfMissing writes content to path unless something already
// exists there. Reports whether the file was created.
func createIfMissing(path, content string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, err
	}
	return true, os.WriteFile(path, []byte(content), 0o644)
}

// gitAuthorName reads the author from the git configuration.
func gitAuthorName() (string, bool) {
	out, err := exec.Command("git", "config", "--get", "user.name").Output()
	if err != nil {
		return "", false
	}
	name := strings.TrimSpace(string(out))
	return name, name != ""
}
