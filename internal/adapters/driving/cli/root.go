// Package cli is the cobra command surface for tome.
package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/tome-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/tome-cli/internal/adapters/driven/content/billyfs"
	"github.com/custodia-labs/tome-cli/internal/core/domain"
	"github.com/custodia-labs/tome-cli/internal/core/ports/driving"
	"github.com/custodia-labs/tome-cli/internal/core/services"
	"github.com/custodia-labs/tome-cli/internal/logger"
)

var (
	version = "dev"
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "tome",
	Short: "Build books from an outline and a tree of chapter files",
	Long: `Tome turns a SUMMARY.md outline and a directory of chapter files
into a fully resolved book: chapters are loaded, section numbers
assigned and the result handed to a renderer.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
}

// Execute runs the root command with the build-time version string.
func Execute(v string) error {
	version = v
	return rootCmd.Execute()
}

// bookDirArg returns the book root from the optional positional
// argument, defaulting to the current directory.
func bookDirArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}

// loadBook wires config, content source and loader for the book rooted
// at dir, and resolves the book.
func loadBook(dir string) (*domain.Book, *file.ConfigStore, error) {
	store, err := file.NewConfigStore(dir)
	if err != nil {
		return nil, nil, err
	}
	store.UpdateFromEnv()

	bookCfg := store.Book()
	buildCfg := store.Build()

	source := billyfs.NewOS(filepath.Join(dir, bookCfg.Src))
	var loader driving.BookLoader = services.NewLoaderService(source, services.LoaderOptions{
		SpacesPerLevel: buildCfg.IndentSpaces,
		CreateMissing:  buildCfg.CreateMissing,
	})

	book, err := loader.Load()
	if err != nil {
		return nil, nil, err
	}
	return book, store, nil
}
