package file

// BookConfig is the typed view of the [book] table.
type BookConfig struct {
	// Title of the book.
	Title string

	// Authors of the book.
	Authors []string

	// Description is a short blurb about the book.
	Description string

	// Src is the content root directory, relative to the book root.
	Src string

	// Language is the book's language code.
	Language string
}

// BuildConfig is the typed view of the [build] table.
type BuildConfig struct {
	// BuildDir is the output directory, relative to the book root.
	BuildDir string

	// CreateMissing creates stub files for summary entries whose
	// targets do not exist yet.
	CreateMissing bool

	// IndentSpaces is the summary indentation unit. Zero means the
	// parser default.
	IndentSpaces int
}

// Book returns the [book] table with defaults applied.
func (s *ConfigStore) Book() BookConfig {
	cfg := BookConfig{
		Title:       s.GetString("book.title"),
		Authors:     s.GetStringSlice("book.authors"),
		Description: s.GetString("book.description"),
		Src:         s.GetString("book.src"),
		Language:    s.GetString("book.language"),
	}

	if cfg.Src == "" {
		cfg.Src = "src"
	}
	if cfg.Language == "" {
		cfg.Language = "en"
	}

	return cfg
}

// Build returns the [build] table with defaults applied.
func (s *ConfigStore) Build() BuildConfig {
	cfg := BuildConfig{
		BuildDir:      s.GetString("build.build-dir"),
		CreateMissing: s.GetBool("build.create-missing"),
		IndentSpaces:  s.GetInt("build.indent-spaces"),
	}

	if cfg.BuildDir == "" {
		cfg.BuildDir = "book"
	}

	return cfg
}
