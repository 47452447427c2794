// Package cli provides the cobra command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/noteloom/noteloom-cli/internal/adapters/driven/anki"
	configfile "github.com/noteloom/noteloom-cli/internal/adapters/driven/config/file"
	"github.com/noteloom/noteloom-cli/internal/adapters/driven/export/csvfile"
	"github.com/noteloom/noteloom-cli/internal/adapters/driven/llm/anthropic"
	"github.com/noteloom/noteloom-cli/internal/adapters/driven/llm/gemini"
	"github.com/noteloom/noteloom-cli/internal/adapters/driven/llm/ollama"
	"github.com/noteloom/noteloom-cli/internal/adapters/driven/llm/openai"
	"github.com/noteloom/noteloom-cli/internal/adapters/driven/storage/sqlite"
	"github.com/noteloom/noteloom-cli/internal/connectors/weread"
	"github.com/noteloom/noteloom-cli/internal/core/ports/driven"
	"github.com/noteloom/noteloom-cli/internal/core/ports/driving"
	"github.com/noteloom/noteloom-cli/internal/core/services"
	"github.com/noteloom/noteloom-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Persistent flag values.
var (
	verbose   bool
	configDir string
)

// Services wired in initServices. Tests swap these for mocks and set
// wired to skip real initialisation.
var (
	wired bool

	configStore  driven.ConfigStore
	bookCatalog  driven.BookCatalog
	noteStore    driven.NoteStore
	batchRunner  driving.BatchRunner
	studyService driving.StudyService
	cardSink     driven.CardSink

	store *sqlite.Store
)

var rootCmd = &cobra.Command{
	Use:   "noteloom",
	Short: "Consolidate WeRead highlights and reviews into study notes",
	Long: `Noteloom exports a reader's highlights and reviews from WeRead,
merges them into one deduplicated, chapter-ordered note table per book,
and builds study artifacts (concept lists, outlines, Anki flashcards)
from the result.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "config directory (default ~/.noteloom)")
}

// Execute runs the CLI and releases resources on exit.
func Execute() {
	defer closeServices()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup configures logging and wires services on first run.
func setup(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	if wired {
		return nil
	}
	if err := initServices(); err != nil {
		return err
	}
	wired = true
	return nil
}

// initServices builds the service graph from configuration. Optional
// pieces (connector, LLM) stay nil when unconfigured; the commands that
// need them report that at run time.
func initServices() error {
	cfg, err := configfile.NewConfigStore(configDir)
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	configStore = cfg

	store, err = sqlite.NewStore("")
	if err != nil {
		return fmt.Errorf("open note store: %w", err)
	}
	noteStore = store

	var source driven.AnnotationSource
	if cookieFile := cfg.GetString("weread.cookie_file"); cookieFile != "" {
		cookie, err := weread.LoadCookieFile(cookieFile)
		if err != nil {
			return fmt.Errorf("load cookies: %w", err)
		}
		client, err := weread.NewClient(weread.ClientConfig{Cookie: cookie})
		if err != nil {
			return fmt.Errorf("create weread client: %w", err)
		}
		connector := weread.NewConnector(client)
		bookCatalog = connector
		source = connector
	}

	writer, err := csvfile.NewWriter(cfg.GetString("export.dir"))
	if err != nil {
		return fmt.Errorf("create exporter: %w", err)
	}

	minCount := -1
	if _, ok := cfg.Get("notes.min_count"); ok {
		minCount = cfg.GetInt("notes.min_count")
	}
	consolidator := services.NewConsolidator(minCount)

	if bookCatalog != nil {
		batchRunner = services.NewBatchRunner(bookCatalog, source, consolidator, noteStore, writer, 0)
	}

	llm, err := buildLLM(cfg)
	if err != nil {
		return err
	}
	prompts, err := configfile.NewPromptStore("")
	if err != nil {
		return fmt.Errorf("open prompt store: %w", err)
	}
	studyService = services.NewStudyService(llm, prompts, noteStore)

	cardSink = anki.NewClient(anki.Config{BaseURL: cfg.GetString("anki.url")})

	return nil
}

// buildLLM creates the configured LLM service. Returns nil when no
// provider is usable; the study commands report that at run time.
func buildLLM(cfg driven.ConfigStore) (driven.LLMService, error) {
	provider := cfg.GetString("llm.provider")
	apiKey := cfg.GetString("llm.api_key")
	model := cfg.GetString("llm.model")

	switch provider {
	case "":
		if apiKey == "" {
			return nil, nil
		}
		return openai.NewLLMService(openai.LLMConfig{APIKey: apiKey, Model: model})
	case "openai":
		return openai.NewLLMService(openai.LLMConfig{APIKey: apiKey, Model: model})
	case "gemini":
		return gemini.NewLLMService(gemini.LLMConfig{APIKey: apiKey, Model: model})
	case "anthropic":
		return anthropic.NewLLMService(anthropic.Config{APIKey: apiKey, Model: model})
	case "ollama":
		// Local inference, no API key needed.
		return ollama.NewLLMService(ollama.LLMConfig{
			BaseURL: cfg.GetString("llm.url"),
			Model:   model,
		}), nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", provider)
	}
}

// closeServices releases held resources.
func closeServices() {
	if store != nil {
		store.Close()
	}
}
