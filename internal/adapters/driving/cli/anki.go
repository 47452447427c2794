package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/noteloom/noteloom-cli/internal/core/services"
)

var ankiCmd = &cobra.Command{
	Use:   "anki",
	Short: "Import study material into Anki",
}

var ankiImportCmd = &cobra.Command{
	Use:   "import <book-id>",
	Short: "Extract concepts and import them as flashcards",
	Long: `Extracts concepts from a book's consolidated notes and imports them
into Anki as Basic cards via AnkiConnect. Anki must be running with the
AnkiConnect add-on installed. Duplicate cards are skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnkiImport,
}

func init() {
	ankiCmd.AddCommand(ankiImportCmd)
	rootCmd.AddCommand(ankiCmd)
}

func runAnkiImport(cmd *cobra.Command, args []string) error {
	if cardSink == nil {
		return errors.New("anki sink not configured")
	}
	if studyService == nil || noteStore == nil {
		return errors.New("study service not configured")
	}

	ctx := context.Background()
	bookID := args[0]

	if err := cardSink.Ping(ctx); err != nil {
		return fmt.Errorf("anki unreachable (is Anki running with AnkiConnect?): %w", err)
	}

	// The stored notes carry the book title for deck naming.
	notes, err := noteStore.ListNotes(ctx, bookID)
	if err != nil {
		return err
	}
	if len(notes) == 0 {
		return fmt.Errorf("no consolidated notes for book %s: run 'noteloom export %s' first", bookID, bookID)
	}
	title := notes[0].Title

	concepts, err := studyService.ExtractConcepts(ctx, bookID)
	if err != nil {
		return err
	}
	if len(concepts) == 0 {
		cmd.Println("No concepts extracted; nothing to import.")
		return nil
	}

	tags := []string{"noteloom"}
	if configStore != nil {
		if custom := configStore.GetStringSlice("anki.tags"); len(custom) > 0 {
			tags = custom
		}
	}

	prefix := ""
	if configStore != nil {
		prefix = configStore.GetString("anki.deck_prefix")
	}
	deck := services.DeckName(prefix, title)

	if err := cardSink.EnsureDeck(ctx, deck); err != nil {
		return fmt.Errorf("create deck: %w", err)
	}

	cards := services.ConceptCards(concepts, tags)
	added, err := cardSink.AddCards(ctx, deck, cards)
	if err != nil {
		return fmt.Errorf("import cards: %w", err)
	}

	cmd.Printf("Imported %d of %d card(s) into %q (%d duplicate(s) skipped).\n",
		added, len(cards), deck, len(cards)-added)
	return nil
}
