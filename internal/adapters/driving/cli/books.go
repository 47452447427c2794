package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
)

var booksStored bool

var booksCmd = &cobra.Command{
	Use:   "books",
	Short: "List annotated books",
	Long: `Lists the books in the WeRead notebook catalog.
With --stored, lists books whose consolidated notes are already saved locally.`,
	RunE: runBooks,
}

func init() {
	booksCmd.Flags().BoolVar(&booksStored, "stored", false, "list locally stored books instead of the remote catalog")
	rootCmd.AddCommand(booksCmd)
}

func runBooks(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	if booksStored {
		if noteStore == nil {
			return errors.New("note store not configured")
		}
		books, err := noteStore.ListBooks(ctx)
		if err != nil {
			return err
		}
		if len(books) == 0 {
			cmd.Println("No stored books. Run 'noteloom export' first.")
			return nil
		}
		for _, book := range books {
			cmd.Printf("%s\t%s\t%s\n", book.ID, book.Title, book.Author)
		}
		return nil
	}

	if bookCatalog == nil {
		return errors.New("weread not configured: set weread.cookie_file in config")
	}

	books, err := bookCatalog.ListBooks(ctx)
	if err != nil {
		return err
	}
	if len(books) == 0 {
		cmd.Println("No annotated books found.")
		return nil
	}
	for _, book := range books {
		cmd.Printf("%s\t%s\t%s\n", book.ID, book.Title, book.Author)
	}
	return nil
}
