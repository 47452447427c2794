package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
)

var outlineRole string

var studyCmd = &cobra.Command{
	Use:   "study",
	Short: "Generate study artifacts from consolidated notes",
}

var conceptsCmd = &cobra.Command{
	Use:   "concepts <book-id>",
	Short: "Extract key concepts from a book's notes",
	Args:  cobra.ExactArgs(1),
	RunE:  runConcepts,
}

var outlineCmd = &cobra.Command{
	Use:   "outline <book-id>",
	Short: "Generate a chapter-by-chapter study outline",
	Args:  cobra.ExactArgs(1),
	RunE:  runOutline,
}

func init() {
	outlineCmd.Flags().StringVar(&outlineRole, "role", "", "reader role the outline is written for (default learner)")
	studyCmd.AddCommand(conceptsCmd)
	studyCmd.AddCommand(outlineCmd)
	rootCmd.AddCommand(studyCmd)
}

func runConcepts(cmd *cobra.Command, args []string) error {
	if studyService == nil {
		return errors.New("study service not configured")
	}

	concepts, err := studyService.ExtractConcepts(context.Background(), args[0])
	if err != nil {
		return err
	}

	for _, concept := range concepts {
		cmd.Printf("%s: %s\n", concept.Term, concept.Definition)
	}
	cmd.Printf("\n%d concept(s) extracted.\n", len(concepts))
	return nil
}

func runOutline(cmd *cobra.Command, args []string) error {
	if studyService == nil {
		return errors.New("study service not configured")
	}

	outline, err := studyService.GenerateOutline(context.Background(), args[0], outlineRole)
	if err != nil {
		return err
	}

	cmd.Println(outline)
	return nil
}
