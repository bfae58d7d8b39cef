package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/catalog-search/internal/core/domain"
)

var importTerm string

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a term's sections from a JSON catalog file",
	Long: `Reads sections from a JSON catalog file and replaces every stored section
of the term with them. The file holds either an array of sections or an
object with a "sections" array.

The term is taken from --term, or from the first section that names one.`,
	Example: `  catalog import fa2023.json
  catalog import --term SP2024 spring.json`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Import a catalog file and re-import it whenever it changes",
	Args:  cobra.ExactArgs(1),
	RunE:  runWatch,
}

func init() {
	importCmd.Flags().StringVar(&importTerm, "term", "", "term the sections belong to, e.g. FA2023")
	watchCmd.Flags().StringVar(&importTerm, "term", "", "term the sections belong to, e.g. FA2023")
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(watchCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}
	if catalogFiles.Open == nil {
		return errors.New("catalog files not configured")
	}

	reader := catalogFiles.Open(args[0])
	sections, err := reader.Read(cmd.Context())
	if err != nil {
		return err
	}

	rec, err := importSections(cmd.Context(), reader.Source(), sections)
	if err != nil {
		return err
	}
	printImport(cmd, rec)
	return nil
}

func runWatch(cmd *cobra.Command, args []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}
	if catalogFiles.Open == nil || catalogFiles.Watch == nil {
		return errors.New("catalog files not configured")
	}

	if err := runImport(cmd, args); err != nil {
		return err
	}

	cmd.Printf("Watching %s for changes (Ctrl+C to stop)\n", args[0])
	err := catalogFiles.Watch(cmd.Context(), args[0], func(ctx context.Context, sections []domain.Section) error {
		rec, err := importSections(ctx, args[0], sections)
		if err != nil {
			return err
		}
		printImport(cmd, rec)
		return nil
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func importSections(ctx context.Context, source string, sections []domain.Section) (*domain.ImportRecord, error) {
	term, err := importTermFor(sections)
	if err != nil {
		return nil, err
	}
	rec, err := catalogService.Import(ctx, term, source, sections)
	if err != nil {
		return nil, fmt.Errorf("import failed: %w", err)
	}
	return rec, nil
}

// importTermFor returns the --term flag, else the term of the first section
// that carries one.
func importTermFor(sections []domain.Section) (domain.TermIdentifier, error) {
	if importTerm != "" {
		return domain.ParseTermIdentifier(importTerm)
	}
	for i := range sections {
		if term := sections[i].Identifier.TermID(); !term.IsZero() {
			return term, nil
		}
	}
	return domain.TermIdentifier{}, fmt.Errorf("%w: no sections name a term, pass --term", domain.ErrInvalidTerm)
}

func printImport(cmd *cobra.Command, rec *domain.ImportRecord) {
	cmd.Printf("Imported %d sections for %s from %s\n", rec.Sections, rec.Term, rec.Source)
}
