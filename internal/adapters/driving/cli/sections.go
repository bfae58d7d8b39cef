package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	sectionsTerm string
	sectionsJSON bool
)

var sectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "Browse imported sections",
}

var sectionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List sections, ordered by code",
	Args:  cobra.NoArgs,
	RunE:  runSectionsList,
}

var sectionsGetCmd = &cobra.Command{
	Use:     "get <long-code>",
	Short:   "Show one section",
	Example: `  catalog sections get "CSCI 005 HM-01 FA2023"`,
	Args:    cobra.ExactArgs(1),
	RunE:    runSectionsGet,
}

var termsCmd = &cobra.Command{
	Use:   "terms",
	Short: "List terms that have sections",
	Args:  cobra.NoArgs,
	RunE:  runTerms,
}

var importsCmd = &cobra.Command{
	Use:   "imports",
	Short: "Show import history, newest first",
	Args:  cobra.NoArgs,
	RunE:  runImports,
}

func init() {
	sectionsListCmd.Flags().StringVar(&sectionsTerm, "term", "", "only list sections of this term")
	sectionsGetCmd.Flags().BoolVar(&sectionsJSON, "json", false, "output the section as JSON")
	sectionsCmd.AddCommand(sectionsListCmd)
	sectionsCmd.AddCommand(sectionsGetCmd)
	rootCmd.AddCommand(sectionsCmd)
	rootCmd.AddCommand(termsCmd)
	rootCmd.AddCommand(importsCmd)
}

func runSectionsList(cmd *cobra.Command, _ []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	term, err := parseTermFlag(sectionsTerm)
	if err != nil {
		return err
	}

	sections, err := catalogService.Sections(cmd.Context(), term)
	if err != nil {
		return fmt.Errorf("failed to list sections: %w", err)
	}
	if len(sections) == 0 {
		cmd.Println("No sections imported. Run 'catalog import <file>' first.")
		return nil
	}

	for i := range sections {
		cmd.Printf("%s  %s\n", sections[i].Identifier.LongCode(), sections[i].Course.Title)
	}
	cmd.Printf("\n%d sections\n", len(sections))
	return nil
}

func runSectionsGet(cmd *cobra.Command, args []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	section, err := catalogService.Section(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get section: %w", err)
	}

	if sectionsJSON {
		data, err := json.MarshalIndent(section, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal section: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Printf("%s\n", section.Identifier.LongCode())
	cmd.Printf("  Title: %s\n", section.Course.Title)
	if names := section.InstructorNames(); len(names) > 0 {
		cmd.Printf("  Instructors: %s\n", strings.Join(names, ", "))
	}
	if section.Campus != "" {
		cmd.Printf("  Campus: %s\n", section.Campus)
	}
	if len(section.Course.CourseAreas) > 0 {
		cmd.Printf("  Areas: %s\n", strings.Join(section.Course.CourseAreas, ", "))
	}
	if section.Credits > 0 {
		cmd.Printf("  Credits: %g\n", section.Credits)
	}
	if section.Course.Description != "" {
		cmd.Println()
		cmd.Println(section.Course.Description)
	}
	return nil
}

func runTerms(cmd *cobra.Command, _ []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	terms, err := catalogService.Terms(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list terms: %w", err)
	}
	if len(terms) == 0 {
		cmd.Println("No terms imported.")
		return nil
	}
	for _, t := range terms {
		cmd.Println(t.String())
	}
	return nil
}

func runImports(cmd *cobra.Command, _ []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	records, err := catalogService.Imports(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list imports: %w", err)
	}
	if len(records) == 0 {
		cmd.Println("No imports recorded.")
		return nil
	}
	for _, rec := range records {
		cmd.Printf("%s  %s  %d sections  %s\n",
			rec.ImportedAt.Local().Format("2006-01-02 15:04:05"), rec.Term, rec.Sections, rec.Source)
	}
	return nil
}
