package cmd

import (
	"fmt"

	"github.com/alexiusacademia/framesec/internal/diag"
	"github.com/alexiusacademia/framesec/internal/engine"
	"github.com/alexiusacademia/framesec/internal/section"
	"github.com/spf13/cobra"
)

var (
	writeFile   string
	writeDryRun bool
)

var writeCmd = &cobra.Command{
	Use:   "write",
	Short: "Write canonical sections from a JSON file into the model",
	Long: `Create native frame properties from canonical section definitions.

Sections whose name matches the configured vendor database are imported
from the library. Tapered sections are written as synthetic sub-sections
plus one non-prismatic section. Shapes with no native counterpart are
written as General sections from their explicit properties.

Examples:
  framesec write --file sections.json
  framesec write -f sections.json --vendor-db AISC14
  framesec write -f sections.json --dry-run`,
	RunE: runWrite,
}

func init() {
	rootCmd.AddCommand(writeCmd)

	writeCmd.Flags().StringVarP(&writeFile, "file", "f", "", "Path to sections JSON file [required]")
	writeCmd.MarkFlagRequired("file")
	writeCmd.Flags().BoolVar(&writeDryRun, "dry-run", false, "Translate without saving the model")
}

func runWrite(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	secs, err := section.LoadFromFile(writeFile)
	if err != nil {
		return fmt.Errorf("load sections: %w", err)
	}

	s, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer s.close()

	matcher, err := vendorMatcher(s.store)
	if err != nil {
		return err
	}

	sink := newSink()
	writer := engine.NewWriter(s.store, matcher, sink, cfg.TaperScale)
	n, err := writer.WriteAll(ctx, secs)
	if err != nil {
		return err
	}

	fmt.Printf("Wrote %d of %d sections", n, len(secs))
	if errs := sink.Count(diag.Error); errs > 0 {
		fmt.Printf(" (%d errors)", errs)
	}
	fmt.Println()

	if writeDryRun {
		fmt.Println("Dry run, model not saved")
		return nil
	}
	if err := s.save(ctx); err != nil {
		return fmt.Errorf("save model: %w", err)
	}
	fmt.Printf("Saved %s\n", cfg.ModelPath)
	return nil
}
