package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/framesec/internal/diagram"
	"github.com/alexiusacademia/framesec/internal/engine"
	"github.com/alexiusacademia/framesec/internal/profile"
	"github.com/alexiusacademia/framesec/internal/section"
	"github.com/spf13/cobra"
)

var (
	taperName        string
	taperShowDiagram bool
	taperExportFile  string
)

var taperCmd = &cobra.Command{
	Use:   "taper",
	Short: "Show the resolved breakpoints of a tapered section",
	Long: `Resolve one tapered (Variable) section and list its breakpoints.

Optionally draw an ASCII elevation or export a plot of the depth along
the member.

Examples:
  framesec taper --name TAPER1
  framesec taper -n TAPER1 --diagram
  framesec taper -n TAPER1 -o taper1.png`,
	RunE: runTaper,
}

func init() {
	rootCmd.AddCommand(taperCmd)

	taperCmd.Flags().StringVarP(&taperName, "name", "n", "", "Tapered section name [required]")
	taperCmd.MarkFlagRequired("name")

	// Diagram options
	taperCmd.Flags().BoolVar(&taperShowDiagram, "diagram", false, "Show ASCII elevation")
	taperCmd.Flags().StringVarP(&taperExportFile, "output", "o", "", "Export elevation to file (png, svg, pdf)")
}

func runTaper(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	s, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer s.close()

	reader := engine.NewReader(s.store, section.DefaultMaterials(), newSink(), cfg.Tolerance)
	secs, err := reader.Read(ctx, []string{taperName})
	if err != nil {
		return err
	}
	if len(secs) == 0 {
		return fmt.Errorf("section %q could not be read", taperName)
	}
	sec := secs[0]
	t, ok := sec.Profile.(profile.Tapered)
	if !ok {
		return fmt.Errorf("section %q is not tapered (%s)", taperName, profile.ShapeOf(sec.Profile))
	}

	fmt.Println()
	fmt.Printf("  Tapered section: %s\n", sec.Name)
	if sec.Material.Name != "" {
		fmt.Printf("  Material: %s (%s)\n", sec.Material.Name, sec.Material.Family)
	}
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  #\tPosition\tShape\tDepth\tWidth\tOrder\n")
	fmt.Fprintf(w, "  ─\t────────\t─────\t─────\t─────\t─────\n")
	for i, p := range t.Profiles {
		order := "-"
		if i < len(t.InterpolationOrder) {
			order = fmt.Sprintf("%d", t.InterpolationOrder[i])
		}
		fmt.Fprintf(w, "  %d\t%.6f\t%s\t%.1f\t%.1f\t%s\n",
			i+1, t.Positions[i], profile.ShapeOf(p), profile.Depth(p), profile.Width(p), order)
	}
	w.Flush()
	fmt.Println()

	data := diagram.FromTapered(sec.Name, sec.Material.Name, t, 1)
	if taperShowDiagram {
		fmt.Println(diagram.DrawASCIIElevation(data))
	}
	if taperExportFile != "" {
		if err := diagram.ExportTaperedElevation(data, taperExportFile); err != nil {
			return fmt.Errorf("export elevation: %w", err)
		}
		fmt.Printf("  Elevation exported to %s\n", taperExportFile)
	}
	return nil
}
