package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/framesec/internal/diag"
	"github.com/alexiusacademia/framesec/internal/engine"
	"github.com/alexiusacademia/framesec/internal/profile"
	"github.com/alexiusacademia/framesec/internal/section"
	"github.com/spf13/cobra"
)

var (
	readIDs       []string
	readJSON      bool
	readOutput    string
	readMaterials string
)

var readCmd = &cobra.Command{
	Use:   "read",
	Short: "Read frame properties from the model as canonical sections",
	Long: `Translate native frame properties into canonical sections.

Tapered sections are resolved after the sections they reference. Sections
whose shape has no canonical profile are reported with explicit aggregate
properties instead.

Examples:
  framesec read
  framesec read --ids W14X90,TAPER1 --json
  framesec read -o sections.json --materials materials.json`,
	RunE: runRead,
}

func init() {
	rootCmd.AddCommand(readCmd)

	readCmd.Flags().StringSliceVar(&readIDs, "ids", nil, "Section names to read (default: all)")
	readCmd.Flags().BoolVar(&readJSON, "json", false, "Print sections as JSON")
	readCmd.Flags().StringVarP(&readOutput, "output", "o", "", "Write sections to a JSON file")
	readCmd.Flags().StringVar(&readMaterials, "materials", "", "JSON file mapping material names to families")
}

func runRead(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	materials, err := loadMaterials(readMaterials)
	if err != nil {
		return fmt.Errorf("load materials: %w", err)
	}

	s, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer s.close()

	sink := newSink()
	reader := engine.NewReader(s.store, materials, sink, cfg.Tolerance)
	secs, err := reader.Read(ctx, readIDs)
	if err != nil {
		return err
	}

	if readOutput != "" {
		if err := section.SaveToFile(readOutput, secs); err != nil {
			return fmt.Errorf("write %s: %w", readOutput, err)
		}
		fmt.Printf("Wrote %d sections to %s\n", len(secs), readOutput)
	}

	if readJSON {
		data, err := json.MarshalIndent(secs, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	printSections(secs, sink)
	return nil
}

// loadMaterials reads a {"name": "family"} table, falling back to the
// built-in grades.
func loadMaterials(path string) (section.Materials, error) {
	if path == "" {
		return section.DefaultMaterials(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var families map[string]string
	if err := json.Unmarshal(data, &families); err != nil {
		return nil, err
	}
	m := section.Materials{}
	for name, family := range families {
		m[name] = section.NewMaterialRef(name, family)
	}
	return m, nil
}

func printSections(secs []section.Section, sink *diag.Recorder) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     FRAME SECTIONS")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Name\tMaterial\tShape\tDepth\tWidth\tModifiers\n")
	fmt.Fprintf(w, "  ────\t────────\t─────\t─────\t─────\t─────────\n")
	for _, sec := range secs {
		mods := "-"
		if sec.Modifiers != nil {
			mods = "yes"
		}
		shape := profile.ShapeOf(sec.Profile)
		depth, width := "-", "-"
		if profile.Geometric(sec.Profile) {
			depth = fmt.Sprintf("%.1f", profile.Depth(sec.Profile))
			width = fmt.Sprintf("%.1f", profile.Width(sec.Profile))
		}
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%s\t%s\n", sec.Name, sec.Material.Name, shape, depth, width, mods)
	}
	w.Flush()
	fmt.Println()

	fmt.Println("SUMMARY:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Sections:\t%d\n", len(secs))
	fmt.Fprintf(w, "  Warnings:\t%d\n", sink.Count(diag.Warning)-sink.Count(diag.Error))
	fmt.Fprintf(w, "  Errors:\t%d\n", sink.Count(diag.Error))
	w.Flush()
	fmt.Println()
}
