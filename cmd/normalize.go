package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/framesec/internal/vendordb"
	"github.com/spf13/cobra"
)

var normalizeDB string

var normalizeCmd = &cobra.Command{
	Use:   "normalize NAME...",
	Short: "Show how section names map onto a vendor library",
	Long: `Normalize section names the way the writer does before a library
lookup, and report the matching library entry.

Built-in databases: AISC14, BSShapes2006, Euro.

Examples:
  framesec normalize "W 14 X 90.0"
  framesec normalize --db BSShapes2006 UB457x191x67 UC203x203x46`,
	Args: cobra.MinimumNArgs(1),
	RunE: runNormalize,
}

func init() {
	rootCmd.AddCommand(normalizeCmd)

	normalizeCmd.Flags().StringVar(&normalizeDB, "db", "AISC14", "Vendor database name or JSON file")
}

func runNormalize(cmd *cobra.Command, args []string) error {
	db, err := vendordb.Resolve(normalizeDB)
	if err != nil {
		return err
	}
	matcher, err := vendordb.NewMatcher(db)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("  Database: %s (%s)\n", db.Name, db.File)
	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Name\tNormalized\tLibrary\n")
	fmt.Fprintf(w, "  ────\t──────────\t───────\n")
	for _, name := range args {
		lib, ok := matcher.Match(name)
		if !ok {
			lib = "(no match)"
		}
		fmt.Fprintf(w, "  %s\t%s\t%s\n", name, db.Translate(vendordb.Normalize(name)), lib)
	}
	w.Flush()
	fmt.Println()
	return nil
}
