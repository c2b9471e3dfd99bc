package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/framesec/internal/config"
	"github.com/alexiusacademia/framesec/internal/version"
	"github.com/spf13/cobra"
)

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "framesec",
	Short: "Frame section property translation tool",
	Long: `framesec - Frame Section Property Translator

A CLI tool that moves frame section definitions between a canonical
JSON description and a native analysis model.

This tool helps structural engineers:
  - Read native frame properties as canonical profiles
  - Resolve tapered (non-prismatic) sections into breakpoint profiles
  - Write canonical sections back, importing vendor library shapes by name
  - Fall back to explicit aggregate properties where no shape exists

Settings come from FRAMESEC_* environment variables (a .env file in the
working directory is read first) and can be overridden by flags.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return applyFlags(cmd)
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   framesec v%-46s║\n", version.Version)
		fmt.Println("  ║   Frame Section Property Translator                       ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Canonical profiles for I, channel, angle, tee, box, tube and solids")
		fmt.Println("    • Tapered section resolution with dependency ordering")
		fmt.Println("    • Vendor library matching (AISC, BS, Euro)")
		fmt.Println("    • Stiffness modifier translation")
		fmt.Println()
		fmt.Println("  Use 'framesec --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	defaults := config.Default()
	rootCmd.PersistentFlags().String("model", defaults.ModelPath, "Path to the model file (FRAMESEC_MODEL)")
	rootCmd.PersistentFlags().String("vendor-db", "", "Vendor database name or JSON file (FRAMESEC_VENDOR_DB)")
	rootCmd.PersistentFlags().Float64("taper-scale", defaults.TaperScale, "Tapered segment length multiplier (FRAMESEC_TAPER_SCALE)")
	rootCmd.PersistentFlags().Float64("tolerance", defaults.Tolerance, "Breakpoint separation at tapered discontinuities (FRAMESEC_TOLERANCE)")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Do not log diagnostics (FRAMESEC_QUIET)")
}

// applyFlags loads the environment and overrides it with flags the user
// set explicitly.
func applyFlags(cmd *cobra.Command) error {
	var err error
	if cfg, err = config.Load(); err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("model") {
		cfg.ModelPath, _ = flags.GetString("model")
	}
	if flags.Changed("vendor-db") {
		cfg.VendorDatabase, _ = flags.GetString("vendor-db")
	}
	if flags.Changed("taper-scale") {
		cfg.TaperScale, _ = flags.GetFloat64("taper-scale")
	}
	if flags.Changed("tolerance") {
		cfg.Tolerance, _ = flags.GetFloat64("tolerance")
	}
	if flags.Changed("quiet") {
		cfg.Quiet, _ = flags.GetBool("quiet")
	}
	return cfg.Validate()
}
