package cmd

import (
	"fmt"

	"github.com/alexiusacademia/framesec/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of framesec",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("framesec v%s\n", version.Version)
		fmt.Println("Frame Section Property Translator")
		if version.GitCommit != "unknown" {
			fmt.Printf("commit %s, built %s\n", version.GitCommit, version.BuildTime)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
