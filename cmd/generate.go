package cmd

import (
	"github.com/spf13/cobra"
)

// generateCmd groups the code generators used during development
var generateCmd = &cobra.Command{
	Use:    "generate",
	Short:  "generate code",
	Long:   `generate code checked into the repository, such as the jet database models`,
	Hidden: true,
}

func init() {
	rootCmd.AddCommand(generateCmd)
}
