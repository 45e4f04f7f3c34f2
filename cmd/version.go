package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"prezo/pkg/ui"
)

// Version is set at build time via -ldflags.
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the prezo version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(ui.FormatBold("prezo " + Version))
	},
}
