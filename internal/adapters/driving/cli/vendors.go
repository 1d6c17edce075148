package cli

import (
	"github.com/spf13/cobra"

	configfile "github.com/fabworks/kifab/internal/adapters/driven/config/file"
	"github.com/fabworks/kifab/internal/core/domain"
)

var vendorsCmd = &cobra.Command{
	Use:   "vendors",
	Short: "List known fabrication vendors",
	Run: func(cmd *cobra.Command, _ []string) {
		configured := ""
		if configStore != nil {
			configured = configStore.GetString(configfile.KeyVendor)
		}

		cmd.Println("Known vendors:")
		for _, v := range domain.AllVendors() {
			marker := " "
			if v.String() == configured {
				marker = "*"
			}
			cmd.Printf("  %s %-10s %s\n", marker, v, v.Description())
		}
		if configured != "" {
			cmd.Println()
			cmd.Printf("* configured default\n")
		}
	},
}

func init() {
	rootCmd.AddCommand(vendorsCmd)
}
