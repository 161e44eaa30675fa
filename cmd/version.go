package cmd

import (
	"fmt"

	"vsixfetch/internal/gallery"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version [PUBLISHER.NAME] [VERSION]",
	Short: "Resolves the latest version, or checks that a specific version exists",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		requested := ""
		if len(args) == 2 {
			requested = args[1]
		}
		return runVersion(args[0], requested)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func runVersion(extensionID, requested string) error {
	publisher, name, err := gallery.SplitUniqueID(extensionID)
	if err != nil {
		return err
	}

	client := gallery.New()
	version, err := client.GetExtensionVersion(publisher, name, requested)
	if err != nil {
		return fmt.Errorf("error resolving version: %w", err)
	}

	fmt.Println(version.Version)
	return nil
}
