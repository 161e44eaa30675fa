package cmd

import (
	"fmt"

	"vsixfetch/internal/gallery"

	"github.com/spf13/cobra"
)

var infoFlags []int

var infoCmd = &cobra.Command{
	Use:   "info [PUBLISHER.NAME]",
	Short: "Shows extension metadata from the marketplace",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		return runInfo(args[0])
	},
}

func init() {
	infoCmd.Flags().IntSliceVar(&infoFlags, "flags", []int{int(gallery.FlagIncludeVersions), int(gallery.FlagIncludeStatistics)},
		"query flag values combined into the request bitmask")
	rootCmd.AddCommand(infoCmd)
}

func runInfo(extensionID string) error {
	publisher, name, err := gallery.SplitUniqueID(extensionID)
	if err != nil {
		return err
	}

	flags := make([]gallery.QueryFlag, 0, len(infoFlags))
	for _, f := range infoFlags {
		flags = append(flags, gallery.QueryFlag(f))
	}

	client := gallery.New()
	info, err := client.GetExtensionInfo(publisher, name, flags...)
	if err != nil {
		return fmt.Errorf("error getting extension information: %w", err)
	}

	fmt.Printf("Extension information:\n")
	fmt.Printf("  ID: %s\n", info.UniqueID())
	fmt.Printf("  Name: %s\n", info.DisplayName)
	fmt.Printf("  Publisher: %s\n", info.Publisher.DisplayName)
	if len(info.Versions) > 0 {
		fmt.Printf("  Latest version: %s\n", info.Versions[0].Version)
	}
	if info.ShortDescription != "" {
		fmt.Printf("  Description: %s\n", info.ShortDescription)
	}
	if installs, ok := info.Statistic("install"); ok {
		fmt.Printf("  Installs: %.0f\n", installs)
	}
	if rating, ok := info.Statistic("averagerating"); ok {
		fmt.Printf("  Rating: %.2f\n", rating)
	}

	return nil
}
