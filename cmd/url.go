package cmd

import (
	"fmt"

	"vsixfetch/internal/gallery"

	"github.com/spf13/cobra"
)

var urlCmd = &cobra.Command{
	Use:   "url [PUBLISHER.NAME]",
	Short: "Prints the download URL of the latest VSIX package",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		return runURL(args[0])
	},
}

func init() {
	rootCmd.AddCommand(urlCmd)
}

func runURL(extensionID string) error {
	publisher, name, err := gallery.SplitUniqueID(extensionID)
	if err != nil {
		return err
	}

	client := gallery.New()
	url, err := client.GetVsixDownloadURL(publisher, name)
	if err != nil {
		return fmt.Errorf("error resolving download URL: %w", err)
	}

	fmt.Println(url)
	return nil
}
