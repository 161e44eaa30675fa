package cmd

import (
	"fmt"
	"os"

	"vsixfetch/internal/catalog"
	"vsixfetch/internal/config"
	"vsixfetch/internal/gallery"

	"github.com/spf13/cobra"
)

var downloadOutputDir string

var downloadCmd = &cobra.Command{
	Use:   "download [PUBLISHER.NAME]",
	Short: "Downloads the latest VSIX package of an extension",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		return runDownload(args[0])
	},
}

func init() {
	downloadCmd.Flags().StringVarP(&downloadOutputDir, "output", "o", "", "output directory (default from config)")
	rootCmd.AddCommand(downloadCmd)
}

func runDownload(extensionID string) error {
	cfg := config.GetConfig()

	publisher, name, err := gallery.SplitUniqueID(extensionID)
	if err != nil {
		return err
	}

	outputDir := downloadOutputDir
	if outputDir == "" {
		outputDir = cfg.OutputDir
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	client := gallery.New()

	fmt.Println("Getting extension information...")
	info, err := client.GetExtensionInfo(publisher, name, gallery.FlagIncludeVersions, gallery.FlagIncludeFiles)
	if err != nil {
		return fmt.Errorf("error getting extension information: %w", err)
	}

	fmt.Printf("\nExtension information:\n")
	fmt.Printf("  ID: %s\n", info.UniqueID())
	fmt.Printf("  Name: %s\n", info.DisplayName)
	fmt.Printf("  Publisher: %s\n", info.Publisher.PublisherName)
	if len(info.Versions) > 0 {
		fmt.Printf("  Version: %s\n", info.Versions[0].Version)
	}

	fmt.Println("\nDownloading extension...")
	filePath, err := client.DownloadExtensionVsix(publisher, name, outputDir)
	if err != nil {
		return fmt.Errorf("error downloading extension: %w", err)
	}

	stat, err := os.Stat(filePath)
	if err != nil {
		return fmt.Errorf("error reading downloaded file: %w", err)
	}
	fmt.Printf("Downloaded: %s (%d bytes)\n", filePath, stat.Size())

	cat, err := catalog.Open(cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("error opening catalog: %w", err)
	}
	defer cat.Close()

	entry := &catalog.Entry{
		ID:          info.UniqueID(),
		Publisher:   info.Publisher.PublisherName,
		Name:        info.ExtensionName,
		DisplayName: info.DisplayName,
		Version:     info.Versions[0].Version,
		FilePath:    filePath,
		FileSize:    stat.Size(),
	}
	if err := cat.Record(entry); err != nil {
		return fmt.Errorf("error recording download in catalog: %w", err)
	}

	fmt.Printf("Extension added to catalog: %s\n", entry.ID)
	return nil
}
