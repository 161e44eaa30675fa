package cmd

import (
	"fmt"
	"os"

	"vsixfetch/internal/catalog"
	"vsixfetch/internal/config"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete [PUBLISHER.NAME]",
	Short: "Deletes a downloaded extension and its catalog entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		return runDelete(args[0])
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(extensionID string) error {
	cfg := config.GetConfig()

	cat, err := catalog.Open(cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("error opening catalog: %w", err)
	}
	defer cat.Close()

	entry, err := cat.Get(extensionID)
	if err != nil {
		return fmt.Errorf("error reading catalog: %w", err)
	}
	if entry == nil {
		return fmt.Errorf("extension %s not found in catalog", extensionID)
	}

	if err := os.Remove(entry.FilePath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("error deleting package file: %w", err)
	}

	if err := cat.Delete(extensionID); err != nil {
		return fmt.Errorf("error deleting catalog entry: %w", err)
	}

	fmt.Printf("Deleted extension: %s (%s)\n", entry.ID, entry.Version)
	return nil
}
