package cmd

import (
	"fmt"
	"os"

	"vsixfetch/internal/catalog"
	"vsixfetch/internal/config"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists downloaded extensions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		return runList()
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList() error {
	cfg := config.GetConfig()

	cat, err := catalog.Open(cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("error opening catalog: %w", err)
	}
	defer cat.Close()

	entries, err := cat.List()
	if err != nil {
		return fmt.Errorf("error listing catalog: %w", err)
	}

	if len(entries) == 0 {
		fmt.Println("No extensions downloaded yet.")
		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Version", "Size", "Downloaded", "Path"})
	for _, entry := range entries {
		table.Append([]string{
			entry.ID,
			entry.Version,
			fmt.Sprintf("%d", entry.FileSize),
			entry.DownloadedAt.Format("2006-01-02 15:04"),
			entry.FilePath,
		})
	}
	table.Render()

	return nil
}
