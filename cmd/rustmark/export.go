// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/rustmark/internal/index"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the object index to YAML or JSON",
	Long: `Export writes the full object index (or a filtered subset) to
<out>/index/export.yaml or export.json. Supports the same filter flags
as search for partial exports.`,
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	store, err := index.NewStore(indexConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	opts := queryOptsFromFlags(cmd, args)

	switch format {
	case "yaml", "":
		if err := store.ExportYAML(context.Background(), opts); err != nil {
			return err
		}
		fmt.Println("Exported to index/export.yaml")
	case "json":
		if err := store.ExportJSON(context.Background(), opts); err != nil {
			return err
		}
		fmt.Println("Exported to index/export.json")
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}

	return nil
}

func init() {
	exportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	exportCmd.Flags().String("query", "", "full-text search filter for partial export")
	exportCmd.Flags().String("kind", "", "filter by object kind for partial export")
	exportCmd.Flags().String("doc", "", "filter by source page path for partial export")
	exportCmd.Flags().Int("limit", 0, "maximum entries to export (0 = all)")
	exportCmd.Flags().String("out", "", "build output directory containing the index (default build)")
	exportCmd.Flags().Int("max-results", 0, "default maximum number of query results")

	rootCmd.AddCommand(exportCmd)
}
