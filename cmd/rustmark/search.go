// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/rustmark/internal/index"
	"github.com/pdiddy/rustmark/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Query the object index with full-text search and filters",
	Long: `Search queries the object index built by a previous run of build, using
FTS5 full-text search over object names and index entry text, structured
filters (kind, doc), or a combination of both.`,
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	store, err := index.NewStore(indexConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	opts := queryOptsFromFlags(cmd, args)
	if opts.IsEmpty() {
		return fmt.Errorf("query or filter required: provide a search query, --kind, or --doc")
	}

	results, err := store.Retrieve(context.Background(), opts)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatSearchOutput(results, jsonOutput)
}

func formatSearchOutput(results []types.ObjectEntry, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-8s  %-30s  %-20s  %s\n",
		"Rank", "Kind", "Name", "Doc", "Anchor")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 80))

	for i, r := range results {
		name := r.Name
		if len(name) > 30 {
			name = name[:27] + "..."
		}
		doc := r.Doc
		if len(doc) > 20 {
			doc = doc[:17] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-4d  %-8s  %-30s  %-20s  %s\n",
			i+1, r.Kind, name, doc, r.Anchor)
	}

	fmt.Fprintf(os.Stdout, "\n%d results\n", len(results))
	return nil
}

// --- shared helpers ---

func indexConfig(cmd *cobra.Command) types.IndexConfig {
	return types.IndexConfig{
		OutDir:     stringSetting(cmd, "out", "build.out_dir", "build"),
		MaxResults: intSetting(cmd, "max-results", "index.max_results", 20),
	}
}

func queryOptsFromFlags(cmd *cobra.Command, args []string) index.QueryOptions {
	queryText, _ := cmd.Flags().GetString("query")
	if queryText == "" && len(args) > 0 {
		queryText = strings.Join(args, " ")
	}

	kind, _ := cmd.Flags().GetString("kind")
	doc, _ := cmd.Flags().GetString("doc")
	limit, _ := cmd.Flags().GetInt("limit")

	return index.QueryOptions{
		Query:      queryText,
		Kind:       kind,
		Doc:        doc,
		MaxResults: limit,
	}
}

func init() {
	searchCmd.Flags().String("query", "", "full-text search query")
	searchCmd.Flags().String("kind", "", "filter by object kind: crate, mod, struct, enum, evar, type, static")
	searchCmd.Flags().String("doc", "", "filter by source page path")
	searchCmd.Flags().Int("limit", 0, "maximum results (0 = use default)")
	searchCmd.Flags().String("out", "", "build output directory containing the index (default build)")
	searchCmd.Flags().Int("max-results", 0, "default maximum number of query results")
	searchCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(searchCmd)
}
