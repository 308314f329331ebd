// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/rustmark/internal/index"
	"github.com/pdiddy/rustmark/internal/markup"
	"github.com/pdiddy/rustmark/internal/rustobjects"
	"github.com/pdiddy/rustmark/pkg/types"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Render doc sources and populate the object index",
	Long: `Build registers the Rust object types, parses every .rst file under the
source directory, renders one Markdown page per source page into the output
directory, and ingests all declared objects into the SQLite object index at
<out>/index/objects.db.

Warnings (unknown directives, unresolved references) go to stderr and do
not fail the build. A registration failure aborts before any page is
parsed.`,
	RunE: runBuild,
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg := buildConfig(cmd)

	engine := markup.NewEngine()
	if err := rustobjects.Setup(engine); err != nil {
		return fmt.Errorf("registering object types: %w", err)
	}

	sources, err := findSources(cfg.SourceDir)
	if err != nil {
		return err
	}
	if len(sources) == 0 {
		return fmt.Errorf("no .rst sources found under %s", cfg.SourceDir)
	}

	env := markup.NewBuildEnv()
	parser := markup.NewParser(engine, env)

	var entries []types.ObjectEntry
	for _, rel := range sources {
		data, err := os.ReadFile(filepath.Join(cfg.SourceDir, rel))
		if err != nil {
			return fmt.Errorf("reading %s: %w", rel, err)
		}

		doc, pageEntries := parser.Parse(rel, string(data))
		entries = append(entries, pageEntries...)

		outPath := filepath.Join(cfg.OutDir, strings.TrimSuffix(rel, ".rst")+".md")
		if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
		if err := os.WriteFile(outPath, []byte(markup.WriteMarkdown(doc)), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", outPath, err)
		}
		fmt.Fprintf(os.Stdout, "rendered %s (%d objects)\n", rel, len(pageEntries))
	}

	for _, warning := range env.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", warning)
	}

	store, err := index.NewStore(types.IndexConfig{OutDir: cfg.OutDir})
	if err != nil {
		return err
	}
	defer store.Close()

	summary, err := store.Ingest(context.Background(), entries)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "\npages: %d, objects indexed: %d, warnings: %d\n",
		len(sources), summary.Objects, len(env.Warnings))
	return nil
}

// findSources returns the .rst files under sourceDir, as sorted paths
// relative to sourceDir.
func findSources(sourceDir string) ([]string, error) {
	var sources []string
	err := filepath.WalkDir(sourceDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".rst") {
			return nil
		}
		rel, err := filepath.Rel(sourceDir, path)
		if err != nil {
			return err
		}
		sources = append(sources, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", sourceDir, err)
	}
	return sources, nil
}

func buildConfig(cmd *cobra.Command) types.BuildConfig {
	return types.BuildConfig{
		SourceDir: stringSetting(cmd, "source", "build.source_dir", "docs"),
		OutDir:    stringSetting(cmd, "out", "build.out_dir", "build"),
	}
}

func init() {
	buildCmd.Flags().String("source", "", "directory scanned for .rst sources (default docs)")
	buildCmd.Flags().String("out", "", "directory for rendered pages and the index (default build)")

	rootCmd.AddCommand(buildCmd)
}
