// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package index

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/rustmark/pkg/types"
)

const exportLimit = 100000

// ExportYAML writes the object index to outDir/index/export.yaml.
// It supports the same filters as Retrieve.
func (s *Store) ExportYAML(ctx context.Context, opts QueryOptions) error {
	entries, err := s.exportEntries(ctx, opts)
	if err != nil {
		return err
	}

	path := filepath.Join(s.outDir, indexDir, "export.yaml")
	data, err := yaml.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ExportJSON writes the object index to outDir/index/export.json.
// It supports the same filters as Retrieve.
func (s *Store) ExportJSON(ctx context.Context, opts QueryOptions) error {
	entries, err := s.exportEntries(ctx, opts)
	if err != nil {
		return err
	}

	path := filepath.Join(s.outDir, indexDir, "export.json")
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

func (s *Store) exportEntries(ctx context.Context, opts QueryOptions) ([]types.ObjectEntry, error) {
	// Zero means export everything; an explicit limit is respected.
	if opts.MaxResults <= 0 {
		opts.MaxResults = exportLimit
	}
	entries, err := s.Retrieve(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("querying for export: %w", err)
	}
	return entries, nil
}
