// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

const exportLimit = 100000

// ExportYAML writes every stored run to path as YAML, newest first.
func (s *Store) ExportYAML(ctx context.Context, path string) error {
	records, err := s.exportRecords(ctx)
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(records)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ExportJSON writes every stored run to path as indented JSON, newest first.
func (s *Store) ExportJSON(ctx context.Context, path string) error {
	records, err := s.exportRecords(ctx)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

func (s *Store) exportRecords(ctx context.Context) ([]Record, error) {
	records, err := s.List(ctx, exportLimit)
	if err != nil {
		return nil, fmt.Errorf("querying for export: %w", err)
	}
	return records, nil
}
