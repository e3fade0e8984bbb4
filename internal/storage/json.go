package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"utestgen/internal/domain"
)

// Save writes the scanned files and discovered prototypes to path.
func (s *JSONStorage) Save(path string, files []string, prototypes []domain.Prototype, aggregator string) error {
	if files == nil {
		files = []string{}
	}
	if prototypes == nil {
		prototypes = []domain.Prototype{}
	}

	output := domain.Manifest{
		Meta: domain.ManifestMeta{
			Files:      len(files),
			Prototypes: len(prototypes),
			Aggregator: aggregator,
			Timestamp:  time.Now().Format(time.RFC3339),
		},
		Files:      files,
		Prototypes: prototypes,
	}

	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create manifest dir: %w", err)
		}
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}

// Load reads a manifest previously written by Save.
func (s *JSONStorage) Load(path string) (*domain.Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var output domain.Manifest
	if err := json.Unmarshal(data, &output); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	return &output, nil
}
