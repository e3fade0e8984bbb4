package storage

import (
	"utestgen/internal/domain"
)

// Storage persists and loads discovery manifests
type Storage interface {
	Save(path string, files []string, prototypes []domain.Prototype, aggregator string) error
	Load(path string) (*domain.Manifest, error)
}

// JSONStorage stores manifests as indented JSON files
type JSONStorage struct{}

// NewJSONStorage returns a Storage that reads/writes JSON manifests
func NewJSONStorage() *JSONStorage {
	return &JSONStorage{}
}
