package ui

import "utestgen/internal/domain"

// Viewer displays discovered prototypes interactively
type Viewer interface {
	View(prototypes []domain.Prototype, aggregator string) error
}
