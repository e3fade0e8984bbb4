package discovery

import (
	"fmt"
	"log/slog"
	"os"

	"utestgen/internal/domain"
)

// Progress receives a tick for every file the Scanner finishes
type Progress interface {
	Advance(path string)
	Finish()
}

// Scanner collects test prototypes from a list of files
type Scanner struct {
	parser   *Parser
	progress Progress
}

// NewScanner creates a new Scanner using the given parser
func NewScanner(parser *Parser) *Scanner {
	return &Scanner{parser: parser}
}

// SetProgress sets the progress reporter used by ScanFiles
func (s *Scanner) SetProgress(progress Progress) {
	s.progress = progress
}

// ScanFiles scans the files in order and returns all prototypes in discovery order.
// The first file that cannot be opened or read aborts the scan.
func (s *Scanner) ScanFiles(paths []string) ([]domain.Prototype, error) {
	var prototypes []domain.Prototype

	for _, path := range paths {
		found, err := s.scanFile(path)
		if err != nil {
			return nil, err
		}
		slog.Debug("scanned file", "path", path, "prototypes", len(found))
		prototypes = append(prototypes, found...)

		if s.progress != nil {
			s.progress.Advance(path)
		}
	}

	if s.progress != nil {
		s.progress.Finish()
	}
	return prototypes, nil
}

func (s *Scanner) scanFile(path string) ([]domain.Prototype, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", path, err)
	}
	defer f.Close()

	prototypes, err := s.parser.FindPrototypes(f, path)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", path, err)
	}
	return prototypes, nil
}
