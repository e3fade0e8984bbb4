package discovery

import (
	"path/filepath"
	"strings"

	"utestgen/internal/domain"
)

// Filter filters prototypes by name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName keeps the prototypes whose name matches pattern.
// Supports wildcards like "test_fs_*" or "*pipe*"; a pattern without
// wildcards is a substring match. Order is preserved.
func (f *Filter) FilterByName(prototypes []domain.Prototype, pattern string) []domain.Prototype {
	if pattern == "" {
		return prototypes
	}

	var filtered []domain.Prototype
	for _, proto := range prototypes {
		if matchName(proto.Name, pattern) {
			filtered = append(filtered, proto)
		}
	}
	return filtered
}

func matchName(name, pattern string) bool {
	if matched, err := filepath.Match(pattern, name); err == nil && matched {
		return true
	}

	if !strings.ContainsAny(pattern, "*?") {
		return strings.Contains(name, pattern)
	}

	// Fall back to an ordered substring match for patterns like "*pipe*"
	// that filepath.Match rejects or does not anchor the way users expect.
	if !strings.Contains(pattern, "*") {
		return false
	}
	rest := name
	hasPart := false
	for _, part := range strings.Split(pattern, "*") {
		if part == "" {
			continue
		}
		hasPart = true
		idx := strings.Index(rest, part)
		if idx < 0 {
			return false
		}
		rest = rest[idx+len(part):]
	}
	return hasPart
}
