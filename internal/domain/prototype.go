package domain

// Prototype represents a test routine discovered in a source file
type Prototype struct {
	Name   string `json:"name"`   // Full identifier, always "test_<suffix>"
	File   string `json:"file"`   // Path of the file it was found in, as given on the command line
	Line   int    `json:"line"`   // 1-based line number
	Source string `json:"source"` // The matched line with surrounding whitespace trimmed
}

// Names returns the identifiers of the given prototypes in order, duplicates included.
func Names(protos []Prototype) []string {
	names := make([]string, 0, len(protos))
	for _, p := range protos {
		names = append(names, p.Name)
	}
	return names
}
