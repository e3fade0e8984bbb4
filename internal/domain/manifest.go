package domain

// ManifestMeta contains metadata about a discovery run
type ManifestMeta struct {
	Files      int    `json:"files"`
	Prototypes int    `json:"prototypes"`
	Aggregator string `json:"aggregator"`
	Timestamp  string `json:"timestamp"`
}

// Manifest is the JSON document written by --manifest
type Manifest struct {
	Meta       ManifestMeta `json:"meta"`
	Files      []string     `json:"files"`
	Prototypes []Prototype  `json:"prototypes"`
}
