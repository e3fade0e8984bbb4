package cli

import "utestgen/internal/config"

// Flags holds command-line flags
type Flags struct {
	Output     string
	Manifest   string
	Aggregator string
	Recursive  bool
	Progress   bool
	NameFilter string
	ByFile     bool
	LogFile    string
	Verbose    bool
	EnvFile    string
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Output:     f.Output,
		Manifest:   f.Manifest,
		Aggregator: f.Aggregator,
		Recursive:  f.Recursive,
		Progress:   f.Progress,
		NameFilter: f.NameFilter,
		ByFile:     f.ByFile,
		LogFile:    f.LogFile,
		Verbose:    f.Verbose,
		EnvFile:    f.EnvFile,
	}
}
