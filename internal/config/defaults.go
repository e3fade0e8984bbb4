package config

const (
	// DefaultAggregator is the name of the generated routine that calls every test
	DefaultAggregator = "run_all_tests"
	// DefaultLogLevel is used when a log file is configured without a level
	DefaultLogLevel = "info"
	// DefaultLogMaxSize is the log file size in megabytes before it gets rotated
	DefaultLogMaxSize = 10
	// DefaultLogMaxBackups is the number of rotated log files to keep
	DefaultLogMaxBackups = 3
	// DefaultLogMaxAge is the number of days to retain rotated log files
	DefaultLogMaxAge = 28
)

// Environment variables read by LoadEnv
const (
	EnvLogFile    = "UTESTGEN_LOG_FILE"
	EnvLogLevel   = "UTESTGEN_LOG_LEVEL"
	EnvExtensions = "UTESTGEN_EXTENSIONS"
	EnvSkipDirs   = "UTESTGEN_SKIP_DIRS"
)

// DefaultExtensions are the file extensions collected when expanding directories
var DefaultExtensions = []string{".c"}

// DefaultPathsToIgnore are the directories skipped when expanding directories
var DefaultPathsToIgnore = []string{
	"build",
	".git",
	"vendor",
}
