package commands

import (
	"errors"
	"io"
	"log/slog"

	"utestgen/internal/cli"
	"utestgen/internal/config"
	"utestgen/internal/discovery"
	"utestgen/internal/domain"
	"utestgen/internal/logging"
	"utestgen/internal/storage"
	"utestgen/internal/ui"

	"github.com/spf13/cobra"
)

// ErrNoInputs is returned when no source file is given. It is reported only
// through the exit status.
var ErrNoInputs = errors.New("no input files")

// Commands holds all CLI commands
type Commands struct {
	Generate *GenerateCommand
	List     *ListCommand
	Browse   *BrowseCommand

	logCloser io.Closer
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	parser := discovery.NewParser()
	scanner := discovery.NewScanner(parser)
	filter := discovery.NewFilter()
	jsonStorage := storage.NewJSONStorage()

	return &Commands{
		Generate: NewGenerateCommand(cfg, scanner, jsonStorage),
		List:     NewListCommand(cfg, scanner, filter),
		Browse:   NewBrowseCommand(cfg, scanner, filter),
	}
}

// requireInputs rejects an empty argument list with ErrNoInputs
func requireInputs(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return ErrNoInputs
	}
	return nil
}

// Register wires the generator onto rootCmd and adds the subcommands
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	// Without a name the help command can never shadow a file called "help"
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	rootCmd.Args = requireInputs
	rootCmd.RunE = c.Generate.Execute
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// Runs after argument validation, so a bare invocation never reads the environment
		if err := cfg.LoadEnv(flags.EnvFile); err != nil {
			return err
		}

		// Update config with flags after parsing
		cfg.Apply(flags.ToConfigFlags())
		closer, err := logging.Configure(logging.Options{
			File:       cfg.LogFile,
			Level:      cfg.LogLevel,
			Verbose:    cfg.Flags.Verbose,
			MaxSize:    cfg.LogMaxSize,
			MaxBackups: cfg.LogMaxBackups,
			MaxAge:     cfg.LogMaxAge,
		})
		if err != nil {
			return err
		}
		c.logCloser = closer
		slog.Debug("starting", "command", cmd.Name(), "inputs", len(args))
		return nil
	}
	rootCmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		return c.Close()
	}

	rootCmd.PersistentFlags().StringVar(&flags.EnvFile, "env-file", "", "Read UTESTGEN_* settings from this dotenv file")
	rootCmd.PersistentFlags().StringVar(&flags.LogFile, "log-file", "", "Write debug logs to this file (rotated)")
	rootCmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Log at debug level (requires a log file)")
	rootCmd.PersistentFlags().BoolVarP(&flags.Recursive, "recursive", "r", false, "Expand directory arguments into the source files below them")
	rootCmd.PersistentFlags().BoolVar(&flags.Progress, "progress", false, "Show a progress bar on stderr while scanning")

	rootCmd.Flags().StringVarP(&flags.Output, "output", "o", "", "Write the generated source to this file instead of stdout")
	rootCmd.Flags().StringVar(&flags.Manifest, "manifest", "", "Also write a JSON manifest of the discovered tests")
	rootCmd.Flags().StringVar(&flags.Aggregator, "aggregator", "", "Name of the generated routine that calls every test (default \"run_all_tests\")")

	// List command
	listCmd := &cobra.Command{
		Use:   "list <file> [file...]",
		Short: "List discovered tests",
		Long:  "Scan the given source files and list every test declaration with its location",
		Args:  requireInputs,
		RunE:  c.List.Execute,
	}
	listCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter tests by name pattern (supports wildcards, e.g., 'test_fs_*' or '*pipe*')")
	listCmd.Flags().BoolVar(&flags.ByFile, "by-file", false, "Group tests by file")
	rootCmd.AddCommand(listCmd)

	// Browse command
	browseCmd := &cobra.Command{
		Use:   "browse <file> [file...]",
		Short: "Browse discovered tests interactively",
		Long:  "Scan the given source files and show the discovered tests in an interactive viewer",
		Args:  requireInputs,
		RunE:  c.Browse.Execute,
	}
	browseCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter tests by name pattern (supports wildcards, e.g., 'test_fs_*' or '*pipe*')")
	rootCmd.AddCommand(browseCmd)
}

// Close flushes and closes the log file, if any
func (c *Commands) Close() error {
	if c.logCloser == nil {
		return nil
	}
	err := c.logCloser.Close()
	c.logCloser = nil
	return err
}

// collect expands the arguments when requested and scans them in order
func collect(cfg *config.Config, scanner *discovery.Scanner, args []string) ([]string, []domain.Prototype, error) {
	files := args
	if cfg.Flags.Recursive {
		expanded, err := discovery.NewExpander(cfg.PathsToIgnore, cfg.Extensions).Expand(args)
		if err != nil {
			return nil, nil, err
		}
		slog.Debug("expanded arguments", "args", len(args), "files", len(expanded))
		files = expanded
	}

	if cfg.Flags.Progress {
		scanner.SetProgress(ui.NewProgressBar(len(files)))
		defer scanner.SetProgress(nil)
	}

	prototypes, err := scanner.ScanFiles(files)
	if err != nil {
		return nil, nil, err
	}
	return files, prototypes, nil
}
