package main

import (
	"errors"
	"os"

	"utestgen/internal/cli"
	"utestgen/internal/cli/commands"
	"utestgen/internal/config"
	"utestgen/internal/ui"

	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCmd(cfg *config.Config) (*cobra.Command, *commands.Commands) {
	// Create root command; it is also the generator
	rootCmd := &cobra.Command{
		Use:   "utestgen <file> [file...]",
		Short: "Generate a C unit test aggregator",
		Long: `Scan C source files for test functions declared as "void test_<name>()" and
print forward declarations plus a run_all_tests() routine that calls every
test in discovery order: files in argument order, then lines top to bottom.`,
		Version: version,
	}

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies and register them
	cmds := commands.NewCommands(cfg)
	cmds.Register(rootCmd, &flags, cfg)

	return rootCmd, cmds
}

func run() int {
	// Create initial config with defaults; environment overrides are applied
	// once the arguments have been validated
	cfg := config.New()
	rootCmd, cmds := newRootCmd(cfg)
	defer cmds.Close()

	if err := rootCmd.Execute(); err != nil {
		// A missing file list is reported through the exit status only
		if !errors.Is(err, commands.ErrNoInputs) {
			ui.PrintError(os.Stderr, err)
		}
		return 1
	}
	return 0
}

func main() {
	os.Exit(run())
}
