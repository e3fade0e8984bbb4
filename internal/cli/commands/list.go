package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"utestgen/internal/config"
	"utestgen/internal/discovery"
	"utestgen/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config  *config.Config
	scanner *discovery.Scanner
	filter  *discovery.Filter
}

// NewListCommand creates a new ListCommand
func NewListCommand(cfg *config.Config, scanner *discovery.Scanner, filter *discovery.Filter) *ListCommand {
	return &ListCommand{
		config:  cfg,
		scanner: scanner,
		filter:  filter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	files, prototypes, err := collect(lc.config, lc.scanner, args)
	if err != nil {
		return err
	}

	// Filter tests
	prototypes = lc.filter.FilterByName(prototypes, lc.config.Flags.NameFilter)

	if len(prototypes) == 0 && !lc.config.Flags.ByFile {
		color.New(color.FgYellow).Fprintln(cmd.OutOrStdout(), "No tests found")
		return nil
	}

	ui.NewFormatter(cmd.OutOrStdout()).PrintPrototypeList(files, prototypes, lc.config.Flags.ByFile)
	return nil
}
