package commands

import (
	"github.com/spf13/cobra"

	"utestgen/internal/config"
	"utestgen/internal/discovery"
	"utestgen/internal/ui"
)

// BrowseCommand handles the browse command
type BrowseCommand struct {
	config  *config.Config
	scanner *discovery.Scanner
	filter  *discovery.Filter
}

// NewBrowseCommand creates a new BrowseCommand
func NewBrowseCommand(cfg *config.Config, scanner *discovery.Scanner, filter *discovery.Filter) *BrowseCommand {
	return &BrowseCommand{
		config:  cfg,
		scanner: scanner,
		filter:  filter,
	}
}

// Execute runs the command
func (bc *BrowseCommand) Execute(cmd *cobra.Command, args []string) error {
	_, prototypes, err := collect(bc.config, bc.scanner, args)
	if err != nil {
		return err
	}

	prototypes = bc.filter.FilterByName(prototypes, bc.config.Flags.NameFilter)

	var viewer ui.Viewer = ui.NewBrowser(cmd.OutOrStdout())
	return viewer.View(prototypes, bc.config.Aggregator)
}
