package commands

import (
	"fmt"
	"log/slog"
	"os"

	"utestgen/internal/config"
	"utestgen/internal/discovery"
	"utestgen/internal/generator"
	"utestgen/internal/storage"

	"github.com/spf13/cobra"
)

// GenerateCommand scans the input files and emits the test aggregator
type GenerateCommand struct {
	config  *config.Config
	scanner *discovery.Scanner
	storage storage.Storage
}

// NewGenerateCommand creates a new GenerateCommand
func NewGenerateCommand(cfg *config.Config, scanner *discovery.Scanner, st storage.Storage) *GenerateCommand {
	return &GenerateCommand{
		config:  cfg,
		scanner: scanner,
		storage: st,
	}
}

// Execute runs the command
func (gc *GenerateCommand) Execute(cmd *cobra.Command, args []string) error {
	// Validate the aggregator name before touching any file
	emitter, err := generator.NewEmitter(gc.config.Aggregator)
	if err != nil {
		return err
	}

	files, prototypes, err := collect(gc.config, gc.scanner, args)
	if err != nil {
		return err
	}

	out, err := emitter.Render(prototypes)
	if err != nil {
		return err
	}

	if path := gc.config.Flags.Manifest; path != "" {
		if err := gc.storage.Save(path, files, prototypes, emitter.Aggregator()); err != nil {
			return fmt.Errorf("failed to save manifest: %w", err)
		}
	}

	if path := gc.config.Flags.Output; path != "" {
		if err := os.WriteFile(path, out, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else if _, err := cmd.OutOrStdout().Write(out); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	slog.Info("generated aggregator", "files", len(files), "prototypes", len(prototypes), "aggregator", emitter.Aggregator())
	return nil
}
