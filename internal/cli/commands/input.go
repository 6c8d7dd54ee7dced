// Package commands implements the sqldoc subcommands.
package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/waveform-computing/sqldoc/internal/config"
)

// ConfigFunc retrieves the resolved configuration for a command.
type ConfigFunc func(cmd *cobra.Command) *config.Config

// readInput returns the script to process: the concatenation of the
// named files, or standard input when no files are given.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	var script []byte
	for _, name := range args {
		data, err := os.ReadFile(name)
		if err != nil {
			return "", err
		}
		script = append(script, data...)
	}
	return string(script), nil
}
