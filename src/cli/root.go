// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/compress-log-utils/src/logger"
)

// ErrInputFileRequired indicates that a subcommand needs an input file or
// piped stdin and received neither.
var ErrInputFileRequired = errors.New("cli: input file required")

// Execute runs the root command, wiring the given context, version, and
// reporting channel into every subcommand.
func Execute(ctx context.Context, version string, log logger.Logger) error {
	if log == nil {
		log = logger.NewCLILogger()
	}

	rootCmd := &cobra.Command{
		Use:           "compress-log-utils",
		Short:         "DEFLATE/GZIP compression and tee-logging utilities",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newCompressCmd(log),
		newDecompressCmd(log),
		newDetectCmd(log),
		newInspectCmd(log),
		newTeeCmd(log),
	)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}

	return nil
}

// readInput reads the payload from the first positional argument, or from
// stdin when no argument is given.
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, fmt.Errorf("cli: reading input file: %w", err)
		}
		return data, nil
	}

	stat, err := os.Stdin.Stat()
	if err != nil || (stat.Mode()&os.ModeCharDevice) != 0 {
		return nil, ErrInputFileRequired
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, fmt.Errorf("cli: reading stdin: %w", err)
	}
	return data, nil
}

// writeOutput writes data to outputFile, or raw to stdout when outputFile is
// empty.
func writeOutput(outputFile string, data []byte) error {
	if outputFile == "" {
		if _, err := os.Stdout.Write(data); err != nil {
			return fmt.Errorf("cli: writing stdout: %w", err)
		}
		return nil
	}

	if err := os.WriteFile(outputFile, data, 0644); err != nil {
		return fmt.Errorf("cli: writing output file: %w", err)
	}
	return nil
}
