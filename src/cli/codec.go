// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/compress-log-utils/src/compress"
	"github.com/H0llyW00dzZ/compress-log-utils/src/logger"
)

// newCompressCmd builds the compress subcommand.
func newCompressCmd(log logger.Logger) *cobra.Command {
	var formatName string
	var outputFile string

	cmd := &cobra.Command{
		Use:   "compress [INPUT_FILE]",
		Short: "Compress a file or stdin into DEFLATE or GZIP",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := compress.ParseFormat(formatName)
			if err != nil {
				return err
			}

			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			codec := compress.NewWithLogger(log)
			out, err := codec.Compress(data, format)
			if err != nil {
				return err
			}

			return writeOutput(outputFile, out)
		},
	}

	cmd.Flags().StringVarP(&formatName, "format", "f", "gzip", "compression format: 'gzip' or 'deflate'")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "output to OUTPUT_FILE (default: stdout)")

	return cmd
}

// newDecompressCmd builds the decompress subcommand.
func newDecompressCmd(log logger.Logger) *cobra.Command {
	var formatName string
	var outputFile string

	cmd := &cobra.Command{
		Use:   "decompress [INPUT_FILE]",
		Short: "Decompress a DEFLATE or GZIP file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := compress.ParseFormat(formatName)
			if err != nil {
				return err
			}

			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			codec := compress.NewWithLogger(log)
			out, err := codec.Decompress(data, format)
			if err != nil {
				return err
			}

			return writeOutput(outputFile, out)
		},
	}

	cmd.Flags().StringVarP(&formatName, "format", "f", "gzip", "compression format: 'gzip' or 'deflate'")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "output to OUTPUT_FILE (default: stdout)")

	return cmd
}

// newDetectCmd builds the detect subcommand.
func newDetectCmd(log logger.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "detect [INPUT_FILE]",
		Short: "Report whether a file or stdin carries the GZIP magic number",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			if compress.IsGZIPCompressed(data) {
				log.Println("GZIP compressed")
			} else {
				log.Println("not GZIP compressed")
			}
			return nil
		},
	}
}
