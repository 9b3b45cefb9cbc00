// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"bufio"

	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/compress-log-utils/src/logger"
	"github.com/H0llyW00dzZ/compress-log-utils/src/teelog"
)

// newTeeCmd builds the tee subcommand, which mirrors stdin line by line to
// the console and an optional log file through a teelog.Logger.
func newTeeCmd(log logger.Logger) *cobra.Command {
	var logFile string
	var noTimestamp bool
	var quietConsole bool

	cmd := &cobra.Command{
		Use:   "tee",
		Short: "Mirror stdin to the console and an optional timestamped log file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := teelog.Config{
				FilePath:  logFile,
				Timestamp: !noTimestamp,
				Console:   !quietConsole,
				File:      logFile != "",
			}

			tl := teelog.NewWithLogger(cfg, log)
			defer tl.Close()

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				select {
				case <-cmd.Context().Done():
					return cmd.Context().Err()
				default:
				}
				tl.Println(scanner.Text())
			}

			if err := scanner.Err(); err != nil {
				return err
			}

			return tl.Close()
		},
	}

	cmd.Flags().StringVarP(&logFile, "log-file", "l", "", "append records to LOG_FILE in addition to the console")
	cmd.Flags().BoolVar(&noTimestamp, "no-timestamp", false, "omit the [MM/DD/YYYY][HH:MM:SS] record prefix")
	cmd.Flags().BoolVar(&quietConsole, "quiet-console", false, "suppress console output, log file only")

	return cmd
}
