// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/compress-log-utils/src/compress"
	"github.com/H0llyW00dzZ/compress-log-utils/src/logger"
)

// newInspectCmd builds the inspect subcommand, which reports how the input
// fares under each supported format.
func newInspectCmd(log logger.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [INPUT_FILE]",
		Short: "Show compressed sizes and ratios for every supported format",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			report, err := renderInspectTable(data, log)
			if err != nil {
				return err
			}

			log.Println(report)
			return nil
		},
	}
}

// renderInspectTable produces a markdown table describing the payload under
// each supported format.
func renderInspectTable(data []byte, log logger.Logger) (string, error) {
	codec := compress.NewWithLogger(log)

	var buf strings.Builder
	fmt.Fprintf(&buf, "Raw size: %d bytes\n", len(data))
	fmt.Fprintf(&buf, "GZIP magic present: %v\n\n", compress.IsGZIPCompressed(data))

	table := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)
	table.Header([]string{"Format", "Compressed Size", "Ratio"})

	var rows [][]string
	for _, format := range []compress.Format{compress.Deflate, compress.GZIP} {
		out, err := codec.Compress(data, format)
		if err != nil {
			return "", err
		}

		ratio := "n/a"
		if len(data) > 0 {
			ratio = fmt.Sprintf("%.2f%%", float64(len(out))/float64(len(data))*100)
		}

		rows = append(rows, []string{
			format.String(),
			fmt.Sprintf("%d bytes", len(out)),
			ratio,
		})
	}

	table.Bulk(rows)
	table.Render()
	return buf.String(), nil
}
