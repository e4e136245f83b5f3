// Copyright (c) 2026 Emee Ran <emeeran@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/apex/log"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v2"

	"github.com/emeeran/aicachego/internal/config"
)

// Spit renders the result set per the command's --output flag. columns fixes
// the key order because map iteration would scramble it.
func Spit(resultSet []map[string]interface{}, columns []string, cmd *cli.Command, w io.Writer) {
	if w == nil {
		w = os.Stdout
	}

	switch cmd.String("output") {
	case "json":
		jsonOutput, err := json.Marshal(resultSet)
		if err != nil {
			log.WithError(err).Error("failed to marshal result set")
			return
		}
		fmt.Fprintln(w, string(jsonOutput))
	case "yaml":
		yamlOutput, err := yaml.Marshal(resultSet)
		if err != nil {
			log.WithError(err).Error("failed to marshal result set")
			return
		}
		_, _ = w.Write(yamlOutput)
	default:
		TableWriter(resultSet, columns, cmd, w)
	}
}

// TableWriter renders the result set in a tabular form honoring color,
// titles and padding options.
func TableWriter(
	resultSet []map[string]interface{},
	columns []string,
	cmd *cli.Command,
	w io.Writer) {

	if len(resultSet) == 0 {
		return
	}

	var (
		headerStyle  = lipgloss.NewStyle().Align(lipgloss.Left)
		cellStyle    = lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)
		evenRowStyle = cellStyle
		oddRowStyle  = cellStyle
	)

	if cmd.Bool("color") {
		headerColor, evenColor, oddColor := getColors("colors")

		headerStyle = headerStyle.Foreground(lipgloss.Color(headerColor))
		evenRowStyle = evenRowStyle.Foreground(lipgloss.Color(evenColor))
		oddRowStyle = oddRowStyle.Foreground(lipgloss.Color(oddColor))
	}

	var rows [][]string
	for _, result := range resultSet {
		row := make([]string, 0, len(columns))
		for _, col := range columns {
			row = append(row, InterfaceToString(result[col], "-"))
		}
		rows = append(rows, row)
	}

	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {

			pad, _ := config.GetInt("padding", 0)

			var style lipgloss.Style
			switch {
			case row == table.HeaderRow:
				style = headerStyle
			case row%2 == 0:
				style = evenRowStyle
			default:
				style = oddRowStyle
			}

			if col > 0 {
				style = style.PaddingLeft(pad)
			}

			return style
		}).
		Headers().
		Rows(rows...)

	if cmd.Bool("titles") {
		// https://github.com/charmbracelet/lipgloss/issues/261
		t = t.Headers(columns...).BorderHeader(false)
	}
	fmt.Fprintln(w, t)
}

// InterfaceToString renders a single cell value, substituting missing for nil.
func InterfaceToString(v interface{}, missing string) string {
	switch val := v.(type) {
	case nil:
		return missing
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case uint64:
		return strconv.FormatUint(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// getColors returns configured color values for table rendering.
func getColors(key string) (header string, even string, odd string) {
	header, _ = config.GetString(fmt.Sprintf("%s.title", key), "#f6be00")
	even, _ = config.GetString(fmt.Sprintf("%s.even", key), "#ffffff")
	odd, _ = config.GetString(fmt.Sprintf("%s.odd", key), "#00c8f0")
	return
}
