// Package static provides non-interactive terminal output components.
//
// Tables here are rendered once and written to stdout; colors follow the
// active styles theme.
package static

import (
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/raphi011/textctl/internal/ui/styles"
)

// RenderTable creates a formatted table with proper column alignment.
// Headers and rows are rendered using lipgloss/table which automatically
// calculates column widths based on content. No borders are rendered.
func RenderTable(headers []string, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	var output strings.Builder

	t := table.New().
		Headers(headers...).
		Rows(rows...).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		BorderRow(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.HeaderStyle.PaddingRight(2)
			}
			return lipgloss.NewStyle().PaddingRight(2)
		})

	output.WriteString(t.String())
	output.WriteString("\n")

	return output.String()
}

// CheckHeaders are the columns of CheckTableRow.
var CheckHeaders = []string{"INPUT", "FILTERED", "OK"}

// CheckTableRow formats one check result. Texts are quoted so blanks and
// empty results stay visible.
func CheckTableRow(input, filtered string, ok bool) []string {
	filteredCell := strconv.Quote(filtered)
	if !ok {
		filteredCell = styles.ErrorStyle.Render(filteredCell)
	}
	return []string{strconv.Quote(input), filteredCell, styles.FormatResult(ok)}
}

// TypeHeaders are the columns of TypeTableRow.
var TypeHeaders = []string{"TYPE", "SOURCE", "MAX", "DESCRIPTION"}

// TypeTableRow formats one registered type.
func TypeTableRow(name, source string, maxLength int, description string) []string {
	maxCell := "-"
	if maxLength > 0 {
		maxCell = strconv.Itoa(maxLength)
	}
	return []string{name, styles.MutedStyle.Render(source), maxCell, description}
}
