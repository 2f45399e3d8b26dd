package report

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// Summary renders a per-category console table.
func (b *implBuilder) Summary(in Input) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Category", "Transcripts", "Words").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, name := range in.Categories.Names() {
		records := in.Categories[name]
		words := 0
		for _, rec := range records {
			words += rec.WordCount
		}
		t.Row(name, strconv.Itoa(len(records)), humanize.Comma(int64(words)))
	}

	return t.String()
}
