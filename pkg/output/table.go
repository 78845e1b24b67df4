package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/rodaine/table"
)

// newTable creates a table with consistent styling, writing to w
func newTable(w io.Writer, headers ...interface{}) table.Table {
	tbl := table.New(headers...)
	tbl.WithWriter(w)

	tbl.WithHeaderFormatter(func(format string, vals ...interface{}) string {
		return HeaderStyle.Render(fmt.Sprintf(format, vals...))
	})
	tbl.WithPadding(2)

	// lipgloss.Width handles ANSI sequences when measuring cells
	tbl.WithWidthFunc(lipgloss.Width)

	return tbl
}
