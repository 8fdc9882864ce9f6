package report

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

// FixtureRow pairs a fixture with the functions whose locator matches it.
type FixtureRow struct {
	Fixture   string
	Functions []string
}

// Fixtures prints which function every fixture resolves to. The first match is the one
// invoked; further matches are listed as ambiguous.
func (c *Console) Fixtures(rows []FixtureRow) {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"FIXTURE", "FUNCTION", "NOTE"})

	unresolved := 0
	for _, row := range rows {
		switch len(row.Functions) {
		case 0:
			unresolved++
			t.AppendRow(table.Row{row.Fixture, c.styles.fail.Render("-"), "not found"})
		case 1:
			t.AppendRow(table.Row{row.Fixture, row.Functions[0], ""})
		default:
			t.AppendRow(table.Row{row.Fixture, row.Functions[0], "also matches " + strings.Join(row.Functions[1:], ", ")})
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintln(c.out, t.Render())
	fmt.Fprintf(c.out, "%d fixture(s), %d unresolved\n", len(rows), unresolved)
}
