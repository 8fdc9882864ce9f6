package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"lambdatest/internal/batch"
	"lambdatest/internal/invocation"
)

// Summary prints the per-fixture outcome table and the totals of a batch run.
func (c *Console) Summary(summary *batch.Summary) {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"FIXTURE", "FUNCTION", "OUTCOME", "DURATION"})

	for _, r := range summary.Results {
		function := r.FunctionName
		if r.Target != "" {
			function = r.Target
		}
		if function == "" {
			function = "-"
		}
		t.AppendRow(table.Row{r.Fixture, function, c.outcome(r), r.Duration.Round(time.Millisecond)})
	}
	t.AppendFooter(table.Row{"", "", "TOTAL", summary.Total})

	var b strings.Builder
	b.WriteString("\n" + c.styles.title.Render(fmt.Sprintf("🏁 Run %s (%s) complete in %v", summary.RunID, summary.Mode, summary.Duration.Round(time.Millisecond))) + "\n")
	b.WriteString(t.Render() + "\n")
	b.WriteString(fmt.Sprintf("   ✅ Passed: %d\n", summary.Passed))
	if summary.Failed > 0 {
		b.WriteString(fmt.Sprintf("   ❌ Failed: %d\n", summary.Failed))
	}

	if summary.Succeeded() {
		b.WriteString("\n" + c.styles.pass.Render("🎉 All fixtures passed!") + "\n")
	} else {
		b.WriteString("\n" + c.styles.fail.Render(fmt.Sprintf("💔 %d of %d fixtures failed", summary.Failed, summary.Total)) + "\n")
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprint(c.out, b.String())
}

func (c *Console) outcome(r invocation.Result) string {
	label := strings.ToLower(strings.ReplaceAll(string(r.Kind), "_", " "))
	switch r.Kind {
	case invocation.KindSuccess:
		return c.styles.pass.Render(label)
	case invocation.KindProcessFailed, invocation.KindErrored:
		return c.styles.crash.Render(label)
	default:
		return c.styles.fail.Render(label)
	}
}
