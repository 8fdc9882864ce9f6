package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"lambdatest/internal/invocation"
)

// Console prints one block per settled invocation. It is safe for concurrent use; the
// block of one fixture is never interleaved with another.
type Console struct {
	mu     sync.Mutex
	out    io.Writer
	styles styles
}

type styles struct {
	pass  lipgloss.Style
	fail  lipgloss.Style
	crash lipgloss.Style
	dim   lipgloss.Style
	title lipgloss.Style
}

// NewConsole creates a new console reporter writing to out. Colours are only used when
// out is a terminal.
func NewConsole(out io.Writer) *Console {
	r := lipgloss.NewRenderer(out)
	return &Console{
		out: out,
		styles: styles{
			pass:  r.NewStyle().Foreground(lipgloss.Color("10")),
			fail:  r.NewStyle().Foreground(lipgloss.Color("9")),
			crash: r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			dim:   r.NewStyle().Foreground(lipgloss.Color("8")),
			title: r.NewStyle().Bold(true),
		},
	}
}

// Report implements invocation.Reporter.
func (c *Console) Report(result invocation.Result) {
	block := c.format(result)

	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprint(c.out, block)
}

func (c *Console) format(result invocation.Result) string {
	var b strings.Builder

	switch result.Kind {
	case invocation.KindNotFound:
		b.WriteString(c.styles.fail.Render("could not find function name for "+result.Fixture) + "\n")
	case invocation.KindProcessFailed:
		b.WriteString(c.styles.crash.Render(fmt.Sprintf("💥 %s exited with code %d", result.Fixture, result.ExitCode)) + "\n")
	case invocation.KindEmptyResponse:
		b.WriteString(c.styles.fail.Render(fmt.Sprintf("❌ %s - empty response", result.Fixture)) + "\n")
	case invocation.KindSuccess:
		b.WriteString(c.styles.pass.Render("✅ "+result.Fixture) + "\n")
	case invocation.KindFailure:
		b.WriteString(c.styles.fail.Render("❌ "+result.Fixture) + "\n")
		if result.Note != "" {
			b.WriteString("   " + c.styles.dim.Render(result.Note) + "\n")
		}
	case invocation.KindErrored:
		b.WriteString(c.styles.crash.Render(fmt.Sprintf("💥 %s - %s", result.Fixture, result.Error)) + "\n")
	default:
		b.WriteString(fmt.Sprintf("❓ %s\n", result.Fixture))
	}

	if result.Verbose && result.Response != nil {
		b.WriteString(formatPayload(result.Response.Raw) + "\n")
	}
	return b.String()
}

// formatPayload pretty prints the response as produced by the function.
func formatPayload(raw map[string]interface{}) string {
	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", raw)
	}
	return string(data)
}
