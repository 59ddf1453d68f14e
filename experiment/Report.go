package experiment

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	reportTitleStyle = lipgloss.NewStyle().Bold(true).
				Foreground(lipgloss.Color("#20B9B4"))
	reportLabelStyle = lipgloss.NewStyle().Bold(true)
	reportOKStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#2CD7C7"))
	reportBadStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#E74C3C"))
	reportBoxStyle   = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// Report renders a side-by-side comparison of both solvers as a styled
// terminal table.
func Report(c *Comparison) string {
	vi := c.ValueIteration.Metrics
	pi := c.PolicyIteration.Metrics

	var b strings.Builder
	b.WriteString(reportTitleStyle.Render("MDP ALGORITHM COMPARISON"))
	b.WriteByte('\n')
	fmt.Fprintf(&b, "Environment: %dx%d grid, %d states\n",
		c.Grid.Width(), c.Grid.Height(), c.Grid.NumStates())
	b.WriteByte('\n')

	row := func(label string, viVal, piVal string) {
		fmt.Fprintf(&b, "%s | %-20s | %-20s\n",
			reportLabelStyle.Render(fmt.Sprintf("%-22s", label)), viVal, piVal)
	}

	row("Metric", vi.Algorithm, pi.Algorithm)
	row("Execution time", vi.Elapsed.String(), pi.Elapsed.String())
	row("Iterations/Cycles",
		fmt.Sprintf("%d", vi.Iterations), fmt.Sprintf("%d", pi.Iterations))
	row("Converged", yesNo(vi.Converged), yesNo(pi.Converged))
	row("Success", yesNo(vi.Success), yesNo(pi.Success))
	row("Path length",
		fmt.Sprintf("%d", vi.PathLength), fmt.Sprintf("%d", pi.PathLength))
	row("Value at start",
		fmt.Sprintf("%.4f", vi.ValueAtStart),
		fmt.Sprintf("%.4f", pi.ValueAtStart))

	return reportBoxStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func yesNo(ok bool) string {
	if ok {
		return reportOKStyle.Render("yes")
	}
	return reportBadStyle.Render("no")
}
