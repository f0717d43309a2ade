package charts

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/gophmarks/internal/models"
)

const lineStep = 10

// TerminalRenderer draws specs as text blocks styled with lipgloss.
// On a non-colour output the styles degrade to plain text.
type TerminalRenderer struct {
	width int

	title lipgloss.Style
	box   lipgloss.Style
	bar   lipgloss.Style
	point lipgloss.Style
	muted lipgloss.Style
}

// NewTerminalRenderer returns a renderer whose longest bar is width cells.
func NewTerminalRenderer(width int) *TerminalRenderer {
	if width <= 0 {
		width = 40
	}
	return &TerminalRenderer{
		width: width,
		title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		box:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		bar:   lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		point: lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		muted: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

func (r *TerminalRenderer) Render(w io.Writer, spec Spec) error {
	var body string
	switch {
	case spec.Empty():
		body = r.muted.Render("no data")
	case spec.Kind == KindBar:
		body = r.renderBar(spec)
	case spec.Kind == KindLine:
		body = r.renderLine(spec)
	case spec.Kind == KindPie:
		body = r.renderPie(spec)
	default:
		return fmt.Errorf("unsupported chart kind %q", spec.Kind)
	}

	out := lipgloss.JoinVertical(lipgloss.Left, r.title.Render(spec.Title), r.box.Render(body))
	_, err := fmt.Fprintln(w, out)
	return err
}

func labelWidth(labels []string) int {
	n := 0
	for _, l := range labels {
		n = max(n, lipgloss.Width(l))
	}
	return n
}

func (r *TerminalRenderer) cells(v, full float64) int {
	if full <= 0 || v <= 0 {
		return 0
	}
	return int(math.Round(v / full * float64(r.width)))
}

func (r *TerminalRenderer) renderBar(spec Spec) string {
	lw := labelWidth(spec.X)
	lines := make([]string, 0, len(spec.X)+1)
	for i, label := range spec.X {
		bar := strings.Repeat("█", r.cells(spec.Y[i], models.MaxScore))
		lines = append(lines, fmt.Sprintf("%-*s %s %.1f", lw, label, r.bar.Render(bar), spec.Y[i]))
	}
	lines = append(lines, r.muted.Render(fmt.Sprintf("%s by %s (%s)", spec.YLabel, spec.XLabel, spec.Series)))
	return strings.Join(lines, "\n")
}

// renderLine draws one column per subject and one row per 10 marks,
// with the point placed on the nearest row.
func (r *TerminalRenderer) renderLine(spec Spec) string {
	const col = 5
	lines := []string{r.muted.Render(spec.YLabel)}

	for level := models.MaxScore; level >= models.MinScore; level -= lineStep {
		var row strings.Builder
		fmt.Fprintf(&row, "%3d │", level)
		for _, y := range spec.Y {
			cell := strings.Repeat(" ", col)
			if int(math.Round(y/lineStep))*lineStep == level {
				cell = strings.Repeat(" ", col/2) + r.point.Render("●") + strings.Repeat(" ", col-col/2-1)
			}
			row.WriteString(cell)
		}
		lines = append(lines, row.String())
	}

	lines = append(lines, "    └"+strings.Repeat("─", col*len(spec.X)))

	var axis strings.Builder
	axis.WriteString("     ")
	for _, label := range spec.X {
		short := label
		if len(short) > col-1 {
			short = short[:col-1]
		}
		fmt.Fprintf(&axis, "%-*s", col, " "+short)
	}
	lines = append(lines, axis.String(), r.muted.Render(spec.XLabel))

	values := make([]string, len(spec.X))
	for i, label := range spec.X {
		values[i] = fmt.Sprintf("%s=%g", label, spec.Y[i])
	}
	lines = append(lines, strings.Join(values, " "))
	return strings.Join(lines, "\n")
}

func (r *TerminalRenderer) renderPie(spec Spec) string {
	var total float64
	for _, y := range spec.Y {
		total += y
	}
	if total == 0 {
		return r.muted.Render("all scores are zero")
	}

	lw := labelWidth(spec.X)
	lines := make([]string, 0, len(spec.X))
	for i, label := range spec.X {
		share := spec.Y[i] / total * 100
		slice := strings.Repeat("▓", r.cells(share, 100))
		lines = append(lines, fmt.Sprintf("%-*s %5.1f%% %s (%g)", lw, label, share, r.bar.Render(slice), spec.Y[i]))
	}
	return strings.Join(lines, "\n")
}
