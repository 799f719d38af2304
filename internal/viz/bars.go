package viz

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/sortstep/internal/frame"
	"github.com/san-kum/sortstep/internal/trace"
)

const (
	// DefaultChartHeight is the bar area height in rows.
	DefaultChartHeight = 10
	// maxChartWidth caps the columns used before bars collapse to one cell.
	maxChartWidth = 120
)

// Normalize maps values to bar heights in (0, 1]. The baseline is the
// smaller of zero and the minimum value, so negative values still get a
// visible bar. Every bar has at least a sliver of height.
func Normalize(values []int) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}

	lo, hi := float64(values[0]), float64(values[0])
	for _, v := range values {
		f := float64(v)
		if f < lo {
			lo = f
		}
		if f > hi {
			hi = f
		}
	}
	if lo > 0 {
		lo = 0
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}

	const floor = 0.05
	for i, v := range values {
		out[i] = floor + (1-floor)*(float64(v)-lo)/span
	}
	return out
}

// RenderBars draws d as vertical bars, one per index, colored by role and
// labeled with their values underneath.
func RenderBars(d frame.Descriptor, th Theme, height int) string {
	if len(d.Values) == 0 {
		return ""
	}
	if height <= 0 {
		height = DefaultChartHeight
	}

	labels := make([]string, len(d.Values))
	cell := 1
	for i, v := range d.Values {
		labels[i] = strconv.Itoa(v)
		if len(labels[i]) > cell {
			cell = len(labels[i])
		}
	}
	inline := len(d.Values)*(cell+1) <= maxChartWidth
	if !inline {
		cell = 1
	}

	styles := make([]lipgloss.Style, len(d.Values))
	for i := range d.Values {
		styles[i] = lipgloss.NewStyle().Foreground(th.RoleColor(d.RoleOf(i)))
	}

	rows := make([]int, len(d.Values))
	for i, h := range Normalize(d.Values) {
		rows[i] = int(h*float64(height) + 0.5)
		if rows[i] < 1 {
			rows[i] = 1
		}
	}

	var sb strings.Builder
	for row := height; row >= 1; row-- {
		for i := range d.Values {
			if i > 0 {
				sb.WriteByte(' ')
			}
			if rows[i] >= row {
				sb.WriteString(styles[i].Render(strings.Repeat("█", cell)))
			} else {
				sb.WriteString(strings.Repeat(" ", cell))
			}
		}
		sb.WriteByte('\n')
	}

	if inline {
		for i, l := range labels {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(styles[i].Render(pad(l, cell)))
		}
	} else {
		for i, l := range labels {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(styles[i].Render(l))
		}
	}
	sb.WriteByte('\n')
	return sb.String()
}

// RenderLegend draws the four role swatches.
func RenderLegend(th Theme) string {
	parts := make([]string, 0, len(frame.Legend()))
	for _, r := range frame.Legend() {
		swatch := lipgloss.NewStyle().Foreground(th.RoleColor(r)).Render("■")
		parts = append(parts, swatch+" "+r.Label())
	}
	return strings.Join(parts, "  ")
}

// RenderFrame draws title, bars and legend.
func RenderFrame(d frame.Descriptor, th Theme, height int) string {
	var sb strings.Builder
	sb.WriteString(headerStyle.Render(d.Title))
	sb.WriteByte('\n')
	sb.WriteString(RenderBars(d, th, height))
	sb.WriteByte('\n')
	sb.WriteString(RenderLegend(th))
	sb.WriteByte('\n')
	return sb.String()
}

// RoleSummary lists highlighted indices, e.g. "0=comparing 1=current_key".
func RoleSummary(h trace.Highlights) string {
	idx := h.Indices()
	parts := make([]string, len(idx))
	for i, k := range idx {
		parts[i] = strconv.Itoa(k) + "=" + h[k].String()
	}
	return strings.Join(parts, " ")
}

func pad(s string, w int) string {
	if len(s) >= w {
		return s
	}
	left := (w - len(s)) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", w-len(s)-left)
}
