package export

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/san-kum/sortstep/internal/frame"
	"github.com/san-kum/sortstep/internal/viz"
)

const (
	titleBand  = 40.0
	legendBand = 36.0
	labelBand  = 20.0
	sideMargin = 20.0
)

// FrameToSVG draws one bar chart: a bar per index colored by role, the
// value above each bar, the index below it and the role legend at the
// bottom.
func FrameToSVG(d frame.Descriptor, th viz.Theme, width, height int) string {
	w, h := float64(width), float64(height)
	plotTop := titleBand + labelBand
	plotBottom := h - legendBand - labelBand
	plotH := plotBottom - plotTop
	if plotH < 1 {
		plotH = 1
	}

	var sb strings.Builder

	// SVG header
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" font-family="sans-serif">
<rect width="100%%" height="100%%" fill="%s"/>
<text x="%.1f" y="%.1f" font-size="16" text-anchor="middle" fill="%s">%s</text>
`, width, height, width, height, viz.Hex(th.Background), w/2, titleBand*0.65, viz.Hex(th.Text), html.EscapeString(d.Title)))

	n := len(d.Values)
	if n > 0 {
		slot := (w - 2*sideMargin) / float64(n)
		barW := slot * 0.8
		fontSize := slot * 0.35
		if fontSize > 14 {
			fontSize = 14
		}
		if fontSize < 6 {
			fontSize = 6
		}

		sb.WriteString("<g>\n")
		for i, hv := range viz.Normalize(d.Values) {
			bh := hv * plotH
			x := sideMargin + float64(i)*slot + (slot-barW)/2
			y := plotBottom - bh
			cx := x + barW/2
			fill := viz.Hex(th.RoleColor(d.RoleOf(i)))

			sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" data-role="%s"/>
`, x, y, barW, bh, fill, d.RoleOf(i)))
			sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" font-size="%.1f" text-anchor="middle" fill="%s">%d</text>
`, cx, y-4, fontSize, viz.Hex(th.Text), d.Values[i]))
			sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" font-size="%.1f" text-anchor="middle" fill="%s">%d</text>
`, cx, plotBottom+labelBand*0.75, fontSize, viz.Hex(th.Muted), i))
		}
		sb.WriteString("</g>\n")
	}

	sb.WriteString(legendSVG(th, w, h-legendBand/2))
	sb.WriteString("</svg>")
	return sb.String()
}

func legendSVG(th viz.Theme, width, cy float64) string {
	roles := frame.Legend()
	entry := width / float64(len(roles))

	var sb strings.Builder
	sb.WriteString(`<g font-size="12">` + "\n")
	for i, r := range roles {
		x := float64(i)*entry + entry*0.2
		sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="12" height="12" fill="%s"/>
<text x="%.1f" y="%.1f" fill="%s">%s</text>
`, x, cy-6, viz.Hex(th.RoleColor(r)), x+18, cy+4, viz.Hex(th.Text), r.Label()))
	}
	sb.WriteString("</g>\n")
	return sb.String()
}

// WriteSVGFrames writes one numbered SVG per frame into dir and returns
// the paths in frame order.
func WriteSVGFrames(dir string, frames []frame.Descriptor, th viz.Theme, width, height int) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	digits := len(strconv.Itoa(len(frames)))
	paths := make([]string, 0, len(frames))
	for _, d := range frames {
		name := fmt.Sprintf("frame_%0*d.svg", digits, d.Index)
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(FrameToSVG(d, th, width, height)), 0644); err != nil {
			return paths, fmt.Errorf("write %s: %w", name, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
