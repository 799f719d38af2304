package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/sortstep/internal/frame"
)

const transcriptContext = 4

// Options configures a Gallery.
type Options struct {
	Theme       Theme
	FPS         int
	ChartHeight int
}

type tickMsg struct {
	gen int
}

// Gallery is a bubbletea model that pages through frames alongside their
// transcript lines.
type Gallery struct {
	frames      []frame.Descriptor
	lines       []string
	inversions  []float64
	pos         int
	playing     bool
	gen         int
	fps         int
	theme       Theme
	chartHeight int
	width       int
	height      int
	showHelp    bool
}

// NewGallery builds a gallery. lines and inversions are indexed like
// frames; either may be shorter, in which case missing entries are blank.
func NewGallery(frames []frame.Descriptor, lines []string, inversions []float64, opts Options) Gallery {
	if opts.FPS <= 0 {
		opts.FPS = 2
	}
	if opts.ChartHeight <= 0 {
		opts.ChartHeight = DefaultChartHeight
	}
	if opts.Theme.Name == "" {
		opts.Theme = ThemeClassic
	}
	return Gallery{
		frames:      frames,
		lines:       lines,
		inversions:  inversions,
		fps:         opts.FPS,
		theme:       opts.Theme,
		chartHeight: opts.ChartHeight,
		width:       80,
		height:      24,
	}
}

func (g Gallery) Init() tea.Cmd { return nil }

// Pos is the index of the frame on screen.
func (g Gallery) Pos() int { return g.pos }

// Playing reports whether autoplay is on.
func (g Gallery) Playing() bool { return g.playing }

// Theme is the active theme.
func (g Gallery) Theme() Theme { return g.theme }

func (g Gallery) tick() tea.Cmd {
	gen := g.gen
	return tea.Tick(time.Second/time.Duration(g.fps), func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

// Update handles navigation keys and autoplay ticks.
func (g Gallery) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return g, tea.Quit
		case "right", "l", "n":
			g.pause()
			g.seek(g.pos + 1)
		case "left", "h", "p":
			g.pause()
			g.seek(g.pos - 1)
		case "home", "g":
			g.pause()
			g.seek(0)
		case "end", "G":
			g.pause()
			g.seek(len(g.frames) - 1)
		case " ":
			if g.playing {
				g.pause()
				return g, nil
			}
			if g.pos >= len(g.frames)-1 {
				g.seek(0)
			}
			g.playing = true
			g.gen++
			return g, g.tick()
		case "t":
			g.theme = NextTheme(g.theme)
		case "?":
			g.showHelp = !g.showHelp
		}
	case tickMsg:
		if msg.gen != g.gen || !g.playing {
			return g, nil
		}
		g.seek(g.pos + 1)
		if g.pos >= len(g.frames)-1 {
			g.pause()
			return g, nil
		}
		return g, g.tick()
	case tea.WindowSizeMsg:
		g.width, g.height = msg.Width, msg.Height
	}
	return g, nil
}

func (g *Gallery) pause() {
	if g.playing {
		g.playing = false
		g.gen++
	}
}

func (g *Gallery) seek(pos int) {
	if pos < 0 {
		pos = 0
	}
	if pos > len(g.frames)-1 {
		pos = len(g.frames) - 1
	}
	if pos < 0 {
		pos = 0
	}
	g.pos = pos
}

// View renders the current frame, the transcript around it and a progress
// chart.
func (g Gallery) View() string {
	if len(g.frames) == 0 {
		return "no frames\n"
	}
	d := g.frames[g.pos]

	status := "PAUSED"
	if g.playing {
		status = "PLAYING"
	}

	var s strings.Builder
	s.WriteString(headerStyle.Render("INSERTION SORT") + "\n")
	s.WriteString(fmt.Sprintf("%s  frame %d/%d\n\n", status, g.pos+1, len(g.frames)))
	s.WriteString(RenderFrame(d, g.theme, g.chartHeight))
	s.WriteString("\n")

	var t strings.Builder
	start := g.pos - transcriptContext
	if start < 0 {
		start = 0
	}
	for i := start; i <= g.pos && i < len(g.lines); i++ {
		line := strings.TrimSpace(g.lines[i])
		if i == g.pos {
			t.WriteString(activeStyle.Render("> " + line))
		} else {
			t.WriteString(KeyHint.Render("  " + line))
		}
		t.WriteString("\n")
	}
	s.WriteString(panelStyle.Render(strings.TrimRight(t.String(), "\n")) + "\n")

	s.WriteString(labelStyle.Render("Kind") + valueStyle.Render(d.Kind.String()) + "\n")
	s.WriteString(labelStyle.Render("Highlights") + valueStyle.Render(RoleSummary(d.Highlights)) + "\n")
	s.WriteString(labelStyle.Render("Theme") + valueStyle.Render(g.theme.Name) + "\n")

	if g.pos > 0 && g.pos < len(g.inversions) {
		chart := InversionPlot(g.inversions[:g.pos+1], 40, 4)
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	if g.showHelp {
		s.WriteString(helpStyle.Render("←/h prev  →/l next  g/G first/last  space play/pause  t theme  ? help  q quit"))
	} else {
		s.WriteString(helpStyle.Render("? help  q quit"))
	}
	s.WriteString("\n")
	return s.String()
}

// RunGallery runs g as a full-screen program.
func RunGallery(g Gallery) error {
	p := tea.NewProgram(g)
	_, err := p.Run()
	return err
}
