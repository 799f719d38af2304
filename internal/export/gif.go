package export

import (
	"image"
	"image/color"
	"image/gif"
	"io"
	"os"
	"strconv"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/san-kum/sortstep/internal/frame"
	"github.com/san-kum/sortstep/internal/trace"
	"github.com/san-kum/sortstep/internal/viz"
)

// Palette slots.
const (
	idxBackground = iota
	idxText
	idxMuted
	idxRoleBase
)

// GIFOptions sizes the animation. Delay is per frame in hundredths of a
// second.
type GIFOptions struct {
	Width  int
	Height int
	Delay  int
}

func (o GIFOptions) withDefaults() GIFOptions {
	if o.Width <= 0 {
		o.Width = 640
	}
	if o.Height <= 0 {
		o.Height = 320
	}
	if o.Delay <= 0 {
		o.Delay = 80
	}
	return o
}

func palette(th viz.Theme) color.Palette {
	p := color.Palette{viz.RGBA(th.Background), viz.RGBA(th.Text), viz.RGBA(th.Muted)}
	for _, r := range trace.Roles() {
		p = append(p, viz.RGBA(th.RoleColor(r)))
	}
	return p
}

func roleIndex(r trace.Role) uint8 {
	return uint8(idxRoleBase + int(r))
}

// RasterizeFrame draws d into a paletted image with the same layout as
// FrameToSVG.
func RasterizeFrame(d frame.Descriptor, th viz.Theme, opts GIFOptions) *image.Paletted {
	opts = opts.withDefaults()
	w, h := opts.Width, opts.Height
	img := image.NewPaletted(image.Rect(0, 0, w, h), palette(th))

	drawText(img, (w-textWidth(d.Title))/2, 6, d.Title, idxText)

	lineH := labelFace.Metrics().Height.Ceil()
	plotTop := 6 + 2*lineH + 4
	legendTop := h - lineH - 4
	plotBottom := legendTop - lineH - 4
	plotH := plotBottom - plotTop
	if plotH < 1 {
		plotH = 1
	}

	n := len(d.Values)
	if n > 0 {
		margin := 10
		slot := float64(w-2*margin) / float64(n)
		barW := int(slot * 0.8)
		if barW < 1 {
			barW = 1
		}
		for i, hv := range viz.Normalize(d.Values) {
			bh := int(hv * float64(plotH))
			if bh < 1 {
				bh = 1
			}
			x := margin + int(float64(i)*slot+(slot-float64(barW))/2)
			fillRect(img, x, plotBottom-bh, barW, bh, roleIndex(d.RoleOf(i)))

			cx := x + barW/2
			label := strconv.Itoa(d.Values[i])
			drawText(img, cx-textWidth(label)/2, plotBottom-bh-lineH-1, label, idxText)

			idx := strconv.Itoa(i)
			drawText(img, cx-textWidth(idx)/2, plotBottom+2, idx, idxMuted)
		}
	}

	roles := frame.Legend()
	entry := w / len(roles)
	for i, r := range roles {
		x := i*entry + entry/8
		fillRect(img, x, legendTop+2, 9, 9, roleIndex(r))
		drawText(img, x+13, legendTop, r.Label(), idxText)
	}

	return img
}

// FramesToGIF encodes frames as a looping animation.
func FramesToGIF(w io.Writer, frames []frame.Descriptor, th viz.Theme, opts GIFOptions) error {
	opts = opts.withDefaults()
	anim := gif.GIF{LoopCount: 0}
	for _, d := range frames {
		anim.Image = append(anim.Image, RasterizeFrame(d, th, opts))
		anim.Delay = append(anim.Delay, opts.Delay)
	}
	return gif.EncodeAll(w, &anim)
}

// WriteGIF writes the animation to path.
func WriteGIF(path string, frames []frame.Descriptor, th viz.Theme, opts GIFOptions) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := FramesToGIF(f, frames, th, opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func fillRect(img *image.Paletted, x, y, w, h int, idx uint8) {
	b := img.Bounds()
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			if image.Pt(px, py).In(b) {
				img.SetColorIndex(px, py, idx)
			}
		}
	}
}

// labelFace is the fixed-size face used for every annotation.
var labelFace font.Face = basicfont.Face7x13

// drawText draws s with its top-left corner at (x, y) in palette color idx.
func drawText(img *image.Paletted, x, y int, s string, idx uint8) {
	dr := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(img.Palette[idx]),
		Face: labelFace,
		Dot:  fixed.P(x, y+labelFace.Metrics().Ascent.Ceil()),
	}
	dr.DrawString(s)
}

// textWidth is the advance width of s in pixels.
func textWidth(s string) int {
	return font.MeasureString(labelFace, s).Ceil()
}
