package sink

import (
	"bytes"
	"fmt"
	"math"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/matzehuels/windrose/pkg/graph"
	"github.com/matzehuels/windrose/pkg/render/rose/styles"
)

// maxPNGSide caps either raster dimension.
const maxPNGSide = 16384

var (
	fontOnce sync.Once
	goFont   *truetype.Font
	fontErr  error
)

func loadFont() (*truetype.Font, error) {
	fontOnce.Do(func() {
		goFont, fontErr = truetype.Parse(goregular.TTF)
	})
	return goFont, fontErr
}

// RenderPNG rasterizes the layout with the same scene as [RenderSVG].
// Unlike PDF it needs no external tools.
func RenderPNG(l graph.Layout, opts ...Option) ([]byte, error) {
	r := newRenderer(opts...)
	s := buildScene(l, r.showBalance)
	v := s.view

	w := int(math.Ceil(v.Width * r.scale))
	h := int(math.Ceil(v.Height * r.scale))
	if w > maxPNGSide || h > maxPNGSide {
		return nil, fmt.Errorf("png: %dx%d exceeds %d pixels per side; lower the scale", w, h, maxPNGSide)
	}

	f, err := loadFont()
	if err != nil {
		return nil, fmt.Errorf("png: load font: %w", err)
	}

	p := painter{dc: gg.NewContext(w, h), scale: r.scale, font: f, faces: map[float64]font.Face{}}
	compass := r.style.Name() == graph.StyleCompass

	if compass {
		p.dc.SetHexColor("#fbf6e9")
	} else {
		p.dc.SetHexColor("#ffffff")
	}
	p.dc.Clear()
	p.dc.Scale(r.scale, r.scale)
	p.dc.Translate(-v.MinX, -v.MinY)

	if compass {
		p.rose(v)
	}
	if s.title != "" {
		p.text(s.title, 0, v.MinY+framePadding, 20, "#263238")
	}
	for _, ring := range s.rings {
		p.ring(ring, compass)
	}
	for _, e := range s.edges {
		p.edge(e)
	}
	for _, b := range s.blocks {
		p.block(b, compass)
	}
	if r.showBalance {
		for _, b := range s.blocks {
			p.balance(b)
		}
	}

	var buf bytes.Buffer
	if err := p.dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("png: encode: %w", err)
	}
	return buf.Bytes(), nil
}

// painter draws scene primitives onto a gg context. Stroke widths and dash
// lengths are given in layout units and multiplied by scale, since gg applies
// them in device space.
type painter struct {
	dc    *gg.Context
	scale float64
	font  *truetype.Font
	faces map[float64]font.Face
}

func (p *painter) stroke(color string, width float64, dashes ...float64) {
	p.dc.SetHexColor(color)
	p.dc.SetLineWidth(width * p.scale)
	scaled := make([]float64, len(dashes))
	for i, d := range dashes {
		scaled[i] = d * p.scale
	}
	p.dc.SetDash(scaled...)
	p.dc.Stroke()
	p.dc.SetDash()
}

func (p *painter) ring(r styles.Ring, compass bool) {
	p.dc.DrawCircle(0, 0, r.Radius)
	if compass {
		p.stroke("#b9a99a", 1.2, 2, 5)
		p.text(fmt.Sprintf("ring %d", r.Depth), 0, -r.Radius-8, 11, "#5d4037")
		return
	}
	p.stroke("#cfd8dc", 1, 6, 6)
}

func (p *painter) edge(e styles.Edge) {
	p.dc.MoveTo(e.X1, e.Y1)
	p.dc.CubicTo(e.C1X, e.C1Y, e.C2X, e.C2Y, e.X2, e.Y2)
	p.stroke(styles.PolarityColor(e.Polarity), styles.EdgeWidth(e))
}

func (p *painter) block(b styles.Block, compass bool) {
	fill, stroke, width := "#ffffff", styles.PolarityColor(&b.Polarity), 1.5
	if b.Depth == 0 {
		fill, stroke, width = "#eceff1", "#263238", 2.5
	}
	p.dc.DrawRoundedRectangle(b.X, b.Y, b.W, b.H, 6)
	p.dc.SetHexColor(fill)
	p.dc.FillPreserve()
	p.stroke(stroke, width)

	ink := "#263238"
	if compass {
		ink = "#5d4037"
	}
	lines := styles.WrapLabel(b)
	size := styles.FontSize(b)
	lh := styles.LineHeight(b)
	y := b.CY - lh*float64(len(lines)-1)/2
	for _, line := range lines {
		p.text(line, b.CX, y, size, ink)
		y += lh
	}
}

func (p *painter) balance(b styles.Block) {
	if b.Balance == nil {
		return
	}
	y := b.Y + b.H + styles.BalanceBarGap
	tw := b.W * b.Balance.Ratio
	p.dc.DrawRectangle(b.X, y, tw, styles.BalanceBarHeight)
	p.dc.SetHexColor(styles.ColorTailwind)
	p.dc.Fill()
	p.dc.DrawRectangle(b.X+tw, y, b.W-tw, styles.BalanceBarHeight)
	p.dc.SetHexColor(styles.ColorHeadwind)
	p.dc.Fill()
}

func (p *painter) rose(v styles.Viewport) {
	const size = 36.0
	cx, cy := v.MinX+size+12, v.MinY+size+12
	pts := styles.RosePoints(cx, cy, size)
	p.dc.MoveTo(pts[0][0], pts[0][1])
	for _, pt := range pts[1:] {
		p.dc.LineTo(pt[0], pt[1])
	}
	p.dc.ClosePath()
	p.dc.SetHexColor("#5d4037")
	p.dc.Fill()
	p.text("N", pts[0][0], pts[0][1]-8, 10, "#5d4037")
}

// text draws s centered on (x, y) in layout units. Glyphs are rasterized at
// device resolution rather than scaled up from layout size.
func (p *painter) text(s string, x, y, size float64, color string) {
	px := size * p.scale
	face, ok := p.faces[px]
	if !ok {
		face = truetype.NewFace(p.font, &truetype.Options{Size: px})
		p.faces[px] = face
	}
	dx, dy := p.dc.TransformPoint(x, y)

	p.dc.Push()
	defer p.dc.Pop()
	p.dc.Identity()
	p.dc.SetFontFace(face)
	p.dc.SetHexColor(color)
	p.dc.DrawStringAnchored(s, dx, dy, 0.5, 0.35)
}
