package styles

import (
	"bytes"
	"fmt"
	"math"

	"github.com/matzehuels/windrose/pkg/graph"
)

// Compass draws the map on a parchment backdrop with labeled rings and a
// compass rose in the top-left corner.
type Compass struct{ Simple }

const (
	compassInk       = "#5d4037"
	compassParchment = "#fbf6e9"
	roseSize         = 36.0
)

func (Compass) Name() string { return graph.StyleCompass }

func (Compass) RenderDefs(buf *bytes.Buffer) {
	buf.WriteString("  <defs>\n")
	fmt.Fprintf(buf, `    <radialGradient id="parchment"><stop offset="0%%" stop-color="%s"/><stop offset="100%%" stop-color="#efe3c2"/></radialGradient>`+"\n", compassParchment)
	buf.WriteString("  </defs>\n")
}

func (Compass) RenderBackdrop(buf *bytes.Buffer, v Viewport) {
	fmt.Fprintf(buf, `  <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="url(#parchment)"/>`+"\n",
		v.MinX, v.MinY, v.Width, v.Height)
	renderRose(buf, v.MinX+roseSize+12, v.MinY+roseSize+12, roseSize)
}

func (Compass) RenderRing(buf *bytes.Buffer, r Ring) {
	fmt.Fprintf(buf, `  <circle class="ring" data-depth="%d" cx="0" cy="0" r="%.2f" fill="none" stroke="%s" stroke-opacity="0.45" stroke-width="1.2" stroke-dasharray="2 5"/>`+"\n",
		r.Depth, r.Radius, compassInk)
	fmt.Fprintf(buf, `  <text class="ring-label" x="0" y="%.2f" text-anchor="middle" font-family="serif" font-style="italic" font-size="11" fill="%s">ring %d</text>`+"\n",
		-r.Radius-4, compassInk, r.Depth)
}

func (Compass) RenderText(buf *bytes.Buffer, b Block) {
	renderLines(buf, b, compassInk, "serif")
}

// RosePoints returns the eight tips of a compass rose centered at (cx, cy):
// cardinal points at full size, intercardinal points at 40%.
func RosePoints(cx, cy, size float64) [8][2]float64 {
	var pts [8][2]float64
	for i := range pts {
		r := size
		if i%2 == 1 {
			r = size * 0.4
		}
		a := -math.Pi/2 + float64(i)*math.Pi/4
		pts[i] = [2]float64{cx + r*math.Cos(a), cy + r*math.Sin(a)}
	}
	return pts
}

func renderRose(buf *bytes.Buffer, cx, cy, size float64) {
	pts := RosePoints(cx, cy, size)
	inner := size * 0.12
	buf.WriteString(`  <g class="rose">`)
	for i := 0; i < len(pts); i += 2 {
		left := pts[(i+7)%8]
		right := pts[(i+1)%8]
		// Shrink the neighbouring intercardinal tips toward the center to
		// form a narrow spike.
		lx, ly := cx+(left[0]-cx)*inner/(size*0.4), cy+(left[1]-cy)*inner/(size*0.4)
		rx, ry := cx+(right[0]-cx)*inner/(size*0.4), cy+(right[1]-cy)*inner/(size*0.4)
		fmt.Fprintf(buf, `<polygon points="%.2f,%.2f %.2f,%.2f %.2f,%.2f" fill="%s"/>`,
			pts[i][0], pts[i][1], rx, ry, lx, ly, compassInk)
	}
	fmt.Fprintf(buf, `<text x="%.2f" y="%.2f" text-anchor="middle" font-family="serif" font-size="10" fill="%s">N</text>`,
		pts[0][0], pts[0][1]-3, compassInk)
	buf.WriteString("</g>\n")
}
