package styles

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/matzehuels/windrose/pkg/argmap"
	"github.com/matzehuels/windrose/pkg/graph"
)

// Simple draws flat rectangles on dashed rings.
type Simple struct{}

func (Simple) Name() string { return graph.StyleSimple }

func (Simple) RenderDefs(*bytes.Buffer) {}

func (Simple) RenderBackdrop(*bytes.Buffer, Viewport) {}

func (Simple) RenderRing(buf *bytes.Buffer, r Ring) {
	fmt.Fprintf(buf, `  <circle class="ring" data-depth="%d" cx="0" cy="0" r="%.2f" fill="none" stroke="#cfd8dc" stroke-width="1" stroke-dasharray="6 6"/>`+"\n",
		r.Depth, r.Radius)
}

func (Simple) RenderEdge(buf *bytes.Buffer, e Edge) {
	fmt.Fprintf(buf, `  <path id="%s" class="edge" d="M %.2f %.2f C %.2f %.2f, %.2f %.2f, %.2f %.2f" fill="none" stroke="%s" stroke-width="%.2f" stroke-linecap="round"/>`+"\n",
		EscapeXML(e.ID), e.X1, e.Y1, e.C1X, e.C1Y, e.C2X, e.C2Y, e.X2, e.Y2, PolarityColor(e.Polarity), EdgeWidth(e))
}

func (Simple) RenderBlock(buf *bytes.Buffer, b Block) {
	WrapURL(buf, b.URL, func() {
		fmt.Fprintf(buf, `  <rect id="node-%s" class="node" x="%.2f" y="%.2f" width="%.2f" height="%.2f" rx="6" ry="6" fill="%s" stroke="%s" stroke-width="%s">`,
			EscapeXML(b.ID), b.X, b.Y, b.W, b.H, blockFill(b), blockStroke(b), blockStrokeWidth(b))
		fmt.Fprintf(buf, "<title>%s</title></rect>\n", EscapeXML(blockTitle(b)))
	})
}

func (Simple) RenderText(buf *bytes.Buffer, b Block) {
	renderLines(buf, b, "#263238", "sans-serif")
}

func (Simple) RenderBalance(buf *bytes.Buffer, b Block) {
	renderBalanceBar(buf, b)
}

func blockFill(b Block) string {
	if b.Depth == 0 {
		return "#eceff1"
	}
	return "white"
}

func blockStroke(b Block) string {
	if b.Depth == 0 {
		return "#263238"
	}
	p := b.Polarity
	return PolarityColor(&p)
}

func blockStrokeWidth(b Block) string {
	if b.Depth == 0 {
		return "2.5"
	}
	return "1.5"
}

func blockTitle(b Block) string {
	var sb strings.Builder
	sb.WriteString(b.Statement)
	if b.Polarity != "" && b.Polarity != argmap.Neutral {
		fmt.Fprintf(&sb, " (%s", b.Polarity)
		if b.Strength != nil {
			fmt.Fprintf(&sb, ", %d", *b.Strength)
		}
		sb.WriteString(")")
	}
	return sb.String()
}

func renderLines(buf *bytes.Buffer, b Block, color, family string) {
	lines := WrapLabel(b)
	if len(lines) == 0 {
		return
	}
	size := FontSize(b)
	lh := LineHeight(b)
	y0 := b.CY - lh*float64(len(lines)-1)/2

	fmt.Fprintf(buf, `  <text class="label" data-node="%s" x="%.2f" y="%.2f" text-anchor="middle" dominant-baseline="middle" font-family="%s" font-size="%.1f" fill="%s">`,
		EscapeXML(b.ID), b.CX, y0, family, size, color)
	for i, line := range lines {
		dy := 0.0
		if i > 0 {
			dy = lh
		}
		fmt.Fprintf(buf, `<tspan x="%.2f" dy="%.2f">%s</tspan>`, b.CX, dy, EscapeXML(line))
	}
	buf.WriteString("</text>\n")
}

func renderBalanceBar(buf *bytes.Buffer, b Block) {
	if b.Balance == nil {
		return
	}
	y := b.Y + b.H + BalanceBarGap
	tw := b.W * b.Balance.Ratio
	fmt.Fprintf(buf, `  <g class="balance" data-node="%s">`, EscapeXML(b.ID))
	fmt.Fprintf(buf, `<rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s"/>`, b.X, y, tw, BalanceBarHeight, ColorTailwind)
	fmt.Fprintf(buf, `<rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s"/>`, b.X+tw, y, b.W-tw, BalanceBarHeight, ColorHeadwind)
	fmt.Fprintf(buf, "<title>tailwind %d / headwind %d</title></g>\n", b.Balance.TailwindTotal, b.Balance.HeadwindTotal)
}
