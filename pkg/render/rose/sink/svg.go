package sink

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/windrose/pkg/graph"
	"github.com/matzehuels/windrose/pkg/render/rose/styles"
)

const hoverCSS = `
    .node { transition: stroke-width 0.2s ease; }
    .node.highlight { stroke-width: 4; }
    .edge.dim { opacity: 0.15; }
    a { cursor: pointer; }`

const hoverJS = `
    function focus(id) {
      document.querySelectorAll('.node').forEach(n => n.classList.toggle('highlight', n.id === 'node-' + id));
      document.querySelectorAll('.edge').forEach(e => e.classList.toggle('dim', !e.id.includes('-' + id)));
    }
    function clearFocus() {
      document.querySelectorAll('.node, .edge').forEach(el => el.classList.remove('highlight', 'dim'));
    }
    document.querySelectorAll('.node').forEach(el => {
      el.addEventListener('mouseenter', () => focus(el.id.replace('node-', '')));
      el.addEventListener('mouseleave', clearFocus);
    });`

// Option configures the SVG, PNG and PDF renderers.
type Option func(*renderer)

type renderer struct {
	style       styles.Style
	showBalance bool
	interactive bool
	scale       float64
}

func WithStyle(s styles.Style) Option { return func(r *renderer) { r.style = s } }
func WithBalance() Option             { return func(r *renderer) { r.showBalance = true } }
func WithInteraction() Option         { return func(r *renderer) { r.interactive = true } }

// WithScale sets the raster scale factor (default 2.0 for 2x resolution).
// Ignored by SVG.
func WithScale(s float64) Option {
	return func(r *renderer) {
		if s > 0 {
			r.scale = s
		}
	}
}

func newRenderer(opts ...Option) renderer {
	r := renderer{style: styles.Simple{}, scale: 2.0}
	for _, opt := range opts {
		opt(&r)
	}
	if r.style == nil {
		r.style = styles.Simple{}
	}
	return r
}

// RenderSVG renders the layout as a standalone SVG document. The thesis sits
// at the origin; the viewBox is sized to fit every ring and claim.
func RenderSVG(l graph.Layout, opts ...Option) []byte {
	r := newRenderer(opts...)
	s := buildScene(l, r.showBalance)
	v := s.view

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%.1f %.1f %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		v.MinX, v.MinY, v.Width, v.Height, v.Width, v.Height)

	r.style.RenderDefs(&buf)
	r.style.RenderBackdrop(&buf, v)
	if s.title != "" {
		fmt.Fprintf(&buf, `  <text class="title" x="0" y="%.2f" text-anchor="middle" font-family="sans-serif" font-size="20" font-weight="bold">%s</text>`+"\n",
			v.MinY+framePadding, styles.EscapeXML(s.title))
	}
	for _, ring := range s.rings {
		r.style.RenderRing(&buf, ring)
	}
	for _, e := range s.edges {
		r.style.RenderEdge(&buf, e)
	}
	for _, b := range s.blocks {
		r.style.RenderBlock(&buf, b)
	}
	for _, b := range s.blocks {
		r.style.RenderText(&buf, b)
	}
	if r.showBalance {
		for _, b := range s.blocks {
			r.style.RenderBalance(&buf, b)
		}
	}
	if r.interactive {
		fmt.Fprintf(&buf, "  <style>%s\n  </style>\n", hoverCSS)
		fmt.Fprintf(&buf, "  <script type=\"text/javascript\"><![CDATA[%s\n  ]]></script>\n", hoverJS)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}
