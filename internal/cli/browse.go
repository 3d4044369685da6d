package cli

import (
	"context"
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/windrose/pkg/argmap"
	"github.com/matzehuels/windrose/pkg/balance"
	"github.com/matzehuels/windrose/pkg/graph"
	"github.com/matzehuels/windrose/pkg/pipeline"
	"github.com/matzehuels/windrose/pkg/render/rose/styles"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)

	detailBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1).
			Width(44)
)

// browseCommand creates the browse command.
func (c *CLI) browseCommand() *cobra.Command {
	var (
		noCache bool
		outline bool
	)

	cmd := &cobra.Command{
		Use:   "browse [map.json | map.layout.json]",
		Short: "Explore a laid-out argument map in the terminal",
		Long: `Explore a laid-out argument map in the terminal.

Claims are listed in layout order and indented by ring. The panel on the right
shows the selected claim's polarity, strength, arc and balance.

Keys: ↑/↓ (or j/k) move, ←/→ collapse/expand, enter toggles, g/G jump to
top/bottom, q quits.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBrowse(cmd.Context(), args[0], noCache, outline)
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&outline, "outline", false, "read the input as an indented outline")

	return cmd
}

func (c *CLI) runBrowse(ctx context.Context, input string, noCache, outline bool) error {
	layout, err := c.loadOrComputeLayout(ctx, input, noCache, outline)
	if err != nil {
		return err
	}
	if len(layout.Nodes) == 0 {
		printInfo("Nothing to browse: the map has no nodes")
		return nil
	}

	p := tea.NewProgram(NewBrowseModel(layout), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = p.Run()
	return err
}

// loadOrComputeLayout reads a layout document, or lays out a map.
func (c *CLI) loadOrComputeLayout(ctx context.Context, input string, noCache, outline bool) (graph.Layout, error) {
	if strings.HasSuffix(input, ".layout.json") {
		return graph.ReadLayoutFile(input)
	}

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return graph.Layout{}, err
	}
	defer runner.Close()

	lc := c.Config.Layout
	opts := pipeline.Options{
		Outline:       outline,
		RingRadius:    lc.RingRadius,
		MinSiblingGap: lc.MinSiblingGap,
		MinArcPerLeaf: lc.MinArcPerLeaf,
		NodeWidth:     lc.NodeWidth,
		NodeHeight:    lc.NodeHeight,
		EmptyLabel:    lc.EmptyLabel,
		Logger:        c.Logger,
	}

	m, err := runner.Import(ctx, input, opts)
	if err != nil {
		return graph.Layout{}, fmt.Errorf("load map %s: %w", input, err)
	}
	return runner.ComputeLayout(ctx, m, opts)
}

// =============================================================================
// BrowseModel - Interactive tree browser
// =============================================================================

// browseRow is one positioned claim as shown in the browser.
type browseRow struct {
	ID          string
	Label       string
	Depth       int
	Polarity    argmap.Polarity
	Strength    *int
	Angle       float64
	ArcStart    float64
	ArcEnd      float64
	URL         string
	Balance     *balance.Balance
	HasChildren bool
}

// BrowseModel is the bubbletea model for browsing a radial layout.
type BrowseModel struct {
	Title     string
	Rows      []browseRow
	Collapsed map[string]bool
	Cursor    int // index into the visible rows
	Offset    int
	Height    int
}

// NewBrowseModel creates a browser over the nodes of a layout, which are in
// depth-first order.
func NewBrowseModel(l graph.Layout) BrowseModel {
	rows := make([]browseRow, len(l.Nodes))
	for i, n := range l.Nodes {
		row := browseRow{
			ID:       n.ID,
			Label:    n.Label,
			Depth:    n.Depth,
			Polarity: n.Polarity(),
			Strength: n.Data.Strength,
			Angle:    n.Angle,
			ArcStart: n.ArcStart,
			ArcEnd:   n.ArcEnd,
			URL:      n.URL(),
		}
		if b, ok := l.Balances[n.ID]; ok {
			row.Balance = &b
		}
		if i+1 < len(l.Nodes) && l.Nodes[i+1].Depth > n.Depth {
			row.HasChildren = true
		}
		rows[i] = row
	}
	return BrowseModel{
		Title:     l.Title,
		Rows:      rows,
		Collapsed: make(map[string]bool),
		Height:    20,
	}
}

// visible returns the indices of rows not hidden under a collapsed ancestor.
func (m BrowseModel) visible() []int {
	out := make([]int, 0, len(m.Rows))
	hideBelow := -1
	for i, r := range m.Rows {
		if hideBelow >= 0 {
			if r.Depth > hideBelow {
				continue
			}
			hideBelow = -1
		}
		out = append(out, i)
		if r.HasChildren && m.Collapsed[r.ID] {
			hideBelow = r.Depth
		}
	}
	return out
}

// Selected returns the row under the cursor.
func (m BrowseModel) Selected() (browseRow, bool) {
	vis := m.visible()
	if m.Cursor < 0 || m.Cursor >= len(vis) {
		return browseRow{}, false
	}
	return m.Rows[vis[m.Cursor]], true
}

func (m BrowseModel) Init() tea.Cmd {
	return nil
}

func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		vis := m.visible()
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(vis)-1 {
				m.Cursor++
			}
		case "g", "home":
			m.Cursor = 0
		case "G", "end":
			m.Cursor = len(vis) - 1
		case "left", "h":
			m.setCollapsed(true)
		case "right", "l":
			m.setCollapsed(false)
		case "enter", " ":
			if r, ok := m.Selected(); ok {
				m.setCollapsed(!m.Collapsed[r.ID])
			}
		}
		m.scroll()
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
		m.scroll()
	}
	return m, nil
}

func (m *BrowseModel) setCollapsed(v bool) {
	r, ok := m.Selected()
	if !ok || !r.HasChildren {
		return
	}
	if v {
		m.Collapsed[r.ID] = true
	} else {
		delete(m.Collapsed, r.ID)
	}
}

// scroll keeps the cursor inside the window.
func (m *BrowseModel) scroll() {
	if n := len(m.visible()); m.Cursor >= n {
		m.Cursor = n - 1
	}
	if m.Cursor < m.Offset {
		m.Offset = m.Cursor
	}
	if m.Cursor >= m.Offset+m.Height {
		m.Offset = m.Cursor - m.Height + 1
	}
}

func (m BrowseModel) View() string {
	var b strings.Builder

	title := m.Title
	if title == "" {
		title = "Argument map"
	}
	b.WriteString(StyleTitle.Render(title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ←/→ collapse/expand  q quit"))
	b.WriteString("\n\n")

	vis := m.visible()
	end := m.Offset + m.Height
	if end > len(vis) {
		end = len(vis)
	}

	var list strings.Builder
	for pos := m.Offset; pos < end; pos++ {
		r := m.Rows[vis[pos]]
		list.WriteString(m.renderRow(r, pos == m.Cursor))
		list.WriteString("\n")
	}

	detail := ""
	if r, ok := m.Selected(); ok {
		detail = detailBoxStyle.Render(renderDetail(r))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, list.String(), "  ", detail))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(vis))))

	return b.String()
}

func (m BrowseModel) renderRow(r browseRow, current bool) string {
	cursor := "  "
	if current {
		cursor = "▸ "
	}
	expander := "  "
	if r.HasChildren {
		expander = "▾ "
		if m.Collapsed[r.ID] {
			expander = "▸ "
		}
	}

	lines := styles.Wrap(r.Label, 48, 1)
	label := ""
	if len(lines) > 0 {
		label = lines[0]
	}

	line := cursor + strings.Repeat("  ", r.Depth) + expander + polarityGlyph(r.Depth, r.Polarity) + " "
	switch {
	case current:
		return line + listSelectedStyle.Render(label)
	case r.Polarity == argmap.Neutral:
		return line + listDimStyle.Render(label)
	default:
		return line + listNormalStyle.Render(label)
	}
}

func renderDetail(r browseRow) string {
	var b strings.Builder
	b.WriteString(StyleValue.Bold(true).Render(r.Label))
	b.WriteString("\n\n")

	field := func(k, v string) {
		b.WriteString(StyleDim.Render(fmt.Sprintf("%-10s", k)) + v + "\n")
	}
	field("id", r.ID)
	field("ring", fmt.Sprintf("%d", r.Depth))
	if r.Depth > 0 {
		pol := string(r.Polarity)
		if pol == "" {
			pol = "-"
		}
		field("polarity", pol)
	}
	if r.Strength != nil {
		field("strength", fmt.Sprintf("%d", *r.Strength))
	}
	field("angle", fmt.Sprintf("%.1f°", degrees(r.Angle)))
	field("arc", fmt.Sprintf("%.1f° – %.1f°", degrees(r.ArcStart), degrees(r.ArcEnd)))
	if r.URL != "" {
		field("source", StyleLink.Render(r.URL))
	}
	if r.Balance != nil {
		b.WriteString("\n")
		b.WriteString(balanceBar(r.Balance.Ratio, 30))
		b.WriteString("\n")
		b.WriteString(balanceCounts(*r.Balance))
	}
	return b.String()
}

func degrees(rad float64) float64 { return rad * 180 / math.Pi }
