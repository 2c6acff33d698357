package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mlandgraf/tiledeck/internal/config"
	"github.com/mlandgraf/tiledeck/pkg/catalog"
	"github.com/mlandgraf/tiledeck/pkg/layout"
)

// Terminal columns are roughly 8px wide on common font metrics; the grid
// math runs in pixels, so the terminal width is scaled before resolving.
const pxPerCell = 8.0

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// Tile styles
var (
	tileBorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1)

	tileActiveStyle = tileBorderStyle.
			BorderForeground(colorCyan)

	tileEditStyle = tileBorderStyle.
			BorderForeground(colorYellow)

	tileLabelStyle = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
	tileMetaStyle  = lipgloss.NewStyle().Foreground(colorDim)
	tileChartStyle = lipgloss.NewStyle().Foreground(colorBlue)
)

// dashboardMode selects the active key map.
type dashboardMode int

const (
	modeBrowse dashboardMode = iota
	modeEdit
	modePicker
)

// savedMsg signals that a background persist finished. Saves are
// fail-soft, so there is no outcome to report.
type savedMsg struct{}

// =============================================================================
// DashboardModel - Interactive tile dashboard
// =============================================================================

// DashboardModel is the bubbletea model for the tile dashboard. Browse mode
// navigates and flips tiles; edit mode reorders, resizes, adds and removes
// them through the same event path the pointer adapter uses.
type DashboardModel struct {
	Catalog *catalog.Catalog
	Store   *layout.Store
	Adapter *layout.Adapter
	Geom    layout.Geometry
	Grid    config.GridConfig
	Solar   bool

	Layout layout.Layout

	mode    dashboardMode
	cursor  int
	picker  int
	flipped map[string]bool
	status  string

	width  int
	height int
}

// NewDashboardModel creates a dashboard model over an already loaded layout.
func NewDashboardModel(cat *catalog.Catalog, st *layout.Store, adapter *layout.Adapter, geom layout.Geometry, grid config.GridConfig, solar bool, l layout.Layout) DashboardModel {
	return DashboardModel{
		Catalog: cat,
		Store:   st,
		Adapter: adapter,
		Geom:    geom,
		Grid:    grid,
		Solar:   solar,
		Layout:  l,
		flipped: map[string]bool{},
		width:   96,
		height:  24,
	}
}

func (m DashboardModel) Init() tea.Cmd {
	return nil
}

// gridWidthPx maps the terminal width onto the pixel grid the geometry
// calculations expect.
func (m DashboardModel) gridWidthPx() float64 {
	return float64(m.width) * pxPerCell
}

func (m DashboardModel) mobile() bool {
	return m.gridWidthPx() < float64(m.Grid.MobileBreakpointPx)
}

// save persists the current layout off the update loop.
func (m DashboardModel) save() tea.Cmd {
	l := m.Layout.Clone()
	st := m.Store
	return func() tea.Msg {
		st.Save(context.Background(), l)
		return savedMsg{}
	}
}

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case savedMsg:
		return m, nil
	case tea.KeyMsg:
		switch m.mode {
		case modeBrowse:
			return m.updateBrowse(msg)
		case modeEdit:
			return m.updateEdit(msg)
		case modePicker:
			return m.updatePicker(msg)
		}
	}
	return m, nil
}

func (m DashboardModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "left", "h", "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "right", "l", "down", "j":
		if m.cursor < len(m.Layout.Tiles)-1 {
			m.cursor++
		}
	case "enter", " ":
		if id := m.cursorID(); id != "" {
			if def, ok := m.Catalog.Get(id); ok && def.HasFlipTile {
				m.flipped[id] = !m.flipped[id]
			}
		}
	case "e":
		m.mode = modeEdit
		m.status = ""
	}
	return m, nil
}

func (m DashboardModel) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc", "e":
		m.mode = modeBrowse
		m.status = ""
	case "left", "h", "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "right", "l", "down", "j":
		if m.cursor < len(m.Layout.Tiles)-1 {
			m.cursor++
		}
	case "shift+left", "H":
		return m.moveTile(-1)
	case "shift+right", "L":
		return m.moveTile(1)
	case "+", "=":
		return m.resizeTile(1)
	case "-", "_":
		return m.resizeTile(-1)
	case "a":
		m.mode = modePicker
		m.picker = 0
	case "d", "x":
		if id := m.cursorID(); id != "" {
			m.Layout = layout.RemoveTile(m.Layout, id)
			if m.cursor >= len(m.Layout.Tiles) && m.cursor > 0 {
				m.cursor--
			}
			m.status = fmt.Sprintf("removed %s", id)
			return m, m.save()
		}
	case "1":
		return m.applyPreset(3)
	case "2":
		return m.applyPreset(4)
	case "3":
		return m.applyPreset(layout.MobileColSpan)
	case "r":
		m.Layout = layout.Default()
		m.cursor = 0
		m.mode = modeBrowse
		m.status = "layout reset"
		return m, m.save()
	}
	return m, nil
}

func (m DashboardModel) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	addable := m.addable()
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc", "q":
		m.mode = modeEdit
	case "up", "k":
		if m.picker > 0 {
			m.picker--
		}
	case "down", "j":
		if m.picker < len(addable)-1 {
			m.picker++
		}
	case "enter":
		if m.picker < len(addable) {
			id := addable[m.picker].ID
			m.Layout = layout.AddTile(m.Catalog, m.Layout, id, 0)
			m.mode = modeEdit
			m.status = fmt.Sprintf("added %s", id)
			return m, m.save()
		}
	}
	return m, nil
}

// moveTile reorders the tile under the cursor by one position, through the
// same adapter the pointer surface drives.
func (m DashboardModel) moveTile(delta int) (tea.Model, tea.Cmd) {
	target := m.cursor + delta
	if target < 0 || target >= len(m.Layout.Tiles) {
		return m, nil
	}
	m.Layout = m.Adapter.Apply(context.Background(), m.Layout, layout.Event{
		Kind:     layout.EventReorder,
		ActiveID: m.Layout.Tiles[m.cursor].TileID,
		OverID:   m.Layout.Tiles[target].TileID,
	})
	m.cursor = target
	return m, nil
}

// resizeTile grows or shrinks the tile under the cursor by one grid column.
func (m DashboardModel) resizeTile(columns int) (tea.Model, tea.Cmd) {
	id := m.cursorID()
	if id == "" {
		return m, nil
	}
	gridPx := m.gridWidthPx()
	step := (gridPx-float64(layout.GridColumns-1)*m.Geom.GapPx)/layout.GridColumns + m.Geom.GapPx
	m.Layout = m.Adapter.Apply(context.Background(), m.Layout, layout.Event{
		Kind:        layout.EventResize,
		TileID:      id,
		DeltaPx:     float64(columns) * step,
		GridWidthPx: gridPx,
	})
	return m, nil
}

func (m DashboardModel) applyPreset(span int) (tea.Model, tea.Cmd) {
	m.Layout = layout.SetAllSpans(m.Catalog, m.Layout, span)
	m.status = fmt.Sprintf("all tiles set to %d columns", span)
	return m, m.save()
}

func (m DashboardModel) cursorID() string {
	if m.cursor < 0 || m.cursor >= len(m.Layout.Tiles) {
		return ""
	}
	return m.Layout.Tiles[m.cursor].TileID
}

func (m DashboardModel) addable() []catalog.TileDefinition {
	return m.Catalog.Addable(m.Layout.TileIDs(), m.Solar)
}

func (m DashboardModel) View() string {
	if m.mode == modePicker {
		return m.viewPicker()
	}
	return m.viewGrid()
}

// =============================================================================
// Grid rendering
// =============================================================================

func (m DashboardModel) viewGrid() string {
	var b strings.Builder

	title := "tiledeck"
	if m.mode == modeEdit {
		title += "  " + StyleWarning.Render("[editing]")
	}
	b.WriteString(StyleTitle.Render(title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(m.helpLine()))
	b.WriteString("\n\n")

	resolved := m.Geom.Resolve(m.Catalog, m.Layout, m.gridWidthPx(), m.mobile())

	// Pack tiles into rows the way the grid would wrap them.
	var rows [][]renderedTile
	var row []renderedTile
	used := 0
	for i, rt := range resolved {
		if used+rt.Span > layout.GridColumns && len(row) > 0 {
			rows = append(rows, row)
			row = nil
			used = 0
		}
		row = append(row, renderedTile{ResolvedTile: rt, index: i})
		used += rt.Span
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	colWidth := m.width / layout.GridColumns
	if colWidth < 4 {
		colWidth = 4
	}

	for _, row := range rows {
		boxes := make([]string, len(row))
		for i, rt := range row {
			boxes[i] = m.renderTile(rt, rt.Span*colWidth-2)
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, boxes...))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(StyleDim.Render(m.status))
	}

	return b.String()
}

type renderedTile struct {
	layout.ResolvedTile
	index int
}

func (m DashboardModel) renderTile(rt renderedTile, width int) string {
	label := rt.Def.Label
	var body string
	if m.flipped[rt.TileID] && rt.Def.HasFlipTile {
		body = tileChartStyle.Render(fmt.Sprintf("%s (%s)", rt.Def.ChartLabel, rt.Def.ChartUnit))
	} else if rt.Compact {
		body = tileMetaStyle.Render(rt.Def.Sensor)
	} else {
		body = tileMetaStyle.Render(fmt.Sprintf("%s  %d col", rt.Def.Sensor, rt.Span))
	}

	content := tileLabelStyle.Render(label) + "\n" + body

	style := tileBorderStyle
	if rt.index == m.cursor {
		style = tileActiveStyle
		if m.mode == modeEdit {
			style = tileEditStyle
		}
	}
	return style.Width(width).Render(content)
}

func (m DashboardModel) helpLine() string {
	switch m.mode {
	case modeEdit:
		return "←/→ select  shift+←/→ move  +/- resize  a add  d remove  1/2/3 presets  r reset  esc done"
	default:
		return "←/→ select  ⏎ flip  e edit  q quit"
	}
}

// =============================================================================
// Add-tile picker
// =============================================================================

func (m DashboardModel) viewPicker() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Add Tile"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ add  esc cancel"))
	b.WriteString("\n\n")

	addable := m.addable()
	if len(addable) == 0 {
		b.WriteString(listDimStyle.Render("  all tiles are already on the dashboard"))
		b.WriteString("\n")
		return b.String()
	}

	for i, def := range addable {
		cursor := "  "
		if i == m.picker {
			cursor = "▸ "
		}
		line := fmt.Sprintf("%s%-20s %s", cursor, def.Label, listDimStyle.Render(string(def.Category)))
		if i == m.picker {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	return b.String()
}
