package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"geosvg/geom"
)

const (
	sidebarWidth = 28
	headerHeight = 1
	footerHeight = 2
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showSidebar {
			m.l.SetSize(sidebarWidth-2, m.height-headerHeight-2)
		}
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.pasteMode {
			return m.updatePaste(msg)
		}
		if m.showShapes {
			switch msg.String() {
			case "up", "down", "pgup", "pgdown", "home", "end", "k", "j":
				var cmd tea.Cmd
				m.tbl, cmd = m.tbl.Update(msg)
				return m, cmd
			}
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "+", "=":
			if m.zoom < 64 {
				m.zoom *= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "-", "_":
			if m.zoom > 0.05 {
				m.zoom /= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "r":
			m.style = m.style.WithRadius(m.style.Radius * 1.5)
			m.styleChanged(fmt.Sprintf("radius: %g", m.style.Radius))
		case "R":
			m.style = m.style.WithRadius(m.style.Radius / 1.5)
			m.styleChanged(fmt.Sprintf("radius: %g", m.style.Radius))
		case "w", "W":
			sw, ok := m.style.StrokeWidth()
			if !ok {
				sw = 1
			}
			if msg.String() == "w" {
				sw *= 1.5
			} else {
				sw /= 1.5
			}
			m.style = m.style.WithStrokeWidth(sw)
			m.styleChanged(fmt.Sprintf("stroke-width: %g", sw))
		case "m", "M":
			step := 1.0
			if msg.String() == "M" {
				step = -1
			}
			m.margin, m.hasMargin = max(0, m.margin+step), true
			m.styleChanged(fmt.Sprintf("margin: %g", m.margin))
		case "n":
			m.labels = !m.labels
			m.status = fmt.Sprintf("labels: %v", m.labels)
		case "e":
			m.exportSVG()
		case "tab":
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.refreshDir()
				m.l.SetSize(sidebarWidth-2, m.height-headerHeight-2)
			}
		case "p":
			m.pasteMode = true
			m.ta.SetValue("")
			m.status = "paste mode"
			m.ta.Focus()
		case "h":
			m.helpVisible = !m.helpVisible
		case "a":
			m.showShapes = !m.showShapes
			if m.showShapes {
				m.refreshShapeTable()
			}
		case "i":
			m.inspect()
		case "esc":
			m.inspectPopup = ""
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(fileItem); ok {
					m.loadPath(it.path)
				}
			}
		case "up":
			m.offsetY += 1
		case "down":
			m.offsetY -= 1
		case "left":
			m.offsetX += 2
		case "right":
			m.offsetX -= 2
		}
	case tea.MouseMsg:
		m.updateHover(msg.X, msg.Y)
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updatePaste(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.pasteMode = false
		m.ta.Blur()
		m.status = "view mode"
		return m, nil
	case "enter":
		w := strings.TrimSpace(m.ta.Value())
		if w == "" {
			m.status = "paste: empty"
			return m, nil
		}
		g, err := geom.ParseWKT(w)
		if err != nil {
			m.status = "wkt error: " + err.Error()
			return m, nil
		}
		m.selPath = ""
		m.setDataset(geom.Dataset{Name: "<pasted>", Shapes: geom.Collection{g}})
		m.status = "rendered WKT  counts: " + m.counts.String()
		m.pasteMode = false
		m.ta.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	return m, cmd
}

// styleChanged refreshes everything derived from the style.
func (m *Model) styleChanged(status string) {
	m.status = status
	if m.showShapes {
		m.refreshShapeTable()
	}
}

func (m *Model) inspect() {
	if len(m.data.Shapes) == 0 {
		m.inspectPopup = "nothing loaded"
		m.status = m.inspectPopup
		return
	}
	name := m.data.Name
	if m.selPath != "" {
		name = filepath.Base(m.selPath)
	}
	doc := m.Document()
	vb := doc.ViewBox()
	meta := []string{
		fmt.Sprintf("name: %s", name),
		fmt.Sprintf("counts: %s", m.counts),
		fmt.Sprintf("viewBox: %s", vb.Attr()),
		fmt.Sprintf("style:%s r=%g", m.style, m.style.Radius),
	}
	if ext, ok := geom.Extent(m.data.Shapes); ok {
		meta = append(meta, fmt.Sprintf("extent: [%g, %g, %g, %g]", ext.MinX, ext.MinY, ext.MaxX, ext.MaxY))
	}
	if m.width > 0 && m.height > 0 {
		_, _, w, h := m.mapArea()
		if p, ok := m.projection(w, h); ok {
			br := newBrailleBuf(w, h)
			for _, g := range m.data.Shapes {
				drawGeometry(br, p, g)
			}
			meta = append(meta, fmt.Sprintf("preview pixels: %d", br.lit()))
		}
	}
	meta = append(meta, fmt.Sprintf("svg bytes: %d", len(doc.String())))
	m.inspectPopup = strings.Join(meta, "\n")
	m.status = "inspect popup"
}

// mapArea returns where the map canvas starts and its size. It must
// match the layout in View.
func (m Model) mapArea() (x, y, w, h int) {
	side := 0
	if m.showSidebar {
		side = sidebarWidth
		x = sidebarWidth + 1
	}
	contentHeight := max(4, m.height-headerHeight-footerHeight)
	contentWidth := max(10, m.width)
	w = max(10, contentWidth-side-1)
	return x, headerHeight, w, contentHeight
}

func (m *Model) updateHover(cx, cy int) {
	ox, oy, w, h := m.mapArea()
	if cx < ox || cx >= ox+w || cy < oy || cy >= oy+h {
		m.hovering = false
		m.hoverHasGeo = false
		return
	}
	m.hovering = true
	p, ok := m.projection(w, h)
	m.hoverHasGeo = ok
	if ok {
		m.hoverX, m.hoverY = p.cell(cx-ox, cy-oy)
	}
}
