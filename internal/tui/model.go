package tui

import (
	"os"
	"strconv"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"geosvg/geom"
	"geosvg/internal/config"
	"geosvg/svg"
)

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	zoom    float64
	offsetX int
	offsetY int

	status string

	// File explorer
	cwd     string
	l       list.Model
	items   []list.Item
	selPath string

	// Data
	data   geom.Dataset
	counts geom.Counts

	// Document settings; every change goes through the svg cascade
	style     svg.Style
	margin    float64
	hasMargin bool
	labels    bool

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// inspect popup
	inspectPopup string

	// hover state
	hovering    bool
	hoverHasGeo bool
	hoverX      float64
	hoverY      float64

	// shape table
	showShapes bool
	tbl        table.Model
}

// New returns a model whose document style starts from cfg.
func New(cfg config.Config) Model {
	m := Model{
		showSidebar: false,
		helpVisible: true,
		zoom:        1.0,
		status:      "geosvg ready",
	}
	m.cwd, _ = os.Getwd()
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Files"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste WKT here (POINT, LINESTRING, POLYGON, MULTI*, GEOMETRYCOLLECTION). Press Enter to render; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.refreshDir()
	style, err := cfg.Style.Apply(svg.DefaultStyle())
	if err != nil {
		m.status = "config error: " + err.Error()
		style = svg.DefaultStyle()
	}
	m.style = style
	if cfg.Margin != nil {
		m.margin, m.hasMargin = *cfg.Margin, true
	}
	return m
}

// NewWithPath preloads a file's data at launch.
func NewWithPath(cfg config.Config, path string) Model {
	m := New(cfg)
	m.loadPath(path)
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// setDataset swaps the loaded shapes and resets the viewport.
func (m *Model) setDataset(d geom.Dataset) {
	m.data = d
	m.counts = geom.Count(d.Shapes)
	m.zoom = 1.0
	m.offsetX, m.offsetY = 0, 0
	m.inspectPopup = ""
	if m.showShapes {
		m.refreshShapeTable()
	}
}

// Document builds the svg tree for the loaded shapes: one sibling per
// shape, optional index labels, then the current style and margin
// cascaded over all of them.
func (m Model) Document() svg.Svg {
	doc := svg.New()
	for i, g := range m.data.Shapes {
		node := svg.FromGeometry(g)
		if m.labels {
			if cs := geom.Coords(g); len(cs) > 0 {
				node = svg.New(svg.Shape(g), svg.NewText(strconv.Itoa(i+1), cs[0]))
			}
		}
		doc = doc.And(node)
	}
	doc = doc.WithStyle(m.style)
	if m.hasMargin {
		doc = doc.WithMargin(m.margin)
	}
	return doc
}

// Style returns the style new documents are rendered with.
func (m Model) Style() svg.Style { return m.style }

// Status returns the current status line text.
func (m Model) Status() string { return m.status }
