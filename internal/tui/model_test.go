package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geosvg/geom"
	"geosvg/internal/config"
	"geosvg/svg"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok, "Update returned %T", next)
	}
	return m
}

// withFile writes body to dir/name and returns a model that loaded it
// and exports into dir.
func withFile(t *testing.T, cfg config.Config, name, body string) (Model, string) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	m := NewWithPath(cfg, path)
	m.cwd = dir
	return m, dir
}

func TestNewAppliesConfigStyle(t *testing.T) {
	margin, radius := 3.0, 4.0
	cfg := config.Default()
	cfg.Margin = &margin
	cfg.Style.Radius = &radius
	cfg.Style.Stroke = "black"

	m := New(cfg)
	assert.Equal(t, 4.0, m.Style().Radius)
	assert.Equal(t, svg.Named("black"), m.Style().Stroke())
	assert.True(t, m.hasMargin)
	assert.Equal(t, 3.0, m.margin)
}

func TestNewFallsBackOnBadConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Style.Fill = "not a color"
	m := New(cfg)
	assert.Equal(t, svg.DefaultStyle(), m.Style())
	assert.True(t, strings.HasPrefix(m.Status(), "config error: fill: "), m.Status())
}

func TestLoadOnStart(t *testing.T) {
	m, _ := withFile(t, config.Default(), "shape.wkt", "POLYGON ((0 0, 10 0, 10 10, 0 10, 0 0))")
	assert.Equal(t, "loaded: shape.wkt  counts: pts=0 ls=0 poly=1", m.Status())
	assert.Equal(t, svg.NewViewBox(-1, -1, 11, 11), m.Document().ViewBox())
}

func TestLoadErrorKeepsPreviousData(t *testing.T) {
	m, dir := withFile(t, config.Default(), "shape.wkt", "POINT (1 2)")
	bad := filepath.Join(dir, "bad.wkt")
	require.NoError(t, os.WriteFile(bad, []byte("POINT (1"), 0o644))
	m.loadPath(bad)
	assert.True(t, strings.HasPrefix(m.Status(), "load error: load bad.wkt: "), m.Status())
	assert.Equal(t, 1, m.counts.Points)
}

func TestStyleKeys(t *testing.T) {
	m := New(config.Default())
	m.setDataset(geom.Dataset{Name: "p", Shapes: geom.Collection{geom.NewPoint(0, 0)}})

	m = send(t, m, key("r"))
	assert.Equal(t, 1.5, m.Style().Radius)
	assert.Equal(t, "radius: 1.5", m.Status())

	m = send(t, m, key("w"))
	sw, ok := m.Style().StrokeWidth()
	require.True(t, ok)
	assert.Equal(t, 1.5, sw)

	m = send(t, m, key("m"), key("m"))
	assert.Equal(t, "margin: 2", m.Status())

	// point box: radius 1.5 + stroke 1.5, then margin 2
	assert.Equal(t, svg.NewViewBox(-5, -5, 5, 5), m.Document().ViewBox())
	assert.Contains(t, m.Document().Fragment(), `r="1.5" stroke-width="1.5"`)

	m = send(t, m, key("M"), key("M"), key("M"))
	assert.Equal(t, "margin: 0", m.Status())
}

func TestZoomKeys(t *testing.T) {
	m := New(config.Default())
	m = send(t, m, key("+"))
	assert.InDelta(t, 1.2, m.zoom, 1e-9)
	m = send(t, m, key("-"), key("-"))
	assert.InDelta(t, 1/1.2, m.zoom, 1e-9)
}

func TestPasteWKT(t *testing.T) {
	m := New(config.Default())
	m = send(t, m, key("p"))
	require.True(t, m.pasteMode)

	m.ta.SetValue("LINESTRING (0 0, 4 3)")
	m = send(t, m, key("enter"))
	assert.False(t, m.pasteMode)
	assert.Equal(t, "rendered WKT  counts: pts=0 ls=1 poly=0", m.Status())
	assert.Equal(t, `<path d="M 0 0 L 4 3"/>`, m.Document().Fragment())
}

func TestPasteErrors(t *testing.T) {
	m := send(t, New(config.Default()), key("p"))
	m = send(t, m, key("enter"))
	assert.Equal(t, "paste: empty", m.Status())

	m.ta.SetValue("LINESTRING (0 0,")
	m = send(t, m, key("enter"))
	assert.True(t, strings.HasPrefix(m.Status(), "wkt error: "), m.Status())
	assert.True(t, m.pasteMode)

	m = send(t, m, key("esc"))
	assert.False(t, m.pasteMode)
	assert.Equal(t, "view mode", m.Status())
}

func TestLabels(t *testing.T) {
	m := New(config.Default())
	m.setDataset(geom.Dataset{Shapes: geom.Collection{geom.NewPoint(3, 4), geom.Collection{}}})
	assert.NotContains(t, m.Document().Fragment(), "<text")

	m = send(t, m, key("n"))
	frag := m.Document().Fragment()
	assert.Contains(t, frag, `<text font-size="10" x="3" y="4">1</text>`)
	assert.Equal(t, 1, strings.Count(frag, "<text"))
}

func TestExportNextToFile(t *testing.T) {
	cfg := config.Default()
	cfg.Style.Fill = "red"
	m, dir := withFile(t, cfg, "area.wkt", "POLYGON ((0 0, 1 0, 0 1, 0 0))")
	m = send(t, m, key("e"))

	out := filepath.Join(dir, "area.svg")
	assert.Equal(t, "exported: "+out, m.Status())
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, m.Document().String(), string(data))
	assert.Contains(t, string(data), `fill="red"`)
}

func TestExportPasted(t *testing.T) {
	m := New(config.Default())
	m.cwd = t.TempDir()
	m = send(t, m, key("e"))
	assert.Equal(t, "export: nothing loaded", m.Status())

	m.setDataset(geom.Dataset{Name: "<pasted>", Shapes: geom.Collection{geom.NewPoint(0, 0)}})
	m = send(t, m, key("e"))
	_, err := os.Stat(filepath.Join(m.cwd, "pasted.svg"))
	assert.NoError(t, err)
}

func TestShapeTable(t *testing.T) {
	m, _ := withFile(t, config.Default(), "pts.csv", "name,lat,lon\na,1,2\nb,3,4\n")
	m = send(t, m, key("a"))
	require.True(t, m.showShapes)

	rows := m.tbl.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"1", "point", "0 -1 4 4", "a", "1", "2"}, []string(rows[0]))

	cols := m.tbl.Columns()
	assert.Equal(t, "viewBox", cols[2].Title)

	// the viewBox column follows style changes
	m = send(t, m, key("w"))
	assert.Equal(t, "-0.5 -1.5 5 5", m.tbl.Rows()[0][2])
}

func TestShapeTableNeedsData(t *testing.T) {
	m := send(t, New(config.Default()), key("a"))
	assert.False(t, m.showShapes)
	assert.Equal(t, "no shapes loaded", m.Status())
}

func TestInspect(t *testing.T) {
	m := send(t, New(config.Default()), key("i"))
	assert.Equal(t, "nothing loaded", m.inspectPopup)

	m, _ = withFile(t, config.Default(), "sq.wkt", "POLYGON ((0 0, 10 0, 10 10, 0 10, 0 0))")
	m = send(t, m, tea.WindowSizeMsg{Width: 80, Height: 24}, key("i"))
	assert.Contains(t, m.inspectPopup, "name: sq.wkt")
	assert.Contains(t, m.inspectPopup, "viewBox: -1 -1 12 12")
	assert.Contains(t, m.inspectPopup, "extent: [0, 0, 10, 10]")
	assert.Contains(t, m.inspectPopup, "preview pixels: ")

	m = send(t, m, key("esc"))
	assert.Empty(t, m.inspectPopup)
}

func TestHover(t *testing.T) {
	m, _ := withFile(t, config.Default(), "sq.wkt", "POLYGON ((0 0, 10 0, 10 10, 0 10, 0 0))")
	m = send(t, m, tea.WindowSizeMsg{Width: 40, Height: 23})

	m = send(t, m, tea.MouseMsg{X: 0, Y: headerHeight})
	require.True(t, m.hoverHasGeo)
	assert.InDelta(t, -1, m.hoverX, 1e-9)
	assert.InDelta(t, -1, m.hoverY, 1e-9)

	m = send(t, m, tea.MouseMsg{X: 0, Y: 0})
	assert.False(t, m.hovering)
}

func TestResizeSizesFileList(t *testing.T) {
	m := send(t, New(config.Default()), key("tab"), tea.WindowSizeMsg{Width: 80, Height: 24})
	require.True(t, m.showSidebar)
	assert.Equal(t, sidebarWidth-2, m.l.Width())
	assert.Equal(t, 24-headerHeight-2, m.l.Height())
}

func TestViewLayout(t *testing.T) {
	m, _ := withFile(t, config.Default(), "sq.wkt", "POLYGON ((0 0, 10 0, 10 10, 0 10, 0 0))")
	assert.Empty(t, m.View())

	// wide enough that the help line never wraps
	m = send(t, m, tea.WindowSizeMsg{Width: 300, Height: 24})
	v := m.View()
	assert.Contains(t, v, "geosvg")
	assert.Contains(t, v, "sq.wkt")
	assert.Contains(t, v, "e export")

	m = send(t, m, key("h"))
	assert.NotContains(t, m.View(), "e export")
}

func TestQuit(t *testing.T) {
	_, cmd := New(config.Default()).Update(key("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}
