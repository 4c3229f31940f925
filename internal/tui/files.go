package tui

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"

	"geosvg/geom"
)

type fileItem struct {
	title, desc string
	path        string
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		return
	}
	var items []list.Item
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !geom.Supported(name) {
			continue
		}
		items = append(items, fileItem{title: name, desc: strings.ToLower(filepath.Ext(name)), path: filepath.Join(m.cwd, name)})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).Title() < items[j].(fileItem).Title() })
	m.items = items
	m.l.SetItems(items)
	if len(items) == 0 {
		m.status = "no supported files in current directory"
	}
}

// loadPath loads any supported format into the model.
func (m *Model) loadPath(p string) {
	d, err := geom.Load(p)
	if err != nil {
		m.status = "load error: " + err.Error()
		return
	}
	m.selPath = p
	m.setDataset(d)
	m.status = "loaded: " + d.Name + "  counts: " + m.counts.String()
}

// exportSVG writes the current document next to the loaded file, or as
// pasted.svg in the working directory.
func (m *Model) exportSVG() {
	if len(m.data.Shapes) == 0 {
		m.status = "export: nothing loaded"
		return
	}
	name := "pasted.svg"
	if m.selPath != "" {
		base := filepath.Base(m.selPath)
		name = strings.TrimSuffix(base, filepath.Ext(base)) + ".svg"
	}
	out := filepath.Join(m.cwd, name)
	if err := os.WriteFile(out, []byte(m.Document().String()), 0o644); err != nil {
		m.status = "export error: " + err.Error()
		return
	}
	m.status = "exported: " + out
}
