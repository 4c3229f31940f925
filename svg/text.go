package svg

import (
	"encoding/xml"
	"strings"

	"geosvg/geom"
)

// Text is a label placed at a coordinate, handy for numbering shapes.
// Its extent depends on font metrics, which are not measured, so it
// never contributes to a ViewBox.
type Text struct {
	content  string
	at       geom.Coord
	fontSize float64
}

// NewText returns a label at the given position with a font size of 10.
func NewText(content string, at geom.Coord) Text {
	return Text{content: content, at: at, fontSize: 10}
}

func (t Text) WithFontSize(size float64) Text {
	t.fontSize = size
	return t
}

func (t Text) Render(style Style) string {
	var b strings.Builder
	b.WriteString(`<text font-size="` + num(t.fontSize) + `" x="` + num(t.at.X) + `" y="` + num(t.at.Y) + `"`)
	style.writeTo(&b)
	b.WriteByte('>')
	// EscapeText only fails when the writer does
	_ = xml.EscapeText(&b, []byte(t.content))
	b.WriteString("</text>")
	return b.String()
}

func (t Text) Bounds(Style) ViewBox { return ViewBox{} }
