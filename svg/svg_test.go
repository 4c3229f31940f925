package svg

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geosvg/geom"
)

const envelope = `<svg xmlns="http://www.w3.org/2000/svg" preserveAspectRatio="xMidYMid meet" viewBox="`

func TestTwoCirclesDocument(t *testing.T) {
	doc := FromGeometry(geom.NewPoint(0, 0)).WithRadius(10).
		And(FromGeometry(geom.NewPoint(50, 0)).WithRadius(5))

	vb := doc.ViewBox()
	assert.LessOrEqual(t, vb.MinX(), -10.0)
	assert.GreaterOrEqual(t, vb.MaxX(), 55.0)

	got := doc.String()
	want := envelope + `-11 -11 67 22"><circle cx="0" cy="0" r="10"/><circle cx="50" cy="0" r="5"/></svg>`
	assert.Equal(t, want, got)
	assert.Equal(t, 1, strings.Count(got, "<svg"))
	assert.Equal(t, 2, strings.Count(got, "<circle"))
	assert.Less(t, strings.Index(got, `cx="0"`), strings.Index(got, `cx="50"`))
}

func TestCascadeReachesEverySibling(t *testing.T) {
	nested := FromGeometry(geom.NewPoint(2, 2)).And(FromGeometry(geom.NewPoint(3, 3)))
	doc := FromGeometry(geom.NewPoint(0, 0)).
		And(FromGeometry(geom.NewPoint(1, 1))).
		And(nested).
		WithStrokeWidth(2)

	assert.Equal(t, 4, strings.Count(doc.Fragment(), `stroke-width="2"`))
	assert.Equal(t, 4, strings.Count(doc.Fragment(), "<circle"))
}

func TestCascadeKeepsUnrelatedFields(t *testing.T) {
	red := FromGeometry(geom.NewPoint(5, 5)).WithFill(Named("red")).WithRadius(3)
	doc := FromGeometry(geom.NewPoint(0, 0)).And(red).WithStrokeWidth(2)

	want := `<circle cx="0" cy="0" r="1" stroke-width="2"/>` +
		`<circle cx="5" cy="5" r="3" fill="red" stroke-width="2"/>`
	assert.Equal(t, want, doc.Fragment())
}

func TestSiblingKeepsOwnStyleUntilCascade(t *testing.T) {
	sib := FromGeometry(geom.NewPoint(1, 1)).WithRadius(7)
	doc := FromGeometry(geom.NewPoint(0, 0)).WithRadius(2).And(sib)
	assert.Equal(t, `<circle cx="0" cy="0" r="2"/><circle cx="1" cy="1" r="7"/>`, doc.Fragment())

	doc = doc.WithRadius(4)
	assert.Equal(t, `<circle cx="0" cy="0" r="4"/><circle cx="1" cy="1" r="4"/>`, doc.Fragment())
}

func TestEverySetterCascades(t *testing.T) {
	doc := FromGeometry(geom.NewPoint(0, 0)).And(FromGeometry(geom.NewPoint(1, 1))).
		WithOpacity(0.5).
		WithFill(Named("red")).
		WithFillOpacity(0.25).
		WithStrokeColor(RGB{R: 1, G: 2, B: 3}).
		WithStrokeWidth(2).
		WithStrokeOpacity(0.75)
	attrs := ` opacity="0.5" fill="red" fill-opacity="0.25" stroke="rgb(1,2,3)" stroke-width="2" stroke-opacity="0.75"`
	want := `<circle cx="0" cy="0" r="1"` + attrs + `/><circle cx="1" cy="1" r="1"` + attrs + `/>`
	assert.Equal(t, want, doc.Fragment())

	doc = doc.WithFillColor(Hex(0xFF))
	assert.Equal(t, 2, strings.Count(doc.Fragment(), `fill="0xFF"`))
}

func TestWithStyleReplacesEverywhere(t *testing.T) {
	doc := FromGeometry(geom.NewPoint(0, 0)).WithFill(Named("red")).
		And(FromGeometry(geom.NewPoint(1, 1)).WithOpacity(0.1))
	doc = doc.WithStyle(DefaultStyle().WithStroke(Named("black")))
	assert.Equal(t, `<circle cx="0" cy="0" r="1" stroke="black"/><circle cx="1" cy="1" r="1" stroke="black"/>`, doc.Fragment())
	assert.Equal(t, ` stroke="black"`, doc.Style().String())
}

func TestSettersLeaveOriginalUntouched(t *testing.T) {
	base := FromGeometry(geom.NewPoint(0, 0)).And(FromGeometry(geom.NewPoint(1, 1)))
	before := base.Fragment()
	_ = base.WithFill(Named("red"))
	_ = base.WithRadius(9)
	assert.Equal(t, before, base.Fragment())
}

func TestAndDoesNotAlias(t *testing.T) {
	base := FromGeometry(geom.NewPoint(0, 0)).And(FromGeometry(geom.NewPoint(1, 1)))
	a := base.And(FromGeometry(geom.NewPoint(2, 2)))
	b := base.And(FromGeometry(geom.NewPoint(3, 3)))
	assert.Contains(t, a.Fragment(), `cx="2"`)
	assert.NotContains(t, a.Fragment(), `cx="3"`)
	assert.Contains(t, b.Fragment(), `cx="3"`)
	assert.NotContains(t, b.Fragment(), `cx="2"`)
}

func TestViewBoxUnionsItemsAndSiblings(t *testing.T) {
	poly := geom.Polygon{Exterior: geom.LineString{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}}
	doc := FromGeometry(poly).
		And(FromGeometry(geom.NewPoint(20, 5)).WithRadius(1)).
		WithStrokeWidth(0)
	assert.Equal(t, NewViewBox(0, 0, 21, 10), doc.ViewBox())
}

func TestNodeMargin(t *testing.T) {
	poly := geom.Polygon{Exterior: geom.LineString{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}}
	doc := FromGeometry(poly).WithStrokeWidth(0).WithMargin(2)
	vb := doc.ViewBox()
	assert.Equal(t, NewViewBox(-2, -2, 12, 12), vb)
	assert.Equal(t, 14.0, vb.Width())
	assert.True(t, strings.HasPrefix(doc.String(), envelope+`-2 -2 14 14">`))
}

func TestEmptyDocument(t *testing.T) {
	doc := New().WithMargin(5)
	assert.True(t, doc.ViewBox().IsEmpty())
	assert.Equal(t, envelope+`0 0 0 0"></svg>`, doc.String())
}

func TestWithViewBoxSeeds(t *testing.T) {
	doc := New().WithViewBox(NewViewBox(0, 0, 100, 50))
	assert.Equal(t, NewViewBox(0, 0, 100, 50), doc.ViewBox())

	doc = doc.And(FromGeometry(geom.NewPoint(200, 10)))
	assert.Equal(t, NewViewBox(0, 0, 202, 50), doc.ViewBox())
}

func TestTextContributesNoBounds(t *testing.T) {
	doc := New(Shape(geom.NewPoint(0, 0)), NewText("origin", geom.Coord{X: 500, Y: 500}))
	assert.Equal(t, NewViewBox(-2, -2, 2, 2), doc.ViewBox())
	assert.Contains(t, doc.Fragment(), `<text font-size="10" x="500" y="500">origin</text>`)
}

func TestSvgNestsAsRenderer(t *testing.T) {
	inner := FromGeometry(geom.NewPoint(0, 0)).WithFill(Named("red"))
	outer := New(inner).WithStrokeWidth(3)

	want := inner.WithStyle(DefaultStyle().WithStrokeWidth(3)).String()
	assert.Equal(t, want, outer.Fragment())
	assert.Equal(t, NewViewBox(-4, -4, 4, 4), outer.ViewBox())
}

func TestWriteTo(t *testing.T) {
	doc := FromGeometry(geom.NewPoint(1, 1))
	var buf bytes.Buffer
	n, err := doc.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	assert.Equal(t, doc.String(), buf.String())
}

func TestConcurrentRendering(t *testing.T) {
	doc := FromGeometry(geom.NewPoint(0, 0)).And(FromGeometry(geom.LineString{{X: 0, Y: 0}, {X: 5, Y: 5}}))
	want := doc.String()
	var wg sync.WaitGroup
	results := make([]string, 8)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = doc.WithStrokeWidth(float64(i)).WithStyle(doc.Style()).String()
		}()
	}
	wg.Wait()
	for _, got := range results {
		assert.Equal(t, want, got)
	}
}
