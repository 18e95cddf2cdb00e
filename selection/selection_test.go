package selection_test

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/srlehn/thumbcrop/selection"
	"github.com/srlehn/thumbcrop/viewport"
)

var (
	source = image.Pt(4000, 3000)
	fitted = viewport.Fit(source, image.Pt(800, 600))
)

func TestMapNoSelection(t *testing.T) {
	assert.Equal(t, image.Rect(0, 0, 4000, 3000), selection.Map(nil, fitted, source))

	empty := image.Rect(10, 10, 10, 50)
	assert.Equal(t, image.Rect(0, 0, 4000, 3000), selection.Map(&empty, fitted, source))
}

func TestMapSelection(t *testing.T) {
	sel := image.Rect(50, 50, 750, 550)
	assert.Equal(t, image.Rect(250, 250, 3750, 2750), selection.Map(&sel, fitted, source))
}

func TestMapInverted(t *testing.T) {
	sel := image.Rectangle{Min: image.Pt(750, 550), Max: image.Pt(50, 50)}
	got := selection.Map(&sel, fitted, source)
	assert.Equal(t, image.Rect(250, 250, 3750, 2750), got)
	assert.Positive(t, got.Dx())
}

func TestMapCentered(t *testing.T) {
	// 300x400 shown unscaled at 250,100 inside 800x600
	src := image.Pt(300, 400)
	p := viewport.Fit(src, image.Pt(800, 600))

	sel := image.Rect(260, 110, 360, 210)
	assert.Equal(t, image.Rect(10, 10, 110, 110), selection.Map(&sel, p, src))

	// edges beyond the displayed image are clamped to it
	sel = image.Rect(0, 0, 300, 300)
	assert.Equal(t, image.Rect(0, 0, 50, 200), selection.Map(&sel, p, src))
}

func TestMapOutsideFallsBackToFull(t *testing.T) {
	src := image.Pt(300, 400)
	p := viewport.Fit(src, image.Pt(800, 600))
	sel := image.Rect(0, 0, 100, 100)
	assert.Equal(t, image.Rect(0, 0, 300, 400), selection.Map(&sel, p, src))
}

func TestMapDegeneratePlacement(t *testing.T) {
	p := viewport.Fit(source, image.Point{})
	sel := image.Rect(1, 1, 5, 5)
	assert.Equal(t, image.Rect(0, 0, 4000, 3000), selection.Map(&sel, p, source))
}

func TestFull(t *testing.T) {
	// 1000/333 truncation may drop the last source pixels
	src := image.Pt(1000, 1000)
	p := viewport.Fit(src, image.Pt(333, 500))
	full := selection.Full(p, src)
	assert.True(t, full.In(image.Rectangle{Max: src}))
	assert.GreaterOrEqual(t, full.Dx(), 999)
}

func TestMapClamps(t *testing.T) {
	bounds := image.Rectangle{Max: source}
	sels := []image.Rectangle{
		image.Rect(-100, -100, 100, 100),
		image.Rect(700, 500, 2000, 2000),
		image.Rect(-50, -50, -10, -10),
		image.Rect(900, 0, 1000, 600),
		image.Rect(799, 599, 800, 600),
		{Min: image.Pt(5000, 5000), Max: image.Pt(-5000, -5000)},
	}
	for _, sel := range sels {
		got := selection.Map(&sel, fitted, source)
		assert.False(t, got.Empty(), sel)
		assert.True(t, got.In(bounds), `%v -> %v`, sel, got)
		assert.LessOrEqual(t, 0, got.Min.X)
		assert.LessOrEqual(t, got.Min.X, got.Max.X)
		assert.LessOrEqual(t, got.Max.Y, source.Y)
	}
}
