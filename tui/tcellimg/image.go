// Package tcellimg draws images onto a tcell screen with half block cells.
package tcellimg

import (
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"
)

// HalfBlock is drawn with the lower pixel as foreground and the upper one
// as background.
const HalfBlock = '▄'

// Canvas maps a pixel area onto screen cells, each cell covers one pixel
// column and two pixel rows.
type Canvas struct {
	scr        tcell.Screen
	cols, rows int
	Background tcell.Color
}

// NewCanvas returns a canvas over the top cols x rows cells of scr.
func NewCanvas(scr tcell.Screen, cols, rows int) *Canvas {
	return &Canvas{scr: scr, cols: max(cols, 0), rows: max(rows, 0), Background: tcell.ColorBlack}
}

// PixelSize is the drawable area in pixels.
func (c *Canvas) PixelSize() image.Point {
	if c == nil {
		return image.Point{}
	}
	return image.Point{X: c.cols, Y: 2 * c.rows}
}

// CellRect returns the pixels covered by the cell at col, row.
func CellRect(col, row int) image.Rectangle {
	return image.Rect(col, 2*row, col+1, 2*row+2)
}

// Draw paints img with its top left corner at pixel origin. Cells whose
// pixels touch highlight are drawn inverted.
func (c *Canvas) Draw(img image.Image, origin image.Point, highlight *image.Rectangle) {
	if c == nil || c.scr == nil {
		return
	}
	var b image.Rectangle
	if img != nil {
		b = img.Bounds()
	}
	at := func(x, y int) tcell.Color {
		p := image.Point{X: x, Y: y}.Sub(origin).Add(b.Min)
		if img == nil || !p.In(b) {
			return c.Background
		}
		return tcellColor(img.At(p.X, p.Y))
	}
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			bg := at(col, 2*row)
			fg := at(col, 2*row+1)
			rn := HalfBlock
			if fg == bg {
				rn = ' '
			}
			st := tcell.StyleDefault.Foreground(fg).Background(bg)
			if highlight != nil && CellRect(col, row).Overlaps(*highlight) {
				st = st.Reverse(true)
			}
			c.scr.SetContent(col, row, rn, nil, st)
		}
	}
}

func tcellColor(c color.Color) tcell.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	// transparency over black
	a := int32(n.A)
	return tcell.NewRGBColor(int32(n.R)*a/0xff, int32(n.G)*a/0xff, int32(n.B)*a/0xff)
}
