// Package viewport fits a source image into a drawable area.
package viewport

import (
	"fmt"
	"image"

	"github.com/srlehn/thumbcrop/resample"
)

// Placement is where and how large the (downscaled) image is drawn inside
// the viewport.
type Placement struct {
	Origin image.Point // top left corner in viewport coordinates
	Size   image.Point // displayed size
	Zoom   float64     // displayed/source, in (0, 1], 0 for a degenerate viewport
}

// Box returns the bounding box of the displayed image in viewport
// coordinates.
func (p Placement) Box() image.Rectangle {
	return image.Rectangle{Min: p.Origin, Max: p.Origin.Add(p.Size)}
}

// Percent is the zoom as a truncated percentage.
func (p Placement) Percent() int { return resample.Trunc(p.Zoom * 100) }

// Empty reports whether nothing is displayed.
func (p Placement) Empty() bool { return p.Size.X <= 0 || p.Size.Y <= 0 || p.Zoom <= 0 }

func (p Placement) String() string {
	return fmt.Sprintf(`%dx%d+%d+%d@%d%%`, p.Size.X, p.Size.Y, p.Origin.X, p.Origin.Y, p.Percent())
}

// Fit computes the placement of an image of size source centered in a
// viewport of size vp. The image is shrunk to fit but never enlarged.
//
// The centering offset uses integer division, for odd differences the
// image sits one pixel closer to the top left. The selection mapper relies
// on exactly this rounding.
func Fit(source, vp image.Point) Placement {
	if vp.X < 0 {
		vp.X = 0
	}
	if vp.Y < 0 {
		vp.Y = 0
	}
	size := resample.FitSize(source, vp)
	return Placement{
		Origin: image.Point{X: (vp.X - size.X) / 2, Y: (vp.Y - size.Y) / 2},
		Size:   size,
		Zoom:   resample.Scale(source, vp),
	}
}

// Render produces the live preview of img for the viewport with the fast
// policy of eng together with its placement.
// For a degenerate viewport or image the preview is nil and the
// placement empty, this is not an error.
func Render(img image.Image, vp image.Point, eng *resample.Engine) (image.Image, Placement, error) {
	if img == nil {
		return nil, Placement{}, nil
	}
	p := Fit(img.Bounds().Size(), vp)
	if p.Empty() {
		return nil, p, nil
	}
	preview, err := eng.FastResize(img, vp.X, vp.Y)
	if err != nil {
		return nil, p, err
	}
	return preview, p, nil
}
