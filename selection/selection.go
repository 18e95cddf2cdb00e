// Package selection maps a rectangle drawn over the preview back into
// source image pixels.
package selection

import (
	"image"

	"github.com/srlehn/thumbcrop/resample"
	"github.com/srlehn/thumbcrop/viewport"
)

// Map converts sel, given in viewport coordinates, into source pixel
// coordinates for an image of size source displayed with placement p.
//
// A nil or empty selection selects the whole displayed image. Inverted
// rectangles are normalized, edges beyond the displayed image are clamped
// to it. A result without area falls back to the whole displayed image, so
// the returned rectangle can always be cropped unless the source itself is
// empty.
func Map(sel *image.Rectangle, p viewport.Placement, source image.Point) image.Rectangle {
	full := Full(p, source)
	if sel == nil {
		return full
	}
	r := sel.Canon()
	if r.Empty() || p.Empty() {
		return full
	}
	// Intersect clamps each edge into the bounding box, a selection
	// completely outside of it ends up empty.
	r = r.Intersect(p.Box())
	if r.Empty() {
		return full
	}
	r = toSource(r.Sub(p.Origin), p.Zoom).Intersect(bounds(source))
	if r.Empty() {
		return full
	}
	return r
}

// Full returns the source rectangle covered by the whole displayed image.
func Full(p viewport.Placement, source image.Point) image.Rectangle {
	b := bounds(source)
	if p.Empty() {
		return b
	}
	r := toSource(image.Rectangle{Max: p.Size}, p.Zoom).Intersect(b)
	if r.Empty() {
		return b
	}
	return r
}

// toSource divides r, relative to the displayed image, by zoom truncating
// toward zero.
func toSource(r image.Rectangle, zoom float64) image.Rectangle {
	return image.Rect(
		resample.Trunc(float64(r.Min.X)/zoom),
		resample.Trunc(float64(r.Min.Y)/zoom),
		resample.Trunc(float64(r.Max.X)/zoom),
		resample.Trunc(float64(r.Max.Y)/zoom),
	)
}

func bounds(source image.Point) image.Rectangle {
	if source.X < 0 || source.Y < 0 {
		return image.Rectangle{}
	}
	return image.Rectangle{Max: source}
}
