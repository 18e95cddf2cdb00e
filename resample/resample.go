// Package resample implements the proportional, shrink-only resize policies.
//
// Both policies use the same size rule: the image is scaled by
// min(boundW/w, boundH/h, 1) and each side is truncated, so they never
// change the aspect ratio beyond integer rounding and never enlarge.
// The fast policy is meant for live previews and as a pre-pass, the quality
// policy for the final export step.
package resample

import (
	"image"
	"math"

	"github.com/srlehn/thumbcrop/internal/consts"
	"github.com/srlehn/thumbcrop/internal/errors"
)

// Resizer resizes images to exactly the requested size.
type Resizer interface {
	Resize(img image.Image, size image.Point) (image.Image, error)
}

// eps absorbs float noise before truncation, e.g. 4000*0.2 must give 800.
const eps = 1e-9

// Trunc truncates v toward zero after adding a small guard against
// representation error.
func Trunc(v float64) int {
	if v < 0 {
		return -int(math.Floor(-v + eps))
	}
	return int(math.Floor(v + eps))
}

// Scale returns min(bound.X/src.X, bound.Y/src.Y, 1).
// Degenerate sizes yield 0.
func Scale(src, bound image.Point) float64 {
	if src.X <= 0 || src.Y <= 0 || bound.X <= 0 || bound.Y <= 0 {
		return 0
	}
	return math.Min(math.Min(float64(bound.X)/float64(src.X), float64(bound.Y)/float64(src.Y)), 1)
}

// FitSize returns the size src is shrunk to when bounded by bound.
// Each side is at least 1 pixel for positive inputs, degenerate inputs give
// the zero point.
func FitSize(src, bound image.Point) image.Point {
	scale := Scale(src, bound)
	if scale <= 0 {
		return image.Point{}
	}
	if scale >= 1 {
		return src
	}
	sz := image.Point{
		X: Trunc(float64(src.X) * scale),
		Y: Trunc(float64(src.Y) * scale),
	}
	if sz.X < 1 {
		sz.X = 1
	}
	if sz.Y < 1 {
		sz.Y = 1
	}
	return sz
}

// NeedsPrePass reports whether the cropped size exceeds the pre-pass
// threshold for target in either dimension.
func NeedsPrePass(cropped, target image.Point) bool {
	return cropped.X > consts.PrePassFactor*target.X || cropped.Y > consts.PrePassFactor*target.Y
}

// Engine applies the fast and the quality policy with the configured
// resizers.
type Engine struct {
	Fast    Resizer
	Quality Resizer
}

// NewEngine ...
func NewEngine(fast, quality Resizer) *Engine {
	return &Engine{Fast: fast, Quality: quality}
}

// FastResize shrinks img proportionally into boundW x boundH with the cheap
// resizer. An image that already fits is returned as is.
func (e *Engine) FastResize(img image.Image, boundW, boundH int) (image.Image, error) {
	if e == nil {
		return nil, errors.NilReceiver()
	}
	return fit(e.Fast, img, boundW, boundH)
}

// QualityResize shrinks img proportionally into boundW x boundH with the
// filtering resizer. An image that already fits is returned as is.
func (e *Engine) QualityResize(img image.Image, boundW, boundH int) (image.Image, error) {
	if e == nil {
		return nil, errors.NilReceiver()
	}
	return fit(e.Quality, img, boundW, boundH)
}

func fit(rsz Resizer, img image.Image, boundW, boundH int) (image.Image, error) {
	if rsz == nil {
		return nil, errors.NilParam()
	}
	if img == nil {
		return nil, errors.New(consts.ErrNilImage)
	}
	if boundW <= 0 || boundH <= 0 {
		return nil, errors.Kind(consts.ErrInvalidSize, errors.Errorf(`bound %dx%d`, boundW, boundH))
	}
	src := img.Bounds().Size()
	if src.X <= 0 || src.Y <= 0 {
		return nil, errors.Kind(consts.ErrInvalidSize, `empty image`)
	}
	size := FitSize(src, image.Point{X: boundW, Y: boundH})
	if size == src {
		return img, nil
	}
	m, err := rsz.Resize(img, size)
	if err != nil {
		return nil, errors.New(err)
	}
	if m == nil {
		return nil, errors.New(consts.ErrNilImage)
	}
	if got := m.Bounds().Size(); got != size {
		return nil, errors.Kind(consts.ErrInvalidSize, errors.Errorf(`resizer returned %dx%d, want %dx%d`, got.X, got.Y, size.X, size.Y))
	}
	return m, nil
}
