// Package view holds the interactive state of the thumbnail tool: the file
// list, the loaded image, its fitted preview and the current selection.
package view

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/srlehn/thumbcrop/export"
	"github.com/srlehn/thumbcrop/internal/consts"
	"github.com/srlehn/thumbcrop/internal/errors"
	"github.com/srlehn/thumbcrop/internal/logx"
	"github.com/srlehn/thumbcrop/raster"
	"github.com/srlehn/thumbcrop/resample"
	"github.com/srlehn/thumbcrop/viewport"
)

// State is a consistent copy of the controller state.
type State struct {
	Image     *raster.Image
	Display   image.Image // fast preview drawn at Placement, nil if nothing fits
	Viewport  image.Point
	Placement viewport.Placement
	Selection *image.Rectangle // viewport coordinates, nil for none
	Path      string
	Index     int
	Count     int
	Loaded    bool
}

// Controller sequences loads, refits, rotations, selections and exports.
// Its methods are safe for concurrent use.
type Controller struct {
	mu       sync.RWMutex
	st       State
	paths    []string
	engine   *resample.Engine
	pipeline *export.Pipeline
	logger   *slog.Logger
	decOpts  []raster.Option
}

var _ logx.LoggerProvider = (*Controller)(nil)

// New returns a controller that shows the placeholder image until a file
// is loaded.
func New(eng *resample.Engine, pipeline *export.Pipeline, opts ...Option) (*Controller, error) {
	if err := errors.NilParam(eng, pipeline); err != nil {
		return nil, err
	}
	c := &Controller{
		engine:   eng,
		pipeline: pipeline,
		st:       State{Image: raster.Placeholder()},
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.ApplyOption(c); err != nil {
			return nil, errors.New(err)
		}
	}
	return c, nil
}

// Logger ...
func (c *Controller) Logger() *slog.Logger {
	if c == nil {
		return nil
	}
	return c.logger
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() State {
	if c == nil {
		return State{}
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	st := c.st
	if st.Selection != nil {
		sel := *st.Selection
		st.Selection = &sel
	}
	return st
}

// Open replaces the file list and loads its first entry. If that fails the
// previous list and image stay in place.
func (c *Controller) Open(paths []string) error {
	if err := errors.NilReceiver(c); err != nil {
		return err
	}
	if len(paths) == 0 {
		return errors.Kind(consts.ErrNoImage, `empty file list`)
	}
	img, err := c.decode(paths[0])
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.paths = append([]string(nil), paths...)
	c.st.Count = len(c.paths)
	return c.showLocked(img, 0)
}

// Next loads the following file. After the last one it starts over at the
// first and reports wrapped.
func (c *Controller) Next() (wrapped bool, err error) {
	if err := errors.NilReceiver(c); err != nil {
		return false, err
	}
	c.mu.RLock()
	n := len(c.paths)
	idx := c.st.Index + 1
	c.mu.RUnlock()
	if n == 0 {
		return false, errors.Kind(consts.ErrNoImage, `empty file list`)
	}
	if idx >= n {
		idx = 0
		wrapped = true
		logx.Info(`end of file list, restarting`, c)
	}
	return wrapped, c.Load(idx)
}

// Load decodes the file at index of the list. On failure the current image
// stays in place and the error is returned.
func (c *Controller) Load(index int) error {
	if err := errors.NilReceiver(c); err != nil {
		return err
	}
	c.mu.RLock()
	if index < 0 || index >= len(c.paths) {
		c.mu.RUnlock()
		return errors.Kind(consts.ErrNoImage, fmt.Sprintf(`index %d out of range`, index))
	}
	path := c.paths[index]
	c.mu.RUnlock()

	img, err := c.decode(path)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if index >= len(c.paths) || c.paths[index] != path {
		return errors.Kind(consts.ErrNoImage, `file list changed during load`)
	}
	return c.showLocked(img, index)
}

func (c *Controller) decode(path string) (*raster.Image, error) {
	img, err := logx.TimeIt2(func() (*raster.Image, error) {
		return raster.DecodeFile(path, c.decOpts...)
	}, `decode`, c, `path`, path)
	if err != nil {
		logx.IsErr(err, c, slog.LevelWarn, `path`, path)
		return nil, err
	}
	return img, nil
}

func (c *Controller) showLocked(img *raster.Image, index int) error {
	c.st.Image = img
	c.st.Path = img.FileName
	c.st.Index = index
	c.st.Loaded = true
	c.st.Selection = nil
	return c.refitLocked()
}

// SetImage shows img as if it had been loaded from a file.
func (c *Controller) SetImage(img *raster.Image) error {
	if err := errors.NilReceiver(c); err != nil {
		return err
	}
	if img == nil {
		return errors.New(consts.ErrNilImage)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.st.Image = img
	c.st.Path = img.FileName
	c.st.Loaded = true
	c.st.Selection = nil
	return c.refitLocked()
}

// Resize sets the viewport size, clears the selection and refits before
// returning.
func (c *Controller) Resize(vp image.Point) error {
	if err := errors.NilReceiver(c); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.st.Viewport = vp
	c.st.Selection = nil
	return c.refitLocked()
}

// RotateRight rotates the image by 90° clockwise and refits it.
func (c *Controller) RotateRight() error {
	if err := errors.NilReceiver(c); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.st.Selection = nil
	c.st.Image = c.st.Image.RotateRight90()
	return c.refitLocked()
}

// Select sets the selection in viewport coordinates.
func (c *Controller) Select(r image.Rectangle) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	r = r.Canon()
	c.st.Selection = &r
}

// ClearSelection ...
func (c *Controller) ClearSelection() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.st.Selection = nil
}

// Preview returns the low quality preview of what Export would write.
func (c *Controller) Preview() (image.Image, error) {
	st, err := c.loaded()
	if err != nil {
		return nil, err
	}
	return c.pipeline.Preview(st.Image, st.Placement, st.Selection)
}

// Export writes the thumbnail of the current selection.
func (c *Controller) Export(ctx context.Context, t export.Target) (string, error) {
	st, err := c.loaded()
	if err != nil {
		return ``, err
	}
	return c.pipeline.Export(ctx, st.Image, st.Placement, st.Selection, t)
}

// Status returns "path - i/n" for the loaded file.
func (c *Controller) Status() string {
	st := c.Snapshot()
	if !st.Loaded {
		return ``
	}
	name := st.Path
	if len(name) == 0 {
		name = `image`
	}
	if st.Count == 0 {
		return name
	}
	return fmt.Sprintf(`%s - %d/%d`, name, st.Index+1, st.Count)
}

// ZoomText returns "Zoom: N%".
func (c *Controller) ZoomText() string {
	return fmt.Sprintf(`Zoom: %d%%`, c.Snapshot().Placement.Percent())
}

// BaseName returns the file name of the loaded image.
func (c *Controller) BaseName() string {
	if p := c.Snapshot().Path; len(p) > 0 {
		return filepath.Base(p)
	}
	return ``
}

func (c *Controller) loaded() (State, error) {
	if c == nil {
		return State{}, errors.NilReceiver()
	}
	st := c.Snapshot()
	if !st.Loaded {
		return st, errors.New(consts.ErrNoImage)
	}
	return st, nil
}

func (c *Controller) refitLocked() error {
	display, pl, err := viewport.Render(c.st.Image, c.st.Viewport, c.engine)
	c.st.Placement = pl
	c.st.Display = display
	if err != nil {
		return err
	}
	logx.Debug(`refit`, c, `viewport`, c.st.Viewport.String(), `placement`, pl.String())
	return nil
}
