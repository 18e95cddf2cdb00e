package export_test

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/thumbcrop/export"
	"github.com/srlehn/thumbcrop/internal/consts"
	"github.com/srlehn/thumbcrop/internal/encoder/encmulti"
	"github.com/srlehn/thumbcrop/internal/errors"
	"github.com/srlehn/thumbcrop/internal/testutil"
	"github.com/srlehn/thumbcrop/raster"
	"github.com/srlehn/thumbcrop/resample"
	"github.com/srlehn/thumbcrop/resize"
	"github.com/srlehn/thumbcrop/viewport"
)

func newPipeline(t *testing.T, opts ...export.Option) *export.Pipeline {
	t.Helper()
	eng, err := resize.Engine(`nearest`, `lanczos`)
	require.NoError(t, err)
	p, err := export.New(append([]export.Option{export.SetEngine(eng)}, opts...)...)
	require.NoError(t, err)
	return p
}

func TestNormalizePath(t *testing.T) {
	tests := map[string]string{
		`thumb.jpg`:  `thumb.jpg`,
		`thumb.JPG`:  `thumb.JPG`,
		`thumb.jpeg`: `thumb.jpeg`,
		`thumb.png`:  `thumb.png`,
		`thumb`:      `thumb.jpg`,
		`thumb.gif`:  `thumb.gif.jpg`,
		`dir.d/a`:    `dir.d/a.jpg`,
	}
	for in, want := range tests {
		assert.Equal(t, want, export.NormalizePath(in), in)
	}
}

func TestThumbnailWithoutSelection(t *testing.T) {
	src := raster.FromImage(testutil.Gradient(4000, 3000))
	pl := viewport.Fit(src.Size(), image.Pt(800, 600))
	p := newPipeline(t)

	thumb, err := p.Thumbnail(context.Background(), src, pl, nil, export.Target{Path: `x.jpg`, Width: 200, Height: 200})
	require.NoError(t, err)
	assert.Equal(t, image.Pt(200, 150), thumb.Bounds().Size())
}

func TestThumbnailWithSelection(t *testing.T) {
	src := raster.FromImage(testutil.Gradient(4000, 3000))
	pl := viewport.Fit(src.Size(), image.Pt(800, 600))
	p := newPipeline(t)

	sel := image.Rect(100, 100, 300, 200)
	cropped, err := p.Crop(src, pl, &sel)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(1000, 500), cropped.Size())

	thumb, err := p.Thumbnail(context.Background(), src, pl, &sel, export.Target{Path: `x.png`, Width: 200, Height: 200})
	require.NoError(t, err)
	assert.Equal(t, image.Pt(200, 100), thumb.Bounds().Size())
}

type recordingResizer struct {
	name  string
	calls *[]string
}

func (r recordingResizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	*r.calls = append(*r.calls, fmt.Sprintf(`%s:%v->%v`, r.name, img.Bounds().Size(), size))
	return image.NewNRGBA(image.Rectangle{Max: size}), nil
}

func TestThumbnailPrePassBound(t *testing.T) {
	var calls []string
	eng := resample.NewEngine(recordingResizer{`fast`, &calls}, recordingResizer{`quality`, &calls})
	p, err := export.New(export.SetEngine(eng))
	require.NoError(t, err)
	tgt := export.Target{Path: `x.jpg`, Width: 200, Height: 200}

	src := raster.FromImage(testutil.Gradient(4000, 3000))
	thumb, err := p.Thumbnail(context.Background(), src, viewport.Fit(src.Size(), image.Pt(800, 600)), nil, tgt)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(200, 150), thumb.Bounds().Size())
	assert.Equal(t, []string{`fast:(4000,3000)->(400,300)`, `quality:(400,300)->(200,150)`}, calls)

	// at most twice the target goes straight to the quality resizer
	calls = nil
	src = raster.FromImage(testutil.Gradient(400, 300))
	_, err = p.Thumbnail(context.Background(), src, viewport.Fit(src.Size(), image.Pt(800, 600)), nil, tgt)
	require.NoError(t, err)
	assert.Equal(t, []string{`quality:(400,300)->(200,150)`}, calls)
}

func TestThumbnailSmallCropIsNotEnlarged(t *testing.T) {
	src := raster.FromImage(testutil.Gradient(120, 80))
	pl := viewport.Fit(src.Size(), image.Pt(800, 600))
	p := newPipeline(t)

	thumb, err := p.Thumbnail(context.Background(), src, pl, nil, export.Target{Path: `x.jpg`, Width: 200, Height: 200})
	require.NoError(t, err)
	assert.Equal(t, image.Pt(120, 80), thumb.Bounds().Size())
}

func TestThumbnailInvalidTarget(t *testing.T) {
	src := raster.FromImage(testutil.Gradient(40, 30))
	pl := viewport.Fit(src.Size(), image.Pt(40, 30))
	p := newPipeline(t)

	_, err := p.Thumbnail(context.Background(), src, pl, nil, export.Target{Path: `x.jpg`, Width: 0, Height: 200})
	assert.True(t, errors.Is(err, consts.ErrEncode), err)
}

func TestPreview(t *testing.T) {
	src := raster.FromImage(testutil.Gradient(1000, 500))
	pl := viewport.Fit(src.Size(), image.Pt(1000, 500))
	p := newPipeline(t)

	prev, err := p.Preview(src, pl, nil)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(consts.PreviewSide, 100), prev.Bounds().Size())
}

func TestExport(t *testing.T) {
	dir := t.TempDir()
	src := raster.FromImage(testutil.Gradient(640, 480))
	pl := viewport.Fit(src.Size(), image.Pt(320, 240))

	p := newPipeline(t)
	path, err := p.Export(context.Background(), src, pl, nil, export.Target{Path: filepath.Join(dir, `thumb`), Width: 100, Height: 100})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, `thumb.jpg`), path)

	cfg, format := testutil.DecodeConfigFile(t, path)
	assert.Equal(t, `jpeg`, format)
	assert.Equal(t, 100, cfg.Width)
	assert.Equal(t, 75, cfg.Height)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	if assert.Len(t, entries, 1) {
		assert.False(t, strings.HasSuffix(entries[0].Name(), `.tmp`))
	}
}

func TestExportOverwrite(t *testing.T) {
	dir := t.TempDir()
	dst := filepath.Join(dir, `thumb.png`)
	src := raster.FromImage(testutil.Translucent(300, 300))
	pl := viewport.Fit(src.Size(), image.Pt(300, 300))
	tgt := export.Target{Path: dst, Width: 50, Height: 50}

	_, err := newPipeline(t).Export(context.Background(), src, pl, nil, tgt)
	require.NoError(t, err)
	first, err := os.ReadFile(dst)
	require.NoError(t, err)

	_, err = newPipeline(t).Export(context.Background(), src, pl, nil, tgt)
	assert.True(t, errors.Is(err, consts.ErrExists), err)

	_, err = newPipeline(t, export.SetOverwrite(true)).Export(context.Background(), src, pl, nil, tgt)
	require.NoError(t, err)
	second, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(first, second), `same input must give identical files`)
}

// racingEncoder creates the destination while the thumbnail is encoded.
type racingEncoder struct {
	dst string
}

func (e racingEncoder) Encode(w io.Writer, img image.Image, fileExt string) error {
	if err := os.WriteFile(e.dst, []byte(`other`), 0o644); err != nil {
		return err
	}
	return (&encmulti.MultiEncoder{}).Encode(w, img, fileExt)
}

func TestExportKeepsFileCreatedDuringWrite(t *testing.T) {
	dir := t.TempDir()
	dst := filepath.Join(dir, `thumb.png`)
	src := raster.FromImage(testutil.Gradient(60, 60))
	pl := viewport.Fit(src.Size(), image.Pt(60, 60))

	p := newPipeline(t, export.SetEncoder(racingEncoder{dst: dst}))
	_, err := p.Export(context.Background(), src, pl, nil, export.Target{Path: dst, Width: 20, Height: 20})
	assert.True(t, errors.Is(err, consts.ErrExists), err)

	b, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, `other`, string(b))
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, `temporary file removed`)
}

func TestExportUnwritableDir(t *testing.T) {
	src := raster.FromImage(testutil.Gradient(30, 30))
	pl := viewport.Fit(src.Size(), image.Pt(30, 30))
	dst := filepath.Join(t.TempDir(), `missing`, `thumb.jpg`)

	_, err := newPipeline(t).Export(context.Background(), src, pl, nil, export.Target{Path: dst, Width: 10, Height: 10})
	assert.True(t, errors.Is(err, consts.ErrWrite), err)
}

func TestExportCanceled(t *testing.T) {
	dir := t.TempDir()
	src := raster.FromImage(testutil.Gradient(30, 30))
	pl := viewport.Fit(src.Size(), image.Pt(30, 30))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newPipeline(t).Export(ctx, src, pl, nil, export.Target{Path: filepath.Join(dir, `t.jpg`), Width: 10, Height: 10})
	assert.ErrorIs(t, err, context.Canceled)
	entries, _ := os.ReadDir(dir)
	assert.Empty(t, entries)
}

func TestPipelineWithoutEngine(t *testing.T) {
	p, err := export.New()
	require.NoError(t, err)
	_, err = p.Preview(raster.Placeholder(), viewport.Placement{}, nil)
	assert.Error(t, err)
}
