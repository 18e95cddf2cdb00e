package resize_test

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/thumbcrop/internal/testutil"
	"github.com/srlehn/thumbcrop/resize"
)

func TestBackendsResizeExactly(t *testing.T) {
	src := testutil.Translucent(90, 60)
	want := image.Pt(31, 17)
	for _, name := range resize.Names() {
		rsz, err := resize.ByName(name)
		require.NoError(t, err, name)
		m, err := rsz.Resize(src, want)
		require.NoError(t, err, name)
		assert.Equal(t, want, m.Bounds().Size(), name)
	}
}

func TestByName(t *testing.T) {
	_, err := resize.ByName(` Lanczos `)
	assert.NoError(t, err)
	_, err = resize.ByName(`seam-carving`)
	assert.ErrorContains(t, err, `nearest`)
	assert.Contains(t, resize.Names(), `default`)
}

func TestEngine(t *testing.T) {
	eng, err := resize.Engine(`nearest`, `gift-lanczos`)
	require.NoError(t, err)
	m, err := eng.QualityResize(testutil.Gradient(400, 200), 100, 100)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(100, 50), m.Bounds().Size())

	_, err = resize.Engine(`nearest`, `nope`)
	assert.Error(t, err)
}
