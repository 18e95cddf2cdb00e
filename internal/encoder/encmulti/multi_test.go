package encmulti_test

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/thumbcrop/internal/encoder"
	"github.com/srlehn/thumbcrop/internal/encoder/encmulti"
	"github.com/srlehn/thumbcrop/internal/testutil"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, `png`, encoder.Format(`.PNG`))
	assert.Equal(t, `jpg`, encoder.Format(`jpg`))
	assert.Equal(t, `jpeg`, encoder.Format(`/tmp/a.b/thumb.jpeg`))
}

func TestEncodePNG(t *testing.T) {
	var buf bytes.Buffer
	enc := &encmulti.MultiEncoder{}
	src := testutil.Translucent(20, 10)
	require.NoError(t, enc.Encode(&buf, src, `.png`))

	m, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(20, 10), m.Bounds().Size())
	_, _, _, a := m.At(3, 3).RGBA()
	assert.Equal(t, uint32(0x8080), a, `alpha is kept`)
}

func TestEncodeJPEGFlattensOnWhite(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 16, 16)) // fully transparent
	var buf bytes.Buffer
	require.NoError(t, (&encmulti.MultiEncoder{JPEGQuality: 100}).Encode(&buf, src, `thumb.jpg`))

	m, err := jpeg.Decode(&buf)
	require.NoError(t, err)
	r, g, b, _ := m.At(8, 8).RGBA()
	assert.Greater(t, r, uint32(0xf000))
	assert.Greater(t, g, uint32(0xf000))
	assert.Greater(t, b, uint32(0xf000))

	buf.Reset()
	enc := &encmulti.MultiEncoder{Background: color.Black}
	require.NoError(t, enc.Encode(&buf, src, `thumb.jpeg`))
	m, err = jpeg.Decode(&buf)
	require.NoError(t, err)
	r, _, _, _ = m.At(8, 8).RGBA()
	assert.Less(t, r, uint32(0x1000))
}

func TestEncodeUnknownExtIsJPEG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&encmulti.MultiEncoder{}).Encode(&buf, testutil.Gradient(8, 8), `.bmp`))
	_, format, err := image.DecodeConfig(&buf)
	require.NoError(t, err)
	assert.Equal(t, `jpeg`, format)
}

func TestEncodeErrors(t *testing.T) {
	var buf bytes.Buffer
	enc := &encmulti.MultiEncoder{}
	assert.Error(t, enc.Encode(&buf, nil, `.png`))
	assert.Error(t, enc.Encode(nil, testutil.Gradient(1, 1), `.png`))
	assert.Error(t, enc.Encode(&buf, image.NewNRGBA(image.Rectangle{}), `.png`))
}

func TestEncodeDeterministic(t *testing.T) {
	src := testutil.Gradient(64, 48)
	var a, b bytes.Buffer
	enc := &encmulti.MultiEncoder{}
	require.NoError(t, enc.Encode(&a, src, `.jpg`))
	require.NoError(t, enc.Encode(&b, src, `.jpg`))
	assert.Equal(t, a.Bytes(), b.Bytes())
}
