package main

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/thumbcrop/internal/consts"
	"github.com/srlehn/thumbcrop/internal/errors"
)

func TestParseSize(t *testing.T) {
	sz, err := parseSize(`800x600`)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(800, 600), sz)

	sz, err = parseSize(` 0X0 `)
	require.NoError(t, err)
	assert.Equal(t, image.Point{}, sz)

	for _, s := range []string{``, `800`, `x600`, `800x`, `-1x5`, `axb`} {
		_, err := parseSize(s)
		assert.Error(t, err, s)
	}
}

func TestParseTargetSize(t *testing.T) {
	sz, err := parseTargetSize(`999x1`)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(999, 1), sz)

	for _, s := range []string{`0x200`, `1000x200`, `200x0`} {
		_, err := parseTargetSize(s)
		assert.True(t, errors.Is(err, consts.ErrInvalidSize), s)
	}
}

func TestParseRect(t *testing.T) {
	r, err := parseRect(`300, 200,100,100`)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(100, 100, 300, 200), r)

	r, err = parseRect(`-10,-10,20,20`)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(-10, -10, 20, 20), r)

	_, err = parseRect(`1,2,3`)
	assert.Error(t, err)
}
