package main

import (
	"image"
	"strconv"
	"strings"

	"github.com/srlehn/thumbcrop/internal/consts"
	"github.com/srlehn/thumbcrop/internal/errors"
)

// parseSize parses "<w>x<h>".
func parseSize(s string) (image.Point, error) {
	parts := strings.SplitN(strings.ToLower(strings.TrimSpace(s)), `x`, 2)
	if len(parts) != 2 {
		return image.Point{}, errors.New(`size not "<w>x<h>": ` + s)
	}
	var vals [2]int
	for i, part := range parts {
		v, err := strconv.ParseUint(part, 10, 31)
		if err != nil {
			return image.Point{}, errors.New(`size not "<w>x<h>": ` + s)
		}
		vals[i] = int(v)
	}
	return image.Point{X: vals[0], Y: vals[1]}, nil
}

// parseTargetSize parses a thumbnail size, each side 1 to 999.
func parseTargetSize(s string) (image.Point, error) {
	sz, err := parseSize(s)
	if err != nil {
		return sz, err
	}
	if sz.X < 1 || sz.Y < 1 || sz.X > consts.TargetSideMax || sz.Y > consts.TargetSideMax {
		return image.Point{}, errors.Kind(consts.ErrInvalidSize, errors.Errorf(`thumbnail size %s, sides must be 1 to %d`, s, consts.TargetSideMax))
	}
	return sz, nil
}

// parseRect parses "<x0>,<y0>,<x1>,<y1>". The corners can be given in any
// order, like a drag in any direction.
func parseRect(s string) (image.Rectangle, error) {
	parts := strings.Split(strings.TrimSpace(s), `,`)
	if len(parts) != 4 {
		return image.Rectangle{}, errors.New(`selection not "<x0>,<y0>,<x1>,<y1>": ` + s)
	}
	var vals [4]int
	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return image.Rectangle{}, errors.New(`selection not "<x0>,<y0>,<x1>,<y1>": ` + s)
		}
		vals[i] = v
	}
	return image.Rect(vals[0], vals[1], vals[2], vals[3]), nil
}
