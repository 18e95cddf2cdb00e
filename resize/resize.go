// Package resize maps resizer names to the available backends.
package resize

import (
	"sort"
	"strings"

	"github.com/srlehn/thumbcrop/internal/errors"
	"github.com/srlehn/thumbcrop/resample"
	"github.com/srlehn/thumbcrop/resize/bild"
	"github.com/srlehn/thumbcrop/resize/gift"
	"github.com/srlehn/thumbcrop/resize/imaging"
	"github.com/srlehn/thumbcrop/resize/nfnt"
	"github.com/srlehn/thumbcrop/resize/rdefault"
	"github.com/srlehn/thumbcrop/resize/rez"
	"github.com/srlehn/thumbcrop/resize/xdraw"
)

var backends = map[string]func() resample.Resizer{
	`nearest`:         xdraw.NearestNeighbor,
	`approx-bilinear`: xdraw.ApproxBiLinear,
	`bilinear`:        xdraw.BiLinear,
	`catmull-rom`:     xdraw.CatmullRom,
	`box`:             func() resample.Resizer { return imaging.Box() },
	`lanczos`:         func() resample.Resizer { return imaging.Lanczos() },
	`gift-lanczos`:    func() resample.Resizer { return &gift.Resizer{} },
	`nfnt-lanczos3`:   func() resample.Resizer { return nfnt.Lanczos3() },
	`nfnt-nearest`:    func() resample.Resizer { return nfnt.NearestNeighbor() },
	`rez-bilinear`:    func() resample.Resizer { return &rez.Resizer{} },
	`bild-lanczos`:    func() resample.Resizer { return &bild.Resizer{} },
	`default`:         func() resample.Resizer { return &rdefault.Resizer{} },
}

// ByName returns a new resizer for the backend name (case insensitive).
func ByName(name string) (resample.Resizer, error) {
	mk, ok := backends[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, errors.New(`unknown resizer "` + name + `", one of: ` + strings.Join(Names(), `, `))
	}
	return mk(), nil
}

// Names returns the sorted backend names.
func Names() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Engine builds a resample.Engine from the fast and quality backend names.
func Engine(fast, quality string) (*resample.Engine, error) {
	rszFast, err := ByName(fast)
	if err != nil {
		return nil, err
	}
	rszQuality, err := ByName(quality)
	if err != nil {
		return nil, err
	}
	return resample.NewEngine(rszFast, rszQuality), nil
}
