package encoder

import (
	"image"
	"io"
	"path/filepath"
	"strings"
)

// Encoder encodes img in the format implied by fileExt. fileExt may also be
// a whole file name.
type Encoder interface {
	Encode(w io.Writer, img image.Image, fileExt string) error
}

// Format returns the lower case format name without dot for a file
// extension or file name.
func Format(fileExt string) string {
	if ext := filepath.Ext(fileExt); len(ext) > 0 {
		fileExt = ext
	}
	return strings.ToLower(strings.TrimPrefix(fileExt, `.`))
}
