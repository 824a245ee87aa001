package images

import (
	"bytes"
	"fmt"
	"io"

	"github.com/disintegration/imaging"
)

// FitToBox scales an image down so it fits within maxWidth x maxHeight,
// preserving aspect ratio. Images already inside the box pass through at
// their original size. The result is re-encoded in the format implied by ext.
func FitToBox(r io.Reader, ext string, maxWidth, maxHeight int) (*bytes.Buffer, error) {
	img, err := imaging.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	format, err := imaging.FormatFromExtension(ext)
	if err != nil {
		return nil, fmt.Errorf("unsupported image format %q: %w", ext, err)
	}

	resized := imaging.Fit(img, maxWidth, maxHeight, imaging.Lanczos)

	buf := bytes.NewBuffer(nil)
	if err := imaging.Encode(buf, resized, format); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	return buf, nil
}
