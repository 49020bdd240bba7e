package preview

import (
	"image"
	"image/png"
	"io"
	"os"

	"github.com/go-drift/controls/pkg/errors"
)

// EncodePNG writes img to w as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return errors.New("preview.EncodePNG", errors.KindRender, err)
	}
	return nil
}

// WritePNG encodes img into the file at path, replacing it.
func WritePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.WithPath("preview.WritePNG", errors.KindRender, path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.WithPath("preview.WritePNG", errors.KindRender, path, cerr)
		}
	}()
	if err := png.Encode(f, img); err != nil {
		return errors.WithPath("preview.WritePNG", errors.KindRender, path, err)
	}
	return nil
}
