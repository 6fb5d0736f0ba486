package imagetorque

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/source-alchemists/imagetorque/internal/convert"
	"github.com/source-alchemists/imagetorque/internal/format"
	"github.com/source-alchemists/imagetorque/internal/ierr"
)

// DefaultQuality is used by Save/SaveFile when quality is 0.
const DefaultQuality = 80

// saveKindFor maps a pixel format to the packed element kind the image
// must be converted to before handing it to a codec's encoder.
func saveKindFor(f format.PixelFormat) (format.ElementKind, bool) {
	switch f {
	case format.Mono, format.Mono8:
		return format.KindL8, true
	case format.Mono16:
		return format.KindL16, true
	case format.RgbPacked, format.Rgb24Packed, format.RgbPlanar, format.Rgb888Planar:
		return format.KindRgb24, true
	case format.Rgb161616Planar, format.Rgb48Packed:
		return format.KindRgb48, true
	default:
		return 0, false
	}
}

// Save converts the image to its save representation and encodes it to w
// under tag (lower-cased, matched against codec-reported support) at the
// given quality. quality of 0 uses DefaultQuality; otherwise it must be
// within [1,100].
func (img *Image) Save(w io.Writer, tag string, quality int, opts Options) error {
	if err := img.checkDisposed("Image.Save"); err != nil {
		return err
	}
	if quality == 0 {
		quality = DefaultQuality
	}
	if quality < 1 || quality > 100 {
		return ierr.New(ierr.InvalidArgument, "Image.Save", "quality must be within [1,100]")
	}

	tag = strings.ToLower(tag)
	c, ok := opts.registry().ByTag(tag)
	if !ok {
		return ierr.New(ierr.UnsupportedFormat, "Image.Save", "no registered codec supports tag "+tag)
	}

	targetKind, ok := saveKindFor(img.root.Format())
	if !ok {
		return ierr.New(ierr.UnsupportedFormat, "Image.Save", "image format cannot be saved")
	}
	buf, err := convert.Convert(img.root, format.Packed, targetKind)
	if err != nil {
		return err
	}
	defer buf.Release()

	if err := c.Encode(w, buf, tag, quality); err != nil {
		return ierr.Wrap(ierr.IoFailure, "Image.Save", err)
	}
	return nil
}

// SaveFile creates (or truncates) path and saves the image to it, deriving
// the encoder tag from the final extension segment (without the dot,
// lower-cased).
func (img *Image) SaveFile(path string, quality int, opts Options) error {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	f, err := os.Create(path)
	if err != nil {
		return ierr.Wrap(ierr.IoFailure, "Image.SaveFile", err)
	}
	defer f.Close()
	return img.Save(f, ext, quality, opts)
}
