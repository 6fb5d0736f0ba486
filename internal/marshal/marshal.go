// Package marshal implements buffer marshalling: deep-copying an opaque
// buffer, and the (layout, element) <-> pixel-format bijection.
package marshal

import (
	"github.com/source-alchemists/imagetorque/internal/format"
	"github.com/source-alchemists/imagetorque/internal/ierr"
	"github.com/source-alchemists/imagetorque/internal/pixelbuf"
)

// Copy dispatches on the buffer's concrete (layout, element kind) and
// returns a fresh, independently-owned clone.
func Copy(b pixelbuf.AnyBuffer) (pixelbuf.AnyBuffer, error) {
	switch v := b.(type) {
	case *pixelbuf.L8Buffer:
		return v.Clone()
	case *pixelbuf.L16Buffer:
		return v.Clone()
	case *pixelbuf.LSBuffer:
		return v.Clone()
	case *pixelbuf.Rgb24Buffer:
		return v.Clone()
	case *pixelbuf.Rgb48Buffer:
		return v.Clone()
	case *pixelbuf.RgbBuffer:
		return v.Clone()
	default:
		return nil, ierr.New(ierr.UnsupportedFormat, "marshal.Copy", "unrecognised buffer implementation")
	}
}

// FormatOf maps a (layout, element kind) pair to its pixel format tag.
func FormatOf(layout format.Layout, kind format.ElementKind) (format.PixelFormat, error) {
	f, ok := format.Of(layout, kind)
	if !ok {
		return 0, ierr.New(ierr.UnsupportedFormat, "marshal.FormatOf", "unrecognised (layout, element) combination")
	}
	return f, nil
}

// Decompose maps a pixel format tag back to its (layout, element kind) pair.
func Decompose(f format.PixelFormat) (format.Layout, format.ElementKind, error) {
	layout, kind, ok := format.Decompose(f)
	if !ok {
		return 0, 0, ierr.New(ierr.UnsupportedFormat, "marshal.Decompose", "unrecognised pixel format")
	}
	return layout, kind, nil
}
