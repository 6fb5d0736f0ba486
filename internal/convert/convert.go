// Package convert implements the pixel-buffer conversion engine: producing
// a packed or planar representation of a target pixel type from any
// supported source, without mutating the source or caching anything
// itself (caching is the image facade's job).
package convert

import (
	"github.com/source-alchemists/imagetorque/internal/format"
	"github.com/source-alchemists/imagetorque/internal/ierr"
	"github.com/source-alchemists/imagetorque/internal/marshal"
	"github.com/source-alchemists/imagetorque/internal/pixelbuf"
)

// Convert produces a new, owned buffer of (targetLayout, targetKind) from
// src, which is left untouched. The output has the same (W,H) as src.
func Convert(src pixelbuf.AnyBuffer, targetLayout format.Layout, targetKind format.ElementKind) (pixelbuf.AnyBuffer, error) {
	if _, ok := format.Of(targetLayout, targetKind); !ok {
		return nil, ierr.New(ierr.UnsupportedFormat, "convert.Convert", "unsupported target (layout, element) combination")
	}
	if src.Layout() == targetLayout && src.ElementKind() == targetKind {
		return marshal.Copy(src)
	}

	switch v := src.(type) {
	case *pixelbuf.L8Buffer:
		return convertFromL8(v, targetLayout, targetKind)
	case *pixelbuf.L16Buffer:
		return convertFromL16(v, targetLayout, targetKind)
	case *pixelbuf.LSBuffer:
		return convertFromLS(v, targetLayout, targetKind)
	case *pixelbuf.Rgb24Buffer:
		return convertFromRgb24(v, targetLayout, targetKind)
	case *pixelbuf.Rgb48Buffer:
		return convertFromRgb48(v, targetLayout, targetKind)
	case *pixelbuf.RgbBuffer:
		return convertFromRgb(v, targetLayout, targetKind)
	default:
		return nil, ierr.New(ierr.UnsupportedFormat, "convert.Convert", "unrecognised source buffer implementation")
	}
}

func planarConcat[T any](r, g, b []T) []T {
	out := make([]T, 0, len(r)+len(g)+len(b))
	out = append(out, r...)
	out = append(out, g...)
	out = append(out, b...)
	return out
}

func planes[T any](data []T, w, h int) (r, g, b []T) {
	n := w * h
	return data[0:n], data[n : 2*n], data[2*n : 3*n]
}
