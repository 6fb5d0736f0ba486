// Package geom implements the image facade's structural filters: mirror
// and threshold binarisation. Unlike the conversion and resampling
// engines, these never change element kind or layout (binarisation is the
// one exception, which always produces packed L8).
package geom

import (
	"github.com/source-alchemists/imagetorque/internal/ierr"
	"github.com/source-alchemists/imagetorque/internal/pixelbuf"
)

func mirrorHorizontalSlice[T any](data []T, w, h, c int) []T {
	out := make([]T, len(data))
	for ch := 0; ch < c; ch++ {
		base := ch * w * h
		for y := 0; y < h; y++ {
			row := base + y*w
			for x := 0; x < w; x++ {
				out[row+x] = data[row+(w-1-x)]
			}
		}
	}
	return out
}

func mirrorVerticalSlice[T any](data []T, w, h, c int) []T {
	out := make([]T, len(data))
	for ch := 0; ch < c; ch++ {
		base := ch * w * h
		for y := 0; y < h; y++ {
			srcRow := base + (h-1-y)*w
			dstRow := base + y*w
			copy(out[dstRow:dstRow+w], data[srcRow:srcRow+w])
		}
	}
	return out
}

// MirrorHorizontal reverses each row of src, independently per channel.
func MirrorHorizontal(src pixelbuf.AnyBuffer) (pixelbuf.AnyBuffer, error) {
	w, h, c, layout := src.Width(), src.Height(), src.Channels(), src.Layout()
	switch v := src.(type) {
	case *pixelbuf.L8Buffer:
		return pixelbuf.FromSliceL8(layout, w, h, mirrorHorizontalSlice(v.Data(), w, h, c))
	case *pixelbuf.L16Buffer:
		return pixelbuf.FromSliceL16(layout, w, h, mirrorHorizontalSlice(v.Data(), w, h, c))
	case *pixelbuf.LSBuffer:
		return pixelbuf.FromSliceLS(layout, w, h, mirrorHorizontalSlice(v.Data(), w, h, c))
	case *pixelbuf.Rgb24Buffer:
		return pixelbuf.FromSliceRgb24(w, h, mirrorHorizontalSlice(v.Data(), w, h, c))
	case *pixelbuf.Rgb48Buffer:
		return pixelbuf.FromSliceRgb48(w, h, mirrorHorizontalSlice(v.Data(), w, h, c))
	case *pixelbuf.RgbBuffer:
		return pixelbuf.FromSliceRgb(w, h, mirrorHorizontalSlice(v.Data(), w, h, c))
	default:
		return nil, ierr.New(ierr.UnsupportedFormat, "geom.MirrorHorizontal", "unrecognised source buffer implementation")
	}
}

// MirrorVertical reverses the row order of src, independently per channel.
func MirrorVertical(src pixelbuf.AnyBuffer) (pixelbuf.AnyBuffer, error) {
	w, h, c, layout := src.Width(), src.Height(), src.Channels(), src.Layout()
	switch v := src.(type) {
	case *pixelbuf.L8Buffer:
		return pixelbuf.FromSliceL8(layout, w, h, mirrorVerticalSlice(v.Data(), w, h, c))
	case *pixelbuf.L16Buffer:
		return pixelbuf.FromSliceL16(layout, w, h, mirrorVerticalSlice(v.Data(), w, h, c))
	case *pixelbuf.LSBuffer:
		return pixelbuf.FromSliceLS(layout, w, h, mirrorVerticalSlice(v.Data(), w, h, c))
	case *pixelbuf.Rgb24Buffer:
		return pixelbuf.FromSliceRgb24(w, h, mirrorVerticalSlice(v.Data(), w, h, c))
	case *pixelbuf.Rgb48Buffer:
		return pixelbuf.FromSliceRgb48(w, h, mirrorVerticalSlice(v.Data(), w, h, c))
	case *pixelbuf.RgbBuffer:
		return pixelbuf.FromSliceRgb(w, h, mirrorVerticalSlice(v.Data(), w, h, c))
	default:
		return nil, ierr.New(ierr.UnsupportedFormat, "geom.MirrorVertical", "unrecognised source buffer implementation")
	}
}
