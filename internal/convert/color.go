package convert

import (
	"github.com/source-alchemists/imagetorque/internal/format"
	"github.com/source-alchemists/imagetorque/internal/pixel"
	"github.com/source-alchemists/imagetorque/internal/pixelbuf"
)

// colorFromRgb24Natural builds the requested packed RGB buffer from an
// already-assembled Rgb24-precision triple slice (shared by the mono->RGB
// and RGB->RGB paths).
func colorFromRgb24Natural(natural []pixel.Rgb24, w, h int, targetKind format.ElementKind) (pixelbuf.AnyBuffer, error) {
	switch targetKind {
	case format.KindRgb24:
		return pixelbuf.FromSliceRgb24(w, h, natural)
	case format.KindRgb48:
		return pixelbuf.FromSliceRgb48(w, h, toRgb48Slice(natural))
	case format.KindRgb:
		return pixelbuf.FromSliceRgb(w, h, toRgbSlice(natural))
	}
	return nil, unsupportedTarget("convert.color")
}

func colorFromRgb48Natural(natural []pixel.Rgb48, w, h int, targetKind format.ElementKind) (pixelbuf.AnyBuffer, error) {
	switch targetKind {
	case format.KindRgb24:
		return pixelbuf.FromSliceRgb24(w, h, toRgb24Slice(natural))
	case format.KindRgb48:
		return pixelbuf.FromSliceRgb48(w, h, natural)
	case format.KindRgb:
		return pixelbuf.FromSliceRgb(w, h, toRgbSlice(natural))
	}
	return nil, unsupportedTarget("convert.color")
}

func colorFromRgbNatural(natural []pixel.Rgb, w, h int, targetKind format.ElementKind) (pixelbuf.AnyBuffer, error) {
	switch targetKind {
	case format.KindRgb24:
		return pixelbuf.FromSliceRgb24(w, h, toRgb24Slice(natural))
	case format.KindRgb48:
		return pixelbuf.FromSliceRgb48(w, h, toRgb48Slice(natural))
	case format.KindRgb:
		return pixelbuf.FromSliceRgb(w, h, natural)
	}
	return nil, unsupportedTarget("convert.color")
}

func convertFromRgb24(src *pixelbuf.Rgb24Buffer, targetLayout format.Layout, targetKind format.ElementKind) (pixelbuf.AnyBuffer, error) {
	w, h, data := src.Width(), src.Height(), src.Data()

	if !targetKind.IsColor() {
		return colorToMono(data, w, h, targetLayout, targetKind,
			mapSlice(data, func(c pixel.Rgb24) pixel.L8 { return c.ToGrey() }),
			splitRgb24)
	}
	return colorFromRgb24Natural(data, w, h, targetKind)
}

func convertFromRgb48(src *pixelbuf.Rgb48Buffer, targetLayout format.Layout, targetKind format.ElementKind) (pixelbuf.AnyBuffer, error) {
	w, h, data := src.Width(), src.Height(), src.Data()

	if !targetKind.IsColor() {
		return colorToMonoL16(data, w, h, targetLayout, targetKind)
	}
	return colorFromRgb48Natural(data, w, h, targetKind)
}

func convertFromRgb(src *pixelbuf.RgbBuffer, targetLayout format.Layout, targetKind format.ElementKind) (pixelbuf.AnyBuffer, error) {
	w, h, data := src.Width(), src.Height(), src.Data()

	if !targetKind.IsColor() {
		return colorToMonoLS(data, w, h, targetLayout, targetKind)
	}
	return colorFromRgbNatural(data, w, h, targetKind)
}

// colorToMono implements the Rgb24 -> mono path: packed target collapses
// via luminance, planar target splits the triple across channels — the
// "grey" parameter and "split" callback let this stay a single function
// even though it's only used by the Rgb24 source.
func colorToMono(data []pixel.Rgb24, w, h int, targetLayout format.Layout, targetKind format.ElementKind,
	grey []pixel.L8, split func([]pixel.Rgb24) (r, g, b []pixel.L8)) (pixelbuf.AnyBuffer, error) {

	if targetLayout == format.Packed {
		switch targetKind {
		case format.KindL8:
			return pixelbuf.FromSliceL8(format.Packed, w, h, grey)
		case format.KindL16:
			return pixelbuf.FromSliceL16(format.Packed, w, h, toL16Slice(grey))
		case format.KindLS:
			return pixelbuf.FromSliceLS(format.Packed, w, h, toLSSlice(grey))
		}
		return nil, unsupportedTarget("convert.Rgb24->mono")
	}

	r, g, b := split(data)
	return monoFromL8Planes(r, g, b, w, h, targetKind)
}

func colorToMonoL16(data []pixel.Rgb48, w, h int, targetLayout format.Layout, targetKind format.ElementKind) (pixelbuf.AnyBuffer, error) {
	if targetLayout == format.Packed {
		grey := mapSlice(data, func(c pixel.Rgb48) pixel.L16 { return c.ToGrey() })
		switch targetKind {
		case format.KindL8:
			return pixelbuf.FromSliceL8(format.Packed, w, h, toL8Slice(grey))
		case format.KindL16:
			return pixelbuf.FromSliceL16(format.Packed, w, h, grey)
		case format.KindLS:
			return pixelbuf.FromSliceLS(format.Packed, w, h, toLSSlice(grey))
		}
		return nil, unsupportedTarget("convert.Rgb48->mono")
	}
	r, g, b := splitRgb48(data)
	return monoFromL16Planes(r, g, b, w, h, targetKind)
}

func colorToMonoLS(data []pixel.Rgb, w, h int, targetLayout format.Layout, targetKind format.ElementKind) (pixelbuf.AnyBuffer, error) {
	if targetLayout == format.Packed {
		grey := mapSlice(data, func(c pixel.Rgb) pixel.LS { return c.ToGrey() })
		switch targetKind {
		case format.KindL8:
			return pixelbuf.FromSliceL8(format.Packed, w, h, toL8Slice(grey))
		case format.KindL16:
			return pixelbuf.FromSliceL16(format.Packed, w, h, toL16Slice(grey))
		case format.KindLS:
			return pixelbuf.FromSliceLS(format.Packed, w, h, grey)
		}
		return nil, unsupportedTarget("convert.Rgb->mono")
	}
	r, g, b := splitRgb(data)
	return monoFromLSPlanes(r, g, b, w, h, targetKind)
}
