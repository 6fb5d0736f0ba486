package convert

import (
	"github.com/source-alchemists/imagetorque/internal/format"
	"github.com/source-alchemists/imagetorque/internal/ierr"
	"github.com/source-alchemists/imagetorque/internal/pixel"
	"github.com/source-alchemists/imagetorque/internal/pixelbuf"
)

func unsupportedTarget(op string) error {
	return ierr.New(ierr.UnsupportedFormat, op, "unsupported target (layout, element) combination")
}

func convertFromL8(src *pixelbuf.L8Buffer, targetLayout format.Layout, targetKind format.ElementKind) (pixelbuf.AnyBuffer, error) {
	w, h, data, srcLayout := src.Width(), src.Height(), src.Data(), src.Layout()

	if targetKind.IsColor() {
		var natural []pixel.Rgb24
		if srcLayout == format.Packed {
			natural = mapSlice(data, func(v pixel.L8) pixel.Rgb24 { return v.ToRgb24() })
		} else {
			r, g, b := planes(data, w, h)
			natural = interleaveRgb24(r, g, b)
		}
		return colorFromRgb24Natural(natural, w, h, targetKind)
	}

	if srcLayout == targetLayout {
		switch targetKind {
		case format.KindL8:
			return pixelbuf.FromSliceL8(targetLayout, w, h, toL8Slice(data))
		case format.KindL16:
			return pixelbuf.FromSliceL16(targetLayout, w, h, toL16Slice(data))
		case format.KindLS:
			return pixelbuf.FromSliceLS(targetLayout, w, h, toLSSlice(data))
		}
		return nil, unsupportedTarget("convert.L8")
	}

	if srcLayout == format.Packed && targetLayout == format.Planar {
		r, g, b := replicate(data)
		return monoFromL8Planes(r, g, b, w, h, targetKind)
	}

	// srcLayout == Planar, targetLayout == Packed: collapse via luminance.
	r, g, b := planes(data, w, h)
	collapsed := collapseLuminanceL8(r, g, b)
	switch targetKind {
	case format.KindL8:
		return pixelbuf.FromSliceL8(format.Packed, w, h, collapsed)
	case format.KindL16:
		return pixelbuf.FromSliceL16(format.Packed, w, h, toL16Slice(collapsed))
	case format.KindLS:
		return pixelbuf.FromSliceLS(format.Packed, w, h, toLSSlice(collapsed))
	}
	return nil, unsupportedTarget("convert.L8")
}

func convertFromL16(src *pixelbuf.L16Buffer, targetLayout format.Layout, targetKind format.ElementKind) (pixelbuf.AnyBuffer, error) {
	w, h, data, srcLayout := src.Width(), src.Height(), src.Data(), src.Layout()

	if targetKind.IsColor() {
		var natural []pixel.Rgb48
		if srcLayout == format.Packed {
			natural = mapSlice(data, func(v pixel.L16) pixel.Rgb48 { return v.ToRgb48() })
		} else {
			r, g, b := planes(data, w, h)
			natural = interleaveRgb48(r, g, b)
		}
		return colorFromRgb48Natural(natural, w, h, targetKind)
	}

	if srcLayout == targetLayout {
		switch targetKind {
		case format.KindL8:
			return pixelbuf.FromSliceL8(targetLayout, w, h, toL8Slice(data))
		case format.KindL16:
			return pixelbuf.FromSliceL16(targetLayout, w, h, toL16Slice(data))
		case format.KindLS:
			return pixelbuf.FromSliceLS(targetLayout, w, h, toLSSlice(data))
		}
		return nil, unsupportedTarget("convert.L16")
	}

	if srcLayout == format.Packed && targetLayout == format.Planar {
		r, g, b := replicate(data)
		return monoFromL16Planes(r, g, b, w, h, targetKind)
	}

	r, g, b := planes(data, w, h)
	collapsed := collapseLuminanceL16(r, g, b)
	switch targetKind {
	case format.KindL8:
		return pixelbuf.FromSliceL8(format.Packed, w, h, toL8Slice(collapsed))
	case format.KindL16:
		return pixelbuf.FromSliceL16(format.Packed, w, h, collapsed)
	case format.KindLS:
		return pixelbuf.FromSliceLS(format.Packed, w, h, toLSSlice(collapsed))
	}
	return nil, unsupportedTarget("convert.L16")
}

func convertFromLS(src *pixelbuf.LSBuffer, targetLayout format.Layout, targetKind format.ElementKind) (pixelbuf.AnyBuffer, error) {
	w, h, data, srcLayout := src.Width(), src.Height(), src.Data(), src.Layout()

	if targetKind.IsColor() {
		var natural []pixel.Rgb
		if srcLayout == format.Packed {
			natural = mapSlice(data, func(v pixel.LS) pixel.Rgb { return v.ToRgb() })
		} else {
			r, g, b := planes(data, w, h)
			natural = interleaveRgb(r, g, b)
		}
		return colorFromRgbNatural(natural, w, h, targetKind)
	}

	if srcLayout == targetLayout {
		switch targetKind {
		case format.KindL8:
			return pixelbuf.FromSliceL8(targetLayout, w, h, toL8Slice(data))
		case format.KindL16:
			return pixelbuf.FromSliceL16(targetLayout, w, h, toL16Slice(data))
		case format.KindLS:
			return pixelbuf.FromSliceLS(targetLayout, w, h, toLSSlice(data))
		}
		return nil, unsupportedTarget("convert.LS")
	}

	if srcLayout == format.Packed && targetLayout == format.Planar {
		r, g, b := replicate(data)
		return monoFromLSPlanes(r, g, b, w, h, targetKind)
	}

	r, g, b := planes(data, w, h)
	collapsed := collapseLuminanceLS(r, g, b)
	switch targetKind {
	case format.KindL8:
		return pixelbuf.FromSliceL8(format.Packed, w, h, toL8Slice(collapsed))
	case format.KindL16:
		return pixelbuf.FromSliceL16(format.Packed, w, h, toL16Slice(collapsed))
	case format.KindLS:
		return pixelbuf.FromSliceLS(format.Packed, w, h, collapsed)
	}
	return nil, unsupportedTarget("convert.LS")
}

func monoFromL8Planes(r, g, b []pixel.L8, w, h int, targetKind format.ElementKind) (pixelbuf.AnyBuffer, error) {
	switch targetKind {
	case format.KindL8:
		return pixelbuf.FromSliceL8(format.Planar, w, h, planarConcat(r, g, b))
	case format.KindL16:
		return pixelbuf.FromSliceL16(format.Planar, w, h, planarConcat(toL16Slice(r), toL16Slice(g), toL16Slice(b)))
	case format.KindLS:
		return pixelbuf.FromSliceLS(format.Planar, w, h, planarConcat(toLSSlice(r), toLSSlice(g), toLSSlice(b)))
	}
	return nil, unsupportedTarget("convert.mono->planar")
}

func monoFromL16Planes(r, g, b []pixel.L16, w, h int, targetKind format.ElementKind) (pixelbuf.AnyBuffer, error) {
	switch targetKind {
	case format.KindL8:
		return pixelbuf.FromSliceL8(format.Planar, w, h, planarConcat(toL8Slice(r), toL8Slice(g), toL8Slice(b)))
	case format.KindL16:
		return pixelbuf.FromSliceL16(format.Planar, w, h, planarConcat(r, g, b))
	case format.KindLS:
		return pixelbuf.FromSliceLS(format.Planar, w, h, planarConcat(toLSSlice(r), toLSSlice(g), toLSSlice(b)))
	}
	return nil, unsupportedTarget("convert.mono->planar")
}

func monoFromLSPlanes(r, g, b []pixel.LS, w, h int, targetKind format.ElementKind) (pixelbuf.AnyBuffer, error) {
	switch targetKind {
	case format.KindL8:
		return pixelbuf.FromSliceL8(format.Planar, w, h, planarConcat(toL8Slice(r), toL8Slice(g), toL8Slice(b)))
	case format.KindL16:
		return pixelbuf.FromSliceL16(format.Planar, w, h, planarConcat(toL16Slice(r), toL16Slice(g), toL16Slice(b)))
	case format.KindLS:
		return pixelbuf.FromSliceLS(format.Planar, w, h, planarConcat(r, g, b))
	}
	return nil, unsupportedTarget("convert.mono->planar")
}
