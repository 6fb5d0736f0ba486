package convert

import "github.com/source-alchemists/imagetorque/internal/pixel"

// mapSlice applies f elementwise, used for element-only conversions (same
// layout, different element) — layout is unaffected by a flat elementwise
// map regardless of whether the slice represents one packed channel or
// three planar ones.
func mapSlice[S, D any](src []S, f func(S) D) []D {
	out := make([]D, len(src))
	for i, v := range src {
		out[i] = f(v)
	}
	return out
}

// splitRgb24 divides a packed RGB24 slice into its three channel planes,
// in R, G, B order.
func splitRgb24(src []pixel.Rgb24) (r, g, b []pixel.L8) {
	n := len(src)
	r, g, b = make([]pixel.L8, n), make([]pixel.L8, n), make([]pixel.L8, n)
	for i, px := range src {
		r[i], g[i], b[i] = pixel.L8(px.R), pixel.L8(px.G), pixel.L8(px.B)
	}
	return
}

func splitRgb48(src []pixel.Rgb48) (r, g, b []pixel.L16) {
	n := len(src)
	r, g, b = make([]pixel.L16, n), make([]pixel.L16, n), make([]pixel.L16, n)
	for i, px := range src {
		r[i], g[i], b[i] = pixel.L16(px.R), pixel.L16(px.G), pixel.L16(px.B)
	}
	return
}

func splitRgb(src []pixel.Rgb) (r, g, b []pixel.LS) {
	n := len(src)
	r, g, b = make([]pixel.LS, n), make([]pixel.LS, n), make([]pixel.LS, n)
	for i, px := range src {
		r[i], g[i], b[i] = pixel.LS(px.R), pixel.LS(px.G), pixel.LS(px.B)
	}
	return
}

// interleaveRgb24 recombines three channel planes into a packed RGB24
// slice, in the same R, G, B order.
func interleaveRgb24(r, g, b []pixel.L8) []pixel.Rgb24 {
	out := make([]pixel.Rgb24, len(r))
	for i := range out {
		out[i] = pixel.Rgb24{R: uint8(r[i]), G: uint8(g[i]), B: uint8(b[i])}
	}
	return out
}

func interleaveRgb48(r, g, b []pixel.L16) []pixel.Rgb48 {
	out := make([]pixel.Rgb48, len(r))
	for i := range out {
		out[i] = pixel.Rgb48{R: uint16(r[i]), G: uint16(g[i]), B: uint16(b[i])}
	}
	return out
}

func interleaveRgb(r, g, b []pixel.LS) []pixel.Rgb {
	out := make([]pixel.Rgb, len(r))
	for i := range out {
		out[i] = pixel.Rgb{R: float32(r[i]), G: float32(g[i]), B: float32(b[i])}
	}
	return out
}

// replicate broadcasts a single monochrome plane into three identical
// planes, one per output channel.
func replicate[T any](src []T) (r, g, b []T) {
	r = append([]T(nil), src...)
	g = append([]T(nil), src...)
	b = append([]T(nil), src...)
	return
}

// collapseLuminanceL8 treats three planes as a planar RGB image's R, G, B
// channel values and collapses them per-pixel via the luminance formula.
func collapseLuminanceL8(r, g, b []pixel.L8) []pixel.L8 {
	out := make([]pixel.L8, len(r))
	for i := range out {
		out[i] = pixel.Rgb24{R: uint8(r[i]), G: uint8(g[i]), B: uint8(b[i])}.ToGrey()
	}
	return out
}

func collapseLuminanceL16(r, g, b []pixel.L16) []pixel.L16 {
	out := make([]pixel.L16, len(r))
	for i := range out {
		out[i] = pixel.Rgb48{R: uint16(r[i]), G: uint16(g[i]), B: uint16(b[i])}.ToGrey()
	}
	return out
}

func collapseLuminanceLS(r, g, b []pixel.LS) []pixel.LS {
	out := make([]pixel.LS, len(r))
	for i := range out {
		out[i] = pixel.Rgb{R: float32(r[i]), G: float32(g[i]), B: float32(b[i])}.ToGrey()
	}
	return out
}
