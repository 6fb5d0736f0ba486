// Package buffer defines the pixel buffer type at imagetorque's external
// boundary: what a registered codec.Codec decodes into and encodes from,
// and the constructors an embedding application uses to hand the library
// pixel data it already owns. It lives in its own package, separate from
// both imagetorque and codec, so codec can depend on the buffer type
// without importing imagetorque (which itself imports codec).
package buffer

import (
	"github.com/source-alchemists/imagetorque/internal/format"
	"github.com/source-alchemists/imagetorque/internal/pixel"
	"github.com/source-alchemists/imagetorque/internal/pixelbuf"
)

// Buffer is an owned, packed-or-planar pixel buffer of one of the six
// supported element kinds. Its concrete implementation is opaque; callers
// construct one with the functions below and pass it to imagetorque.New
// or return it from a Codec's Decode method.
type Buffer = pixelbuf.AnyBuffer

// Layout selects a packed or planar arrangement of elements.
type Layout = format.Layout

const (
	Packed = format.Packed
	Planar = format.Planar
)

// Pixel element kinds a Buffer may hold.
type (
	L8    = pixel.L8
	L16   = pixel.L16
	LS    = pixel.LS
	Rgb24 = pixel.Rgb24
	Rgb48 = pixel.Rgb48
	Rgb   = pixel.Rgb
)

// NewL8 constructs an empty L8 buffer of the given layout.
func NewL8(layout Layout, w, h int) (Buffer, error) { return pixelbuf.NewL8(layout, w, h) }

// NewL16 constructs an empty L16 buffer of the given layout.
func NewL16(layout Layout, w, h int) (Buffer, error) { return pixelbuf.NewL16(layout, w, h) }

// NewLS constructs an empty LS buffer of the given layout.
func NewLS(layout Layout, w, h int) (Buffer, error) { return pixelbuf.NewLS(layout, w, h) }

// NewRgb24 constructs an empty packed Rgb24 buffer.
func NewRgb24(w, h int) (Buffer, error) { return pixelbuf.NewRgb24(w, h) }

// NewRgb48 constructs an empty packed Rgb48 buffer.
func NewRgb48(w, h int) (Buffer, error) { return pixelbuf.NewRgb48(w, h) }

// NewRgb constructs an empty packed Rgb buffer.
func NewRgb(w, h int) (Buffer, error) { return pixelbuf.NewRgb(w, h) }

// FromSliceL8 constructs an L8 buffer copying src.
func FromSliceL8(layout Layout, w, h int, src []L8) (Buffer, error) {
	return pixelbuf.FromSliceL8(layout, w, h, src)
}

// FromSliceL16 constructs an L16 buffer copying src.
func FromSliceL16(layout Layout, w, h int, src []L16) (Buffer, error) {
	return pixelbuf.FromSliceL16(layout, w, h, src)
}

// FromSliceLS constructs an LS buffer copying src.
func FromSliceLS(layout Layout, w, h int, src []LS) (Buffer, error) {
	return pixelbuf.FromSliceLS(layout, w, h, src)
}

// FromSliceRgb24 constructs a packed Rgb24 buffer copying src.
func FromSliceRgb24(w, h int, src []Rgb24) (Buffer, error) {
	return pixelbuf.FromSliceRgb24(w, h, src)
}

// FromSliceRgb48 constructs a packed Rgb48 buffer copying src.
func FromSliceRgb48(w, h int, src []Rgb48) (Buffer, error) {
	return pixelbuf.FromSliceRgb48(w, h, src)
}

// FromSliceRgb constructs a packed Rgb buffer copying src.
func FromSliceRgb(w, h int, src []Rgb) (Buffer, error) {
	return pixelbuf.FromSliceRgb(w, h, src)
}
