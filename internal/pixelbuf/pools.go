package pixelbuf

import (
	"github.com/source-alchemists/imagetorque/internal/format"
	"github.com/source-alchemists/imagetorque/internal/pixel"
	"github.com/source-alchemists/imagetorque/internal/pool"
)

// One process-wide pool per element kind. Buffer construction always
// goes through these.
var (
	poolL8    = pool.New[pixel.L8]()
	poolL16   = pool.New[pixel.L16]()
	poolLS    = pool.New[pixel.LS]()
	poolRgb24 = pool.New[pixel.Rgb24]()
	poolRgb48 = pool.New[pixel.Rgb48]()
	poolRgb   = pool.New[pixel.Rgb]()
)

// Concrete aliases for the six supported buffer instantiations.
type (
	L8Buffer    = Buffer[pixel.L8]
	L16Buffer   = Buffer[pixel.L16]
	LSBuffer    = Buffer[pixel.LS]
	Rgb24Buffer = Buffer[pixel.Rgb24]
	Rgb48Buffer = Buffer[pixel.Rgb48]
	RgbBuffer   = Buffer[pixel.Rgb]
)

// NewL8 constructs an empty L8 buffer of the given layout.
func NewL8(layout format.Layout, w, h int) (*L8Buffer, error) {
	return New(poolL8, layout, w, h, format.KindL8)
}

// NewL16 constructs an empty L16 buffer of the given layout.
func NewL16(layout format.Layout, w, h int) (*L16Buffer, error) {
	return New(poolL16, layout, w, h, format.KindL16)
}

// NewLS constructs an empty LS buffer of the given layout.
func NewLS(layout format.Layout, w, h int) (*LSBuffer, error) {
	return New(poolLS, layout, w, h, format.KindLS)
}

// NewRgb24 constructs an empty packed Rgb24 buffer.
func NewRgb24(w, h int) (*Rgb24Buffer, error) {
	return New(poolRgb24, format.Packed, w, h, format.KindRgb24)
}

// NewRgb48 constructs an empty packed Rgb48 buffer.
func NewRgb48(w, h int) (*Rgb48Buffer, error) {
	return New(poolRgb48, format.Packed, w, h, format.KindRgb48)
}

// NewRgb constructs an empty packed Rgb buffer.
func NewRgb(w, h int) (*RgbBuffer, error) {
	return New(poolRgb, format.Packed, w, h, format.KindRgb)
}

// FromSliceL8 constructs an L8 buffer copying src.
func FromSliceL8(layout format.Layout, w, h int, src []pixel.L8) (*L8Buffer, error) {
	return FromSlice(poolL8, layout, w, h, format.KindL8, src)
}

// FromSliceL16 constructs an L16 buffer copying src.
func FromSliceL16(layout format.Layout, w, h int, src []pixel.L16) (*L16Buffer, error) {
	return FromSlice(poolL16, layout, w, h, format.KindL16, src)
}

// FromSliceLS constructs an LS buffer copying src.
func FromSliceLS(layout format.Layout, w, h int, src []pixel.LS) (*LSBuffer, error) {
	return FromSlice(poolLS, layout, w, h, format.KindLS, src)
}

// FromSliceRgb24 constructs a packed Rgb24 buffer copying src.
func FromSliceRgb24(w, h int, src []pixel.Rgb24) (*Rgb24Buffer, error) {
	return FromSlice(poolRgb24, format.Packed, w, h, format.KindRgb24, src)
}

// FromSliceRgb48 constructs a packed Rgb48 buffer copying src.
func FromSliceRgb48(w, h int, src []pixel.Rgb48) (*Rgb48Buffer, error) {
	return FromSlice(poolRgb48, format.Packed, w, h, format.KindRgb48, src)
}

// FromSliceRgb constructs a packed Rgb buffer copying src.
func FromSliceRgb(w, h int, src []pixel.Rgb) (*RgbBuffer, error) {
	return FromSlice(poolRgb, format.Packed, w, h, format.KindRgb, src)
}
