package imagetorque

import (
	"github.com/source-alchemists/imagetorque/buffer"
	"github.com/source-alchemists/imagetorque/internal/pixel"
)

// Pixel element kinds, re-exported so callers never need to import an
// internal package to name one.
type (
	L8    = pixel.L8
	L16   = pixel.L16
	LS    = pixel.LS
	Rgb24 = pixel.Rgb24
	Rgb48 = pixel.Rgb48
	Rgb   = pixel.Rgb
)

// Element is the set of pixel element types a View or Buffer may hold.
type Element interface {
	L8 | L16 | LS | Rgb24 | Rgb48 | Rgb
}

// Buffer is an owned pixel buffer of one of the Element kinds, in either
// layout. It is the type a Codec decodes into and encodes from, and the
// type New wraps. Build one with the NewXxx/FromSliceXxx constructors in
// the buffer package, or obtain one from a Codec.
type Buffer = buffer.Buffer

// Layout selects a packed or planar arrangement of elements.
type Layout = buffer.Layout

const (
	Packed = buffer.Packed
	Planar = buffer.Planar
)
