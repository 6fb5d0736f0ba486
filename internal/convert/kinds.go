package convert

import "github.com/source-alchemists/imagetorque/internal/pixel"

// MonoScalar is the uniform conversion surface the three monochrome kinds
// present, letting toL8Slice/toL16Slice/toLSSlice be instantiated once per
// kind instead of hand-written three times.
type MonoScalar interface {
	ToL8() pixel.L8
	ToL16() pixel.L16
	ToLS() pixel.LS
}

// ColorScalar is the analogous surface for the three RGB kinds.
type ColorScalar interface {
	ToRgb24() pixel.Rgb24
	ToRgb48() pixel.Rgb48
	ToRgb() pixel.Rgb
}

var (
	_ MonoScalar  = pixel.L8(0)
	_ MonoScalar  = pixel.L16(0)
	_ MonoScalar  = pixel.LS(0)
	_ ColorScalar = pixel.Rgb24{}
	_ ColorScalar = pixel.Rgb48{}
	_ ColorScalar = pixel.Rgb{}
)
