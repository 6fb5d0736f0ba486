package pixel

import "github.com/source-alchemists/imagetorque/internal/imath"

// Monochrome element conversions. L8<->L16 is bit-replication/truncation,
// never a scaled round, so it is explicitly lossy in both directions;
// LS round-trips through L8/L16 via round() and are likewise lossy.

// ToL16 replicates an 8-bit sample into the low and high byte of a 16-bit one.
func (v L8) ToL16() L16 {
	return L16(uint16(v)<<8 | uint16(v))
}

// ToLS expands an 8-bit sample to its normalised [0,1] value.
func (v L8) ToLS() LS {
	return LS(float32(v) / 255)
}

// ToL8 truncates a 16-bit sample to its high byte.
func (v L16) ToL8() L8 {
	return L8(v >> 8)
}

// ToLS expands a 16-bit sample to its normalised [0,1] value.
func (v L16) ToLS() LS {
	return LS(float32(v) / 65535)
}

// ToL8 rounds a normalised sample into an 8-bit one, saturating at the edges.
func (v LS) ToL8() L8 {
	return L8(imath.SaturateUint8(imath.Round(float32(v) * 255)))
}

// ToL16 rounds a normalised sample into a 16-bit one, saturating at the edges.
func (v LS) ToL16() L16 {
	return L16(imath.SaturateUint16(imath.Round(float32(v) * 65535)))
}

// RGB element conversions, applied per-channel using the matching
// monochrome conversion above.

// ToRgb48 widens each channel of an 8-bit triple to 16 bits.
func (c Rgb24) ToRgb48() Rgb48 {
	return Rgb48{R: uint16(L8(c.R).ToL16()), G: uint16(L8(c.G).ToL16()), B: uint16(L8(c.B).ToL16())}
}

// ToRgb normalises each channel of an 8-bit triple to [0,1].
func (c Rgb24) ToRgb() Rgb {
	return Rgb{R: float32(L8(c.R).ToLS()), G: float32(L8(c.G).ToLS()), B: float32(L8(c.B).ToLS())}
}

// ToRgb24 truncates each channel of a 16-bit triple to 8 bits.
func (c Rgb48) ToRgb24() Rgb24 {
	return Rgb24{R: uint8(L16(c.R).ToL8()), G: uint8(L16(c.G).ToL8()), B: uint8(L16(c.B).ToL8())}
}

// ToRgb normalises each channel of a 16-bit triple to [0,1].
func (c Rgb48) ToRgb() Rgb {
	return Rgb{R: float32(L16(c.R).ToLS()), G: float32(L16(c.G).ToLS()), B: float32(L16(c.B).ToLS())}
}

// ToRgb24 rounds each channel of a normalised triple into 8 bits, saturating.
func (c Rgb) ToRgb24() Rgb24 {
	return Rgb24{R: uint8(LS(c.R).ToL8()), G: uint8(LS(c.G).ToL8()), B: uint8(LS(c.B).ToL8())}
}

// ToRgb48 rounds each channel of a normalised triple into 16 bits, saturating.
func (c Rgb) ToRgb48() Rgb48 {
	return Rgb48{R: uint16(LS(c.R).ToL16()), G: uint16(LS(c.G).ToL16()), B: uint16(LS(c.B).ToL16())}
}

// Colour-to-grey conversions using the CCIR 601 luminance formula, computed
// in the pixel's own element precision.

// ToGrey computes the 8-bit luminance of an 8-bit-per-channel triple.
func (c Rgb24) ToGrey() L8 {
	lum := lumaR*float32(c.R) + lumaG*float32(c.G) + lumaB*float32(c.B)
	return L8(imath.SaturateUint8(lum))
}

// ToGrey computes the 16-bit luminance of a 16-bit-per-channel triple.
func (c Rgb48) ToGrey() L16 {
	lum := lumaR*float32(c.R) + lumaG*float32(c.G) + lumaB*float32(c.B)
	return L16(imath.SaturateUint16(lum))
}

// ToGrey computes the normalised luminance of a normalised triple.
func (c Rgb) ToGrey() LS {
	lum := lumaR*c.R + lumaG*c.G + lumaB*c.B
	return LS(imath.SaturateUnit(lum))
}

// Identity conversions, so the three monochrome kinds and the three RGB
// kinds each present a uniform conversion method set the conversion engine
// can drive generically without a type switch per element-only pair.

func (v L8) ToL8() L8    { return v }
func (v L16) ToL16() L16 { return v }
func (v LS) ToLS() LS    { return v }

func (c Rgb24) ToRgb24() Rgb24 { return c }
func (c Rgb48) ToRgb48() Rgb48 { return c }
func (c Rgb) ToRgb() Rgb       { return c }

// Grey-to-colour replication, used by the conversion engine when a
// monochrome source is expanded into an RGB target (not required by the
// spec's table but a natural, harmless completion of it).

// ToRgb24 replicates an 8-bit grey sample into all three channels.
func (v L8) ToRgb24() Rgb24 { return Rgb24{R: uint8(v), G: uint8(v), B: uint8(v)} }

// ToRgb48 replicates a 16-bit grey sample into all three channels.
func (v L16) ToRgb48() Rgb48 { return Rgb48{R: uint16(v), G: uint16(v), B: uint16(v)} }

// ToRgb replicates a normalised grey sample into all three channels.
func (v LS) ToRgb() Rgb { return Rgb{R: float32(v), G: float32(v), B: float32(v)} }
