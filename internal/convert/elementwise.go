package convert

import "github.com/source-alchemists/imagetorque/internal/pixel"

// These instantiate once per monochrome/RGB kind, giving the generic
// element-only conversion genuine per-kind specialisation at compile time.

func toL8Slice[T MonoScalar](src []T) []pixel.L8 {
	return mapSlice(src, func(v T) pixel.L8 { return v.ToL8() })
}

func toL16Slice[T MonoScalar](src []T) []pixel.L16 {
	return mapSlice(src, func(v T) pixel.L16 { return v.ToL16() })
}

func toLSSlice[T MonoScalar](src []T) []pixel.LS {
	return mapSlice(src, func(v T) pixel.LS { return v.ToLS() })
}

func toRgb24Slice[T ColorScalar](src []T) []pixel.Rgb24 {
	return mapSlice(src, func(v T) pixel.Rgb24 { return v.ToRgb24() })
}

func toRgb48Slice[T ColorScalar](src []T) []pixel.Rgb48 {
	return mapSlice(src, func(v T) pixel.Rgb48 { return v.ToRgb48() })
}

func toRgbSlice[T ColorScalar](src []T) []pixel.Rgb {
	return mapSlice(src, func(v T) pixel.Rgb { return v.ToRgb() })
}
