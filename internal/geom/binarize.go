package geom

import (
	"github.com/source-alchemists/imagetorque/internal/format"
	"github.com/source-alchemists/imagetorque/internal/pixel"
	"github.com/source-alchemists/imagetorque/internal/pixelbuf"
)

// BinarizeLuminance thresholds src's CCIR 601 luminance against threshold
// (in [0,1]), producing a packed L8 image of 0/255.
func BinarizeLuminance(src *pixelbuf.RgbBuffer, threshold float32) (*pixelbuf.L8Buffer, error) {
	w, h, data := src.Width(), src.Height(), src.Data()
	out := make([]pixel.L8, len(data))
	for i, c := range data {
		if float32(c.ToGrey()) >= threshold {
			out[i] = 255
		}
	}
	return pixelbuf.FromSliceL8(format.Packed, w, h, out)
}

// BinarizeSaturation thresholds src's HSV saturation, (max-min)/max per
// channel triple, against threshold (in [0,1]), producing a packed L8
// image of 0/255. A pure grey pixel (max == 0 or max == min) has zero
// saturation.
func BinarizeSaturation(src *pixelbuf.RgbBuffer, threshold float32) (*pixelbuf.L8Buffer, error) {
	w, h, data := src.Width(), src.Height(), src.Data()
	out := make([]pixel.L8, len(data))
	for i, c := range data {
		max := maxOf3(c.R, c.G, c.B)
		min := minOf3(c.R, c.G, c.B)
		var sat float32
		if max > 0 {
			sat = (max - min) / max
		}
		if sat >= threshold {
			out[i] = 255
		}
	}
	return pixelbuf.FromSliceL8(format.Packed, w, h, out)
}

func maxOf3(a, b, c float32) float32 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

func minOf3(a, b, c float32) float32 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
