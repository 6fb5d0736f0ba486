package marshal

import (
	"testing"

	"github.com/source-alchemists/imagetorque/internal/format"
	"github.com/source-alchemists/imagetorque/internal/pixel"
	"github.com/source-alchemists/imagetorque/internal/pixelbuf"
)

func TestCopyProducesIndependentBuffer(t *testing.T) {
	src, err := pixelbuf.FromSliceRgb24(1, 1, []pixel.Rgb24{{R: 1, G: 2, B: 3}})
	if err != nil {
		t.Fatalf("FromSliceRgb24: %v", err)
	}
	defer src.Release()

	dup, err := Copy(src)
	if err != nil {
		t.Fatalf("Copy: %v", err)
	}
	defer dup.Release()

	if !src.Equal(dup) {
		t.Fatalf("copy is not equal to its source")
	}

	// Mutate the original; the copy must be unaffected.
	if err := src.Set(0, 0, pixel.Rgb24{R: 9, G: 9, B: 9}); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if src.Equal(dup) {
		t.Fatalf("mutating the source changed the copy: buffers share storage")
	}
}

func TestFormatOfAndDecomposeRoundTrip(t *testing.T) {
	cases := []struct {
		layout format.Layout
		kind   format.ElementKind
	}{
		{format.Packed, format.KindL8},
		{format.Packed, format.KindRgb24},
		{format.Planar, format.KindL16},
	}
	for _, tc := range cases {
		f, err := FormatOf(tc.layout, tc.kind)
		if err != nil {
			t.Fatalf("FormatOf(%v, %v): %v", tc.layout, tc.kind, err)
		}
		layout, kind, err := Decompose(f)
		if err != nil {
			t.Fatalf("Decompose(%v): %v", f, err)
		}
		if layout != tc.layout || kind != tc.kind {
			t.Fatalf("round trip = (%v, %v), want (%v, %v)", layout, kind, tc.layout, tc.kind)
		}
	}
}

func TestFormatOfRejectsUnsupportedCombination(t *testing.T) {
	// Planar RGB24 is not one of the nine recognised pixel formats.
	if _, err := FormatOf(format.Planar, format.KindRgb24); err == nil {
		t.Fatalf("FormatOf(Planar, KindRgb24) succeeded, want an error")
	}
}
