package convert

import (
	"testing"

	"github.com/source-alchemists/imagetorque/internal/format"
	"github.com/source-alchemists/imagetorque/internal/pixel"
	"github.com/source-alchemists/imagetorque/internal/pixelbuf"
)

func TestConvertSameKindReturnsIndependentCopy(t *testing.T) {
	src, err := pixelbuf.FromSliceL8(format.Packed, 1, 1, []pixel.L8{42})
	if err != nil {
		t.Fatalf("FromSliceL8: %v", err)
	}
	defer src.Release()

	out, err := Convert(src, format.Packed, format.KindL8)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	defer out.Release()

	if !src.Equal(out) {
		t.Fatalf("same-kind convert produced an unequal buffer")
	}
	if out.(*pixelbuf.L8Buffer) == src {
		t.Fatalf("same-kind convert returned the source buffer, want an independent copy")
	}
}

func TestConvertPackedRgb24ToPlanarL8Splits(t *testing.T) {
	src, err := pixelbuf.FromSliceRgb24(1, 1, []pixel.Rgb24{{R: 10, G: 20, B: 30}})
	if err != nil {
		t.Fatalf("FromSliceRgb24: %v", err)
	}
	defer src.Release()

	out, err := Convert(src, format.Planar, format.KindL8)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	defer out.Release()

	planar := out.(*pixelbuf.L8Buffer)
	r, _ := planar.ChannelView(0)
	g, _ := planar.ChannelView(1)
	b, _ := planar.ChannelView(2)
	if r[0] != 10 || g[0] != 20 || b[0] != 30 {
		t.Fatalf("planar channels = (%v,%v,%v), want (10,20,30)", r[0], g[0], b[0])
	}
}

func TestConvertPackedRgb24ToPackedL8CollapsesViaLuminance(t *testing.T) {
	src, err := pixelbuf.FromSliceRgb24(1, 1, []pixel.Rgb24{{R: 255, G: 0, B: 0}})
	if err != nil {
		t.Fatalf("FromSliceRgb24: %v", err)
	}
	defer src.Release()

	out, err := Convert(src, format.Packed, format.KindL8)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	defer out.Release()

	v, _ := out.(*pixelbuf.L8Buffer).At(0, 0)
	if v != 76 {
		t.Fatalf("packed collapse luminance = %d, want 76", v)
	}
}

func TestConvertMonoToColorReplicates(t *testing.T) {
	src, err := pixelbuf.FromSliceL8(format.Packed, 1, 1, []pixel.L8{200})
	if err != nil {
		t.Fatalf("FromSliceL8: %v", err)
	}
	defer src.Release()

	out, err := Convert(src, format.Packed, format.KindRgb24)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	defer out.Release()

	v, _ := out.(*pixelbuf.Rgb24Buffer).At(0, 0)
	want := pixel.Rgb24{R: 200, G: 200, B: 200}
	if v != want {
		t.Fatalf("mono->color = %+v, want %+v", v, want)
	}
}

func TestConvertRejectsUnsupportedTargetCombination(t *testing.T) {
	src, err := pixelbuf.FromSliceRgb24(1, 1, []pixel.Rgb24{{R: 1, G: 2, B: 3}})
	if err != nil {
		t.Fatalf("FromSliceRgb24: %v", err)
	}
	defer src.Release()

	if _, err := Convert(src, format.Planar, format.KindRgb24); err == nil {
		t.Fatalf("Convert to planar Rgb24 succeeded, want an error (not one of the nine recognised formats)")
	}
}

func TestConvertPreservesDimensions(t *testing.T) {
	src, err := pixelbuf.FromSliceL8(format.Packed, 3, 2, make([]pixel.L8, 6))
	if err != nil {
		t.Fatalf("FromSliceL8: %v", err)
	}
	defer src.Release()

	out, err := Convert(src, format.Packed, format.KindRgb)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	defer out.Release()

	if out.Width() != 3 || out.Height() != 2 {
		t.Fatalf("converted dims = %dx%d, want 3x2", out.Width(), out.Height())
	}
}
