package geom

import (
	"testing"

	"github.com/source-alchemists/imagetorque/internal/format"
	"github.com/source-alchemists/imagetorque/internal/pixel"
	"github.com/source-alchemists/imagetorque/internal/pixelbuf"
)

func TestMirrorHorizontalPacked(t *testing.T) {
	src, err := pixelbuf.FromSliceL8(format.Packed, 3, 2, []pixel.L8{
		1, 2, 3,
		4, 5, 6,
	})
	if err != nil {
		t.Fatalf("FromSliceL8: %v", err)
	}
	defer src.Release()

	out, err := MirrorHorizontal(src)
	if err != nil {
		t.Fatalf("MirrorHorizontal: %v", err)
	}
	defer out.Release()

	got := out.(*pixelbuf.L8Buffer).Data()
	want := []pixel.L8{3, 2, 1, 6, 5, 4}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestMirrorVerticalPlanar(t *testing.T) {
	// Three planes (h=2, w=1): plane0 = [1,2], plane1 = [3,4], plane2 = [5,6].
	src, err := pixelbuf.FromSliceL8(format.Planar, 1, 2, []pixel.L8{
		1, 2,
		3, 4,
		5, 6,
	})
	if err != nil {
		t.Fatalf("FromSliceL8: %v", err)
	}
	defer src.Release()

	out, err := MirrorVertical(src)
	if err != nil {
		t.Fatalf("MirrorVertical: %v", err)
	}
	defer out.Release()

	got := out.(*pixelbuf.L8Buffer).Data()
	want := []pixel.L8{2, 1, 4, 3, 6, 5}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("plane-wise vertical mirror = %v, want %v", got, want)
		}
	}
}

func TestMirrorRoundTrip(t *testing.T) {
	src, err := pixelbuf.FromSliceRgb24(2, 2, []pixel.Rgb24{
		{R: 1}, {R: 2},
		{R: 3}, {R: 4},
	})
	if err != nil {
		t.Fatalf("FromSliceRgb24: %v", err)
	}
	defer src.Release()

	once, err := MirrorHorizontal(src)
	if err != nil {
		t.Fatalf("MirrorHorizontal: %v", err)
	}
	defer once.Release()
	twice, err := MirrorHorizontal(once)
	if err != nil {
		t.Fatalf("MirrorHorizontal (second): %v", err)
	}
	defer twice.Release()

	if !twice.Equal(src) {
		t.Fatalf("mirroring horizontally twice did not round-trip to the source")
	}
}
