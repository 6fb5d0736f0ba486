package format

import "testing"

func TestOfRecognisesAllNineFormats(t *testing.T) {
	want := map[PixelFormat]struct {
		layout Layout
		kind   ElementKind
	}{
		Mono:            {Packed, KindLS},
		Mono8:           {Packed, KindL8},
		Mono16:          {Packed, KindL16},
		RgbPacked:       {Packed, KindRgb},
		Rgb24Packed:     {Packed, KindRgb24},
		Rgb48Packed:     {Packed, KindRgb48},
		RgbPlanar:       {Planar, KindLS},
		Rgb888Planar:    {Planar, KindL8},
		Rgb161616Planar: {Planar, KindL16},
	}
	for f, tc := range want {
		got, ok := Of(tc.layout, tc.kind)
		if !ok || got != f {
			t.Errorf("Of(%v, %v) = (%v, %v), want (%v, true)", tc.layout, tc.kind, got, ok, f)
		}
	}
}

func TestOfRejectsPlanarColorKinds(t *testing.T) {
	for _, kind := range []ElementKind{KindRgb24, KindRgb48, KindRgb} {
		if _, ok := Of(Planar, kind); ok {
			t.Errorf("Of(Planar, %v) succeeded, want false (planar is mono-only)", kind)
		}
	}
}

func TestDecomposeInverseOf(t *testing.T) {
	for f := Mono; f <= Rgb161616Planar; f++ {
		layout, kind, ok := Decompose(f)
		if !ok {
			t.Fatalf("Decompose(%v) failed", f)
		}
		got, ok := Of(layout, kind)
		if !ok || got != f {
			t.Errorf("Of(Decompose(%v)) = (%v, %v), want (%v, true)", f, got, ok, f)
		}
	}
}

func TestChannelsByLayout(t *testing.T) {
	if Packed.Channels() != 1 {
		t.Fatalf("Packed.Channels() = %d, want 1", Packed.Channels())
	}
	if Planar.Channels() != 3 {
		t.Fatalf("Planar.Channels() = %d, want 3", Planar.Channels())
	}
}

func TestIsColor(t *testing.T) {
	if !KindRgb24.IsColor() {
		t.Fatalf("KindRgb24.IsColor() = false, want true")
	}
	if KindL8.IsColor() {
		t.Fatalf("KindL8.IsColor() = true, want false")
	}
	if !RgbPacked.IsColor() {
		t.Fatalf("RgbPacked.IsColor() = false, want true")
	}
	if Mono8.IsColor() {
		t.Fatalf("Mono8.IsColor() = true, want false")
	}
}
