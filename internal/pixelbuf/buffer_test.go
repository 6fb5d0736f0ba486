package pixelbuf

import (
	"testing"

	"github.com/source-alchemists/imagetorque/internal/format"
	"github.com/source-alchemists/imagetorque/internal/pixel"
)

func TestPackedAtSetRoundTrip(t *testing.T) {
	b, err := NewL8(format.Packed, 2, 2)
	if err != nil {
		t.Fatalf("NewL8: %v", err)
	}
	defer b.Release()

	if err := b.Set(1, 0, 99); err != nil {
		t.Fatalf("Set: %v", err)
	}
	v, err := b.At(1, 0)
	if err != nil {
		t.Fatalf("At: %v", err)
	}
	if v != 99 {
		t.Fatalf("At(1,0) = %d, want 99", v)
	}
}

func TestPackedAtRejectsOutOfRange(t *testing.T) {
	b, err := NewL8(format.Packed, 2, 2)
	if err != nil {
		t.Fatalf("NewL8: %v", err)
	}
	defer b.Release()

	if _, err := b.At(2, 0); err == nil {
		t.Fatalf("At(2,0) on a 2x2 buffer succeeded, want an error")
	}
	if _, err := b.At(-1, 0); err == nil {
		t.Fatalf("At(-1,0) succeeded, want an error")
	}
}

func TestPlanarRequiresChannelAccessors(t *testing.T) {
	b, err := NewL8(format.Planar, 2, 2)
	if err != nil {
		t.Fatalf("NewL8: %v", err)
	}
	defer b.Release()

	if _, err := b.At(0, 0); err == nil {
		t.Fatalf("At on a planar buffer succeeded, want an error")
	}
	if err := b.SetC(2, 1, 1, 7); err != nil {
		t.Fatalf("SetC: %v", err)
	}
	v, err := b.AtC(2, 1, 1)
	if err != nil {
		t.Fatalf("AtC: %v", err)
	}
	if v != 7 {
		t.Fatalf("AtC(2,1,1) = %d, want 7", v)
	}
}

func TestRowViewAndChannelView(t *testing.T) {
	b, err := FromSliceL8(format.Packed, 3, 2, []pixel.L8{1, 2, 3, 4, 5, 6})
	if err != nil {
		t.Fatalf("FromSliceL8: %v", err)
	}
	defer b.Release()

	row, err := b.RowView(0, 1)
	if err != nil {
		t.Fatalf("RowView: %v", err)
	}
	want := []pixel.L8{4, 5, 6}
	for i := range want {
		if row[i] != want[i] {
			t.Fatalf("RowView(0,1) = %v, want %v", row, want)
		}
	}

	ch, err := b.ChannelView(0)
	if err != nil {
		t.Fatalf("ChannelView: %v", err)
	}
	if len(ch) != 6 {
		t.Fatalf("len(ChannelView(0)) = %d, want 6", len(ch))
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b, err := FromSliceL8(format.Packed, 1, 1, []pixel.L8{5})
	if err != nil {
		t.Fatalf("FromSliceL8: %v", err)
	}
	defer b.Release()

	clone, err := b.Clone()
	if err != nil {
		t.Fatalf("Clone: %v", err)
	}
	defer clone.Release()

	if err := b.Set(0, 0, 9); err != nil {
		t.Fatalf("Set: %v", err)
	}
	v, _ := clone.At(0, 0)
	if v != 5 {
		t.Fatalf("clone observed the source mutation: At(0,0) = %d, want 5", v)
	}
}

func TestEqualRejectsDifferentShapeAndKind(t *testing.T) {
	a, _ := FromSliceL8(format.Packed, 1, 1, []pixel.L8{1})
	defer a.Release()
	b, _ := FromSliceL8(format.Packed, 1, 2, []pixel.L8{1, 1})
	defer b.Release()
	c, _ := FromSliceL16(format.Packed, 1, 1, []pixel.L16{1})
	defer c.Release()

	if a.Equal(b) {
		t.Fatalf("buffers of different height reported equal")
	}
	if a.Equal(c) {
		t.Fatalf("buffers of different element kind reported equal")
	}
}

func TestReleaseIsIdempotentAndDisposes(t *testing.T) {
	b, err := NewL8(format.Packed, 1, 1)
	if err != nil {
		t.Fatalf("NewL8: %v", err)
	}
	b.Release()
	b.Release()

	if _, err := b.At(0, 0); err == nil {
		t.Fatalf("At after Release succeeded, want a Disposed error")
	}
}

func TestFromSliceRejectsWrongLength(t *testing.T) {
	if _, err := FromSliceL8(format.Packed, 2, 2, []pixel.L8{1, 2, 3}); err == nil {
		t.Fatalf("FromSliceL8 with a short source succeeded, want a ShapeMismatch error")
	}
}
