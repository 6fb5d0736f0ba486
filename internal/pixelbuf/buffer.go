// Package pixelbuf implements the layout-polymorphic pixel buffer that is
// the core container of the library: a packed or planar 2D array of one
// of the six pixel element kinds, backed by pool-leased storage with
// exactly-once release.
package pixelbuf

import (
	"github.com/source-alchemists/imagetorque/internal/format"
	"github.com/source-alchemists/imagetorque/internal/ierr"
	"github.com/source-alchemists/imagetorque/internal/pool"
)

// AnyBuffer is the opaque, type-erased view of a Buffer[T] that the
// marshal, conversion, resampling, and facade layers operate over without
// knowing the concrete element type.
type AnyBuffer interface {
	Width() int
	Height() int
	Channels() int
	Layout() format.Layout
	ElementKind() format.ElementKind
	Format() format.PixelFormat
	Release()
	Equal(AnyBuffer) bool
}

// Buffer is a 2D (packed) or 3x2D (planar) container of W*H*C elements of
// type T, exclusively owning a block leased from a pool.
type Buffer[T comparable] struct {
	w, h, c  int
	layout   format.Layout
	kind     format.ElementKind
	data     []T
	pl       *pool.Pool[T]
	released bool
}

// New constructs an empty (zero-valued) buffer of the given layout, width,
// and height, leasing its backing block from pl.
func New[T comparable](pl *pool.Pool[T], layout format.Layout, w, h int, kind format.ElementKind) (*Buffer[T], error) {
	if w <= 0 || h <= 0 {
		return nil, ierr.New(ierr.InvalidArgument, "pixelbuf.New", "width and height must be positive")
	}
	c := layout.Channels()
	data := pl.Rent(w * h * c)
	var zero T
	for i := range data {
		data[i] = zero
	}
	return &Buffer[T]{w: w, h: h, c: c, layout: layout, kind: kind, data: data, pl: pl}, nil
}

// FromSlice constructs a buffer by copying src, which must have exactly
// W*H*C elements; a wrong-length source signals ShapeMismatch.
func FromSlice[T comparable](pl *pool.Pool[T], layout format.Layout, w, h int, kind format.ElementKind, src []T) (*Buffer[T], error) {
	if w <= 0 || h <= 0 {
		return nil, ierr.New(ierr.InvalidArgument, "pixelbuf.FromSlice", "width and height must be positive")
	}
	c := layout.Channels()
	if len(src) != w*h*c {
		return nil, ierr.New(ierr.ShapeMismatch, "pixelbuf.FromSlice", "source length does not match W*H*C")
	}
	data := pl.Rent(w * h * c)
	copy(data, src)
	return &Buffer[T]{w: w, h: h, c: c, layout: layout, kind: kind, data: data, pl: pl}, nil
}

func (b *Buffer[T]) Width() int                      { return b.w }
func (b *Buffer[T]) Height() int                     { return b.h }
func (b *Buffer[T]) Channels() int                   { return b.c }
func (b *Buffer[T]) Layout() format.Layout           { return b.layout }
func (b *Buffer[T]) ElementKind() format.ElementKind { return b.kind }

func (b *Buffer[T]) Format() format.PixelFormat {
	f, _ := format.Of(b.layout, b.kind)
	return f
}

// Data exposes the raw backing slice for use by the conversion and
// resampling engines. It must not be retained past the buffer's lifetime.
func (b *Buffer[T]) Data() []T { return b.data }

func (b *Buffer[T]) index(x, y int) int { return y*b.w + x }

// At reads a packed pixel. Planar buffers must use AtC.
func (b *Buffer[T]) At(x, y int) (T, error) {
	var zero T
	if b.layout != format.Packed {
		return zero, ierr.New(ierr.InvalidArgument, "Buffer.At", "planar buffer requires an explicit channel")
	}
	if err := b.checkDisposed("Buffer.At"); err != nil {
		return zero, err
	}
	if x < 0 || x >= b.w || y < 0 || y >= b.h {
		return zero, ierr.New(ierr.InvalidArgument, "Buffer.At", "index out of range")
	}
	return b.data[b.index(x, y)], nil
}

// Set writes a packed pixel. Planar buffers must use SetC.
func (b *Buffer[T]) Set(x, y int, v T) error {
	if b.layout != format.Packed {
		return ierr.New(ierr.InvalidArgument, "Buffer.Set", "planar buffer requires an explicit channel")
	}
	if err := b.checkDisposed("Buffer.Set"); err != nil {
		return err
	}
	if x < 0 || x >= b.w || y < 0 || y >= b.h {
		return ierr.New(ierr.InvalidArgument, "Buffer.Set", "index out of range")
	}
	b.data[b.index(x, y)] = v
	return nil
}

// AtC reads element (x,y) of channel c. For packed buffers c must be 0.
func (b *Buffer[T]) AtC(c, x, y int) (T, error) {
	var zero T
	if err := b.checkDisposed("Buffer.AtC"); err != nil {
		return zero, err
	}
	if c < 0 || c >= b.c || x < 0 || x >= b.w || y < 0 || y >= b.h {
		return zero, ierr.New(ierr.InvalidArgument, "Buffer.AtC", "index out of range")
	}
	return b.data[c*b.w*b.h+b.index(x, y)], nil
}

// SetC writes element (x,y) of channel c. For packed buffers c must be 0.
func (b *Buffer[T]) SetC(c, x, y int, v T) error {
	if err := b.checkDisposed("Buffer.SetC"); err != nil {
		return err
	}
	if c < 0 || c >= b.c || x < 0 || x >= b.w || y < 0 || y >= b.h {
		return ierr.New(ierr.InvalidArgument, "Buffer.SetC", "index out of range")
	}
	b.data[c*b.w*b.h+b.index(x, y)] = v
	return nil
}

// RowView returns the W elements of row r within channel c (c must be 0
// for packed buffers).
func (b *Buffer[T]) RowView(c, r int) ([]T, error) {
	if err := b.checkDisposed("Buffer.RowView"); err != nil {
		return nil, err
	}
	if c < 0 || c >= b.c || r < 0 || r >= b.h {
		return nil, ierr.New(ierr.InvalidArgument, "Buffer.RowView", "row or channel out of range")
	}
	base := c*b.w*b.h + r*b.w
	return b.data[base : base+b.w], nil
}

// ChannelView returns the W*H elements of channel c (c must be 0 for
// packed buffers, which returns the whole buffer).
func (b *Buffer[T]) ChannelView(c int) ([]T, error) {
	if err := b.checkDisposed("Buffer.ChannelView"); err != nil {
		return nil, err
	}
	if c < 0 || c >= b.c {
		return nil, ierr.New(ierr.InvalidArgument, "Buffer.ChannelView", "channel out of range")
	}
	base := c * b.w * b.h
	return b.data[base : base+b.w*b.h], nil
}

// Clone returns a deep, independently-owned copy of the buffer.
func (b *Buffer[T]) Clone() (*Buffer[T], error) {
	if err := b.checkDisposed("Buffer.Clone"); err != nil {
		return nil, err
	}
	return FromSlice(b.pl, b.layout, b.w, b.h, b.kind, b.data)
}

// Equal is structural equality over (W, H, format, elements): reflexive,
// symmetric, transitive, and sensitive to any of those fields differing.
// Buffers of a different concrete element type (and therefore a
// different AnyBuffer implementation) are never equal.
func (b *Buffer[T]) Equal(other AnyBuffer) bool {
	if other == nil {
		return b == nil
	}
	o, ok := other.(*Buffer[T])
	if !ok {
		return false
	}
	if b.w != o.w || b.h != o.h || b.layout != o.layout || b.kind != o.kind {
		return false
	}
	if len(b.data) != len(o.data) {
		return false
	}
	for i := range b.data {
		if b.data[i] != o.data[i] {
			return false
		}
	}
	return true
}

// Release returns the backing block to its pool. It is idempotent-safe to
// call multiple times: subsequent operations after the first release fail
// with Disposed.
func (b *Buffer[T]) Release() {
	if b.released {
		return
	}
	b.released = true
	b.pl.Release(b.data)
	b.data = nil
}

func (b *Buffer[T]) checkDisposed(op string) error {
	if b.released {
		return ierr.New(ierr.Disposed, op, "buffer already released")
	}
	return nil
}

var _ AnyBuffer = (*Buffer[uint8])(nil)
