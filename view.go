package imagetorque

import "github.com/source-alchemists/imagetorque/internal/pixelbuf"

// View is a read-only window onto one of an Image's buffers: the root,
// or a cached conversion. It must not outlive the Image it came from.
type View[T Element] struct {
	buf *pixelbuf.Buffer[T]
}

func (v View[T]) Width() int      { return v.buf.Width() }
func (v View[T]) Height() int     { return v.buf.Height() }
func (v View[T]) Channels() int   { return v.buf.Channels() }
func (v View[T]) Layout() Layout  { return v.buf.Layout() }

// At reads a packed element. Planar views must use AtC.
func (v View[T]) At(x, y int) (T, error) { return v.buf.At(x, y) }

// AtC reads element (x,y) of channel c. For packed views c must be 0.
func (v View[T]) AtC(c, x, y int) (T, error) { return v.buf.AtC(c, x, y) }

// RowView returns the W elements of row r within channel c.
func (v View[T]) RowView(c, r int) ([]T, error) { return v.buf.RowView(c, r) }

// ChannelView returns the W*H elements of channel c.
func (v View[T]) ChannelView(c int) ([]T, error) { return v.buf.ChannelView(c) }
