package imagetorque

import (
	"sync"

	"github.com/source-alchemists/imagetorque/buffer"
	"github.com/source-alchemists/imagetorque/internal/convert"
	"github.com/source-alchemists/imagetorque/internal/format"
	"github.com/source-alchemists/imagetorque/internal/ierr"
	"github.com/source-alchemists/imagetorque/internal/pixel"
	"github.com/source-alchemists/imagetorque/internal/pixelbuf"
)

// Image owns a root pixel buffer plus a concurrent cache of buffers
// converted to other (layout, element) representations. The zero value
// is not usable; construct with New or Load.
type Image struct {
	root pixelbuf.AnyBuffer

	mu       sync.Mutex
	released bool
	cache    sync.Map // format.PixelFormat -> pixelbuf.AnyBuffer
}

// New wraps an owned pixel buffer in an Image. The image takes ownership
// of buf: releasing the image releases buf. buf is typically built with
// one of the buffer package's NewXxx/FromSliceXxx constructors, or decoded
// by a registered Codec. The NewXxx functions below build the buffer and
// wrap it in one step.
func New(buf buffer.Buffer) *Image {
	return &Image{root: buf}
}

// NewL8 constructs an Image from owned L8 pixel data of the given layout.
func NewL8(layout Layout, w, h int, src []L8) (*Image, error) {
	buf, err := buffer.FromSliceL8(layout, w, h, src)
	if err != nil {
		return nil, err
	}
	return New(buf), nil
}

// NewL16 constructs an Image from owned L16 pixel data of the given layout.
func NewL16(layout Layout, w, h int, src []L16) (*Image, error) {
	buf, err := buffer.FromSliceL16(layout, w, h, src)
	if err != nil {
		return nil, err
	}
	return New(buf), nil
}

// NewLS constructs an Image from owned LS pixel data of the given layout.
func NewLS(layout Layout, w, h int, src []LS) (*Image, error) {
	buf, err := buffer.FromSliceLS(layout, w, h, src)
	if err != nil {
		return nil, err
	}
	return New(buf), nil
}

// NewRgb24 constructs an Image from owned packed Rgb24 pixel data.
func NewRgb24(w, h int, src []Rgb24) (*Image, error) {
	buf, err := buffer.FromSliceRgb24(w, h, src)
	if err != nil {
		return nil, err
	}
	return New(buf), nil
}

// NewRgb48 constructs an Image from owned packed Rgb48 pixel data.
func NewRgb48(w, h int, src []Rgb48) (*Image, error) {
	buf, err := buffer.FromSliceRgb48(w, h, src)
	if err != nil {
		return nil, err
	}
	return New(buf), nil
}

// NewRgb constructs an Image from owned packed Rgb pixel data.
func NewRgb(w, h int, src []Rgb) (*Image, error) {
	buf, err := buffer.FromSliceRgb(w, h, src)
	if err != nil {
		return nil, err
	}
	return New(buf), nil
}

func (img *Image) Width() int  { return img.root.Width() }
func (img *Image) Height() int { return img.root.Height() }

func (img *Image) Size() (width, height int) {
	return img.root.Width(), img.root.Height()
}

func (img *Image) PixelFormat() format.PixelFormat { return img.root.Format() }
func (img *Image) IsColor() bool                   { return img.root.ElementKind().IsColor() }

func (img *Image) checkDisposed(op string) error {
	img.mu.Lock()
	defer img.mu.Unlock()
	if img.released {
		return ierr.New(ierr.Disposed, op, "image already released")
	}
	return nil
}

// view returns the root buffer, or a cached conversion, for (layout,
// kind), invoking the conversion engine on a cache miss. Two racing
// misses for the same key may both convert; the first insertion wins and
// the loser is released immediately.
func (img *Image) view(layout format.Layout, kind format.ElementKind) (pixelbuf.AnyBuffer, error) {
	if err := img.checkDisposed("Image.view"); err != nil {
		return nil, err
	}
	if img.root.Layout() == layout && img.root.ElementKind() == kind {
		return img.root, nil
	}

	pf, ok := format.Of(layout, kind)
	if !ok {
		return nil, ierr.New(ierr.UnsupportedFormat, "Image.view", "unsupported (layout, element) combination")
	}
	if v, ok := img.cache.Load(pf); ok {
		return v.(pixelbuf.AnyBuffer), nil
	}

	converted, err := convert.Convert(img.root, layout, kind)
	if err != nil {
		return nil, err
	}
	actual, loaded := img.cache.LoadOrStore(pf, converted)
	if loaded {
		converted.Release()
		return actual.(pixelbuf.AnyBuffer), nil
	}
	return actual.(pixelbuf.AnyBuffer), nil
}

func elementKindOf[T Element]() (format.ElementKind, bool) {
	var zero T
	switch any(zero).(type) {
	case pixel.L8:
		return format.KindL8, true
	case pixel.L16:
		return format.KindL16, true
	case pixel.LS:
		return format.KindLS, true
	case pixel.Rgb24:
		return format.KindRgb24, true
	case pixel.Rgb48:
		return format.KindRgb48, true
	case pixel.Rgb:
		return format.KindRgb, true
	default:
		return 0, false
	}
}

// AsPacked returns a read-only packed view of img in element kind T,
// converting and caching on first use.
func AsPacked[T Element](img *Image) (View[T], error) {
	return asView[T](img, format.Packed)
}

// AsPlanar returns a read-only planar view of img in element kind T,
// converting and caching on first use. Only the three monochrome kinds
// (L8, L16, LS) have a planar representation.
func AsPlanar[T Element](img *Image) (View[T], error) {
	return asView[T](img, format.Planar)
}

func asView[T Element](img *Image, layout format.Layout) (View[T], error) {
	kind, ok := elementKindOf[T]()
	if !ok {
		return View[T]{}, ierr.New(ierr.UnsupportedFormat, "imagetorque.AsPacked", "unrecognised element kind")
	}
	buf, err := img.view(layout, kind)
	if err != nil {
		return View[T]{}, err
	}
	b, ok := buf.(*pixelbuf.Buffer[T])
	if !ok {
		return View[T]{}, ierr.New(ierr.UnsupportedFormat, "imagetorque.AsPacked", "converted buffer has an unexpected element type")
	}
	return View[T]{buf: b}, nil
}

// Equal is structural equality over dimensions, pixel format, and the root
// buffer's elements. Converted caches are derived state and excluded.
func (img *Image) Equal(other *Image) bool {
	if other == nil {
		return img == nil
	}
	if img == nil {
		return false
	}
	return img.root.Equal(other.root)
}

// Release releases the root buffer plus every cached converted buffer,
// exactly once. Subsequent operations on img fail with Disposed.
func (img *Image) Release() {
	img.mu.Lock()
	if img.released {
		img.mu.Unlock()
		return
	}
	img.released = true
	img.mu.Unlock()

	img.root.Release()
	img.cache.Range(func(_, v any) bool {
		v.(pixelbuf.AnyBuffer).Release()
		return true
	})
}
