// Package codec defines the decode/encode boundary and the header-sniff
// registry that picks a codec for an incoming stream. Concrete codecs
// (PNG, JPEG, ...) are registered by the importing application; this
// package ships no format implementations of its own.
package codec

import (
	"io"

	"github.com/source-alchemists/imagetorque/buffer"
)

// DefaultMaxHeaderSize is used when a caller passes a non-positive
// max header size to Detect.
const DefaultMaxHeaderSize = 512

// Codec is one registrable image format: a fixed-size header predicate
// plus a decoder and an encoder.
type Codec interface {
	// HeaderSize is the number of leading bytes Matches inspects.
	HeaderSize() int
	// Matches reports whether header (exactly HeaderSize bytes) identifies
	// this format.
	Matches(header []byte) bool
	// Decode reads a full image from r and returns an owned pixel buffer.
	Decode(r io.Reader) (buffer.Buffer, error)
	// SupportsTag reports whether this codec handles the given lower-cased
	// encoder-type tag (e.g. "png", "jpg").
	SupportsTag(tag string) bool
	// Encode writes buf to w under the given tag and quality (1-100).
	Encode(w io.Writer, buf buffer.Buffer, tag string, quality int) error
}
