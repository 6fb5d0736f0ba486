package codec

import (
	"io"

	"github.com/source-alchemists/imagetorque/internal/ierr"
)

// Registry holds codecs in registration order; Detect selects the first
// one whose header predicate matches.
type Registry struct {
	codecs []Codec
}

// NewRegistry builds a registry seeded with codecs, preserving order.
func NewRegistry(codecs ...Codec) *Registry {
	r := &Registry{}
	r.codecs = append(r.codecs, codecs...)
	return r
}

// Register appends a codec, to be tried after every codec already
// registered.
func (r *Registry) Register(c Codec) {
	r.codecs = append(r.codecs, c)
}

// ByTag returns the first registered codec that supports the given
// lower-cased encoder-type tag.
func (r *Registry) ByTag(tag string) (Codec, bool) {
	for _, c := range r.codecs {
		if c.SupportsTag(tag) {
			return c, true
		}
	}
	return nil, false
}

// Detect reads up to maxHeaderSize bytes from rs, rewinds the stream, and
// returns the first registered codec whose Matches predicate accepts
// those bytes. maxHeaderSize <= 0 uses DefaultMaxHeaderSize.
func (r *Registry) Detect(rs io.ReadSeeker, maxHeaderSize int) (Codec, error) {
	if maxHeaderSize <= 0 {
		maxHeaderSize = DefaultMaxHeaderSize
	}

	header := make([]byte, maxHeaderSize)
	n, err := io.ReadFull(rs, header)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, ierr.Wrap(ierr.IoFailure, "codec.Detect", err)
	}
	header = header[:n]

	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, ierr.Wrap(ierr.IoFailure, "codec.Detect", err)
	}

	if len(header) == 0 {
		return nil, ierr.New(ierr.InvalidData, "codec.Detect", "empty header")
	}

	for _, c := range r.codecs {
		hs := c.HeaderSize()
		if len(header) < hs {
			continue
		}
		if c.Matches(header[:hs]) {
			return c, nil
		}
	}
	return nil, ierr.New(ierr.InvalidData, "codec.Detect", "no registered codec matches the stream header")
}
