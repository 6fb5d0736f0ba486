package imagetorque

import (
	"bytes"
	"io"
	"os"

	"github.com/source-alchemists/imagetorque/internal/ierr"
)

// Load decodes an image from a seekable stream, selecting a codec from
// opts.Codecs by sniffing up to opts.MaxHeaderSize leading bytes.
func Load(r io.ReadSeeker, opts Options) (*Image, error) {
	reg := opts.registry()
	c, err := reg.Detect(r, opts.MaxHeaderSize)
	if err != nil {
		return nil, err
	}

	buf, err := c.Decode(r)
	if err != nil {
		return nil, ierr.Wrap(ierr.InvalidData, "imagetorque.Load", err)
	}
	return New(buf), nil
}

// LoadBytes decodes an image from an in-memory byte slice.
func LoadBytes(data []byte, opts Options) (*Image, error) {
	return Load(bytes.NewReader(data), opts)
}

// LoadFile opens path and decodes the image from it.
func LoadFile(path string, opts Options) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ierr.Wrap(ierr.IoFailure, "imagetorque.LoadFile", err)
	}
	defer f.Close()
	return Load(f, opts)
}
