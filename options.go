package imagetorque

import "github.com/source-alchemists/imagetorque/codec"

// Options configures codec detection and, on save, encoder lookup.
type Options struct {
	// MaxHeaderSize bounds how many leading bytes are sniffed for codec
	// detection. <= 0 uses codec.DefaultMaxHeaderSize (512).
	MaxHeaderSize int
	// Codecs are tried in order; the first whose header predicate matches
	// wins detection, and the first that supports a given encoder tag wins
	// on save.
	Codecs []codec.Codec
}

func (o Options) registry() *codec.Registry {
	return codec.NewRegistry(o.Codecs...)
}
