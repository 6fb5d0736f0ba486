package imagetorque

import "github.com/source-alchemists/imagetorque/internal/resample"

// Method selects the resampling kernel Resize uses.
type Method = resample.Method

const (
	NearestNeighbour = resample.NearestNeighbour
	Bilinear         = resample.Bilinear
	Bicubic          = resample.Bicubic
)

// ResampleOptions controls the resize engine's execution.
type ResampleOptions = resample.Options

// Resize produces a new, owned Image holding v resampled to
// (targetWidth, targetHeight) with v's element kind and layout, using
// method. The source view's image is left untouched.
func Resize[T Element](v View[T], targetWidth, targetHeight int, method Method, opts ResampleOptions) (*Image, error) {
	out, err := resample.Resize(v.buf, targetWidth, targetHeight, method, opts)
	if err != nil {
		return nil, err
	}
	return New(out), nil
}
