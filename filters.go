package imagetorque

import (
	"github.com/source-alchemists/imagetorque/internal/convert"
	"github.com/source-alchemists/imagetorque/internal/format"
	"github.com/source-alchemists/imagetorque/internal/geom"
	"github.com/source-alchemists/imagetorque/internal/ierr"
	"github.com/source-alchemists/imagetorque/internal/pixelbuf"
)

// greyKindFor is the packed monochrome kind matching k's precision.
func greyKindFor(k format.ElementKind) format.ElementKind {
	switch k {
	case format.KindL16, format.KindRgb48:
		return format.KindL16
	case format.KindLS, format.KindRgb:
		return format.KindLS
	default:
		return format.KindL8
	}
}

// Grayscale converts the image to packed monochrome at its current
// precision. A planar RGB source has its luminance computed from all
// three channel planes rather than just the first.
func (img *Image) Grayscale() (*Image, error) {
	if err := img.checkDisposed("Image.Grayscale"); err != nil {
		return nil, err
	}
	out, err := convert.Convert(img.root, format.Packed, greyKindFor(img.root.ElementKind()))
	if err != nil {
		return nil, err
	}
	return New(out), nil
}

// MirrorHorizontal returns a new image with each row reversed.
func (img *Image) MirrorHorizontal() (*Image, error) {
	if err := img.checkDisposed("Image.MirrorHorizontal"); err != nil {
		return nil, err
	}
	out, err := geom.MirrorHorizontal(img.root)
	if err != nil {
		return nil, err
	}
	return New(out), nil
}

// MirrorVertical returns a new image with the row order reversed.
func (img *Image) MirrorVertical() (*Image, error) {
	if err := img.checkDisposed("Image.MirrorVertical"); err != nil {
		return nil, err
	}
	out, err := geom.MirrorVertical(img.root)
	if err != nil {
		return nil, err
	}
	return New(out), nil
}

func (img *Image) rgbView() (*pixelbuf.RgbBuffer, pixelbuf.AnyBuffer, error) {
	buf, err := convert.Convert(img.root, format.Packed, format.KindRgb)
	if err != nil {
		return nil, nil, err
	}
	rgb, ok := buf.(*pixelbuf.RgbBuffer)
	if !ok {
		buf.Release()
		return nil, nil, ierr.New(ierr.UnsupportedFormat, "Image.rgbView", "conversion to Rgb did not yield an Rgb buffer")
	}
	return rgb, buf, nil
}

func checkUnitThreshold(op string, threshold float32) error {
	if threshold < 0 || threshold > 1 {
		return ierr.New(ierr.InvalidArgument, op, "threshold must be within [0,1]")
	}
	return nil
}

// BinarizeLuminance thresholds the image's luminance, producing a new
// packed L8 image of 0/255.
func (img *Image) BinarizeLuminance(threshold float32) (*Image, error) {
	if err := img.checkDisposed("Image.BinarizeLuminance"); err != nil {
		return nil, err
	}
	if err := checkUnitThreshold("Image.BinarizeLuminance", threshold); err != nil {
		return nil, err
	}
	rgb, owned, err := img.rgbView()
	if err != nil {
		return nil, err
	}
	defer owned.Release()

	out, err := geom.BinarizeLuminance(rgb, threshold)
	if err != nil {
		return nil, err
	}
	return New(out), nil
}

// BinarizeSaturation thresholds the image's HSV saturation, producing a
// new packed L8 image of 0/255.
func (img *Image) BinarizeSaturation(threshold float32) (*Image, error) {
	if err := img.checkDisposed("Image.BinarizeSaturation"); err != nil {
		return nil, err
	}
	if err := checkUnitThreshold("Image.BinarizeSaturation", threshold); err != nil {
		return nil, err
	}
	rgb, owned, err := img.rgbView()
	if err != nil {
		return nil, err
	}
	defer owned.Release()

	out, err := geom.BinarizeSaturation(rgb, threshold)
	if err != nil {
		return nil, err
	}
	return New(out), nil
}
