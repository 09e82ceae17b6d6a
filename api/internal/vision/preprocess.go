package vision

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/nfnt/resize"
)

const (
	Channels = 3
	Height   = 224
	Width    = 224

	// TensorLen is the number of values in one CHW input tensor.
	TensorLen = Channels * Height * Width
)

var (
	mean = [Channels]float32{0.485, 0.456, 0.406}
	std  = [Channels]float32{0.229, 0.224, 0.225}
)

// Tensor is one normalized image in CHW order.
type Tensor []float32

// DecodeError reports image bytes that could not be decoded.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string { return "decode image: " + e.Err.Error() }

func (e *DecodeError) Unwrap() error { return e.Err }

// Decode reads an image in any registered format.
func Decode(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, &DecodeError{Err: fmt.Errorf("empty payload")}
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &DecodeError{Err: err}
	}
	if img.Bounds().Empty() {
		return nil, &DecodeError{Err: fmt.Errorf("image has no pixels")}
	}
	return img, nil
}

// Preprocess converts img to RGB, stretches it to 224x224 and normalizes
// every channel with the ImageNet mean and std.
func Preprocess(img image.Image) Tensor {
	resized := resize.Resize(Width, Height, toRGB(img), resize.Bilinear)

	b := resized.Bounds()
	out := make(Tensor, TensorLen)
	plane := Height * Width
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			r, g, bl, _ := resized.At(b.Min.X+x, b.Min.Y+y).RGBA()
			i := y*Width + x
			out[i] = (float32(r)/65535.0 - mean[0]) / std[0]
			out[plane+i] = (float32(g)/65535.0 - mean[1]) / std[1]
			out[2*plane+i] = (float32(bl)/65535.0 - mean[2]) / std[2]
		}
	}
	return out
}

// PreprocessBytes decodes data and preprocesses it.
func PreprocessBytes(data []byte) (Tensor, error) {
	img, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return Preprocess(img), nil
}

// toRGB drops alpha. Color values are taken un-premultiplied so a
// translucent pixel keeps its stored RGB.
func toRGB(img image.Image) *image.RGBA {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))

	if src, ok := img.(*image.NRGBA); ok {
		for y := 0; y < b.Dy(); y++ {
			for x := 0; x < b.Dx(); x++ {
				c := src.NRGBAAt(b.Min.X+x, b.Min.Y+y)
				dst.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff})
			}
		}
		return dst
	}

	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			dst.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff})
		}
	}
	return dst
}
