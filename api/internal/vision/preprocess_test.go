package vision_test

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"

	"breed-bot/api/internal/vision"
)

func fill(img interface{ Set(x, y int, c color.Color) }, w, h int, c color.Color) {
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestPreprocess_Shape(t *testing.T) {
	tests := []struct {
		description string
		img         image.Image
	}{
		{"single pixel", image.NewRGBA(image.Rect(0, 0, 1, 1))},
		{"wide rgba", image.NewRGBA(image.Rect(0, 0, 500, 100))},
		{"tall gray", image.NewGray(image.Rect(0, 0, 10, 1000))},
		{"nrgba with offset bounds", image.NewNRGBA(image.Rect(5, 5, 300, 300))},
		{"paletted", image.NewPaletted(image.Rect(0, 0, 64, 48), color.Palette{color.Black, color.White})},
		{"ycbcr", image.NewYCbCr(image.Rect(0, 0, 320, 240), image.YCbCrSubsampleRatio420)},
	}
	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			req := require.New(t)
			out := vision.Preprocess(tt.img)
			req.Len(out, vision.TensorLen)
			req.Equal(3*224*224, len(out))
		})
	}
}

func TestPreprocess_Normalization(t *testing.T) {
	req := require.New(t)
	img := image.NewRGBA(image.Rect(0, 0, 40, 30))
	fill(img, 40, 30, color.RGBA{R: 255, G: 0, B: 255, A: 255})

	out := vision.Preprocess(img)
	plane := 224 * 224

	for _, i := range []int{0, 1234, plane - 1} {
		req.InDelta((1.0-0.485)/0.229, out[i], 0.03)
		req.InDelta((0.0-0.456)/0.224, out[plane+i], 0.03)
		req.InDelta((1.0-0.406)/0.225, out[2*plane+i], 0.03)
	}
}

func TestPreprocess_AlphaDiscarded(t *testing.T) {
	req := require.New(t)
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	fill(img, 8, 8, color.NRGBA{R: 255, G: 255, B: 255, A: 0})

	out := vision.Preprocess(img)
	plane := 224 * 224
	req.InDelta((1.0-0.485)/0.229, out[0], 0.03)
	req.InDelta((1.0-0.456)/0.224, out[plane], 0.03)
	req.InDelta((1.0-0.406)/0.225, out[2*plane], 0.03)
}

func TestPreprocess_GrayBecomesThreeEqualChannels(t *testing.T) {
	req := require.New(t)
	img := image.NewGray(image.Rect(0, 0, 16, 16))
	fill(img, 16, 16, color.Gray{Y: 128})

	out := vision.Preprocess(img)
	plane := 224 * 224
	raw := func(v float32, c int) float64 {
		m := []float64{0.485, 0.456, 0.406}[c]
		s := []float64{0.229, 0.224, 0.225}[c]
		return float64(v)*s + m
	}
	req.InDelta(raw(out[10], 0), raw(out[plane+10], 1), 1e-5)
	req.InDelta(raw(out[10], 0), raw(out[2*plane+10], 2), 1e-5)
	req.InDelta(128.0/255.0, raw(out[10], 0), 0.01)
}

func TestPreprocessBytes(t *testing.T) {
	t.Run("png round trip", func(t *testing.T) {
		req := require.New(t)
		img := image.NewRGBA(image.Rect(0, 0, 33, 17))
		fill(img, 33, 17, color.RGBA{R: 10, G: 20, B: 30, A: 255})

		out, err := vision.PreprocessBytes(encodePNG(t, img))
		req.NoError(err)
		req.Len(out, vision.TensorLen)
	})

	t.Run("garbage is a decode error", func(t *testing.T) {
		req := require.New(t)
		_, err := vision.PreprocessBytes([]byte("definitely not an image"))
		req.Error(err)
		var de *vision.DecodeError
		req.True(errors.As(err, &de))
	})

	t.Run("empty payload is a decode error", func(t *testing.T) {
		req := require.New(t)
		_, err := vision.Decode(nil)
		var de *vision.DecodeError
		req.ErrorAs(err, &de)
	})

	t.Run("truncated png is a decode error", func(t *testing.T) {
		req := require.New(t)
		data := encodePNG(t, image.NewRGBA(image.Rect(0, 0, 20, 20)))
		_, err := vision.PreprocessBytes(data[:len(data)/2])
		var de *vision.DecodeError
		req.ErrorAs(err, &de)
	})
}
