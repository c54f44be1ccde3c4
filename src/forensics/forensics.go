package forensics

import (
	"bytes"
	"image"
	"math"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

// Signals holds the raw statistical measurements taken from one image.
type Signals struct {
	BlurVariance float64 `json:"blur_variance"`
	NoiseStdDev  float64 `json:"noise_stddev"`
	Width        int     `json:"width"`
	Height       int     `json:"height"`
}

// Decode parses raw image bytes. JPEG, PNG, GIF and WebP are registered.
func Decode(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	return img, err
}

// Extract computes blur, noise and resolution signals from a decoded image.
// Deterministic and pure: no I/O, no shared state.
func Extract(img image.Image) Signals {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	gray := grayscale(img)

	return Signals{
		BlurVariance: laplacianVariance(gray, w, h),
		NoiseStdDev:  stddev(gray),
		Width:        w,
		Height:       h,
	}
}

// grayscale flattens the image to row-major luma values in [0, 255].
func grayscale(img image.Image) []float64 {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	out := make([]float64, 0, w*h)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			// 16-bit channels; ITU-R BT.601 luma.
			luma := (0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)) / 257
			out = append(out, luma)
		}
	}
	return out
}

// laplacianVariance applies the 4-neighbor Laplacian kernel to the interior
// pixels and returns the variance of the responses. Low variance means few
// sharp edges: blurred or heavily recompressed material.
func laplacianVariance(gray []float64, w, h int) float64 {
	if w < 3 || h < 3 {
		return 0
	}
	responses := make([]float64, 0, (w-2)*(h-2))
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			c := gray[y*w+x]
			lap := gray[(y-1)*w+x] + gray[(y+1)*w+x] + gray[y*w+x-1] + gray[y*w+x+1] - 4*c
			responses = append(responses, lap)
		}
	}
	return variance(responses)
}

func stddev(vals []float64) float64 {
	return math.Sqrt(variance(vals))
}

func variance(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	var mean float64
	for _, v := range vals {
		mean += v
	}
	mean /= float64(len(vals))

	var sum float64
	for _, v := range vals {
		d := v - mean
		sum += d * d
	}
	return sum / float64(len(vals))
}
