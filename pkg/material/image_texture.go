package material

import (
	"fmt"
	"image"
	"os"

	// Register decoders so any common raster format can back an ImageMap.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	xdraw "golang.org/x/image/draw"

	"github.com/avclark/go-rtrace/pkg/core"
)

// ImageMap samples a decoded image by surface coordinates. Pixel lookups wrap
// modulo the image dimensions, shifted by an angular offset given in degrees
// of equirectangular longitude/latitude. Channel values are normalized to
// [0,1]; grayscale and paletted images replicate across channels.
type ImageMap struct {
	width, height int
	pixels        []core.Color // Row-major: pixels[y*width + x]
	offsetX       int          // Horizontal offset in pixels
	offsetY       int          // Vertical offset in pixels
	mul           float64      // Brightness multiplier
}

// NewImageMap creates an image texture from a decoded image. The offsets are
// in degrees (horizontal over 360, vertical over 180) and mul scales every
// sampled color.
func NewImageMap(img image.Image, offsetXDeg, offsetYDeg, mul float64) *ImageMap {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	pixels := make([]core.Color, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			pixels[y*w+x] = core.NewColor(
				float64(r)/65535.0,
				float64(g)/65535.0,
				float64(b)/65535.0,
			)
		}
	}

	return &ImageMap{
		width:   w,
		height:  h,
		pixels:  pixels,
		offsetX: int(offsetXDeg * float64(w) / 360.0),
		offsetY: int(offsetYDeg * float64(h) / 180.0),
		mul:     mul,
	}
}

// LoadImageMap decodes the image file at path into an ImageMap
func LoadImageMap(path string, offsetXDeg, offsetYDeg, mul float64) (*ImageMap, error) {
	img, err := decodeImageFile(path)
	if err != nil {
		return nil, err
	}
	return NewImageMap(img, offsetXDeg, offsetYDeg, mul), nil
}

// LoadImageMapScaled decodes the image file at path, downscaling it so that
// neither dimension exceeds maxDim. Oversized environment maps dominate
// memory otherwise; CatmullRom keeps the resampling artifact-free.
func LoadImageMapScaled(path string, maxDim int, offsetXDeg, offsetYDeg, mul float64) (*ImageMap, error) {
	img, err := decodeImageFile(path)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if maxDim > 0 && (w > maxDim || h > maxDim) {
		scale := float64(maxDim) / float64(w)
		if h > w {
			scale = float64(maxDim) / float64(h)
		}
		dst := image.NewRGBA(image.Rect(0, 0, int(float64(w)*scale), int(float64(h)*scale)))
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, xdraw.Src, nil)
		img = dst
	}

	return NewImageMap(img, offsetXDeg, offsetYDeg, mul), nil
}

func decodeImageFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open texture image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode texture image %q: %w", path, err)
	}
	return img, nil
}

// Width returns the image width in pixels
func (t *ImageMap) Width() int { return t.width }

// Height returns the image height in pixels
func (t *ImageMap) Height() int { return t.height }

// Value samples the image at surface coordinates (u, v), wrapping both axes
func (t *ImageMap) Value(u, v float64, p core.Point3) core.Color {
	x := wrap(int(u*float64(t.width))+t.offsetX, t.width)
	y := wrap(-(int(v*float64(t.height)) - t.offsetY), t.height)
	return t.pixels[y*t.width+x].Multiply(t.mul)
}

// wrap maps i into [0, n) with the sign convention of floored division
func wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
