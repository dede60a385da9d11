package renderer

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/avclark/go-rtrace/pkg/core"
)

// ErrCameraConfig indicates camera parameters that cannot produce a usable
// viewport.
var ErrCameraConfig = errors.New("invalid camera configuration")

// OffsetMode selects how per-sample pixel jitter offsets are generated
type OffsetMode int

const (
	// OffsetRandom draws a uniform offset in [-0.5, 0.5]² per sample
	OffsetRandom OffsetMode = iota

	// OffsetDeterministic derives the offset from the sample index, giving
	// reproducible sample positions independent of the random stream.
	OffsetDeterministic

	// OffsetCenter always shoots through the pixel center. Forced when the
	// sample count is 1.
	OffsetCenter
)

// CameraConfig holds the user-facing camera parameters
type CameraConfig struct {
	Width  int     // Output image width in pixels
	Height int     // Output image height; derived from Aspect when 0
	Aspect float64 // Width/height ratio, used only when Height is 0

	Center core.Point3 // Camera position
	LookAt core.Point3 // Point the camera aims at
	Up     core.Vec3   // World up vector; defaults to +Y

	Samples  int // Rays per pixel, at least 1
	MaxDepth int // Bounce limit per ray

	VFov       float64 // Vertical field of view in degrees, in (0, 180)
	FocusAngle float64 // Defocus cone angle in degrees; 0 disables depth of field
	FocusDist  float64 // Distance to the plane of perfect focus

	Offset OffsetMode
}

// Camera holds the derived viewport geometry and generates primary rays
type Camera struct {
	width, height int
	samples       int
	sampleScale   float64
	maxDepth      int
	offset        OffsetMode

	center      core.Point3
	pixel00     core.Point3
	pixelDeltaU core.Vec3
	pixelDeltaV core.Vec3
	u, v, w     core.Vec3

	focusAngle   float64
	defocusDiskU core.Vec3
	defocusDiskV core.Vec3
}

// NewCamera derives the viewport geometry from the configuration. Degenerate
// geometry (zero-size image, field of view outside (0,180), look-at equal to
// the center, or an up vector parallel to the view direction) fails here
// rather than producing NaNs at render time.
func NewCamera(cfg CameraConfig) (*Camera, error) {
	if cfg.Width <= 0 {
		return nil, fmt.Errorf("%w: width %d", ErrCameraConfig, cfg.Width)
	}

	height := cfg.Height
	if height <= 0 {
		if cfg.Aspect <= 0 {
			return nil, fmt.Errorf("%w: need a positive height or aspect ratio", ErrCameraConfig)
		}
		height = int(float64(cfg.Width) / cfg.Aspect)
		if height < 1 {
			height = 1
		}
	}

	if cfg.VFov <= 0 || cfg.VFov >= 180 {
		return nil, fmt.Errorf("%w: vertical fov %g° outside (0, 180)", ErrCameraConfig, cfg.VFov)
	}

	up := cfg.Up
	if up.NearZero() {
		up = core.NewVec3(0, 1, 0)
	}

	focusDist := cfg.FocusDist
	if focusDist <= 0 {
		focusDist = 10
	}

	samples := cfg.Samples
	if samples < 1 {
		samples = 1
	}
	offset := cfg.Offset
	if samples == 1 {
		offset = OffsetCenter
	}

	maxDepth := cfg.MaxDepth
	if maxDepth < 1 {
		maxDepth = 16
	}

	// Orthonormal basis: w points from the target back toward the camera
	view := cfg.Center.Subtract(cfg.LookAt)
	if view.NearZero() {
		return nil, fmt.Errorf("%w: look-at coincides with camera center", ErrCameraConfig)
	}
	w := view.Normalize()

	uCross := up.Cross(w)
	if uCross.NearZero() {
		return nil, fmt.Errorf("%w: up vector is parallel to the view direction", ErrCameraConfig)
	}
	u := uCross.Normalize()
	v := w.Cross(u)

	theta := cfg.VFov * math.Pi / 180
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h * focusDist
	viewportWidth := viewportHeight * float64(cfg.Width) / float64(height)

	viewportU := u.Multiply(viewportWidth)
	viewportV := v.Negate().Multiply(viewportHeight)

	pixelDeltaU := viewportU.Multiply(1.0 / float64(cfg.Width))
	pixelDeltaV := viewportV.Multiply(1.0 / float64(height))

	upperLeft := cfg.Center.
		Subtract(w.Multiply(focusDist)).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))
	pixel00 := upperLeft.Add(pixelDeltaU.Add(pixelDeltaV).Multiply(0.5))

	defocusRadius := focusDist * math.Tan((cfg.FocusAngle/2)*math.Pi/180)

	return &Camera{
		width:        cfg.Width,
		height:       height,
		samples:      samples,
		sampleScale:  1.0 / float64(samples),
		maxDepth:     maxDepth,
		offset:       offset,
		center:       cfg.Center,
		pixel00:      pixel00,
		pixelDeltaU:  pixelDeltaU,
		pixelDeltaV:  pixelDeltaV,
		u:            u,
		v:            v,
		w:            w,
		focusAngle:   cfg.FocusAngle,
		defocusDiskU: u.Multiply(defocusRadius),
		defocusDiskV: v.Multiply(defocusRadius),
	}, nil
}

// Width returns the output image width in pixels
func (c *Camera) Width() int { return c.width }

// Height returns the output image height in pixels
func (c *Camera) Height() int { return c.height }

// Samples returns the per-pixel sample count
func (c *Camera) Samples() int { return c.samples }

// MaxDepth returns the bounce limit per traced ray
func (c *Camera) MaxDepth() int { return c.maxDepth }

// GetRay generates the ray for pixel (i, j) and the given sample index,
// jittered within the pixel and originating on the defocus disc when depth
// of field is enabled.
func (c *Camera) GetRay(i, j, sample int, rng *rand.Rand) core.Ray {
	offX, offY := c.sampleOffset(sample, rng)

	pixelSample := c.pixel00.
		Add(c.pixelDeltaU.Multiply(float64(i) + offX)).
		Add(c.pixelDeltaV.Multiply(float64(j) + offY))

	origin := c.center
	if c.focusAngle > 0 {
		p := core.RandomInUnitDisk(rng)
		origin = c.center.
			Add(c.defocusDiskU.Multiply(p.X)).
			Add(c.defocusDiskV.Multiply(p.Y))
	}

	return core.NewRay(origin, pixelSample.Subtract(origin))
}

func (c *Camera) sampleOffset(sample int, rng *rand.Rand) (float64, float64) {
	switch c.offset {
	case OffsetDeterministic:
		s := float64(sample)
		n := float64(c.samples)
		return math.Mod(s/n, 1) - 0.5, math.Mod(3*s/n, 1) - 0.5
	case OffsetCenter:
		return 0, 0
	default:
		return rng.Float64() - 0.5, rng.Float64() - 0.5
	}
}
