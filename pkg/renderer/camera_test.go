package renderer

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/avclark/go-rtrace/pkg/core"
)

func validConfig() CameraConfig {
	return CameraConfig{
		Width:   100,
		Aspect:  2,
		Center:  core.NewPoint3(0, 0, 1),
		LookAt:  core.NewPoint3(0, 0, -1),
		Samples: 4,
		VFov:    90,
	}
}

func TestNewCamera_InvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CameraConfig)
	}{
		{"zero width", func(c *CameraConfig) { c.Width = 0 }},
		{"no height or aspect", func(c *CameraConfig) { c.Aspect = 0 }},
		{"fov zero", func(c *CameraConfig) { c.VFov = 0 }},
		{"fov too wide", func(c *CameraConfig) { c.VFov = 180 }},
		{"look-at equals center", func(c *CameraConfig) { c.LookAt = c.Center }},
		{"up parallel to view", func(c *CameraConfig) { c.Up = core.NewVec3(0, 0, -1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			_, err := NewCamera(cfg)
			if err == nil {
				t.Fatal("Expected configuration error, got nil")
			}
			if !errors.Is(err, ErrCameraConfig) {
				t.Errorf("Expected ErrCameraConfig, got %v", err)
			}
		})
	}
}

func TestNewCamera_HeightResolution(t *testing.T) {
	tests := []struct {
		name       string
		height     int
		aspect     float64
		wantHeight int
	}{
		{"explicit height wins", 30, 2, 30},
		{"derived from aspect", 0, 2, 50},
		{"derived height floors at one", 0, 1000, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.Height = tt.height
			cfg.Aspect = tt.aspect

			camera, err := NewCamera(cfg)
			if err != nil {
				t.Fatalf("Expected valid camera, got %v", err)
			}
			if camera.Height() != tt.wantHeight {
				t.Errorf("Expected height %d, got %d", tt.wantHeight, camera.Height())
			}
		})
	}
}

func TestCamera_GetRay_CenterPixelPointsAtTarget(t *testing.T) {
	cfg := validConfig()
	cfg.Width = 101
	cfg.Height = 101
	cfg.Samples = 1

	camera, err := NewCamera(cfg)
	if err != nil {
		t.Fatalf("Expected valid camera, got %v", err)
	}

	rng := rand.New(rand.NewSource(1))
	ray := camera.GetRay(50, 50, 0, rng)

	got := ray.Direction.Normalize()
	want := cfg.LookAt.Subtract(cfg.Center).Normalize()
	if math.Abs(got.X-want.X) > 1e-9 || math.Abs(got.Y-want.Y) > 1e-9 || math.Abs(got.Z-want.Z) > 1e-9 {
		t.Errorf("Expected center ray toward look-at %v, got %v", want, got)
	}
	if ray.Origin != cfg.Center {
		t.Errorf("Expected ray origin at the camera center, got %v", ray.Origin)
	}
}

func TestCamera_GetRay_SingleSampleForcesCenter(t *testing.T) {
	cfg := validConfig()
	cfg.Samples = 1
	cfg.Offset = OffsetRandom

	camera, err := NewCamera(cfg)
	if err != nil {
		t.Fatalf("Expected valid camera, got %v", err)
	}

	a := camera.GetRay(10, 10, 0, rand.New(rand.NewSource(1)))
	b := camera.GetRay(10, 10, 0, rand.New(rand.NewSource(2)))
	if a.Direction != b.Direction {
		t.Error("Expected single-sample rays to ignore the random stream")
	}
}

func TestCamera_GetRay_DeterministicOffsets(t *testing.T) {
	cfg := validConfig()
	cfg.Offset = OffsetDeterministic

	camera, err := NewCamera(cfg)
	if err != nil {
		t.Fatalf("Expected valid camera, got %v", err)
	}

	// Same sample index gives the same ray regardless of the random stream
	a := camera.GetRay(5, 5, 2, rand.New(rand.NewSource(1)))
	b := camera.GetRay(5, 5, 2, rand.New(rand.NewSource(99)))
	if a.Direction != b.Direction {
		t.Error("Expected deterministic offsets to ignore the random stream")
	}

	// Different sample indexes cover different positions
	c := camera.GetRay(5, 5, 3, rand.New(rand.NewSource(1)))
	if a.Direction == c.Direction {
		t.Error("Expected different sample indexes to jitter differently")
	}
}

func TestCamera_GetRay_RandomOffsetsStayInPixel(t *testing.T) {
	cfg := validConfig()
	cfg.Offset = OffsetRandom

	camera, err := NewCamera(cfg)
	if err != nil {
		t.Fatalf("Expected valid camera, got %v", err)
	}

	rng := rand.New(rand.NewSource(1))

	// Jittered rays for one pixel differ from each other but only slightly
	a := camera.GetRay(10, 10, 0, rng)
	b := camera.GetRay(10, 10, 1, rng)
	if a.Direction == b.Direction {
		t.Error("Expected jittered samples to differ")
	}

	delta := a.Direction.Normalize().Subtract(b.Direction.Normalize()).Length()
	if delta > 0.1 {
		t.Errorf("Expected sub-pixel jitter, got direction delta %f", delta)
	}
}

func TestNewCamera_DefocusDisabledByDefault(t *testing.T) {
	cfg := validConfig()
	cfg.Samples = 1

	camera, err := NewCamera(cfg)
	if err != nil {
		t.Fatalf("Expected valid camera, got %v", err)
	}

	for i := 0; i < 10; i++ {
		ray := camera.GetRay(0, 0, 0, rand.New(rand.NewSource(int64(i))))
		if ray.Origin != cfg.Center {
			t.Fatalf("Expected all origins at the camera center, got %v", ray.Origin)
		}
	}
}

func TestNewCamera_DefocusSpreadsOrigins(t *testing.T) {
	cfg := validConfig()
	cfg.FocusAngle = 2
	cfg.FocusDist = 5

	camera, err := NewCamera(cfg)
	if err != nil {
		t.Fatalf("Expected valid camera, got %v", err)
	}

	rng := rand.New(rand.NewSource(1))
	seen := false
	for i := 0; i < 20; i++ {
		ray := camera.GetRay(0, 0, i, rng)
		if ray.Origin != cfg.Center {
			seen = true
			break
		}
	}
	if !seen {
		t.Error("Expected defocus to move ray origins off the camera center")
	}
}
