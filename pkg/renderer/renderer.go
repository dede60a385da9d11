package renderer

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/avclark/go-rtrace/log"
	"github.com/avclark/go-rtrace/pkg/core"
)

var logger = log.New("renderer")

// ErrRenderFailed indicates that one or more render workers failed
var ErrRenderFailed = errors.New("render failed")

// Scene is the world a renderer traces rays into
type Scene interface {
	// RayColor returns the color carried back along r with the given
	// remaining bounce budget.
	RayColor(r core.Ray, depth int, rng *rand.Rand) core.Color
}

// Options controls how the frame is partitioned and scheduled
type Options struct {
	BlockSize int   // Square block edge in pixels; defaults to 16
	Workers   int   // Parallel workers; defaults to runtime.NumCPU()
	Serial    bool  // Render blocks in order on the calling goroutine
	Seed      int64 // Base seed for per-block random streams
}

// Renderer traces a frame by splitting it into square blocks and rendering
// each block with its own deterministic random stream. The same seed yields
// a byte-identical image whether the blocks run serially or in parallel.
type Renderer struct {
	camera *Camera
	scene  Scene
	opts   Options
}

// New creates a renderer for the given camera and scene
func New(camera *Camera, scene Scene, opts Options) *Renderer {
	if opts.BlockSize <= 0 {
		opts.BlockSize = 16
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}
	return &Renderer{camera: camera, scene: scene, opts: opts}
}

type blockTask struct {
	id     int
	bounds image.Rectangle
	seed   int64
}

type blockResult struct {
	workerID int
	blockID  int
	pixels   int
	elapsed  time.Duration
	err      error
}

// Render traces the full frame and returns the assembled image. On worker
// failure every remaining block is still drained but no image is returned.
func (r *Renderer) Render() (*image.RGBA, *Stats, error) {
	width, height := r.camera.Width(), r.camera.Height()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	blocks := r.partition(width, height)

	logger.Infof("rendering %dx%d frame, %d samples/pixel, %d blocks", width, height, r.camera.Samples(), len(blocks))

	stats := newStats(width, height, len(blocks), r.camera.Samples())
	start := time.Now()

	var err error
	if r.opts.Serial {
		err = r.renderSerial(img, blocks, stats)
	} else {
		err = r.renderParallel(img, blocks, stats)
	}
	stats.RenderTime = time.Since(start)

	if err != nil {
		return nil, nil, err
	}
	logger.Infof("frame rendered in %s", stats.RenderTime.Round(time.Millisecond))
	return img, stats, nil
}

// RenderToFile renders the frame and writes it as a PNG. Nothing is written
// when the render fails.
func (r *Renderer) RenderToFile(path string) (*Stats, error) {
	img, stats, err := r.Render()
	if err != nil {
		return nil, err
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create %q: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return nil, fmt.Errorf("encode %q: %w", path, err)
	}
	logger.Infof("wrote %s", path)
	return stats, nil
}

// partition splits the frame into square blocks in row-major order. Edge
// blocks are clipped to the frame.
func (r *Renderer) partition(width, height int) []blockTask {
	bs := r.opts.BlockSize
	var blocks []blockTask
	id := 0
	for y := 0; y < height; y += bs {
		for x := 0; x < width; x += bs {
			bounds := image.Rect(x, y, min(x+bs, width), min(y+bs, height))
			blocks = append(blocks, blockTask{
				id:     id,
				bounds: bounds,
				seed:   blockSeed(r.opts.Seed, x, y),
			})
			id++
		}
	}
	return blocks
}

// blockSeed mixes the render seed with the block origin so each block gets
// an independent stream that does not depend on scheduling order.
func blockSeed(seed int64, x, y int) int64 {
	h := uint64(seed) ^ 0x9e3779b97f4a7c15
	h = (h ^ uint64(x)) * 0x100000001b3
	h = (h ^ uint64(y)) * 0x100000001b3
	return int64(h)
}

func (r *Renderer) renderSerial(img *image.RGBA, blocks []blockTask, stats *Stats) error {
	for _, task := range blocks {
		res := r.renderBlock(0, task, img)
		if res.err != nil {
			return fmt.Errorf("%w: block %d: %v", ErrRenderFailed, task.id, res.err)
		}
		stats.record(res)
		logger.Debugf("block %d/%d done in %s", task.id+1, len(blocks), res.elapsed.Round(time.Microsecond))
	}
	return nil
}

func (r *Renderer) renderParallel(img *image.RGBA, blocks []blockTask, stats *Stats) error {
	tasks := make(chan blockTask, len(blocks))
	results := make(chan blockResult, len(blocks))

	for w := 0; w < r.opts.Workers; w++ {
		go func(workerID int) {
			for task := range tasks {
				results <- r.renderBlock(workerID, task, img)
			}
		}(w)
	}

	for _, task := range blocks {
		tasks <- task
	}
	close(tasks)

	var firstErr error
	for i := 0; i < len(blocks); i++ {
		res := <-results
		if res.err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("%w: block %d: %v", ErrRenderFailed, res.blockID, res.err)
			}
			continue
		}
		stats.record(res)
		logger.Debugf("block %d done by worker %d in %s", res.blockID, res.workerID, res.elapsed.Round(time.Microsecond))
	}
	return firstErr
}

// renderBlock traces every pixel of one block. Blocks never overlap, so
// workers write into the shared image without synchronization. A panic in
// scene or material code is recovered and surfaced as a block error.
func (r *Renderer) renderBlock(workerID int, task blockTask, img *image.RGBA) (res blockResult) {
	res = blockResult{workerID: workerID, blockID: task.id}
	start := time.Now()
	defer func() {
		if p := recover(); p != nil {
			res.err = fmt.Errorf("panic: %v", p)
		}
		res.elapsed = time.Since(start)
	}()

	rng := rand.New(rand.NewSource(task.seed))
	samples := r.camera.Samples()
	depth := r.camera.MaxDepth()
	scale := 1.0 / float64(samples)

	for j := task.bounds.Min.Y; j < task.bounds.Max.Y; j++ {
		for i := task.bounds.Min.X; i < task.bounds.Max.X; i++ {
			pixel := core.Color{}
			for s := 0; s < samples; s++ {
				ray := r.camera.GetRay(i, j, s, rng)
				pixel = pixel.Add(r.scene.RayColor(ray, depth, rng))
			}
			img.SetRGBA(i, j, toRGBA(pixel.Multiply(scale)))
			res.pixels++
		}
	}
	return res
}

var intensity = core.NewInterval(0, 0.999)

// toRGBA gamma-corrects (gamma 2) and quantizes a linear color to 8 bits
func toRGBA(c core.Color) color.RGBA {
	return color.RGBA{
		R: uint8(256 * intensity.Clamp(linearToGamma(c.X))),
		G: uint8(256 * intensity.Clamp(linearToGamma(c.Y))),
		B: uint8(256 * intensity.Clamp(linearToGamma(c.Z))),
		A: 255,
	}
}

func linearToGamma(v float64) float64 {
	if v > 0 {
		return math.Sqrt(v)
	}
	return 0
}
