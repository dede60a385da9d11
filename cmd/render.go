package cmd

import (
	"bytes"
	"fmt"
	"sort"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/avclark/go-rtrace/pkg/renderer"
	"github.com/avclark/go-rtrace/pkg/scene"
)

// RenderFrame renders one of the builtin scenes (or a mesh file) to a PNG.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	var (
		sc  *scene.Scene
		cfg renderer.CameraConfig
		err error
	)
	if model := ctx.String("model"); model != "" {
		sc, cfg, err = scene.Mesh(model, nil)
	} else {
		var build scene.Builder
		build, err = scene.Builtin(ctx.String("scene"))
		if err == nil {
			sc, cfg, err = build()
		}
	}
	if err != nil {
		return err
	}

	// CLI overrides on top of the scene's suggested camera
	if w := ctx.Int("width"); w > 0 {
		cfg.Width = w
	}
	if h := ctx.Int("height"); h > 0 {
		cfg.Height = h
	}
	if spp := ctx.Int("spp"); spp > 0 {
		cfg.Samples = spp
	}
	if depth := ctx.Int("max-depth"); depth > 0 {
		cfg.MaxDepth = depth
	}
	if ctx.IsSet("fov") {
		cfg.VFov = ctx.Float64("fov")
	}

	camera, err := renderer.NewCamera(cfg)
	if err != nil {
		return err
	}

	sc.UseBVH = !ctx.Bool("no-bvh")

	r := renderer.New(camera, sc, renderer.Options{
		BlockSize: ctx.Int("block-size"),
		Workers:   ctx.Int("workers"),
		Serial:    ctx.Bool("serial"),
		Seed:      int64(ctx.Int("seed")),
	})

	stats, err := r.RenderToFile(ctx.String("out"))
	if err != nil {
		return err
	}

	displayFrameStats(stats)
	return nil
}

func displayFrameStats(stats *renderer.Stats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Worker", "Blocks", "Pixels", "Busy"})

	ids := make([]int, 0, len(stats.Workers))
	for id := range stats.Workers {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		w := stats.Workers[id]
		table.Append([]string{
			fmt.Sprintf("%d", id),
			fmt.Sprintf("%d", w.Blocks),
			fmt.Sprintf("%d", w.Pixels),
			fmt.Sprintf("%s", w.Busy.Round(time.Millisecond)),
		})
	}
	table.SetFooter([]string{"", "", "TOTAL", fmt.Sprintf("%s", stats.RenderTime.Round(time.Millisecond))})

	table.Render()
	logger.Infof("frame statistics (%.0f rays/sec)\n%s", stats.RaysPerSecond(), buf.String())
}
