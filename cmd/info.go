package cmd

import (
	"bytes"
	"fmt"
	"runtime"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/avclark/go-rtrace/pkg/renderer"
	"github.com/avclark/go-rtrace/pkg/scene"
)

// ListScenes prints the builtin demo scenes with their default framing.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Assets", "Resolution", "Samples"})

	for _, name := range scene.BuiltinNames() {
		build, err := scene.Builtin(name)
		if err != nil {
			return err
		}
		sc, cfg, err := build()
		if err != nil {
			return err
		}

		height := cfg.Height
		if height == 0 {
			camera, err := renderer.NewCamera(cfg)
			if err != nil {
				return err
			}
			height = camera.Height()
		}
		table.Append([]string{
			name,
			fmt.Sprintf("%d", len(sc.Assets())),
			fmt.Sprintf("%dx%d", cfg.Width, height),
			fmt.Sprintf("%d", cfg.Samples),
		})
	}

	table.Render()
	logger.Infof("builtin scenes (%d workers available)\n%s", runtime.NumCPU(), buf.String())
	return nil
}
