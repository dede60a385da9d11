package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/avclark/go-rtrace/cmd"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "go-rtrace"
	app.Usage = "render scenes using path tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "q",
			Usage: "only log warnings and errors",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a builtin scene or a mesh file to a PNG",
			Description: `
Render a single frame of one of the builtin demo scenes, or of a triangle
mesh loaded from a model file, using the block-parallel path tracer.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene, s",
					Value: "spheres",
					Usage: "builtin scene name (see the scenes command)",
				},
				cli.StringFlag{
					Name:  "model, m",
					Usage: "render this mesh file instead of a builtin scene",
				},
				cli.IntFlag{
					Name:  "width",
					Usage: "frame width override",
				},
				cli.IntFlag{
					Name:  "height",
					Usage: "frame height override",
				},
				cli.IntFlag{
					Name:  "spp",
					Usage: "samples per pixel override",
				},
				cli.IntFlag{
					Name:  "max-depth",
					Usage: "ray bounce limit override",
				},
				cli.Float64Flag{
					Name:  "fov",
					Usage: "vertical field of view override, in degrees",
				},
				cli.IntFlag{
					Name:  "block-size",
					Value: 16,
					Usage: "render block edge in pixels",
				},
				cli.IntFlag{
					Name:  "workers",
					Usage: "parallel render workers (default: all CPUs)",
				},
				cli.BoolFlag{
					Name:  "serial",
					Usage: "render blocks serially on one goroutine",
				},
				cli.IntFlag{
					Name:  "seed",
					Value: 1,
					Usage: "random seed; equal seeds yield identical frames",
				},
				cli.BoolFlag{
					Name:  "no-bvh",
					Usage: "disable BVH acceleration (linear intersection sweep)",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "frame.png",
					Usage: "image filename for the rendered frame",
				},
			},
			Action: cmd.RenderFrame,
		},
		{
			Name:   "scenes",
			Usage:  "list builtin demo scenes",
			Action: cmd.ListScenes,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
