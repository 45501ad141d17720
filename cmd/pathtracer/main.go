package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/arcflux/pathtracer/internal/rtlog"
)

// main wires up a urfave/cli v1 App with struct-literal flags and a
// single render action: this CLI has one render path, so there is no
// need for separate render/interactive/list-devices subcommands.
func main() {
	app := cli.NewApp()
	app.Name = "pathtracer"
	app.Usage = "render a scene with an offline path tracer"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "scene", Usage: "path to a Wavefront OBJ file; uses the built-in Cornell box if omitted"},
		cli.IntFlag{Name: "width", Value: 512, Usage: "image width in pixels"},
		cli.IntFlag{Name: "height", Value: 512, Usage: "image height in pixels"},
		cli.IntFlag{Name: "spp", Value: 64, Usage: "samples per pixel"},
		cli.IntFlag{Name: "max-depth", Value: 8, Usage: "maximum bounce depth"},
		cli.IntFlag{Name: "rr-min-bounces", Value: 3, Usage: "bounce count before Russian roulette can terminate a path"},
		cli.IntFlag{Name: "workers", Value: 0, Usage: "worker pool size; 0 selects the number of CPUs"},
		cli.IntFlag{Name: "tile-size", Value: 32, Usage: "unused placeholder; tile size is fixed at 32"},
		cli.BoolFlag{Name: "simd", Usage: "accepted but has no effect; the 8-wide triangle pack path is always used"},
		cli.StringFlag{Name: "out", Value: "image.bmp", Usage: "output BMP path"},
		cli.BoolFlag{Name: "v", Usage: "enable verbose logging"},
	}
	app.Action = renderAction

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "pathtracer:", err)
		os.Exit(1)
	}
}

var logger = rtlog.New("pathtracer")
