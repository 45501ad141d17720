package renderer

import (
	"runtime"

	"github.com/arcflux/pathtracer/internal/rtlog"
	"github.com/arcflux/pathtracer/pkg/camera"
	"github.com/arcflux/pathtracer/pkg/integrator"
	"github.com/arcflux/pathtracer/pkg/scene"
	"github.com/arcflux/pathtracer/pkg/scheduler"
)

var logger = rtlog.New("renderer")

// Options configures a single render pass.
type Options struct {
	SamplesPerPixel int
	MaxDepth        int
	RRMinBounces    int // see integrator.PathTracer.RRMinBounces
	NumWorkers      int // 0 selects runtime.NumCPU()
}

// Render drives a scene to completion: builds the tile grid, spins up a
// scheduler of NumWorkers workers, enqueues one RenderTask per tile, and
// blocks until every tile has been sampled SamplesPerPixel times. This
// is a single render-to-completion pass, not a progressive refinement
// loop: every tile is sampled exactly SamplesPerPixel times and there is
// no intermediate preview.
func Render(s *scene.Scene, cam *camera.Camera, opts Options) (*camera.Sensor, []TileStats) {
	numWorkers := opts.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	sensor := camera.NewSensor(cam.Width, cam.Height)
	pathTracer := integrator.New(s, opts.MaxDepth)
	pathTracer.RRMinBounces = opts.RRMinBounces

	tiles := scheduler.BuildTileGrid(cam.Width, cam.Height)
	logger.Infof("rendering %dx%d in %d tiles with %d workers at %d spp", cam.Width, cam.Height, len(tiles), numWorkers, opts.SamplesPerPixel)

	sched := scheduler.New(numWorkers, len(tiles)+numWorkers)
	sched.Run()

	statsSlots := make([]TileStats, len(tiles))
	for i, tile := range tiles {
		task := &RenderTask{
			Tile:            tile,
			Camera:          cam,
			Sensor:          sensor,
			Integrator:      pathTracer,
			SamplesPerPixel: opts.SamplesPerPixel,
			TaskID:          i,
			Stats:           &statsSlots[i],
		}
		sched.Enqueue(task)
	}

	sched.WaitForCompletion()
	sched.Shutdown()

	logger.Infof("render complete: %d samples total", sensor.TotalSamples())
	return sensor, statsSlots
}
