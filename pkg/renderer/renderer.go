// Package renderer drives a world and a camera across every pixel of a
// canvas using a fixed pool of workers. Output is deterministic for any
// worker count: the world is read-only during the render and each worker
// writes only the rows of its own tasks.
package renderer

import (
	"context"
	"runtime"
	"sync"

	"github.com/mboyd/go-whitted-raytracer/pkg/canvas"
	"github.com/mboyd/go-whitted-raytracer/pkg/scene"
)

// Logger receives progress output during a render.
type Logger interface {
	Printf(format string, args ...interface{})
}

// Options configures a render.
type Options struct {
	// Workers is the pool size; zero or negative selects runtime.NumCPU().
	Workers int
	// RowsPerTask is the height of each row band handed to a worker;
	// zero or negative selects a default of 8.
	RowsPerTask int
	// Logger, when set, receives per-band progress lines.
	Logger Logger
}

// rowBand is a half-open range of canvas rows [start, end) owned by
// exactly one task. The disjoint partition is the only synchronization
// the canvas needs.
type rowBand struct {
	start, end int
}

// Render computes the color of every pixel and returns the finished
// canvas. It blocks until all partitions are written or ctx is canceled,
// in which case the partial canvas is discarded and ctx's error returned.
func Render(ctx context.Context, cam *scene.Camera, world *scene.World, opts Options) (*canvas.Canvas, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	rowsPerTask := opts.RowsPerTask
	if rowsPerTask <= 0 {
		rowsPerTask = 8
	}

	img := canvas.New(cam.HSize(), cam.VSize())

	tasks := make(chan rowBand, (cam.VSize()+rowsPerTask-1)/rowsPerTask)
	for start := 0; start < cam.VSize(); start += rowsPerTask {
		end := start + rowsPerTask
		if end > cam.VSize() {
			end = cam.VSize()
		}
		tasks <- rowBand{start: start, end: end}
	}
	close(tasks)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for band := range tasks {
				if renderBand(ctx, cam, world, img, band) {
					return
				}
				if opts.Logger != nil {
					opts.Logger.Printf("rendered rows %d-%d of %d", band.start, band.end-1, cam.VSize())
				}
			}
		}()
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return img, nil
}

// renderBand fills one row band, checking for cancellation between rows.
// Reports whether the render was canceled.
func renderBand(ctx context.Context, cam *scene.Camera, world *scene.World, img *canvas.Canvas, band rowBand) bool {
	for y := band.start; y < band.end; y++ {
		select {
		case <-ctx.Done():
			return true
		default:
		}
		for x := 0; x < cam.HSize(); x++ {
			img.WritePixel(x, y, world.ColorAt(cam.RayForPixel(x, y)))
		}
	}
	return false
}
