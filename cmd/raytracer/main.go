package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/HugoSmits86/nativewebp"
	"golang.org/x/image/draw"

	"github.com/mboyd/go-whitted-raytracer/pkg/canvas"
	"github.com/mboyd/go-whitted-raytracer/pkg/renderer"
	"github.com/mboyd/go-whitted-raytracer/pkg/scenes"
	"github.com/mboyd/go-whitted-raytracer/pkg/wavefront"
)

func main() {
	sceneName := flag.String("scene", "default", "Built-in scene to render")
	objPath := flag.String("obj", "", "Render a Wavefront OBJ mesh instead of a built-in scene")
	width := flag.Int("width", 800, "Image width in pixels")
	height := flag.Int("height", 450, "Image height in pixels")
	workers := flag.Int("workers", runtime.NumCPU(), "Number of render workers")
	scale := flag.Int("scale", 1, "Supersampling factor; renders larger and downscales")
	format := flag.String("format", "png", "Output format: png, webp, or ppm")
	outDir := flag.String("out", "output", "Output directory")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Whitted Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Printf("Available scenes: %s\n", strings.Join(scenes.Names(), ", "))
		fmt.Println()
		fmt.Println("Output is saved to <out>/<scene>/render_<timestamp>.<format>")
		return
	}

	if err := run(*sceneName, *objPath, *width, *height, *workers, *scale, *format, *outDir); err != nil {
		log.Fatal(err)
	}
}

func run(sceneName, objPath string, width, height, workers, scale int, format, outDir string) error {
	if scale < 1 {
		return fmt.Errorf("scale must be at least 1, got %d", scale)
	}

	var build scenes.Builder
	switch {
	case objPath != "":
		parsed, err := wavefront.ParseFile(objPath)
		if err != nil {
			return err
		}
		if parsed.IgnoredLines > 0 {
			log.Printf("ignored %d unrecognized lines in %s", parsed.IgnoredLines, objPath)
		}
		build = scenes.NewMeshScene(parsed.Group())
		sceneName = "obj"
	default:
		var err error
		build, err = scenes.Lookup(sceneName)
		if err != nil {
			return err
		}
	}

	world, cam, err := build(width*scale, height*scale)
	if err != nil {
		return fmt.Errorf("building scene %q: %w", sceneName, err)
	}

	log.Printf("rendering %q at %dx%d with %d workers", sceneName, width*scale, height*scale, workers)
	start := time.Now()
	img, err := renderer.Render(context.Background(), cam, world, renderer.Options{
		Workers: workers,
		Logger:  log.Default(),
	})
	if err != nil {
		return fmt.Errorf("rendering: %w", err)
	}
	log.Printf("render completed in %v", time.Since(start))

	dir := filepath.Join(outDir, sceneName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(dir, fmt.Sprintf("render_%s.%s", timestamp, format))

	if err := writeImage(filename, format, img, width, height); err != nil {
		return err
	}
	log.Printf("render saved as %s", filename)
	return nil
}

// writeImage downscales the rendered frame to the requested size and
// encodes it.
func writeImage(filename, format string, c *canvas.Canvas, width, height int) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()

	switch format {
	case "png":
		return png.Encode(f, downscale(c.Image(), width, height))
	case "webp":
		return nativewebp.Encode(f, downscale(c.Image(), width, height), nil)
	case "ppm":
		// PPM keeps the full render resolution; the text format is for
		// inspection, not presentation.
		return c.WritePPM(f)
	default:
		return fmt.Errorf("unknown format %q (png, webp, and ppm are supported)", format)
	}
}

func downscale(img *image.NRGBA, width, height int) image.Image {
	if img.Bounds().Dx() == width && img.Bounds().Dy() == height {
		return img
	}
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}
