// Command gedemo renders the spinning-cube demo scene offline, writing
// one PNG per frame. It exercises the full geometry pipeline: register
// state per frame, vertex decode, transform, primitive dispatch, and a
// wireframe sink drawing into a parallel-cleared framebuffer.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"

	"github.com/gogpu/softge"
	"github.com/gogpu/softge/display"
	"github.com/gogpu/softge/internal/demoscene"
	"github.com/gogpu/softge/internal/plot"
	"github.com/gogpu/softge/parallel"
)

func main() {
	var (
		scenePath = flag.String("scene", "", "scene YAML file (empty for the built-in scene)")
		outDir    = flag.String("out", "frames", "output directory for PNG frames")
		frames    = flag.Int("frames", 0, "frame count override (0 keeps the scene value)")
		width     = flag.Int("width", 0, "framebuffer width override")
		height    = flag.Int("height", 0, "framebuffer height override")
		workers   = flag.Int("workers", 4, "worker pool size")
		verbose   = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		softge.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	scene := demoscene.Default()
	if *scenePath != "" {
		var err error
		scene, err = demoscene.Load(*scenePath)
		if err != nil {
			log.Fatalf("Failed to load scene: %v", err)
		}
	}
	if *frames > 0 {
		scene.Frames = *frames
	}
	if *width > 0 {
		scene.Width = *width
	}
	if *height > 0 {
		scene.Height = *height
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	pool := parallel.NewPool(*workers)
	defer pool.Close()

	fb := display.New(scene.Width, scene.Height, display.WithPool(pool))
	pipe := softge.NewPipeline(plot.NewWireframe(fb))

	cube := scene.Cube()
	overlay, overlayState := scene.Overlay()
	background := scene.BackgroundColor()

	bar := progressbar.Default(int64(scene.Frames), "rendering")
	for frame := 0; frame < scene.Frames; frame++ {
		fb.Clear(background)
		if err := pipe.Submit(scene.FrameState(frame), cube.Call()); err != nil {
			log.Fatalf("Failed to submit frame %d: %v", frame, err)
		}
		if err := pipe.Submit(overlayState, overlay.Call()); err != nil {
			log.Fatalf("Failed to submit overlay: %v", err)
		}
		name := filepath.Join(*outDir, fmt.Sprintf("frame_%03d.png", frame))
		if err := fb.SavePNG(name); err != nil {
			log.Fatalf("Failed to save %s: %v", name, err)
		}
		_ = bar.Add(1)
	}

	stats := pipe.Stats()
	log.Printf("Rendered %d frames to %s (%dx%d): %d draws, %d vertices, %d triangles, %d quads\n",
		scene.Frames, *outDir, scene.Width, scene.Height,
		stats.DrawCalls, stats.Vertices, stats.Triangles, stats.Quads)
}
