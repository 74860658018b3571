// Command geview shows the spinning-cube demo scene in a desktop window,
// rendering one frame of geometry per tick.
package main

import (
	"flag"
	"image/color"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/softge"
	"github.com/gogpu/softge/display"
	"github.com/gogpu/softge/internal/demoscene"
	"github.com/gogpu/softge/internal/plot"
	"github.com/gogpu/softge/parallel"
)

func main() {
	var (
		scenePath = flag.String("scene", "", "scene YAML file (empty for the built-in scene)")
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

	pool := parallel.NewPool(*workers)
	defer pool.Close()

	fb := display.New(scene.Width, scene.Height, display.WithPool(pool))
	g := newGame(scene, fb, softge.NewPipeline(plot.NewWireframe(fb)))

	ebiten.SetWindowTitle("softge " + softge.Version)
	ebiten.SetWindowSize(scene.Width*2, scene.Height*2)
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatalf("Failed to run viewer: %v", err)
	}
}

// game renders geometry in Update and blits the framebuffer in Draw.
type game struct {
	scene      demoscene.Scene
	fb         *display.Framebuffer
	pipe       *softge.Pipeline
	cube       demoscene.Mesh
	overlay    demoscene.Mesh
	overlaySt  *softge.State
	background color.RGBA
	frameImg   *ebiten.Image
	frame      int
}

func newGame(scene demoscene.Scene, fb *display.Framebuffer, pipe *softge.Pipeline) *game {
	overlay, overlaySt := scene.Overlay()
	return &game{
		scene:      scene,
		fb:         fb,
		pipe:       pipe,
		cube:       scene.Cube(),
		overlay:    overlay,
		overlaySt:  overlaySt,
		background: scene.BackgroundColor(),
		frameImg:   ebiten.NewImage(fb.Width(), fb.Height()),
	}
}

func (g *game) Update() error {
	g.fb.Clear(g.background)
	if err := g.pipe.Submit(g.scene.FrameState(g.frame), g.cube.Call()); err != nil {
		return err
	}
	if err := g.pipe.Submit(g.overlaySt, g.overlay.Call()); err != nil {
		return err
	}
	g.frame++
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.frameImg.WritePixels(g.fb.Image().Pix)
	screen.DrawImage(g.frameImg, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.fb.Width(), g.fb.Height()
}
