package scrollarea

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool
}

// game adapts a Scene to the ebiten.Game interface.
type game struct {
	scene   *Scene
	cfg     RunConfig
	fpsText string
	fpsAcc  float64
}

func (g *game) Update() error {
	g.scene.Update()
	if g.cfg.ShowFPS {
		// Refresh the overlay text about twice a second.
		g.fpsAcc += 1.0 / float64(ebiten.TPS())
		if g.fpsAcc >= 0.5 || g.fpsText == "" {
			g.fpsAcc = 0
			g.fpsText = fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
		}
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	if g.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, g.fpsText)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Run creates a window and drives the scene with a standard game loop.
// It blocks until the window is closed and returns any loop error.
func Run(scene *Scene, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	if err := ebiten.RunGame(&game{scene: scene, cfg: cfg}); err != nil {
		return fmt.Errorf("run scene: %w", err)
	}
	return nil
}
