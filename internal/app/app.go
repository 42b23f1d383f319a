//go:build ebiten

package app

import (
	"image"
	"time"

	"islandfire/internal/core"
	"islandfire/internal/render"
	"islandfire/internal/sims/clouds"
	"islandfire/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type gridProvider interface {
	Grid() *core.TileGrid
}

type cloudProvider interface {
	Clouds() *clouds.Overlay
}

type fireControls interface {
	ExtinguishArea(r image.Rectangle) int
	IgniteAt(x, y int) bool
}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	clouds       *clouds.Overlay
	cloudPainter *render.CloudPainter
	cloudVersion uint64

	fire fireControls

	worldW, worldH int
	scaleX, scaleY float64
	panel          int

	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for sim with a HUD panel of the given width.
func New(sim core.Sim, panel int, seed int64) *Game {
	size := sim.Size()
	g := &Game{
		sim:     sim,
		painter: render.NewGridPainter(size.W, size.H),
		worldW:  size.W,
		worldH:  size.H,
		scaleX:  1,
		scaleY:  1,
		panel:   max(panel, 0),
		seed:    seed,
	}
	if gp, ok := sim.(gridProvider); ok {
		grid := gp.Grid()
		g.worldW, g.worldH = grid.W*grid.TileW, grid.H*grid.TileH
		g.scaleX, g.scaleY = float64(grid.TileW), float64(grid.TileH)
	}
	if cp, ok := sim.(cloudProvider); ok {
		g.clouds = cp.Clouds()
		g.cloudPainter = render.NewCloudPainter(g.clouds)
	}
	g.fire, _ = sim.(fireControls)
	g.overlay = ui.NewOverlay(sim, g.scaleX, g.scaleY)
	g.hud = ui.NewHUD(sim, g.panel)
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	g.overlay.Update()
	g.hud.Update(g.worldW, g.paused)
	g.handleMouse()

	if !g.paused || g.tickOnce {
		g.sim.Step(1 / float64(ebiten.TPS()))
		g.tickOnce = false
	}
	return nil
}

func (g *Game) handleMouse() {
	if g.fire == nil {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx >= g.worldW || g.hud.InPanel(mx) {
		return
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.fire.ExtinguishArea(BrushArea(mx, my))
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.fire.IgniteAt(mx, my)
	}
}

// Draw renders the map, the cloud layer, debugging layers and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.scaleX, g.scaleY)
	g.overlay.Draw(screen)
	if g.clouds != nil {
		if v := g.clouds.Version(); v != g.cloudVersion {
			g.cloudPainter.Upload(g.clouds)
			g.cloudVersion = v
		}
		g.cloudPainter.Draw(screen, g.clouds)
	}
	g.hud.Draw(screen, g.worldW, g.worldH)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.worldW + g.panel, g.worldH
}

// WindowSize returns the window size that shows the world and panel 1:1.
func (g *Game) WindowSize() (int, int) { return g.worldW + g.panel, g.worldH }
