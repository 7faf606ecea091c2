package app

import (
	"fmt"
	"image"
	"image/color"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/lao-tseu-is-alive/go-cursor-flock/internal/config"
	"github.com/lao-tseu-is-alive/go-cursor-flock/internal/flock"
	"github.com/lao-tseu-is-alive/go-cursor-flock/internal/pointer"
	"github.com/lao-tseu-is-alive/go-cursor-flock/internal/render"
	"github.com/lao-tseu-is-alive/go-cursor-flock/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-cursor-flock/pkg/ui"
	golog "github.com/tochemey/goakt/v3/log"
)

var background = color.RGBA{R: 10, G: 10, B: 30, A: 255}

// Game hosts the flock in an ebiten window.
// Update runs one simulation tick into a display list, Draw replays it.
type Game struct {
	flock   *flock.Flock
	tracker pointer.Tracker
	page    *ui.Page
	overlay *ui.Checkbox
	list    flock.DisplayList
	sprites *render.Sprites
	logger  golog.Logger

	viewport   flock.Viewport
	lastCursor image.Point
	cursorSeen bool
	shape      ebiten.CursorShapeType

	// Timing instrumentation
	lastUpdateDuration time.Duration
	lastDrawDuration   time.Duration
	updateAvg          float64 // Rolling average in ms
	drawAvg            float64 // Rolling average in ms
}

// NewGame wires a flock, the demo page and the loaded sprites together.
func NewGame(cfg *config.Config, sprites *render.Sprites, logger golog.Logger) *Game {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	logger.Infof("simulation seed %d", seed)
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	w, h := float64(cfg.Window.Width), float64(cfg.Window.Height)
	overlay := ui.NewCheckbox("show debug overlay", cfg.DebugOverlay)

	page := demoPage(h, overlay, logger)
	page.Resize(w, h)

	return &Game{
		flock:    flock.New(cfg.FlockParams(), rng, logger),
		page:     page,
		overlay:  overlay,
		sprites:  sprites,
		logger:   logger,
		viewport: flock.Viewport{Width: w, Height: h},
		shape:    ebiten.CursorShapeDefault,
	}
}

func (g *Game) Update() error {
	start := time.Now()
	defer func() {
		g.lastUpdateDuration = time.Since(start)
		// Rolling average (exponential moving average)
		g.updateAvg = g.updateAvg*0.95 + float64(g.lastUpdateDuration.Microseconds())/1000.0*0.05
	}()

	g.page.Update()

	// Pointer events: only a movement reclassifies.
	mx, my := ebiten.CursorPosition()
	if cur := image.Pt(mx, my); !g.cursorSeen || cur != g.lastCursor {
		g.cursorSeen = true
		g.lastCursor = cur
		g.tracker.Move(geometry.Vector2D{X: float64(mx), Y: float64(my)}, g.page)
		g.syncCursorShape()
	}

	g.flock.Tick(flock.Frame{
		Now:      start,
		Pointer:  g.tracker.Snapshot(),
		Viewport: g.viewport,
	}, &g.list)

	return nil
}

// syncCursorShape mirrors the classified category on the system cursor.
func (g *Game) syncCursorShape() {
	shape := ebiten.CursorShapeDefault
	switch g.tracker.Snapshot().Category {
	case pointer.CategoryText:
		shape = ebiten.CursorShapeText
	case pointer.CategoryClickable:
		shape = ebiten.CursorShapePointer
	}
	if shape != g.shape {
		g.shape = shape
		ebiten.SetCursorShape(shape)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	start := time.Now()
	defer func() {
		g.lastDrawDuration = time.Since(start)
		g.drawAvg = g.drawAvg*0.95 + float64(g.lastDrawDuration.Microseconds())/1000.0*0.05
	}()

	screen.Fill(background)
	g.page.Draw(screen)
	g.sprites.Replay(screen, g.list.Sprites())

	if g.overlay.Value {
		g.drawStats(screen)
	}
}

func (g *Game) drawStats(screen *ebiten.Image) {
	snap := g.tracker.Snapshot()
	msg := fmt.Sprintf("FPS: %.2f\nTPS: %.2f\n\nUpdate: %.2fms\nDraw:   %.2fms\n\nBoids:  %d\nCursor: %s\nAt:     %s",
		ebiten.ActualFPS(),
		ebiten.ActualTPS(),
		g.updateAvg,
		g.drawAvg,
		g.flock.Len(),
		snap.Category,
		snap.Pos)
	// Print stats on the right side, clear of the page
	ebitenutil.DebugPrintAt(screen, msg, int(g.viewport.Width)-170, 10)
}

// Layout follows the window: the surface is always the window size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := float64(outsideWidth), float64(outsideHeight)
	if w != g.viewport.Width || h != g.viewport.Height {
		g.viewport = flock.Viewport{Width: w, Height: h}
		g.page.Resize(w, h)
	}
	return outsideWidth, outsideHeight
}
