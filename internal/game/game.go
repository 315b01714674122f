package game

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/square-invaders/internal/core"
)

const hudHeight = 2

// Theme is the palette the renderer uses: two player colors signalling
// alive/dead, one shared color for everything else.
type Theme struct {
	PlayerAlive core.Color
	PlayerDead  core.Color
	Entity      core.Color
}

// DefaultTheme returns the stock palette.
func DefaultTheme() Theme {
	return Theme{
		PlayerAlive: core.ColorBrightGreen,
		PlayerDead:  core.ColorBrightRed,
		Entity:      core.ColorWhite,
	}
}

// Package-level theme, set from configuration before the game starts.
var theme = DefaultTheme()

// SetTheme overrides the render palette.
func SetTheme(t Theme) {
	theme = t
}

// Game adapts the pure tick pipeline to the platform loop: it holds the
// current World, replaces it wholesale every step, and projects it onto a
// screen buffer on demand.
type Game struct {
	rng    *rand.Rand
	world  World
	tick   uint64
	paused bool
}

// New creates an uninitialized game; Reset must run before the first Step.
func New() *Game {
	return &Game{}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "invaders"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Square Invaders"
}

// Reset initializes or restarts the game with a fresh world and RNG.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.world = NewWorld()
	g.tick = 0
	g.paused = false
}

// Step advances the simulation by one tick. The pause action toggles; while
// paused the world does not advance. Everything else, including restart, is
// handled inside the pipeline.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	g.world = Tick(g.world, in, g.rng)
	return core.StepResult{State: g.State()}
}

// State returns the current game state. Player death is game over, though
// the simulation keeps ticking until a restart.
func (g *Game) State() core.GameState {
	return core.GameState{
		GameOver: g.world.Player.Dead,
		Paused:   g.paused,
	}
}

// World returns the current world value.
func (g *Game) World() World {
	return g.world
}

// Render projects the world onto the screen buffer: HUD on top, then the
// playfield scaled to the remaining cells. Player first, then invaders,
// then bullets; overlap is visually acceptable.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	vw := dst.Width()
	vh := dst.Height() - hudHeight
	if vw < 1 || vh < 1 {
		return
	}
	sx := float64(vw) / Width
	sy := float64(vh) / Height

	playerColor := theme.PlayerAlive
	if g.world.Player.Dead {
		playerColor = theme.PlayerDead
	}
	dst.DrawRect(cellRect(&g.world.Player.Body, sx, sy), '█', playerColor)

	for i := range g.world.Invaders {
		dst.DrawRect(cellRect(&g.world.Invaders[i].Body, sx, sy), '▓', theme.Entity)
	}
	for i := range g.world.Bullets {
		dst.DrawRect(cellRect(&g.world.Bullets[i].Body, sx, sy), '•', theme.Entity)
	}

	switch {
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	case g.world.Player.Dead:
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	}
}

// cellRect maps a world-space body to screen cells. Entities never collapse
// below one cell even when the terminal squashes an axis.
func cellRect(b *Body, sx, sy float64) core.Rect {
	return core.Rect{
		X: int(b.X * sx),
		Y: hudHeight + int(b.Y*sy),
		W: core.Max(1, int(b.Size*sx)),
		H: core.Max(1, int(b.Size*sy)),
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Square Invaders | Invaders: %d  Bullets: %d",
		len(g.world.Invaders), len(g.world.Bullets))
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	for y := boxY; y < boxY+boxH && y < h; y++ {
		for x := boxX; x < boxX+boxW && x < w; x++ {
			if x < 0 || y < 0 {
				continue
			}
			isTopOrBottom := y == boxY || y == boxY+boxH-1
			isLeftOrRight := x == boxX || x == boxX+boxW-1
			switch {
			case isTopOrBottom && isLeftOrRight:
				dst.Set(x, y, '+')
			case isTopOrBottom:
				dst.Set(x, y, '-')
			case isLeftOrRight:
				dst.Set(x, y, '|')
			default:
				dst.Set(x, y, ' ')
			}
		}
	}

	drawCentered(dst, line1, boxY+1)
	drawCentered(dst, line2, boxY+3)
}

func drawCentered(dst *core.Screen, text string, y int) {
	if y < 0 || y >= dst.Height() {
		return
	}
	x := (dst.Width() - len(text)) / 2
	for i, ch := range text {
		px := x + i
		if px >= 0 && px < dst.Width() {
			dst.Set(px, y, ch)
		}
	}
}
