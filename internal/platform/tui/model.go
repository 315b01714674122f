package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/square-invaders/internal/core"
	"github.com/vovakirdan/square-invaders/internal/game"
)

// heldWindow is how long a key counts as held after its last event.
// Terminals report presses and autorepeats but never releases, so the
// platform synthesizes the level-triggered "currently held" state the
// simulation expects from the event stream.
const heldWindow = 200 * time.Millisecond

// FireSounder plays the shot sound effect. It is driven purely by the input
// layer: the trigger is the fire key being seen released, never the game.
type FireSounder interface {
	PlayFire()
}

// Model is the Bubble Tea model running the game.
type Model struct {
	game   *game.Game
	screen *core.Screen
	config core.RuntimeConfig
	keys   KeyMap
	help   help.Model
	sound  FireSounder // nil disables sound

	lastSeen     map[core.Action]time.Time
	pausePending bool
	fireWasHeld  bool

	gameState core.GameState
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the game.
// A nil sound disables the fire effect (e.g. for SSH sessions).
func NewModel(g *game.Game, cfg core.RuntimeConfig, sound FireSounder) Model {
	// Use a time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	return Model{
		game:     g,
		screen:   core.NewScreen(cfg.ScreenW, core.Max(1, cfg.ScreenH-1)),
		config:   cfg,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		sound:    sound,
		lastSeen: make(map[core.Action]time.Time),
	}
}

// Init initializes the model and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey records key events into the held-state tracker. The simulation
// never sees these directly; it reads the snapshot built at tick time.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	now := time.Now()

	switch m.keys.ActionFor(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionPause:
		// Pause is edge-triggered: only a fresh press toggles, autorepeat
		// refreshes the hold without re-toggling.
		if !m.isHeld(core.ActionPause, now) {
			m.pausePending = true
		}
		m.lastSeen[core.ActionPause] = now

	case core.ActionLeft:
		m.lastSeen[core.ActionLeft] = now
	case core.ActionRight:
		m.lastSeen[core.ActionRight] = now
	case core.ActionFire:
		m.lastSeen[core.ActionFire] = now
	case core.ActionRestart:
		m.lastSeen[core.ActionRestart] = now
	}

	return m, nil
}

// handleResize adjusts the screen buffer, reserving one line for the help
// footer. The playfield is fixed-size; only its projection changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.screen.Resize(msg.Width, core.Max(1, msg.Height-1))
	return m, nil
}

// handleTick builds the input snapshot, advances the simulation exactly one
// step, and schedules the next tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	frame := core.NewInputFrame()
	for _, a := range []core.Action{core.ActionLeft, core.ActionRight, core.ActionFire, core.ActionRestart} {
		if m.isHeld(a, now) {
			frame.Set(a)
		}
	}
	if m.pausePending {
		frame.Set(core.ActionPause)
		m.pausePending = false
	}

	// Fire sound triggers on release: held last tick, gone now.
	fireHeld := frame.Has(core.ActionFire)
	if m.fireWasHeld && !fireHeld && m.sound != nil {
		m.sound.PlayFire()
	}
	m.fireWasHeld = fireHeld

	result := m.game.Step(frame)
	m.gameState = result.State

	return m, tickCmd(m.config.TickRate)
}

// isHeld reports whether an action's key was seen within the hold window.
func (m Model) isHeld(a core.Action, now time.Time) bool {
	seen, ok := m.lastSeen[a]
	return ok && now.Sub(seen) <= heldWindow
}

// View renders the current state: playfield above, help footer below.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for a local session.
func Run(g *game.Game, cfg core.RuntimeConfig, sound FireSounder) error {
	model := NewModel(g, cfg, sound)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
