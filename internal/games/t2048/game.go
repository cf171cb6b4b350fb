// Package t2048 adapts the 2048 engine to the platform: it maps actions onto
// engine commands, tracks the session timer and draws the board.
package t2048

import (
	"time"

	"github.com/Radialsum/X800W/internal/core"
	"github.com/Radialsum/X800W/internal/games/t2048/engine"
	"github.com/Radialsum/X800W/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeClassic Mode = "classic"
	ModeEndless Mode = "endless"
)

// Registered game ids.
const (
	ClassicID = "2048"
	EndlessID = "2048_endless"
)

// flashSeconds is how long the endless-mode win banner stays up.
const flashSeconds = 2

// ModeID returns the game id for a mode name.
func ModeID(m Mode) (string, bool) {
	switch m {
	case ModeClassic:
		return ClassicID, true
	case ModeEndless:
		return EndlessID, true
	}
	return "", false
}

// Game implements the 2048 puzzle for the platform.
type Game struct {
	mode   Mode
	eng    *engine.Engine
	cfg    core.RuntimeConfig
	reseed uint64
	now    func() time.Time

	tick       uint64
	playTicks  uint64 // ticks counted by the timer
	flashTicks int    // remaining ticks of the endless win banner
	reached    bool   // 2048 was reached at some point this game

	screenW  int
	screenH  int
	paused   bool
	tooSmall bool
}

// New creates a classic 2048 game that stops at the first 2048 tile.
func New() *Game {
	return &Game{mode: ModeClassic, now: time.Now}
}

// NewEndless creates a 2048 game that keeps going after 2048.
func NewEndless() *Game {
	return &Game{mode: ModeEndless, now: time.Now}
}

func init() {
	registry.Register(ClassicID, func() registry.Game {
		return New()
	})
	registry.Register(EndlessID, func() registry.Game {
		return NewEndless()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return EndlessID
	}
	return ClassicID
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "2048 (Endless)"
	}
	return "2048"
}

// Description returns a one-line summary for menus.
func (g *Game) Description() string {
	if g.mode == ModeEndless {
		return "Keep merging past 2048 until the board locks up"
	}
	return "Reach the 2048 tile, then choose to keep going"
}

// Reset starts a new game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	g.cfg = cfg

	// An unknown name was rejected by config validation; fall back quietly.
	src, err := engine.NewRandomSource(cfg.Random, uint64(cfg.Seed))
	if err != nil {
		src = engine.NewGrayRand(uint64(cfg.Seed))
	}
	g.eng = engine.New(src)
	g.eng.Restart(uint64(cfg.Seed))

	g.tick = 0
	g.playTicks = 0
	g.flashTicks = 0
	g.reached = false
	g.paused = false
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Restart begins a new game in place. The engine mixes the clock into a
// draw from the running sequence.
func (g *Game) Restart() {
	g.reseed++
	g.eng.Restart(uint64(g.now().UnixNano()) + g.reseed)
	g.playTicks = 0
	g.flashTicks = 0
	g.reached = false
	g.paused = false
}

// Resize updates the screen dimensions without touching the game.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.tooSmall = width < minScreenW || height < minScreenH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	if g.flashTicks > 0 {
		g.flashTicks--
	}

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) {
		g.Restart()
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionUndo) {
		g.eng.Undo()
	}

	if g.eng.Status() == engine.StatusWon && in.Has(core.ActionConfirm) {
		g.eng.Continue()
	}

	g.applyTransforms(in)
	g.applyMove(in)

	if g.eng.Status() == engine.StatusPlaying {
		g.playTicks++
	}

	return core.StepResult{State: g.State()}
}

var transformActions = []struct {
	action core.Action
	kind   engine.TransformKind
}{
	{core.ActionTranspose, engine.Transpose},
	{core.ActionRotateCW, engine.RotateCW},
	{core.ActionRotateCCW, engine.RotateCCW},
	{core.ActionMirrorV, engine.MirrorVertical},
	{core.ActionMirrorH, engine.MirrorHorizontal},
}

func (g *Game) applyTransforms(in core.InputFrame) {
	for _, t := range transformActions {
		if in.Has(t.action) {
			g.eng.Transform(t.kind)
		}
	}
}

var moveActions = map[core.Action]engine.Direction{
	core.ActionUp:    engine.DirUp,
	core.ActionDown:  engine.DirDown,
	core.ActionLeft:  engine.DirLeft,
	core.ActionRight: engine.DirRight,
}

// applyMove performs at most one move per tick.
func (g *Game) applyMove(in core.InputFrame) {
	a := in.First(core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight)
	if a == core.ActionNone {
		return
	}

	res := g.eng.ApplyMove(moveActions[a])
	if !res.Won {
		return
	}

	g.reached = true
	if g.mode == ModeEndless {
		g.eng.Continue()
		g.flashTicks = flashSeconds * g.cfg.TickRate
	}
}

// Elapsed returns the time spent playing, excluding pauses and the time
// spent on the won or lost screens.
func (g *Game) Elapsed() time.Duration {
	return time.Duration(g.playTicks) * time.Second / time.Duration(g.cfg.TickRate)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	snap := g.eng.Snapshot()
	return core.GameState{
		Score:    snap.Score,
		GameOver: snap.Status == engine.StatusLost,
		Paused:   g.paused || g.tooSmall,
		Won:      g.reached,
		MaxTile:  snap.MaxTile(),
		Moves:    snap.Moves,
		Elapsed:  g.Elapsed(),
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "←↑↓→ move  U undo  T [ ] V H transform  P pause  R new  Q quit"
}
