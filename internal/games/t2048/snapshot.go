package t2048

import "github.com/Radialsum/X800W/internal/games/t2048/engine"

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick    uint64
	Mode    string // "classic" or "endless"
	Score   int
	Board   [engine.Size][engine.Size]int
	MaxTile int
	Moves   int
	Status  string // engine status, or "paused"
	Reached bool
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	es := g.eng.Snapshot()

	status := es.Status.String()
	if g.paused {
		status = "paused"
	}

	return Snapshot{
		Tick:    g.tick,
		Mode:    string(g.mode),
		Score:   es.Score,
		Board:   es.Board.Values(),
		MaxTile: es.MaxTile(),
		Moves:   es.Moves,
		Status:  status,
		Reached: g.reached,
	}
}
