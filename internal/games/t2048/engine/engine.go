package engine

// MoveResult reports the effect of ApplyMove.
type MoveResult struct {
	ScoreDelta int
	Moved      bool // any cell moved or merged
	Won        bool // this move produced the first winning tile
	Spawned    bool
	Spawn      Placement
}

// Snapshot is a read-only copy of the engine state for rendering.
type Snapshot struct {
	Board  Board
	Score  int
	Status Status
	Moves  int

	// LastSpawn is the tile inserted by the latest move or restart.
	LastSpawn    Placement
	HasLastSpawn bool
}

// MaxTile returns the largest tile on the snapshot board.
func (s Snapshot) MaxTile() int {
	return s.Board.MaxTile()
}

// Engine owns one game session: board, score, undo snapshot and random
// source. It is not safe for concurrent use.
type Engine struct {
	board  Board
	scorer Scorer
	undo   UndoStore
	rng    RandomSource

	status Status
	// reached is set once the win has been announced; later 2048 merges
	// after Continue do not announce it again.
	reached bool
	moves   int
	undone  bool

	lastSpawn    Placement
	hasLastSpawn bool
}

// New creates an engine using rng. Call Restart before the first move.
func New(rng RandomSource) *Engine {
	if rng == nil {
		rng = NewGrayRand(0)
	}
	return &Engine{rng: rng}
}

// Restart resets board and score, reseeds the random source with entropy
// (normally derived from the clock) and spawns the two opening tiles.
func (e *Engine) Restart(entropy uint64) {
	Reseed(e.rng, entropy)

	e.board.Clear()
	e.scorer.Reset(0)
	e.undo.Reset()
	e.status = StatusPlaying
	e.reached = false
	e.moves = 0
	e.undone = false
	e.hasLastSpawn = false

	for range 2 {
		if p, ok := Spawn(&e.board, e.rng); ok {
			e.lastSpawn, e.hasLastSpawn = p, true
		}
	}
}

// Load replaces the board and score of a running game. Undo history and the
// move count are dropped and the status is recomputed from the board.
func (e *Engine) Load(b Board, score int) {
	e.board = b
	e.scorer.Reset(score)
	e.undo.Reset()
	e.moves = 0
	e.undone = false
	e.hasLastSpawn = false
	e.reached = HasWon(b)

	e.status = StatusPlaying
	if IsLost(b) {
		e.status = StatusLost
	}
}

// ApplyMove slides the board in d. A move that changes nothing leaves the
// state untouched and spawns nothing. Moves are rejected while the game is
// won (until Continue) or lost.
func (e *Engine) ApplyMove(d Direction) MoveResult {
	if e.status != StatusPlaying {
		return MoveResult{}
	}

	prevScore := e.scorer.Value()

	next := e.board
	next.ClearMerged()
	out := Move(&next, d, &e.scorer)
	if out.Moved == 0 {
		return MoveResult{}
	}

	e.undo.Save(e.board, prevScore)
	e.board = next
	e.moves++
	e.undone = false

	res := MoveResult{ScoreDelta: out.ScoreDelta, Moved: true}
	if out.Won && !e.reached {
		e.reached = true
		e.status = StatusWon
		res.Won = true
	}

	// Spawn clears the merge flags it scans, so keep them for the renderer.
	merged := mergedMask(&e.board)
	p, ok := Spawn(&e.board, e.rng)
	restoreMerged(&e.board, merged)

	e.hasLastSpawn = ok
	if ok {
		e.lastSpawn = p
		res.Spawned, res.Spawn = true, p
	}

	if !res.Won && ok && IsLost(e.board) {
		e.status = StatusLost
	}

	return res
}

// Undo restores the state before the last effective move. Repeating it
// restores the same snapshot again. Returns false, leaving the state
// unchanged, when there is nothing to restore.
func (e *Engine) Undo() (Snapshot, bool) {
	b, score, ok := e.undo.Restore()
	if !ok {
		return e.Snapshot(), false
	}

	e.board = b
	e.scorer.Reset(score)
	e.status = StatusPlaying
	e.hasLastSpawn = false
	if !e.undone {
		e.moves--
		e.undone = true
	}
	if !HasWon(e.board) {
		e.reached = false
	}

	return e.Snapshot(), true
}

// Continue resumes play after a win. Returns false if the game is not in
// the won state.
func (e *Engine) Continue() bool {
	if e.status != StatusWon {
		return false
	}
	e.status = StatusPlaying
	if IsLost(e.board) {
		e.status = StatusLost
	}
	return true
}

// Transform applies a geometric permutation to the board.
func (e *Engine) Transform(k TransformKind) {
	Apply(&e.board, k)
	e.hasLastSpawn = false
}

// Snapshot returns a copy of the current state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Board:        e.board,
		Score:        e.scorer.Value(),
		Status:       e.status,
		Moves:        e.moves,
		LastSpawn:    e.lastSpawn,
		HasLastSpawn: e.hasLastSpawn,
	}
}

// IsLost returns true if no move is possible.
func (e *Engine) IsLost() bool {
	return IsLost(e.board)
}

// Status returns the current terminal-state classification.
func (e *Engine) Status() Status {
	return e.status
}

// Score returns the current score.
func (e *Engine) Score() int {
	return e.scorer.Value()
}

func mergedMask(b *Board) [Size][Size]bool {
	var m [Size][Size]bool
	b.Each(func(r, c int, cell Cell) {
		m[r][c] = cell.Merged
	})
	return m
}

func restoreMerged(b *Board, m [Size][Size]bool) {
	for r := range Size {
		for c := range Size {
			b[r][c].Merged = m[r][c]
		}
	}
}
