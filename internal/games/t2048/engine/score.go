package engine

import "fmt"

// Scorer accumulates score awarded by merges.
type Scorer struct {
	value int
}

// Add increases the score.
func (s *Scorer) Add(amount int) {
	if amount < 0 {
		panic(fmt.Sprintf("engine: negative score delta %d", amount))
	}
	s.value += amount
}

// Reset sets the score to v.
func (s *Scorer) Reset(v int) {
	s.value = v
}

// Value returns the current score.
func (s *Scorer) Value() int {
	return s.value
}

// UndoStore keeps exactly one (board, score) snapshot.
type UndoStore struct {
	board Board
	score int
	saved bool
}

// Save overwrites the retained snapshot.
func (u *UndoStore) Save(b Board, score int) {
	u.board = b
	u.score = score
	u.saved = true
}

// Restore returns the retained snapshot with merge highlights stripped.
// ok is false when nothing has been saved.
func (u *UndoStore) Restore() (b Board, score int, ok bool) {
	if !u.saved {
		return Board{}, 0, false
	}
	b = u.board
	b.ClearMerged()
	return b, u.score, true
}

// Saved reports whether a snapshot is available.
func (u *UndoStore) Saved() bool {
	return u.saved
}

// Reset drops the retained snapshot.
func (u *UndoStore) Reset() {
	*u = UndoStore{}
}
