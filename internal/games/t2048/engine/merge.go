package engine

import "fmt"

// StripeResult reports what a single stripe pass did.
type StripeResult struct {
	Moved int  // cells that changed position or value
	Won   bool // a merge produced the winning exponent
}

// MoveOutcome aggregates the stripe results of one board move.
type MoveOutcome struct {
	Moved      int
	ScoreDelta int
	Won        bool
}

// Nudge compacts and merges one stripe toward position 0.
//
// Gaps are closed lazily, right before each merge test. A merged cell is
// passed over by the cursor, so it cannot merge again within the same move:
// [2 2 2 2] becomes [4 4 . .], never [8 . . .].
func Nudge(s Stripe, scorer *Scorer) StripeResult {
	var res StripeResult
	n := s.Len()

	for cur := 0; cur < n-1; cur++ {
		res.Moved += compact(s, cur)

		head := s.At(cur)
		if head.Empty() {
			// Everything from cur onward is empty.
			break
		}

		next := s.At(cur + 1)
		if next.Exponent != head.Exponent {
			continue
		}

		if head.Exponent >= MaxExponent {
			panic(fmt.Sprintf("engine: merge would exceed exponent %d", MaxExponent))
		}

		merged := Cell{Exponent: head.Exponent + 1, Merged: true}
		s.Set(cur, merged)
		s.Set(cur+1, Cell{})
		scorer.Add(merged.Value())
		res.Moved++

		if merged.Exponent == WinExponent {
			res.Won = true
		}
	}

	return res
}

// compact slides every tile at or after from toward from, preserving order.
// Returns the number of tiles that changed position.
func compact(s Stripe, from int) int {
	moved := 0
	write := from
	for read := from; read < s.Len(); read++ {
		cell := s.At(read)
		if cell.Empty() {
			continue
		}
		if read != write {
			s.Set(write, cell)
			s.Set(read, Cell{})
			moved++
		}
		write++
	}
	return moved
}

// Move runs Nudge over every lane of the board for direction d.
// Zero Moved means the move had no effect.
func Move(b *Board, d Direction, scorer *Scorer) MoveOutcome {
	before := scorer.Value()

	var out MoveOutcome
	for lane := range Size {
		res := Nudge(NewStripe(b, d, lane), scorer)
		out.Moved += res.Moved
		out.Won = out.Won || res.Won
	}

	out.ScoreDelta = scorer.Value() - before
	return out
}

// CanMove returns true if a move in d would change the board.
func CanMove(b Board, d Direction) bool {
	var scratch Scorer
	return Move(&b, d, &scratch).Moved > 0
}
