package engine

// Placement is a spawned tile.
type Placement struct {
	Row, Col int
	Exponent uint8
}

// spawnWeightTotal is the sum of every weight band.
const spawnWeightTotal = 256

// spawnWeights holds the draw weights for exponents 1..4 (tiles 2, 4, 8, 16).
type spawnWeights [4]int

// spawnBand maps a range of board maximum exponents to spawn weights.
// When minOne is set it replaces weights while the board still holds a 2.
type spawnBand struct {
	upTo    uint8 // inclusive upper bound of the max exponent
	weights spawnWeights
	minOne  *spawnWeights
}

// spawnBands is tuned play-feel data; keep the numbers as they are.
var spawnBands = []spawnBand{
	{upTo: 4, weights: spawnWeights{160, 96, 0, 0}},
	{upTo: 7, weights: spawnWeights{64, 160, 32, 0}},
	{upTo: 9, weights: spawnWeights{0, 208, 48, 0}, minOne: &spawnWeights{120, 120, 16, 0}},
	{upTo: 10, weights: spawnWeights{0, 160, 96, 0}},
	{upTo: MaxExponent, weights: spawnWeights{0, 96, 152, 8}},
}

// weightsFor selects the band for the board's max and min nonzero exponents.
func weightsFor(maxExp, minExp uint8) spawnWeights {
	for _, band := range spawnBands {
		if maxExp > band.upTo {
			continue
		}
		if band.minOne != nil && minExp == 1 {
			return *band.minOne
		}
		return band.weights
	}
	return spawnBands[len(spawnBands)-1].weights
}

// chooseExponent draws a new tile exponent from the band weights.
func chooseExponent(rng RandomSource, w spawnWeights) uint8 {
	draw := rng.Intn(spawnWeightTotal)
	acc := 0
	for i, weight := range w[:3] {
		acc += weight
		if draw < acc {
			return uint8(i + 1)
		}
	}
	return 4
}

// boardStats is gathered by the pre-spawn scan.
type boardStats struct {
	empty  int
	minExp uint8 // smallest nonzero exponent, 0 if the board is empty
	maxExp uint8
}

// scanForSpawn counts empty cells and nonzero exponent bounds. It is also
// the point where the previous move's merge highlights are cleared.
func scanForSpawn(b *Board) boardStats {
	var st boardStats
	for r := range Size {
		for c := range Size {
			b[r][c].Merged = false
			e := b[r][c].Exponent
			if e == 0 {
				st.empty++
				continue
			}
			if st.minExp == 0 || e < st.minExp {
				st.minExp = e
			}
			if e > st.maxExp {
				st.maxExp = e
			}
		}
	}
	return st
}

// spawnPool returns how many empty cells take part in the position draw.
// While the board is still mostly empty the pool shrinks by Size, which
// biases early spawns toward the scan start.
func spawnPool(empty int) int {
	if empty > 2*Size {
		return empty - Size
	}
	return empty
}

// Spawn places one new tile on an empty cell. Returns false if the pool is
// empty. The position is drawn first, then the value.
func Spawn(b *Board, rng RandomSource) (Placement, bool) {
	st := scanForSpawn(b)
	pool := spawnPool(st.empty)
	if pool == 0 {
		return Placement{}, false
	}

	pos := rng.Intn(pool)
	exp := chooseExponent(rng, weightsFor(st.maxExp, st.minExp))

	// Reverse scan: last row to first, last column to first.
	n := 0
	for r := Size - 1; r >= 0; r-- {
		for c := Size - 1; c >= 0; c-- {
			if !b[r][c].Empty() {
				continue
			}
			if n == pos {
				b[r][c] = Cell{Exponent: exp}
				return Placement{Row: r, Col: c, Exponent: exp}, true
			}
			n++
		}
	}

	// pos < pool <= empty, so the scan always lands on a cell.
	panic("engine: spawn position not found")
}
