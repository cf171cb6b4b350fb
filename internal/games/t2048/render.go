package t2048

import (
	"fmt"
	"strconv"
	"time"

	"github.com/Radialsum/X800W/internal/core"
	"github.com/Radialsum/X800W/internal/games/t2048/engine"
)

const (
	cellWidth  = 7 // stride between vertical grid lines
	cellHeight = 4 // stride between horizontal grid lines

	boardW    = engine.Size*cellWidth + 1
	boardH    = engine.Size*cellHeight + 1
	hudHeight = 3

	minScreenW = boardW + 2
	minScreenH = hudHeight + 1 + boardH + 1

	gridColor = core.ColorGray
)

// tileColors is indexed by exponent; larger exponents use the last entry.
var tileColors = []core.Color{
	core.ColorDefault,
	core.ColorWhite,         // 2
	core.ColorBrightWhite,   // 4
	core.ColorYellow,        // 8
	core.ColorOrange,        // 16
	core.ColorBrightRed,     // 32
	core.ColorRed,           // 64
	core.ColorBrightYellow,  // 128
	core.ColorBrightGreen,   // 256
	core.ColorGreen,         // 512
	core.ColorBrightCyan,    // 1024
	core.ColorBrightMagenta, // 2048
	core.ColorBrightBlue,
}

func tileColor(exp uint8) core.Color {
	if int(exp) >= len(tileColors) {
		return tileColors[len(tileColors)-1]
	}
	return tileColors[exp]
}

// formatTile renders a tile value in at most cellWidth-1 characters.
func formatTile(exp uint8) string {
	switch {
	case exp == 0:
		return ""
	case exp <= 16:
		return strconv.Itoa(1 << exp)
	case exp <= 26:
		return strconv.Itoa(1<<(exp-10)) + "K"
	default:
		return strconv.Itoa(1<<(exp-20)) + "M"
	}
}

// formatElapsed renders a duration as mm:ss, growing to h:mm:ss past an hour.
func formatElapsed(d time.Duration) string {
	total := int(d / time.Second)
	h, m, s := total/3600, (total/60)%60, total%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	snap := g.eng.Snapshot()
	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, snap, boardX)
	renderGrid(dst, boardX, boardY)
	g.renderTiles(dst, snap, boardX, boardY)
	g.renderOverlays(dst, snap, core.NewRect(boardX, boardY, boardW, boardH))

	if footerY := boardY + boardH + 1; footerY < g.screenH {
		dst.DrawTextCentered(footerY, g.Controls(), core.ColorGray)
	}
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorBrightRed)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH), core.ColorDefault)
}

func (g *Game) renderHUD(dst *core.Screen, snap engine.Snapshot, boardX int) {
	title := g.Title()
	if g.flashTicks > 0 {
		title = "2048 reached! Keep going"
	}
	dst.DrawTextCentered(0, title, core.ColorBrightYellow)

	dst.DrawText(boardX, 1, fmt.Sprintf("Score: %d", snap.Score))
	maxStr := fmt.Sprintf("Max: %d", snap.MaxTile())
	dst.DrawText(boardX+boardW-len(maxStr), 1, maxStr)

	dst.DrawTextColor(boardX, 2, fmt.Sprintf("Moves: %d", snap.Moves), core.ColorGray)
	if g.cfg.ShowTimer {
		t := formatElapsed(g.Elapsed())
		dst.DrawTextColor(boardX+boardW-len(t), 2, t, core.ColorGray)
	}
}

// renderGrid draws the grid lines and their junctions.
func renderGrid(dst *core.Screen, boardX, boardY int) {
	for row := range engine.Size + 1 {
		for col := range engine.Size + 1 {
			px := boardX + col*cellWidth
			py := boardY + row*cellHeight
			dst.SetColor(px, py, junction(row, col), gridColor)

			if col < engine.Size {
				dst.DrawHLine(px+1, py, cellWidth-1, '─', gridColor)
			}
			if row < engine.Size {
				dst.DrawVLine(px, py+1, cellHeight-1, '│', gridColor)
			}
		}
	}
}

func junction(row, col int) rune {
	const last = engine.Size
	switch {
	case row == 0 && col == 0:
		return '┌'
	case row == 0 && col == last:
		return '┐'
	case row == last && col == 0:
		return '└'
	case row == last && col == last:
		return '┘'
	case row == 0:
		return '┬'
	case row == last:
		return '┴'
	case col == 0:
		return '├'
	case col == last:
		return '┤'
	default:
		return '┼'
	}
}

func (g *Game) renderTiles(dst *core.Screen, snap engine.Snapshot, boardX, boardY int) {
	snap.Board.Each(func(row, col int, cell engine.Cell) {
		if cell.Empty() {
			return
		}

		x := boardX + col*cellWidth + 1
		y := boardY + row*cellHeight + 1
		inner := cellWidth - 1

		label := formatTile(cell.Exponent)
		dst.DrawTextColor(x+(inner-len(label))/2, y+1, label, tileColor(cell.Exponent))

		if g.cfg.HighlightMerges && cell.Merged {
			dst.SetColor(x+inner-1, y, '+', core.ColorBrightYellow)
		}
		if g.cfg.HighlightSpawn && snap.HasLastSpawn &&
			snap.LastSpawn.Row == row && snap.LastSpawn.Col == col {
			dst.SetColor(x, y, '*', core.ColorBrightGreen)
		}
	})
}

func (g *Game) renderOverlays(dst *core.Screen, snap engine.Snapshot, board core.Rect) {
	switch {
	case g.paused:
		drawOverlay(dst, board, core.ColorBrightCyan, "PAUSED", "Press P to resume")
	case snap.Status == engine.StatusWon:
		drawOverlay(dst, board, core.ColorBrightMagenta,
			"YOU WIN!",
			fmt.Sprintf("Score: %d", snap.Score),
			"Enter: keep going",
			"R: new game  U: undo")
	case snap.Status == engine.StatusLost:
		drawOverlay(dst, board, core.ColorBrightRed,
			"GAME OVER",
			fmt.Sprintf("Max tile: %d", snap.MaxTile()),
			"R: new game  U: undo")
	}
}

// drawOverlay draws a boxed message centered on the board.
func drawOverlay(dst *core.Screen, board core.Rect, titleColor core.Color, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, len(line))
	}

	box := board.CenteredRect(maxLen+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, titleColor)

	cx, _ := box.Center()
	for i, line := range lines {
		c := core.ColorDefault
		if i == 0 {
			c = titleColor
		}
		dst.DrawTextColor(cx-len(line)/2, box.Y+1+i, line, c)
	}
}
