package core

// Color is the foreground colour of a screen cell. The platform maps each
// value to an ANSI 256-colour code.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray

	// colorCount must stay last.
	colorCount
)

// Colors returns every defined colour in declaration order.
func Colors() []Color {
	out := make([]Color, 0, colorCount)
	for c := range colorCount {
		out = append(out, c)
	}
	return out
}
