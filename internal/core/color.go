package core

// Color is the terminal palette slot of a screen cell.
// Front ends map it to ANSI 256 colors; the desktop front end ignores it
// and uses the entity's hex color instead.
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
	ColorDim
	ColorGold
	ColorViolet
)
