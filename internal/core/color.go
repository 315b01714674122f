package core

// Color represents a foreground color for a screen cell.
// Mapped to ANSI colors by the platform layer.
type Color uint8

// Predefined colors for game elements.
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
	ColorBrightWhite
	ColorGray
)

// ColorByName resolves a color name from configuration to a Color.
// Unknown names fall back to the terminal default.
func ColorByName(name string) Color {
	switch name {
	case "red":
		return ColorRed
	case "green":
		return ColorGreen
	case "yellow":
		return ColorYellow
	case "blue":
		return ColorBlue
	case "magenta":
		return ColorMagenta
	case "cyan":
		return ColorCyan
	case "white":
		return ColorWhite
	case "bright-red":
		return ColorBrightRed
	case "bright-green":
		return ColorBrightGreen
	case "bright-yellow":
		return ColorBrightYellow
	case "bright-white":
		return ColorBrightWhite
	case "gray":
		return ColorGray
	default:
		return ColorDefault
	}
}
