package core

// Color is a foreground color for a screen cell. The palette is limited
// to what the game draws; the tui renderer maps each entry to an ANSI
// code.
type Color uint8

const (
	ColorDefault      Color = iota
	ColorRed                // ghost
	ColorMagenta            // ghost
	ColorCyan               // ghost
	ColorOrange             // ghost
	ColorBlue               // maze walls
	ColorWhite              // pellets
	ColorBrightYellow       // player, power pellets
	ColorBrightBlue         // frightened ghosts
)
