package core

// Color is a semantic tint for a screen cell.
// The platform layer maps each value to a terminal style.
type Color uint8

const (
	ColorDefault  Color = iota
	ColorGrid           // Cell borders and empty tiles
	ColorRoute          // Direction arrows
	ColorPiece          // Occupied tiles
	ColorCollided       // Tiles where pieces merged this step
	ColorOutput         // The output tile
	ColorHUD            // Counters and labels
	ColorDim            // Help text
	ColorWarning        // Invalid-move flash
)
