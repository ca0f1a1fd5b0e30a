// Package chess represents positions, generates legal moves and scores material.
package chess

// Color is the side a piece or a player belongs to.
type Color uint8

const (
	White Color = iota
	Black
)

// Opposite returns the other side.
func (c Color) Opposite() Color {
	if c == White {
		return Black
	}
	return White
}

// forward is the rank step of a pawn advance.
func (c Color) forward() int {
	if c == White {
		return 1
	}
	return -1
}

func (c Color) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}
