package chess

import "fmt"

// Square indexes the board as rank*8 + file, a1 = 0, h8 = 63.
type Square uint8

const (
	boardSize = 8

	// NumSquares is the number of squares on the board.
	NumSquares = boardSize * boardSize

	// NoSquare marks an absent square, such as no en passant target.
	NoSquare Square = NumSquares
)

// FromCoords builds a square from 0-based file and rank.
func FromCoords(file, rank int) (Square, bool) {
	if file < 0 || file >= boardSize || rank < 0 || rank >= boardSize {
		return NoSquare, false
	}
	return Square(rank*boardSize + file), true
}

// Offset steps dx files and dy ranks away. It reports false when the
// step leaves the board. Every generator moves through here.
func (sq Square) Offset(dx, dy int) (Square, bool) {
	return FromCoords(sq.File()+dx, sq.Rank()+dy)
}

func (sq Square) File() int { return int(sq) % boardSize }

func (sq Square) Rank() int { return int(sq) / boardSize }

// Valid reports whether sq is on the board.
func (sq Square) Valid() bool { return sq < NoSquare }

func (sq Square) String() string {
	if !sq.Valid() {
		return "-"
	}
	return string([]byte{byte('a' + sq.File()), byte('1' + sq.Rank())})
}

// ParseSquare reads algebraic notation such as "e4".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}
	sq, ok := FromCoords(int(s[0])-'a', int(s[1])-'1')
	if !ok {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}
	return sq, nil
}
