package chess

import "errors"

var (
	// ErrNoKing is the panic value of king lookups on a board without that king.
	ErrNoKing = errors.New("no king on board")

	ErrInvalidSquare = errors.New("invalid square")
	ErrInvalidMove   = errors.New("invalid move")
	ErrInvalidFEN    = errors.New("invalid FEN")
)
