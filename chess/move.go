package chess

import (
	"encoding/json"
	"fmt"
)

// MoveKind tags a move. The set is closed: Quiet, Capture, DoublePawnPush,
// EnPassant, Castle and Promotion. Generation only produces the first
// three.
type MoveKind interface {
	isMoveKind()
}

type (
	Quiet          struct{}
	Capture        struct{}
	DoublePawnPush struct{}
	EnPassant      struct{}
	Castle         struct{ Kingside bool }
	Promotion      struct {
		To        Kind
		IsCapture bool
	}
)

func (Quiet) isMoveKind()          {}
func (Capture) isMoveKind()        {}
func (DoublePawnPush) isMoveKind() {}
func (EnPassant) isMoveKind()      {}
func (Castle) isMoveKind()         {}
func (Promotion) isMoveKind()      {}

// Move is a from/to pair with its kind.
type Move struct {
	From Square
	To   Square
	Kind MoveKind
}

// IsCapture reports whether the move removes an opposing piece.
func (m Move) IsCapture() bool {
	switch kind := m.Kind.(type) {
	case Capture, EnPassant:
		return true
	case Quiet, DoublePawnPush, Castle:
		return false
	case Promotion:
		return kind.IsCapture
	default:
		panic(fmt.Sprintf("unknown move kind %T", m.Kind))
	}
}

// String is coordinate notation, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if promotion, ok := m.Kind.(Promotion); ok {
		s += string(kindLetters[promotion.To])
	}
	return s
}

func (m Move) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// ParseMove finds the move written in coordinate notation among moves.
func ParseMove(s string, moves []Move) (Move, error) {
	for _, m := range moves {
		if m.String() == s {
			return m, nil
		}
	}
	return Move{}, fmt.Errorf("%w: %q", ErrInvalidMove, s)
}
