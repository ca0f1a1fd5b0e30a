package chess

import (
	"fmt"

	"github.com/apex/log"
)

// CastlingRights records which castles a side may still make. Nothing
// in generation, legality or MakeMove reads or updates it.
type CastlingRights struct {
	Kingside  bool
	Queenside bool
}

// Position is a full game state. It is a value: MakeMove returns a new
// Position and never changes the receiver.
type Position struct {
	Board      Board
	SideToMove Color
	Castling   [2]CastlingRights // indexed by Color

	// EnPassant is carried for FEN round trips only; NoSquare when unset.
	EnPassant      Square
	HalfmoveClock  int
	FullmoveNumber int
}

// StartPosition is the standard initial game state, White to move.
func StartPosition() Position {
	return Position{
		Board:          StartBoard(),
		SideToMove:     White,
		Castling:       [2]CastlingRights{{true, true}, {true, true}},
		EnPassant:      NoSquare,
		FullmoveNumber: 1,
	}
}

// NewPosition wraps board with no castling rights and no en passant target.
func NewPosition(board Board, sideToMove Color) Position {
	return Position{
		Board:          board,
		SideToMove:     sideToMove,
		EnPassant:      NoSquare,
		FullmoveNumber: 1,
	}
}

// KingSquare finds the king of color. The king must be on the board:
// a missing king is a programming error and panics with ErrNoKing.
func (p Position) KingSquare(color Color) Square {
	king := Piece{color, King}
	for sq := Square(0); sq < NumSquares; sq++ {
		if piece, _ := p.Board.Piece(sq); piece == king {
			return sq
		}
	}
	err := fmt.Errorf("%w: %s", ErrNoKing, color)
	log.WithError(err).WithField("fen", p.FEN()).Error("king lookup")
	panic(err)
}

// InCheck reports whether the king of color is attacked.
func (p Position) InCheck(color Color) bool {
	return IsSquareAttacked(p, p.KingSquare(color), color.Opposite())
}

// PseudoLegalMoves lists the moves of the side to move in board scan
// order, without regard to check.
func (p Position) PseudoLegalMoves() []Move {
	moves := make([]Move, 0, 48)
	for sq := Square(0); sq < NumSquares; sq++ {
		piece, ok := p.Board.Piece(sq)
		if !ok || piece.Color != p.SideToMove {
			continue
		}
		moves = p.Board.movesForPiece(moves, piece, sq)
	}
	return moves
}

// LegalMoves keeps the pseudo-legal moves that do not leave the mover's
// own king attacked.
func (p Position) LegalMoves() []Move {
	candidates := p.PseudoLegalMoves()
	moves := candidates[:0]
	for _, m := range candidates {
		if !p.MakeMove(m).InCheck(p.SideToMove) {
			moves = append(moves, m)
		}
	}
	return moves
}

// MakeMove relocates the piece on m.From to m.To and passes the turn.
// It does not validate m, handle castling, en passant or promotion, nor
// update castling rights, the en passant target or the clocks.
func (p Position) MakeMove(m Move) Position {
	next := p
	if piece, ok := p.Board.Piece(m.From); ok {
		next.Board.Place(piece, m.To)
		next.Board.Clear(m.From)
	}
	next.SideToMove = p.SideToMove.Opposite()
	return next
}

// Evaluate is the material balance, positive when White is ahead.
func (p Position) Evaluate() int {
	score := 0
	for sq := Square(0); sq < NumSquares; sq++ {
		if piece, ok := p.Board.Piece(sq); ok {
			score += piece.Value()
		}
	}
	return score
}

// Status is the outcome of a position for the side to move.
type Status int

const (
	Ongoing Status = iota
	Checkmate
	Stalemate
)

func (s Status) String() string {
	switch s {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	default:
		return "ongoing"
	}
}

// Status classifies the position from LegalMoves and InCheck.
func (p Position) Status() Status {
	if len(p.LegalMoves()) > 0 {
		return Ongoing
	}
	if p.InCheck(p.SideToMove) {
		return Checkmate
	}
	return Stalemate
}
