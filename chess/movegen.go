package chess

type offset struct{ dx, dy int }

var knightOffsets = []offset{
	{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

var kingOffsets = []offset{
	{0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1},
}

var diagonals = []offset{{1, 1}, {1, -1}, {-1, -1}, {-1, 1}}

var orthogonals = []offset{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}

var queenDirections = append(append([]offset{}, orthogonals...), diagonals...)

const (
	whitePawnRank = 1
	blackPawnRank = 6
)

// target classifies a destination: ok is false for a friendly occupant.
func (board Board) target(color Color, from, to Square) (Move, bool) {
	piece, occupied := board.Piece(to)
	if !occupied {
		return Move{From: from, To: to, Kind: Quiet{}}, true
	}
	if piece.Color == color {
		return Move{}, false
	}
	return Move{From: from, To: to, Kind: Capture{}}, true
}

func (board Board) movesForLeaper(moves []Move, color Color, from Square, offsets []offset) []Move {
	for _, o := range offsets {
		to, ok := from.Offset(o.dx, o.dy)
		if !ok {
			continue
		}
		if m, ok := board.target(color, from, to); ok {
			moves = append(moves, m)
		}
	}
	return moves
}

func (board Board) movesForSlider(moves []Move, color Color, from Square, directions []offset) []Move {
	for _, d := range directions {
		for to, ok := from.Offset(d.dx, d.dy); ok; to, ok = to.Offset(d.dx, d.dy) {
			m, ok := board.target(color, from, to)
			if !ok {
				break
			}
			moves = append(moves, m)
			if _, isCapture := m.Kind.(Capture); isCapture {
				break
			}
		}
	}
	return moves
}

func (board Board) movesForPawn(moves []Move, color Color, from Square) []Move {
	dy := color.forward()
	homeRank := whitePawnRank
	if color == Black {
		homeRank = blackPawnRank
	}
	if one, ok := from.Offset(0, dy); ok {
		if _, occupied := board.Piece(one); !occupied {
			moves = append(moves, Move{From: from, To: one, Kind: Quiet{}})
			if from.Rank() == homeRank {
				if two, ok := one.Offset(0, dy); ok {
					if _, occupied := board.Piece(two); !occupied {
						moves = append(moves, Move{From: from, To: two, Kind: DoublePawnPush{}})
					}
				}
			}
		}
	}
	for _, dx := range []int{-1, 1} {
		to, ok := from.Offset(dx, dy)
		if !ok {
			continue
		}
		if piece, occupied := board.Piece(to); occupied && piece.Color != color {
			moves = append(moves, Move{From: from, To: to, Kind: Capture{}})
		}
	}
	return moves
}

// movesForPiece appends the pseudo-legal moves of the piece on from.
func (board Board) movesForPiece(moves []Move, piece Piece, from Square) []Move {
	switch piece.Kind {
	case Pawn:
		return board.movesForPawn(moves, piece.Color, from)
	case Knight:
		return board.movesForLeaper(moves, piece.Color, from, knightOffsets)
	case Bishop:
		return board.movesForSlider(moves, piece.Color, from, diagonals)
	case Rook:
		return board.movesForSlider(moves, piece.Color, from, orthogonals)
	case Queen:
		return board.movesForSlider(moves, piece.Color, from, queenDirections)
	case King:
		return board.movesForLeaper(moves, piece.Color, from, kingOffsets)
	default:
		return moves
	}
}

// MovesFrom returns the pseudo-legal moves of whatever piece stands on sq,
// ignoring whose turn it is.
func (board Board) MovesFrom(sq Square) []Move {
	piece, ok := board.Piece(sq)
	if !ok {
		return nil
	}
	return board.movesForPiece(nil, piece, sq)
}
