package chess

// Board holds one optional piece per square. Placing overwrites.
type Board struct {
	squares [NumSquares]Piece
}

var backRank = [boardSize]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// EmptyBoard returns a board with no pieces.
func EmptyBoard() Board {
	return Board{}
}

// StartBoard returns the standard opening array.
func StartBoard() Board {
	var board Board
	for file, kind := range backRank {
		board.squares[file] = Piece{White, kind}
		board.squares[boardSize+file] = Piece{White, Pawn}
		board.squares[6*boardSize+file] = Piece{Black, Pawn}
		board.squares[7*boardSize+file] = Piece{Black, kind}
	}
	return board
}

// Place puts piece on sq regardless of what was there.
func (board *Board) Place(piece Piece, sq Square) {
	board.squares[sq] = piece
}

// Clear empties sq.
func (board *Board) Clear(sq Square) {
	board.squares[sq] = Piece{}
}

// Piece returns the occupant of sq, if any.
func (board Board) Piece(sq Square) (Piece, bool) {
	piece := board.squares[sq]
	return piece, piece.Kind != NoKind
}

// Swap returns the board with every piece's colour flipped.
func (board Board) Swap() Board {
	state := board
	for i, piece := range state.squares {
		if piece.Kind != NoKind {
			state.squares[i].Color = piece.Color.Opposite()
		}
	}
	return state
}

// Count returns how many pieces of the given colour and kind are on the board.
func (board Board) Count(piece Piece) int {
	count := 0
	for _, p := range board.squares {
		if p == piece {
			count++
		}
	}
	return count
}

// HasKings reports whether both sides have exactly one king.
func (board Board) HasKings() bool {
	return board.Count(Piece{White, King}) == 1 && board.Count(Piece{Black, King}) == 1
}
