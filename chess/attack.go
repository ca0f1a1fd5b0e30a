package chess

// IsSquareAttacked reports whether a piece of byColor could move onto
// target in one step. Only the board is consulted.
func IsSquareAttacked(p Position, target Square, byColor Color) bool {
	return p.Board.attacked(target, byColor)
}

func (board Board) attacked(target Square, byColor Color) bool {
	if board.leaperAttack(target, Piece{byColor, Knight}, knightOffsets) {
		return true
	}
	if board.leaperAttack(target, Piece{byColor, King}, kingOffsets) {
		return true
	}
	// A pawn of byColor captures forward, so it stands one rank behind.
	pawn := Piece{byColor, Pawn}
	for _, dx := range []int{-1, 1} {
		if sq, ok := target.Offset(dx, -byColor.forward()); ok {
			if piece, _ := board.Piece(sq); piece == pawn {
				return true
			}
		}
	}
	for _, d := range diagonals {
		if board.rayAttack(target, d, byColor, Bishop) {
			return true
		}
	}
	for _, d := range orthogonals {
		if board.rayAttack(target, d, byColor, Rook) {
			return true
		}
	}
	return false
}

func (board Board) leaperAttack(target Square, attacker Piece, offsets []offset) bool {
	for _, o := range offsets {
		if sq, ok := target.Offset(o.dx, o.dy); ok {
			if piece, _ := board.Piece(sq); piece == attacker {
				return true
			}
		}
	}
	return false
}

// rayAttack walks from target to the first occupant along d. The ray
// attacks when that occupant is a byColor slider of kind or a queen.
func (board Board) rayAttack(target Square, d offset, byColor Color, kind Kind) bool {
	for sq, ok := target.Offset(d.dx, d.dy); ok; sq, ok = sq.Offset(d.dx, d.dy) {
		piece, occupied := board.Piece(sq)
		if !occupied {
			continue
		}
		return piece.Color == byColor && (piece.Kind == kind || piece.Kind == Queen)
	}
	return false
}
