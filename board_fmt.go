package main

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/maplefeline/nchess/chess"
)

// renderBoard draws the board rank 8 first, one glyph per square.
func renderBoard(board chess.Board) string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		fmt.Fprintf(&sb, "%d ", rank+1)
		for file := 0; file < 8; file++ {
			sq, _ := chess.FromCoords(file, rank)
			glyph := emptySquareGlyph
			if piece, ok := board.Piece(sq); ok {
				glyph = piece.Glyph()
			}
			sb.WriteRune(glyph)
			if file < 7 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}

func parseState(fen string) (chessState, error) {
	position, err := chess.ParseFEN(fen)
	if err != nil {
		return chessState{}, err
	}
	return chessState{position}, nil
}

func (state chessState) String() string {
	return state.FEN()
}

func (state *chessState) UnmarshalJSON(bytes []byte) error {
	var fen string
	if err := json.Unmarshal(bytes, &fen); err != nil {
		return err
	}
	parsed, err := parseState(fen)
	if err != nil {
		return err
	}
	*state = parsed
	return nil
}

func (state chessState) MarshalJSON() ([]byte, error) {
	return json.Marshal(state.FEN())
}

func (state chessState) Value() (driver.Value, error) {
	return state.FEN(), nil
}

func (state *chessState) Scan(cell interface{}) error {
	switch cell := cell.(type) {
	case string:
		parsed, err := parseState(cell)
		if err != nil {
			return err
		}
		*state = parsed
	case []byte:
		return state.Scan(string(cell))
	default:
		return fmt.Errorf("invalid format scaning %#v", cell)
	}
	return nil
}
