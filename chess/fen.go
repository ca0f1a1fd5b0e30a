package chess

import (
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the FEN of StartPosition.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN reads a Forsyth-Edwards record. The clock fields may be
// omitted and default to 0 and 1.
func ParseFEN(fen string) (Position, error) {
	fields := strings.Fields(fen)
	if len(fields) != 4 && len(fields) != 6 {
		return Position{}, fmt.Errorf("%w: %d fields", ErrInvalidFEN, len(fields))
	}
	p := Position{EnPassant: NoSquare, FullmoveNumber: 1}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != boardSize {
		return Position{}, fmt.Errorf("%w: %d ranks", ErrInvalidFEN, len(ranks))
	}
	for i, row := range ranks {
		rank := boardSize - 1 - i
		file := 0
		for j := 0; j < len(row); j++ {
			c := row[j]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			lower := c
			color := Black
			if c >= 'A' && c <= 'Z' {
				lower = c - 'A' + 'a'
				color = White
			}
			kind, ok := kindFromLetter(lower)
			if !ok {
				return Position{}, fmt.Errorf("%w: piece %q", ErrInvalidFEN, c)
			}
			sq, ok := FromCoords(file, rank)
			if !ok {
				return Position{}, fmt.Errorf("%w: rank %d overflows", ErrInvalidFEN, rank+1)
			}
			p.Board.Place(Piece{color, kind}, sq)
			file++
		}
		if file != boardSize {
			return Position{}, fmt.Errorf("%w: rank %d has %d files", ErrInvalidFEN, rank+1, file)
		}
	}

	switch fields[1] {
	case "w":
		p.SideToMove = White
	case "b":
		p.SideToMove = Black
	default:
		return Position{}, fmt.Errorf("%w: side %q", ErrInvalidFEN, fields[1])
	}

	if fields[2] != "-" {
		for _, c := range fields[2] {
			switch c {
			case 'K':
				p.Castling[White].Kingside = true
			case 'Q':
				p.Castling[White].Queenside = true
			case 'k':
				p.Castling[Black].Kingside = true
			case 'q':
				p.Castling[Black].Queenside = true
			default:
				return Position{}, fmt.Errorf("%w: castling %q", ErrInvalidFEN, fields[2])
			}
		}
	}

	if fields[3] != "-" {
		sq, err := ParseSquare(fields[3])
		if err != nil {
			return Position{}, fmt.Errorf("%w: en passant: %v", ErrInvalidFEN, err)
		}
		p.EnPassant = sq
	}

	if len(fields) == 6 {
		halfmove, err := strconv.Atoi(fields[4])
		if err != nil || halfmove < 0 {
			return Position{}, fmt.Errorf("%w: halfmove clock %q", ErrInvalidFEN, fields[4])
		}
		fullmove, err := strconv.Atoi(fields[5])
		if err != nil || fullmove < 1 {
			return Position{}, fmt.Errorf("%w: fullmove number %q", ErrInvalidFEN, fields[5])
		}
		p.HalfmoveClock = halfmove
		p.FullmoveNumber = fullmove
	}
	return p, nil
}

// FEN writes the position as a Forsyth-Edwards record.
func (p Position) FEN() string {
	var sb strings.Builder
	for rank := boardSize - 1; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < boardSize; file++ {
			sq, _ := FromCoords(file, rank)
			piece, ok := p.Board.Piece(sq)
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	if p.SideToMove == White {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}

	castling := ""
	if p.Castling[White].Kingside {
		castling += "K"
	}
	if p.Castling[White].Queenside {
		castling += "Q"
	}
	if p.Castling[Black].Kingside {
		castling += "k"
	}
	if p.Castling[Black].Queenside {
		castling += "q"
	}
	if castling == "" {
		castling = "-"
	}
	sb.WriteString(castling)
	sb.WriteByte(' ')
	sb.WriteString(p.EnPassant.String())
	fmt.Fprintf(&sb, " %d %d", p.HalfmoveClock, p.FullmoveNumber)
	return sb.String()
}
