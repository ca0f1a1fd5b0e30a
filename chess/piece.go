package chess

// Kind is the class of a piece. NoKind only marks an empty board slot.
type Kind uint8

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

var kindNames = [...]string{
	NoKind: "",
	Pawn:   "Pawn",
	Knight: "Knight",
	Bishop: "Bishop",
	Rook:   "Rook",
	Queen:  "Queen",
	King:   "King",
}

var kindLetters = [...]byte{
	NoKind: ' ',
	Pawn:   'p',
	Knight: 'n',
	Bishop: 'b',
	Rook:   'r',
	Queen:  'q',
	King:   'k',
}

var kindValues = [...]int{
	NoKind: 0,
	Pawn:   100,
	Knight: 320,
	Bishop: 330,
	Rook:   500,
	Queen:  900,
	King:   0,
}

var whiteGlyphs = [...]rune{
	Pawn:   '♙',
	Knight: '♘',
	Bishop: '♗',
	Rook:   '♖',
	Queen:  '♕',
	King:   '♔',
}

var blackGlyphs = [...]rune{
	Pawn:   '♟',
	Knight: '♞',
	Bishop: '♝',
	Rook:   '♜',
	Queen:  '♛',
	King:   '♚',
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

func kindFromLetter(letter byte) (Kind, bool) {
	for k := Pawn; k <= King; k++ {
		if kindLetters[k] == letter {
			return k, true
		}
	}
	return NoKind, false
}

// Piece is a coloured piece. The zero Piece is no piece.
type Piece struct {
	Color Color
	Kind  Kind
}

// Value is the material worth of the piece, negative for Black.
func (p Piece) Value() int {
	if p.Color == Black {
		return -kindValues[p.Kind]
	}
	return kindValues[p.Kind]
}

// Glyph returns the display rune for the piece.
func (p Piece) Glyph() rune {
	if p.Kind == NoKind {
		return ' '
	}
	if p.Color == White {
		return whiteGlyphs[p.Kind]
	}
	return blackGlyphs[p.Kind]
}

// Letter is the FEN letter, upper case for White.
func (p Piece) Letter() byte {
	letter := kindLetters[p.Kind]
	if p.Color == White && p.Kind != NoKind {
		return letter - 'a' + 'A'
	}
	return letter
}

func (p Piece) String() string {
	if p.Kind == NoKind {
		return ""
	}
	return p.Color.String() + " " + p.Kind.String()
}
