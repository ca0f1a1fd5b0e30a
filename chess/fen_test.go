package chess

import (
	"errors"

	. "gopkg.in/check.v1"
)

type FENSuite struct{}

var _ = Suite(&FENSuite{})

func (s *FENSuite) TestStartPosition(c *C) {
	c.Assert(StartPosition().FEN(), Equals, StartFEN)
	c.Assert(fromFEN(c, StartFEN), diffEquals, StartPosition())
}

func (s *FENSuite) TestRoundTrip(c *C) {
	for _, fen := range []string{
		"rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"7k/5Q2/6K1/8/8/8/8/8 b - - 12 57",
		"r3k2r/8/8/8/8/8/8/R3K2R b Kq - 3 20",
	} {
		c.Assert(fromFEN(c, fen).FEN(), Equals, fen)
	}
}

func (s *FENSuite) TestFields(c *C) {
	p := fromFEN(c, "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR b Kq e3 4 9")
	c.Assert(p.SideToMove, Equals, Black)
	c.Assert(p.Castling[White], Equals, CastlingRights{Kingside: true})
	c.Assert(p.Castling[Black], Equals, CastlingRights{Queenside: true})
	c.Assert(p.EnPassant.String(), Equals, "e3")
	c.Assert(p.HalfmoveClock, Equals, 4)
	c.Assert(p.FullmoveNumber, Equals, 9)

	short := fromFEN(c, "4k3/8/8/8/8/8/8/4K3 w - -")
	c.Assert(short.HalfmoveClock, Equals, 0)
	c.Assert(short.FullmoveNumber, Equals, 1)
	c.Assert(short.EnPassant, Equals, NoSquare)
}

func (s *FENSuite) TestInvalid(c *C) {
	for fen, message := range map[string]string{
		"":                                  "invalid FEN: 0 fields",
		"8/8/8/8/8/8/8 w - - 0 1":           "invalid FEN: 7 ranks",
		"9/8/8/8/8/8/8/8 w - - 0 1":         "invalid FEN: piece '9'",
		"ppppppppp/8/8/8/8/8/8/8 w - - 0 1": "invalid FEN: rank 8 overflows",
		"7/8/8/8/8/8/8/8 w - - 0 1":         "invalid FEN: rank 8 has 7 files",
		"8/8/8/8/8/8/8/8 x - - 0 1":         `invalid FEN: side "x"`,
		"8/8/8/8/8/8/8/8 w KX - 0 1":        `invalid FEN: castling "KX"`,
		"8/8/8/8/8/8/8/8 w - z9 0 1":        `invalid FEN: en passant: invalid square: "z9"`,
		"8/8/8/8/8/8/8/8 w - - -1 1":        `invalid FEN: halfmove clock "-1"`,
		"8/8/8/8/8/8/8/8 w - - 0 0":         `invalid FEN: fullmove number "0"`,
		"8/8/8/8/8/8/8/8 w - - 0":           "invalid FEN: 5 fields",
	} {
		_, err := ParseFEN(fen)
		c.Check(errors.Is(err, ErrInvalidFEN), Equals, true, Commentf("%q", fen))
		c.Check(err.Error(), Equals, message, Commentf("%q", fen))
	}
}
