package chess

import (
	. "gopkg.in/check.v1"
)

type MoveGenSuite struct{}

var _ = Suite(&MoveGenSuite{})

func countKinds(moves []Move) (quiet, capture, double int) {
	for _, m := range moves {
		switch m.Kind.(type) {
		case Quiet:
			quiet++
		case Capture:
			capture++
		case DoublePawnPush:
			double++
		}
	}
	return
}

func (s *MoveGenSuite) TestStartPosition(c *C) {
	moves := StartPosition().LegalMoves()
	c.Assert(moves, HasLen, 20)
	quiet, capture, double := countKinds(moves)
	c.Assert(quiet, Equals, 12)
	c.Assert(capture, Equals, 0)
	c.Assert(double, Equals, 8)
	c.Assert(StartPosition().PseudoLegalMoves(), HasLen, 20)
}

func (s *MoveGenSuite) TestRookOnEmptyBoard(c *C) {
	for i := Square(0); i < NumSquares; i++ {
		board := EmptyBoard()
		board.Place(Piece{White, Rook}, i)
		moves := board.MovesFrom(i)
		c.Assert(moves, HasLen, 14, Commentf("%s", i))
		quiet, _, _ := countKinds(moves)
		c.Assert(quiet, Equals, 14)
	}
}

func fileMoves(moves []Move, file int) []Move {
	var out []Move
	for _, m := range moves {
		if m.To.File() == file {
			out = append(out, m)
		}
	}
	return out
}

func (s *MoveGenSuite) TestRookBlockedByEnemy(c *C) {
	board := boardOf(c, map[string]Piece{"a1": {White, Rook}, "a5": {Black, Knight}})
	moves := board.MovesFrom(sq(c, "a1"))
	c.Assert(moves, HasLen, 11)
	ray := fileMoves(moves, 0)
	quiet, capture, _ := countKinds(ray)
	c.Assert(quiet, Equals, 3)
	c.Assert(capture, Equals, 1)
	c.Assert(moveStrings(ray), diffEquals, []string{"a1a2", "a1a3", "a1a4", "a1a5"})
}

func (s *MoveGenSuite) TestRookBlockedByFriend(c *C) {
	board := boardOf(c, map[string]Piece{"a1": {White, Rook}, "a4": {White, Knight}})
	moves := board.MovesFrom(sq(c, "a1"))
	c.Assert(moves, HasLen, 9)
	c.Assert(moveStrings(fileMoves(moves, 0)), diffEquals, []string{"a1a2", "a1a3"})
}

func (s *MoveGenSuite) TestSliders(c *C) {
	board := boardOf(c, map[string]Piece{"d4": {White, Queen}})
	c.Assert(board.MovesFrom(sq(c, "d4")), HasLen, 27)
	board = boardOf(c, map[string]Piece{"d4": {Black, Bishop}})
	c.Assert(board.MovesFrom(sq(c, "d4")), HasLen, 13)
	board = boardOf(c, map[string]Piece{"a1": {Black, Bishop}})
	c.Assert(board.MovesFrom(sq(c, "a1")), HasLen, 7)
}

func (s *MoveGenSuite) TestLeapers(c *C) {
	board := boardOf(c, map[string]Piece{"a1": {White, Knight}})
	c.Assert(moveStrings(board.MovesFrom(sq(c, "a1"))), diffEquals, []string{"a1b3", "a1c2"})
	board = boardOf(c, map[string]Piece{"d4": {White, Knight}, "e6": {White, Pawn}, "c6": {Black, Pawn}})
	moves := board.MovesFrom(sq(c, "d4"))
	c.Assert(moves, HasLen, 7)
	to := destinations(moves)
	_, friendly := to[sq(c, "e6")]
	c.Assert(friendly, Equals, false)
	c.Assert(to[sq(c, "c6")].Kind, Equals, Capture{})

	board = boardOf(c, map[string]Piece{"h8": {Black, King}})
	c.Assert(board.MovesFrom(sq(c, "h8")), HasLen, 3)
	board = boardOf(c, map[string]Piece{"e4": {Black, King}})
	c.Assert(board.MovesFrom(sq(c, "e4")), HasLen, 8)
}

func (s *MoveGenSuite) TestPawnPushes(c *C) {
	board := boardOf(c, map[string]Piece{"e2": {White, Pawn}})
	moves := board.MovesFrom(sq(c, "e2"))
	c.Assert(moves, diffEquals, []Move{
		{From: sq(c, "e2"), To: sq(c, "e3"), Kind: Quiet{}},
		{From: sq(c, "e2"), To: sq(c, "e4"), Kind: DoublePawnPush{}},
	})

	board = boardOf(c, map[string]Piece{"e7": {Black, Pawn}})
	c.Assert(moveStrings(board.MovesFrom(sq(c, "e7"))), diffEquals, []string{"e7e5", "e7e6"})

	// not on the home rank: single push only
	board = boardOf(c, map[string]Piece{"e3": {White, Pawn}})
	c.Assert(moveStrings(board.MovesFrom(sq(c, "e3"))), diffEquals, []string{"e3e4"})
}

func (s *MoveGenSuite) TestPawnDoublePushGating(c *C) {
	for _, blocker := range []Piece{{White, Knight}, {Black, Knight}} {
		board := boardOf(c, map[string]Piece{"e2": {White, Pawn}, "e3": blocker})
		c.Assert(board.MovesFrom(sq(c, "e2")), HasLen, 0)

		board = boardOf(c, map[string]Piece{"d7": {Black, Pawn}, "d6": blocker})
		c.Assert(board.MovesFrom(sq(c, "d7")), HasLen, 0)
	}

	board := boardOf(c, map[string]Piece{"e2": {White, Pawn}, "e4": {Black, Knight}})
	c.Assert(moveStrings(board.MovesFrom(sq(c, "e2"))), diffEquals, []string{"e2e3"})
}

func (s *MoveGenSuite) TestPawnCaptures(c *C) {
	board := boardOf(c, map[string]Piece{
		"d4": {White, Pawn},
		"c5": {Black, Rook},
		"e5": {White, Rook},
		"d5": {Black, Pawn},
	})
	moves := board.MovesFrom(sq(c, "d4"))
	c.Assert(moves, diffEquals, []Move{{From: sq(c, "d4"), To: sq(c, "c5"), Kind: Capture{}}})

	board = boardOf(c, map[string]Piece{"a7": {Black, Pawn}, "b6": {White, Bishop}})
	c.Assert(moveStrings(board.MovesFrom(sq(c, "a7"))), diffEquals, []string{"a7a5", "a7a6", "a7b6"})
}

func (s *MoveGenSuite) TestNoSpecialMoveKinds(c *C) {
	p := fromFEN(c, "r3k2r/1P6/8/3pP3/8/8/6p1/R3K2R w KQkq d6 0 1")
	for _, m := range p.PseudoLegalMoves() {
		switch m.Kind.(type) {
		case Quiet, Capture, DoublePawnPush:
		default:
			c.Errorf("unexpected move kind %T for %s", m.Kind, m)
		}
	}
}

func (s *MoveGenSuite) TestMoveStrings(c *C) {
	m := Move{From: sq(c, "e7"), To: sq(c, "e8"), Kind: Promotion{To: Queen}}
	c.Assert(m.String(), Equals, "e7e8q")
	c.Assert(m.IsCapture(), Equals, false)
	c.Assert(Move{Kind: Promotion{To: Knight, IsCapture: true}}.IsCapture(), Equals, true)
	c.Assert(Move{Kind: EnPassant{}}.IsCapture(), Equals, true)
	c.Assert(Move{Kind: Castle{Kingside: true}}.IsCapture(), Equals, false)

	buffer, err := m.MarshalJSON()
	c.Assert(err, IsNil)
	c.Assert(string(buffer), Equals, `"e7e8q"`)

	moves := StartPosition().LegalMoves()
	parsed, err := ParseMove("g1f3", moves)
	c.Assert(err, IsNil)
	c.Assert(parsed.Kind, Equals, Quiet{})
	_, err = ParseMove("e2e5", moves)
	c.Assert(err, ErrorMatches, `invalid move: "e2e5"`)
}
