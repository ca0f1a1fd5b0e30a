package chess

import (
	"errors"

	. "gopkg.in/check.v1"
)

type SquareSuite struct{}

var _ = Suite(&SquareSuite{})

func (s *SquareSuite) TestFromCoords(c *C) {
	e4, ok := FromCoords(4, 3)
	c.Assert(ok, Equals, true)
	c.Assert(e4, Equals, Square(28))
	c.Assert(e4.File(), Equals, 4)
	c.Assert(e4.Rank(), Equals, 3)
	c.Assert(e4.String(), Equals, "e4")

	for _, coords := range [][2]int{{8, 0}, {0, 8}, {-1, 3}, {3, -1}, {9, 9}} {
		_, ok := FromCoords(coords[0], coords[1])
		c.Check(ok, Equals, false, Commentf("%v", coords))
	}
}

func (s *SquareSuite) TestOffset(c *C) {
	a1 := sq(c, "a1")
	_, ok := a1.Offset(-1, 0)
	c.Assert(ok, Equals, false)
	_, ok = a1.Offset(0, -1)
	c.Assert(ok, Equals, false)

	// stepping off the h-file must not wrap onto the next rank
	h4 := sq(c, "h4")
	_, ok = h4.Offset(1, 0)
	c.Assert(ok, Equals, false)

	b3, ok := a1.Offset(1, 2)
	c.Assert(ok, Equals, true)
	c.Assert(b3.String(), Equals, "b3")

	h8 := sq(c, "h8")
	_, ok = h8.Offset(0, 1)
	c.Assert(ok, Equals, false)
	g7, ok := h8.Offset(-1, -1)
	c.Assert(ok, Equals, true)
	c.Assert(g7.String(), Equals, "g7")
}

func (s *SquareSuite) TestParseSquare(c *C) {
	for i := Square(0); i < NumSquares; i++ {
		parsed, err := ParseSquare(i.String())
		c.Assert(err, IsNil)
		c.Assert(parsed, Equals, i)
	}
	for _, bad := range []string{"", "e", "i1", "a9", "a0", "e44"} {
		_, err := ParseSquare(bad)
		c.Check(errors.Is(err, ErrInvalidSquare), Equals, true, Commentf("%q", bad))
	}
	c.Assert(NoSquare.String(), Equals, "-")
	c.Assert(NoSquare.Valid(), Equals, false)
}
