package main

const (
	// mateScore is the score of a checkmated side to move, in centipawns.
	mateScore = 100000

	// maxMoveCount ends a game as a draw after this many plies.
	maxMoveCount = 4048

	// maxMovesSincePawn is the fifty-move rule in plies.
	maxMovesSincePawn = 100
)

const (
	agentTypeAgent = "agent"
	agentTypeUser  = "user"
)

const (
	resultWhite = "1-0"
	resultBlack = "0-1"
	resultDraw  = "1/2-1/2"
)

const emptySquareGlyph = '·'
