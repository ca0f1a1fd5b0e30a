package main

import (
	"sync"

	"github.com/maplefeline/nchess/chess"
)

type play struct {
	move  chess.Move
	state chessState
}

// movesForBoard streams the legal moves of the side to move.
func (state chessState) movesForBoard() <-chan chess.Move {
	moves := make(chan chess.Move, 32)
	if !state.valid() {
		close(moves)
		return moves
	}
	go func() {
		defer close(moves)
		for _, m := range state.LegalMoves() {
			moves <- m
		}
	}()
	return moves
}

// movesToBoards applies every move concurrently. The order of the plays
// is not the order of the moves.
func (state chessState) movesToBoards(moves <-chan chess.Move) <-chan play {
	plays := make(chan play, 32)
	go func() {
		defer close(plays)
		var group sync.WaitGroup
		for m := range moves {
			group.Add(1)
			go func(m chess.Move) {
				defer group.Done()
				plays <- play{move: m, state: chessState{state.MakeMove(m)}}
			}(m)
		}
		group.Wait()
	}()
	return plays
}

func (state chessState) plays() []play {
	plays := make([]play, 0, 32)
	for p := range state.movesToBoards(state.movesForBoard()) {
		plays = append(plays, p)
	}
	return plays
}

// playMove applies a move given in coordinate notation if it is legal.
func (state chessState) playMove(text string) (play, error) {
	m, err := chess.ParseMove(text, state.LegalMoves())
	if err != nil {
		return play{}, err
	}
	return play{move: m, state: chessState{state.MakeMove(m)}}, nil
}

// playBoard finds the legal move leading to next.
func (state chessState) playBoard(next chessState) (play, bool) {
	for _, p := range state.plays() {
		if p.state.Board == next.Board {
			return p, true
		}
	}
	return play{}, false
}

// resetsClock reports whether m is a pawn move or a capture.
func (state chessState) resetsClock(m chess.Move) bool {
	piece, _ := state.Board.Piece(m.From)
	return piece.Kind == chess.Pawn || m.IsCapture()
}
