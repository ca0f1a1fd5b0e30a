package main

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/maplefeline/nchess/chess"
	"github.com/montanaflynn/stats"
)

// randomMove picks uniformly among moves.
func randomMove(moves []chess.Move) (chess.Move, error) {
	choice, err := rand.Int(rand.Reader, big.NewInt(int64(len(moves))))
	if err != nil {
		return chess.Move{}, err
	}
	return moves[choice.Uint64()], nil
}

// runDemo plays up to plies random legal moves from the start position,
// printing each board with its material evaluation.
func runDemo(w io.Writer, plies int) error {
	state := initialBoard
	fmt.Fprint(w, renderBoard(state.Board))
	fmt.Fprintf(w, "evaluation: %d\n\n", state.Evaluate())
	scores := make([]int, 0, plies)
	for ply := 0; ply < plies; ply++ {
		moves := state.LegalMoves()
		if len(moves) == 0 {
			fmt.Fprintf(w, "%s: %s\n", state.Status(), state.SideToMove)
			break
		}
		m, err := randomMove(moves)
		if err != nil {
			return err
		}
		state = chessState{state.MakeMove(m)}
		scores = append(scores, state.Evaluate())
		fmt.Fprintf(w, "%d. %s\n", ply+1, m)
		fmt.Fprint(w, renderBoard(state.Board))
		fmt.Fprintf(w, "evaluation: %d\n\n", state.Evaluate())
	}
	if len(scores) == 0 {
		return nil
	}
	data := stats.LoadRawData(scores)
	mean, err := data.Mean()
	if err != nil {
		return err
	}
	low, err := data.Min()
	if err != nil {
		return err
	}
	high, err := data.Max()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "evaluation mean %.1f min %.0f max %.0f\n", mean, low, high)
	return nil
}
