package main

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
	"github.com/maplefeline/nchess/chess"
)

type positionRequest struct {
	FEN  string
	Move string
}

type positionResponse struct {
	Href       string
	FEN        chessState
	SideToMove string
	Check      bool
	Status     string
	Score      int
	Moves      []chess.Move
	Board      string
}

func positionHref(state chessState) string {
	return "/positions?" + url.Values{"fen": {state.FEN()}}.Encode()
}

// requestState parses a FEN for the API, defaulting to the start
// position. Positions without a king per side, or where the king of the
// side not to move can be captured, are rejected here since legality needs
// both kings on every reachable board.
func requestState(fen string) (chessState, error) {
	if fen == "" {
		return initialBoard, nil
	}
	state, err := parseState(fen)
	if err != nil {
		return chessState{}, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if !state.valid() {
		return chessState{}, echo.NewHTTPError(http.StatusBadRequest, "position needs one king per side")
	}
	if state.InCheck(state.SideToMove.Opposite()) {
		return chessState{}, echo.NewHTTPError(http.StatusBadRequest, "side not to move is in check")
	}
	return state, nil
}

func responsePosition(state chessState) positionResponse {
	moves := state.LegalMoves()
	status := chess.Ongoing
	if len(moves) == 0 {
		status = state.Status()
	}
	return positionResponse{
		Href:       positionHref(state),
		FEN:        state,
		SideToMove: state.SideToMove.String(),
		Check:      state.InCheck(state.SideToMove),
		Status:     status.String(),
		Score:      state.Evaluate(),
		Moves:      moves,
		Board:      renderBoard(state.Board),
	}
}
