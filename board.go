package main

import (
	"github.com/maplefeline/nchess/chess"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Board board.
type Board struct {
	gorm.Model

	ActiveCheck bool
	ActiveScore int
	Board       chessState `gorm:"<-:create;type:varchar;size:100;uniqueIndex;not null"`
	Children    []Board    `gorm:"many2many:game_play"`
	Score       int
	Status      string
}

// chessState is a position as stored and served: its FEN.
type chessState struct {
	chess.Position
}

var initialBoard = chessState{chess.StartPosition()}

func makeBoard(state chessState) (Board, error) {
	var board Board
	status := state.Status()
	attrs := Board{
		ActiveCheck: state.InCheck(state.SideToMove),
		ActiveScore: state.staticScore(status),
		Score:       state.Evaluate(),
		Status:      status.String(),
	}
	if err := db.Where(Board{Board: state}).Attrs(attrs).FirstOrCreate(&board).Error; err != nil {
		return Board{}, err
	}
	return board, nil
}

func getBoard(id uint) (Board, error) {
	var board Board
	if err := db.Preload(clause.Associations).First(&board, id).Error; err != nil {
		return Board{}, err
	}
	return board, nil
}

func getBoardByBoard(state chessState) (Board, error) {
	var board Board
	if err := db.Preload(clause.Associations).Where(Board{Board: state}).First(&board).Error; err != nil {
		return Board{}, err
	}
	return board, nil
}

// relative turns a White-positive score into the side to move's view.
func (state chessState) relative(score int) int {
	if state.SideToMove == chess.Black {
		return -score
	}
	return score
}

// staticScore scores the position for the side to move without looking
// ahead.
func (state chessState) staticScore(status chess.Status) int {
	switch status {
	case chess.Checkmate:
		return -mateScore
	case chess.Stalemate:
		return 0
	default:
		return state.relative(state.Evaluate())
	}
}

func (state chessState) valid() bool {
	return state.Board.HasKings()
}

func (board Board) end() bool {
	return board.Status != chess.Ongoing.String()
}

// result is the game result when the position ends the game.
func (board Board) result() string {
	if board.Status == chess.Checkmate.String() {
		if board.Board.SideToMove == chess.White {
			return resultBlack
		}
		return resultWhite
	}
	return resultDraw
}
