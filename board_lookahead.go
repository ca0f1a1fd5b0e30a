package main

import (
	"math"

	"gorm.io/gorm"
)

// lookahead2 scores the children of board before board itself, so the
// score of board sees two plies.
func (board *Board) lookahead2() error {
	if len(board.Children) == 0 {
		if err := board.lookahead(); err != nil {
			return err
		}
	}
	for _, child := range board.Children {
		child, err := getBoard(child.ID)
		if err != nil {
			return err
		}
		if len(child.Children) == 0 {
			if err := child.lookahead(); err != nil {
				return err
			}
		}
	}
	return board.lookahead()
}

// lookahead links board to every position one legal move away and takes
// the best negated child score as its own.
func (board *Board) lookahead() error {
	if board.end() {
		return nil
	}
	plays := board.Board.plays()
	children := make([]Board, 0, len(plays))
	for _, p := range plays {
		child, err := makeBoard(p.state)
		if err != nil {
			return err
		}
		children = append(children, child)
	}
	activeScore := math.MinInt32
	for _, child := range children {
		if score := -child.ActiveScore; score > activeScore {
			activeScore = score
		}
	}
	board.Children = children
	board.ActiveScore = activeScore
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM game_play WHERE board_id = ?", board.ID).Error; err != nil {
			return err
		}
		return tx.Save(board).Error
	})
}
