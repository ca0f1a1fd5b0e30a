package main

import (
	"net/http"

	"github.com/apex/log"
	"github.com/labstack/echo/v4"
	uuid "github.com/satori/go.uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Game game.
type Game struct {
	gorm.Model

	ActiveAgent       uuid.UUID `gorm:"type:varchar;size:36;index"`
	ActiveAgentWhite  bool
	ActiveAgentType   string
	BoardID           uint
	Board             Board
	End               bool
	GameID            uuid.UUID `gorm:"<-:create;type:varchar;size:36;uniqueIndex"`
	InactiveAgent     uuid.UUID `gorm:"type:varchar;size:36;index"`
	InactiveAgentType string
	LastMove          string
	MoveCount         int
	MovesSincePawn    int
	Result            string
}

func gameIdle() error {
	var count int64
	if err := db.Model(&Game{}).Where(Game{InactiveAgent: placeHolder}).Count(&count).Error; err != nil {
		return err
	}
	if count < 10 {
		for i := 0; i < 3; i++ {
			game, err := makeGame()
			if err != nil {
				return err
			}
			if _, err := game.makeAgent(agentTypeAgent); err != nil {
				return err
			}
		}
	}
	return db.Where(Game{End: true}).Not(Game{ActiveAgentType: agentTypeUser}).Not(Game{InactiveAgentType: agentTypeUser}).Delete(&Game{}).Error
}

func makeGame() (*Game, error) {
	board, err := makeBoard(initialBoard)
	if err != nil {
		return nil, err
	}
	id := uuid.NewV4()
	if err := db.Create(&Game{GameID: id, Board: board, ActiveAgent: placeHolder, ActiveAgentWhite: true, InactiveAgent: placeHolder}).Error; err != nil {
		return nil, err
	}
	log.WithField("game", id).Info("new game")
	return getGame(id)
}

func getGame(id uuid.UUID) (*Game, error) {
	var game Game
	if err := db.Preload(clause.Associations).First(&game, Game{GameID: id}).Error; err != nil {
		return nil, err
	}
	return &game, nil
}

func getGames() ([]Game, error) {
	var games []Game
	if err := db.Preload(clause.Associations).Where(Game{InactiveAgent: placeHolder}).Find(&games).Error; err != nil {
		return nil, err
	}
	for i := range games {
		games[i].ActiveAgent = uuid.Nil
	}
	return games, nil
}

// response hides the agent ids other than agentID while the game runs.
func (game Game) response(agentID uuid.UUID) Game {
	if !game.End {
		if !uuid.Equal(game.ActiveAgent, agentID) {
			game.ActiveAgent = uuid.Nil
		}
		if !uuid.Equal(game.InactiveAgent, agentID) {
			game.InactiveAgent = uuid.Nil
		}
	}
	return game
}

func (game *Game) addAgent(id uuid.UUID, agentType string) error {
	if !uuid.Equal(placeHolder, game.InactiveAgent) {
		return echo.NewHTTPError(http.StatusBadRequest, "game is full")
	}
	if uuid.Equal(placeHolder, game.ActiveAgent) {
		game.ActiveAgent = id
		game.ActiveAgentType = agentType
	} else {
		game.InactiveAgent = id
		game.InactiveAgentType = agentType
	}
	if err := db.Save(game).Error; err != nil {
		return err
	}
	if !uuid.Equal(placeHolder, game.InactiveAgent) {
		return game.pokeAgent()
	}
	return nil
}

func (game *Game) pokeAgent() error {
	if game.End {
		return nil
	}
	if game.ActiveAgentType != agentTypeUser {
		return game.playRound(game.ActiveAgent, nil)
	}
	return nil
}

// getPlays lists the legal moves of the game position and where they lead.
func (game Game) getPlays() ([]chessState, []string) {
	plays := game.Board.Board.plays()
	boards := make([]chessState, 0, len(plays))
	moves := make([]string, 0, len(plays))
	for _, p := range plays {
		boards = append(boards, p.state)
		moves = append(moves, p.move.String())
	}
	return boards, moves
}

// putPlay advances the game by a play already known to be legal.
func (game *Game) putPlay(next play) error {
	if game.End {
		return echo.NewHTTPError(http.StatusBadRequest, "game is over")
	}
	board, err := makeBoard(next.state)
	if err != nil {
		return err
	}
	if game.Board.Board.resetsClock(next.move) {
		game.MovesSincePawn = 0
	} else {
		game.MovesSincePawn = game.MovesSincePawn + 1
	}
	game.InactiveAgent, game.ActiveAgent = game.ActiveAgent, game.InactiveAgent
	game.InactiveAgentType, game.ActiveAgentType = game.ActiveAgentType, game.InactiveAgentType
	game.ActiveAgentWhite = !game.ActiveAgentWhite
	game.MoveCount = game.MoveCount + 1
	game.LastMove = next.move.String()
	game.Board = board
	game.BoardID = board.ID
	game.End = game.MoveCount > maxMoveCount || game.MovesSincePawn >= maxMovesSincePawn || board.end()
	if game.End {
		game.Result = resultDraw
		if board.end() {
			game.Result = board.result()
		}
		log.WithFields(log.Fields{"game": game.GameID, "result": game.Result, "moves": game.MoveCount}).Info("game over")
	}
	if err := db.Save(game).Error; err != nil {
		return err
	}
	if game.End {
		return nil
	}
	if game.InactiveAgentType == game.ActiveAgentType {
		go func() {
			idleError("poke agent", game.pokeAgent())
		}()
	} else {
		return game.pokeAgent()
	}
	return nil
}
