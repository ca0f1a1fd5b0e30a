package main

import (
	"errors"
	"net/http"
	"path"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	uuid "github.com/satori/go.uuid"
	"gorm.io/gorm"
)

type agentRequest struct {
	Type   string
	GameID uuid.UUID
}

type playRequest struct {
	Board *chessState
	Move  string
}

type gameResponse struct {
	Href string
	Game Game
}

type gamesResponse struct {
	Href  string
	Games []Game
}

type playsResponse struct {
	Href   string
	Boards []chessState
	Moves  []string
}

type indexResponse struct {
	Href  string
	Links []string
}

func errToHTTP(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return echo.ErrNotFound
	}
	return err
}

var errNoDatabase = echo.NewHTTPError(http.StatusServiceUnavailable, "no database")

// requireDB answers 503 while no database is connected.
func requireDB(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if db == nil {
			return errNoDatabase
		}
		return next(c)
	}
}

func requestID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.FromString(c.Param("id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return id, nil
}

func requestAgent(c echo.Context) (*Game, uuid.UUID, error) {
	id, err := requestID(c)
	if err != nil {
		return nil, uuid.Nil, err
	}
	if db == nil {
		return nil, uuid.Nil, errNoDatabase
	}
	game, err := getAgent(id)
	return game, id, err
}

func requestGame(c echo.Context) (*Game, error) {
	id, err := requestID(c)
	if err != nil {
		return nil, err
	}
	if db == nil {
		return nil, errNoDatabase
	}
	return getGame(id)
}

// requestPlay resolves a play request against the game position. A move
// in coordinate notation wins over a board.
func requestPlay(game *Game, request playRequest) (*play, error) {
	state := game.Board.Board
	if request.Move != "" {
		p, err := state.playMove(request.Move)
		if err != nil {
			return nil, echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return &p, nil
	}
	if request.Board != nil {
		p, ok := state.playBoard(*request.Board)
		if !ok {
			return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid move")
		}
		return &p, nil
	}
	return nil, nil
}

func responseAgent(game *Game, agentID uuid.UUID) gameResponse {
	return gameResponse{Game: game.response(agentID), Href: path.Join("/agents", agentID.String())}
}

func responseGame(game *Game) gameResponse {
	return gameResponse{Game: game.response(uuid.Nil), Href: path.Join("/games", game.GameID.String())}
}

func responseGames(games []Game) gamesResponse {
	for i := range games {
		games[i] = games[i].response(uuid.Nil)
	}
	return gamesResponse{Games: games, Href: "/games"}
}

func responsePlays(game *Game, boards []chessState, moves []string) playsResponse {
	return playsResponse{Boards: boards, Moves: moves, Href: path.Join("/games", game.GameID.String(), "plays")}
}

func apiHandler() *echo.Echo {
	e := echo.New()

	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, indexResponse{Href: "/", Links: []string{"/agents", "/games", "/positions"}})
	})
	e.GET("/positions", func(c echo.Context) error {
		state, err := requestState(c.QueryParam("fen"))
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, responsePosition(state))
	})
	e.POST("/positions", func(c echo.Context) error {
		var request positionRequest
		if err := c.Bind(&request); err != nil {
			return err
		}
		state, err := requestState(request.FEN)
		if err != nil {
			return err
		}
		if request.Move != "" {
			p, err := state.playMove(request.Move)
			if err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, err.Error())
			}
			state = p.state
		}
		return c.JSON(http.StatusOK, responsePosition(state))
	})
	e.POST("/agents", func(c echo.Context) error {
		var message agentRequest
		if err := c.Bind(&message); err != nil {
			return err
		}
		if message.Type == "" {
			message.Type = agentTypeAgent
		}
		if message.Type != agentTypeAgent && message.Type != agentTypeUser {
			return echo.NewHTTPError(http.StatusBadRequest, "unknown agent type")
		}
		if db == nil {
			return errNoDatabase
		}
		game, err := getGame(message.GameID)
		if err != nil {
			return errToHTTP(err)
		}
		id, err := game.makeAgent(message.Type)
		if err != nil {
			return errToHTTP(err)
		}
		return c.JSON(http.StatusCreated, responseAgent(game, id))
	})
	e.GET("/agents/:id", func(c echo.Context) error {
		game, id, err := requestAgent(c)
		if err != nil {
			return errToHTTP(err)
		}
		return c.JSON(http.StatusOK, responseAgent(game, id))
	})
	e.PUT("/agents/:id", func(c echo.Context) error {
		game, id, err := requestAgent(c)
		if err != nil {
			return errToHTTP(err)
		}
		var request playRequest
		if err := c.Bind(&request); err != nil {
			return err
		}
		if !uuid.Equal(id, game.ActiveAgent) {
			return echo.NewHTTPError(http.StatusNotAcceptable, "not your turn")
		}
		next, err := requestPlay(game, request)
		if err != nil {
			return err
		}
		if err := game.playRound(id, next); err != nil {
			return errToHTTP(err)
		}
		return c.JSON(http.StatusOK, responseAgent(game, id))
	})
	e.POST("/agents/:id", func(c echo.Context) error {
		game, id, err := requestAgent(c)
		if err != nil {
			return errToHTTP(err)
		}
		return c.JSON(http.StatusOK, responseAgent(game, id))
	})
	e.GET("/games", func(c echo.Context) error {
		games, err := getGames()
		if err != nil {
			return errToHTTP(err)
		}
		return c.JSON(http.StatusOK, responseGames(games))
	}, requireDB)
	e.POST("/games", func(c echo.Context) error {
		game, err := makeGame()
		if err != nil {
			return errToHTTP(err)
		}
		return c.JSON(http.StatusCreated, responseGame(game))
	}, requireDB)
	e.GET("/games/:id", func(c echo.Context) error {
		game, err := requestGame(c)
		if err != nil {
			return errToHTTP(err)
		}
		return c.JSON(http.StatusOK, responseGame(game))
	})
	e.GET("/games/:id/plays", func(c echo.Context) error {
		game, err := requestGame(c)
		if err != nil {
			return errToHTTP(err)
		}
		boards, moves := game.getPlays()
		return c.JSON(http.StatusOK, responsePlays(game, boards, moves))
	})

	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover())
	e.Use(middleware.Gzip())
	e.Use(middleware.RequestID())
	e.Use(middleware.Secure())

	return e
}
