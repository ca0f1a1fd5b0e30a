package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/apex/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

var sigint chan os.Signal

func waitShutdown(e *echo.Echo, idleConnsClosed chan<- interface{}) {
	defer close(idleConnsClosed)

	sigint = make(chan os.Signal, 1)
	signal.Notify(sigint, os.Interrupt)
	defer signal.Stop(sigint)

	<-sigint
	log.Info("received shutdown signal")

	idleError("HTTP server shutdown:", e.Shutdown(context.Background()))
}

func listenAndServe(addr string, idleConnsClosed chan<- interface{}) {
	e := apiHandler()
	go waitShutdown(e, idleConnsClosed)

	e.Use(middleware.Logger())

	idleError("HTTP server end:", e.Start(addr))
}

// Open open.
func Open(addr string) {
	idleConnsClosed := make(chan interface{})
	go listenAndServe(addr, idleConnsClosed)
	<-idleConnsClosed
}

func idle() {
	idleError("agent idle complete:", agentIdle())
	idleError("game idle complete:", gameIdle())
}

// Close close.
func Close() error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func main() {
	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}
	if cfg.Demo > 0 {
		if err := runDemo(os.Stdout, cfg.Demo); err != nil {
			log.WithError(err).Fatal("demo")
		}
		return
	}
	if err := openDB(cfg); err != nil {
		log.WithError(err).WithFields(cfg.fields()).Fatal("failed to connect database")
	}
	defer func() {
		idleError("close server:", Close())
	}()
	go func() {
		for {
			idle()
		}
	}()
	Open(cfg.Addr)
}
