package main

import (
	"errors"
	"net/http"
	"reflect"
	"time"

	"github.com/apex/log"
	uuid "github.com/satori/go.uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var db *gorm.DB

var placeHolder uuid.UUID

func init() {
	placeholder, err := uuid.FromString("f9a87c7e3f4f11eb99b58c8590001d9d")
	if err != nil {
		log.WithError(err).Fatal("failed to parse placeholder uuid")
	}
	placeHolder = placeholder
}

func openDB(cfg config) error {
	database, err := gorm.Open(postgres.Open(cfg.dsn()), &gorm.Config{
		Logger:      logger.Default.LogMode(logger.Silent),
		QueryFields: true,
	})
	if err != nil {
		return err
	}

	sqlDB, err := database.DB()
	if err != nil {
		return err
	}

	// SetMaxIdleConns sets the maximum number of connections in the idle connection pool.
	sqlDB.SetMaxIdleConns(10)
	// SetMaxOpenConns sets the maximum number of open connections to the database.
	sqlDB.SetMaxOpenConns(100)
	// SetConnMaxLifetime sets the maximum amount of time a connection may be reused.
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := database.AutoMigrate(&Board{}, &Game{}); err != nil {
		return err
	}

	db = database
	log.WithField("database", cfg.Database).Info("database ready")
	return nil
}

func idleError(message string, err error) {
	if err == nil {
		return
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return
	}
	if errors.Is(err, http.ErrServerClosed) {
		return
	}
	e := err
	for errors.Unwrap(e) != nil {
		e = errors.Unwrap(e)
	}
	if e.Error() == "sql: database is closed" {
		time.Sleep(1 * time.Second)
		return
	}
	log.WithField("type", reflect.TypeOf(err)).WithError(err).Error(message)
	panic(err)
}
