package main

import (
	"context"
	"flag"
	"io/fs"
	"os"
	"time"

	"github.com/matt-steen/deadline-todo/pkg/config"
	"github.com/matt-steen/deadline-todo/pkg/controller"
	"github.com/matt-steen/deadline-todo/pkg/db"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(flag.CommandLine, os.Args[1:])
	if err != nil {
		panic(err)
	}

	filePerms := 0o666

	logFile, err := os.OpenFile(cfg.LogFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, fs.FileMode(filePerms))
	if err != nil {
		panic(err)
	}

	defer logFile.Close()

	level, err := cfg.Level()
	if err != nil {
		panic(err)
	}

	// the terminal belongs to the ui, so logs only ever go to the file
	log.Logger = log.With().Caller().Logger().Level(level).Output(zerolog.ConsoleWriter{
		Out: logFile, TimeFormat: "2006-01-02_15:04:05",
	})

	log.Info().Msg("starting application...")

	database, err := db.NewDatabase(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("error opening todo store")
	}

	defer database.Close()

	controller, err := controller.NewController(ctx, database, controller.Layouts{
		Date:      cfg.DateFormat,
		Time:      cfg.TimeFormat,
		Completed: cfg.CompletedFormat,
		Location:  time.Local,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("error creating controller")
	}

	if err := controller.Go(); err != nil {
		log.Error().Err(err).Msg("ui exited with an error")
	}

	log.Info().Msg("application stopped")
}
