package main

import (
	"net/http"

	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/leodev8821/economicControl-nv-sub002/cmd/httpserver"
	"github.com/leodev8821/economicControl-nv-sub002/internal/middleware"
	"github.com/leodev8821/economicControl-nv-sub002/internal/migrations"
	"github.com/leodev8821/economicControl-nv-sub002/pkg/configpkg"
	"github.com/leodev8821/economicControl-nv-sub002/pkg/dbpkg"
)

func main() {
	config, err := configpkg.Load("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := middleware.CreateLogger(config)

	conn, err := dbpkg.Setup(config.DBDriver, config.DBSource)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot connect to db")
	}

	if err := migrations.Up(conn); err != nil {
		logger.Fatal().Err(err).Msg("cannot migrate db schema")
	}

	server, err := httpserver.New(conn, logger, config)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot create server")
	}

	if err := http.ListenAndServe(config.ServerAddress, server); err != nil {
		logger.Fatal().Err(err).Msg("cannot start server")
	}
}
