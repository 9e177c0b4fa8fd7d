package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/ecorewards/internal/buildinfo"
	"github.com/dmitrijs2005/ecorewards/internal/logging"
	"github.com/dmitrijs2005/ecorewards/internal/server"
	"github.com/dmitrijs2005/ecorewards/internal/server/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("%v", err)
	}

	logger := logging.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)

	app := server.NewApp(cfg, logger)
	app.Run(context.Background())

}
