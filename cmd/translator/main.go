package main

import (
	"log"

	"github.com/MaxRadzey/translate-client/internal/app"
	"github.com/MaxRadzey/translate-client/internal/config"
)

func main() {
	AppConfig := config.New()

	if err := config.LoadDotEnv(); err != nil {
		log.Fatal(err)
	}
	ParseFlag(AppConfig)
	if err := config.ParseEnv(AppConfig); err != nil {
		log.Fatal(err)
	}

	if err := app.Run(AppConfig); err != nil {
		log.Fatal(err)
	}
}
