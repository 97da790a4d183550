package main

import (
	"log"

	"traderdash/cmd"
	"traderdash/internal/logger"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logger.Warn("no .env file loaded: %v", err)
	}

	apiHandler, err := cmd.InitializeDependencies()
	if err != nil {
		log.Fatal(err)
	}

	logger.Info("starting traderdash api on port %d", apiHandler.Config.Port)
	err = apiHandler.StartApi(apiHandler.Config.Port)
	if err != nil {
		log.Fatal(err)
	}
}
