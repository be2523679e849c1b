package main

import (
	"intake/config"
	"intake/di"
	"intake/shared/logger"

	_ "intake/docs"
)

// @title Intake API
// @version 1.0
// @description Demo request intake and scheduling service for medical device demonstrations.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
