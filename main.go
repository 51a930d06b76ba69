package main

import (
	"github.com/featherduino/optionsScreener/config"
	"github.com/featherduino/optionsScreener/database"
	_ "github.com/featherduino/optionsScreener/docs"
	"github.com/featherduino/optionsScreener/routes"
	"github.com/featherduino/optionsScreener/validator"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// @title           TrueData OptionChain + Greeks API
// @version         1.0
// @description     Option-chain proxy over the TrueData REST API with strike ranking and screener passthrough.
// @BasePath        /
func main() {
	sysConfigs, err := config.LoadConfigs()
	if err != nil {
		log.Fatal().Err(err).Msg("Error loading configuration")
	}

	if err := validator.ValidateConfig(sysConfigs.Config); err != nil {
		log.Fatal().Err(err).Msg("Configuration validation failed")
	}

	if sysConfigs.Config.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	if sysConfigs.Config.CacheEnabled {
		database.InitRedis(sysConfigs.Config.RedisURL)
	}

	router := routes.SetupRouter(sysConfigs)

	port := sysConfigs.Config.Port
	log.Info().Str("port", port).Msg("Server starting")
	if err := router.Run("0.0.0.0:" + port); err != nil {
		log.Fatal().Err(err).Msg("Server failed to start")
	}
}

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.With().Logger()
}
