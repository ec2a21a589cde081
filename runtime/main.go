package main

import (
	"github.com/mapalk/mapa_core/services"

	"github.com/alphabatem/common/context"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Warn().Err(err).Msg("No .env file found, using system environment variables")
	}

	ctx, err := context.NewCtx(
		&services.StorageService{},

		&services.IdentityService{},
		&services.ContentService{},
		&services.ProgressService{},
		&services.AchievementService{},
		&services.DerivedService{},

		&services.MonitoringService{},
	)
	if err != nil {
		log.Fatal().Err(err)
		return
	}

	err = ctx.Run()
	if err != nil {
		log.Fatal().Err(err)
		return
	}
}
