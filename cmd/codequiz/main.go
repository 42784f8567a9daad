package main

import (
	"context"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"github.com/GlebRadaev/codequiz/internal/app"
	"github.com/rs/zerolog/log"
	"go.uber.org/zap"
)

//	@title			CodeQuiz API
//	@version		1.0
//	@description	Quiz platform backend: accounts, quiz progress, rankings and the daily coin reward

// @host						localhost:8080
// @BasePath					/
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	application := app.New()
	if err := application.Start(ctx); err != nil {
		log.Error().Err(err).Msg("codequiz failed to start")
		zap.L().Fatal("codequiz failed to start", zap.Error(err))
	}

	if err := application.Wait(ctx, cancel); err != nil {
		zap.L().Fatal("codequiz stopped with errors", zap.Error(err))
	}

	zap.L().Info("codequiz stopped")
	_ = zap.L().Sync()
}
