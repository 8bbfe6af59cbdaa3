package main

import (
	"context"
	"os"

	"github.com/spf13/pflag"
	"github.com/yigit/studentportal/internal/bootstrap"
	"github.com/yigit/studentportal/internal/pkg/logger"
	"github.com/yigit/studentportal/internal/server"
)

// @title Student Portal API
// @version 1.0
// @description Course registration, certificate upload and admin review API
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name auth-token
// @description Session token set by /auth/login. An "Authorization: Bearer <token>" header is accepted as well.

func main() {
	configPath := pflag.StringP("config", "c", bootstrap.DefaultConfigPath, "path to the YAML configuration file")
	pflag.Parse()

	srv, err := server.NewServer(context.Background(), *configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
