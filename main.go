package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tweet-fieldtype/application"
	"tweet-fieldtype/models/constants"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

func init() {
	loadConfig()
	setupLogger()
}

func loadConfig() {
	viper.SetConfigFile(constants.ConfigFileName)
	for key, value := range constants.GetDefaultConfigValues() {
		viper.SetDefault(key, value)
	}

	if err := viper.ReadInConfig(); err != nil {
		log.Debug().Str(constants.LogFileName, constants.ConfigFileName).
			Msgf("No config file found, relying on environment")
	}

	viper.AutomaticEnv()
}

func setupLogger() {
	if !viper.GetBool(constants.Production) {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}

	level, err := zerolog.ParseLevel(viper.GetString(constants.LogLevel))
	if err != nil {
		zerolog.SetGlobalLevel(constants.LogLevelFallback)
		log.Warn().Err(err).Msgf("Unknown log level, falling back to '%s'", constants.LogLevelFallback)
		return
	}

	zerolog.SetGlobalLevel(level)
	log.Debug().Msgf("Log level set to '%s'", level)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := application.New()
	if err != nil {
		log.Fatal().Err(err).Msgf("Cannot start %s", constants.ExternalName)
	}

	app.Run()
	log.Info().
		Str(constants.LogFieldIdentifier, viper.GetString(constants.TweetFieldIdentifier)).
		Msgf("%s v%s is running, press CTRL-C to exit", constants.ExternalName, constants.Version)

	<-ctx.Done()
	log.Info().Msgf("Shutting down %s...", constants.ExternalName)
	app.Shutdown()
}
