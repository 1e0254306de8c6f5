package application

import (
	"errors"

	"tweet-fieldtype/models/constants"
	"tweet-fieldtype/models/entities"
	"tweet-fieldtype/pkg/fieldtype/tweet"
	tweetFieldsRepo "tweet-fieldtype/repositories/tweetfields"
	"tweet-fieldtype/services/fields"
	"tweet-fieldtype/services/health"
	"tweet-fieldtype/services/telegram"
	"tweet-fieldtype/services/twitter"
	databases "tweet-fieldtype/utils/databases"
	"tweet-fieldtype/utils/insights"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

func New() (*Impl, error) {
	db := databases.New()
	if errDB := db.Run(); errDB != nil {
		return nil, errDB
	}

	errMigration := db.Migrate(&entities.TweetField{})
	if errMigration != nil {
		return nil, errMigration
	}

	probes := insights.NewProbes(db.IsConnected)

	scheduler, errScheduler := gocron.NewScheduler()
	if errScheduler != nil {
		return nil, errScheduler
	}

	// Repositories
	tweetFieldsRepo := tweetFieldsRepo.New(db)

	var embedClient tweet.EmbedClient = tweet.NoopEmbedClient{}
	if viper.GetBool(constants.EmbedEnabled) {
		embedClient = twitter.New()
	} else {
		log.Warn().Msg("Embed fetching disabled, tweets are stored without contents")
	}

	fieldsService, errFields := fields.New(scheduler,
		tweet.New(embedClient),
		constants.GetTweetFieldDefinition(),
		viper.GetString(constants.LanguageCode),
		tweetFieldsRepo)
	if errFields != nil {
		return nil, errFields
	}

	healthService, errHealth := health.New(scheduler, fieldsService.Count, db.IsConnected)
	if errHealth != nil {
		return nil, errHealth
	}

	app := &Impl{
		scheduler:     scheduler,
		probes:        probes,
		healthService: healthService,
		fieldsService: fieldsService,
		db:            db,
	}

	telegramService, errTg := telegram.New(viper.GetString(constants.TelegramBotToken), fieldsService)
	switch {
	case errors.Is(errTg, telegram.ErrTokenIsMissing):
		log.Warn().Msg("Telegram token is missing, bot disabled")
	case errTg != nil:
		return nil, errTg
	default:
		app.telegramService = telegramService
	}

	return app, nil
}

func (app *Impl) Run() {
	app.scheduler.Start()
	if app.telegramService != nil {
		go func() {
			if err := app.telegramService.ListenAndDispatch(); err != nil {
				log.Error().Err(err).Msg("Telegram bot stopped")
			}
		}()
	}
	for _, job := range app.scheduler.Jobs() {
		scheduledTime, err := job.NextRun()
		if err == nil {
			log.Info().Msgf("%v scheduled at %v", job.Name(), scheduledTime)
		}
	}

	app.probes.ListenAndServe()
}

func (app *Impl) Shutdown() {
	if app.telegramService != nil {
		app.telegramService.Shutdown()
	}
	if err := app.scheduler.Shutdown(); err != nil {
		log.Error().Err(err).Msg("Cannot shutdown scheduler, continuing...")
	}
	app.probes.Shutdown()
	app.db.Shutdown()
	log.Info().Msgf("Application is no longer running")
}
