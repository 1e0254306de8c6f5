package health

import (
	"tweet-fieldtype/models/constants"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

func New(scheduler gocron.Scheduler, countTweets func() int64, isConnected func() bool) (*Impl, error) {
	service := Impl{
		countTweets: countTweets,
		isConnected: isConnected,
	}

	_, errJob := scheduler.NewJob(
		gocron.CronJob(viper.GetString(constants.HealthCronTab), true),
		gocron.NewTask(func() { service.echo() }),
		gocron.WithName("Check app running"),
	)
	if errJob != nil {
		return nil, errJob
	}

	return &service, nil
}

func (service *Impl) echo() Status {
	status := Status{Connected: service.isConnected()}
	if !status.Connected {
		log.Warn().Bool(constants.LogConnected, false).Msgf("Application is running without storage")
		return status
	}

	status.Tweets = service.countTweets()
	log.Info().
		Bool(constants.LogConnected, true).
		Int64(constants.LogTweetNumber, status.Tweets).
		Msgf("Application is running")
	return status
}
