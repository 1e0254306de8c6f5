package application

import (
	"tweet-fieldtype/services/fields"
	"tweet-fieldtype/services/health"
	"tweet-fieldtype/services/telegram"
	databases "tweet-fieldtype/utils/databases"
	"tweet-fieldtype/utils/insights"

	"github.com/go-co-op/gocron/v2"
)

type Application interface {
	Run()
	Shutdown()
}

type Impl struct {
	scheduler       gocron.Scheduler
	healthService   health.Service
	fieldsService   fields.Service
	telegramService telegram.Service
	db              databases.SqlConnection
	probes          insights.Probes
}
