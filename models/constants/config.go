package constants

import (
	"time"

	"github.com/rs/zerolog"
)

const (
	ConfigFileName = ".env"

	ExternalName = "Tweet Field Type"
	Version      = "1.0.0"

	// TELEGRAM BOT
	TelegramBotToken = "TELEGRAM_BOT_TOKEN"

	//nolint:gosec // False positive.
	// Auth token used when logged in to Twitter.
	TwitterAuthToken = "TWITTER_AUTH_TOKEN"

	//nolint:gosec // False positive.
	// CSRF token used when logged in to Twitter.
	TwitterCSRFToken = "TWITTER_CSRF_TOKEN"

	// SQLITE_URL URL.
	SqliteURL = "SQLITE_URL"

	// Zerolog values from [trace, debug, info, warn, error, fatal, panic].
	LogLevel = "LOG_LEVEL"

	// Probe port.
	ProbePort = "PROBE_PORT"

	// Boolean; refresh missing embeds at startup.
	Production = "PRODUCTION"

	// Cron tab to health.
	HealthCronTab = "HEALTH_CRON_TAB"

	// Cron tab to retry fetching embeds for stored tweets without contents.
	EmbedRefreshCronTab = "EMBED_REFRESH_CRON_TAB"

	// Embed cache. Duration type.
	EmbedCache = "EMBED_CACHE"

	// Boolean; fetch embed contents from Twitter when a tweet is stored.
	EmbedEnabled = "EMBED_ENABLED"

	// Space separated list of approved Twitter handles; empty approves everyone.
	TweetAuthorList = "TWEET_AUTHOR_LIST"

	// Identifier of the tweet field in stored content.
	TweetFieldIdentifier = "TWEET_FIELD_IDENTIFIER"

	// Language code the tweet field is stored under.
	LanguageCode = "LANGUAGE_CODE"

	defaultTelegramBotToken     = ""
	defaultTwitterAuthToken     = ""
	defaultTwitterCSRFToken     = ""
	defaultProbePort            = 9090
	defaultSqliteURL            = "tweet-fieldtype.db"
	defaultHealthCrontab        = "* * * * *"
	defaultEmbedRefreshCronTab  = "*/15 * * * *"
	defaultEmbedCache           = 1 * time.Hour
	defaultEmbedEnabled         = true
	defaultTweetAuthorList      = ""
	defaultTweetFieldIdentifier = "tweet"
	defaultLanguageCode         = "eng-GB"
	defaultLogLevel             = zerolog.InfoLevel
	defaultProduction           = false
)

func GetDefaultConfigValues() map[string]any {
	return map[string]any{
		TwitterAuthToken:     defaultTwitterAuthToken,
		TwitterCSRFToken:     defaultTwitterCSRFToken,
		ProbePort:            defaultProbePort,
		SqliteURL:            defaultSqliteURL,
		LogLevel:             defaultLogLevel.String(),
		Production:           defaultProduction,
		HealthCronTab:        defaultHealthCrontab,
		EmbedRefreshCronTab:  defaultEmbedRefreshCronTab,
		EmbedCache:           defaultEmbedCache,
		EmbedEnabled:         defaultEmbedEnabled,
		TweetAuthorList:      defaultTweetAuthorList,
		TweetFieldIdentifier: defaultTweetFieldIdentifier,
		LanguageCode:         defaultLanguageCode,
		TelegramBotToken:     defaultTelegramBotToken,
	}
}
