package constants

import "github.com/rs/zerolog"

const (
	LogFileName        = "fileName"
	LogTweetID         = "tweetID"
	LogTweetURL        = "tweetURL"
	LogTweetNumber     = "tweetNumber"
	LogContentID       = "contentID"
	LogFieldIdentifier = "fieldIdentifier"
	LogChatID          = "chatID"
	LogCommand         = "cmd"
	LogConnected       = "connected"
	LogLevelFallback   = zerolog.InfoLevel
)
