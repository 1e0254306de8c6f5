package telegram

import (
	"errors"

	"tweet-fieldtype/pkg/observer"
	"tweet-fieldtype/services/fields"

	"github.com/PaulSonOfLars/gotgbot/v2"
	"github.com/PaulSonOfLars/gotgbot/v2/ext"
	"github.com/patrickmn/go-cache"
)

type MessageType int

const (
	MessageTypeWelcome MessageType = 1
	MessageTypeHelp    MessageType = 2
	MessageTypeUsage   MessageType = 3
	MessageTypeNoTweet MessageType = 4
	MessageTypeRemoved MessageType = 5
)

const (
	parseMode         = "Markdown"
	storedAtKeyPrefix = "storedAt:"
)

var (
	ErrTokenIsMissing         = errors.New("telegram token is missing")
	ErrBotNotInitialized      = errors.New("telegram bot  is not ready yet")
	ErrFailedToStartListening = errors.New("telegram bot can't start to listen command")
)

type Service interface {
	observer.Observer
	ListenAndDispatch() error
	Shutdown()
}

type Impl struct {
	bot           *gotgbot.Bot
	updater       *ext.Updater
	fieldsService fields.Service
	cache         *cache.Cache
}
