package telegram

import (
	"context"
	"errors"
	"strconv"
	"time"

	"tweet-fieldtype/models/constants"
	"tweet-fieldtype/pkg/observer"
	"tweet-fieldtype/repositories/tweetfields"
	"tweet-fieldtype/services/fields"

	"github.com/PaulSonOfLars/gotgbot/v2"
	"github.com/PaulSonOfLars/gotgbot/v2/ext"
	"github.com/PaulSonOfLars/gotgbot/v2/ext/handlers"
	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"
)

const commandTimeout = 20 * time.Second

func New(token string, fieldsService fields.Service) (*Impl, error) {
	if token == "" {
		return &Impl{}, ErrTokenIsMissing
	}

	b, err := gotgbot.NewBot(token, nil)
	if err != nil {
		return &Impl{}, ErrBotNotInitialized
	}

	dispatcher := ext.NewDispatcher(&ext.DispatcherOpts{
		Error: func(b *gotgbot.Bot, ctx *ext.Context, err error) ext.DispatcherAction {
			log.Warn().Err(err).Msg("an error occurred while handling update")
			return ext.DispatcherActionNoop
		},
		MaxRoutines: ext.DefaultMaxRoutines,
	})

	service := newService(fieldsService)
	service.bot = b
	dispatcher.AddHandler(handlers.NewCommand("start", service.startCmd))
	dispatcher.AddHandler(handlers.NewCommand("help", service.helpCmd))
	dispatcher.AddHandler(handlers.NewCommand("tweet", service.tweetCmd))
	dispatcher.AddHandler(handlers.NewCommand("show", service.showCmd))
	dispatcher.AddHandler(handlers.NewCommand("remove", service.removeCmd))
	dispatcher.AddHandler(handlers.NewCommand("stats", service.statsCmd))
	dispatcher.AddHandler(handlers.NewCommand("", service.unknownCmd))

	service.updater = ext.NewUpdater(dispatcher, nil)
	fieldsService.Register(service)

	return service, nil
}

func newService(fieldsService fields.Service) *Impl {
	return &Impl{fieldsService: fieldsService, cache: cache.New(24*time.Hour, 48*time.Hour)}
}

func (service *Impl) ListenAndDispatch() error {
	err := service.updater.StartPolling(service.bot, &ext.PollingOpts{
		DropPendingUpdates: true,
		GetUpdatesOpts: &gotgbot.GetUpdatesOpts{
			Timeout: 9,
			RequestOpts: &gotgbot.RequestOpts{
				Timeout: time.Second * 10,
			},
		},
	})
	if err != nil {
		return ErrFailedToStartListening
	}

	log.Info().Str("username", service.bot.User.Username).Msg("Telegram bot is listening")
	service.updater.Idle()

	return nil
}

func (service *Impl) Shutdown() {
	if service.updater == nil {
		return
	}

	if err := service.updater.Stop(); err != nil {
		log.Error().Err(err).Msg("Cannot stop telegram updater, continuing...")
	}
}

func (service *Impl) OnNotify(e observer.Event) {
	switch e.E {
	case observer.TweetStoredEvent:
		service.cache.SetDefault(storedAtKeyPrefix+e.Field.ContentID, time.Now())
	case observer.TweetRemovedEvent:
		service.cache.Delete(storedAtKeyPrefix + e.Field.ContentID)
	case observer.TweetEnrichedEvent:
		chatID, err := strconv.ParseInt(e.Field.ContentID, 10, 64)
		if err != nil {
			log.Debug().Str(constants.LogContentID, e.Field.ContentID).Msg("Enriched content is not a chat, ignored")
			return
		}

		log.Info().Int64(constants.LogChatID, chatID).Msg("Received internal notification")
		service.send(chatID, renderEmbedReady(e.Field.URL))
	}
}

func (service *Impl) startCmd(b *gotgbot.Bot, ctx *ext.Context) error {
	service.logCommand("start", ctx)
	service.send(ctx.EffectiveChat.Id, getMessageFromMessageType(MessageTypeWelcome))
	return nil
}

func (service *Impl) helpCmd(b *gotgbot.Bot, ctx *ext.Context) error {
	service.logCommand("help", ctx)
	service.send(ctx.EffectiveChat.Id, getMessageFromMessageType(MessageTypeHelp))
	return nil
}

func (service *Impl) unknownCmd(b *gotgbot.Bot, ctx *ext.Context) error {
	service.logCommand("unknown", ctx)
	service.send(ctx.EffectiveChat.Id, getGenericErrorMessage())
	return nil
}

func (service *Impl) tweetCmd(b *gotgbot.Bot, ctx *ext.Context) error {
	service.logCommand("tweet", ctx)

	url := ""
	if args := ctx.Args(); len(args) > 1 {
		url = args[1]
	}

	reqCtx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	service.send(ctx.EffectiveChat.Id, service.handleTweet(reqCtx, ctx.EffectiveChat.Id, url))
	return nil
}

func (service *Impl) showCmd(b *gotgbot.Bot, ctx *ext.Context) error {
	service.logCommand("show", ctx)
	service.send(ctx.EffectiveChat.Id, service.handleShow(ctx.EffectiveChat.Id))
	return nil
}

func (service *Impl) removeCmd(b *gotgbot.Bot, ctx *ext.Context) error {
	service.logCommand("remove", ctx)
	service.send(ctx.EffectiveChat.Id, service.handleRemove(ctx.EffectiveChat.Id))
	return nil
}

func (service *Impl) statsCmd(b *gotgbot.Bot, ctx *ext.Context) error {
	service.logCommand("stats", ctx)
	service.send(ctx.EffectiveChat.Id, renderStats(service.fieldsService.Count()))
	return nil
}

func (service *Impl) handleTweet(ctx context.Context, chatID int64, url string) string {
	if url == "" {
		return getMessageFromMessageType(MessageTypeUsage)
	}

	value, errs, err := service.fieldsService.Store(ctx, contentID(chatID), url)
	if errors.Is(err, fields.ErrInvalidValue) {
		return renderValidationErrors(errs)
	}
	if err != nil {
		log.Error().Err(err).Int64(constants.LogChatID, chatID).Msg("error on saved")
		return getGenericErrorMessage()
	}

	return renderStored(value, service.fieldsService.FieldName(value))
}

func (service *Impl) handleShow(chatID int64) string {
	value, err := service.fieldsService.Load(contentID(chatID))
	if errors.Is(err, tweetfields.ErrFieldNotFound) {
		return getMessageFromMessageType(MessageTypeNoTweet)
	}
	if err != nil {
		log.Error().Err(err).Int64(constants.LogChatID, chatID).Msg("error on load")
		return getGenericErrorMessage()
	}

	var storedAt time.Time
	if x, found := service.cache.Get(storedAtKeyPrefix + contentID(chatID)); found {
		storedAt = x.(time.Time)
	}

	return renderShow(value, service.fieldsService.FieldName(value), storedAt)
}

func (service *Impl) handleRemove(chatID int64) string {
	err := service.fieldsService.Remove(contentID(chatID))
	if errors.Is(err, tweetfields.ErrFieldNotFound) {
		return getMessageFromMessageType(MessageTypeNoTweet)
	}
	if err != nil {
		log.Error().Err(err).Int64(constants.LogChatID, chatID).Msg("error on deleted")
		return getGenericErrorMessage()
	}

	return getMessageFromMessageType(MessageTypeRemoved)
}

func (service *Impl) send(chatID int64, msg string) {
	if service.bot == nil {
		return
	}

	if _, err := service.bot.SendMessage(chatID, msg, &gotgbot.SendMessageOpts{ParseMode: parseMode}); err != nil {
		log.Error().Err(err).Int64(constants.LogChatID, chatID).Msg("Cannot send telegram message")
	}
}

func (service *Impl) logCommand(cmd string, ctx *ext.Context) {
	log.Info().
		Str(constants.LogCommand, cmd).
		Str("username", ctx.EffectiveChat.Username).
		Int64(constants.LogChatID, ctx.EffectiveChat.Id).
		Msg("command received")
}

func contentID(chatID int64) string {
	return strconv.FormatInt(chatID, 10)
}
