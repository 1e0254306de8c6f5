package fields

import (
	"context"
	"errors"

	"tweet-fieldtype/models/constants"
	"tweet-fieldtype/models/entities"
	"tweet-fieldtype/pkg/fieldtype"
	"tweet-fieldtype/pkg/fieldtype/tweet"
	"tweet-fieldtype/pkg/observer"
	"tweet-fieldtype/repositories/tweetfields"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

func New(scheduler gocron.Scheduler,
	fieldType fieldtype.FieldType,
	definition fieldtype.FieldDefinition,
	languageCode string,
	repository tweetfields.Repository) (*Impl, error) {
	service := &Impl{
		fieldType:    fieldType,
		definition:   definition,
		languageCode: languageCode,
		repository:   repository,
		observers:    map[observer.Observer]struct{}{},
	}

	if errs := fieldType.ValidateValidatorConfiguration(definition.ValidatorConfiguration); len(errs) > 0 {
		return nil, errs[0]
	}

	if viper.GetBool(constants.Production) {
		service.RefreshEmbeds(context.Background())
	}

	_, errJob := scheduler.NewJob(
		gocron.CronJob(viper.GetString(constants.EmbedRefreshCronTab), false),
		gocron.NewTask(func() { service.RefreshEmbeds(context.Background()) }),
		gocron.WithName("Refresh missing tweet embeds"),
	)
	if errJob != nil {
		return nil, errJob
	}

	return service, nil
}

func (service *Impl) Register(o observer.Observer) {
	service.observers[o] = struct{}{}
}

func (service *Impl) Notify(e observer.Event) {
	for o := range service.observers {
		o.OnNotify(e)
	}
}

// Store accepts, validates and persists input as the tweet field of
// contentID. Validation problems are returned alongside ErrInvalidValue and
// nothing is written. An empty value removes the stored field.
func (service *Impl) Store(ctx context.Context, contentID string, input any) (tweet.Value, []fieldtype.ValidationError, error) {
	value, err := service.fieldType.AcceptValue(input)
	if err != nil {
		return tweet.Value{}, nil, err
	}

	if errs := service.fieldType.Validate(service.definition, value); len(errs) > 0 {
		return toTweetValue(value), errs, ErrInvalidValue
	}

	if value.IsEmpty() {
		errRemove := service.Remove(contentID)
		if errRemove != nil && !errors.Is(errRemove, tweetfields.ErrFieldNotFound) {
			return tweet.Value{}, nil, errRemove
		}
		return tweet.Value{}, nil, nil
	}

	persistenceValue := service.fieldType.ToPersistenceValue(ctx, value)
	field := service.mapPersistenceValueToEntity(contentID, persistenceValue)
	if errSave := service.repository.SaveOrUpdate(field); errSave != nil {
		return tweet.Value{}, nil, errSave
	}

	log.Info().
		Str(constants.LogContentID, contentID).
		Str(constants.LogFieldIdentifier, field.FieldIdentifier).
		Str(constants.LogTweetURL, field.URL).
		Msg("Tweet field stored")
	service.Notify(observer.NewFieldEvent(observer.TweetStoredEvent, field))

	return toTweetValue(service.fieldType.FromPersistenceValue(persistenceValue)), nil, nil
}

func (service *Impl) Load(contentID string) (tweet.Value, error) {
	field, err := service.repository.Get(contentID, service.definition.Identifier, service.languageCode)
	if err != nil {
		return tweet.Value{}, err
	}

	return toTweetValue(service.fieldType.FromPersistenceValue(MapEntityToPersistenceValue(field))), nil
}

func (service *Impl) Remove(contentID string) error {
	field, err := service.repository.Get(contentID, service.definition.Identifier, service.languageCode)
	if err != nil {
		return err
	}

	if errDelete := service.repository.Delete(contentID, service.definition.Identifier, service.languageCode); errDelete != nil {
		return errDelete
	}

	log.Info().Str(constants.LogContentID, contentID).Msg("Tweet field removed")
	service.Notify(observer.NewFieldEvent(observer.TweetRemovedEvent, field))

	return nil
}

func (service *Impl) FieldName(value tweet.Value) string {
	return service.fieldType.FieldName(value, service.definition, service.languageCode)
}

func (service *Impl) Count() int64 {
	return service.repository.Count()
}

// RefreshEmbeds retries enrichment of every stored tweet that has no
// contents yet and returns how many were filled in.
func (service *Impl) RefreshEmbeds(ctx context.Context) int {
	log.Info().Msg("Start refreshing missing tweet embeds")

	fields, err := service.repository.FetchWithoutContents()
	if err != nil {
		log.Error().Err(err).Msg("Cannot retrieve tweet fields without contents, ignored")
		return 0
	}

	refreshed := 0
	for _, field := range fields {
		if ctx.Err() != nil {
			break
		}

		value := service.fieldType.FromPersistenceValue(MapEntityToPersistenceValue(field))
		persistenceValue := service.fieldType.ToPersistenceValue(ctx, value)
		if cast.ToString(persistenceValue.Data[tweet.HashContents]) == "" {
			continue
		}

		enriched := service.mapPersistenceValueToEntity(field.ContentID, persistenceValue)
		enriched.FieldIdentifier = field.FieldIdentifier
		enriched.LanguageCode = field.LanguageCode
		if errSave := service.repository.SaveOrUpdate(enriched); errSave != nil {
			log.Error().Err(errSave).
				Str(constants.LogContentID, field.ContentID).
				Str(constants.LogTweetURL, field.URL).
				Msg("Cannot save refreshed tweet embed, ignored")
			continue
		}

		refreshed++
		service.Notify(observer.NewFieldEvent(observer.TweetEnrichedEvent, enriched))
	}

	log.Info().
		Int(constants.LogTweetNumber, refreshed).
		Msgf("End refreshing missing tweet embeds, %d still pending", len(fields)-refreshed)

	return refreshed
}

func (service *Impl) mapPersistenceValueToEntity(contentID string, persistenceValue fieldtype.PersistenceValue) entities.TweetField {
	return entities.TweetField{
		ContentID:       contentID,
		FieldIdentifier: service.definition.Identifier,
		LanguageCode:    service.languageCode,
		URL:             cast.ToString(persistenceValue.Data[tweet.HashURL]),
		AuthorURL:       cast.ToString(persistenceValue.Data[tweet.HashAuthorURL]),
		Contents:        cast.ToString(persistenceValue.Data[tweet.HashContents]),
		SortKey:         persistenceValue.SortKey,
	}
}

func MapEntityToPersistenceValue(field entities.TweetField) fieldtype.PersistenceValue {
	return fieldtype.PersistenceValue{
		Data: fieldtype.Hash{
			tweet.HashURL:       field.URL,
			tweet.HashAuthorURL: field.AuthorURL,
			tweet.HashContents:  field.Contents,
		},
		SortKey: field.SortKey,
	}
}

func toTweetValue(value fieldtype.Value) tweet.Value {
	v, _ := value.(tweet.Value)
	return v
}
