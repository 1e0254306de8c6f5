package fields

import (
	"context"
	"errors"

	"tweet-fieldtype/pkg/fieldtype"
	"tweet-fieldtype/pkg/fieldtype/tweet"
	"tweet-fieldtype/pkg/observer"
	"tweet-fieldtype/repositories/tweetfields"
)

var ErrInvalidValue = errors.New("tweet value is not valid")

type Service interface {
	observer.Notifier
	Store(ctx context.Context, contentID string, input any) (tweet.Value, []fieldtype.ValidationError, error)
	Load(contentID string) (tweet.Value, error)
	Remove(contentID string) error
	FieldName(value tweet.Value) string
	Count() int64
	RefreshEmbeds(ctx context.Context) int
}

type Impl struct {
	fieldType    fieldtype.FieldType
	definition   fieldtype.FieldDefinition
	languageCode string
	repository   tweetfields.Repository
	observers    map[observer.Observer]struct{}
}
