package tweetfields

import (
	"errors"

	"tweet-fieldtype/models/entities"
	"tweet-fieldtype/utils/databases"
)

var ErrFieldNotFound = errors.New("tweet field not found")

type Repository interface {
	SaveOrUpdate(field entities.TweetField) error
	Get(contentID, fieldIdentifier, languageCode string) (entities.TweetField, error)
	Delete(contentID, fieldIdentifier, languageCode string) error
	FetchWithoutContents() ([]entities.TweetField, error)
	Count() int64
}

type Impl struct {
	db databases.SqlConnection
}
