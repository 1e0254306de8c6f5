package constants

import (
	"tweet-fieldtype/pkg/fieldtype"
	"tweet-fieldtype/pkg/fieldtype/tweet"

	"github.com/spf13/viper"
)

// GetTweetFieldDefinition builds the definition of the tweet field from the
// configured identifier and approved authors.
func GetTweetFieldDefinition() fieldtype.FieldDefinition {
	return fieldtype.FieldDefinition{
		Identifier:          viper.GetString(TweetFieldIdentifier),
		FieldTypeIdentifier: tweet.Identifier,
		Names:               map[string]string{viper.GetString(LanguageCode): "Tweet"},
		ValidatorConfiguration: map[string]map[string]any{
			tweet.ValidatorIdentifier: {
				tweet.AuthorListParameter: viper.GetStringSlice(TweetAuthorList),
			},
		},
	}
}
