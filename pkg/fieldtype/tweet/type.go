package tweet

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"tweet-fieldtype/pkg/fieldtype"
)

const (
	Identifier = "eztweet"

	// Keys of the storage hash.
	HashURL       = "url"
	HashAuthorURL = "authorUrl"
	HashContents  = "contents"

	logTweetURL = "tweetURL"
)

type Type struct {
	client EmbedClient
}

var _ fieldtype.FieldType = (*Type)(nil)

// New returns the tweet field type. client is used to fill in embed contents
// when a value is persisted; a nil client disables enrichment.
func New(client EmbedClient) *Type {
	if client == nil {
		client = NoopEmbedClient{}
	}

	return &Type{client: client}
}

func (t *Type) FieldTypeIdentifier() string {
	return Identifier
}

func (t *Type) EmptyValue() fieldtype.Value {
	return Value{}
}

func (t *Type) IsSearchable() bool {
	return false
}

func (t *Type) AcceptValue(input any) (fieldtype.Value, error) {
	switch v := input.(type) {
	case nil:
		return Value{}, nil
	case string:
		return NewValue(v), nil
	case Value:
		return v, nil
	case *Value:
		if v == nil {
			return Value{}, nil
		}
		return *v, nil
	default:
		return nil, fieldtype.NewInvalidArgumentError("input", input, "expected a status URL string or a tweet value")
	}
}

// Validate reports every problem found with value. The author check only runs
// when the URL could be parsed.
func (t *Type) Validate(definition fieldtype.FieldDefinition, value fieldtype.Value) []fieldtype.ValidationError {
	var errs []fieldtype.ValidationError

	v := asValue(value)
	if v.IsEmpty() {
		return errs
	}

	if err := validateStatusURL(v.URL); err != nil {
		return append(errs, *err)
	}

	authors, errConfig := authorList(definition)
	if errConfig != nil {
		return append(errs, *errConfig)
	}

	if err := ValidateAuthor(v.AuthorHandle(), authors); err != nil {
		errs = append(errs, *err)
	}

	return errs
}

func (t *Type) ValidateValidatorConfiguration(configuration map[string]map[string]any) []fieldtype.ValidationError {
	var errs []fieldtype.ValidationError

	for validator, parameters := range configuration {
		if validator != ValidatorIdentifier {
			errs = append(errs, fieldtype.NewValidationError(MessageUnknownValidator,
				map[string]string{placeholderValidator: validator}))
			continue
		}

		for parameter, raw := range parameters {
			switch {
			case parameter != AuthorListParameter:
				errs = append(errs, fieldtype.NewValidationError(MessageUnknownParameter,
					map[string]string{placeholderParameter: parameter}))
			case !isStringList(raw):
				errs = append(errs, fieldtype.NewValidationError(MessageInvalidAuthorList,
					map[string]string{placeholderParameter: parameter}))
			}
		}
	}

	return errs
}

func (t *Type) ValidateFieldSettings(settings map[string]any) []fieldtype.ValidationError {
	var errs []fieldtype.ValidationError

	for setting := range settings {
		errs = append(errs, fieldtype.NewValidationError(MessageUnknownSetting,
			map[string]string{placeholderSetting: setting}))
	}

	return errs
}

func (t *Type) ValidatorConfigurationSchema() fieldtype.ValidatorConfigurationSchema {
	return fieldtype.ValidatorConfigurationSchema{
		ValidatorIdentifier: {
			AuthorListParameter: {Type: "array", Default: []string{}},
		},
	}
}

func (t *Type) SettingsSchema() fieldtype.SettingsSchema {
	return fieldtype.SettingsSchema{}
}

func (t *Type) ToHash(value fieldtype.Value) fieldtype.Hash {
	v := asValue(value)
	if v.IsEmpty() {
		return nil
	}

	return fieldtype.Hash{
		HashURL:       v.URL,
		HashAuthorURL: v.AuthorURL,
		HashContents:  v.Contents,
	}
}

func (t *Type) FromHash(hash fieldtype.Hash) fieldtype.Value {
	url, ok := hash[HashURL].(string)
	if !ok || url == "" {
		return Value{}
	}

	authorURL, _ := hash[HashAuthorURL].(string)
	contents, _ := hash[HashContents].(string)

	return Value{URL: url, AuthorURL: authorURL, Contents: contents}
}

// ToPersistenceValue fills in missing embed contents before hashing value.
func (t *Type) ToPersistenceValue(ctx context.Context, value fieldtype.Value) fieldtype.PersistenceValue {
	v := t.Enrich(ctx, asValue(value))

	return fieldtype.PersistenceValue{
		Data:    t.ToHash(v),
		SortKey: fieldName(v),
	}
}

func (t *Type) FromPersistenceValue(persistenceValue fieldtype.PersistenceValue) fieldtype.Value {
	return t.FromHash(persistenceValue.Data)
}

// FieldName derives "<author>-<statusId>" from the URL. definition and
// languageCode are not used.
func (t *Type) FieldName(value fieldtype.Value, _ fieldtype.FieldDefinition, _ string) string {
	return fieldName(asValue(value))
}

// Name is not supported without a field definition and always panics.
func (t *Type) Name(_ fieldtype.Value) string {
	panic(fieldtype.ErrNameUnsupported)
}

// Enrich asks the embed client for the author URL and HTML of a status whose
// contents are missing. Failures are logged and leave v untouched.
func (t *Type) Enrich(ctx context.Context, v Value) Value {
	if v.Contents != "" || !IsValidStatusURL(v.URL) {
		return v
	}

	embed, err := t.client.FetchEmbed(ctx, v.URL)
	if errors.Is(err, ErrEmbedUnavailable) {
		log.Debug().Str(logTweetURL, v.URL).Msg("Embed client unavailable, contents left empty")
		return v
	}
	if err != nil {
		log.Warn().Err(err).Str(logTweetURL, v.URL).Msg("Cannot fetch tweet embed, contents left empty")
		return v
	}

	v.Contents = embed.HTML
	if embed.AuthorURL != "" {
		v.AuthorURL = embed.AuthorURL
	}

	return v
}

func fieldName(v Value) string {
	author, statusID, ok := ParseStatusURL(v.URL)
	if !ok {
		return ""
	}

	return fmt.Sprintf("%s-%s", author, statusID)
}

func asValue(value fieldtype.Value) Value {
	switch v := value.(type) {
	case Value:
		return v
	case *Value:
		if v != nil {
			return *v
		}
	}

	return Value{}
}
