package tweet

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tweet-fieldtype/pkg/fieldtype"
)

const statusURL = "https://twitter.com/user/status/123456789"

type fakeEmbedClient struct {
	embed Embed
	err   error
	calls []string
}

func (f *fakeEmbedClient) FetchEmbed(_ context.Context, url string) (Embed, error) {
	f.calls = append(f.calls, url)
	return f.embed, f.err
}

func newTestType() (*Type, *fakeEmbedClient) {
	client := &fakeEmbedClient{}
	return New(client), client
}

func definitionWithAuthors(authors []string) fieldtype.FieldDefinition {
	return fieldtype.FieldDefinition{
		Identifier:          "tweet",
		FieldTypeIdentifier: Identifier,
		ValidatorConfiguration: map[string]map[string]any{
			ValidatorIdentifier: {AuthorListParameter: authors},
		},
	}
}

func TestFieldTypeIdentifier(t *testing.T) {
	ft, _ := newTestType()
	assert.Equal(t, "eztweet", ft.FieldTypeIdentifier())
	assert.Equal(t, Value{}, ft.EmptyValue())
	assert.False(t, ft.IsSearchable())
}

func TestSchemas(t *testing.T) {
	ft, _ := newTestType()

	assert.Equal(t, fieldtype.ValidatorConfigurationSchema{
		"TweetValueValidator": {
			"authorList": {Type: "array", Default: []string{}},
		},
	}, ft.ValidatorConfigurationSchema())
	assert.Empty(t, ft.SettingsSchema())
}

func TestAcceptValue(t *testing.T) {
	full := Value{URL: statusURL, AuthorURL: "https://twitter.com/user", Contents: "<blockquote />"}

	tests := []struct {
		name  string
		input any
		want  fieldtype.Value
	}{
		{"url string", statusURL, Value{URL: statusURL}},
		{"value with url", Value{URL: statusURL}, Value{URL: statusURL}},
		{"full value", full, full},
		{"pointer to value", &full, full},
		{"nil", nil, Value{}},
		{"nil pointer", (*Value)(nil), Value{}},
		{"empty string", "", Value{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ft, _ := newTestType()
			got, err := ft.AcceptValue(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAcceptValueIsIdempotent(t *testing.T) {
	ft, _ := newTestType()
	v := Value{URL: statusURL, AuthorURL: "https://twitter.com/user", Contents: "<blockquote />"}

	once, err := ft.AcceptValue(v)
	require.NoError(t, err)
	twice, err := ft.AcceptValue(once)
	require.NoError(t, err)

	assert.Equal(t, v, twice)
}

func TestAcceptValueRejectsInvalidInput(t *testing.T) {
	for _, input := range []any{1, struct{}{}, 3.14, []string{statusURL}, map[string]string{"url": statusURL}} {
		ft, _ := newTestType()
		got, err := ft.AcceptValue(input)

		assert.Nil(t, got)
		assert.True(t, errors.Is(err, fieldtype.ErrInvalidArgument), "input %#v", input)

		var invalid *fieldtype.InvalidArgumentError
		require.True(t, errors.As(err, &invalid))
		assert.Equal(t, "input", invalid.Argument)
	}
}

func TestValidateValidData(t *testing.T) {
	tests := []struct {
		name    string
		authors []string
	}{
		{"author in list", []string{"user"}},
		{"author among others", []string{"anotherUser", "user"}},
		{"empty list", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ft, _ := newTestType()
			errs := ft.Validate(definitionWithAuthors(tt.authors), NewValue(statusURL))
			assert.Empty(t, errs)
		})
	}
}

func TestValidateInvalidData(t *testing.T) {
	tests := []struct {
		name    string
		authors []string
		value   Value
		want    []fieldtype.ValidationError
	}{
		{
			name:    "author not approved",
			authors: []string{"anotherUser"},
			value:   NewValue(statusURL),
			want: []fieldtype.ValidationError{
				fieldtype.NewValidationError("Twitter user %user% is not in the approved author list",
					map[string]string{"%user%": "user"}),
			},
		},
		{
			name:    "invalid url",
			authors: []string{"user"},
			value:   NewValue("https://test.com/user/status/123456789"),
			want: []fieldtype.ValidationError{
				fieldtype.NewValidationError("Invalid Twitter status URL %url%",
					map[string]string{"%url%": "https://test.com/user/status/123456789"}),
			},
		},
		{
			name:    "invalid url skips author check",
			authors: []string{"anotherUser"},
			value:   NewValue("https://test.com/user/status/123456789"),
			want: []fieldtype.ValidationError{
				fieldtype.NewValidationError("Invalid Twitter status URL %url%",
					map[string]string{"%url%": "https://test.com/user/status/123456789"}),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ft, _ := newTestType()
			assert.Equal(t, tt.want, ft.Validate(definitionWithAuthors(tt.authors), tt.value))
		})
	}
}

func TestValidateEmptyValue(t *testing.T) {
	ft, _ := newTestType()

	for _, authors := range [][]string{nil, {}, {"user"}, {"anotherUser"}} {
		assert.Empty(t, ft.Validate(definitionWithAuthors(authors), ft.EmptyValue()))
	}
}

func TestValidateReadsLooseAuthorList(t *testing.T) {
	ft, _ := newTestType()
	definition := fieldtype.FieldDefinition{
		ValidatorConfiguration: map[string]map[string]any{
			ValidatorIdentifier: {AuthorListParameter: []any{"anotherUser"}},
		},
	}

	errs := ft.Validate(definition, NewValue(statusURL))
	require.Len(t, errs, 1)
	assert.Equal(t, "Twitter user user is not in the approved author list", errs[0].Error())

	assert.Empty(t, ft.Validate(fieldtype.FieldDefinition{}, NewValue(statusURL)))
}

func TestValidateRejectsMalformedAuthorList(t *testing.T) {
	ft, _ := newTestType()
	configs := []any{
		map[string]string{"a": "anotherUser"},
		"anotherUser",
		[]any{"anotherUser", 1},
	}

	for _, authors := range configs {
		definition := fieldtype.FieldDefinition{
			ValidatorConfiguration: map[string]map[string]any{
				ValidatorIdentifier: {AuthorListParameter: authors},
			},
		}

		errs := ft.Validate(definition, NewValue(statusURL))
		require.Len(t, errs, 1)
		assert.Equal(t, "Validator parameter 'authorList' value must be an array of strings", errs[0].Error())
		assert.Len(t, ft.ValidateValidatorConfiguration(definition.ValidatorConfiguration), 1)
	}
}

func TestValidateValidatorConfiguration(t *testing.T) {
	ft, _ := newTestType()

	assert.Empty(t, ft.ValidateValidatorConfiguration(nil))
	assert.Empty(t, ft.ValidateValidatorConfiguration(map[string]map[string]any{
		ValidatorIdentifier: {AuthorListParameter: []any{"user"}},
	}))

	errs := ft.ValidateValidatorConfiguration(map[string]map[string]any{
		"StringLengthValidator": {"maxStringLength": 10},
	})
	require.Len(t, errs, 1)
	assert.Equal(t, "Validator 'StringLengthValidator' is unknown", errs[0].Error())

	errs = ft.ValidateValidatorConfiguration(map[string]map[string]any{
		ValidatorIdentifier: {"blockList": []string{"user"}},
	})
	require.Len(t, errs, 1)
	assert.Equal(t, "Validator parameter 'blockList' is unknown", errs[0].Error())

	errs = ft.ValidateValidatorConfiguration(map[string]map[string]any{
		ValidatorIdentifier: {AuthorListParameter: "user"},
	})
	require.Len(t, errs, 1)
	assert.Equal(t, "Validator parameter 'authorList' value must be an array of strings", errs[0].Error())
}

func TestValidateFieldSettings(t *testing.T) {
	ft, _ := newTestType()

	assert.Empty(t, ft.ValidateFieldSettings(nil))

	errs := ft.ValidateFieldSettings(map[string]any{"defaultValue": statusURL})
	require.Len(t, errs, 1)
	assert.Equal(t, "Setting 'defaultValue' is unknown", errs[0].Error())
}

func TestToHash(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		want  fieldtype.Hash
	}{
		{"empty value", Value{}, nil},
		{
			name:  "url only",
			value: NewValue(statusURL),
			want:  fieldtype.Hash{"url": statusURL, "authorUrl": "", "contents": ""},
		},
		{
			name:  "full value",
			value: Value{URL: statusURL, AuthorURL: "https://twitter.com/user", Contents: "<blockquote />"},
			want:  fieldtype.Hash{"url": statusURL, "authorUrl": "https://twitter.com/user", "contents": "<blockquote />"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ft, _ := newTestType()
			assert.Equal(t, tt.want, ft.ToHash(tt.value))
		})
	}
}

func TestFromHash(t *testing.T) {
	tests := []struct {
		name string
		hash fieldtype.Hash
		want Value
	}{
		{"nil hash", nil, Value{}},
		{"empty hash", fieldtype.Hash{}, Value{}},
		{"missing url", fieldtype.Hash{"authorUrl": "https://twitter.com/user"}, Value{}},
		{"url only", fieldtype.Hash{"url": statusURL}, NewValue(statusURL)},
		{
			name: "full hash",
			hash: fieldtype.Hash{"url": statusURL, "authorUrl": "https://twitter.com/user", "contents": "<blockquote />"},
			want: Value{URL: statusURL, AuthorURL: "https://twitter.com/user", Contents: "<blockquote />"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ft, _ := newTestType()
			assert.Equal(t, tt.want, ft.FromHash(tt.hash))
		})
	}
}

func TestHashRoundTrip(t *testing.T) {
	ft, _ := newTestType()

	for _, v := range []Value{
		{},
		NewValue(statusURL),
		{URL: statusURL, AuthorURL: "https://twitter.com/user"},
		{URL: statusURL, AuthorURL: "https://twitter.com/user", Contents: "<blockquote />"},
	} {
		assert.Equal(t, v, ft.FromHash(ft.ToHash(v)))
	}
}

func TestFieldName(t *testing.T) {
	ft, _ := newTestType()
	definition := definitionWithAuthors(nil)

	assert.Equal(t, "", ft.FieldName(ft.EmptyValue(), definition, ""))
	assert.Equal(t, "user-123456789", ft.FieldName(NewValue(statusURL), definition, ""))
	assert.Equal(t, "user-123456789", ft.FieldName(Value{
		URL:       statusURL,
		AuthorURL: "https://twitter.com/somebody-else",
		Contents:  "<blockquote />",
	}, fieldtype.FieldDefinition{}, "fre-FR"))
}

func TestNamePanics(t *testing.T) {
	ft, _ := newTestType()

	assert.PanicsWithValue(t, fieldtype.ErrNameUnsupported, func() { ft.Name(ft.EmptyValue()) })
	assert.PanicsWithValue(t, fieldtype.ErrNameUnsupported, func() { ft.Name(NewValue(statusURL)) })
}

func TestToPersistenceValueEnriches(t *testing.T) {
	ft, client := newTestType()
	client.embed = Embed{AuthorURL: "https://twitter.com/user", HTML: "<blockquote>hello</blockquote>"}

	pv := ft.ToPersistenceValue(context.Background(), NewValue(statusURL))

	assert.Equal(t, []string{statusURL}, client.calls)
	assert.Equal(t, "user-123456789", pv.SortKey)
	assert.Equal(t, fieldtype.Hash{
		"url":       statusURL,
		"authorUrl": "https://twitter.com/user",
		"contents":  "<blockquote>hello</blockquote>",
	}, pv.Data)
	assert.Equal(t, Value{
		URL:       statusURL,
		AuthorURL: "https://twitter.com/user",
		Contents:  "<blockquote>hello</blockquote>",
	}, ft.FromPersistenceValue(pv))
}

func TestToPersistenceValueToleratesClientFailure(t *testing.T) {
	ft, client := newTestType()
	client.err = errors.New("network is down")

	pv := ft.ToPersistenceValue(context.Background(), NewValue(statusURL))

	assert.Len(t, client.calls, 1)
	assert.Equal(t, fieldtype.Hash{"url": statusURL, "authorUrl": "", "contents": ""}, pv.Data)
}

func TestEnrichSkipsWhenNotNeeded(t *testing.T) {
	ft, client := newTestType()
	client.embed = Embed{HTML: "<blockquote>new</blockquote>"}

	cached := Value{URL: statusURL, Contents: "<blockquote>old</blockquote>"}
	assert.Equal(t, cached, ft.Enrich(context.Background(), cached))

	invalid := NewValue("https://test.com/user/status/1")
	assert.Equal(t, invalid, ft.Enrich(context.Background(), invalid))

	assert.Equal(t, Value{}, ft.Enrich(context.Background(), Value{}))
	assert.Empty(t, client.calls)
}

func TestEnrichKeepsAuthorURLWhenEmbedHasNone(t *testing.T) {
	ft, client := newTestType()
	client.embed = Embed{HTML: "<blockquote />"}

	got := ft.Enrich(context.Background(), Value{URL: statusURL, AuthorURL: "https://twitter.com/user"})
	assert.Equal(t, Value{URL: statusURL, AuthorURL: "https://twitter.com/user", Contents: "<blockquote />"}, got)
}

func TestNewWithNilClient(t *testing.T) {
	ft := New(nil)

	pv := ft.ToPersistenceValue(context.Background(), NewValue(statusURL))
	assert.Equal(t, fieldtype.Hash{"url": statusURL, "authorUrl": "", "contents": ""}, pv.Data)
}
