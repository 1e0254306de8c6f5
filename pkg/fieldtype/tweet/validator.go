package tweet

import (
	"github.com/spf13/cast"
	"golang.org/x/exp/slices"

	"tweet-fieldtype/pkg/fieldtype"
)

const (
	ValidatorIdentifier = "TweetValueValidator"
	AuthorListParameter = "authorList"

	MessageInvalidURL        = "Invalid Twitter status URL %url%"
	MessageAuthorNotApproved = "Twitter user %user% is not in the approved author list"
	MessageUnknownValidator  = "Validator '%validator%' is unknown"
	MessageUnknownParameter  = "Validator parameter '%parameter%' is unknown"
	MessageInvalidAuthorList = "Validator parameter '%parameter%' value must be an array of strings"
	MessageUnknownSetting    = "Setting '%setting%' is unknown"

	placeholderURL       = "%url%"
	placeholderUser      = "%user%"
	placeholderValidator = "%validator%"
	placeholderParameter = "%parameter%"
	placeholderSetting   = "%setting%"
)

// ValidateAuthor checks author against allowList. An empty allowList accepts
// every author; otherwise membership is exact and case sensitive.
func ValidateAuthor(author string, allowList []string) *fieldtype.ValidationError {
	if len(allowList) == 0 || slices.Contains(allowList, author) {
		return nil
	}

	err := fieldtype.NewValidationError(MessageAuthorNotApproved, map[string]string{placeholderUser: author})
	return &err
}

func validateStatusURL(url string) *fieldtype.ValidationError {
	if IsValidStatusURL(url) {
		return nil
	}

	err := fieldtype.NewValidationError(MessageInvalidURL, map[string]string{placeholderURL: url})
	return &err
}

// authorList reads the configured allow-list. A missing validator or
// parameter yields an empty list; a parameter that is not a list of strings
// is reported so that the allow-list is never silently dropped.
func authorList(definition fieldtype.FieldDefinition) ([]string, *fieldtype.ValidationError) {
	validator, ok := definition.ValidatorConfiguration[ValidatorIdentifier]
	if !ok {
		return nil, nil
	}

	raw := validator[AuthorListParameter]
	if !isStringList(raw) {
		err := fieldtype.NewValidationError(MessageInvalidAuthorList,
			map[string]string{placeholderParameter: AuthorListParameter})
		return nil, &err
	}

	return cast.ToStringSlice(raw), nil
}

func isStringList(raw any) bool {
	switch list := raw.(type) {
	case nil, []string:
		return true
	case []any:
		for _, item := range list {
			if _, ok := item.(string); !ok {
				return false
			}
		}
		return true
	default:
		return false
	}
}
