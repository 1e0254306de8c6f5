package fieldtype

import (
	"context"
	"errors"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNameUnsupported = errors.New("field name requires a field definition, use FieldName instead")
)

// Hash is the storage representation of a field value. A nil Hash stands for
// the empty value.
type Hash map[string]any

type Value interface {
	IsEmpty() bool
}

type PersistenceValue struct {
	Data    Hash
	SortKey string
}

type FieldDefinition struct {
	Identifier             string
	FieldTypeIdentifier    string
	Names                  map[string]string
	IsRequired             bool
	ValidatorConfiguration map[string]map[string]any
	FieldSettings          map[string]any
}

// OptionSchema describes one option a validator or the field settings accept.
type OptionSchema struct {
	Type    string `json:"type"`
	Default any    `json:"default"`
}

type ValidatorConfigurationSchema map[string]map[string]OptionSchema

type SettingsSchema map[string]OptionSchema

// FieldType is the contract every field kind implements so the host can
// accept, validate and store its values without knowing the concrete kind.
type FieldType interface {
	FieldTypeIdentifier() string
	EmptyValue() Value
	AcceptValue(input any) (Value, error)
	Validate(definition FieldDefinition, value Value) []ValidationError
	ValidateValidatorConfiguration(configuration map[string]map[string]any) []ValidationError
	ValidateFieldSettings(settings map[string]any) []ValidationError
	ValidatorConfigurationSchema() ValidatorConfigurationSchema
	SettingsSchema() SettingsSchema
	ToHash(value Value) Hash
	FromHash(hash Hash) Value
	ToPersistenceValue(ctx context.Context, value Value) PersistenceValue
	FromPersistenceValue(persistenceValue PersistenceValue) Value
	FieldName(value Value, definition FieldDefinition, languageCode string) string
	Name(value Value) string
	IsSearchable() bool
}
