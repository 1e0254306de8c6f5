package tweetfields

import (
	"errors"
	"fmt"

	"tweet-fieldtype/models/entities"
	"tweet-fieldtype/utils/databases"

	"gorm.io/gorm"
)

func New(db databases.SqlConnection) *Impl {
	return &Impl{db: db}
}

func (repo *Impl) SaveOrUpdate(field entities.TweetField) error {
	var existingField entities.TweetField

	result := repo.db.GetDB().
		Where("content_id = ? AND field_identifier = ? AND language_code = ?",
			field.ContentID, field.FieldIdentifier, field.LanguageCode).
		First(&existingField)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			if err := repo.db.GetDB().Create(&field).Error; err != nil {
				return fmt.Errorf("failed to create tweet field: %w", err)
			}
			return nil
		}
		return fmt.Errorf("failed to check tweet field existence: %w", result.Error)
	}

	// Select("*") so that emptied columns are written too.
	if err := repo.db.GetDB().Model(&existingField).Select("*").Updates(field).Error; err != nil {
		return fmt.Errorf("failed to update tweet field: %w", err)
	}

	return nil
}

func (repo *Impl) Get(contentID, fieldIdentifier, languageCode string) (entities.TweetField, error) {
	var field entities.TweetField

	result := repo.db.GetDB().
		Where("content_id = ? AND field_identifier = ? AND language_code = ?",
			contentID, fieldIdentifier, languageCode).
		First(&field)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return field, ErrFieldNotFound
		}
		return field, fmt.Errorf("failed to get tweet field: %w", result.Error)
	}

	return field, nil
}

func (repo *Impl) Delete(contentID, fieldIdentifier, languageCode string) error {
	result := repo.db.GetDB().
		Where("content_id = ? AND field_identifier = ? AND language_code = ?",
			contentID, fieldIdentifier, languageCode).
		Delete(&entities.TweetField{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete tweet field: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrFieldNotFound
	}

	return nil
}

func (repo *Impl) FetchWithoutContents() ([]entities.TweetField, error) {
	var fields []entities.TweetField
	result := repo.db.GetDB().Where("url <> '' AND contents = ''").Order("updated_at").Find(&fields)

	return fields, result.Error
}

func (repo *Impl) Count() int64 {
	count := new(int64)
	repo.db.GetDB().Model(&entities.TweetField{}).Count(count)

	return *count
}
