package entities

import "time"

// TweetField is the stored hash of one tweet field of a content item.
type TweetField struct {
	ContentID       string `gorm:"primaryKey"`
	FieldIdentifier string `gorm:"primaryKey"`
	LanguageCode    string `gorm:"primaryKey"`
	URL             string
	AuthorURL       string
	Contents        string
	SortKey         string `gorm:"index"`
	UpdatedAt       time.Time
}
