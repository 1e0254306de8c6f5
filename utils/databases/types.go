package databases

import "gorm.io/gorm"

// SqlConnection owns the gorm handle backing field storage.
type SqlConnection interface {
	GetDB() *gorm.DB
	IsConnected() bool
	Migrate(models ...any) error
	Run() error
	Shutdown()
}
