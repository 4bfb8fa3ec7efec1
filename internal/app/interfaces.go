package app

import (
	"github.com/talkincode/tillpos/config"
	"gorm.io/gorm"
)

// DBProvider provides database access
type DBProvider interface {
	DB() *gorm.DB
}

// ConfigProvider provides application configuration
type ConfigProvider interface {
	Config() *config.AppConfig
}

// AppContext combines all provider interfaces for full application context
type AppContext interface {
	DBProvider
	ConfigProvider

	// Application lifecycle methods
	MigrateDB() error
	InitDb()
	DropAll()
}
