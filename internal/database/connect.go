package database

import (
	"github.com/pkg/errors"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"zaazu/internal/types"
)

func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open database")
	}

	if err := db.AutoMigrate(
		&types.Video{},
		&types.Game{},
		&types.Activity{},
		&types.Achievement{},
		&types.Avatar{},
		&types.DailyMission{},
		&types.User{},
		&types.LogEvent{},
	); err != nil {
		return nil, errors.Wrap(err, "failed to run migrations")
	}
	return db, nil
}
