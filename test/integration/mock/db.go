package mock

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbOnce sync.Once
var dbConn *gorm.DB

// NewDb opens a shared in-memory SQLite database and migrates the given
// models. The connection is a singleton so every scenario sees the same
// schema; call ClearDb between scenarios to reset state.
func NewDb(models ...any) *gorm.DB {
	dbOnce.Do(func() {
		dbConn = open(models...)
	})
	return dbConn
}

func open(models ...any) *gorm.DB {
	dbSQL, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}

	// A single connection keeps every session on the same in-memory database.
	dbSQL.SetMaxOpenConns(1)

	conn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	if err := conn.AutoMigrate(models...); err != nil {
		panic(fmt.Sprintf("failed to migrate test database. err: %s", err.Error()))
	}

	return conn
}

// ClearDb removes all rows from the given models' tables.
func ClearDb(db *gorm.DB, models ...any) error {
	for _, model := range models {
		err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(model).Error
		if err != nil {
			return err
		}
	}
	return nil
}
