// Package db owns the xorm engine. Production runs on mysql; dev and tests
// run the same schema on the cgo-free sqlite driver.
package db

import (
	"fmt"
	"time"

	"deepcheck_api/config"
	"deepcheck_api/models/tables"
	"deepcheck_api/pkg/logger"

	_ "github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"
	"xorm.io/xorm"
)

func NewEngine(cfg config.DatabaseConfig) (*xorm.Engine, error) {
	engine, err := xorm.NewEngine(cfg.Driver, cfg.DataSourceName)
	if err != nil {
		return nil, fmt.Errorf("new %s engine: %w", cfg.Driver, err)
	}

	if cfg.MaxIdleCount > 0 {
		engine.SetMaxIdleConns(cfg.MaxIdleCount)
	}
	if cfg.MaxOpenConns > 0 {
		engine.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		engine.SetConnMaxLifetime(time.Second * time.Duration(cfg.ConnMaxLifetime))
	}

	if err := engine.Ping(); err != nil {
		engine.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return engine, nil
}

// Sync creates or updates every table and its indexes.
func Sync(engine *xorm.Engine) error {
	return engine.Sync(tables.All()...)
}

func Close(engine *xorm.Engine) {
	if err := engine.Close(); err != nil {
		logger.Logger.Error("Error closing database engine", "error", err.Error())
	}
}

func LogStats(engine *xorm.Engine) {
	for {
		time.Sleep(time.Minute * 1)
		logger.Logger.Info("Database connection pool stats", "stats", engine.DB().Stats())
	}
}
