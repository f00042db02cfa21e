package db

import (
	"log"
	"strings"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"banking-ledger/internal/domain/account"
	"banking-ledger/internal/domain/cdp"
	"banking-ledger/internal/domain/customer"
	"banking-ledger/internal/domain/loan"
	"banking-ledger/internal/domain/transaction"
)

// Pool sizes the underlying *sql.DB. Zero lifetimes keep connections forever.
type Pool struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

var (
	mysqlPool = Pool{MaxOpenConns: 30, MaxIdleConns: 10, ConnMaxLifetime: 30 * time.Minute, ConnMaxIdleTime: 10 * time.Minute}
	// a single connection: ":memory:" is per connection and sqlite has one writer anyway
	sqlitePool = Pool{MaxOpenConns: 1, MaxIdleConns: 1}
)

// ParseLogLevel maps DB_LOG_LEVEL (silent|error|warn|info) to a gorm level.
func ParseLogLevel(s string) logger.LogLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

func OpenGorm(dsn string, level logger.LogLevel) (*gorm.DB, error) {
	return OpenGormWithDialector(mysql.Open(dsn), level, mysqlPool)
}

func OpenSQLite(path string, level logger.LogLevel) (*gorm.DB, error) {
	return OpenGormWithDialector(sqlite.Open(path), level, sqlitePool)
}

// OpenGormWithDialector opens, sizes and pings the pool. Store errors are
// translated by the dialector so repositories can match gorm.ErrDuplicatedKey.
func OpenGormWithDialector(dial gorm.Dialector, level logger.LogLevel, pool Pool) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger:               logger.Default.LogMode(level),
		TranslateError:       true,
		DisableAutomaticPing: true,
	}
	db, err := gorm.Open(dial, cfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(pool.MaxOpenConns)
	sqlDB.SetMaxIdleConns(pool.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(pool.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(pool.ConnMaxIdleTime)

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	log.Printf("gorm: connected (%s)", dial.Name())
	return db, nil
}

// Migrate creates or updates every ledger table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&customer.Customer{},
		&account.Account{},
		&transaction.Transaction{},
		&cdp.CDP{},
		&loan.Loan{},
		&loan.Payment{},
	)
}
