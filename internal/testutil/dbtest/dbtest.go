// Package dbtest opens migrated in-memory sqlite stores for tests.
package dbtest

import (
	"testing"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"banking-ledger/internal/infrastructure/db"
)

// Open returns a fresh, migrated ":memory:" database closed at test end.
func Open(t testing.TB) *gorm.DB {
	t.Helper()
	gdb, err := db.OpenSQLite(":memory:", logger.Silent)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return gdb
}

// FailCreate makes every INSERT into table fail with err.
func FailCreate(t testing.TB, gdb *gorm.DB, table string, err error) {
	t.Helper()
	name := "dbtest:fail_create_" + table
	cb := gdb.Callback().Create().Before("gorm:create")
	if regErr := cb.Register(name, func(tx *gorm.DB) {
		if tx.Statement.Table == table {
			_ = tx.AddError(err)
		}
	}); regErr != nil {
		t.Fatalf("register callback: %v", regErr)
	}
	t.Cleanup(func() { _ = gdb.Callback().Create().Remove(name) })
}
