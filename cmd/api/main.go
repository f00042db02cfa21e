package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"

	httpadp "banking-ledger/internal/adapter/http"
	mw "banking-ledger/internal/adapter/middleware"
	"banking-ledger/internal/adapter/repository/gormrepo"
	"banking-ledger/internal/config"
	"banking-ledger/internal/infrastructure/cache"
	"banking-ledger/internal/infrastructure/db"
	"banking-ledger/internal/usecase/account"
	"banking-ledger/internal/usecase/cdp"
	"banking-ledger/internal/usecase/customer"
	"banking-ledger/internal/usecase/loan"
)

func openStore(cfg *config.Config) (*gorm.DB, error) {
	level := db.ParseLogLevel(cfg.DBLogLevel)
	if cfg.DBDriver == config.DriverMySQL {
		return db.OpenGorm(cfg.MySQLDSN(), level)
	}
	return db.OpenSQLite(cfg.SQLitePath, level)
}

func main() {
	if err := config.LoadEnvFile(); err != nil {
		log.Fatal(err)
	}
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	gdb, err := openStore(cfg)
	if err != nil {
		log.Fatal(err)
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		log.Fatal(err)
	}
	defer sqlDB.Close()

	// idempotency is optional: without redis, writes are not deduplicated
	var write []echo.MiddlewareFunc
	if cfg.RedisAddr != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		rdb, err := cache.OpenRedis(ctx, cfg.RedisAddr, cfg.RedisDB)
		cancel()
		if err != nil {
			log.Printf("%v; idempotency disabled", err)
		} else {
			defer rdb.Close()
			write = append(write, mw.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))
		}
	} else {
		log.Printf("REDIS_ADDR not set; idempotency disabled")
	}

	customers := gormrepo.NewCustomerRepository(gdb)
	accounts := gormrepo.NewAccountRepository(gdb)
	txs := gormrepo.NewTransactionRepository(gdb)
	loans := gormrepo.NewLoanRepository(gdb)
	cdps := gormrepo.NewCDPRepository(gdb)
	uow := gormrepo.NewGormUoW(gdb)

	customerUC := customer.NewUsecase(customers, uow)
	accountUC := account.NewUsecase(accounts, customers, txs, uow)
	loanUC := loan.NewUsecase(loans, accounts, uow)
	cdpUC := cdp.NewUsecase(cdps, accounts, uow)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger(), middleware.Recover())
	e.Validator = httpadp.NewValidator()

	httpadp.Register(e, httpadp.Handlers{
		Health:    httpadp.NewHandler(sqlDB),
		Customers: httpadp.NewCustomerHandler(customerUC, accountUC),
		Accounts:  httpadp.NewAccountHandler(accountUC, loanUC, cdpUC),
		Loans:     httpadp.NewLoanHandler(loanUC),
		CDPs:      httpadp.NewCDPHandler(cdpUC),
	}, write...)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s (store=%s)", addr, cfg.DBDriver)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
