package main

import (
	"log"
	"os"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Azurakun/money-manager/linkage"
	"github.com/Azurakun/money-manager/models"
	"github.com/Azurakun/money-manager/store"
)

var (
	db        *gorm.DB
	txStore   *store.Transactions
	debtStore *store.Debts
	link      *linkage.Service
)

func initDB() {
	var err error
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN is not set. This project requires a Postgres DSN in DB_DSN.")
	}
	db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect postgres database:", err)
	}
	// Control schema migrations with env DB_AUTO_MIGRATE (default true).
	shouldMigrate := true
	if v := os.Getenv("DB_AUTO_MIGRATE"); v != "" {
		lv := strings.ToLower(v)
		if lv == "false" || lv == "0" || lv == "no" {
			shouldMigrate = false
		}
	}
	if shouldMigrate {
		// Migrate models individually so a failure on one doesn't block others
		if err := db.AutoMigrate(&models.Transaction{}); err != nil {
			log.Printf("migration warning (transactions): %v", err)
		}
		if err := db.AutoMigrate(&models.Debt{}); err != nil {
			log.Printf("migration warning (debts): %v", err)
		}
	}

	txStore = store.NewTransactions(db)
	debtStore = store.NewDebts(db)
	link = linkage.NewService(txStore, debtStore)
}
