package db

import (
	"log"

	"github.com/trishhi-git/ayush-launchpad-app/app/model"
)

// Migrate keeps the relational schema in sync. The activity feed lives in
// MongoDB and needs no migration.
func Migrate() {
	err := DB.AutoMigrate(
		&model.User{},
		&model.Application{},
		&model.Document{},
		&model.DocumentVerificationLog{},
		&model.FundingRequest{},
		&model.AadhaarOTP{},
		&model.BlacklistedToken{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}
}
