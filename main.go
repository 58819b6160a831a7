package main

import (
	"context"
	"log"

	"github.com/trishhi-git/ayush-launchpad-app/config"
	"github.com/trishhi-git/ayush-launchpad-app/db"
	"github.com/trishhi-git/ayush-launchpad-app/route"
	"github.com/trishhi-git/ayush-launchpad-app/storage"
)

func main() {
	config.Logger()
	config.LoadEnv()

	db.ConnectDB()
	db.Migrate()

	store := newStorage()

	app := config.NewApp()

	route.SetupRoutes(app, db.GetDB(), db.GetMongo(), store)

	if local, ok := store.(*storage.LocalStorage); ok {
		app.Static("/uploads", local.Dir)
	}

	log.Fatal(app.Listen(":" + config.Env.AppPort))
}

func newStorage() storage.FileStorage {
	switch config.Env.StorageDriver {
	case "s3":
		store, err := storage.NewS3Storage(context.Background(), config.Env.StorageBucket)
		if err != nil {
			log.Fatal("Failed to initialise S3 storage:", err)
		}
		return store
	default:
		store, err := storage.NewLocalStorage(config.Env.StorageDir)
		if err != nil {
			log.Fatal("Failed to initialise local storage:", err)
		}
		return store
	}
}
