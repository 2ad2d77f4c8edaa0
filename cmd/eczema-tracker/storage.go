package main

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2/log"
	"github.com/terraincognita07/eczema-tracker/internal/config"
	"github.com/terraincognita07/eczema-tracker/internal/db"
	"github.com/terraincognita07/eczema-tracker/internal/photos"
	"github.com/terraincognita07/eczema-tracker/internal/services"
)

// openDocuments prepares the configured document backend. The returned
// close func is never nil.
func openDocuments(cfg config.Config) (services.DocumentRepository, func(), error) {
	switch cfg.StorageBackend {
	case config.StorageSQLite:
		database, err := db.OpenSQLite(cfg.DBPath)
		if err != nil {
			return nil, func() {}, fmt.Errorf("database init failed: %w", err)
		}
		closeDatabase := func() {
			if sqlDB, err := database.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}

		repo := db.NewSQLiteDocumentRepository(database)
		if err := repo.Init(); err != nil {
			closeDatabase()
			return nil, func() {}, err
		}
		return repo, closeDatabase, nil
	default:
		repo := db.NewJSONDocumentRepository(cfg.DataFile)
		if err := repo.Init(); err != nil {
			return nil, func() {}, err
		}
		return repo, func() {}, nil
	}
}

func openPhotoStore(ctx context.Context, cfg config.Config) (services.PhotoStore, error) {
	switch cfg.PhotoBackend {
	case config.PhotosS3:
		store, err := photos.NewS3Store(ctx, photos.S3Options{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			Prefix:    cfg.S3Prefix,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
		})
		if err != nil {
			return nil, fmt.Errorf("s3 photo store init failed: %w", err)
		}
		return store, nil
	default:
		store := photos.NewDirStore(cfg.PhotoDir)
		if err := store.Init(); err != nil {
			return nil, err
		}
		return store, nil
	}
}

func describeStorage(cfg config.Config) string {
	documents := cfg.DataFile
	if cfg.StorageBackend == config.StorageSQLite {
		documents = "sqlite:" + cfg.DBPath
	}
	photoStore := cfg.PhotoDir
	if cfg.PhotoBackend == config.PhotosS3 {
		photoStore = "s3://" + cfg.S3Bucket
	}
	return fmt.Sprintf("data: %s, photos: %s", documents, photoStore)
}

func logStorage(cfg config.Config) {
	log.Infof("storage ready (%s)", describeStorage(cfg))
}
