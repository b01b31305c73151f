/*
Copyright 2025 BrandLens Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package main implements seedctl, which loads brands.csv and assets.csv
// into MongoDB. Each collection is cleared before insert, so the tool is
// safe to re-run against a development database.
package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"brandlens.dev/brandlens/store"
	"github.com/chainguard-dev/clog"
	"github.com/sethvargo/go-envconfig"
)

type config struct {
	MongoURI      string `env:"MONGO_URI,default=mongodb://localhost:27017"`
	MongoDatabase string `env:"MONGO_DATABASE,default=brandlens"`
	DataDir       string `env:"DATA_DIR,default=data"`
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var cfg config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		clog.FatalContextf(ctx, "processing config: %v", err)
	}

	st, err := store.Open(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		clog.FatalContextf(ctx, "connecting to mongo: %v", err)
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			clog.ErrorContextf(ctx, "closing mongo: %v", err)
		}
	}()
	if err := st.EnsureIndexes(ctx); err != nil {
		clog.FatalContextf(ctx, "ensuring indexes: %v", err)
	}

	brands, err := loadBrands(filepath.Join(cfg.DataDir, "brands.csv"))
	if err != nil {
		clog.FatalContextf(ctx, "parsing brands: %v", err)
	}
	if err := st.SeedBrands(ctx, brands); err != nil {
		clog.FatalContextf(ctx, "seeding brands: %v", err)
	}
	clog.InfoContextf(ctx, "Imported %d brands", len(brands))

	assets, err := loadAssets(filepath.Join(cfg.DataDir, "assets.csv"))
	if err != nil {
		clog.FatalContextf(ctx, "parsing assets: %v", err)
	}
	if err := st.SeedAssets(ctx, assets); err != nil {
		clog.FatalContextf(ctx, "seeding assets: %v", err)
	}
	clog.InfoContextf(ctx, "Imported %d assets", len(assets))
}

func loadBrands(path string) ([]store.Brand, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parseBrands(f)
}

func loadAssets(path string) ([]store.Asset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parseAssets(f, time.Now)
}
