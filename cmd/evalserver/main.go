/*
Copyright 2025 BrandLens Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package main runs the BrandLens evaluation server: an HTTP API that scores
// creative assets for size and brand compliance using Claude, then persists
// the combined evaluation in MongoDB.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"brandlens.dev/brandlens/agents/aggregate"
	"brandlens.dev/brandlens/agents/brandcheck"
	"brandlens.dev/brandlens/agents/executor/claudeexecutor"
	"brandlens.dev/brandlens/agents/sizecheck"
	"brandlens.dev/brandlens/evaluator"
	"brandlens.dev/brandlens/media"
	"brandlens.dev/brandlens/server"
	"brandlens.dev/brandlens/store"
	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/chainguard-dev/clog"
	"github.com/sethvargo/go-envconfig"
)

type config struct {
	Port          int    `env:"PORT,default=8080"`
	MongoURI      string `env:"MONGO_URI,default=mongodb://localhost:27017"`
	MongoDatabase string `env:"MONGO_DATABASE,default=brandlens"`

	AnthropicAPIKey string  `env:"ANTHROPIC_API_KEY,required"`
	Model           string  `env:"MODEL,default=claude-sonnet-4-20250514"`
	MaxTokens       int64   `env:"MAX_TOKENS,default=1024"`
	Temperature     float64 `env:"TEMPERATURE,default=0.1"`
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

	client := anthropic.NewClient(option.WithAPIKey(cfg.AnthropicAPIKey))

	size, err := sizecheck.New(client,
		claudeexecutor.WithModel[*sizecheck.Request, *sizecheck.Result](cfg.Model),
		claudeexecutor.WithMaxTokens[*sizecheck.Request, *sizecheck.Result](cfg.MaxTokens),
		claudeexecutor.WithTemperature[*sizecheck.Request, *sizecheck.Result](cfg.Temperature),
	)
	if err != nil {
		clog.FatalContextf(ctx, "creating size agent: %v", err)
	}

	brand, err := brandcheck.New(client,
		claudeexecutor.WithModel[*brandcheck.Request, *brandcheck.Result](cfg.Model),
		claudeexecutor.WithMaxTokens[*brandcheck.Request, *brandcheck.Result](cfg.MaxTokens),
		claudeexecutor.WithTemperature[*brandcheck.Request, *brandcheck.Result](cfg.Temperature),
	)
	if err != nil {
		clog.FatalContextf(ctx, "creating brand agent: %v", err)
	}

	agg, err := aggregate.New(client,
		claudeexecutor.WithModel[*aggregate.Request, *aggregate.Result](cfg.Model),
		claudeexecutor.WithMaxTokens[*aggregate.Request, *aggregate.Result](cfg.MaxTokens),
		claudeexecutor.WithTemperature[*aggregate.Request, *aggregate.Result](cfg.Temperature),
	)
	if err != nil {
		clog.FatalContextf(ctx, "creating aggregator: %v", err)
	}

	ev := evaluator.New(st, media.NewHTTPFetcher(), size, brand, agg)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           server.New(ev, st).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			clog.ErrorContextf(ctx, "shutting down: %v", err)
		}
	}()

	clog.InfoContextf(ctx, "Starting evaluation server on port %d (model %s)", cfg.Port, cfg.Model)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		clog.FatalContextf(ctx, "server failed: %v", err)
	}
}
