/*
Copyright 2025 BrandLens Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package server exposes the evaluation pipeline and the stored documents
// over HTTP. Authentication is an upstream concern; this surface stays thin.
package server

import (
	"context"
	"errors"
	"net/http"

	"brandlens.dev/brandlens/agents/result"
	"brandlens.dev/brandlens/store"
	"github.com/chainguard-dev/clog"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var evaluationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "brandlens_evaluations_total",
	Help: "Evaluation requests by outcome.",
}, []string{"outcome"})

// Pipeline triggers a full evaluation for one asset.
type Pipeline interface {
	Evaluate(ctx context.Context, assetID string) (*store.Evaluation, error)
}

// Directory is the read side consumed by presentation layers.
type Directory interface {
	GetAsset(ctx context.Context, id string) (*store.Asset, error)
	ListAssets(ctx context.Context) ([]store.Asset, error)
	GetBrand(ctx context.Context, brandID string) (*store.Brand, error)
	GetEvaluation(ctx context.Context, id string) (*store.Evaluation, error)
	GetEvaluationByAsset(ctx context.Context, assetID primitive.ObjectID) (*store.Evaluation, error)
	ListEvaluations(ctx context.Context) ([]store.Evaluation, error)
}

// Server routes HTTP requests onto the pipeline and the directory.
type Server struct {
	pipeline  Pipeline
	directory Directory
}

// New constructs a Server.
func New(pipeline Pipeline, directory Directory) *Server {
	return &Server{pipeline: pipeline, directory: directory}
}

// Handler builds the gin engine with all routes registered.
func (s *Server) Handler() http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.Default())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.POST("/evaluate", s.evaluate)
		api.GET("/assets", s.listAssets)
		api.GET("/assets/:id/evaluation", s.assetEvaluation)
		api.GET("/brands/:brandId", s.getBrand)
		api.GET("/evaluations", s.listEvaluations)
		api.GET("/evaluations/:id", s.getEvaluation)
	}

	return r
}

type evaluateRequest struct {
	ID string `json:"id"`
}

func (s *Server) evaluate(c *gin.Context) {
	var req evaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == "" {
		evaluationsTotal.WithLabelValues("bad_request").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "asset id is required"})
		return
	}

	eval, err := s.pipeline.Evaluate(c.Request.Context(), req.ID)
	if err != nil {
		status, outcome := classify(err)
		evaluationsTotal.WithLabelValues(outcome).Inc()
		clog.FromContext(c.Request.Context()).
			With("asset", req.ID).
			With("error", err).
			Error("Evaluation failed")
		c.JSON(status, gin.H{"success": false, "error": err.Error()})
		return
	}

	evaluationsTotal.WithLabelValues("ok").Inc()
	c.JSON(http.StatusOK, gin.H{"success": true, "data": eval})
}

func (s *Server) listAssets(c *gin.Context) {
	assets, err := s.directory.ListAssets(c.Request.Context())
	if err != nil {
		status, _ := classify(err)
		c.JSON(status, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": assets, "count": len(assets)})
}

func (s *Server) assetEvaluation(c *gin.Context) {
	asset, err := s.directory.GetAsset(c.Request.Context(), c.Param("id"))
	if err != nil {
		status, _ := classify(err)
		c.JSON(status, gin.H{"success": false, "error": err.Error()})
		return
	}

	eval, err := s.directory.GetEvaluationByAsset(c.Request.Context(), asset.ID)
	if err != nil {
		status, _ := classify(err)
		c.JSON(status, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": eval})
}

func (s *Server) getBrand(c *gin.Context) {
	brand, err := s.directory.GetBrand(c.Request.Context(), c.Param("brandId"))
	if err != nil {
		status, _ := classify(err)
		c.JSON(status, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": brand})
}

func (s *Server) listEvaluations(c *gin.Context) {
	evals, err := s.directory.ListEvaluations(c.Request.Context())
	if err != nil {
		status, _ := classify(err)
		c.JSON(status, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": evals, "count": len(evals)})
}

func (s *Server) getEvaluation(c *gin.Context) {
	eval, err := s.directory.GetEvaluation(c.Request.Context(), c.Param("id"))
	if err != nil {
		status, _ := classify(err)
		c.JSON(status, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": eval})
}

// classify maps pipeline errors onto HTTP statuses and metric outcomes.
func classify(err error) (int, string) {
	var extErr *result.ExtractionError
	switch {
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound, "not_found"
	case errors.As(err, &extErr):
		return http.StatusBadGateway, "extraction_failed"
	default:
		return http.StatusInternalServerError, "error"
	}
}
