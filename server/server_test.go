/*
Copyright 2025 BrandLens Authors
SPDX-License-Identifier: Apache-2.0
*/

package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"brandlens.dev/brandlens/agents/result"
	"brandlens.dev/brandlens/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakePipeline struct {
	eval *store.Evaluation
	err  error
}

func (f *fakePipeline) Evaluate(context.Context, string) (*store.Evaluation, error) {
	return f.eval, f.err
}

type fakeDirectory struct {
	asset *store.Asset
	brand *store.Brand
	eval  *store.Evaluation
	evals []store.Evaluation
	err   error
}

func (f *fakeDirectory) GetBrand(context.Context, string) (*store.Brand, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.brand, nil
}

func (f *fakeDirectory) GetAsset(context.Context, string) (*store.Asset, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.asset, nil
}

func (f *fakeDirectory) ListAssets(context.Context) ([]store.Asset, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.asset == nil {
		return nil, nil
	}
	return []store.Asset{*f.asset}, nil
}

func (f *fakeDirectory) GetEvaluation(context.Context, string) (*store.Evaluation, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.eval, nil
}

func (f *fakeDirectory) GetEvaluationByAsset(context.Context, primitive.ObjectID) (*store.Evaluation, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.eval, nil
}

func (f *fakeDirectory) ListEvaluations(context.Context) ([]store.Evaluation, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.evals, nil
}

func serve(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestEvaluate(t *testing.T) {
	eval := &store.Evaluation{ID: primitive.NewObjectID(), Score: 7.5, Summary: "solid"}

	for _, tc := range []struct {
		name       string
		body       string
		pipeline   *fakePipeline
		wantStatus int
		wantOK     bool
	}{{
		name:       "happy path",
		body:       `{"id": "abc123"}`,
		pipeline:   &fakePipeline{eval: eval},
		wantStatus: http.StatusOK,
		wantOK:     true,
	}, {
		name:       "missing id",
		body:       `{}`,
		pipeline:   &fakePipeline{eval: eval},
		wantStatus: http.StatusBadRequest,
	}, {
		name:       "malformed body",
		body:       `{"id":`,
		pipeline:   &fakePipeline{eval: eval},
		wantStatus: http.StatusBadRequest,
	}, {
		name:       "unknown asset",
		body:       `{"id": "missing"}`,
		pipeline:   &fakePipeline{err: store.ErrNotFound},
		wantStatus: http.StatusNotFound,
	}, {
		name:       "pipeline error",
		body:       `{"id": "missing"}`,
		pipeline:   &fakePipeline{err: errors.New("boom")},
		wantStatus: http.StatusInternalServerError,
	}, {
		name: "extraction failure",
		body: `{"id": "abc123"}`,
		pipeline: &fakePipeline{err: &result.ExtractionError{
			Raw: "I cannot evaluate this image.",
			Err: errors.New("no JSON payload found"),
		}},
		wantStatus: http.StatusBadGateway,
	}} {
		t.Run(tc.name, func(t *testing.T) {
			s := New(tc.pipeline, &fakeDirectory{})
			rec := serve(t, s.Handler(), http.MethodPost, "/api/evaluate", tc.body)
			assert.Equal(t, tc.wantStatus, rec.Code)

			var resp struct {
				Success bool            `json:"success"`
				Data    json.RawMessage `json:"data"`
				Error   string          `json:"error"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tc.wantOK, resp.Success)
			if tc.wantOK {
				assert.NotEmpty(t, resp.Data)
			} else {
				assert.NotEmpty(t, resp.Error)
			}
		})
	}
}

func TestReadRoutes(t *testing.T) {
	asset := &store.Asset{ID: primitive.NewObjectID(), MediaPath: "https://cdn.example.com/a.png"}
	brand := &store.Brand{ID: primitive.NewObjectID(), BrandID: "stride", Name: "Stride"}
	eval := &store.Evaluation{ID: primitive.NewObjectID(), AssetID: asset.ID, Score: 8.2}

	dir := &fakeDirectory{asset: asset, brand: brand, eval: eval, evals: []store.Evaluation{*eval}}
	h := New(&fakePipeline{}, dir).Handler()

	for _, tc := range []struct {
		name string
		path string
	}{
		{name: "list assets", path: "/api/assets"},
		{name: "asset evaluation", path: "/api/assets/" + asset.ID.Hex() + "/evaluation"},
		{name: "get brand", path: "/api/brands/stride"},
		{name: "list evaluations", path: "/api/evaluations"},
		{name: "get evaluation", path: "/api/evaluations/" + eval.ID.Hex()},
	} {
		t.Run(tc.name, func(t *testing.T) {
			rec := serve(t, h, http.MethodGet, tc.path, "")
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), `"success":true`)
		})
	}
}

func TestReadRoutesNotFound(t *testing.T) {
	h := New(&fakePipeline{}, &fakeDirectory{err: store.ErrNotFound}).Handler()

	for _, path := range []string{
		"/api/assets/" + primitive.NewObjectID().Hex() + "/evaluation",
		"/api/brands/unknown",
		"/api/evaluations/" + primitive.NewObjectID().Hex(),
	} {
		rec := serve(t, h, http.MethodGet, path, "")
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
	}
}

func TestHealthz(t *testing.T) {
	h := New(&fakePipeline{}, &fakeDirectory{}).Handler()
	rec := serve(t, h, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
