/*
Copyright 2025 BrandLens Authors
SPDX-License-Identifier: Apache-2.0
*/

package store

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Asset is a user-submitted creative image or video under evaluation. Assets
// are created by upstream ingestion and read-only to the evaluation pipeline
// except for the evaluation link.
type Asset struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	MediaPath string             `bson:"media_path" json:"mediaPath"`
	Prompt    string             `bson:"prompt" json:"prompt"`
	Model     string             `bson:"llm_model,omitempty" json:"llmModel,omitempty"`
	Channel   string             `bson:"channel" json:"channel"`
	UserID    string             `bson:"user_id" json:"userId"`
	BrandID   string             `bson:"brand_id" json:"brandId"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`

	// Width and Height are optional seeded dimensions. When zero, dimensions
	// are probed from the fetched media instead. Video assets must carry them
	// since video headers are not probed.
	Width  int `bson:"width,omitempty" json:"width,omitempty"`
	Height int `bson:"height,omitempty" json:"height,omitempty"`

	// EvaluationID links to this asset's single evaluation; nil until the
	// first evaluation completes.
	EvaluationID *primitive.ObjectID `bson:"evaluation_id,omitempty" json:"evaluationId,omitempty"`
}

// Brand is the brand identity guidelines an asset is judged against.
type Brand struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	BrandID     string             `bson:"brand_id" json:"brandId"`
	Name        string             `bson:"brand_name" json:"brandName"`
	Description string             `bson:"brand_description,omitempty" json:"brandDescription,omitempty"`
	Style       string             `bson:"style,omitempty" json:"style,omitempty"`
	Vision      string             `bson:"brand_vision,omitempty" json:"brandVision,omitempty"`
	Voice       string             `bson:"brand_voice,omitempty" json:"brandVoice,omitempty"`
	Colors      string             `bson:"colors,omitempty" json:"colors,omitempty"`
}

// SizeCompliance is the persisted copy of a size compliance judgment.
type SizeCompliance struct {
	Score     float64 `bson:"score" json:"score"`
	Reasoning string  `bson:"reasoning" json:"reasoning"`
	IsOptimal bool    `bson:"is_optimal" json:"isOptimal"`
}

// BrandCompliance is the persisted copy of a brand compliance judgment.
type BrandCompliance struct {
	Score            float64 `bson:"score" json:"score"`
	StyleAlignment   float64 `bson:"style_alignment" json:"styleAlignment"`
	ColorCompliance  float64 `bson:"color_compliance" json:"colorCompliance"`
	VoiceConsistency float64 `bson:"voice_consistency" json:"voiceConsistency"`
	VisionAlignment  float64 `bson:"vision_alignment" json:"visionAlignment"`
	Reasoning        string  `bson:"reasoning" json:"reasoning"`
	Strengths        string  `bson:"strengths" json:"strengths"`
	Improvements     string  `bson:"improvements" json:"improvements"`
}

// Evaluation is the authoritative judgment for exactly one asset: the final
// score and summary plus copies of both partial results. An asset has at most
// one evaluation; re-evaluation updates it in place.
type Evaluation struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AssetID         primitive.ObjectID `bson:"asset_id" json:"assetId"`
	Score           float64            `bson:"score" json:"score"`
	Summary         string             `bson:"summary" json:"summary"`
	SizeCompliance  SizeCompliance     `bson:"size_compliance" json:"sizeCompliance"`
	BrandCompliance BrandCompliance    `bson:"brand_compliance" json:"brandCompliance"`
	CreatedAt       time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updated_at" json:"updatedAt"`
}
