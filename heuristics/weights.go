package heuristics

import (
	"encoding/json"
	"fmt"
	"os"
)

const (
	MaterialWeight    = 3.0
	MobilityWeight    = 0.05
	CenterWeight      = 0.3
	DevelopmentWeight = 0.8
	PromotionWeight   = 3.0
)

// Center control bonuses per piece.
const (
	CenterPawnBonus    = 2.0
	CenterPieceBonus   = 0.5
	CenterSupportBonus = 0.2
)

// Development bonuses per piece moved off its home square.
const (
	MinorDevelopedBonus = 2.0
	MajorDevelopedBonus = 0.2
)

// Weights are the coefficients of the linear evaluation.
type Weights struct {
	Material    float64 `json:"material"`
	Mobility    float64 `json:"mobility"`
	Center      float64 `json:"center"`
	Development float64 `json:"development"`
	Promotion   float64 `json:"promotion"`
}

var DefaultWeights = Weights{
	Material:    MaterialWeight,
	Mobility:    MobilityWeight,
	Center:      CenterWeight,
	Development: DevelopmentWeight,
	Promotion:   PromotionWeight,
}

// LoadWeights reads a JSON weights file. Fields absent from the file keep
// their default value.
func LoadWeights(path string) (Weights, error) {
	w := DefaultWeights
	data, err := os.ReadFile(path)
	if err != nil {
		return w, err
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return DefaultWeights, fmt.Errorf("parse weights %s: %w", path, err)
	}
	return w, nil
}
