package flock

import "time"

// Range is a half-open interval [Min, Max) sampled uniformly.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Params holds the tunable constants of the flocking rule.
// DefaultParams reproduces the reference behaviour.
type Params struct {
	MaxSpeed          float64 // speed cap, units per tick
	PointerAttraction float64 // weight of (pointer - centroid)
	AlignmentRadius   float64 // fixed neighbour radius for alignment, independent of size

	AgentSize          float64 // base radius of a new agent
	SeparationFactor   float64 // separationDistance = SeparationFactor * size
	RenderScale        float64 // sprite edge = RenderScale * size
	AlignmentJitter    float64 // full width of the alignment noise, centred on 0
	VelocityJitter     float64 // full width of the per-tick velocity noise, centred on 0
	SeparationStrength Range
	AlignmentStrength  Range
	CohesionStrength   Range

	SpawnIntervalMin time.Duration
	SpawnIntervalMax time.Duration
}

func DefaultParams() Params {
	return Params{
		MaxSpeed:           3.0,
		PointerAttraction:  0.005,
		AlignmentRadius:    50,
		AgentSize:          8,
		SeparationFactor:   10,
		RenderScale:        5,
		AlignmentJitter:    0.5,
		VelocityJitter:     0.1,
		SeparationStrength: Range{Min: 0.08, Max: 0.48},
		AlignmentStrength:  Range{Min: 0.05, Max: 0.07},
		CohesionStrength:   Range{Min: 0.01, Max: 0.015},
		SpawnIntervalMin:   3000 * time.Millisecond,
		SpawnIntervalMax:   5000 * time.Millisecond,
	}
}
