package flock

import (
	"math/rand/v2"

	"github.com/lao-tseu-is-alive/go-cursor-flock/internal/pointer"
	"github.com/lao-tseu-is-alive/go-cursor-flock/pkg/geometry"
)

// Agent is one boid. It is a plain record owned by the Flock's slice;
// other agents refer to it by index only.
type Agent struct {
	Pos  geometry.Vector2D
	Vel  geometry.Vector2D
	Size float64

	// Fixed at spawn time.
	SeparationStrength float64
	AlignmentStrength  float64
	CohesionStrength   float64
	SeparationDistance float64
}

// NewAgent creates an agent at a random position inside the viewport
// with a random velocity in [-1,1) per axis and randomly sampled coefficients.
func NewAgent(vp Viewport, p *Params, rng *rand.Rand) Agent {
	return Agent{
		Pos: geometry.Vector2D{
			X: rng.Float64() * vp.Width,
			Y: rng.Float64() * vp.Height,
		},
		Vel: geometry.Vector2D{
			X: (rng.Float64() - 0.5) * 2,
			Y: (rng.Float64() - 0.5) * 2,
		},
		Size:               p.AgentSize,
		SeparationStrength: sample(p.SeparationStrength, rng),
		AlignmentStrength:  sample(p.AlignmentStrength, rng),
		CohesionStrength:   sample(p.CohesionStrength, rng),
		SeparationDistance: p.AgentSize * p.SeparationFactor,
	}
}

// UpdateAgent advances agents[i] by one tick. agents holds the whole flock,
// agents[i] included, so it is never empty. Agents earlier in the slice have
// already moved this tick and are seen at their new state.
func UpdateAgent(agents []Agent, i int, f Frame, p *Params, rng *rand.Rand) {
	self := &agents[i]

	center := centroid(agents)

	var separation, alignment geometry.Vector2D
	interactions := 0
	for j := range agents {
		if j == i {
			continue
		}
		other := &agents[j]
		away := self.Pos.Sub(other.Pos)
		dist := away.Len()

		// Coincident agents have no direction to push along.
		if dist > 0 && dist < self.SeparationDistance {
			falloff := 1 - dist/self.SeparationDistance
			separation = separation.Add(away.Mul(falloff / dist))
			interactions++
		}
		if dist < p.AlignmentRadius {
			alignment = alignment.Add(other.Vel)
			interactions++
		}
	}

	// One counter for both terms: it counts interactions, not neighbours.
	if interactions > 0 {
		n := float64(interactions)
		separation, _ = separation.Div(n)
		alignment, _ = alignment.Div(n)
		alignment = alignment.Add(jitter(p.AlignmentJitter, rng))
	}

	cohesion := center.Sub(self.Pos)
	// The centroid, not the agent, is pulled toward the pointer.
	attraction := f.Pointer.Pos.Sub(center)

	self.Vel = self.Vel.
		Add(separation.Mul(self.SeparationStrength)).
		Add(alignment.Mul(self.AlignmentStrength)).
		Add(cohesion.Mul(self.CohesionStrength)).
		Add(attraction.Mul(p.PointerAttraction)).
		Add(jitter(p.VelocityJitter, rng))

	self.Vel = self.Vel.Limit(p.MaxSpeed)
	self.Pos = self.Pos.Add(self.Vel)

	// Velocity is left alone: an agent pushing outward stays pinned to the edge.
	self.Pos = self.Pos.Clamp(f.Viewport.Width, f.Viewport.Height)
}

// Draw issues one sprite for the agent, centred on its position.
func (a *Agent) Draw(r Renderer, c pointer.Category, renderScale float64) {
	edge := a.Size * renderScale
	r.DrawSprite(c, a.Pos.X-edge/2, a.Pos.Y-edge/2, edge, edge)
}

func centroid(agents []Agent) geometry.Vector2D {
	var sum geometry.Vector2D
	for j := range agents {
		sum = sum.Add(agents[j].Pos)
	}
	c, _ := sum.Div(float64(len(agents)))
	return c
}

// jitter returns independent noise in [-width/2, width/2) per axis.
func jitter(width float64, rng *rand.Rand) geometry.Vector2D {
	return geometry.Vector2D{
		X: (rng.Float64() - 0.5) * width,
		Y: (rng.Float64() - 0.5) * width,
	}
}

func sample(r Range, rng *rand.Rand) float64 {
	return r.Min + rng.Float64()*(r.Max-r.Min)
}
