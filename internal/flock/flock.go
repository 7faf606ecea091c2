package flock

import (
	"math/rand/v2"
	"time"

	"github.com/lao-tseu-is-alive/go-cursor-flock/internal/pointer"
	golog "github.com/tochemey/goakt/v3/log"
)

// Viewport is the current size of the drawable surface.
type Viewport struct {
	Width, Height float64
}

// Frame is the read-only context of one tick: the clock,
// the latest pointer snapshot and the latest viewport size.
type Frame struct {
	Now      time.Time
	Pointer  pointer.Snapshot
	Viewport Viewport
}

// Renderer is the drawing surface the flock paints on.
type Renderer interface {
	Clear()
	DrawSprite(c pointer.Category, x, y, w, h float64)
}

// Flock owns every live agent and drives them once per tick.
// It is not safe for concurrent use; the game loop is its only caller.
type Flock struct {
	agents    []Agent
	params    Params
	rng       *rand.Rand
	logger    golog.Logger
	lastSpawn time.Time
	threshold time.Duration
}

func New(p Params, rng *rand.Rand, logger golog.Logger) *Flock {
	if logger == nil {
		logger = golog.DiscardLogger
	}
	f := &Flock{
		params: p,
		rng:    rng,
		logger: logger,
	}
	f.threshold = f.drawThreshold()
	return f
}

// Tick clears the surface, maybe spawns one agent, then updates and draws
// every agent that existed before the spawn. A newborn joins on the next tick.
func (f *Flock) Tick(fr Frame, r Renderer) {
	r.Clear()

	n := len(f.agents)
	if f.spawnDue(fr.Now) {
		f.spawn(fr)
	}

	for i := 0; i < n; i++ {
		UpdateAgent(f.agents[:n], i, fr, &f.params, f.rng)
		f.agents[i].Draw(r, fr.Pointer.Category, f.params.RenderScale)
	}
}

// Len is the current population.
func (f *Flock) Len() int {
	return len(f.agents)
}

// Agents returns a copy of the agents, in spawn order.
func (f *Flock) Agents() []Agent {
	out := make([]Agent, len(f.agents))
	copy(out, f.agents)
	return out
}

// spawnDue is true on the very first tick, then whenever the time since
// the last spawn exceeds the current threshold.
func (f *Flock) spawnDue(now time.Time) bool {
	return f.lastSpawn.IsZero() || now.Sub(f.lastSpawn) > f.threshold
}

func (f *Flock) spawn(fr Frame) {
	a := NewAgent(fr.Viewport, &f.params, f.rng)
	f.agents = append(f.agents, a)
	f.lastSpawn = fr.Now
	f.threshold = f.drawThreshold()
	f.logger.Debugf("spawned agent #%d at %s, next spawn in %s", len(f.agents), a.Pos, f.threshold)
}

// drawThreshold samples the next spawn delay in [SpawnIntervalMin, SpawnIntervalMax).
func (f *Flock) drawThreshold() time.Duration {
	span := f.params.SpawnIntervalMax - f.params.SpawnIntervalMin
	if span <= 0 {
		return f.params.SpawnIntervalMin
	}
	return f.params.SpawnIntervalMin + time.Duration(f.rng.Int64N(int64(span)))
}
