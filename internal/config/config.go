package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/lao-tseu-is-alive/go-cursor-flock/internal/flock"
	"github.com/lao-tseu-is-alive/go-cursor-flock/internal/pointer"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

type Config struct {
	Window  Window  `json:"window"`
	Flock   Flock   `json:"flock"`
	Sprites Sprites `json:"sprites"`

	// Seed makes a run reproducible; 0 picks a random seed.
	Seed uint64 `json:"seed"`
	// DebugOverlay prints FPS, timings and the population on screen.
	DebugOverlay bool `json:"debugOverlay"`
}

type Window struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Title  string `json:"title"`
}

// Flock mirrors flock.Params with JSON friendly units.
type Flock struct {
	MaxSpeed          float64 `json:"maxSpeed"`
	PointerAttraction float64 `json:"pointerAttraction"`
	AlignmentRadius   float64 `json:"alignmentRadius"`

	AgentSize          float64     `json:"agentSize"`
	SeparationFactor   float64     `json:"separationFactor"`
	RenderScale        float64     `json:"renderScale"`
	AlignmentJitter    float64     `json:"alignmentJitter"`
	VelocityJitter     float64     `json:"velocityJitter"`
	SeparationStrength flock.Range `json:"separationStrength"`
	AlignmentStrength  flock.Range `json:"alignmentStrength"`
	CohesionStrength   flock.Range `json:"cohesionStrength"`

	SpawnIntervalMinMs int `json:"spawnIntervalMinMs"`
	SpawnIntervalMaxMs int `json:"spawnIntervalMaxMs"`
}

// Sprites are file paths or http(s) URLs of PNG images. Empty means built-in glyph.
type Sprites struct {
	Default       string `json:"default"`
	Text          string `json:"text"`
	Clickable     string `json:"clickable"`
	LoadTimeoutMs int    `json:"loadTimeoutMs"`
}

func DefaultConfig() *Config {
	p := flock.DefaultParams()
	return &Config{
		Window: Window{
			Width:  1024,
			Height: 768,
			Title:  "Cursor Flock",
		},
		Flock: Flock{
			MaxSpeed:           p.MaxSpeed,
			PointerAttraction:  p.PointerAttraction,
			AlignmentRadius:    p.AlignmentRadius,
			AgentSize:          p.AgentSize,
			SeparationFactor:   p.SeparationFactor,
			RenderScale:        p.RenderScale,
			AlignmentJitter:    p.AlignmentJitter,
			VelocityJitter:     p.VelocityJitter,
			SeparationStrength: p.SeparationStrength,
			AlignmentStrength:  p.AlignmentStrength,
			CohesionStrength:   p.CohesionStrength,
			SpawnIntervalMinMs: int(p.SpawnIntervalMin / time.Millisecond),
			SpawnIntervalMaxMs: int(p.SpawnIntervalMax / time.Millisecond),
		},
		Sprites: Sprites{
			LoadTimeoutMs: 5000,
		},
	}
}

// LoadConfig loads configuration from a JSON file and validates it against the schema.
// Fields missing from the file keep their DefaultConfig value.
func LoadConfig(configFile string, schemaFile string) (*Config, error) {
	// 1. Compile Schema
	sch, err := jsonschema.Compile(schemaFile)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	// 2. Read Config File
	b, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}

	// 3. Validate
	var v interface{}
	if err := json.NewDecoder(bytes.NewReader(b)).Decode(&v); err != nil {
		return nil, fmt.Errorf("failed to decode config json: %w", err)
	}
	if err := sch.Validate(v); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// 4. Unmarshal over the defaults
	cfg := DefaultConfig()
	if err := json.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the rules a JSON schema cannot express.
func (c *Config) Validate() error {
	var errs []error
	if c.Flock.SpawnIntervalMinMs > c.Flock.SpawnIntervalMaxMs {
		errs = append(errs, fmt.Errorf("spawnIntervalMinMs (%d) is greater than spawnIntervalMaxMs (%d)",
			c.Flock.SpawnIntervalMinMs, c.Flock.SpawnIntervalMaxMs))
	}
	for name, r := range map[string]flock.Range{
		"separationStrength": c.Flock.SeparationStrength,
		"alignmentStrength":  c.Flock.AlignmentStrength,
		"cohesionStrength":   c.Flock.CohesionStrength,
	} {
		if r.Min > r.Max {
			errs = append(errs, fmt.Errorf("%s: min (%g) is greater than max (%g)", name, r.Min, r.Max))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// FlockParams converts the flock section into simulation parameters.
func (c *Config) FlockParams() flock.Params {
	f := c.Flock
	return flock.Params{
		MaxSpeed:           f.MaxSpeed,
		PointerAttraction:  f.PointerAttraction,
		AlignmentRadius:    f.AlignmentRadius,
		AgentSize:          f.AgentSize,
		SeparationFactor:   f.SeparationFactor,
		RenderScale:        f.RenderScale,
		AlignmentJitter:    f.AlignmentJitter,
		VelocityJitter:     f.VelocityJitter,
		SeparationStrength: f.SeparationStrength,
		AlignmentStrength:  f.AlignmentStrength,
		CohesionStrength:   f.CohesionStrength,
		SpawnIntervalMin:   time.Duration(f.SpawnIntervalMinMs) * time.Millisecond,
		SpawnIntervalMax:   time.Duration(f.SpawnIntervalMaxMs) * time.Millisecond,
	}
}

// SpriteSources maps each category to its configured location.
func (c *Config) SpriteSources() map[pointer.Category]string {
	return map[pointer.Category]string{
		pointer.CategoryDefault:   c.Sprites.Default,
		pointer.CategoryText:      c.Sprites.Text,
		pointer.CategoryClickable: c.Sprites.Clickable,
	}
}

// SpriteTimeout is the per-sprite load deadline.
func (c *Config) SpriteTimeout() time.Duration {
	return time.Duration(c.Sprites.LoadTimeoutMs) * time.Millisecond
}
