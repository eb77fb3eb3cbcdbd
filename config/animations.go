package config

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"my-game/components"
)

//go:embed animations.json
var defaultAnimations []byte

// ErrMissingAnimation is returned when a facing/motion pair has no range
var ErrMissingAnimation = errors.New("missing animation range")

// MotionRanges are the idle and walking ranges of one facing
type MotionRanges struct {
	Idle    *components.AnimationIndices `json:"idle"`
	Walking *components.AnimationIndices `json:"walking"`
}

// AnimationConfig describes the player sprite sheet layout
type AnimationConfig struct {
	FrameWidth  int                     `json:"frameWidth"`
	FrameHeight int                     `json:"frameHeight"`
	Animations  map[string]MotionRanges `json:"animations"`
}

// DefaultAnimationConfig returns the built-in sprite sheet layout
func DefaultAnimationConfig() *AnimationConfig {
	cfg, err := ParseAnimationConfig(defaultAnimations)
	if err != nil {
		panic(fmt.Sprintf("config: embedded animations.json is invalid: %v", err))
	}
	return cfg
}

// LoadAnimationConfig reads a layout from a JSON file.
// An empty path returns the built-in layout.
func LoadAnimationConfig(path string) (*AnimationConfig, error) {
	if path == "" {
		return DefaultAnimationConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read animation config: %w", err)
	}

	cfg, err := ParseAnimationConfig(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load animation config from %s: %w", path, err)
	}
	return cfg, nil
}

// ParseAnimationConfig decodes and validates a JSON layout
func ParseAnimationConfig(data []byte) (*AnimationConfig, error) {
	var cfg AnimationConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if cfg.FrameWidth == 0 {
		cfg.FrameWidth = SpriteFrameWidth
	}
	if cfg.FrameHeight == 0 {
		cfg.FrameHeight = SpriteFrameHeight
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every facing has a well-formed idle and walking range
func (c *AnimationConfig) Validate() error {
	if c.FrameWidth < 0 || c.FrameHeight < 0 {
		return fmt.Errorf("frame size %dx%d is negative", c.FrameWidth, c.FrameHeight)
	}

	for name := range c.Animations {
		if _, err := components.ParseDirection(name); err != nil {
			return err
		}
	}

	for _, d := range components.Directions {
		ranges, ok := c.Animations[d.String()]
		if !ok || ranges.Idle == nil {
			return fmt.Errorf("%w: %s idle", ErrMissingAnimation, d)
		}
		if ranges.Walking == nil {
			return fmt.Errorf("%w: %s walking", ErrMissingAnimation, d)
		}
		if err := ranges.Idle.Validate(); err != nil {
			return fmt.Errorf("%s idle: %w", d, err)
		}
		if err := ranges.Walking.Validate(); err != nil {
			return fmt.Errorf("%s walking: %w", d, err)
		}
	}
	return nil
}

// Set builds the lookup table used by the player
func (c *AnimationConfig) Set() components.AnimationSet {
	var set components.AnimationSet
	for _, d := range components.Directions {
		ranges := c.Animations[d.String()]
		set.Set(d, components.Idle, *ranges.Idle)
		set.Set(d, components.Walking, *ranges.Walking)
	}
	return set
}

// Overlaps describes every pair of ranges sharing a frame.
// Overlaps are allowed but usually an authoring mistake.
func (c *AnimationConfig) Overlaps() []string {
	type named struct {
		name string
		r    components.AnimationIndices
	}
	var all []named
	for _, d := range components.Directions {
		ranges := c.Animations[d.String()]
		all = append(all,
			named{d.String() + " idle", *ranges.Idle},
			named{d.String() + " walking", *ranges.Walking},
		)
	}

	var out []string
	for i := 0; i < len(all); i++ {
		for j := i + 1; j < len(all); j++ {
			if all[i].r.Overlaps(all[j].r) {
				out = append(out, fmt.Sprintf("%s (%v) overlaps %s (%v)", all[i].name, all[i].r, all[j].name, all[j].r))
			}
		}
	}
	sort.Strings(out)
	return out
}

// MaxFrame returns the highest frame index referenced by any range
func (c *AnimationConfig) MaxFrame() int {
	highest := 0
	for _, ranges := range c.Animations {
		if ranges.Idle != nil && ranges.Idle.Last > highest {
			highest = ranges.Idle.Last
		}
		if ranges.Walking != nil && ranges.Walking.Last > highest {
			highest = ranges.Walking.Last
		}
	}
	return highest
}
