package world

import "fmt"

// Default generation settings.
const (
	DefaultMaxDepth  = 3
	DefaultOddsPower = 1.0
)

// GenConfig holds the settings for one generation pass.
type GenConfig struct {
	MaxDepth  int     // Deepest regular room layer
	OddsPower float64 // Exponent shaping how fast branching odds fall with depth
	Fixtures  Fixtures
}

// DefaultGenConfig returns the standard settings with built-in fixtures.
func DefaultGenConfig() GenConfig {
	return GenConfig{
		MaxDepth:  DefaultMaxDepth,
		OddsPower: DefaultOddsPower,
		Fixtures:  DefaultFixtures(),
	}
}

// Validate checks that the settings can drive generation.
func (c GenConfig) Validate() error {
	if c.MaxDepth <= 0 {
		return fmt.Errorf("max depth %d: %w", c.MaxDepth, ErrInvalidConfig)
	}
	if c.OddsPower <= 0 {
		return fmt.Errorf("odds power %g: %w", c.OddsPower, ErrInvalidConfig)
	}
	return nil
}
