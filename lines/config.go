package lines

import (
	"fmt"
	"math"
)

// DefaultEstimatedLineHeight is the height of a line which has not been
// measured yet.
const DefaultEstimatedLineHeight = 12.0

// heightEpsilon is the smallest height difference SetHeight reacts to.
const heightEpsilon = 1e-9

// Config configures a line manager.
type Config struct {
	// EstimatedLineHeight is assigned to new lines until they are measured.
	// Zero selects DefaultEstimatedLineHeight.
	EstimatedLineHeight float64
}

func (cfg Config) normalized() Config {
	if cfg.EstimatedLineHeight == 0 {
		cfg.EstimatedLineHeight = DefaultEstimatedLineHeight
	}
	return cfg
}

func (cfg Config) validate() error {
	h := cfg.EstimatedLineHeight
	if h < 0 || math.IsNaN(h) || math.IsInf(h, 0) {
		return fmt.Errorf("%w: estimated line height %v", ErrInvalidConfig, h)
	}
	return nil
}
