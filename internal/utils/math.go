package utils

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/KirkDiggler/rpg-toolkit/dice"
)

// ErrInvalidRange is returned when min exceeds max
var ErrInvalidRange = errors.New("invalid range")

// RandomFloat returns a random float64 in [0.0, 1.0)
func RandomFloat() float64 {
	return rand.Float64() //nolint:gosec // Game logic randomness, not security critical
}

// RollBetween returns an integer uniformly drawn from [min, max] inclusive,
// using a single die of size max-min+1.
func RollBetween(roller dice.Roller, min, max int) (int, error) {
	if min > max {
		return 0, fmt.Errorf("%w: [%d, %d]", ErrInvalidRange, min, max)
	}
	if min == max {
		return min, nil
	}

	face, err := roller.Roll(max - min + 1)
	if err != nil {
		return 0, fmt.Errorf("roll d%d: %w", max-min+1, err)
	}
	return min + face - 1, nil
}

// Clamp01 bounds a probability to [0, 1]
func Clamp01(p float64) float64 {
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	default:
		return p
	}
}
