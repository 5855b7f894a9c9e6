package ports

import (
	"context"
	"math/rand"
)

// RNGPort provides seeded random number generation for deterministic
// operations. Randomness is always an explicit injected value rather than a
// global generator, so reproducibility and parallel-safety are visible in the
// wiring.
type RNGPort interface {
	// SeededStream creates a deterministic random number generator for a
	// named operation. The same (name, seed) pair always yields the same
	// stream.
	SeededStream(ctx context.Context, name string, seed int64) (*rand.Rand, error)

	// Stream derives an independent deterministic stream for one
	// run/stage/key combination, so parallel workers never share or
	// correlate randomness.
	Stream(ctx context.Context, runID, stageName, streamKey string, baseSeed int64) (*rand.Rand, error)

	// ValidateSeed replays a stream and checks it against expected draws.
	ValidateSeed(ctx context.Context, name string, seed int64, expected []float64) error
}
