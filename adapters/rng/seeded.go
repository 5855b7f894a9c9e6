package rng

import (
	"context"
	"fmt"
	"math"
	"math/rand"
)

// SeededRNG derives deterministic math/rand streams from operation names and
// a base seed. The same names and seed always yield the same stream, and
// distinct stream keys yield uncorrelated streams, which lets the permutation
// engine fan trials out across workers without sharing one generator.
type SeededRNG struct{}

func NewSeededRNG() *SeededRNG {
	return &SeededRNG{}
}

// SeededStream creates a deterministic random number generator for a named
// operation.
func (s *SeededRNG) SeededStream(ctx context.Context, name string, seed int64) (*rand.Rand, error) {
	return rand.New(rand.NewSource(seed + int64(hashString(name)))), nil
}

// Stream derives an independent deterministic stream for a run/stage/key
// combination by folding each non-empty name into the base seed.
func (s *SeededRNG) Stream(ctx context.Context, runID, stageName, streamKey string, baseSeed int64) (*rand.Rand, error) {
	seed := baseSeed
	if runID != "" {
		seed += int64(hashString(runID))
	}
	if stageName != "" {
		seed += int64(hashString(stageName))
	}
	if streamKey != "" {
		seed += int64(hashString(streamKey))
	}
	return rand.New(rand.NewSource(seed)), nil
}

// ValidateSeed replays the named stream and compares the first draws against
// the expected values.
func (s *SeededRNG) ValidateSeed(ctx context.Context, name string, seed int64, expected []float64) error {
	stream, err := s.SeededStream(ctx, name, seed)
	if err != nil {
		return err
	}
	for i, want := range expected {
		got := stream.Float64()
		if math.Abs(got-want) > 1e-12 {
			return fmt.Errorf("seed validation failed for %s: draw %d got %v, want %v", name, i, got, want)
		}
	}
	return nil
}

// hashString creates a simple hash for deterministic seeding
func hashString(s string) uint32 {
	var hash uint32 = 5381
	for _, c := range s {
		hash = ((hash << 5) + hash) + uint32(c) // djb2 algorithm
	}
	return hash
}
