package testkit

import (
	"rankperm/adapters/battery"
	"rankperm/adapters/rng"
	"rankperm/ports"
)

// TestKit wires deterministic adapters for tests and demos.
type TestKit struct {
	rngAdapter ports.RNGPort
}

// NewTestKit creates a new test kit instance.
func NewTestKit() *TestKit {
	return &TestKit{rngAdapter: rng.NewSeededRNG()}
}

// RNGAdapter returns the shared deterministic RNG adapter.
func (t *TestKit) RNGAdapter() ports.RNGPort {
	return t.rngAdapter
}

// Referee returns a permutation referee wired to the deterministic RNG.
func (t *TestKit) Referee() *battery.PermutationReferee {
	return battery.NewPermutationReferee(t.rngAdapter)
}

// Source returns a synthetic ranking source for the given election config.
func (t *TestKit) Source(config ElectionConfig) ports.RankingSourcePort {
	return NewElectionGenerator(config, t.rngAdapter)
}
