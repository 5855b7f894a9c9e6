package testkit

import (
	"context"
	"math/rand"

	"rankperm/domain/ranking"
	"rankperm/ports"
)

// ElectionConfig configures the synthetic election generator.
type ElectionConfig struct {
	VoterCountA int     `json:"voter_count_a"`
	VoterCountB int     `json:"voter_count_b"`
	ItemCount   int     `json:"item_count"`
	NoiseA      float64 `json:"noise_a"` // per-pair adjacent swap probability for group A ballots
	NoiseB      float64 `json:"noise_b"`
	DivergeB    bool    `json:"diverge_b"` // group B perturbs the reversed base order
	Seed        int64   `json:"seed"`
}

// DefaultElectionConfig returns sensible defaults for a divergent two-group
// demo election.
func DefaultElectionConfig() ElectionConfig {
	return ElectionConfig{
		VoterCountA: 20,
		VoterCountB: 20,
		ItemCount:   5,
		NoiseA:      0.2,
		NoiseB:      0.2,
		DivergeB:    true,
		Seed:        42,
	}
}

// ElectionGenerator produces seeded synthetic ranking groups. Group A voters
// perturb the identity preference order; group B perturbs either the same
// order (a null scenario where both groups share one distribution) or its
// reverse (a divergent scenario the test should flag). Same seed, same
// groups.
type ElectionGenerator struct {
	config  ElectionConfig
	rngPort ports.RNGPort
}

// NewElectionGenerator creates a generator over the given RNG port.
func NewElectionGenerator(config ElectionConfig, rngPort ports.RNGPort) *ElectionGenerator {
	return &ElectionGenerator{config: config, rngPort: rngPort}
}

// Groups implements ports.RankingSourcePort.
func (g *ElectionGenerator) Groups(ctx context.Context) (ranking.Group, ranking.Group, error) {
	streamA, err := g.rngPort.Stream(ctx, "", "generate", "group-a", g.config.Seed)
	if err != nil {
		return nil, nil, err
	}
	streamB, err := g.rngPort.Stream(ctx, "", "generate", "group-b", g.config.Seed)
	if err != nil {
		return nil, nil, err
	}

	baseA := identityOrder(g.config.ItemCount)
	baseB := identityOrder(g.config.ItemCount)
	if g.config.DivergeB {
		baseB = reversedOrder(g.config.ItemCount)
	}

	groupA := g.generate(streamA, baseA, g.config.VoterCountA, g.config.NoiseA)
	groupB := g.generate(streamB, baseB, g.config.VoterCountB, g.config.NoiseB)
	return groupA, groupB, nil
}

// generate perturbs the base order once per voter. Each ballot gets d sweeps
// of adjacent-pair swaps at the configured probability: noise 0 reproduces
// the base order exactly, higher noise drifts toward a uniform permutation.
func (g *ElectionGenerator) generate(stream *rand.Rand, base ranking.Ranking, voters int, noise float64) ranking.Group {
	group := make(ranking.Group, voters)
	for v := range group {
		ballot := base.Clone()
		for pass := 0; pass < len(ballot); pass++ {
			for i := 0; i+1 < len(ballot); i++ {
				if stream.Float64() < noise {
					ballot[i], ballot[i+1] = ballot[i+1], ballot[i]
				}
			}
		}
		group[v] = ballot
	}
	return group
}

// UniformGroup draws every ballot uniformly at random, for null-scenario
// property tests.
func UniformGroup(stream *rand.Rand, voters, items int) ranking.Group {
	group := make(ranking.Group, voters)
	for v := range group {
		group[v] = ranking.Ranking(stream.Perm(items))
	}
	return group
}

func identityOrder(d int) ranking.Ranking {
	r := make(ranking.Ranking, d)
	for i := range r {
		r[i] = i
	}
	return r
}

func reversedOrder(d int) ranking.Ranking {
	r := make(ranking.Ranking, d)
	for i := range r {
		r[i] = d - 1 - i
	}
	return r
}
