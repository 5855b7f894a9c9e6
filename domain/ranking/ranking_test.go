package ranking

import (
	"errors"
	"testing"

	"rankperm/domain/core"
)

func TestRankingValidate(t *testing.T) {
	tests := []struct {
		name    string
		ranking Ranking
		wantErr bool
	}{
		{name: "valid identity order", ranking: Ranking{0, 1, 2, 3}, wantErr: false},
		{name: "valid reversed order", ranking: Ranking{3, 2, 1, 0}, wantErr: false},
		{name: "single item", ranking: Ranking{0}, wantErr: false},
		{name: "empty", ranking: Ranking{}, wantErr: true},
		{name: "duplicate item", ranking: Ranking{0, 1, 1, 3}, wantErr: true},
		{name: "out of range high", ranking: Ranking{0, 1, 4, 2}, wantErr: true},
		{name: "negative item", ranking: Ranking{0, -1, 2}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ranking.Validate()
			if tt.wantErr {
				if !errors.Is(err, core.ErrInvalidRanking) {
					t.Fatalf("expected ErrInvalidRanking, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestGroupValidate(t *testing.T) {
	valid := Group{{0, 1, 2}, {2, 1, 0}}
	if err := valid.Validate("A"); err != nil {
		t.Fatalf("valid group rejected: %v", err)
	}

	empty := Group{}
	if err := empty.Validate("A"); !errors.Is(err, core.ErrEmptyGroup) {
		t.Fatalf("expected ErrEmptyGroup, got %v", err)
	}

	mixed := Group{{0, 1, 2}, {1, 0}}
	if err := mixed.Validate("B"); !errors.Is(err, core.ErrInconsistentItemCount) {
		t.Fatalf("expected ErrInconsistentItemCount, got %v", err)
	}

	malformed := Group{{0, 1, 2}, {0, 0, 2}}
	err := malformed.Validate("B")
	if !errors.Is(err, core.ErrInvalidRanking) {
		t.Fatalf("expected ErrInvalidRanking, got %v", err)
	}
}

func TestRankingCloneIsIndependent(t *testing.T) {
	orig := Ranking{0, 1, 2}
	clone := orig.Clone()
	clone[0] = 2
	if orig[0] != 0 {
		t.Fatal("clone shares backing storage with original")
	}
}
