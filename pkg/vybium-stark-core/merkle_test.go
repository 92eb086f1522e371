package vybiumstarkcore

import "testing"

func TestCommitOnLayerRoundTripsThroughPublicWrapper(t *testing.T) {
	logSize := 3
	n := 1 << logSize
	col := make(Column, n)
	for i := range col {
		col[i] = NewM31FromU32Reducing(uint32(i) * 97)
	}

	got := CommitOnLayer(logSize, nil, []Column{col})
	if len(got) != n {
		t.Fatalf("CommitOnLayer returned %d hashes, want %d", len(got), n)
	}

	again := CommitOnLayer(logSize, nil, []Column{col})
	for i := range got {
		if got[i] != again[i] {
			t.Fatalf("row %d: CommitOnLayer is not deterministic", i)
		}
	}
}

func TestCommitOnLayerPanicsOnContractViolation(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for a mismatched column length")
		}
	}()
	CommitOnLayer(4, nil, []Column{make(Column, 3)})
}
