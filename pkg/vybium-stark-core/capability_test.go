package vybiumstarkcore

import "testing"

func TestDetectCapabilitiesReportsAFixedLaneCount(t *testing.T) {
	caps := DetectCapabilities()
	if caps.Lanes != LaneCount {
		t.Fatalf("Lanes = %d, want %d", caps.Lanes, LaneCount)
	}
}
