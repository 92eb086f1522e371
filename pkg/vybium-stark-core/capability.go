package vybiumstarkcore

import "github.com/vybium/vybium-stark-core/internal/vybium-stark-core/core"

// DetectCapabilities reports informational SIMD capability flags for the
// current CPU. The packed vector width (LaneCount) is fixed regardless
// of what this reports; it is surfaced for diagnostics only.
func DetectCapabilities() Capabilities { return core.DetectCapabilities() }
