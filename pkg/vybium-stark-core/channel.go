package vybiumstarkcore

import "github.com/vybium/vybium-stark-core/internal/vybium-stark-core/protocols"

// NewChannel returns a Channel with a zero digest and zeroed time.
// Channel's Mix*, Draw*, Digest, and Time methods are used directly
// (Channel is an alias for the underlying protocols.Channel).
func NewChannel() *Channel { return protocols.NewChannel() }
