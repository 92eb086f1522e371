package vybiumstarkcore

import (
	"context"

	"github.com/vybium/vybium-stark-core/internal/vybium-stark-core/protocols"
)

// NewCircleDomainIterator builds an iterator over domain, which must
// have LogSize() >= 4. Undersized domains are a caller contract
// violation and panic.
func NewCircleDomainIterator(domain CircleDomain) *CircleDomainIterator {
	return protocols.NewCircleDomainIterator(domain)
}

// ParallelEach calls fn once for every 16-point batch of domain, sharded
// across goroutines. fn must be safe to call concurrently.
func ParallelEach(ctx context.Context, domain CircleDomain, fn func(batchIndex int, pts PackedM31Point)) error {
	return protocols.ParallelEach(ctx, domain, fn)
}
