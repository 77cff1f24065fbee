package service

import (
	"context"
	"time"

	"github.com/EthGlobal-BA-Builders/gotagota/internal/core/domain"
	"github.com/EthGlobal-BA-Builders/gotagota/internal/core/ports"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const defaultLookupConcurrency = 8

// ResolverService implements ports.RecipientResolver on top of a pluggable
// naming-system lookup.
type ResolverService struct {
	lookup        ports.NameLookup
	lookupTimeout time.Duration
	concurrency   int
	log           zerolog.Logger
}

// NewResolverService creates a ResolverService. lookupTimeout bounds each
// individual name lookup; concurrency caps in-flight lookups per batch
// (<= 0 selects the default).
func NewResolverService(lookup ports.NameLookup, lookupTimeout time.Duration, concurrency int, log zerolog.Logger) *ResolverService {
	if concurrency <= 0 {
		concurrency = defaultLookupConcurrency
	}
	return &ResolverService{
		lookup:        lookup,
		lookupTimeout: lookupTimeout,
		concurrency:   concurrency,
		log:           log,
	}
}

// Resolve maps one identifier to a canonical address. Raw addresses pass
// through without a network call; unrecognized formats and failed lookups
// come back unresolved rather than as errors, so one bad name never sinks
// the rest of a batch.
func (s *ResolverService) Resolve(ctx context.Context, identifier string, network domain.Network) ports.Resolution {
	res := ports.Resolution{Identifier: identifier}

	if domain.IsHexAddress(identifier) {
		res.Address = domain.NormalizeAddress(identifier)
		res.Resolved = true
		return res
	}

	if !domain.IsNameIdentifier(identifier) {
		return res
	}

	lookupCtx := ctx
	if s.lookupTimeout > 0 {
		var cancel context.CancelFunc
		lookupCtx, cancel = context.WithTimeout(ctx, s.lookupTimeout)
		defer cancel()
	}

	addr, err := s.lookup.Lookup(lookupCtx, identifier, network)
	if err != nil {
		s.log.Warn().Err(err).Str("name", identifier).Msg("name lookup failed")
		return res
	}
	if addr == "" {
		return res
	}

	res.Address = domain.NormalizeAddress(string(addr))
	res.Resolved = true
	return res
}

// ResolveMany resolves all identifiers concurrently with bounded parallelism.
// The returned slice preserves input order. Context cancellation stops
// issuing new lookups; in-flight lookups run to completion.
func (s *ResolverService) ResolveMany(ctx context.Context, identifiers []string, network domain.Network) []ports.Resolution {
	results := make([]ports.Resolution, len(identifiers))

	g := new(errgroup.Group)
	g.SetLimit(s.concurrency)

	for i, id := range identifiers {
		if ctx.Err() != nil {
			results[i] = ports.Resolution{Identifier: id}
			continue
		}
		g.Go(func() error {
			results[i] = s.Resolve(ctx, id, network)
			return nil
		})
	}

	// Workers never return errors; resolution failure is per-entry state.
	_ = g.Wait()
	return results
}
