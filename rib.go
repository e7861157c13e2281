// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package rtrie

import (
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
)

// RIB is a routing information base: one Trie plus one MaskStore behind a
// sync.RWMutex, plus the byte buffers for every installed route. The lock
// gives readers no preference: a waiting writer blocks new readers.
//
// All mutators (Add, Delete, Change, Destroy) take the lock exclusively.
// All readers (Lookup, GetExact, Walk, Stats) take it shared, except that
// Stats' lookups/hits/misses counters are updated with relaxed atomics
// precisely so that concurrent readers never contend on them.
type RIB struct {
	mu    sync.RWMutex
	trie  *Trie
	stats Stats

	family int
	fibnum int
	log    zerolog.Logger
}

// NewRIB creates an empty RIB for the given address family and FIB number.
func NewRIB(family, fibnum int, opts ...Option) *RIB {
	cfg := defaultConfig
	for _, o := range opts {
		o(&cfg)
	}
	return &RIB{
		trie:   NewTrie(),
		family: family,
		fibnum: fibnum,
		log:    cfg.log,
	}
}

func validateKey(k KeyView) error {
	if len(k) == 0 {
		return errf("route", EINVAL, k)
	}
	if int(k[0]) < len(k) {
		return errf("route", EINVAL, k)
	}
	return nil
}

// Add installs spec as a new route. Mask may be nil for a host route.
func (r *RIB) Add(spec RouteSpec) error {
	if err := validateKey(spec.Dst); err != nil {
		return err
	}
	if spec.Mask != nil {
		if err := validateKey(spec.Mask); err != nil {
			return err
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.addLocked(spec)
}

func (r *RIB) addLocked(spec RouteSpec) error {
	mask := spec.Mask
	if mask == nil {
		mask = synthesizeHostMask(spec.Dst)
	}

	entry := newRouteEntry(spec)
	entry.dst = []byte(KeyView(entry.dst).applyMask(mask))
	key := KeyView(entry.dst)

	if err := r.trie.Add(key, mask, entry); err != nil {
		r.log.Debug().Str("key", key.String()).Err(err).Msg("route add rejected")
		return err
	}

	r.stats.adds++
	r.stats.nodes++
	r.log.Info().Str("key", key.String()).Str("mask", KeyView(entry.mask).String()).Msg("route added")
	return nil
}

// Delete removes the route installed at exactly (dst, mask). Mask may be
// nil for a host route.
func (r *RIB) Delete(dst, mask KeyView) error {
	if err := validateKey(dst); err != nil {
		return err
	}
	if mask != nil {
		if err := validateKey(mask); err != nil {
			return err
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.deleteLocked(dst, mask)
}

func (r *RIB) deleteLocked(dst, mask KeyView) error {
	resolved := mask
	if resolved == nil {
		resolved = synthesizeHostMask(dst)
	}
	maskedDst := dst.applyMask(resolved)

	if _, err := r.trie.Delete(maskedDst, resolved); err != nil {
		r.log.Debug().Str("key", maskedDst.String()).Err(err).Msg("route delete rejected")
		return err
	}

	r.stats.deletes++
	r.stats.nodes--
	r.log.Info().Str("key", maskedDst.String()).Msg("route deleted")
	return nil
}

// Change replaces the route at spec.Dst/spec.Mask with spec, observable as
// an atomic delete-then-add: both happen under one exclusive lock region,
// so a concurrent lookup sees either the old or the new route, never
// neither. If the delete succeeds but the add then fails, the old route
// stays deleted and the error is surfaced for the caller to retry; this
// does not double-count adds/deletes in changes.
func (r *RIB) Change(spec RouteSpec) error {
	if err := validateKey(spec.Dst); err != nil {
		return err
	}
	if spec.Mask != nil {
		if err := validateKey(spec.Mask); err != nil {
			return err
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.deleteLocked(spec.Dst, spec.Mask); err != nil {
		return err
	}
	if err := r.addLocked(spec); err != nil {
		return err
	}
	r.stats.changes++
	return nil
}

// Lookup performs a longest-prefix-match query for key.
func (r *RIB) Lookup(key KeyView) (RouteInfo, error) {
	if err := validateKey(key); err != nil {
		return RouteInfo{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, _, ok := r.trie.MatchLongest(key)
	r.stats.recordLookup(ok)
	if !ok {
		return RouteInfo{}, errf("lookup", ENOENT, key)
	}
	return routeInfoFromEntry(entry), nil
}

// GetExact returns the route installed at exactly (dst, mask), with no
// longest-prefix fallback. Mask may be nil for a host route.
func (r *RIB) GetExact(dst, mask KeyView) (RouteInfo, error) {
	if err := validateKey(dst); err != nil {
		return RouteInfo{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	resolved := mask
	if resolved == nil {
		resolved = synthesizeHostMask(dst)
	}
	maskedDst := dst.applyMask(resolved)

	entry, ok := r.trie.LookupExact(maskedDst, resolved)
	if !ok {
		return RouteInfo{}, errf("lookup_exact", ENOENT, dst)
	}
	return routeInfoFromEntry(entry), nil
}

// Walk visits every installed route under the shared lock. visit must not
// call back into the RIB: doing so would re-enter the lock and deadlock.
func (r *RIB) Walk(visit func(RouteInfo) bool) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.trie.Walk(func(key, mask KeyView, entry *RouteEntry) bool {
		return visit(routeInfoFromEntry(entry))
	})
}

// Stats returns a snapshot of the RIB's counters.
func (r *RIB) Stats() Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.stats.snapshot()
}

// Destroy tears down the RIB, releasing every installed route's mask
// reference. Deletion happens in a second pass over a snapshot of
// (key, mask) pairs collected by the first: deleting while the walk's own
// recursion is still in flight would restructure the very subtree the
// walk is descending. Any per-route delete failure (which would indicate
// trie corruption, not a caller error, since every key was just read back
// off the trie itself) is aggregated across the whole teardown rather than
// aborting partway, so Destroy always finishes.
func (r *RIB) Destroy() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	type pair struct{ key, mask KeyView }
	var pairs []pair
	r.trie.Walk(func(key, mask KeyView, entry *RouteEntry) bool {
		pairs = append(pairs, pair{key, mask})
		return true
	})

	var result *multierror.Error
	for _, p := range pairs {
		if _, err := r.trie.Delete(p.key, p.mask); err != nil {
			result = multierror.Append(result, err)
		}
	}

	r.log.Info().Int("family", r.family).Int("fibnum", r.fibnum).Msg("route table destroyed")
	return result.ErrorOrNil()
}
