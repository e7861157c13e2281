// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package rtrie is a userland port of the BSD radix trie: a bit-indexed
// Patricia trie used for longest-prefix-match (LPM) lookups over
// variable-length binary keys, plus a thin routing-information-base (RIB)
// wrapper that attaches per-route metadata to it.
//
// Unlike a multibit (stride) trie, every internal node here tests exactly
// one bit. Masks are interned in a secondary store ([MaskStore]) so that
// routes sharing an identical netmask share a single refcounted copy, and
// every internal node carries a mask list: the sorted set of masks that
// could still apply to some leaf below it. A longest-prefix-match descends
// to the best candidate leaf and, if that leaf's key disagrees with the
// query beyond the leaf's own mask, climbs back toward the root consulting
// each node's mask list in most-specific-first order until one matches.
//
// The [RIB] type owns one [Trie], one [MaskStore], and a sync.RWMutex: any
// number of lookups/walks may run concurrently, but adds, deletes, and
// changes are fully exclusive. Readers get no preference over writers: a
// writer waiting for the lock blocks new readers until it has run.
package rtrie
