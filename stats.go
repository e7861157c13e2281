// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package rtrie

import "sync/atomic"

// Stats holds the counters exposed by RIB.Stats; all of them are
// monotonic except nodes, which Delete decrements. adds/deletes/
// changes/nodes are only ever touched under the RIB's exclusive lock, so
// they are plain int64s; lookups/hits/misses are touched under the shared
// lock by any number of concurrent readers, so they use atomic adds.
type Stats struct {
	adds    int64
	deletes int64
	changes int64
	nodes   int64

	lookups int64
	hits    int64
	misses  int64
}

// Snapshot is a point-in-time copy of Stats, returned by RIB.Stats. It is
// not necessarily internally consistent across fields: two counters read a
// few nanoseconds apart under concurrent traffic may not reflect the exact
// same instant, but no individual counter update is ever lost.
type Snapshot struct {
	Adds    int64
	Deletes int64
	Changes int64
	Nodes   int64
	Lookups int64
	Hits    int64
	Misses  int64
}

func (s *Stats) snapshot() Snapshot {
	return Snapshot{
		Adds:    s.adds,
		Deletes: s.deletes,
		Changes: s.changes,
		Nodes:   s.nodes,
		Lookups: atomic.LoadInt64(&s.lookups),
		Hits:    atomic.LoadInt64(&s.hits),
		Misses:  atomic.LoadInt64(&s.misses),
	}
}

func (s *Stats) recordLookup(hit bool) {
	atomic.AddInt64(&s.lookups, 1)
	if hit {
		atomic.AddInt64(&s.hits, 1)
	} else {
		atomic.AddInt64(&s.misses, 1)
	}
}
