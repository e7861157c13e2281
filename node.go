// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package rtrie

import "sync"

// leafFlags is the closed flag set carried by every leaf node.
type leafFlags uint8

const (
	flagNormal leafFlags = 0
	flagRoot   leafFlags = 1 << 0 // one of the three fixed sentinel nodes
	flagActive leafFlags = 1 << 1 // leaf currently installed (owns a RouteEntry)
)

// maskListEntry is one distinct mask referenced by some leaf in the
// subtree rooted at the internal node that owns this entry: the per-node
// half of a BSD radix_mask descriptor, the rest of which lives on the
// canonical maskHandle instead.
//
// leaves holds every tree-linked leaf head anywhere below this node whose
// head or duplicate-key chain uses handle. It has more than one element
// whenever several distinct destination keys below this node share an
// identical mask.
type maskListEntry struct {
	bitOffset int // handle.sigLen, duplicated here for sort/scan locality
	handle    *maskHandle
	leaves    []*node
}

// node is both the internal-node and leaf-node shape of the trie. A
// single struct is used for both, mirroring the original BSD radix_node,
// which is likewise polymorphic: isLeaf selects which half of the fields
// is meaningful.
//
// A leaf's own (mask, maskedKey, entry) fields always hold the current
// most-specific route installed at that destination key; dup chains the
// remaining, less specific routes to the same key in descending order of
// mask significance. dup nodes are never linked into the tree itself
// (their parent/left/right/bitIndex/isLeaf fields are unused) — they exist
// only to carry data, so promoting a newly-added, more-specific mask to
// the head position never changes which *node object is referenced from
// any ancestor's mask_list: that reference is always the tree-linked leaf.
type node struct {
	// --- tree linkage, valid for every node including leaves ---
	parent *node

	// --- internal-node fields ---
	bitIndex int // bit position this node tests; -1 for the root "top" node
	left     *node
	right    *node
	maskList []*maskListEntry

	// --- leaf fields ---
	isLeaf    bool
	key       KeyView
	mask      *maskHandle
	maskedKey KeyView // key & mask, cached
	entry     *RouteEntry
	dup       *node // next in the duplicate-key chain, most-specific-first
	flags     leafFlags
}

// reset clears every field of a node for reuse from the pool; the caller
// re-populates every field it relies on before reinserting the node.
func (n *node) reset() {
	*n = node{}
}

// bit returns the query key's bit at this internal node's test position.
func (n *node) bit(k KeyView) int {
	return k.Bit(n.bitIndex)
}

// insertMaskListEntry adds leaf's use of h to n's mask_list, in descending
// bitOffset order (most specific first), creating a fresh entry if no
// leaf under n currently uses this exact mask.
func (n *node) insertMaskListEntry(h *maskHandle, leaf *node) {
	for _, e := range n.maskList {
		if e.handle == h {
			e.leaves = append(e.leaves, leaf)
			return
		}
	}

	e := &maskListEntry{bitOffset: h.sigLen, handle: h, leaves: []*node{leaf}}

	// insertion sort, descending bitOffset; ties keep arrival order.
	i := len(n.maskList)
	n.maskList = append(n.maskList, nil)
	for i > 0 && n.maskList[i-1].bitOffset < e.bitOffset {
		n.maskList[i] = n.maskList[i-1]
		i--
	}
	n.maskList[i] = e
}

// removeMaskListEntry drops leaf's use of h from n's mask_list, removing
// the entry entirely once no leaf under n references it any more.
func (n *node) removeMaskListEntry(h *maskHandle, leaf *node) {
	for idx, e := range n.maskList {
		if e.handle != h {
			continue
		}
		for i, l := range e.leaves {
			if l == leaf {
				e.leaves = append(e.leaves[:i], e.leaves[i+1:]...)
				break
			}
		}
		if len(e.leaves) == 0 {
			n.maskList = append(n.maskList[:idx], n.maskList[idx+1:]...)
		}
		return
	}
}

// nodePool recycles *node values across add/delete churn, so that the
// "one small allocation per route" contract holds even under repeated
// insert/delete workloads.
//
// A type-safe sync.Pool wrapper with
// basic live/total accounting, useful for diagnosing leaks while the
// implementation settles.
type nodePool struct {
	sync.Pool

	totalAllocated int64
	currentLive    int64
	mu             sync.Mutex // guards the two counters only
}

func newNodePool() *nodePool {
	p := &nodePool{}
	p.New = func() any {
		p.mu.Lock()
		p.totalAllocated++
		p.mu.Unlock()
		return new(node)
	}
	return p
}

func (p *nodePool) get() *node {
	if p == nil {
		return new(node)
	}
	p.mu.Lock()
	p.currentLive++
	p.mu.Unlock()
	return p.Pool.Get().(*node)
}

func (p *nodePool) put(n *node) {
	if p == nil {
		return
	}
	p.mu.Lock()
	p.currentLive--
	p.mu.Unlock()
	n.reset()
	p.Pool.Put(n)
}

// liveCount returns the number of nodes currently checked out of the pool.
func (p *nodePool) liveCount() int64 {
	if p == nil {
		return 0
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.currentLive
}
