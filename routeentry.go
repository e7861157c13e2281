// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package rtrie

// RouteSpec is the caller-supplied description of a route to install.
//
// Dst and Gateway follow the sockaddr-style KeyView convention: byte 0 is
// the buffer's own declared length. Mask is optional; a nil Mask means a
// host route.
type RouteSpec struct {
	Dst     KeyView
	Mask    KeyView // nil => host route
	Gateway KeyView // nil => no gateway (e.g. REJECT/BLACKHOLE routes)
	Flags   Flag
	Ifindex int
	Fibnum  int
}

// RouteEntry is the single owning container for one installed route: the
// destination, mask, and gateway byte buffers, plus route metadata.
//
// Construction copies the caller's destination and gateway buffers into
// the entry's own storage, since RouteSpec buffers may be stack- or
// short-lived-heap-allocated; Trie.Add copies the resolved mask into the
// entry when the route is installed. A leaf installed through RIB.Add
// references the entry's destination buffer as its key, while the leaf's
// mask is the canonical interned copy held by the MaskStore.
//
// A RouteEntry is created inside RIB.Add and destroyed inside RIB.Delete
// once unlinked from the trie (or en masse by RIB.Destroy).
type RouteEntry struct {
	dst     []byte
	mask    []byte
	gateway []byte

	flags   Flag
	ifindex int
	fibnum  int
}

func newRouteEntry(spec RouteSpec) *RouteEntry {
	e := &RouteEntry{
		flags:   spec.Flags,
		ifindex: spec.Ifindex,
		fibnum:  spec.Fibnum,
	}
	e.dst = append([]byte(nil), spec.Dst...)
	if spec.Gateway != nil {
		e.gateway = append([]byte(nil), spec.Gateway...)
	}
	return e
}

// Dst returns the owned destination buffer as a KeyView.
func (e *RouteEntry) Dst() KeyView { return KeyView(e.dst) }

// Mask returns the owned, resolved mask buffer (never nil once the route
// is installed: host routes carry an explicit synthesized all-ones mask).
func (e *RouteEntry) Mask() KeyView { return KeyView(e.mask) }

// Gateway returns the owned gateway buffer, or nil if none was set.
func (e *RouteEntry) Gateway() KeyView { return KeyView(e.gateway) }

func (e *RouteEntry) Flags() Flag    { return e.flags }
func (e *RouteEntry) Ifindex() int   { return e.ifindex }
func (e *RouteEntry) Fibnum() int    { return e.fibnum }

// RouteInfo is the read-only view returned by a lookup. Its
// buffers remain valid until the next mutation of the owning RIB; callers
// that need the data to outlive a mutation must copy it themselves.
type RouteInfo struct {
	Dst     KeyView
	Mask    KeyView
	Gateway KeyView
	Flags   Flag
	Ifindex int
	Fibnum  int
}

func routeInfoFromEntry(e *RouteEntry) RouteInfo {
	return RouteInfo{
		Dst:     e.Dst(),
		Mask:    e.Mask(),
		Gateway: e.Gateway(),
		Flags:   e.flags,
		Ifindex: e.ifindex,
		Fibnum:  e.fibnum,
	}
}
