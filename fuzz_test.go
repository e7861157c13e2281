// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package rtrie

import "testing"

// FuzzAddDeleteSequence drives the trie through pseudo-random add/delete
// sequences derived from the fuzzer's byte input, asserting only the
// invariants that must hold regardless of the exact sequence: the trie
// accepts an add or delete exactly when a plain list of installed routes
// says it should, LeafCount never goes negative, and every route still
// installed at the end is exactly retrievable.
func FuzzAddDeleteSequence(f *testing.F) {
	f.Add([]byte{0x00, 0x08, 10, 0, 0, 0, 0x01, 0x10, 10, 0, 0, 1})
	f.Add([]byte{0xff, 0xff, 0xff, 0xff})
	f.Add([]byte{})

	f.Fuzz(func(t *testing.T, data []byte) {
		tr := NewTrie()

		type route struct {
			masked, mask KeyView
			entry        *RouteEntry
		}
		var installed []route

		find := func(masked, mask KeyView) int {
			for idx, r := range installed {
				if r.masked.equal(masked) && r.mask.equal(mask) {
					return idx
				}
			}
			return -1
		}

		i := 0
		next := func() byte {
			if i >= len(data) {
				return 0
			}
			b := data[i]
			i++
			return b
		}

		for step := 0; step < len(data); step++ {
			op := next() & 1
			addr := [4]byte{next(), next(), next(), next()}
			prefixLen := int(next() % 33)

			key := IPv4Key(addr)
			mask := IPv4Mask(prefixLen)
			masked := key.applyMask(mask)

			idx := find(masked, mask)

			if op == 0 {
				entry := &RouteEntry{}
				err := tr.Add(masked, mask, entry)
				if err == nil {
					if idx >= 0 {
						t.Fatalf("trie accepted an add for a key already tracked as installed: %v/%d", addr, prefixLen)
					}
					installed = append(installed, route{masked, mask, entry})
				} else if idx < 0 {
					t.Fatalf("trie rejected an add for a key not tracked as installed: %v/%d: %v", addr, prefixLen, err)
				}
			} else {
				_, err := tr.Delete(masked, mask)
				if err == nil {
					if idx < 0 {
						t.Fatalf("trie allowed deleting a key not tracked as installed: %v/%d", addr, prefixLen)
					}
					installed = append(installed[:idx], installed[idx+1:]...)
				} else if idx >= 0 {
					t.Fatalf("trie rejected deleting a key tracked as installed: %v/%d: %v", addr, prefixLen, err)
				}
			}

			if tr.LeafCount() < 0 {
				t.Fatalf("LeafCount went negative")
			}
		}

		for _, r := range installed {
			got, ok := tr.LookupExact(r.masked, r.mask)
			if !ok {
				t.Fatalf("installed route %v/%v vanished from the trie", r.masked, r.mask)
			}
			if got != r.entry {
				t.Fatalf("installed route %v/%v returned a different *RouteEntry than was added", r.masked, r.mask)
			}
		}
	})
}
