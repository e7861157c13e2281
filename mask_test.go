// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package rtrie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaskStoreInternReusesHandle(t *testing.T) {
	ms := NewMaskStore()
	m1 := ms.Intern(IPv4Mask(24))
	m2 := ms.Intern(IPv4Mask(24))

	assert.Same(t, m1, m2, "interning the same mask bytes twice must return the same handle")
	assert.Equal(t, int32(2), m1.refcount)
	assert.Equal(t, 1, ms.Len())
}

func TestMaskStoreDistinctMasks(t *testing.T) {
	ms := NewMaskStore()
	m24 := ms.Intern(IPv4Mask(24))
	m16 := ms.Intern(IPv4Mask(16))

	assert.NotSame(t, m24, m16)
	assert.Equal(t, 2, ms.Len())
}

func TestMaskStoreReleaseFreesAtZero(t *testing.T) {
	ms := NewMaskStore()
	h := ms.Intern(IPv4Mask(8))
	require.Equal(t, 1, ms.Len())

	ms.Release(h)
	assert.Equal(t, 0, ms.Len())
}

func TestMaskStoreReleaseNilIsNoop(t *testing.T) {
	ms := NewMaskStore()
	assert.NotPanics(t, func() { ms.Release(nil) })
}

func TestMaskStoreReleaseUnderflowPanics(t *testing.T) {
	ms := NewMaskStore()
	h := ms.Intern(IPv4Mask(8))
	ms.Release(h)

	assert.Panics(t, func() { ms.Release(h) }, "releasing an already-zero handle is a programmer error")
}

func TestSynthesizeHostMask(t *testing.T) {
	k := IPv4Key([4]byte{1, 2, 3, 4})
	hm := synthesizeHostMask(k)
	assert.Equal(t, len(k), len(hm))
	assert.Equal(t, k[0], hm[0])
	assert.Equal(t, hm.PayloadBits(), hm.significantBits(), "a host mask must be all-ones over the whole payload")
	for i := 1; i < len(hm); i++ {
		assert.Equal(t, byte(0xff), hm[i])
	}
}
