// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package rtrie

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrnoSatisfiesErrorsIs(t *testing.T) {
	tr := NewTrie()
	key := IPv4Key([4]byte{10, 0, 0, 0})
	mask := IPv4Mask(8)

	require := assert.New(t)
	require.NoError(tr.Add(key.applyMask(mask), mask, &RouteEntry{}))

	err := tr.Add(key.applyMask(mask), mask, &RouteEntry{})
	require.True(errors.Is(err, EEXIST), "errors.Is(err, EEXIST) must hold for a rejected duplicate add")
	require.False(errors.Is(err, ENOENT))
}

func TestErrnoString(t *testing.T) {
	assert.Equal(t, "EEXIST", EEXIST.String())
	assert.Equal(t, "EEXIST", EEXIST.Error())
}
