// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package rtrie

import "strings"

// Flag is the closed set of route flags carried over the wire with every
// route. Values are stable and must not be renumbered.
type Flag uint32

const (
	UP        Flag = 0x1
	GATEWAY   Flag = 0x2
	HOST      Flag = 0x4
	REJECT    Flag = 0x8
	DYNAMIC   Flag = 0x10
	MODIFIED  Flag = 0x20
	BLACKHOLE Flag = 0x1000
	PROTO1    Flag = 0x8000
	PROTO2    Flag = 0x4000
	PROTO3    Flag = 0x40000
)

var flagNames = []struct {
	f Flag
	s string
}{
	{UP, "UP"},
	{GATEWAY, "GATEWAY"},
	{HOST, "HOST"},
	{REJECT, "REJECT"},
	{DYNAMIC, "DYNAMIC"},
	{MODIFIED, "MODIFIED"},
	{BLACKHOLE, "BLACKHOLE"},
	{PROTO1, "PROTO1"},
	{PROTO2, "PROTO2"},
	{PROTO3, "PROTO3"},
}

// Has reports whether all bits of want are set in f.
func (f Flag) Has(want Flag) bool {
	return f&want == want
}

// String renders the flag set as a pipe-joined symbolic list, e.g. "UP|GATEWAY".
func (f Flag) String() string {
	if f == 0 {
		return "0"
	}

	var b strings.Builder
	rest := f
	for _, fn := range flagNames {
		if rest&fn.f == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('|')
		}
		b.WriteString(fn.s)
		rest &^= fn.f
	}
	if rest != 0 {
		if b.Len() > 0 {
			b.WriteByte('|')
		}
		b.WriteString("0x")
		b.WriteString(itohex(uint32(rest)))
	}
	return b.String()
}

func itohex(v uint32) string {
	const digits = "0123456789abcdef"
	if v == 0 {
		return "0"
	}
	var buf [8]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = digits[v&0xf]
		v >>= 4
	}
	return string(buf[i:])
}
