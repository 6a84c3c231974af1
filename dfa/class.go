// Copyright 2026 The go.branchless.dev/utf8 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dfa

//go:generate go tool stringer -type=CharClass -output=class_string.go

// CharClass is one of twelve equivalence classes a byte is mapped to before
// it is fed into the forward or backward transition tables. Collapsing the
// 256 possible byte values into twelve classes keeps both tables small
// enough to fit a handful of cache lines.
type CharClass uint8

const (
	ASC  CharClass = iota // 0x00-0x7F: ASCII / single-byte character
	C1                    // 0x80-0x8F: continuation, low half
	C2                    // 0x90-0x9F: continuation, mid-low
	C3                    // 0xA0-0xBF: continuation, high
	C4                    // 0xC2-0xDF: 2-byte leading
	C5                    // 0xE0: 3-byte leading, overlong gate
	C6                    // 0xE1-0xEC, 0xEE-0xEF: 3-byte leading, regular
	C7                    // 0xED: 3-byte leading, surrogate gate
	C8                    // 0xF0: 4-byte leading, overlong gate
	C9                    // 0xF1-0xF3: 4-byte leading, regular
	C10                   // 0xF4: 4-byte leading, upper-bound gate
	IGL                   // illegal in any position
)

// classTable maps every byte value to its CharClass. It is consulted on
// every byte of every operation in this package, so it is kept as a flat
// 256-entry array rather than a switch.
var classTable = [256]CharClass{
	// 0x00-0x7F: ASC
	ASC, ASC, ASC, ASC, ASC, ASC, ASC, ASC, ASC, ASC, ASC, ASC, ASC, ASC, ASC, ASC,
	ASC, ASC, ASC, ASC, ASC, ASC, ASC, ASC, ASC, ASC, ASC, ASC, ASC, ASC, ASC, ASC,
	ASC, ASC, ASC, ASC, ASC, ASC, ASC, ASC, ASC, ASC, ASC, ASC, ASC, ASC, ASC, ASC,
	ASC, ASC, ASC, ASC, ASC, ASC, ASC, ASC, ASC, ASC, ASC, ASC, ASC, ASC, ASC, ASC,
	ASC, ASC, ASC, ASC, ASC, ASC, ASC, ASC, ASC, ASC, ASC, ASC, ASC, ASC, ASC, ASC,
	ASC, ASC, ASC, ASC, ASC, ASC, ASC, ASC, ASC, ASC, ASC, ASC, ASC, ASC, ASC, ASC,
	ASC, ASC, ASC, ASC, ASC, ASC, ASC, ASC, ASC, ASC, ASC, ASC, ASC, ASC, ASC, ASC,
	ASC, ASC, ASC, ASC, ASC, ASC, ASC, ASC, ASC, ASC, ASC, ASC, ASC, ASC, ASC, ASC,
	// 0x80-0x8F: C1
	C1, C1, C1, C1, C1, C1, C1, C1, C1, C1, C1, C1, C1, C1, C1, C1,
	// 0x90-0x9F: C2
	C2, C2, C2, C2, C2, C2, C2, C2, C2, C2, C2, C2, C2, C2, C2, C2,
	// 0xA0-0xBF: C3
	C3, C3, C3, C3, C3, C3, C3, C3, C3, C3, C3, C3, C3, C3, C3, C3,
	C3, C3, C3, C3, C3, C3, C3, C3, C3, C3, C3, C3, C3, C3, C3, C3,
	// 0xC0-0xC1: IGL, 0xC2-0xDF: C4
	IGL, IGL, C4, C4, C4, C4, C4, C4, C4, C4, C4, C4, C4, C4, C4, C4,
	C4, C4, C4, C4, C4, C4, C4, C4, C4, C4, C4, C4, C4, C4, C4, C4,
	// 0xE0: C5, 0xE1-0xEC: C6, 0xED: C7, 0xEE-0xEF: C6
	C5, C6, C6, C6, C6, C6, C6, C6, C6, C6, C6, C6, C6, C7, C6, C6,
	// 0xF0: C8, 0xF1-0xF3: C9, 0xF4: C10, 0xF5-0xFF: IGL
	C8, C9, C9, C9, C10, IGL, IGL, IGL, IGL, IGL, IGL, IGL, IGL, IGL, IGL, IGL,
}

// ClassOf returns the character class of b.
func ClassOf(b byte) CharClass {
	return classTable[b]
}
