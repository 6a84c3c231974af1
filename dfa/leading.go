// Copyright 2026 The go.branchless.dev/utf8 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dfa

// Leading is a precomputed record for a non-ASCII byte that may begin a
// character: the forward state it enters as a leading byte, and the
// value-bearing bits ("payload") it contributes to the decoded code point.
//
// For bytes that can never legally begin a character (stray continuation
// bytes and the IGL range), NextState is the appropriate error state and
// Payload is the byte itself; this keeps error reporting uniform even
// though Payload is never consulted on the error path.
type Leading struct {
	NextState State
	Payload   uint32
}

// leadingTable is indexed by b-0x80 and covers every byte from 0x80 to 0xFF.
// ASCII bytes never consult this table; the caller branches on ASCII before
// looking here.
var leadingTable = func() [128]Leading {
	var t [128]Leading
	for b := 0x80; b <= 0xFF; b++ {
		i := b - 0x80
		switch {
		case b >= 0x80 && b <= 0xBF:
			// Stray continuation byte: cannot begin a character.
			t[i] = Leading{NextState: ErrLead, Payload: uint32(b)}
		case b == 0xC0 || b == 0xC1:
			// Always overlong 2-byte leads.
			t[i] = Leading{NextState: ErrOvrlg, Payload: uint32(b)}
		case b >= 0xC2 && b <= 0xDF:
			t[i] = Leading{NextState: S1, Payload: uint32(b & 0x1F)}
		case b == 0xE0:
			t[i] = Leading{NextState: S2, Payload: 0}
		case b >= 0xE1 && b <= 0xEC:
			t[i] = Leading{NextState: S4, Payload: uint32(b & 0x0F)}
		case b == 0xED:
			t[i] = Leading{NextState: S3, Payload: 0x0D}
		case b >= 0xEE && b <= 0xEF:
			t[i] = Leading{NextState: S4, Payload: uint32(b & 0x0F)}
		case b == 0xF0:
			t[i] = Leading{NextState: S5, Payload: 0}
		case b >= 0xF1 && b <= 0xF3:
			t[i] = Leading{NextState: S6, Payload: uint32(b & 0x07)}
		case b == 0xF4:
			t[i] = Leading{NextState: S7, Payload: 0x04}
		default: // 0xF5-0xFF
			t[i] = Leading{NextState: ErrLead, Payload: uint32(b)}
		}
	}
	return t
}()

// LeadingOf returns the leading-byte record for b. b must be >= 0x80; ASCII
// bytes have no leading-byte record because they are never looked up here.
func LeadingOf(b byte) Leading {
	return leadingTable[b-0x80]
}
