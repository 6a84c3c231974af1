// Copyright 2026 The go.branchless.dev/utf8 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package utf8

import "go.branchless.dev/utf8/dfa"

// EncodeOne appends the UTF-8 encoding of cp to sink and returns the extended
// slice. It cannot fail: cp is already a validated [CodePoint].
func EncodeOne(cp CodePoint, sink []byte) []byte {
	v := uint32(cp)
	switch {
	case v <= 0x7F:
		return append(sink, byte(v))
	case v <= 0x7FF:
		return append(sink,
			0xC0|byte(v>>6),
			0x80|byte(v&0x3F),
		)
	case v <= 0xFFFF:
		return append(sink,
			0xE0|byte(v>>12),
			0x80|byte((v>>6)&0x3F),
			0x80|byte(v&0x3F),
		)
	default:
		return append(sink,
			0xF0|byte(v>>18),
			0x80|byte((v>>12)&0x3F),
			0x80|byte((v>>6)&0x3F),
			0x80|byte(v&0x3F),
		)
	}
}

// DecodeOne decodes exactly one character from b and reports [TrailingBytes]
// if b contains any bytes beyond that one character.
func DecodeOne(b []byte) (CodePoint, error) {
	if len(b) == 0 {
		return 0, &Error{Kind: MissingByte, Offset: 0}
	}
	i := 0
	state, bits := dfa.DecodeAndAdvanceForwardOnce(b, &i, len(b))
	if state != dfa.Accept {
		return 0, &Error{Kind: errorKindOf(state), Offset: 0}
	}
	if i != len(b) {
		return 0, &Error{Kind: TrailingBytes, Offset: i}
	}
	return CodePoint(bits), nil
}

// Decode repeatedly decodes characters from b, appending each to sink, until
// it exhausts b or meets an invalid character. It returns the index of the
// first unconsumed byte (len(b) on a clean run to the end) and the extended
// sink. The caller distinguishes a clean decode from a mid-stream error by
// comparing the returned index to len(b).
func Decode(b []byte, sink []CodePoint) (int, []CodePoint) {
	i := 0
	for i != len(b) {
		start := i
		state, bits := dfa.DecodeAndAdvanceForwardOnce(b, &i, len(b))
		if state != dfa.Accept {
			return start, sink
		}
		sink = append(sink, CodePoint(bits))
	}
	return i, sink
}

// Encode appends the UTF-8 encoding of every code point in cps to sink and
// returns the extended slice.
func Encode(cps []CodePoint, sink []byte) []byte {
	for _, cp := range cps {
		sink = EncodeOne(cp, sink)
	}
	return sink
}

// Validate reports whether b is entirely well-formed UTF-8.
func Validate(b []byte) bool {
	return FindInvalid(b) == len(b)
}

// FindInvalid returns the index of the first byte of the first invalid
// character in b, or len(b) if b is entirely well-formed.
func FindInvalid(b []byte) int {
	i := 0
	for i != len(b) {
		start := i
		state := dfa.AdvanceForwardOnce(b, &i, len(b))
		if state != dfa.Accept {
			return start
		}
	}
	return i
}

// FindLeadingByte returns the index, at or after start, of the first byte in
// b that is ASCII or a valid multi-byte leading byte (0xC2-0xF4). It returns
// len(b) if no such byte exists.
func FindLeadingByte(b []byte, start int) int {
	for i := start; i < len(b); i++ {
		c := b[i]
		if c < 0x80 || (c >= 0xC2 && c <= 0xF4) {
			return i
		}
	}
	return len(b)
}

// CharLength counts the number of well-formed characters in b, stopping at
// the first invalid character.
func CharLength(b []byte) (int, error) {
	n := 0
	i := 0
	for i != len(b) {
		start := i
		state := dfa.AdvanceForwardOnce(b, &i, len(b))
		if state != dfa.Accept {
			return n, &Error{Kind: errorKindOf(state), Offset: start}
		}
		n++
	}
	return n, nil
}

// CharLengthUnchecked counts the number of characters in b, assuming b is
// already valid UTF-8. Its behavior is undefined if b is not.
func CharLengthUnchecked(b []byte) int {
	n := 0
	for i := 0; i < len(b); {
		lead := b[i]
		switch {
		case lead < 0x80:
			i++
		case lead < 0xE0:
			i += 2
		case lead < 0xF0:
			i += 3
		default:
			i += 4
		}
		n++
	}
	return n
}

// sanitizeScratchCap bounds the small, fixed-size scratch buffers sanitize
// uses; no input byte length can grow this past a handful of bytes.
const sanitizeScratchCap = 8

// Sanitize copies b to sink, byte-for-byte for every well-formed character
// and as one encoding of replacement for every maximal invalid subsequence.
// It never fails and always produces valid UTF-8; an empty b produces an
// empty output.
func Sanitize(b []byte, replacement CodePoint, sink []byte) []byte {
	var replacementBytes [sanitizeScratchCap]byte
	replacementEnc := EncodeOne(replacement, replacementBytes[:0])

	i := 0
	for i != len(b) {
		var scratch [sanitizeScratchCap]byte
		start := i
		state, copied := dfa.CopyAndAdvanceForwardOnce(b, &i, len(b), scratch[:0])
		if state == dfa.Accept {
			sink = append(sink, copied...)
			continue
		}
		sink = append(sink, replacementEnc...)
		next := FindLeadingByte(b, start+1)
		i = next
	}
	return sink
}
