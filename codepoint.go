// Copyright 2026 The go.branchless.dev/utf8 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package utf8

import (
	"errors"
	"fmt"
)

// maxCodePoint is the largest Unicode scalar value, U+10FFFF.
const maxCodePoint = 0x10FFFF

// surrogateLow and surrogateHigh bound the UTF-16 surrogate range, which is
// reserved and never a scalar value.
const (
	surrogateLow  = 0xD800
	surrogateHigh = 0xDFFF
)

// ReplacementCharacter is U+FFFD, the code point [Sanitize] substitutes for
// each maximal invalid subsequence it encounters.
const ReplacementCharacter CodePoint = 0xFFFD

// ErrOutOfRange is returned by [NewCodePoint] when the given value exceeds
// 0x10FFFF.
var ErrOutOfRange = errors.New("utf8: code point out of range")

// ErrSurrogate is returned by [NewCodePoint] when the given value falls in
// the UTF-16 surrogate range 0xD800-0xDFFF.
var ErrSurrogate = errors.New("utf8: code point is a surrogate")

// CodePoint is a validated Unicode scalar value: an unsigned integer no
// greater than 0x10FFFF and outside the surrogate range 0xD800-0xDFFF. The
// zero value is the null character U+0000, itself a valid code point.
//
// [NewCodePoint], [NewCodePointOr] and the decoders only ever produce values
// that satisfy both invariants. A plain conversion such as CodePoint(v) is not
// checked and can produce a value that violates them. Comparison is ordinary
// integer comparison.
type CodePoint uint32

// NewCodePoint validates v and returns it as a CodePoint, or reports why it
// cannot be one: [ErrOutOfRange] if v > 0x10FFFF, [ErrSurrogate] if v falls in
// 0xD800-0xDFFF.
func NewCodePoint(v uint32) (CodePoint, error) {
	if v > maxCodePoint {
		return 0, ErrOutOfRange
	}
	if v >= surrogateLow && v <= surrogateHigh {
		return 0, ErrSurrogate
	}
	return CodePoint(v), nil
}

// NewCodePointOr validates v and returns it as a CodePoint, substituting
// fallback when v is out of range or a surrogate. It never fails.
func NewCodePointOr(v uint32, fallback CodePoint) CodePoint {
	cp, err := NewCodePoint(v)
	if err != nil {
		return fallback
	}
	return cp
}

// Value returns cp as a plain uint32.
func (cp CodePoint) Value() uint32 {
	return uint32(cp)
}

// String returns the standard "U+XXXX" notation for cp.
func (cp CodePoint) String() string {
	return fmt.Sprintf("U+%04X", uint32(cp))
}
