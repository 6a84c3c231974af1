// Copyright 2026 The go.branchless.dev/utf8 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package utf8

import (
	"strconv"

	"go.branchless.dev/utf8/dfa"
)

// ErrorKind identifies which way a byte sequence fails to be valid UTF-8.
type ErrorKind uint8

const (
	// LeadingByte indicates a byte that should begin a character did not.
	LeadingByte ErrorKind = iota
	// OverlongEncoded indicates an otherwise well-formed sequence shape
	// encodes a code point that could have been encoded in fewer bytes.
	OverlongEncoded
	// ContinuationByte indicates a continuation byte was expected and a
	// different class of byte appeared.
	ContinuationByte
	// MissingByte indicates the input was exhausted mid-character.
	MissingByte
	// TrailingBytes indicates a single-character decode succeeded but the
	// input contained further bytes beyond that one character. It is only
	// ever produced by [DecodeOne].
	TrailingBytes
)

// String returns the stable, human-readable message for k.
func (k ErrorKind) String() string {
	switch k {
	case LeadingByte:
		return "expected a leading byte"
	case OverlongEncoded:
		return "detected overlong encoding"
	case ContinuationByte:
		return "expected a continuation byte"
	case MissingByte:
		return "expected more bytes"
	case TrailingBytes:
		return "input contained bytes beyond one character"
	default:
		return "unknown error"
	}
}

// requireKeyedLiterals can be embedded in a struct to require keyed literals.
type requireKeyedLiterals struct{}

// nonComparable can be embedded in a struct to prevent comparability.
type nonComparable [0]func()

// Error reports that a byte sequence is not valid UTF-8, identifying both the
// kind of violation and the byte offset at which the DFA stopped making
// progress.
type Error struct {
	requireKeyedLiterals
	nonComparable

	Kind ErrorKind

	// Offset is the position, relative to the start of the range passed to
	// the failing operation, of the first byte examined by the primitive
	// that produced Kind.
	Offset int
}

func (e *Error) Error() string {
	return "utf8: " + e.Kind.String() + " at offset " + strconv.Itoa(e.Offset)
}

// errorKindOf maps a terminal [dfa.State] to the [ErrorKind] it represents.
// s must not be [dfa.Accept].
func errorKindOf(s dfa.State) ErrorKind {
	switch s {
	case dfa.ErrLead:
		return LeadingByte
	case dfa.ErrOvrlg:
		return OverlongEncoded
	case dfa.ErrCont:
		return ContinuationByte
	case dfa.ErrMiss:
		return MissingByte
	default:
		panic("utf8: errorKindOf called with a non-error state")
	}
}
