// Copyright 2026 The go.branchless.dev/utf8 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package iter implements character-level cursor traversal over UTF-8 byte
// sequences: stepping a cursor forward or backward by exactly one character
// at a time, in checked and unchecked flavors.
//
// The unchecked functions ([NextUnchecked], [PrevUnchecked],
// [AdvanceUnchecked]) assume the underlying bytes are already valid UTF-8 and
// never consult the DFA; misuse on invalid input is undefined behavior. The
// checked functions ([Next], [Prev], [Advance]) call into
// [go.branchless.dev/utf8/dfa] and surface the first problem they find.
package iter

import (
	"strconv"

	"go.branchless.dev/utf8/dfa"
)

// requireKeyedLiterals can be embedded in a struct to require keyed literals.
type requireKeyedLiterals struct{}

// nonComparable can be embedded in a struct to prevent comparability.
type nonComparable [0]func()

// Error reports that a checked cursor step could not advance over a
// well-formed character. State is always one of the four dfa error states.
type Error struct {
	requireKeyedLiterals
	nonComparable

	State  dfa.State
	Offset int
}

func (e *Error) Error() string {
	return "iter: " + e.State.String() + " at offset " + strconv.Itoa(e.Offset)
}

// charLenFromLeading returns the number of bytes a character starting with
// leading byte b occupies, assuming b is a valid leading byte.
func charLenFromLeading(b byte) int {
	switch {
	case b < 0x80:
		return 1
	case b < 0xE0:
		return 2
	case b < 0xF0:
		return 3
	default:
		return 4
	}
}

func isContinuation(b byte) bool {
	return b&0xC0 == 0x80
}

// NextUnchecked returns the cursor position just past the character starting
// at b[cursor], treating b[cursor] as a valid leading byte. Its behavior is
// undefined if it is not.
func NextUnchecked(b []byte, cursor int) int {
	return cursor + charLenFromLeading(b[cursor])
}

// PrevUnchecked returns the cursor position of the start of the character
// ending just before b[cursor], by decrementing past every continuation byte.
// Its behavior is undefined if b is not valid UTF-8 up to cursor.
func PrevUnchecked(b []byte, cursor int) int {
	i := cursor - 1
	for i > 0 && isContinuation(b[i]) {
		i--
	}
	return i
}

// AdvanceUnchecked moves cursor by n characters: forward via [NextUnchecked]
// if n > 0, backward via [PrevUnchecked] if n < 0.
func AdvanceUnchecked(b []byte, cursor, n int) int {
	for ; n > 0; n-- {
		cursor = NextUnchecked(b, cursor)
	}
	for ; n < 0; n++ {
		cursor = PrevUnchecked(b, cursor)
	}
	return cursor
}

// Next steps cursor forward over exactly one character, bounded by bound
// (cursor must be strictly less than bound). It reports an [*Error] if the
// bytes at cursor do not form a well-formed character.
func Next(b []byte, cursor, bound int) (int, error) {
	i := cursor
	state := dfa.AdvanceForwardOnce(b, &i, bound)
	if state != dfa.Accept {
		return i, &Error{State: state, Offset: i}
	}
	return i, nil
}

// Prev steps cursor backward over exactly one character, bounded by bound
// (the leftmost position the walk may examine). cursor is the position one
// past the character's last byte; the stepped-over character is the one
// ending just before cursor. On success the returned cursor points at the
// leading byte of that character, the same convention [Next] uses for the
// character ahead of it.
func Prev(b []byte, cursor, bound int) (int, error) {
	i := cursor - 1
	// dfa's left bound is exclusive; bound here is the leftmost byte examined.
	state := dfa.AdvanceBackwardOnce(b, &i, bound-1)
	if state != dfa.Accept {
		return i, &Error{State: state, Offset: i}
	}
	// dfa.AdvanceBackwardOnce leaves first one position left of the leading
	// byte it accepted (the same exclusive convention it uses for the bound);
	// re-express that as pointing at the leading byte itself.
	return i + 1, nil
}

// Advance steps cursor by n characters, forward via [Next] if n > 0 or
// backward via [Prev] if n < 0, stopping at the first error or at bound or
// once n steps have been taken, whichever comes first. It returns the cursor
// position reached and the first error encountered, if any.
func Advance(b []byte, cursor, n, bound int) (int, error) {
	for ; n > 0 && cursor < bound; n-- {
		next, err := Next(b, cursor, bound)
		if err != nil {
			return next, err
		}
		cursor = next
	}
	for ; n < 0 && cursor > bound; n++ {
		prev, err := Prev(b, cursor, bound)
		if err != nil {
			return prev, err
		}
		cursor = prev
	}
	return cursor, nil
}
