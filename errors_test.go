// Copyright 2026 The go.branchless.dev/utf8 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package utf8

import "testing"

func TestErrorKindString(t *testing.T) {
	tests := map[ErrorKind]string{
		LeadingByte:       "expected a leading byte",
		OverlongEncoded:   "detected overlong encoding",
		ContinuationByte:  "expected a continuation byte",
		MissingByte:       "expected more bytes",
		TrailingBytes:     "input contained bytes beyond one character",
	}
	for kind, want := range tests {
		if got := kind.String(); got != want {
			t.Errorf("%v.String() = %q, want %q", kind, got, want)
		}
	}
}

func TestErrorError(t *testing.T) {
	err := &Error{Kind: OverlongEncoded, Offset: 4}
	want := "utf8: detected overlong encoding at offset 4"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
