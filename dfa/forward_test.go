// Copyright 2026 The go.branchless.dev/utf8 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dfa

import "testing"

func TestAdvanceForwardOnce(t *testing.T) {
	tests := map[string]struct {
		b       []byte
		want    State
		wantPos int
	}{
		"ASCII":            {[]byte{0x24}, Accept, 1},
		"2-byte pound":     {[]byte{0xC2, 0xA3}, Accept, 2},
		"3-byte Hangul":    {[]byte{0xED, 0x95, 0x9C}, Accept, 3},
		"4-byte Hwair":     {[]byte{0xF0, 0x90, 0x8D, 0x88}, Accept, 4},
		"overlong euro":    {[]byte{0xF0, 0x82, 0x82, 0xAC}, ErrOvrlg, 2},
		"truncated Hwair":  {[]byte{0xF0, 0x90, 0x8D}, ErrMiss, 3},
		"surrogate":        {[]byte{0xED, 0xA0, 0x80}, ErrCont, 2},
		"upper bound ok":   {[]byte{0xF4, 0x8F, 0xBF, 0xBF}, Accept, 4},
		"upper bound fail": {[]byte{0xF4, 0x90, 0x80, 0x80}, ErrCont, 2},
		"lone continuation": {[]byte{0x80}, ErrLead, 1},
		"C0 overlong lead": {[]byte{0xC0, 0x80}, ErrOvrlg, 1},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			i := 0
			got := AdvanceForwardOnce(tt.b, &i, len(tt.b))
			if got != tt.want {
				t.Errorf("AdvanceForwardOnce() state = %v, want %v", got, tt.want)
			}
			if i != tt.wantPos {
				t.Errorf("AdvanceForwardOnce() pos = %d, want %d", i, tt.wantPos)
			}
		})
	}
}

func TestDecodeAndAdvanceForwardOnce(t *testing.T) {
	tests := map[string]struct {
		b    []byte
		want uint32
	}{
		"ASCII":         {[]byte{0x24}, 0x24},
		"2-byte pound":  {[]byte{0xC2, 0xA3}, 0xA3},
		"3-byte Hangul": {[]byte{0xED, 0x95, 0x9C}, 0xD55C},
		"4-byte Hwair":  {[]byte{0xF0, 0x90, 0x8D, 0x88}, 0x10348},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			i := 0
			state, cp := DecodeAndAdvanceForwardOnce(tt.b, &i, len(tt.b))
			if state != Accept {
				t.Fatalf("state = %v, want Accept", state)
			}
			if cp != tt.want {
				t.Errorf("code point = %#x, want %#x", cp, tt.want)
			}
		})
	}
}

func TestCopyAndAdvanceForwardOnce(t *testing.T) {
	b := []byte{0xE1, 0x80, 0x80}
	i := 0
	state, sink := CopyAndAdvanceForwardOnce(b, &i, len(b), nil)
	if state != Accept {
		t.Fatalf("state = %v, want Accept", state)
	}
	if string(sink) != string(b) {
		t.Errorf("sink = %v, want %v", sink, b)
	}

	// Partial failure still copies what it examined.
	bad := []byte{0xE1, 0x80, 0x41}
	i = 0
	state, sink = CopyAndAdvanceForwardOnce(bad, &i, len(bad), nil)
	if state != ErrCont {
		t.Fatalf("state = %v, want ErrCont", state)
	}
	if string(sink) != string(bad) {
		t.Errorf("sink = %v, want %v", sink, bad)
	}
}
