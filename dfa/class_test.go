// Copyright 2026 The go.branchless.dev/utf8 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dfa

import "testing"

func TestClassOf(t *testing.T) {
	tests := map[string]struct {
		b    byte
		want CharClass
	}{
		"0x00 ASCII":       {0x00, ASC},
		"0x7F ASCII":        {0x7F, ASC},
		"0x80 C1 low":       {0x80, C1},
		"0x8F C1 high":      {0x8F, C1},
		"0x90 C2 low":       {0x90, C2},
		"0x9F C2 high":      {0x9F, C2},
		"0xA0 C3 low":       {0xA0, C3},
		"0xBF C3 high":      {0xBF, C3},
		"0xC0 illegal":      {0xC0, IGL},
		"0xC1 illegal":      {0xC1, IGL},
		"0xC2 C4 low":       {0xC2, C4},
		"0xDF C4 high":      {0xDF, C4},
		"0xE0 C5":           {0xE0, C5},
		"0xE1 C6 low":       {0xE1, C6},
		"0xEC C6 high":      {0xEC, C6},
		"0xED C7":           {0xED, C7},
		"0xEE C6 resumes":   {0xEE, C6},
		"0xEF C6 high":      {0xEF, C6},
		"0xF0 C8":           {0xF0, C8},
		"0xF1 C9 low":       {0xF1, C9},
		"0xF3 C9 high":      {0xF3, C9},
		"0xF4 C10":          {0xF4, C10},
		"0xF5 illegal":      {0xF5, IGL},
		"0xFF illegal":      {0xFF, IGL},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := ClassOf(tt.b); got != tt.want {
				t.Errorf("ClassOf(%#x) = %v, want %v", tt.b, got, tt.want)
			}
		})
	}
}

func TestClassTableCoversEveryByte(t *testing.T) {
	// Every entry must have been explicitly assigned; zero value ASC only
	// belongs to 0x00-0x7F.
	for b := 0x80; b <= 0xFF; b++ {
		if ClassOf(byte(b)) == ASC {
			t.Errorf("byte %#x classified as ASC", b)
		}
	}
}
