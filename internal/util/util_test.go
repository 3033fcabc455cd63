// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSlotLabel(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"single word", "year", "Year"},
		{"two words", "pickupLocation", "Pickup location"},
		{"three words", "preferredContactMethod", "Preferred contact method"},
		{"already capitalized", "Location", "Location"},
		{"empty", "", ""},
		{"single rune", "x", "X"},
		{"consecutive capitals", "maxAB", "Max a b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SlotLabel(tt.in); got != tt.want {
				t.Errorf("SlotLabel(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTruncateRunes(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		maxRunes int
		want     string
	}{
		{"no truncation", "hello", 10, "hello"},
		{"exact fit", "hello", 5, "hello"},
		{"truncated", "hello world", 8, "hello..."},
		{"tiny budget", "hello", 2, "he"},
		{"zero budget", "hello", 0, ""},
		{"multibyte", "héllo wörld", 8, "héllo..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateRunes(tt.in, tt.maxRunes); got != tt.want {
				t.Errorf("TruncateRunes(%q, %d) = %q, want %q", tt.in, tt.maxRunes, got, tt.want)
			}
		})
	}
}

func TestTruncateWidth(t *testing.T) {
	// CJK characters occupy two columns each.
	if got := TruncateWidth("日本語テスト", 12); got != "日本語テスト" {
		t.Errorf("expected no truncation, got %q", got)
	}
	if got := TruncateWidth("日本語テスト", 9); got != "日本語..." {
		t.Errorf("expected width-aware truncation, got %q", got)
	}
	if got := TruncateWidth("plain", 0); got != "" {
		t.Errorf("expected empty string for zero width, got %q", got)
	}
}

func TestPadWidth(t *testing.T) {
	if got := PadWidth("ab", 5); got != "ab   " {
		t.Errorf("PadWidth short = %q", got)
	}
	if got := PadWidth("abcdefgh", 5); got != "ab..." {
		t.Errorf("PadWidth long = %q", got)
	}
}

func TestAtomicWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "out.toml")

	if err := AtomicWriteFile(path, []byte("first"), 0o644); err != nil {
		t.Fatalf("AtomicWriteFile: %v", err)
	}
	if err := AtomicWriteFile(path, []byte("second"), 0o644); err != nil {
		t.Fatalf("AtomicWriteFile overwrite: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "second" {
		t.Errorf("content = %q, want %q", data, "second")
	}

	// No temp files left behind.
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the target file, found %d entries", len(entries))
	}
}
