package main

import (
	"strings"
	"testing"
)

// Test per-sequence length extraction
func TestNewSequenceStatistics(t *testing.T) {
	tests := []struct {
		name     string
		sequence string
		want     SequenceStatistics
	}{
		{
			name:     "Empty sequence",
			sequence: "",
			want:     SequenceStatistics{Len: 0, HocoLen: 0, LenWithoutNs: 0, HocoLenWithoutNs: 0},
		},
		{
			name:     "Single base",
			sequence: "A",
			want:     SequenceStatistics{Len: 1, HocoLen: 1, LenWithoutNs: 1, HocoLenWithoutNs: 1},
		},
		{
			name:     "Single masked base",
			sequence: "N",
			want:     SequenceStatistics{Len: 1, HocoLen: 1, LenWithoutNs: 0, HocoLenWithoutNs: 0},
		},
		{
			name:     "Homopolymer collapses to one run",
			sequence: "AAAAAAAA",
			want:     SequenceStatistics{Len: 8, HocoLen: 1, LenWithoutNs: 8, HocoLenWithoutNs: 1},
		},
		{
			name:     "No masked bases leaves without-Ns lengths equal",
			sequence: "ACGTACGT",
			want:     SequenceStatistics{Len: 8, HocoLen: 8, LenWithoutNs: 8, HocoLenWithoutNs: 8},
		},
		{
			name:     "Masked run and homopolymers",
			sequence: "AAANNNTT",
			want:     SequenceStatistics{Len: 8, HocoLen: 3, LenWithoutNs: 5, HocoLenWithoutNs: 2},
		},
		{
			name:     "Lowercase masked bases count as masked",
			sequence: "nnn",
			want:     SequenceStatistics{Len: 3, HocoLen: 1, LenWithoutNs: 0, HocoLenWithoutNs: 0},
		},
		{
			// Run boundaries compare exact bytes: N and n are distinct runs
			// even though both are masked
			name:     "Mixed-case masked bases are separate runs",
			sequence: "NnN",
			want:     SequenceStatistics{Len: 3, HocoLen: 3, LenWithoutNs: 0, HocoLenWithoutNs: 0},
		},
		{
			name:     "Embedded line breaks are not counted",
			sequence: "AAA\nGGG\n",
			want:     SequenceStatistics{Len: 6, HocoLen: 2, LenWithoutNs: 6, HocoLenWithoutNs: 2},
		},
		{
			name:     "Line break inside a run does not split it",
			sequence: "AA\nAA",
			want:     SequenceStatistics{Len: 4, HocoLen: 1, LenWithoutNs: 4, HocoLenWithoutNs: 1},
		},
		{
			name:     "Carriage returns are line breaks",
			sequence: "AC\r\nGT",
			want:     SequenceStatistics{Len: 4, HocoLen: 4, LenWithoutNs: 4, HocoLenWithoutNs: 4},
		},
		{
			name:     "Leading line breaks are skipped",
			sequence: "\nACGT",
			want:     SequenceStatistics{Len: 4, HocoLen: 4, LenWithoutNs: 4, HocoLenWithoutNs: 4},
		},
		{
			name:     "Only line breaks is an empty sequence",
			sequence: "\n\r\n",
			want:     SequenceStatistics{Len: 0, HocoLen: 0, LenWithoutNs: 0, HocoLenWithoutNs: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewSequenceStatistics([]byte(tt.sequence))
			if got != tt.want {
				t.Errorf("NewSequenceStatistics(%q) = %+v, want %+v", tt.sequence, got, tt.want)
			}
		})
	}
}

// The four lengths must respect their ordering invariants for any input
func TestSequenceStatisticsInvariants(t *testing.T) {
	sequences := []string{
		"",
		"A",
		"N",
		"ACGTNNNNacgtnnnn",
		strings.Repeat("AN", 1000),
		strings.Repeat("T", 1000),
		"GGG\nNNN\nGGG",
	}

	for _, s := range sequences {
		stats := NewSequenceStatistics([]byte(s))

		if stats.HocoLen > stats.Len {
			t.Errorf("%q: HocoLen %d > Len %d", s, stats.HocoLen, stats.Len)
		}
		if stats.LenWithoutNs > stats.Len {
			t.Errorf("%q: LenWithoutNs %d > Len %d", s, stats.LenWithoutNs, stats.Len)
		}
		if stats.HocoLenWithoutNs > stats.HocoLen {
			t.Errorf("%q: HocoLenWithoutNs %d > HocoLen %d", s, stats.HocoLenWithoutNs, stats.HocoLen)
		}

		empty := stats == SequenceStatistics{}
		wantEmpty := strings.Trim(s, "\n\r") == ""
		if empty != wantEmpty {
			t.Errorf("%q: all-zero statistics = %v, want %v", s, empty, wantEmpty)
		}
	}
}
