package main

// SequenceStatistics holds the four length variants extracted from one sequence:
// raw length, homopolymer-compressed (hoco) length, and both lengths excluding
// masked (N/n) positions. Invariants: HocoLen <= Len, LenWithoutNs <= Len,
// HocoLenWithoutNs <= HocoLen; all four are zero for an empty sequence
type SequenceStatistics struct {
	Len              int
	HocoLen          int
	LenWithoutNs     int
	HocoLenWithoutNs int
}

// isMasked reports whether a base is the masked symbol. Case-insensitive
func isMasked(b byte) bool {
	return b == 'N' || b == 'n'
}

// isLineBreak reports whether a byte is a line-break artifact of multi-line
// records. Line breaks contribute to none of the four lengths
func isLineBreak(b byte) bool {
	return b == '\n' || b == '\r'
}

// NewSequenceStatistics computes all four length variants in a single forward
// pass over the sequence bytes, O(len) time and O(1) extra memory.
//
// The hoco length counts maximal runs of identical consecutive bytes. Run
// boundaries compare exact bytes: 'N' followed by 'n' is two runs even though
// both are masked. A run is masked if its representative byte is N or n; the
// hoco length without Ns subtracts the number of masked runs
func NewSequenceStatistics(sequence []byte) SequenceStatistics {
	var stats SequenceStatistics

	i := 0
	for i < len(sequence) && isLineBreak(sequence[i]) {
		i++
	}
	if i == len(sequence) {
		return stats
	}

	lastByte := sequence[i]
	length := 1
	hocoLength := 1
	ns := 0
	if isMasked(lastByte) {
		ns = 1
	}
	hocoNs := ns

	for _, b := range sequence[i+1:] {
		if isLineBreak(b) {
			continue
		}

		length++
		if isMasked(b) {
			ns++
		}

		if b != lastByte {
			lastByte = b
			hocoLength++
			if isMasked(b) {
				hocoNs++
			}
		}
	}

	stats.Len = length
	stats.HocoLen = hocoLength
	stats.LenWithoutNs = length - ns
	stats.HocoLenWithoutNs = hocoLength - hocoNs
	return stats
}
