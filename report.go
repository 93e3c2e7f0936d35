package main

import (
	"fmt"
	"io"
	"sort"
)

// writeReport renders the statistics report. One line per metric, fixed order:
// record count, then for each of the raw and hoco length groups the masked-base
// count followed by the with-Ns and without-Ns metric blocks.
//
// Sorts the collector's distributions in place. With zero records only the
// count line is printed: Nx is undefined over an empty distribution
func writeReport(w io.Writer, collector *LengthCollector, additionalPercentiles []int) {
	fmt.Fprintf(w, "# records: %d\n", collector.Count())
	if collector.Count() == 0 {
		return
	}

	// Report additional percentiles in ascending order.
	// Duplicates are preserved and render as repeated lines
	percentiles := make([]int, len(additionalPercentiles))
	copy(percentiles, additionalPercentiles)
	sort.Ints(percentiles)

	writeLengthGroup(w, collector.Lengths, collector.LengthsWithoutNs, percentiles, "")
	writeLengthGroup(w, collector.HocoLengths, collector.HocoLengthsWithoutNs, percentiles, "hoco ")
}

// writeLengthGroup renders one length group (raw or hoco): the masked-base
// count, then the metric block including Ns and the one excluding them
func writeLengthGroup(w io.Writer, lengths, lengthsWithoutNs []int, percentiles []int, prefix string) {
	total := sortDescending(lengths)
	totalWithoutNs := sortDescending(lengthsWithoutNs)

	fmt.Fprintf(w, "%s# Ns: %d\n", prefix, total-totalWithoutNs)
	writeNxBlock(w, lengths, total, percentiles, prefix, "")
	writeNxBlock(w, lengthsWithoutNs, totalWithoutNs, percentiles, prefix, " without Ns")
}

// writeNxBlock renders the metric block for one sorted distribution:
// total length, N50, N75, the additional Nx values, and max/min lengths
func writeNxBlock(w io.Writer, sortedLengths []int, total int, percentiles []int, prefix, suffix string) {
	fmt.Fprintf(w, "%stotal length%s: %d\n", prefix, suffix, total)
	fmt.Fprintf(w, "%sN50%s: %d\n", prefix, suffix, nx(sortedLengths, total, 50))
	fmt.Fprintf(w, "%sN75%s: %d\n", prefix, suffix, nx(sortedLengths, total, 75))

	for _, p := range percentiles {
		fmt.Fprintf(w, "%sN%d%s: %d\n", prefix, p, suffix, nx(sortedLengths, total, p))
	}

	fmt.Fprintf(w, "%smax len%s: %d\n", prefix, suffix, sortedLengths[0])
	fmt.Fprintf(w, "%smin len%s: %d\n", prefix, suffix, sortedLengths[len(sortedLengths)-1])
}
