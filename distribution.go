package main

import (
	"fmt"
	"math/bits"
	"sort"
)

// LengthCollector accumulates the four per-record length distributions for a
// single run. Collected in input order; sorted descending just before the
// report is rendered
type LengthCollector struct {
	Lengths              []int
	HocoLengths          []int
	LengthsWithoutNs     []int
	HocoLengthsWithoutNs []int
}

// Add appends one record's statistics to all four distributions.
// Zero lengths are kept: empty records count towards the record total
func (c *LengthCollector) Add(stats SequenceStatistics) {
	c.Lengths = append(c.Lengths, stats.Len)
	c.HocoLengths = append(c.HocoLengths, stats.HocoLen)
	c.LengthsWithoutNs = append(c.LengthsWithoutNs, stats.LenWithoutNs)
	c.HocoLengthsWithoutNs = append(c.HocoLengthsWithoutNs, stats.HocoLenWithoutNs)
}

// Count returns the number of collected records
func (c *LengthCollector) Count() int {
	return len(c.Lengths)
}

// sortDescending sorts a length distribution in non-increasing order and
// returns its total length
func sortDescending(lengths []int) (total int) {
	sort.Sort(sort.Reverse(sort.IntSlice(lengths)))
	for _, l := range lengths {
		total += l
	}
	return total
}

// coverageThreshold returns the number of bases that sequences counted towards
// an Nx metric must cover: floor(total * percentile / 100). The product is
// computed in 128 bits; genome-scale totals overflow int64 when multiplied by
// the percentile directly
func coverageThreshold(total int, percentile int) int {
	hi, lo := bits.Mul64(uint64(total), uint64(percentile))
	quo, _ := bits.Div64(hi, lo, 100)
	return int(quo)
}

// nx returns the Nx length for a distribution sorted in non-increasing order
// with the given total: the length of the first element, scanning from the
// largest down, at which the cumulative length reaches the coverage threshold.
//
// The caller guarantees a non-empty, descending-sorted distribution whose
// elements sum to total; violating that is a programming error, not a runtime
// condition
func nx(sortedLengths []int, total int, percentile int) int {
	if len(sortedLengths) == 0 {
		panic("nx: empty length distribution")
	}

	required := coverageThreshold(total, percentile)

	sum := 0
	for _, l := range sortedLengths {
		sum += l
		if sum >= required {
			return l
		}
	}

	// required <= total, so the scan always terminates above
	panic(fmt.Sprintf("nx: coverage threshold %d not reached (total %d)", required, total))
}
