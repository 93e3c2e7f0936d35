// Main run: stream records from the input, filter by id, extract per-sequence
// length statistics, and render the aggregate report

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/shenwei356/bio/seq"
	"github.com/shenwei356/bio/seqio/fastx"
	"github.com/shenwei356/xopen"
)

// runStats processes one FASTA/FASTQ input end to end and writes the report
// to outFile ("-" = stdout). The input format is detected automatically;
// compressed inputs and outputs are handled transparently.
//
// Any read error, including a record whose id is not valid UTF-8, aborts the
// run before the report is written: a partial report could be mistaken for a
// complete one
func runStats(inFile, outFile string, filterIDs []string, additionalPercentiles []int, quiet bool) error {
	progress := noProgress
	if inFile != "-" {
		info, err := os.Stat(inFile)
		if err != nil {
			return fmt.Errorf("cannot access input file: %v", err)
		}
		if !info.Mode().IsRegular() {
			return fmt.Errorf("not a regular file: %s", inFile)
		}
		if !quiet {
			progress = stderrProgress(info.Size())
		}
	}

	reader, err := fastx.NewReader(seq.DNAredundant, inFile, fastx.DefaultIDRegexp)
	if err != nil {
		return fmt.Errorf("error creating reader: %v", err)
	}
	defer reader.Close()

	collector, err := collectStatistics(reader, newIDFilter(filterIDs), progress)
	if err != nil {
		return err
	}

	outfh, err := xopen.Wopen(outFile)
	if err != nil {
		return fmt.Errorf("error creating output file: %v", err)
	}
	defer outfh.Close()

	writeReport(outfh, collector, additionalPercentiles)
	return nil
}

// collectStatistics drains the reader, skipping filtered records and
// accumulating the four length distributions of the surviving ones.
// The progress observer is invoked once per processed record
func collectStatistics(reader *fastx.Reader, filter idFilter, progress ProgressFunc) (*LengthCollector, error) {
	collector := &LengthCollector{}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading record: %v", err)
		}

		excluded, err := filter.Excludes(record.ID)
		if err != nil {
			return nil, err
		}
		if excluded {
			continue
		}

		collector.Add(NewSequenceStatistics(record.Seq.Seq))
		progress(collector.Count(), false)
	}

	progress(collector.Count(), true)
	return collector, nil
}
