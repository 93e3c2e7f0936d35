package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Custom help function with nicely formatted, colorized output
func helpFunc(cmd *cobra.Command, args []string) {
	fmt.Printf(`
%s

%s
  Compute length statistics for a FASTA or FASTQ file (format detected
  automatically, compressed files supported). For each statistic group,
  metrics are reported for raw and homopolymer-compressed (hoco) lengths,
  each including and excluding masked bases (N/n).

%s
  %s
  %s
  %s
  %s
  %s
  %s

%s
  %s
  %s
  %s
  %s
  %s

%s
  # Basic report
  %s

  # Report N90 and N95 in addition to N50/N75, exclude two contigs
  %s

  # Read from stdin, write the report to a gzip-compressed file
  %s

`,
		bold(cyan("seqstats")+" v."+VERSION+" - Length statistics for FASTA/FASTQ files"),
		bold(yellow("Description:")),
		bold(yellow("Flags:")),
		cyan("-o, --out")+" <string>                : Output file for the report (default, '-' for stdout)",
		cyan("-f, --filter-id")+" <string>          : Exclude records with the given id (pass multiple times for multiple ids)",
		cyan("-p, --additional-percentile")+" <int> : Additional Nx percentile to report (N50 and N75 are always reported)",
		cyan("-q, --quiet")+" <bool>                : Disable progress reporting (default, false)",
		cyan("-h, --help")+"                        : Show help message",
		cyan("-v, --version")+"                     : Show version information",
		bold(yellow("Reported metrics:")),
		cyan("# records")+"    : number of records that survived filtering",
		cyan("# Ns")+"         : number of masked bases per length group",
		cyan("total length")+" : sum of lengths per group",
		cyan("Nx")+"           : length L such that sequences of length >= L cover x% of the total",
		cyan("max/min len")+"  : extreme lengths per group",
		bold(yellow("Usage examples:")),
		cyan("seqstats assembly.fasta"),
		cyan("seqstats -p 90 -p 95 -f chrM -f scaffold_12 assembly.fasta.gz"),
		cyan("cat reads.fq | seqstats -o report.txt.gz -"),
	)
}
