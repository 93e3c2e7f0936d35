// seqstats - length statistics for FASTA/FASTQ files
// Reports record count, total length, Nx metrics (N50/N75 + user-defined percentiles),
// and min/max lengths, for raw and homopolymer-compressed lengths, with and without Ns

package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const VERSION = "1.0.0"

// Define color functions
var (
	bold   = color.New(color.Bold).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
)

// exitFunc is swappable in tests
var exitFunc = os.Exit

// Command-line flags
var (
	outFile     string
	filterIDs   []string
	percentiles []int
	quiet       bool
	version     bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "seqstats <input.fasta|input.fastq>",
		Short: bold("Compute length statistics for FASTA/FASTQ files"),
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if version {
				fmt.Printf("seqstats %s\n", VERSION)
				return nil
			}

			if len(args) == 0 {
				helpFunc(cmd, args)
				return nil
			}

			// Validate additional percentiles before touching the input
			if err := validatePercentiles(percentiles); err != nil {
				return err
			}

			return runStats(args[0], outFile, filterIDs, percentiles, quiet)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetHelpFunc(helpFunc)

	flags := rootCmd.Flags()
	flags.StringVarP(&outFile, "out", "o", "-", "Output file for the report (default: stdout)")
	flags.StringArrayVarP(&filterIDs, "filter-id", "f", nil, "Exclude records with the given id (repeatable)")
	flags.IntSliceVarP(&percentiles, "additional-percentile", "p", nil, "Additional Nx percentiles to report (repeatable; N50 and N75 are always reported)")
	flags.BoolVarP(&quiet, "quiet", "q", false, "Disable progress reporting")
	flags.BoolVarP(&version, "version", "v", false, "Show version information")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, red("Error: "+err.Error()))
		fmt.Fprintln(os.Stderr, red("Try 'seqstats --help' for more information"))
		exitFunc(1)
	}
}

// validatePercentiles rejects Nx percentiles outside [0,100].
// Values are not clamped: silently changing the requested percentile
// would change the meaning of the reported metric
func validatePercentiles(percentiles []int) error {
	for _, p := range percentiles {
		if p < 0 || p > 100 {
			return fmt.Errorf("invalid percentile %d: must be between 0 and 100", p)
		}
	}
	return nil
}
