package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/rulemd/rulemd/internal/app/service"
	"github.com/rulemd/rulemd/internal/app/service/discover"
	"github.com/rulemd/rulemd/pkg/rulemd"
)

// NewBenchCommand builds the `bench` command: parse a corpus of
// Markdown files repeatedly and report throughput. With --verbose,
// service.ProgressReporter's start/complete callbacks print a line to
// stderr when the run begins and ends.
func NewBenchCommand() *cobra.Command {
	var iterations int

	cmd := &cobra.Command{
		Use:   "bench [paths...]",
		Short: "Benchmark parse throughput over a corpus of Markdown files",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			verbose, _ := cmd.Flags().GetBool("verbose")

			files, err := discover.Files(afero.NewOsFs(), args, discover.Options{})
			if err != nil {
				return fmt.Errorf("bench: %w", err)
			}
			if len(files) == 0 {
				return fmt.Errorf("bench: no markdown files found")
			}

			sources := make([]string, len(files))
			var totalBytes int64
			for i, f := range files {
				data, err := os.ReadFile(f)
				if err != nil {
					return fmt.Errorf("bench: reading %s: %w", f, err)
				}
				sources[i] = string(data)
				totalBytes += int64(len(data))
			}

			opts := service.DefaultRunOptions()
			opts.VerboseLogging = verbose
			reporter := service.NewProgressReporter(opts)
			if verbose {
				reporter.SetCallbacks(
					func(total int) {
						fmt.Fprintf(cmd.ErrOrStderr(), "bench: starting %d files x %d iterations\n", total, iterations)
					},
					nil,
					func(processed, total int, duration time.Duration) {
						fmt.Fprintf(cmd.ErrOrStderr(), "bench: finished %d/%d in %s\n", processed, total, duration)
					},
				)
			}

			reporter.Start(cmd.Context(), len(files)*iterations)
			start := time.Now()
			var parsed int
			for i := 0; i < iterations; i++ {
				for fi, src := range sources {
					if _, err := rulemd.Parse(src, nil); err != nil {
						return fmt.Errorf("bench: parsing %s: %w", files[fi], err)
					}
					parsed++
					reporter.ReportFile(files[fi])
				}
			}
			elapsed := time.Since(start)
			reporter.Stop()

			bytesPerSec := float64(totalBytes*int64(iterations)) / elapsed.Seconds()
			fmt.Fprintf(cmd.OutOrStdout(), "files:      %d\n", len(files))
			fmt.Fprintf(cmd.OutOrStdout(), "iterations: %d\n", iterations)
			fmt.Fprintf(cmd.OutOrStdout(), "parses:     %d\n", parsed)
			fmt.Fprintf(cmd.OutOrStdout(), "elapsed:    %s\n", elapsed)
			fmt.Fprintf(cmd.OutOrStdout(), "throughput: %.2f MB/s\n", bytesPerSec/(1024*1024))
			return nil
		},
	}

	cmd.Flags().IntVar(&iterations, "iterations", 10, "Number of times to re-parse the corpus")
	return cmd
}
