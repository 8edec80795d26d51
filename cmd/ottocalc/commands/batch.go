package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// batch [file]: evaluate one expression per line, each in its own
// session, and print "expr<TAB>display" in input order.
func batchCmd() *cobra.Command {
	var jobs int
	cmd := &cobra.Command{
		Use:   "batch [file]",
		Short: "Evaluate one expression per line (stdin when no file is given)",
		Long: `Evaluate one expression per line (stdin when no file is given).

Lines accept the same characters as eval. A line with any other
character stops the batch with an error naming the line.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			lines, err := readLines(in)
			if err != nil {
				return err
			}

			a := appCtx
			eng := a.newEngine()
			results := make([]string, len(lines))

			if jobs < 1 {
				jobs = runtime.NumCPU()
			}
			eg, gctx := errgroup.WithContext(cmd.Context())
			eg.SetLimit(jobs)
			for i, line := range lines {
				i, line := i, line // per-iteration copy (implicit in Go >= 1.22)
				eg.Go(func() error {
					sess, err := eng.Open(gctx, nil)
					if err != nil {
						return err
					}
					defer eng.Close(gctx, sess.ID)

					final, err := typeText(gctx, eng, a.keys, a.log, sess.ID, line)
					if err != nil {
						return fmt.Errorf("line %d: %w", i+1, err)
					}
					results[i] = final.Display
					return nil
				})
			}
			if err := eg.Wait(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, line := range lines {
				fmt.Fprintf(out, "%s\t%s\n", line, results[i])
			}
			a.log.Info("batch: evaluated %d expressions", len(lines))
			return nil
		},
	}
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "expressions evaluated in parallel (default: number of CPUs)")
	return cmd
}

// readLines returns the non-blank lines of r, trimmed.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, sc.Err()
}
