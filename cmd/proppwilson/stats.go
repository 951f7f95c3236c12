package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/proppwilson/stats"
)

func newStatsCmd(a *app) *cobra.Command {
	var side int
	cmd := &cobra.Command{
		Use:   "stats DATA",
		Short: "Summarise sweep output per temperature",
		Long: `stats reads "t dt iterations magnetization energy" lines and prints, for each
run of equal t:

  t dt count mean|m| std|m| binder mean(e) std(e) mean(iter) std(iter)

with m = M/N and e = E/N. Without -n the side is read from the file name
prefix, e.g. 32.txt.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.runStats(args[0], side)
		},
	}
	cmd.Flags().IntVarP(&side, "side", "n", 0, "lattice side n, derived from the file name when 0")
	return cmd
}

func (a *app) runStats(path string, side int) error {
	if side == 0 {
		n, err := stats.SideFromFileName(path)
		if err != nil {
			return err
		}
		side = n
	}
	if side < 0 {
		return errors.Wrapf(stats.ErrBadSites, "side %d", side)
	}

	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "open data")
	}
	defer f.Close()

	sums, err := stats.Aggregate(f, side*side)
	if err != nil {
		return errors.Wrap(err, path)
	}
	out := bufio.NewWriter(a.stdout)
	for _, s := range sums {
		fmt.Fprintln(out, s.String())
	}
	return out.Flush()
}
