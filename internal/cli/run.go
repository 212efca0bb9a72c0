package cli

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/dijkstraviz/dijkstra"
	"github.com/katalvlaran/dijkstraviz/driver"
	"github.com/katalvlaran/dijkstraviz/matrix"
	"github.com/katalvlaran/dijkstraviz/reach"
	"github.com/katalvlaran/dijkstraviz/render/text"
)

func newRunCmd(o *rootOptions) *cobra.Command {
	var (
		interval time.Duration
		fade     int
		quiet    bool
		verify   bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a scenario to completion, logging every expansion",
		Long: `Run steps the search from start to end and logs each expansion with the
edges it relaxed. When it finishes it prints the final distance table and the
shortest path.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			out := cmd.OutOrStdout()

			ld, err := o.load()
			if err != nil {
				return err
			}

			runID := uuid.NewString()
			opts := driver.Options{
				FadeSteps: fade,
				Pacer:     driver.Interval(interval),
				Logger:    logger,
				RunID:     runID,
			}
			if !quiet {
				opts.Observers = []dijkstra.Observer{driver.NewLogObserver(logger, runID)}
			}
			d, err := driver.New(ld.graph, ld.layout, ld.start, ld.end, opts)
			if err != nil {
				return err
			}
			if err := warnUnreachable(out, ld); err != nil {
				return err
			}

			logger.Info("Running", "scenario", ld.scenario.Name, "start", ld.start, "end", ld.end)
			prog := newProgress(logger)
			res, err := d.Run(ctx)
			if err != nil && !driver.IsExhausted(err) {
				return err
			}
			prog.done(fmt.Sprintf("Finished after %d steps", res.Steps))

			f := d.Snapshot()
			fmt.Fprintln(out, text.Table(f))
			fmt.Fprintln(out, text.Summary(f))
			switch {
			case res.Exhausted:
				printError(out, "search stopped by the safety bound after %d steps", res.Steps)
			case res.Found:
				printSuccess(out, "shortest path %s", text.PathLine(f))
				printKeyValue(out, "distance", strconv.FormatFloat(res.Distance, 'f', 1, 64))
				printKeyValue(out, "steps", strconv.Itoa(res.Steps))
				if hops := hopCount(ld); hops >= 0 && hops < len(f.Path)-1 {
					printInfo(out, "a route with fewer edges (%d) exists but is not cheaper", hops)
				}
			default:
				printWarning(out, "node %d cannot be reached from %d", ld.end, ld.start)
			}

			if verify {
				return verifyDistances(out, ld, f)
			}
			return nil
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", 0, "pause between steps")
	cmd.Flags().IntVar(&fade, "fade", driver.DefaultFadeSteps, "steps a cost annotation stays highlighted")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "do not log individual steps")
	cmd.Flags().BoolVar(&verify, "verify", false, "check final distances against Floyd–Warshall")

	return cmd
}

// warnUnreachable prints the nodes no path from start leads to.
func warnUnreachable(w io.Writer, ld *loaded) error {
	r, err := reach.Reachable(ld.graph, ld.start)
	if err != nil {
		return err
	}
	missing := r.Unreached(ld.graph)
	if len(missing) == 0 {
		return nil
	}

	ids := make([]string, len(missing))
	for i, id := range missing {
		ids[i] = strconv.Itoa(int(id))
	}
	if !r.Reaches(ld.end) {
		printWarning(w, "end node %d is not reachable from %d", ld.end, ld.start)
	}
	printInfo(w, "unreachable from %d: %s", ld.start, strings.Join(ids, ", "))

	return nil
}

// hopCount is the number of edges on the fewest-edge route to end, or -1.
func hopCount(ld *loaded) int {
	r, err := reach.Reachable(ld.graph, ld.start)
	if err != nil || !r.Reaches(ld.end) {
		return -1
	}
	return r.Depth[ld.end]
}

// errDistanceMismatch is returned by run --verify when a check fails.
var errDistanceMismatch = errors.New("distances disagree with Floyd–Warshall")

// verifyDistances compares every settled distance in f with the all-pairs
// closure. Unvisited nodes count as +Inf once the run ended unreachable and are
// skipped otherwise.
func verifyDistances(w io.Writer, ld *loaded, f driver.Frame) error {
	closure, err := matrix.AllPairs(ld.graph)
	if err != nil {
		return err
	}

	dist := make([]float64, len(f.Nodes))
	for i, n := range f.Nodes {
		switch {
		case n.Visited && n.Distance != nil:
			dist[i] = *n.Distance
		case f.Done && !f.Found && !f.Exhausted:
			dist[i] = math.Inf(1)
		default:
			dist[i] = math.NaN()
		}
	}
	bad, err := matrix.Compare(closure, ld.start, dist, 1e-9)
	if err != nil {
		return err
	}
	if len(bad) == 0 {
		printSuccess(w, "distances match Floyd–Warshall")
		return nil
	}
	for _, m := range bad {
		printError(w, "node %d: got %s, want %s", m.Node, formatDist(m.Got), formatDist(m.Want))
	}

	return fmt.Errorf("%w: %d nodes", errDistanceMismatch, len(bad))
}

func formatDist(v float64) string {
	if math.IsInf(v, 1) {
		return "∞"
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}
