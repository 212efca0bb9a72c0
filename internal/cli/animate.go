package cli

import (
	"errors"
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/dijkstraviz/driver"
)

func newAnimateCmd(o *rootOptions) *cobra.Command {
	var (
		interval time.Duration
		fade     int
		paused   bool
	)

	cmd := &cobra.Command{
		Use:   "animate",
		Short: "Animate the search in the terminal",
		Long: `Animate expands one node per tick and redraws the distance table.

Keys: space pauses, n steps once, r restarts, q quits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			ld, err := o.load()
			if err != nil {
				return err
			}
			// Log lines would tear the redrawn screen.
			d, err := driver.New(ld.graph, ld.layout, ld.start, ld.end, driver.Options{
				FadeSteps: fade,
				Logger:    newLogger(io.Discard, logger.GetLevel()),
			})
			if err != nil {
				return err
			}

			title := fmt.Sprintf("%s: %d → %d", ld.scenario.Name, ld.start, ld.end)
			m := NewAnimateModel(ctx, d, title, interval)
			m.Paused = paused

			p := tea.NewProgram(m, tea.WithContext(ctx), tea.WithOutput(cmd.OutOrStdout()))
			final, err := p.Run()
			if err != nil {
				if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
					return ctx.Err()
				}
				return err
			}
			if fm, ok := final.(AnimateModel); ok && fm.Err != nil {
				return fm.Err
			}
			if res, ok := d.Result(); ok {
				logger.Info("Animation finished", "found", res.Found, "steps", res.Steps)
			}

			return nil
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", 500*time.Millisecond, "time between steps")
	cmd.Flags().IntVar(&fade, "fade", 2, "steps a cost annotation stays highlighted")
	cmd.Flags().BoolVar(&paused, "paused", false, "start paused")

	return cmd
}
