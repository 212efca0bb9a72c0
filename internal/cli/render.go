package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dijkstraviz/driver"
	"github.com/katalvlaran/dijkstraviz/render/dot"
)

func newRenderCmd(o *rootOptions) *cobra.Command {
	var (
		out       string
		svg       bool
		png       bool
		positions bool
		comments  bool
		fade      int
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Write one Graphviz frame per step",
		Long: `Render runs the search and writes the state before the first step and after
every step as step-NNN.dot in --out. With --svg each frame is also rendered to
SVG; with --png the final frame is rendered to final.png.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			w := cmd.OutOrStdout()

			ld, err := o.load()
			if err != nil {
				return err
			}

			opts := dot.Options{Positions: positions, Comments: comments}
			fw, err := dot.NewFrameWriter(out, svg, opts)
			if err != nil {
				return err
			}
			d, err := driver.New(ld.graph, ld.layout, ld.start, ld.end, driver.Options{
				FadeSteps: fade,
				Logger:    logger,
				Sinks:     []driver.FrameSink{fw},
			})
			if err != nil {
				return err
			}

			prog := newProgress(logger)
			res, err := d.Run(ctx)
			if err != nil && !driver.IsExhausted(err) {
				return err
			}
			prog.done("Rendered frames")

			files := fw.Written()
			if png {
				data, err := dot.RenderPNG(ctx, dot.ToDOT(d.Snapshot(), opts), opts)
				if err != nil {
					return err
				}
				path := filepath.Join(out, "final.png")
				if err := os.WriteFile(path, data, 0o644); err != nil {
					return err
				}
				files = append(files, path)
			}

			printSuccess(w, "wrote %d files for %d steps", len(files), res.Steps)
			if len(files) > 0 {
				printFile(w, files[0])
				if len(files) > 1 {
					printFile(w, files[len(files)-1])
				}
			}
			if !res.Found {
				printWarning(w, "node %d cannot be reached from %d", ld.end, ld.start)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "frames", "output directory")
	cmd.Flags().BoolVar(&svg, "svg", false, "also render every frame to SVG")
	cmd.Flags().BoolVar(&png, "png", false, "render the final frame to final.png")
	cmd.Flags().BoolVar(&positions, "positions", true, "pin nodes at their scenario coordinates")
	cmd.Flags().BoolVar(&comments, "comments", true, "show fresh cost annotations in node labels")
	cmd.Flags().IntVar(&fade, "fade", driver.DefaultFadeSteps, "steps a cost annotation stays highlighted")

	return cmd
}
