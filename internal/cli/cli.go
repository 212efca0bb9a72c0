// Package cli implements the dijkstraviz command-line interface.
//
// # Commands
//
//   - run: step a scenario to completion, logging every expansion
//   - animate: replay the search in the terminal, one expansion per tick
//   - render: write one Graphviz frame per step
//   - serve: expose runs over HTTP
//   - demo: print a builtin scenario as YAML or TOML
//
// Every command reads the same scenario flags: --scenario names a builtin or a
// YAML/TOML file, and --start/--end override its endpoints.
//
// # Logging
//
// --verbose (-v) switches to debug level, which adds one line per relaxed edge.
// The logger travels in the command context.
package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/dijkstraviz/core"
	"github.com/katalvlaran/dijkstraviz/geometry"
	"github.com/katalvlaran/dijkstraviz/scenario"
)

var version = "dev"

// SetVersion sets the string printed by --version.
func SetVersion(v string) { version = v }

// rootOptions holds the persistent flags shared by every command.
type rootOptions struct {
	verbose  bool
	scenario string
	start    int
	end      int
}

// Execute runs the CLI with os.Args.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	o := &rootOptions{}

	root := &cobra.Command{
		Use:          "dijkstraviz",
		Short:        "Watch Dijkstra's algorithm find a shortest path, one step at a time",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if o.verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level)))
		},
	}

	pf := root.PersistentFlags()
	pf.BoolVarP(&o.verbose, "verbose", "v", false, "enable verbose logging")
	pf.StringVarP(&o.scenario, "scenario", "s", "demo", "builtin scenario name or path to a .yaml/.toml file")
	pf.IntVar(&o.start, "start", -1, "start node (default: the scenario's)")
	pf.IntVar(&o.end, "end", -1, "end node (default: the scenario's)")

	root.AddCommand(newRunCmd(o))
	root.AddCommand(newAnimateCmd(o))
	root.AddCommand(newRenderCmd(o))
	root.AddCommand(newServeCmd(o))
	root.AddCommand(newDemoCmd(o))

	return root
}

// loaded is a resolved scenario with its graph built and endpoints applied.
type loaded struct {
	scenario   *scenario.Scenario
	graph      *core.Graph
	layout     *geometry.Layout
	start, end core.NodeID
}

func (o *rootOptions) load() (*loaded, error) {
	sc, err := scenario.Resolve(o.scenario)
	if err != nil {
		return nil, err
	}
	g, l, err := sc.Build()
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", sc.Name, err)
	}

	ld := &loaded{scenario: sc, graph: g, layout: l, start: sc.StartID(), end: sc.EndID()}
	if o.start >= 0 {
		ld.start = core.NodeID(o.start)
	}
	if o.end >= 0 {
		ld.end = core.NodeID(o.end)
	}

	return ld, nil
}
