// Package dijkstraviz is a step-wise shortest-path engine for teaching
// Dijkstra's algorithm, plus the collaborators that animate it.
//
// The engine never runs on its own: a driver calls Step, and each call
// expands exactly one node and reports the edges it relaxed. Everything a
// renderer needs (tentative distances, predecessors, relaxed and improved
// edges, the final path) is observable between steps.
//
// Packages:
//
//	core/        - directed weighted graph, node roles, per-step edge flags
//	dijkstra/    - the engine state machine, path reconstruction, observers
//	geometry/    - node positions and Euclidean edge costs
//	reach/       - unweighted reachability and hop depth
//	builder/     - fixture graphs: the demo, chains, grids, random, terrain
//	gridgraph/   - character terrain maps and their islands
//	matrix/      - Floyd–Warshall closure used to verify distances
//	scenario/    - YAML/TOML scenario files and the builtin set
//	driver/      - pacing, annotation fades, Frame snapshots
//	render/dot   - Graphviz DOT, SVG and PNG frames
//	render/text  - terminal tables
//	server/      - HTTP API for browser renderers
//
// The dijkstraviz command (cmd/dijkstraviz) exposes run, animate, render,
// serve and demo subcommands.
//
// Quick start:
//
//	go install github.com/katalvlaran/dijkstraviz/cmd/dijkstraviz@latest
//	dijkstraviz run -s demo
//	dijkstraviz animate -s terrain --interval 200ms
package dijkstraviz
