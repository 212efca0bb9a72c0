package dot

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/katalvlaran/dijkstraviz/driver"
)

// FrameWriter is a driver.FrameSink that writes every frame as step-NNN.dot,
// and as step-NNN.svg when SVG is set.
type FrameWriter struct {
	Dir     string
	SVG     bool
	Options Options

	written []string
}

// NewFrameWriter creates dir if needed.
func NewFrameWriter(dir string, svg bool, opts Options) (*FrameWriter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create frame dir: %w", err)
	}
	return &FrameWriter{Dir: dir, SVG: svg, Options: opts}, nil
}

// Publish writes f.
func (w *FrameWriter) Publish(ctx context.Context, f driver.Frame) error {
	src := ToDOT(f, w.Options)
	base := filepath.Join(w.Dir, fmt.Sprintf("step-%03d", f.Step))

	if err := w.write(base+".dot", []byte(src)); err != nil {
		return err
	}
	if !w.SVG {
		return nil
	}
	svg, err := RenderSVG(ctx, src, w.Options)
	if err != nil {
		return fmt.Errorf("frame %d: %w", f.Step, err)
	}
	return w.write(base+".svg", svg)
}

func (w *FrameWriter) write(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	w.written = append(w.written, path)
	return nil
}

// Written lists the files written so far, in order.
func (w *FrameWriter) Written() []string {
	return append([]string(nil), w.written...)
}
