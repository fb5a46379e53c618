package symcalc

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// Sink renders sampled points.
type Sink interface {
	// DrawScatterPlot draws a scatter plot of the points (xs[i], ys[i]). xs
	// and ys have the same length.
	DrawScatterPlot(title, xLabel, yLabel string, xs, ys []float64) error
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(title, xLabel, yLabel string, xs, ys []float64) error

func (f SinkFunc) DrawScatterPlot(title, xLabel, yLabel string, xs, ys []float64) error {
	return f(title, xLabel, yLabel, xs, ys)
}

// TableSink is a Sink that writes plots as aligned columns of text. It writes
// nothing and returns an error when xs and ys differ in length.
type TableSink struct {
	// W is the destination of the table.
	W io.Writer
	// Format is the fmt verb used for values. If empty, %g is used.
	Format string
}

func (t *TableSink) DrawScatterPlot(title, xLabel, yLabel string, xs, ys []float64) error {
	if len(xs) != len(ys) {
		return fmt.Errorf("symcalc: plot has %d x values but %d y values", len(xs), len(ys))
	}
	verb := t.Format
	if verb == "" {
		verb = "%g"
	}
	row := verb + "\t" + verb + "\n"
	if _, err := fmt.Fprintf(t.W, "# %s\n", title); err != nil {
		return err
	}
	w := tabwriter.NewWriter(t.W, 0, 8, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\n", xLabel, yLabel)
	for i, x := range xs {
		fmt.Fprintf(w, row, x, ys[i])
	}
	return w.Flush()
}

var (
	_ Sink = SinkFunc(nil)
	_ Sink = (*TableSink)(nil)
)
