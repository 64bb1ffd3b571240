package io

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/klauspost/compress/zstd"

	"github.com/matzehuels/gridpark/pkg/layout"
)

var baseColumns = []string{
	"pretty",
	"cost_upfront",
	"cost_yearly",
	"co2_cost_upfront",
	"co2_cost_yearly",
	"co2_absorption_yearly",
}

var scoreColumns = []string{"greenery", "accessibility"}

// CSVHeader returns the header row written by a CSVWriter.
func CSVHeader(scores bool) []string {
	h := append([]string(nil), baseColumns...)
	if scores {
		h = append(h, scoreColumns...)
	}
	return h
}

// CSVOptions configures a CSVWriter.
type CSVOptions struct {
	// Scores appends greenery and accessibility columns.
	Scores bool
	// Compress wraps the output in a zstd stream.
	Compress bool
}

// CSVWriter streams layouts as CSV rows. Close must be called to flush
// buffered rows and terminate the zstd frame; it does not close the
// underlying writer.
type CSVWriter struct {
	csv    *csv.Writer
	zw     *zstd.Encoder
	scores bool
	rows   int
	closed bool
}

// NewCSVWriter writes the header row to w and returns a writer for the rows.
func NewCSVWriter(w io.Writer, opts CSVOptions) (*CSVWriter, error) {
	cw := &CSVWriter{scores: opts.Scores}
	if opts.Compress {
		zw, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return nil, fmt.Errorf("init zstd: %w", err)
		}
		cw.zw = zw
		w = zw
	}
	cw.csv = csv.NewWriter(w)
	if err := cw.csv.Write(CSVHeader(opts.Scores)); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	return cw, nil
}

// Write appends one layout row.
func (cw *CSVWriter) Write(l *layout.Layout) error {
	if cw.closed {
		return fmt.Errorf("write to closed csv writer")
	}
	t := l.Totals()
	rec := []string{
		l.Pretty(),
		strconv.Itoa(t.CostUpfront),
		strconv.Itoa(t.CostYearly),
		strconv.Itoa(t.CO2Upfront),
		strconv.Itoa(t.CO2Yearly),
		strconv.Itoa(t.CO2Absorption),
	}
	if cw.scores {
		rec = append(rec, formatScore(l.Greenery()), formatScore(l.Accessibility()))
	}
	if err := cw.csv.Write(rec); err != nil {
		return fmt.Errorf("write row %s: %w", l.FlatCode(), err)
	}
	cw.rows++
	return nil
}

// Rows returns the number of data rows written so far.
func (cw *CSVWriter) Rows() int { return cw.rows }

// Close flushes all pending output. It is safe to call more than once.
func (cw *CSVWriter) Close() error {
	if cw.closed {
		return nil
	}
	cw.closed = true
	cw.csv.Flush()
	if err := cw.csv.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	if cw.zw != nil {
		if err := cw.zw.Close(); err != nil {
			return fmt.Errorf("close zstd: %w", err)
		}
	}
	return nil
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
