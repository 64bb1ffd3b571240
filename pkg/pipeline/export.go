package pipeline

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"time"

	pkgio "github.com/matzehuels/gridpark/pkg/io"
	"github.com/matzehuels/gridpark/pkg/layout"
	"github.com/matzehuels/gridpark/pkg/observability"
	"github.com/matzehuels/gridpark/pkg/tile"
)

// FileName returns the output file name for one format of one batch.
func FileName(format, stem string, compress bool) string {
	switch format {
	case FormatCSV:
		if compress {
			return stem + ".csv.zst"
		}
		return stem + ".csv"
	case FormatCost:
		return stem + "_cost.yaml"
	case FormatQuality:
		return stem + "_quality.yaml"
	case FormatPoset:
		return stem + ".poset"
	case FormatDOT:
		return stem + ".dot"
	case FormatSVG:
		return stem + ".svg"
	case FormatSummary:
		return stem + "_summary.json"
	}
	return stem + "." + format
}

func (o *Options) wants(format string) bool {
	return slices.Contains(o.Formats, format)
}

// writeBatch writes one file per requested batch format and returns the
// paths written before any failure.
func writeBatch(ctx context.Context, opts *Options, stem string, layouts []*layout.Layout) ([]string, error) {
	var files []string
	for _, format := range opts.Formats {
		if format == FormatSummary {
			continue
		}
		path := filepath.Join(opts.OutputDir, FileName(format, stem, opts.Compress))
		err := exportFile(ctx, format, path, func(w io.Writer) error {
			return writeFormat(ctx, format, w, layouts, opts)
		})
		if err != nil {
			return files, err
		}
		files = append(files, path)
	}
	return files, nil
}

func writeFormat(ctx context.Context, format string, w io.Writer, layouts []*layout.Layout, opts *Options) error {
	switch format {
	case FormatCSV:
		cw, err := pkgio.NewCSVWriter(w, pkgio.CSVOptions{Scores: opts.Scores, Compress: opts.Compress})
		if err != nil {
			return err
		}
		for _, l := range layouts {
			if err := cw.Write(l); err != nil {
				return err
			}
		}
		return cw.Close()
	case FormatCost:
		return pkgio.WriteYAML(pkgio.CostDocument(layouts), w)
	case FormatQuality:
		return pkgio.WriteYAML(pkgio.QualityDocument(layouts), w)
	case FormatPoset:
		return pkgio.WritePoset(w, layouts)
	case FormatDOT:
		_, err := io.WriteString(w, pkgio.PosetDOT(layouts))
		return err
	case FormatSVG:
		svg, err := pkgio.RenderPosetSVG(ctx, pkgio.PosetDOT(layouts))
		if err != nil {
			return err
		}
		_, err = w.Write(svg)
		return err
	}
	return ValidateFormat(format)
}

// exportFile creates path, hands a buffered writer to write and reports the
// outcome to the export hooks.
func exportFile(ctx context.Context, format, path string, write func(io.Writer) error) (err error) {
	hooks := observability.Export()
	hooks.OnExportStart(ctx, format, path)
	start := time.Now()
	defer func() {
		hooks.OnExportComplete(ctx, format, path, time.Since(start), err)
	}()

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	bw := bufio.NewWriter(f)
	if err = write(bw); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err = bw.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// Summary is the JSON document written for the summary format.
type Summary struct {
	RunID     string    `json:"run_id"`
	Size      int       `json:"size"`
	Tiles     string    `json:"tiles"`
	Unique    bool      `json:"unique"`
	Limit     int       `json:"limit,omitempty"`
	Space     string    `json:"space"` // decimal; may exceed int64
	Layouts   int       `json:"layouts"`
	Batches   int       `json:"batches"`
	Files     []string  `json:"files"`
	StartedAt time.Time `json:"started_at"`
	Duration  string    `json:"duration"`
}

func writeSummary(ctx context.Context, opts *Options, res *Result, started time.Time) error {
	s := Summary{
		RunID:     res.RunID,
		Size:      opts.Size,
		Tiles:     tile.Codes(opts.Kinds()),
		Unique:    opts.Unique,
		Limit:     opts.Limit,
		Space:     res.Stats.Space.String(),
		Layouts:   res.Stats.Layouts,
		Batches:   res.Stats.Batches,
		Files:     slices.Clone(res.Files),
		StartedAt: started.UTC(),
		Duration:  time.Since(started).Round(time.Millisecond).String(),
	}
	path := filepath.Join(opts.OutputDir, FileName(FormatSummary, opts.BaseName(), false))
	err := exportFile(ctx, FormatSummary, path, func(w io.Writer) error {
		return pkgio.WriteJSON(s, w)
	})
	if err != nil {
		return err
	}
	res.Files = append(res.Files, path)
	return nil
}
