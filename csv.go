package main

import (
	"encoding/csv"
	"os"

	"vnlstats/pkg/match"
	"vnlstats/pkg/stats"
)

// datasetWriter writes the output dataset: one header row, then one row
// per successfully processed match, flushed eagerly so watch mode never
// holds completed rows in memory.
type datasetWriter struct {
	f *os.File
	w *csv.Writer
}

func newDatasetWriter(path string) (*datasetWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	w := csv.NewWriter(f)
	if err := w.Write(stats.Columns); err != nil {
		_ = f.Close()
		return nil, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		_ = f.Close()
		return nil, err
	}
	return &datasetWriter{f: f, w: w}, nil
}

func (d *datasetWriter) Append(rec *match.Record) error {
	if err := d.w.Write(rec.Row()); err != nil {
		return err
	}
	d.w.Flush()
	return d.w.Error()
}

func (d *datasetWriter) Close() error {
	d.w.Flush()
	if err := d.w.Error(); err != nil {
		_ = d.f.Close()
		return err
	}
	return d.f.Close()
}
