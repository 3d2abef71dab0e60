package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"vnlstats/pkg/match"
	"vnlstats/pkg/stats"
)

func TestParseSpecs(t *testing.T) {
	specs, err := parseSpecs([]string{"matches/pol_vs_ita:1", "/data/m2:0"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(specs) != 2 || specs[0].dir != "matches/pol_vs_ita" || specs[0].label != 1 || specs[1].label != 0 {
		t.Fatalf("unexpected specs: %+v", specs)
	}
}

func TestParseSpecsRejectsBadInput(t *testing.T) {
	for _, bad := range []string{"nodir", "dir:", ":1", "dir:2", "dir:x"} {
		if _, err := parseSpecs([]string{bad}); err == nil {
			t.Fatalf("%q: expected error", bad)
		}
	}
}

func TestLabelFromDirName(t *testing.T) {
	if l, ok := labelFromDirName("/data/pol_vs_ita_1"); !ok || l != 1 {
		t.Fatalf("expected label 1, got %d ok=%v", l, ok)
	}
	if l, ok := labelFromDirName("/data/bra_vs_usa_0"); !ok || l != 0 {
		t.Fatalf("expected label 0, got %d ok=%v", l, ok)
	}
	if _, ok := labelFromDirName("/data/unlabeled"); ok {
		t.Fatalf("expected no label")
	}
}

func TestDatasetWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	w, err := newDatasetWriter(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	rec := &match.Record{Dir: "m1", Diffs: stats.Diffs{7, 0, 0, 0, 0, -2, 0, 0, 0, 0}, Label: 1}
	if err := w.Append(rec); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header + 1 row, got %d lines", len(lines))
	}
	if lines[0] != strings.Join(stats.Columns, ",") {
		t.Fatalf("header mismatch: %q", lines[0])
	}
	if lines[1] != "7,0,0,0,0,-2,0,0,0,0,1" {
		t.Fatalf("row mismatch: %q", lines[1])
	}
}

func TestSinkWithoutDSNIsInert(t *testing.T) {
	sink := openSink("")
	sink.save(&match.Record{Dir: "m1", Label: 0})
}
