package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"vnlstats/pkg/match"
	"vnlstats/pkg/ocr"
)

// global flags (parsed in main)
var verbose bool

type matchSpec struct {
	dir   string
	label int
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s [flags] output.csv DIR:LABEL [DIR:LABEL ...]\n", filepath.Base(os.Args[0]))
	fmt.Fprintln(os.Stderr, "  LABEL is 1 when team A won the match, 0 otherwise.")
	flag.PrintDefaults()
}

// Main: turns match screenshot directories into one labeled CSV row each,
// optionally mirroring rows to Postgres and watching for new matches.
func main() {
	watchDir := flag.String("watch", "", "parent directory to watch for new match directories named <name>_<label>")
	dryRun := flag.Bool("dry-run", false, "only validate that match directories contain all 14 screenshots; no OCR")
	dbDSN := flag.String("db-dsn", os.Getenv("DB_DSN"), "optional Postgres DSN to mirror records into (env DB_DSN)")
	flag.BoolVar(&verbose, "verbose", false, "verbose per-cell OCR logging")
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		usage()
		os.Exit(2)
	}
	output := args[0]
	specs, err := parseSpecs(args[1:])
	if err != nil {
		log.Fatalf("bad match spec: %v", err)
	}
	if len(specs) == 0 && *watchDir == "" {
		log.Fatalf("nothing to do: no matches given and no -watch directory")
	}

	if *dryRun {
		bad := 0
		for _, sp := range specs {
			if err := match.CheckDir(sp.dir); err != nil {
				log.Printf("invalid %s: %v", sp.dir, err)
				bad++
			}
		}
		log.Printf("dry-run: %d match directories checked, %d invalid", len(specs), bad)
		if bad > 0 {
			os.Exit(1)
		}
		return
	}

	engine := ocr.NewTesseract()
	if err := engine.Probe(); err != nil {
		// Every subsequent match would fail identically, so stop here.
		log.Fatalf("recognition engine check failed: %v", err)
	}

	asm := match.New(engine)
	asm.Verbose = verbose

	sink := openSink(*dbDSN)

	w, err := newDatasetWriter(output)
	if err != nil {
		log.Fatalf("open dataset %s: %v", output, err)
	}
	defer w.Close()

	written, skipped := 0, 0
	for _, sp := range specs {
		if processOne(asm, w, sink, sp) {
			written++
		} else {
			skipped++
		}
	}
	log.Printf("dataset %s: %d rows written, %d matches skipped", output, written, skipped)

	if *watchDir != "" {
		if err := watchMatches(*watchDir, asm, w, sink); err != nil {
			log.Fatalf("watch %s: %v", *watchDir, err)
		}
	}
}

// processOne appends one match row, reporting rather than halting on
// per-match failures. RecognitionUnavailable is the exception: the engine
// disappeared mid-batch, so the whole run stops.
func processOne(asm *match.Assembler, w *datasetWriter, sink *recordSink, sp matchSpec) bool {
	rec, err := asm.ProcessDir(sp.dir, sp.label)
	if err != nil {
		if errors.Is(err, ocr.ErrUnavailable) {
			log.Fatalf("recognition engine lost: %v", err)
		}
		log.Printf("match skipped %s: %v", sp.dir, err)
		return false
	}
	if err := w.Append(rec); err != nil {
		log.Fatalf("write row for %s: %v", sp.dir, err)
	}
	sink.save(rec)
	if verbose {
		log.Printf("match done %s row=%v label=%d", sp.dir, rec.Diffs, rec.Label)
	}
	return true
}

// parseSpecs parses DIR:LABEL arguments. The label is split off the last
// colon so Windows-style paths keep working.
func parseSpecs(args []string) ([]matchSpec, error) {
	specs := make([]matchSpec, 0, len(args))
	for _, a := range args {
		i := strings.LastIndex(a, ":")
		if i <= 0 || i == len(a)-1 {
			return nil, fmt.Errorf("%q must be of the form directory:label", a)
		}
		label, err := strconv.Atoi(a[i+1:])
		if err != nil || (label != 0 && label != 1) {
			return nil, fmt.Errorf("%q: label must be 0 or 1", a)
		}
		specs = append(specs, matchSpec{dir: a[:i], label: label})
	}
	return specs, nil
}

// watchMatches appends rows for match directories created under dir while
// the watcher runs. The directory name must end in _0 or _1, which supplies
// the label. Screenshots usually arrive over a few seconds, so a new
// directory is polled until all 14 files are present.
func watchMatches(dir string, asm *match.Assembler, w *datasetWriter, sink *recordSink) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	if err := watcher.Add(dir); err != nil {
		return err
	}
	log.Printf("watching %s for new match directories", dir)

	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Op&fsnotify.Create == 0 {
				continue
			}
			info, err := os.Stat(ev.Name)
			if err != nil || !info.IsDir() {
				continue
			}
			label, ok := labelFromDirName(ev.Name)
			if !ok {
				log.Printf("ignoring %s: name does not end in _0 or _1", ev.Name)
				continue
			}
			if !waitForScreens(ev.Name) {
				log.Printf("match skipped %s: screenshots incomplete after wait", ev.Name)
				continue
			}
			processOne(asm, w, sink, matchSpec{dir: ev.Name, label: label})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("watch error: %v", err)
		}
	}
}

func labelFromDirName(dir string) (int, bool) {
	name := filepath.Base(dir)
	switch {
	case strings.HasSuffix(name, "_0"):
		return 0, true
	case strings.HasSuffix(name, "_1"):
		return 1, true
	}
	return 0, false
}

// waitForScreens polls until the directory holds all 14 screenshots.
func waitForScreens(dir string) bool {
	for i := 0; i < 30; i++ {
		if match.CheckDir(dir) == nil {
			return true
		}
		time.Sleep(time.Second)
	}
	return false
}
