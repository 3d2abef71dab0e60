package match

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"

	"vnlstats/pkg/layout"
	"vnlstats/pkg/ocr"
	"vnlstats/pkg/stats"
)

// ErrMissingFile means a required screenshot is absent from the match
// directory. It is raised before any OCR starts.
var ErrMissingFile = errors.New("required screenshot missing")

// teamPrefixes in processing order: team A first, then team B.
var teamPrefixes = [2]string{"teamA", "teamB"}

// exts are the accepted screenshot extensions, tried in order.
var exts = []string{".png", ".jpg", ".jpeg"}

// Record is one fully assembled output row: ten differentials plus label.
type Record struct {
	Dir   string
	Diffs stats.Diffs
	Label int
}

// Row renders the record as CSV fields in column order.
func (r *Record) Row() []string {
	out := make([]string, 0, len(r.Diffs)+1)
	for _, d := range r.Diffs {
		out = append(out, strconv.Itoa(d))
	}
	return append(out, strconv.Itoa(r.Label))
}

// Assembler orchestrates the 14 screenshots of one match into a Record.
type Assembler struct {
	Engine  ocr.Engine
	Verbose bool
}

// New returns an assembler backed by the given recognition engine.
func New(engine ocr.Engine) *Assembler {
	return &Assembler{Engine: engine}
}

// ProcessDir assembles the record for one match directory. It fails
// atomically: any layout, recognition or parsing problem yields no record
// at all, never a partial or zero-filled row.
func (a *Assembler) ProcessDir(dir string, label int) (*Record, error) {
	if label != 0 && label != 1 {
		return nil, fmt.Errorf("label must be 0 or 1, got %d", label)
	}
	screens, err := matchScreens(dir)
	if err != nil {
		return nil, err
	}

	// Fixed order: statistic kind list, team A then team B per kind, so
	// reprocessing an unchanged directory is bit-identical.
	var teams [2]stats.TeamStats
	for _, kind := range layout.Kinds {
		for ti := range teamPrefixes {
			if err := a.applyScreen(&teams[ti], screens[ti][kind], kind); err != nil {
				return nil, fmt.Errorf("%s_%s: %w", teamPrefixes[ti], kind, err)
			}
		}
	}

	return &Record{
		Dir:   dir,
		Diffs: stats.Diff(teams[0], teams[1]),
		Label: label,
	}, nil
}

// CheckDir verifies that all 14 screenshots of a match are present
// without invoking OCR.
func CheckDir(dir string) error {
	_, err := matchScreens(dir)
	return err
}

// matchScreens resolves all 14 screenshot paths up front. Every missing
// file is reported in one error so the operator can fix the directory in
// a single pass.
func matchScreens(dir string) ([2]map[layout.Kind]string, error) {
	var screens [2]map[layout.Kind]string
	var missing []string
	for ti, prefix := range teamPrefixes {
		screens[ti] = make(map[layout.Kind]string, len(layout.Kinds))
		for _, kind := range layout.Kinds {
			path, ok := findScreen(dir, prefix, kind)
			if !ok {
				missing = append(missing, fmt.Sprintf("%s_%s", prefix, kind))
				continue
			}
			screens[ti][kind] = path
		}
	}
	if len(missing) > 0 {
		return screens, fmt.Errorf("%w: %s in %s", ErrMissingFile, strings.Join(missing, ", "), dir)
	}
	return screens, nil
}

func findScreen(dir, prefix string, kind layout.Kind) (string, bool) {
	for _, ext := range exts {
		p := filepath.Join(dir, fmt.Sprintf("%s_%s%s", prefix, kind, ext))
		if _, err := os.Stat(p); err == nil {
			return p, true
		}
	}
	return "", false
}

// applyScreen extracts one screenshot's regions, recognizes and parses
// them, and folds the aggregate into ts.
func (a *Assembler) applyScreen(ts *stats.TeamStats, path string, kind layout.Kind) error {
	img, err := imaging.Open(path)
	if err != nil {
		return fmt.Errorf("open image: %w", err)
	}
	regs, err := layout.Regions(img, kind)
	if err != nil {
		return err
	}

	var rows []stats.Value // per-player values in screen row order
	oppError := stats.Absent
	for _, reg := range regs {
		text, err := a.Engine.Recognize(layout.Crop(img, reg))
		if err != nil {
			return err
		}
		if a.Verbose {
			log.Printf("OCR cell %s %s row=%d raw=%q", filepath.Base(path), kind, reg.Row, ocr.Snippet(text, 40))
		}
		if strings.TrimSpace(text) == "" && reg.Slot == layout.PlayerRow {
			// Unused roster slot: the overlay leaves trailing rows blank
			// for teams dressing fewer players than the table has lines.
			continue
		}
		vals, err := ocr.ParseCell(text, reg.Arity)
		if err != nil {
			return err
		}
		switch reg.Slot {
		case layout.PlayerRow:
			rows = append(rows, stats.Value{Ints: vals, Valid: true})
		case layout.OppErrorRow:
			oppError = stats.Int(vals[0])
		}
	}

	return foldAggregate(ts, kind, rows, oppError)
}

// foldAggregate reduces the parsed rows of one screen into the team stats.
func foldAggregate(ts *stats.TeamStats, kind layout.Kind, rows []stats.Value, oppError stats.Value) error {
	if kind == layout.Scoring {
		// Pair rows carry (shirt, points); points drive total and scorers.
		points := make([]stats.Value, 0, len(rows))
		for _, r := range rows {
			if !r.Valid || len(r.Ints) != 2 {
				return fmt.Errorf("%w: malformed scorer row", stats.ErrIncomplete)
			}
			points = append(points, stats.Int(r.Ints[1]))
		}
		total, err := stats.SumRows(points)
		if err != nil {
			return err
		}
		flat := make([]int, len(points))
		for i, p := range points {
			flat[i] = p.Ints[0]
		}
		top1, top2, err := stats.TopScorers(flat)
		if err != nil {
			return err
		}
		if !oppError.Valid {
			return fmt.Errorf("%w: opponent errors row absent", stats.ErrIncomplete)
		}
		ts.TotalPoints = total
		ts.TopScorer1 = top1
		ts.TopScorer2 = top2
		ts.OppError = oppError.Ints[0]
		return nil
	}

	total, err := stats.SumRows(rows)
	if err != nil {
		return err
	}
	switch kind {
	case layout.Attack:
		ts.Attack = total
	case layout.Block:
		ts.Block = total
	case layout.Serve:
		ts.Serve = total
	case layout.Reception:
		ts.Reception = total
	case layout.Dig:
		ts.Dig = total
	case layout.Set:
		ts.Set = total
	default:
		return fmt.Errorf("unknown statistic kind %q", kind)
	}
	return nil
}
