package layout

import (
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Kind names one of the seven VNL statistic screens captured per team.
type Kind string

const (
	Scoring   Kind = "scoring"
	Attack    Kind = "attack"
	Block     Kind = "block"
	Serve     Kind = "serve"
	Reception Kind = "reception"
	Dig       Kind = "dig"
	Set       Kind = "set"
)

// Kinds fixes the processing order within a match so output rows are
// reproducible across runs.
var Kinds = []Kind{Scoring, Attack, Block, Serve, Reception, Dig, Set}

// ErrLayoutMismatch means the image does not have the shape of a VNL
// overlay screenshot, so the fixed geometry below would crop garbage.
var ErrLayoutMismatch = errors.New("image does not match expected screenshot layout")

// Slot says what a region holds.
type Slot int

const (
	// PlayerRow is one roster line in the statistic table.
	PlayerRow Slot = iota
	// OppErrorRow is the team-level opponent-errors line on the scoring screen.
	OppErrorRow
)

// Region is one rectangular data cell inside a screenshot.
type Region struct {
	Slot  Slot
	Row   int // 0-based player row index, -1 for team-level rows
	Arity int // integers expected in the cell (1, or 2 for "shirt: points")
	Rect  image.Rectangle
}

// geom is a rectangle in proportions of the image dimensions. The numbers
// were measured once against the 1920x1080 VNL overlay and are not detected
// at runtime.
type geom struct {
	x0, y0, x1, y1 float64
}

type table struct {
	firstRowTop float64 // top of the first player row
	rowHeight   float64
	rows        int
	cellX0      float64
	cellX1      float64
	arity       int
	oppError    *geom // scoring screen only
}

const playerRows = 12

// simple statistic screens share one column geometry: the per-player value
// column sits on the right edge of the table.
var simpleTable = table{
	firstRowTop: 0.210,
	rowHeight:   0.052,
	rows:        playerRows,
	cellX0:      0.630,
	cellX1:      0.730,
	arity:       1,
}

var scoringTable = table{
	firstRowTop: 0.210,
	rowHeight:   0.052,
	rows:        playerRows,
	cellX0:      0.540,
	cellX1:      0.760,
	arity:       2,
	oppError:    &geom{0.630, 0.862, 0.730, 0.910},
}

var tables = map[Kind]table{
	Scoring:   scoringTable,
	Attack:    simpleTable,
	Block:     simpleTable,
	Serve:     simpleTable,
	Reception: simpleTable,
	Dig:       simpleTable,
	Set:       simpleTable,
}

const (
	wantAspect = 16.0 / 9.0
	aspectTol  = 0.05
)

// Regions returns the ordered data cells for one screenshot: player rows
// top to bottom, then the opponent-errors row for the scoring screen.
func Regions(img image.Image, kind Kind) ([]Region, error) {
	t, ok := tables[kind]
	if !ok {
		return nil, fmt.Errorf("unknown statistic kind %q", kind)
	}
	b := img.Bounds()
	w := float64(b.Dx())
	h := float64(b.Dy())
	if h <= 0 {
		return nil, fmt.Errorf("%w: empty image", ErrLayoutMismatch)
	}
	aspect := w / h
	if aspect < wantAspect-aspectTol || aspect > wantAspect+aspectTol {
		return nil, fmt.Errorf("%w: aspect %.3f (want %.3f±%.2f)", ErrLayoutMismatch, aspect, wantAspect, aspectTol)
	}

	regs := make([]Region, 0, t.rows+1)
	for i := 0; i < t.rows; i++ {
		top := t.firstRowTop + float64(i)*t.rowHeight
		regs = append(regs, Region{
			Slot:  PlayerRow,
			Row:   i,
			Arity: t.arity,
			Rect:  scale(geom{t.cellX0, top, t.cellX1, top + t.rowHeight}, w, h),
		})
	}
	if t.oppError != nil {
		regs = append(regs, Region{
			Slot:  OppErrorRow,
			Row:   -1,
			Arity: 1,
			Rect:  scale(*t.oppError, w, h),
		})
	}
	return regs, nil
}

// Crop cuts the region out of the screenshot.
func Crop(img image.Image, r Region) image.Image {
	return imaging.Crop(img, r.Rect)
}

func scale(g geom, w, h float64) image.Rectangle {
	return image.Rect(
		int(g.x0*w), int(g.y0*h),
		int(g.x1*w), int(g.y1*h),
	)
}
