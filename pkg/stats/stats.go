package stats

import (
	"errors"
	"fmt"
	"sort"
)

// Value is one recognized cell value. Absence (extraction failure or an
// unused roster slot) is a distinct state, never a silent zero.
type Value struct {
	Ints  []int
	Valid bool
}

// Int wraps a single recognized integer.
func Int(n int) Value { return Value{Ints: []int{n}, Valid: true} }

// Pair wraps a recognized "shirt: points" cell.
func Pair(a, b int) Value { return Value{Ints: []int{a, b}, Valid: true} }

// Absent marks a failed or empty extraction.
var Absent = Value{}

// ErrIncomplete means an aggregate is missing required underlying values
// and the whole match record must be discarded.
var ErrIncomplete = errors.New("incomplete statistic")

// SumRows reduces one additive statistic to the team total. Summation is
// order independent; any invalid value among the rows invalidates the
// aggregate, and an entirely empty table is treated the same way since a
// real roster always has entries.
func SumRows(rows []Value) (int, error) {
	if len(rows) == 0 {
		return 0, fmt.Errorf("%w: no player rows", ErrIncomplete)
	}
	total := 0
	for i, v := range rows {
		if !v.Valid || len(v.Ints) == 0 {
			return 0, fmt.Errorf("%w: row %d absent", ErrIncomplete, i)
		}
		total += v.Ints[0]
	}
	return total, nil
}

// TopScorers picks the highest and second-highest point values among the
// per-player entries. Ties are broken by row order as the players appear on
// the screen: for [10, 25, 25, 3] both top slots are 25, the first
// occurrence ranking first.
func TopScorers(points []int) (first, second int, err error) {
	if len(points) < 2 {
		return 0, 0, fmt.Errorf("%w: %d scorer entries, need 2", ErrIncomplete, len(points))
	}
	idx := make([]int, len(points))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return points[idx[a]] > points[idx[b]]
	})
	return points[idx[0]], points[idx[1]], nil
}

// TeamStats holds the ten aggregated statistics for one team in one match.
type TeamStats struct {
	Attack      int
	Block       int
	Serve       int
	OppError    int
	TotalPoints int
	Dig         int
	Reception   int
	Set         int
	TopScorer1  int
	TopScorer2  int
}

// Columns is the exact output header: ten differentials in fixed order,
// then the outcome label.
var Columns = []string{
	"attack_diff",
	"block_diff",
	"serve_diff",
	"opp_error_diff",
	"total_points_diff",
	"dig_diff",
	"reception_diff",
	"set_diff",
	"top_scorer_1_diff",
	"top_scorer_2_diff",
	"label",
}

// Diffs are the ten signed differentials, in Columns order.
type Diffs [10]int

// Diff computes teamA − teamB for every statistic. Negative values are
// valid; swapping the teams negates every field.
func Diff(a, b TeamStats) Diffs {
	return Diffs{
		a.Attack - b.Attack,
		a.Block - b.Block,
		a.Serve - b.Serve,
		a.OppError - b.OppError,
		a.TotalPoints - b.TotalPoints,
		a.Dig - b.Dig,
		a.Reception - b.Reception,
		a.Set - b.Set,
		a.TopScorer1 - b.TopScorer1,
		a.TopScorer2 - b.TopScorer2,
	}
}
