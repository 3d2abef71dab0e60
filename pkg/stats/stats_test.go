package stats

import (
	"errors"
	"testing"
)

func TestSumRowsOrderIndependent(t *testing.T) {
	a := []Value{Int(3), Int(1), Int(2)}
	b := []Value{Int(2), Int(3), Int(1)}
	sa, err := SumRows(a)
	if err != nil {
		t.Fatalf("sum: %v", err)
	}
	sb, err := SumRows(b)
	if err != nil {
		t.Fatalf("sum: %v", err)
	}
	if sa != 6 || sa != sb {
		t.Fatalf("expected commutative sum 6, got %d and %d", sa, sb)
	}
}

func TestSumRowsAbsentInvalidates(t *testing.T) {
	if _, err := SumRows([]Value{Int(3), Absent, Int(2)}); !errors.Is(err, ErrIncomplete) {
		t.Fatalf("expected ErrIncomplete got %v", err)
	}
	if _, err := SumRows(nil); !errors.Is(err, ErrIncomplete) {
		t.Fatalf("expected ErrIncomplete for empty table got %v", err)
	}
}

func TestTopScorersTieByRowOrder(t *testing.T) {
	first, second, err := TopScorers([]int{10, 25, 25, 3})
	if err != nil {
		t.Fatalf("top scorers: %v", err)
	}
	if first != 25 || second != 25 {
		t.Fatalf("expected 25/25 got %d/%d", first, second)
	}
}

func TestTopScorersDescending(t *testing.T) {
	first, second, err := TopScorers([]int{7, 3, 9})
	if err != nil {
		t.Fatalf("top scorers: %v", err)
	}
	if first != 9 || second != 7 {
		t.Fatalf("expected 9/7 got %d/%d", first, second)
	}
}

func TestTopScorersNeedsTwoEntries(t *testing.T) {
	if _, _, err := TopScorers([]int{12}); !errors.Is(err, ErrIncomplete) {
		t.Fatalf("expected ErrIncomplete got %v", err)
	}
}

func TestDiffAndNegation(t *testing.T) {
	a := TeamStats{Attack: 30, Block: 8, Serve: 4, OppError: 20, TotalPoints: 62, Dig: 40, Reception: 33, Set: 90, TopScorer1: 18, TopScorer2: 12}
	b := TeamStats{Attack: 22, Block: 11, Serve: 2, OppError: 25, TotalPoints: 60, Dig: 44, Reception: 31, Set: 85, TopScorer1: 21, TopScorer2: 9}

	d := Diff(a, b)
	if d[0] != 8 {
		t.Fatalf("attack_diff expected 8 got %d", d[0])
	}
	n := Diff(b, a)
	for i := range d {
		if d[i] != -n[i] {
			t.Fatalf("column %s: swapping teams should negate, got %d and %d", Columns[i], d[i], n[i])
		}
	}
}

func TestColumnsShape(t *testing.T) {
	if len(Columns) != 11 {
		t.Fatalf("expected 11 columns got %d", len(Columns))
	}
	if Columns[0] != "attack_diff" || Columns[10] != "label" {
		t.Fatalf("unexpected column order: %v", Columns)
	}
}
