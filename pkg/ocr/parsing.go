package ocr

import (
	"fmt"
	"strconv"
	"strings"
)

// lookalikes is the safe minimum set of letter-for-digit confusions seen
// from Tesseract on overlay digits. Anything beyond these would be
// guessing, so unparseable cells fail instead of getting "repaired".
var lookalikes = strings.NewReplacer(
	"O", "0", "o", "0",
	"l", "1", "I", "1", "|", "1",
	"Z", "2", "z", "2",
	"S", "5", "s", "5",
	"B", "8",
)

// ParseCell turns raw recognized text for one cell into validated
// non-negative integers. arity is 1 for plain value cells and 2 for
// "shirt: points" pair cells. It returns ErrUnparseable (wrapped) when no
// valid value survives correction; callers must not substitute zero.
func ParseCell(text string, arity int) ([]int, error) {
	t := lookalikes.Replace(normalizeOCRText(text))
	switch arity {
	case 1:
		n, err := soleNumber(t)
		if err != nil {
			return nil, err
		}
		return []int{n}, nil
	case 2:
		return parsePair(t)
	default:
		return nil, fmt.Errorf("unsupported cell arity %d", arity)
	}
}

// soleNumber expects exactly one numeric token in the text. Zero digits or
// several disconnected numbers mean the cell cannot be trusted.
func soleNumber(t string) (int, error) {
	var nums []string
	for _, tok := range strings.Fields(t) {
		if ds := onlyDigits(tok); ds != "" {
			nums = append(nums, ds)
		}
	}
	switch len(nums) {
	case 0:
		return 0, fmt.Errorf("%w: %q has no digits", ErrUnparseable, t)
	case 1:
		return atoiCell(nums[0])
	default:
		return 0, fmt.Errorf("%w: %q has %d numeric tokens, want 1", ErrUnparseable, t, len(nums))
	}
}

// parsePair splits a "shirt: points" cell on the first separator. OCR
// sometimes reads the colon as a slash or dot, or drops it entirely and
// leaves two spaced numbers; all of those are accepted.
func parsePair(t string) ([]int, error) {
	for _, sep := range []string{":", "/", "."} {
		if i := strings.Index(t, sep); i >= 0 {
			first, err := soleNumber(t[:i])
			if err != nil {
				return nil, err
			}
			second, err := soleNumber(t[i+len(sep):])
			if err != nil {
				return nil, err
			}
			return []int{first, second}, nil
		}
	}
	var nums []string
	for _, tok := range strings.Fields(t) {
		if ds := onlyDigits(tok); ds != "" {
			nums = append(nums, ds)
		}
	}
	if len(nums) != 2 {
		return nil, fmt.Errorf("%w: %q is not a value pair", ErrUnparseable, t)
	}
	first, err := atoiCell(nums[0])
	if err != nil {
		return nil, err
	}
	second, err := atoiCell(nums[1])
	if err != nil {
		return nil, err
	}
	return []int{first, second}, nil
}

func atoiCell(ds string) (int, error) {
	n, err := strconv.Atoi(ds)
	if err != nil {
		return 0, fmt.Errorf("%w: parse %q: %v", ErrUnparseable, ds, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: negative value %d", ErrUnparseable, n)
	}
	return n, nil
}
