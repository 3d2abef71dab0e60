package ocr

import (
	"fmt"
	"image"
	"image/color"
	"os"

	"github.com/disintegration/imaging"
	"github.com/otiai10/gosseract/v2"
)

// Engine recognizes the text inside one cropped cell image. The production
// implementation shells into Tesseract; tests substitute a deterministic
// stub so aggregation logic stays independent of the recognition engine.
type Engine interface {
	Recognize(cell image.Image) (string, error)
}

// CellWhitelist restricts recognition to digits plus the separators that
// appear in "shirt: points" pair cells. Everything else on the overlay is
// noise for our purposes.
const CellWhitelist = "0123456789:/. "

// Tesseract is the gosseract-backed Engine.
type Tesseract struct {
	Language  string
	Whitelist string
}

// NewTesseract returns an engine configured for VNL overlay cells.
func NewTesseract() *Tesseract {
	return &Tesseract{Language: "eng", Whitelist: CellWhitelist}
}

// Probe checks once per run that Tesseract can actually be invoked.
// Returns ErrUnavailable (wrapped) when it cannot; every screenshot of
// every match would fail identically, so callers should abort the batch.
func (t *Tesseract) Probe() error {
	client := gosseract.NewClient()
	defer client.Close()
	if v := client.Version(); v == "" {
		return fmt.Errorf("%w: tesseract reports no version", ErrUnavailable)
	}
	blank := imaging.New(48, 16, color.NRGBA{255, 255, 255, 255})
	tmp, err := os.CreateTemp("", "vnl-probe-*.png")
	if err != nil {
		return fmt.Errorf("probe temp file: %w", err)
	}
	_ = tmp.Close()
	defer os.Remove(tmp.Name())
	if err := imaging.Save(blank, tmp.Name()); err != nil {
		return fmt.Errorf("probe save: %w", err)
	}
	if err := client.SetImage(tmp.Name()); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if _, err := client.Text(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// Recognize preprocesses the cell and runs a single-line Tesseract pass
// over it. Tesseract wants a file path, so the prepared crop goes through
// a temp PNG.
func (t *Tesseract) Recognize(cell image.Image) (string, error) {
	prep := prepareCell(cell)

	tmp, err := os.CreateTemp("", "vnl-cell-*.png")
	if err != nil {
		return "", fmt.Errorf("cell temp file: %w", err)
	}
	path := tmp.Name()
	_ = tmp.Close()
	defer os.Remove(path)
	if err := imaging.Save(prep, path); err != nil {
		return "", fmt.Errorf("save cell: %w", err)
	}

	client := gosseract.NewClient()
	defer client.Close()
	_ = client.SetLanguage(t.Language)
	_ = client.SetWhitelist(t.Whitelist)
	_ = client.SetPageSegMode(gosseract.PSM_SINGLE_LINE)
	if err := client.SetImage(path); err != nil {
		return "", fmt.Errorf("set cell image: %w", err)
	}
	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("recognize cell: %w", err)
	}
	return normalizeOCRText(text), nil
}
