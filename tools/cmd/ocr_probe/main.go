package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/disintegration/imaging"

	"vnlstats/pkg/layout"
	"vnlstats/pkg/ocr"
)

// Debug helper: runs region extraction and OCR on a single screenshot and
// prints what each cell recognizes and parses to. Useful when tuning
// layout geometry against a new batch of screenshots.
func main() {
	kind := flag.String("kind", "scoring", "statistic kind of the screenshot")
	flag.Parse()
	if flag.NArg() != 1 {
		log.Fatalf("usage: ocr_probe [-kind KIND] screenshot.png")
	}
	path := flag.Arg(0)

	img, err := imaging.Open(path)
	if err != nil {
		log.Fatalf("open %s: %v", path, err)
	}
	regs, err := layout.Regions(img, layout.Kind(*kind))
	if err != nil {
		log.Fatalf("regions: %v", err)
	}

	engine := ocr.NewTesseract()
	if err := engine.Probe(); err != nil {
		log.Fatalf("engine: %v", err)
	}

	for _, reg := range regs {
		text, err := engine.Recognize(layout.Crop(img, reg))
		if err != nil {
			fmt.Printf("row=%-3d rect=%v recognize error: %v\n", reg.Row, reg.Rect, err)
			continue
		}
		if strings.TrimSpace(text) == "" {
			fmt.Printf("row=%-3d rect=%v blank\n", reg.Row, reg.Rect)
			continue
		}
		vals, perr := ocr.ParseCell(text, reg.Arity)
		fmt.Printf("row=%-3d rect=%v raw=%q vals=%v err=%v\n", reg.Row, reg.Rect, text, vals, perr)
	}
}
